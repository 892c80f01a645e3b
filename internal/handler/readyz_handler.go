//go:generate mockgen -source=$GOFILE -destination=../mocks/handler/mock_readyz_handler.go -package=handler
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/mealcache/internal/handler/response"
	"github.com/na2na-p/mealcache/internal/usecase"
)

type ReadinessUseCaseInterface interface {
	Report(ctx context.Context) usecase.ReadinessReport
}

type ReadyzHandler struct {
	uc ReadinessUseCaseInterface
}

func NewReadyzHandler(uc ReadinessUseCaseInterface) *ReadyzHandler {
	return &ReadyzHandler{
		uc: uc,
	}
}

// Handle はキャッシュ層のみの障害では200（degraded）を返し、リモートストアの障害で503を返す
func (h *ReadyzHandler) Handle(c echo.Context) error {
	report := h.uc.Report(c.Request().Context())

	body := response.ReadinessResponse{
		Status:     string(report.Status),
		Components: make(map[string]response.ComponentResponse, len(report.Components)),
	}
	for _, comp := range report.Components {
		cr := response.ComponentResponse{
			Backend:   comp.Backend,
			Healthy:   comp.Healthy,
			Required:  comp.Required,
			LatencyMs: comp.Latency.Milliseconds(),
		}
		if comp.Error != nil {
			cr.Error = comp.Error.Error()
		}
		body.Components[string(comp.Component)] = cr
	}

	status := http.StatusOK
	if report.Status == usecase.StatusNotReady {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, body)
}

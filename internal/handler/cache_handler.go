//go:generate mockgen -source=$GOFILE -destination=../mocks/handler/mock_cache_handler.go -package=handler
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/handler/middleware"
	"github.com/na2na-p/mealcache/internal/handler/response"
)

type CacheUseCaseInterface interface {
	ClearAll(ctx context.Context) error
	ClearExpired(ctx context.Context) (int, error)
	GetCacheInfo(ctx context.Context) (domain.CacheInfo, error)
}

type CacheHandler struct {
	uc CacheUseCaseInterface
}

func NewCacheHandler(uc CacheUseCaseInterface) *CacheHandler {
	return &CacheHandler{
		uc: uc,
	}
}

func (h *CacheHandler) HandleInfo(c echo.Context) error {
	info, err := h.uc.GetCacheInfo(c.Request().Context())
	if err != nil {
		return middleware.NewAppError(http.StatusServiceUnavailable, "キャッシュ情報を取得できませんでした", err)
	}
	return c.JSON(http.StatusOK, response.CacheInfoResponse{
		MemoryImageCount:   info.MemoryImageCount,
		MemoryBytes:        info.MemoryBytes,
		DiskCacheSizeBytes: info.DiskCacheSizeBytes,
		DiskEntryCount:     info.DiskEntryCount,
		SignedURLCount:     info.SignedURLCount,
	})
}

// HandleClearAll は全層のキャッシュを削除する
func (h *CacheHandler) HandleClearAll(c echo.Context) error {
	if err := h.uc.ClearAll(c.Request().Context()); err != nil {
		return middleware.NewAppError(http.StatusInternalServerError, "キャッシュの削除に失敗しました", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CacheHandler) HandleClearExpired(c echo.Context) error {
	removed, err := h.uc.ClearExpired(c.Request().Context())
	if err != nil {
		return middleware.NewAppError(http.StatusInternalServerError, "期限切れキャッシュの削除に失敗しました", err)
	}
	return c.JSON(http.StatusOK, response.ClearExpiredResponse{Removed: removed})
}

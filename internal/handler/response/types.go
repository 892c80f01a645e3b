package response

import "github.com/labstack/echo/v4"

type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type CacheInfoResponse struct {
	MemoryImageCount   int   `json:"memoryImageCount"`
	MemoryBytes        int64 `json:"memoryBytes"`
	DiskCacheSizeBytes int64 `json:"diskCacheSizeBytes"`
	DiskEntryCount     int   `json:"diskEntryCount"`
	SignedURLCount     int   `json:"signedURLCount"`
}

type ClearExpiredResponse struct {
	Removed int `json:"removed"`
}

type ComponentResponse struct {
	Backend   string `json:"backend"`
	Healthy   bool   `json:"healthy"`
	Required  bool   `json:"required"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

type ReadinessResponse struct {
	Status     string                       `json:"status"`
	Components map[string]ComponentResponse `json:"components"`
}

type PreloadRequest struct {
	Bucket string   `json:"bucket"`
	Paths  []string `json:"paths"`
}

type PreloadResponse struct {
	Accepted int `json:"accepted"`
}

func SendError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

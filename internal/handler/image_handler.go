//go:generate mockgen -source=$GOFILE -destination=../mocks/handler/mock_image_handler.go -package=handler
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/handler/middleware"
	"github.com/na2na-p/mealcache/internal/handler/response"
	"github.com/na2na-p/mealcache/internal/usecase"
)

const (
	// imageCacheControl は署名付きURLのTTL(50分)に合わせる
	imageCacheControl = "private, max-age=3000"

	// MaxPreloadPaths は1リクエストで受け付けるプリロード件数の上限
	MaxPreloadPaths = 200

	statusClientClosedRequest = 499
)

type ImageUseCaseInterface interface {
	FetchImage(ctx context.Context, path, bucket string) (*domain.Image, error)
	PreloadImages(ctx context.Context, paths []string, bucket string)
}

type ImageHandler struct {
	uc            ImageUseCaseInterface
	defaultBucket string
}

func NewImageHandler(uc ImageUseCaseInterface, defaultBucket string) *ImageHandler {
	return &ImageHandler{
		uc:            uc,
		defaultBucket: defaultBucket,
	}
}

// HandleGet は GET /buckets/:bucket/images/* と GET /images/* を処理する
func (h *ImageHandler) HandleGet(c echo.Context) error {
	bucket := c.Param("bucket")
	if bucket == "" {
		bucket = h.defaultBucket
	}
	path := c.Param("*")
	// RawPathがある場合はルーティングがエスケープ済みのパスで行われる
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(path)
		if err != nil {
			return middleware.NewAppError(http.StatusBadRequest, "ストレージパスが不正です", err)
		}
		path = unescaped
	}

	img, err := h.uc.FetchImage(c.Request().Context(), path, bucket)
	if err != nil {
		return toAppError(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, imageCacheControl)
	if c.Request().Method == http.MethodHead {
		c.Response().Header().Set(echo.HeaderContentType, img.ContentType())
		return c.NoContent(http.StatusOK)
	}
	return c.Blob(http.StatusOK, img.ContentType(), img.Data())
}

// HandlePreload は POST /preload を処理する。取得の完了を待たずに202を返す
func (h *ImageHandler) HandlePreload(c echo.Context) error {
	var req response.PreloadRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "リクエストボディが不正です", err)
	}
	if len(req.Paths) == 0 {
		return middleware.NewAppError(http.StatusBadRequest, "pathsを1件以上指定してください", nil)
	}
	if len(req.Paths) > MaxPreloadPaths {
		return middleware.NewAppError(http.StatusBadRequest, "pathsの件数が上限を超えています", nil)
	}

	bucket := req.Bucket
	if bucket == "" {
		bucket = h.defaultBucket
	}
	if _, err := domain.NewBucket(bucket); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "バケット名が不正です", err)
	}

	h.uc.PreloadImages(c.Request().Context(), req.Paths, bucket)

	return c.JSON(http.StatusAccepted, response.PreloadResponse{Accepted: len(req.Paths)})
}

func toAppError(err error) *middleware.AppError {
	switch {
	case errors.Is(err, domain.ErrInvalidStoragePath):
		return middleware.NewAppError(http.StatusBadRequest, "ストレージパスが不正です", err)
	case errors.Is(err, domain.ErrInvalidBucket):
		return middleware.NewAppError(http.StatusBadRequest, "バケット名が不正です", err)
	case errors.Is(err, domain.ErrObjectNotFound):
		return middleware.NewAppError(http.StatusNotFound, "画像が見つかりません", err)
	case errors.Is(err, domain.ErrAccessDenied):
		return middleware.NewAppError(http.StatusForbidden, "画像へのアクセスが拒否されました", err)
	case errors.Is(err, context.DeadlineExceeded):
		return middleware.NewAppError(http.StatusGatewayTimeout, "画像の取得がタイムアウトしました", err)
	case errors.Is(err, context.Canceled):
		return middleware.NewAppError(statusClientClosedRequest, "リクエストがキャンセルされました", err)
	case errors.Is(err, usecase.ErrSigningFailure),
		errors.Is(err, usecase.ErrFetchFailure),
		errors.Is(err, usecase.ErrDecodeFailure):
		return middleware.NewAppError(http.StatusBadGateway, "画像を取得できませんでした", err)
	default:
		return middleware.NewAppError(http.StatusInternalServerError, "サーバー内部エラーが発生しました", err)
	}
}

package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/handler"
	"github.com/na2na-p/mealcache/internal/handler/middleware"
	mock_handler "github.com/na2na-p/mealcache/internal/mocks/handler"
)

func newCacheServer(h *handler.CacheHandler) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.GET("/cache/info", h.HandleInfo)
	e.DELETE("/cache", h.HandleClearAll)
	e.DELETE("/cache/expired", h.HandleClearExpired)
	return e
}

func TestCacheHandler(t *testing.T) {
	type fields struct {
		setupMock func(ctrl *gomock.Controller) handler.CacheUseCaseInterface
	}
	tests := []struct {
		name           string
		method         string
		target         string
		fields         fields
		wantStatusCode int
		wantBody       map[string]any
	}{
		{
			name:   "正常系: キャッシュ情報をJSONで返す",
			method: http.MethodGet,
			target: "/cache/info",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) handler.CacheUseCaseInterface {
					m := mock_handler.NewMockCacheUseCaseInterface(ctrl)
					m.EXPECT().GetCacheInfo(gomock.Any()).Return(domain.CacheInfo{
						MemoryImageCount:   3,
						MemoryBytes:        3072,
						DiskCacheSizeBytes: 1048576,
						DiskEntryCount:     7,
						SignedURLCount:     5,
					}, nil)
					return m
				},
			},
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"memoryImageCount":   float64(3),
				"memoryBytes":        float64(3072),
				"diskCacheSizeBytes": float64(1048576),
				"diskEntryCount":     float64(7),
				"signedURLCount":     float64(5),
			},
		},
		{
			name:   "異常系: キャッシュ情報が取れない場合は503",
			method: http.MethodGet,
			target: "/cache/info",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) handler.CacheUseCaseInterface {
					m := mock_handler.NewMockCacheUseCaseInterface(ctrl)
					m.EXPECT().GetCacheInfo(gomock.Any()).Return(domain.CacheInfo{}, errors.New("redis down"))
					return m
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
			wantBody: map[string]any{
				"message": "キャッシュ情報を取得できませんでした",
			},
		},
		{
			name:   "正常系: 全キャッシュを削除して204を返す",
			method: http.MethodDelete,
			target: "/cache",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) handler.CacheUseCaseInterface {
					m := mock_handler.NewMockCacheUseCaseInterface(ctrl)
					m.EXPECT().ClearAll(gomock.Any()).Return(nil)
					return m
				},
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:   "異常系: 削除に失敗した場合は500",
			method: http.MethodDelete,
			target: "/cache",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) handler.CacheUseCaseInterface {
					m := mock_handler.NewMockCacheUseCaseInterface(ctrl)
					m.EXPECT().ClearAll(gomock.Any()).Return(errors.New("read-only file system"))
					return m
				},
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody: map[string]any{
				"message": "キャッシュの削除に失敗しました",
			},
		},
		{
			name:   "正常系: 期限切れの署名付きURLを削除して件数を返す",
			method: http.MethodDelete,
			target: "/cache/expired",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) handler.CacheUseCaseInterface {
					m := mock_handler.NewMockCacheUseCaseInterface(ctrl)
					m.EXPECT().ClearExpired(gomock.Any()).Return(4, nil)
					return m
				},
			},
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"removed": float64(4),
			},
		},
		{
			name:   "異常系: 期限切れの削除に失敗した場合は500",
			method: http.MethodDelete,
			target: "/cache/expired",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) handler.CacheUseCaseInterface {
					m := mock_handler.NewMockCacheUseCaseInterface(ctrl)
					m.EXPECT().ClearExpired(gomock.Any()).Return(0, errors.New("redis down"))
					return m
				},
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody: map[string]any{
				"message": "期限切れキャッシュの削除に失敗しました",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			e := newCacheServer(handler.NewCacheHandler(tt.fields.setupMock(ctrl)))

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status code = %v, want %v", rec.Code, tt.wantStatusCode)
			}
			if tt.wantBody == nil {
				if rec.Body.Len() != 0 {
					t.Errorf("body = %q, want empty", rec.Body.String())
				}
				return
			}
			var got map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if diff := cmp.Diff(tt.wantBody, got); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_external_interfaces.go -package=usecase
package usecase

import (
	"context"
	"time"

	"github.com/na2na-p/mealcache/internal/domain"
)

// RemoteObjectStore は署名付きURLを発行するリモートオブジェクトストア
// 存在しないパスは domain.ErrObjectNotFound、ポリシー違反は domain.ErrAccessDenied をラップして返す
type RemoteObjectStore interface {
	MintSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}

// ByteFetcher は署名付きURLから画像のバイト列を取得する
type ByteFetcher interface {
	FetchBytes(ctx context.Context, url string) (*domain.FetchedResponse, error)
}

type ImageDecoder interface {
	Decode(ref domain.ObjectRef, data []byte) (*domain.Image, error)
}

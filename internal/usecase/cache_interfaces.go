//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_cache_interfaces.go -package=usecase
package usecase

import (
	"context"
	"time"

	"github.com/na2na-p/mealcache/internal/domain"
)

// SignedURLCache はストレージパスごとの署名付きURLを保持する
// 期限切れのエントリは存在していても domain.ErrCacheMiss を返す
type SignedURLCache interface {
	Get(ctx context.Context, ref domain.ObjectRef) (*domain.SignedURLEntry, error)
	Put(ctx context.Context, entry *domain.SignedURLEntry) error
	EvictExpired(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// MemoryImageCache はプロセス内のデコード済み画像キャッシュ
type MemoryImageCache interface {
	Get(key string) (*domain.Image, bool)
	Put(key string, img *domain.Image)
	Clear()
	Len() int
	Bytes() int64
}

// DiskResponseCache は取得URLをキーとする永続キャッシュ
type DiskResponseCache interface {
	Lookup(ctx context.Context, url string) (*domain.CachedResponse, error)
	Store(ctx context.Context, resp *domain.CachedResponse) error
	CurrentUsageBytes() int64
	Len() int
	Clear(ctx context.Context) error
	RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

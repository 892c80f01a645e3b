//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_image_fetch_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/newmo-oss/ctxtime"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/na2na-p/mealcache/internal/domain"
)

const (
	DefaultSignTimeout    = 20 * time.Second
	DefaultFetchTimeout   = 30 * time.Second
	DefaultPreloadTimeout = 60 * time.Second

	// DiskRetention はディスクキャッシュの保持期間（目安）
	DiskRetention = 7 * 24 * time.Hour
)

// ImageFetchUseCase は画像取得のエントリポイント
// メモリ、署名付きURL、ディスクの順にキャッシュを参照し、最後にネットワークから取得する
type ImageFetchUseCase interface {
	// FetchImage は失敗の種類を区別したエラーを返す
	FetchImage(ctx context.Context, path, bucket string) (*domain.Image, error)
	// GetImage は失敗をすべて吸収し、画像が得られない場合はnilを返す
	GetImage(ctx context.Context, path, bucket string) *domain.Image
	PreloadImages(ctx context.Context, paths []string, bucket string)
	WaitPreloads()
	ClearAll(ctx context.Context) error
	ClearExpired(ctx context.Context) (int, error)
	SweepDisk(ctx context.Context) (int, error)
	GetCacheInfo(ctx context.Context) (domain.CacheInfo, error)
	Close()
}

type ImageFetchConfig struct {
	SignedURLTTL      time.Duration
	RemoteURLLifetime time.Duration
	SignTimeout       time.Duration
	FetchTimeout      time.Duration
	PreloadTimeout    time.Duration
	// PreloadLimiter がnilの場合、プリロードはペース制御されない
	PreloadLimiter *rate.Limiter
}

func (c ImageFetchConfig) withDefaults() ImageFetchConfig {
	if c.SignedURLTTL == 0 {
		c.SignedURLTTL = domain.SignedURLTTL
	}
	if c.RemoteURLLifetime == 0 {
		c.RemoteURLLifetime = domain.RemoteSignedURLLifetime
	}
	if c.SignTimeout == 0 {
		c.SignTimeout = DefaultSignTimeout
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.PreloadTimeout == 0 {
		c.PreloadTimeout = DefaultPreloadTimeout
	}
	return c
}

type imageFetchUseCaseImpl struct {
	memory     MemoryImageCache
	signedURLs SignedURLCache
	disk       DiskResponseCache
	store      RemoteObjectStore
	fetcher    ByteFetcher
	decoder    ImageDecoder
	metrics    CacheMetrics
	cfg        ImageFetchConfig

	group    singleflight.Group
	preloads sync.WaitGroup
	flights  sync.WaitGroup
	mu       sync.Mutex
	closed   bool
	done     context.Context
	stop     context.CancelFunc
}

func NewImageFetchUseCase(
	memory MemoryImageCache,
	signedURLs SignedURLCache,
	disk DiskResponseCache,
	store RemoteObjectStore,
	fetcher ByteFetcher,
	decoder ImageDecoder,
	metrics CacheMetrics,
	cfg ImageFetchConfig,
) ImageFetchUseCase {
	if metrics == nil {
		metrics = NoopCacheMetrics{}
	}
	done, stop := context.WithCancel(context.Background())
	return &imageFetchUseCaseImpl{
		memory:     memory,
		signedURLs: signedURLs,
		disk:       disk,
		store:      store,
		fetcher:    fetcher,
		decoder:    decoder,
		metrics:    metrics,
		cfg:        cfg.withDefaults(),
		done:       done,
		stop:       stop,
	}
}

func (u *imageFetchUseCaseImpl) FetchImage(ctx context.Context, path, bucket string) (*domain.Image, error) {
	ref, err := domain.ParseObjectRef(bucket, path)
	if err != nil {
		return nil, err
	}

	key := ref.CacheKey()
	if img, ok := u.memory.Get(key); ok {
		u.metrics.ObserveLookup(LayerMemory, true)
		return img, nil
	}
	u.metrics.ObserveLookup(LayerMemory, false)

	ch := u.group.DoChan(key, func() (interface{}, error) {
		return u.flight(ctx, ref)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			u.metrics.IncFailure(classifyFailure(res.Err))
			return nil, res.Err
		}
		return res.Val.(*domain.Image), nil
	case <-ctx.Done():
		// 取得自体は続行し、合流している他の呼び出し元とキャッシュに結果を残す
		u.metrics.IncFailure(FailureCanceled)
		return nil, ctx.Err()
	}
}

// flight は呼び出し元のキャンセルから切り離して load を実行する
// 中断されるのは Close による停止時のみ
func (u *imageFetchUseCaseImpl) flight(ctx context.Context, ref domain.ObjectRef) (*domain.Image, error) {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return nil, u.done.Err()
	}
	u.flights.Add(1)
	u.mu.Unlock()
	defer u.flights.Done()

	flightCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()
	unregister := context.AfterFunc(u.done, cancel)
	defer unregister()

	return u.load(flightCtx, ref)
}

func (u *imageFetchUseCaseImpl) GetImage(ctx context.Context, path, bucket string) *domain.Image {
	img, err := u.FetchImage(ctx, path, bucket)
	if err != nil {
		slog.WarnContext(ctx, "画像の取得に失敗しました",
			"bucket", bucket,
			"path", path,
			"error", err,
		)
		return nil
	}
	return img
}

func (u *imageFetchUseCaseImpl) load(ctx context.Context, ref domain.ObjectRef) (*domain.Image, error) {
	entry, err := u.resolveSignedURL(ctx, ref)
	if err != nil {
		return nil, err
	}

	cached, err := u.disk.Lookup(ctx, entry.URL())
	switch {
	case err == nil:
		u.metrics.ObserveLookup(LayerDisk, true)
		img, decodeErr := u.decoder.Decode(ref, cached.Body)
		if decodeErr == nil {
			u.memory.Put(ref.CacheKey(), img)
			return img, nil
		}
		slog.WarnContext(ctx, "ディスクキャッシュの内容をデコードできません",
			"bucket", ref.Bucket().String(),
			"path", ref.Path().String(),
			"error", decodeErr,
		)
	case errors.Is(err, domain.ErrCacheMiss):
		u.metrics.ObserveLookup(LayerDisk, false)
	default:
		u.metrics.ObserveLookup(LayerDisk, false)
		slog.WarnContext(ctx, "ディスクキャッシュの参照に失敗しました",
			"bucket", ref.Bucket().String(),
			"path", ref.Path().String(),
			"error", err,
		)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, u.cfg.FetchTimeout)
	resp, err := u.fetcher.FetchBytes(fetchCtx, entry.URL())
	cancel()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	img, err := u.decoder.Decode(ref, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	// キャンセルされた取得ではどの層にも書き込まない
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := u.disk.Store(ctx, &domain.CachedResponse{
		URL:         entry.URL(),
		Body:        resp.Body,
		ContentType: resp.ContentType,
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		StoredAt:    ctxtime.Now(ctx),
	}); err != nil {
		slog.WarnContext(ctx, "ディスクキャッシュへの保存に失敗しました",
			"bucket", ref.Bucket().String(),
			"path", ref.Path().String(),
			"error", err,
		)
	}
	u.memory.Put(ref.CacheKey(), img)

	return img, nil
}

func (u *imageFetchUseCaseImpl) resolveSignedURL(ctx context.Context, ref domain.ObjectRef) (*domain.SignedURLEntry, error) {
	entry, err := u.signedURLs.Get(ctx, ref)
	if err == nil {
		u.metrics.ObserveLookup(LayerSignedURL, true)
		return entry, nil
	}
	u.metrics.ObserveLookup(LayerSignedURL, false)
	if !errors.Is(err, domain.ErrCacheMiss) {
		slog.WarnContext(ctx, "署名付きURLキャッシュの参照に失敗しました",
			"bucket", ref.Bucket().String(),
			"path", ref.Path().String(),
			"error", err,
		)
	}

	signCtx, cancel := context.WithTimeout(ctx, u.cfg.SignTimeout)
	defer cancel()

	url, err := u.store.MintSignedURL(signCtx, ref.Bucket().String(), ref.Path().String(), u.cfg.RemoteURLLifetime)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrSigningFailure, err)
	}

	entry, err = domain.NewSignedURLEntry(ctx, ref, url, u.cfg.SignedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailure, err)
	}

	if err := u.signedURLs.Put(ctx, entry); err != nil {
		slog.WarnContext(ctx, "署名付きURLのキャッシュに失敗しました",
			"bucket", ref.Bucket().String(),
			"path", ref.Path().String(),
			"error", err,
		)
	}

	return entry, nil
}

// PreloadImages は各パスの取得をバックグラウンドで開始し、完了を待たずに戻る
// 呼び出し元のキャンセルは引き継がない
func (u *imageFetchUseCaseImpl) PreloadImages(ctx context.Context, paths []string, bucket string) {
	base := context.WithoutCancel(ctx)
	for _, path := range paths {
		u.preloads.Add(1)
		go func(path string) {
			defer u.preloads.Done()

			pctx, cancel := context.WithTimeout(base, u.cfg.PreloadTimeout)
			defer cancel()
			unregister := context.AfterFunc(u.done, cancel)
			defer unregister()

			if u.cfg.PreloadLimiter != nil {
				if err := u.cfg.PreloadLimiter.Wait(pctx); err != nil {
					return
				}
			}
			_ = u.GetImage(pctx, path, bucket)
		}(path)
	}
}

func (u *imageFetchUseCaseImpl) WaitPreloads() {
	u.preloads.Wait()
}

// Close は実行中のプリロードと取得をキャンセルし、終了を待つ
func (u *imageFetchUseCaseImpl) Close() {
	u.stop()
	u.mu.Lock()
	u.closed = true
	u.mu.Unlock()
	u.preloads.Wait()
	u.flights.Wait()
}

func (u *imageFetchUseCaseImpl) ClearAll(ctx context.Context) error {
	u.memory.Clear()

	var errs []error
	if err := u.signedURLs.Clear(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to clear signed url cache: %w", err))
	}
	if err := u.disk.Clear(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to clear disk cache: %w", err))
	}
	return errors.Join(errs...)
}

// ClearExpired は期限切れの署名付きURLのみを削除する
// メモリとディスクのキャッシュには有効期限がないため対象外
func (u *imageFetchUseCaseImpl) ClearExpired(ctx context.Context) (int, error) {
	return u.signedURLs.EvictExpired(ctx)
}

// SweepDisk は保持期間を過ぎたディスクキャッシュを削除する
func (u *imageFetchUseCaseImpl) SweepDisk(ctx context.Context) (int, error) {
	return u.disk.RemoveOlderThan(ctx, ctxtime.Now(ctx).Add(-DiskRetention))
}

func (u *imageFetchUseCaseImpl) GetCacheInfo(ctx context.Context) (domain.CacheInfo, error) {
	count, err := u.signedURLs.Count(ctx)
	if err != nil {
		return domain.CacheInfo{}, fmt.Errorf("failed to count signed urls: %w", err)
	}
	return domain.CacheInfo{
		MemoryImageCount:   u.memory.Len(),
		MemoryBytes:        u.memory.Bytes(),
		DiskCacheSizeBytes: u.disk.CurrentUsageBytes(),
		DiskEntryCount:     u.disk.Len(),
		SignedURLCount:     count,
	}, nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

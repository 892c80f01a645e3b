package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/infrastructure/disk"
	"github.com/na2na-p/mealcache/internal/infrastructure/imaging"
	"github.com/na2na-p/mealcache/internal/infrastructure/memory"
	"github.com/na2na-p/mealcache/internal/infrastructure/signedurl"
	"github.com/na2na-p/mealcache/internal/usecase"
)

type countingStore struct {
	mints atomic.Int32
}

func (s *countingStore) MintSignedURL(_ context.Context, bucket, path string, _ time.Duration) (string, error) {
	if path == "missing.png" {
		return "", fmt.Errorf("head object: %w", domain.ErrObjectNotFound)
	}
	n := s.mints.Add(1)
	return fmt.Sprintf("https://storage.example.com/%s/%s?X-Amz-Signature=sig%d", bucket, path, n), nil
}

type countingFetcher struct {
	body    []byte
	fetches atomic.Int32
	// gate がnilでなければ、閉じられるまで取得をブロックする
	gate chan struct{}
}

func (f *countingFetcher) FetchBytes(ctx context.Context, _ string) (*domain.FetchedResponse, error) {
	f.fetches.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &domain.FetchedResponse{
		Body:        f.body,
		ContentType: "image/png",
		StatusCode:  http.StatusOK,
		Header:      http.Header{"Content-Type": []string{"image/png"}},
	}, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	return buf.Bytes()
}

type scenario struct {
	memory  *memory.ImageCache
	signed  *signedurl.MemoryStore
	disk    *disk.ResponseCache
	store   *countingStore
	fetcher *countingFetcher
	uc      usecase.ImageFetchUseCase
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	diskCache, err := disk.Open(t.TempDir(), disk.DefaultMaxBytes)
	if err != nil {
		t.Fatalf("disk.Open() failed: %v", err)
	}
	s := &scenario{
		memory:  memory.NewImageCache(memory.DefaultMaxBytes),
		signed:  signedurl.NewMemoryStore(signedurl.DefaultMaxEntries, signedurl.DefaultOverflowMargin),
		disk:    diskCache,
		store:   &countingStore{},
		fetcher: &countingFetcher{body: pngBytes(t)},
	}
	s.uc = usecase.NewImageFetchUseCase(s.memory, s.signed, s.disk, s.store, s.fetcher, imaging.NewDecoder(), nil, usecase.ImageFetchConfig{})
	t.Cleanup(s.uc.Close)
	return s
}

type counts struct {
	Mints   int32
	Fetches int32
	Memory  int
	Disk    int
}

func (s *scenario) counts() counts {
	return counts{
		Mints:   s.store.mints.Load(),
		Fetches: s.fetcher.fetches.Load(),
		Memory:  s.memory.Len(),
		Disk:    s.disk.Len(),
	}
}

func TestImageFetchUseCase_Lifecycle(t *testing.T) {
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, baseTime)
	s := newScenario(t)

	steps := []struct {
		name    string
		elapsed time.Duration
		before  func()
		want    counts
	}{
		{
			name: "初回は署名とダウンロードが1回ずつ行われる",
			want: counts{Mints: 1, Fetches: 1, Memory: 1, Disk: 1},
		},
		{
			name:    "2回目はメモリから返る",
			elapsed: time.Minute,
			want:    counts{Mints: 1, Fetches: 1, Memory: 1, Disk: 1},
		},
		{
			name:    "メモリを失っても署名付きURLとディスクから復元できる",
			elapsed: 10 * time.Minute,
			before:  s.memory.Clear,
			want:    counts{Mints: 1, Fetches: 1, Memory: 1, Disk: 1},
		},
		{
			name:    "51分後は署名付きURLを再発行し、新しいURLで取り直す",
			elapsed: 51 * time.Minute,
			before:  s.memory.Clear,
			want:    counts{Mints: 2, Fetches: 2, Memory: 1, Disk: 2},
		},
	}

	for _, step := range steps {
		ctxtimetest.SetFixedNow(t, ctx, baseTime.Add(step.elapsed))
		if step.before != nil {
			step.before()
		}
		img := s.uc.GetImage(ctx, "meals/u1/lunch.png", "")
		if img == nil {
			t.Fatalf("%s: GetImage() = nil", step.name)
		}
		if diff := cmp.Diff(step.want, s.counts()); diff != "" {
			t.Errorf("%s: counts mismatch (-want +got):\n%s", step.name, diff)
		}
	}

	img := s.uc.GetImage(ctx, "meals/u1/lunch.png", "")
	if diff := cmp.Diff("png", img.Format()); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([2]int{4, 3}, [2]int{img.Width(), img.Height()}); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}

	removed, err := s.uc.ClearExpired(ctx)
	if err != nil {
		t.Fatalf("ClearExpired() unexpected error: %v", err)
	}
	if diff := cmp.Diff(0, removed); diff != "" {
		t.Errorf("ClearExpired() mismatch (-want +got):\n%s", diff)
	}

	ctxtimetest.SetFixedNow(t, ctx, baseTime.Add(102*time.Minute))
	removed, err = s.uc.ClearExpired(ctx)
	if err != nil {
		t.Fatalf("ClearExpired() unexpected error: %v", err)
	}
	if diff := cmp.Diff(1, removed); diff != "" {
		t.Errorf("ClearExpired() after expiry mismatch (-want +got):\n%s", diff)
	}

	info, err := s.uc.GetCacheInfo(ctx)
	if err != nil {
		t.Fatalf("GetCacheInfo() unexpected error: %v", err)
	}
	if diff := cmp.Diff(1, info.MemoryImageCount); diff != "" {
		t.Errorf("MemoryImageCount mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(0, info.SignedURLCount); diff != "" {
		t.Errorf("SignedURLCount mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, info.DiskEntryCount); diff != "" {
		t.Errorf("DiskEntryCount mismatch (-want +got):\n%s", diff)
	}

	if err := s.uc.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll() unexpected error: %v", err)
	}
	info, err = s.uc.GetCacheInfo(ctx)
	if err != nil {
		t.Fatalf("GetCacheInfo() unexpected error: %v", err)
	}
	if diff := cmp.Diff(domain.CacheInfo{}, info); diff != "" {
		t.Errorf("GetCacheInfo() after ClearAll mismatch (-want +got):\n%s", diff)
	}
}

func TestImageFetchUseCase_NotFoundLeavesCachesUntouched(t *testing.T) {
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, baseTime)
	s := newScenario(t)

	if img := s.uc.GetImage(ctx, "missing.png", ""); img != nil {
		t.Fatalf("GetImage() = %v, want nil", img)
	}
	if diff := cmp.Diff(counts{}, s.counts()); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestImageFetchUseCase_DecodeFailureIsNotCached(t *testing.T) {
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, baseTime)
	s := newScenario(t)
	s.fetcher.body = []byte("<html>forbidden</html>")

	if img := s.uc.GetImage(ctx, "meals/u1/lunch.png", ""); img != nil {
		t.Fatalf("GetImage() = %v, want nil", img)
	}
	// 署名付きURLは発行済みなので残るが、ディスクとメモリは空のまま
	if diff := cmp.Diff(counts{Mints: 1, Fetches: 1}, s.counts()); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestImageFetchUseCase_ConcurrentMissesAreCoalesced(t *testing.T) {
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, baseTime)
	s := newScenario(t)
	s.fetcher.gate = make(chan struct{})

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*domain.Image, callers)
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.uc.GetImage(ctx, "meals/u1/lunch.png", "")
		}(i)
	}

	// 最初の取得が始まってから他の呼び出しが合流するまで待つ
	deadline := time.Now().Add(5 * time.Second)
	for s.fetcher.fetches.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(s.fetcher.gate)
	wg.Wait()

	for i, img := range results {
		if img == nil {
			t.Errorf("results[%d] = nil", i)
		}
	}
	if diff := cmp.Diff(counts{Mints: 1, Fetches: 1, Memory: 1, Disk: 1}, s.counts()); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

type fetchResult struct {
	img *domain.Image
	err error
}

func (s *scenario) fetchAsync(ctx context.Context, path string) <-chan fetchResult {
	ch := make(chan fetchResult, 1)
	go func() {
		img, err := s.uc.FetchImage(ctx, path, "")
		ch <- fetchResult{img: img, err: err}
	}()
	return ch
}

func (s *scenario) waitFetchStarted(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for s.fetcher.fetches.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("fetch did not start")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestImageFetchUseCase_CoalescedCancellation(t *testing.T) {
	const path = "meals/u1/lunch.png"

	t.Run("正常系: 先に取得を始めた呼び出し元がキャンセルしても、合流した呼び出しとプリロードは画像を受け取る", func(t *testing.T) {
		ctx := testid.WithValue(context.Background(), uuid.NewString())
		ctxtimetest.SetFixedNow(t, ctx, baseTime)
		s := newScenario(t)
		s.fetcher.gate = make(chan struct{})

		leaderCtx, cancelLeader := context.WithCancel(ctx)
		defer cancelLeader()
		leader := s.fetchAsync(leaderCtx, path)
		s.waitFetchStarted(t)

		follower := s.fetchAsync(ctx, path)
		s.uc.PreloadImages(ctx, []string{path}, "")
		// 合流するまで待つ
		time.Sleep(50 * time.Millisecond)

		cancelLeader()
		if res := <-leader; !errors.Is(res.err, context.Canceled) {
			t.Errorf("leader error = %v, want context.Canceled", res.err)
		}

		close(s.fetcher.gate)
		res := <-follower
		if res.err != nil {
			t.Fatalf("follower unexpected error: %v", res.err)
		}
		if res.img == nil {
			t.Fatal("follower image = nil")
		}
		s.uc.WaitPreloads()

		if diff := cmp.Diff(counts{Mints: 1, Fetches: 1, Memory: 1, Disk: 1}, s.counts()); diff != "" {
			t.Errorf("counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("正常系: 合流した呼び出し元のキャンセルは先に始めた取得に影響しない", func(t *testing.T) {
		ctx := testid.WithValue(context.Background(), uuid.NewString())
		ctxtimetest.SetFixedNow(t, ctx, baseTime)
		s := newScenario(t)
		s.fetcher.gate = make(chan struct{})

		leader := s.fetchAsync(ctx, path)
		s.waitFetchStarted(t)

		followerCtx, cancelFollower := context.WithCancel(ctx)
		defer cancelFollower()
		follower := s.fetchAsync(followerCtx, path)
		time.Sleep(50 * time.Millisecond)

		cancelFollower()
		if res := <-follower; !errors.Is(res.err, context.Canceled) {
			t.Errorf("follower error = %v, want context.Canceled", res.err)
		}

		close(s.fetcher.gate)
		res := <-leader
		if res.err != nil {
			t.Fatalf("leader unexpected error: %v", res.err)
		}
		if res.img == nil {
			t.Fatal("leader image = nil")
		}

		if diff := cmp.Diff(counts{Mints: 1, Fetches: 1, Memory: 1, Disk: 1}, s.counts()); diff != "" {
			t.Errorf("counts mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestImageFetchUseCase_PreloadImages(t *testing.T) {
	t.Run("正常系: 呼び出し元のキャンセル後もプリロードは完了する", func(t *testing.T) {
		ctx := testid.WithValue(context.Background(), uuid.NewString())
		ctxtimetest.SetFixedNow(t, ctx, baseTime)
		s := newScenario(t)

		callerCtx, cancel := context.WithCancel(ctx)
		s.uc.PreloadImages(callerCtx, []string{"a.png", "b.png", "../bad.png", "missing.png"}, "")
		cancel()
		s.uc.WaitPreloads()

		if diff := cmp.Diff(counts{Mints: 2, Fetches: 2, Memory: 2, Disk: 2}, s.counts()); diff != "" {
			t.Errorf("counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("正常系: Closeは実行中のプリロードをキャンセルし何も保存しない", func(t *testing.T) {
		ctx := testid.WithValue(context.Background(), uuid.NewString())
		ctxtimetest.SetFixedNow(t, ctx, baseTime)
		s := newScenario(t)
		s.fetcher.gate = make(chan struct{})

		s.uc.PreloadImages(ctx, []string{"a.png", "b.png"}, "")
		deadline := time.Now().Add(5 * time.Second)
		for s.fetcher.fetches.Load() < 2 && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		s.uc.Close()

		if diff := cmp.Diff(0, s.memory.Len()); diff != "" {
			t.Errorf("memory Len mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(0, s.disk.Len()); diff != "" {
			t.Errorf("disk Len mismatch (-want +got):\n%s", diff)
		}
	})
}

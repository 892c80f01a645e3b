package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/usecase"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 20 * 1024 * 1024
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrBodyTooLarge     = errors.New("response body too large")
)

var _ usecase.ByteFetcher = (*Fetcher)(nil)

// Fetcher は署名付きURLから画像のバイト列を取得する。リトライは行わない
type Fetcher struct {
	httpClient   *http.Client
	maxBodyBytes int64
}

func NewFetcher(httpClient *http.Client, maxBodyBytes int64) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Fetcher{
		httpClient:   httpClient,
		maxBodyBytes: maxBodyBytes,
	}
}

func (f *Fetcher) FetchBytes(ctx context.Context, url string) (*domain.FetchedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("画像の取得に失敗しました: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み込みに失敗しました: %w", err)
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, fmt.Errorf("%w: limit=%d", ErrBodyTooLarge, f.maxBodyBytes)
	}

	return &domain.FetchedResponse{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
		Header:      resp.Header.Clone(),
	}, nil
}

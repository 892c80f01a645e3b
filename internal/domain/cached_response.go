package domain

import (
	"net/http"
	"time"
)

// CachedResponse はディスクキャッシュに保存されるレスポンス
// キーは取得に使った署名付きURL
type CachedResponse struct {
	URL         string
	Body        []byte
	ContentType string
	StatusCode  int
	Header      http.Header
	StoredAt    time.Time
}

func (r *CachedResponse) Size() int64 {
	return int64(len(r.Body))
}

// FetchedResponse はネットワークから取得したバイト列
type FetchedResponse struct {
	Body        []byte
	ContentType string
	StatusCode  int
	Header      http.Header
}

package domain

import (
	"context"
	"errors"
	"time"

	"github.com/newmo-oss/ctxtime"
)

const (
	// SignedURLTTL はキャッシュ上での署名付きURLの有効期間
	// リモートストア側の有効期間より短くし、失効前に再発行する
	SignedURLTTL = 50 * time.Minute

	// RemoteSignedURLLifetime はリモートストアに要求する署名付きURLの有効期間
	RemoteSignedURLLifetime = 60 * time.Minute
)

var (
	ErrEmptySignedURL = errors.New("signed url must not be empty")
	ErrInvalidTTL     = errors.New("ttl must be positive")
)

// SignedURLEntry は発行済みの署名付きURLとその有効期限
// 更新時は丸ごと置き換える
type SignedURLEntry struct {
	ref       ObjectRef
	url       string
	createdAt time.Time
	expiresAt time.Time
}

func NewSignedURLEntry(ctx context.Context, ref ObjectRef, url string, ttl time.Duration) (*SignedURLEntry, error) {
	if url == "" {
		return nil, ErrEmptySignedURL
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	now := ctxtime.Now(ctx)
	return &SignedURLEntry{
		ref:       ref,
		url:       url,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

// ReconstructSignedURLEntry は永続化されたエントリを復元する
func ReconstructSignedURLEntry(ref ObjectRef, url string, createdAt, expiresAt time.Time) (*SignedURLEntry, error) {
	if url == "" {
		return nil, ErrEmptySignedURL
	}
	return &SignedURLEntry{
		ref:       ref,
		url:       url,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}, nil
}

func (e *SignedURLEntry) Ref() ObjectRef {
	return e.ref
}

func (e *SignedURLEntry) URL() string {
	return e.url
}

func (e *SignedURLEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *SignedURLEntry) ExpiresAt() time.Time {
	return e.expiresAt
}

// IsValidAt は now < expiresAt の場合にtrueを返す
func (e *SignedURLEntry) IsValidAt(now time.Time) bool {
	return now.Before(e.expiresAt)
}

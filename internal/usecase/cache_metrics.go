//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_cache_metrics.go -package=usecase
package usecase

import "errors"

type CacheLayer string

const (
	LayerMemory    CacheLayer = "memory"
	LayerSignedURL CacheLayer = "signed_url"
	LayerDisk      CacheLayer = "disk"
)

type FailureKind string

const (
	FailureSigning  FailureKind = "signing"
	FailureFetch    FailureKind = "fetch"
	FailureDecode   FailureKind = "decode"
	FailureCanceled FailureKind = "canceled"
	FailureOther    FailureKind = "other"
)

// CacheMetrics はキャッシュの各層のヒット率と失敗を記録する
type CacheMetrics interface {
	ObserveLookup(layer CacheLayer, hit bool)
	IncFailure(kind FailureKind)
}

// NoopCacheMetrics は何も記録しない
type NoopCacheMetrics struct{}

func (NoopCacheMetrics) ObserveLookup(CacheLayer, bool) {}
func (NoopCacheMetrics) IncFailure(FailureKind)         {}

func classifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, ErrSigningFailure):
		return FailureSigning
	case errors.Is(err, ErrFetchFailure):
		return FailureFetch
	case errors.Is(err, ErrDecodeFailure):
		return FailureDecode
	case isContextError(err):
		return FailureCanceled
	default:
		return FailureOther
	}
}

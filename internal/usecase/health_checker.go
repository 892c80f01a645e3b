//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_health_checker.go -package=usecase
package usecase

import (
	"context"
)

// Component はレディネスで報告する依存先の種類
type Component string

const (
	ComponentObjectStore    Component = "object_store"
	ComponentSignedURLCache Component = "signed_url_cache"
	ComponentDiskCache      Component = "disk_cache"
)

// HealthChecker は依存先ごとの疎通確認
type HealthChecker interface {
	Component() Component
	// Backend は実装の種類（s3, minio, storageapi, redis, disk）
	Backend() string
	Check(ctx context.Context) error
}

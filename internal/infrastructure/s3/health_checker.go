package s3

import (
	"context"
	"fmt"

	"github.com/na2na-p/mealcache/internal/usecase"
)

var _ usecase.HealthChecker = (*S3HealthChecker)(nil)

// S3HealthChecker は既定バケットへのHeadBucketで署名に使う認証情報も含めて確認する
type S3HealthChecker struct {
	client *S3Client
}

func NewS3HealthChecker(client *S3Client) *S3HealthChecker {
	return &S3HealthChecker{client: client}
}

func (c *S3HealthChecker) Component() usecase.Component {
	return usecase.ComponentObjectStore
}

func (c *S3HealthChecker) Backend() string {
	return backendName
}

func (c *S3HealthChecker) Check(ctx context.Context) error {
	if err := c.client.HeadBucket(ctx); err != nil {
		return fmt.Errorf("bucket %q is not reachable: %w", c.client.healthBucket, err)
	}
	return nil
}

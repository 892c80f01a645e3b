package redis

import (
	"context"
	"fmt"

	"github.com/na2na-p/mealcache/internal/usecase"
)

var _ usecase.HealthChecker = (*RedisHealthChecker)(nil)

// RedisHealthChecker は共有署名付きURLキャッシュの疎通を確認する
// 失敗しても取得処理は署名付きURLを発行し直して続行できる
type RedisHealthChecker struct {
	client *RedisClient
}

func NewRedisHealthChecker(client *RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (c *RedisHealthChecker) Component() usecase.Component {
	return usecase.ComponentSignedURLCache
}

func (c *RedisHealthChecker) Backend() string {
	return "redis"
}

func (c *RedisHealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("signed url cache is not reachable: %w", err)
	}
	return nil
}

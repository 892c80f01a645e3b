package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/na2na-p/mealcache/internal/domain"
)

// GetJSON は指定されたキーの値をJSONとして読み出す
// キーが存在しない場合は domain.ErrCacheMiss を返す
func (c *RedisClient) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("キーの取得に失敗しました: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("JSONデシリアライズに失敗しました: %w", err)
	}
	return nil
}

// members は指定範囲のソート済みセットのメンバーを返す
func (c *RedisClient) members(ctx context.Context, key string, start, stop int64) ([]string, error) {
	got, err := c.client.ZRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("インデックスの取得に失敗しました: %w", err)
	}
	return got, nil
}

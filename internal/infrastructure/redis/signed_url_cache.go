package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/newmo-oss/ctxtime"
	"github.com/redis/go-redis/v9"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/usecase"
)

const (
	DefaultMaxEntries     = 1000
	DefaultOverflowMargin = 100
)

var _ usecase.SignedURLCache = (*SignedURLCache)(nil)

type signedURLRecord struct {
	Bucket    string    `json:"bucket"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignedURLCache は署名付きURLをRedisに保存し、レプリカ間で共有する
// エントリ本体はRedisのTTLで失効し、2つのインデックスで件数上限と期限切れの掃除を行う
type SignedURLCache struct {
	client         *RedisClient
	maxEntries     int
	overflowMargin int
}

func NewSignedURLCache(client *RedisClient, maxEntries, overflowMargin int) *SignedURLCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if overflowMargin < 0 || overflowMargin > maxEntries {
		overflowMargin = DefaultOverflowMargin
	}
	return &SignedURLCache{
		client:         client,
		maxEntries:     maxEntries,
		overflowMargin: overflowMargin,
	}
}

func (c *SignedURLCache) Get(ctx context.Context, ref domain.ObjectRef) (*domain.SignedURLEntry, error) {
	var rec signedURLRecord
	if err := c.client.GetJSON(ctx, SignedURLKey(ref.CacheKey()), &rec); err != nil {
		return nil, err
	}

	entry, err := domain.ReconstructSignedURLEntry(ref, rec.URL, rec.CreatedAt, rec.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("署名付きURLエントリの復元に失敗しました: %w", err)
	}
	if !entry.IsValidAt(ctxtime.Now(ctx)) {
		return nil, domain.ErrCacheMiss
	}
	return entry, nil
}

func (c *SignedURLCache) Put(ctx context.Context, entry *domain.SignedURLEntry) error {
	cacheKey := entry.Ref().CacheKey()
	ttl := entry.ExpiresAt().Sub(ctxtime.Now(ctx))
	if ttl <= 0 {
		return nil
	}

	if err := c.makeRoom(ctx, cacheKey); err != nil {
		return err
	}

	payload, err := json.Marshal(signedURLRecord{
		Bucket:    entry.Ref().Bucket().String(),
		Path:      entry.Ref().Path().String(),
		URL:       entry.URL(),
		CreatedAt: entry.CreatedAt(),
		ExpiresAt: entry.ExpiresAt(),
	})
	if err != nil {
		return fmt.Errorf("JSONシリアライズに失敗しました: %w", err)
	}

	_, err = c.client.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, SignedURLKey(cacheKey), string(payload), ttl)
		pipe.ZAdd(ctx, SignedURLCreatedIndexKey, redis.Z{Score: float64(entry.CreatedAt().UnixMilli()), Member: cacheKey})
		pipe.ZAdd(ctx, SignedURLExpiresIndexKey, redis.Z{Score: float64(entry.ExpiresAt().UnixMilli()), Member: cacheKey})
		return nil
	})
	if err != nil {
		return fmt.Errorf("署名付きURLの保存に失敗しました: %w", err)
	}
	return nil
}

// makeRoom は新しいキーの追加で上限を超える場合、作成日時の古い順に削除する
func (c *SignedURLCache) makeRoom(ctx context.Context, cacheKey string) error {
	err := c.client.client.ZScore(ctx, SignedURLCreatedIndexKey, cacheKey).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, redis.Nil) {
		return fmt.Errorf("インデックスの参照に失敗しました: %w", err)
	}

	count, err := c.client.client.ZCard(ctx, SignedURLCreatedIndexKey).Result()
	if err != nil {
		return fmt.Errorf("件数の取得に失敗しました: %w", err)
	}
	if count < int64(c.maxEntries) {
		return nil
	}

	n := count - int64(c.maxEntries) + int64(c.overflowMargin)
	if n < 1 {
		n = 1
	}
	oldest, err := c.client.members(ctx, SignedURLCreatedIndexKey, 0, n-1)
	if err != nil {
		return err
	}
	return c.remove(ctx, oldest)
}

func (c *SignedURLCache) remove(ctx context.Context, cacheKeys []string) error {
	if len(cacheKeys) == 0 {
		return nil
	}
	keys := make([]string, len(cacheKeys))
	members := make([]interface{}, len(cacheKeys))
	for i, k := range cacheKeys {
		keys[i] = SignedURLKey(k)
		members[i] = k
	}

	_, err := c.client.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, SignedURLCreatedIndexKey, members...)
		pipe.ZRem(ctx, SignedURLExpiresIndexKey, members...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("署名付きURLの削除に失敗しました: %w", err)
	}
	return nil
}

// EvictExpired は expiresAt <= now のエントリをインデックスから取り除く
func (c *SignedURLCache) EvictExpired(ctx context.Context) (int, error) {
	now := ctxtime.Now(ctx).UnixMilli()
	expired, err := c.client.client.ZRangeByScore(ctx, SignedURLExpiresIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now, 10),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("期限切れエントリの取得に失敗しました: %w", err)
	}
	if err := c.remove(ctx, expired); err != nil {
		return 0, err
	}
	return len(expired), nil
}

func (c *SignedURLCache) Clear(ctx context.Context) error {
	all, err := c.client.members(ctx, SignedURLCreatedIndexKey, 0, -1)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(all)+2)
	for _, k := range all {
		keys = append(keys, SignedURLKey(k))
	}
	keys = append(keys, SignedURLCreatedIndexKey, SignedURLExpiresIndexKey)

	if err := c.client.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("署名付きURLキャッシュの削除に失敗しました: %w", err)
	}
	return nil
}

// Count は掃除前の期限切れエントリも含む件数を返す
func (c *SignedURLCache) Count(ctx context.Context) (int, error) {
	n, err := c.client.client.ZCard(ctx, SignedURLCreatedIndexKey).Result()
	if err != nil {
		return 0, fmt.Errorf("件数の取得に失敗しました: %w", err)
	}
	return int(n), nil
}

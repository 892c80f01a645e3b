// Package redis は複数のレプリカで共有する署名付きURLキャッシュを提供する
// キーのプレフィックスはこのファイルで一元管理する
package redis

const (
	// SignedURLKeyPrefix は署名付きURLエントリのキー
	// Format: mealcache:signed_url:{bucket}/{path}
	SignedURLKeyPrefix = "mealcache:signed_url:"

	// SignedURLCreatedIndexKey は作成日時をスコアとするソート済みセット
	// 件数上限による追い出しに使う
	SignedURLCreatedIndexKey = "mealcache:signed_url_index:created"

	// SignedURLExpiresIndexKey は有効期限をスコアとするソート済みセット
	// 期限切れエントリの掃除に使う
	SignedURLExpiresIndexKey = "mealcache:signed_url_index:expires"
)

// SignedURLKey は ObjectRef.CacheKey() からエントリのキーを生成する
func SignedURLKey(cacheKey string) string {
	return SignedURLKeyPrefix + cacheKey
}

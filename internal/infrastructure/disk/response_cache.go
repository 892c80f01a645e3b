package disk

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/usecase"
)

// DefaultMaxBytes はディスクキャッシュの容量上限
const DefaultMaxBytes int64 = 200 * 1024 * 1024

const (
	bodySuffix = ".body"
	metaSuffix = ".json"
)

var _ usecase.DiskResponseCache = (*ResponseCache)(nil)

// entryMeta はボディと並べて保存するメタデータ
type entryMeta struct {
	URL         string      `json:"url"`
	ContentType string      `json:"content_type"`
	StatusCode  int         `json:"status_code"`
	Header      http.Header `json:"header,omitempty"`
	StoredAt    time.Time   `json:"stored_at"`
	Size        int64       `json:"size"`
}

// ResponseCache は取得したレスポンスをURLごとにファイルとして保存する
// インデックスはOpen時にメタデータから再構築するため、再起動後もエントリが残る
type ResponseCache struct {
	mu       sync.RWMutex
	baseDir  string
	maxBytes int64
	used     int64
	entries  map[string]*entryMeta
	readFile func(name string) ([]byte, error)
}

func Open(baseDir string, maxBytes int64) (*ResponseCache, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("キャッシュディレクトリの作成に失敗しました: %w", err)
	}

	c := &ResponseCache{
		baseDir:  baseDir,
		maxBytes: maxBytes,
		entries:  make(map[string]*entryMeta),
		readFile: os.ReadFile,
	}
	if err := c.loadIndex(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ResponseCache) loadIndex() error {
	metas, err := filepath.Glob(filepath.Join(c.baseDir, "*"+metaSuffix))
	if err != nil {
		return fmt.Errorf("インデックスの読み込みに失敗しました: %w", err)
	}
	for _, metaPath := range metas {
		name := strings.TrimSuffix(filepath.Base(metaPath), metaSuffix)
		raw, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}
		var meta entryMeta
		if err := json.Unmarshal(raw, &meta); err != nil || fileName(meta.URL) != name {
			// 壊れたエントリは捨てる
			c.removeFiles(name)
			continue
		}
		if _, err := os.Stat(c.bodyPath(name)); err != nil {
			c.removeFiles(name)
			continue
		}
		c.entries[name] = &meta
		c.used += meta.Size
	}
	c.evictUntil(0)
	return nil
}

func fileName(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

func (c *ResponseCache) bodyPath(name string) string {
	return filepath.Join(c.baseDir, name+bodySuffix)
}

func (c *ResponseCache) metaPath(name string) string {
	return filepath.Join(c.baseDir, name+metaSuffix)
}

// lookupAttempts はボディの読み込み中に同じURLが保存し直された場合の再試行を含む回数
const lookupAttempts = 2

func (c *ResponseCache) Lookup(_ context.Context, url string) (*domain.CachedResponse, error) {
	name := fileName(url)

	for range lookupAttempts {
		c.mu.RLock()
		meta, ok := c.entries[name]
		c.mu.RUnlock()
		if !ok {
			return nil, domain.ErrCacheMiss
		}

		body, err := c.readFile(c.bodyPath(name))
		if err == nil {
			return &domain.CachedResponse{
				URL:         meta.URL,
				Body:        body,
				ContentType: meta.ContentType,
				StatusCode:  meta.StatusCode,
				Header:      meta.Header,
				StoredAt:    meta.StoredAt,
			}, nil
		}

		c.mu.Lock()
		replaced := c.entries[name] != meta
		if !replaced {
			// ファイルが外部から消された場合はインデックスからも外す
			c.deleteLocked(name)
		}
		c.mu.Unlock()
		if replaced {
			continue
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("キャッシュファイルの読み込みに失敗しました: %w", err)
	}
	return nil, domain.ErrCacheMiss
}

// Store はレスポンスを保存する。容量上限より大きいレスポンスは保存しない
func (c *ResponseCache) Store(_ context.Context, resp *domain.CachedResponse) error {
	size := resp.Size()
	if size > c.maxBytes {
		slog.Debug("容量上限を超えるレスポンスは保存しません", "size", size)
		return nil
	}

	name := fileName(resp.URL)
	meta := &entryMeta{
		URL:         resp.URL,
		ContentType: resp.ContentType,
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		StoredAt:    resp.StoredAt,
		Size:        size,
	}
	rawMeta, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("メタデータのシリアライズに失敗しました: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.deleteLocked(name)
	c.evictUntil(size)

	if err := writeFileAtomic(c.bodyPath(name), resp.Body); err != nil {
		return err
	}
	if err := writeFileAtomic(c.metaPath(name), rawMeta); err != nil {
		_ = os.Remove(c.bodyPath(name))
		return err
	}

	c.entries[name] = meta
	c.used += size
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("キャッシュファイルの書き込みに失敗しました: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("キャッシュファイルの書き込みに失敗しました: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("キャッシュファイルの配置に失敗しました: %w", err)
	}
	return nil
}

// evictUntil は incoming バイトを追加できるまで保存日時の古い順に削除する
func (c *ResponseCache) evictUntil(incoming int64) {
	if c.used+incoming <= c.maxBytes {
		return
	}
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return c.entries[names[i]].StoredAt.Before(c.entries[names[j]].StoredAt)
	})
	for _, name := range names {
		if c.used+incoming <= c.maxBytes {
			return
		}
		c.deleteLocked(name)
	}
}

func (c *ResponseCache) deleteLocked(name string) {
	if meta, ok := c.entries[name]; ok {
		c.used -= meta.Size
		delete(c.entries, name)
	}
	c.removeFiles(name)
}

func (c *ResponseCache) removeFiles(name string) {
	_ = os.Remove(c.bodyPath(name))
	_ = os.Remove(c.metaPath(name))
}

func (c *ResponseCache) CurrentUsageBytes() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.used
}

func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ResponseCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for name := range c.entries {
		for _, p := range []string{c.bodyPath(name), c.metaPath(name)} {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
		}
	}
	c.entries = make(map[string]*entryMeta)
	c.used = 0
	return errors.Join(errs...)
}

// RemoveOlderThan は cutoff より前に保存されたエントリを削除し、削除件数を返す
func (c *ResponseCache) RemoveOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for name, meta := range c.entries {
		if meta.StoredAt.Before(cutoff) {
			c.deleteLocked(name)
			removed++
		}
	}
	return removed, nil
}

// HealthChecker はキャッシュディレクトリへの書き込み可否を確認する
type HealthChecker struct {
	cache *ResponseCache
}

func NewHealthChecker(cache *ResponseCache) *HealthChecker {
	return &HealthChecker{cache: cache}
}

func (h *HealthChecker) Component() usecase.Component {
	return usecase.ComponentDiskCache
}

func (h *HealthChecker) Backend() string {
	return "disk"
}

func (h *HealthChecker) Check(_ context.Context) error {
	f, err := os.CreateTemp(h.cache.baseDir, ".health-*")
	if err != nil {
		return fmt.Errorf("disk cache health check failed: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

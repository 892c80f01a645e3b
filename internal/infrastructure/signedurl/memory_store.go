package signedurl

import (
	"context"
	"sort"
	"sync"

	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/usecase"
)

const (
	DefaultMaxEntries     = 1000
	DefaultOverflowMargin = 100
)

var _ usecase.SignedURLCache = (*MemoryStore)(nil)

// MemoryStore はプロセス内で署名付きURLを保持する
type MemoryStore struct {
	mu             sync.Mutex
	entries        map[string]*domain.SignedURLEntry
	maxEntries     int
	overflowMargin int
}

func NewMemoryStore(maxEntries, overflowMargin int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if overflowMargin < 0 || overflowMargin > maxEntries {
		overflowMargin = DefaultOverflowMargin
	}
	return &MemoryStore{
		entries:        make(map[string]*domain.SignedURLEntry),
		maxEntries:     maxEntries,
		overflowMargin: overflowMargin,
	}
}

// Get は有効期限内のエントリのみを返す
func (s *MemoryStore) Get(ctx context.Context, ref domain.ObjectRef) (*domain.SignedURLEntry, error) {
	now := ctxtime.Now(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[ref.CacheKey()]
	if !ok || !entry.IsValidAt(now) {
		return nil, domain.ErrCacheMiss
	}
	return entry, nil
}

// Put は新しいキーの追加で上限を超える場合、作成日時の古い順に
// count - maxEntries + overflowMargin 件を先に削除する
func (s *MemoryStore) Put(_ context.Context, entry *domain.SignedURLEntry) error {
	key := entry.Ref().CacheKey()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxEntries {
		s.evictOldest(len(s.entries) - s.maxEntries + s.overflowMargin)
	}
	s.entries[key] = entry
	return nil
}

func (s *MemoryStore) evictOldest(n int) {
	// マージン0でも上限を超えないよう最低1件は削除する
	if n < 1 {
		n = 1
	}
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return s.entries[keys[i]].CreatedAt().Before(s.entries[keys[j]].CreatedAt())
	})
	if n > len(keys) {
		n = len(keys)
	}
	for _, k := range keys[:n] {
		delete(s.entries, k)
	}
}

// EvictExpired は expiresAt <= now のエントリを削除し、削除件数を返す
func (s *MemoryStore) EvictExpired(ctx context.Context) (int, error) {
	now := ctxtime.Now(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, e := range s.entries {
		if !e.IsValidAt(now) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*domain.SignedURLEntry)
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries), nil
}

package memory

import (
	"container/list"
	"sync"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/usecase"
)

// DefaultMaxBytes はデコード済み画像キャッシュの容量上限
const DefaultMaxBytes int64 = 50 * 1024 * 1024

var _ usecase.MemoryImageCache = (*ImageCache)(nil)

type item struct {
	key string
	img *domain.Image
}

// ImageCache はバイト数で容量を管理するLRUキャッシュ
// 上限を超えた場合は最も長く参照されていない画像から追い出す
type ImageCache struct {
	mu       sync.Mutex
	maxBytes int64
	used     int64
	order    *list.List
	items    map[string]*list.Element
}

func NewImageCache(maxBytes int64) *ImageCache {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &ImageCache{
		maxBytes: maxBytes,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *ImageCache) Get(key string) (*domain.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*item).img, true
}

// Put は画像を登録する。容量上限より大きい画像は保持しない
func (c *ImageCache) Put(key string, img *domain.Image) {
	if img == nil {
		return
	}
	cost := img.Cost()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
	if cost > c.maxBytes {
		return
	}

	for c.used+cost > c.maxBytes {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
	}

	c.items[key] = c.order.PushFront(&item{key: key, img: img})
	c.used += cost
}

func (c *ImageCache) removeElement(elem *list.Element) {
	it := elem.Value.(*item)
	c.order.Remove(elem)
	delete(c.items, it.key)
	c.used -= it.img.Cost()
}

func (c *ImageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.items = make(map[string]*list.Element)
	c.used = 0
}

func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *ImageCache) Bytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

package memory_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/na2na-p/mealcache/internal/domain"
	"github.com/na2na-p/mealcache/internal/infrastructure/memory"
)

func newImage(t *testing.T, path string, size int) *domain.Image {
	t.Helper()
	ref, err := domain.ParseObjectRef("", path)
	if err != nil {
		t.Fatalf("ParseObjectRef() failed: %v", err)
	}
	return domain.NewImage(ref, make([]byte, size), "image/jpeg", "jpeg", 1, 1)
}

type op struct {
	put  string
	size int
	get  string
}

func TestImageCache_PutGet(t *testing.T) {
	tests := []struct {
		name      string
		maxBytes  int64
		ops       []op
		wantKeys  []string
		wantBytes int64
	}{
		{
			name:      "正常系: 容量内であればすべて保持される",
			maxBytes:  100,
			ops:       []op{{put: "a", size: 30}, {put: "b", size: 30}, {put: "c", size: 30}},
			wantKeys:  []string{"a", "b", "c"},
			wantBytes: 90,
		},
		{
			name:      "正常系: 容量を超えると最も古い画像から追い出される",
			maxBytes:  100,
			ops:       []op{{put: "a", size: 40}, {put: "b", size: 40}, {put: "c", size: 40}},
			wantKeys:  []string{"b", "c"},
			wantBytes: 80,
		},
		{
			name:      "正常系: 参照された画像は追い出し順が後ろになる",
			maxBytes:  100,
			ops:       []op{{put: "a", size: 40}, {put: "b", size: 40}, {get: "a"}, {put: "c", size: 40}},
			wantKeys:  []string{"a", "c"},
			wantBytes: 80,
		},
		{
			name:      "正常系: 同じキーの再登録は置き換えとして扱われる",
			maxBytes:  100,
			ops:       []op{{put: "a", size: 40}, {put: "a", size: 60}},
			wantKeys:  []string{"a"},
			wantBytes: 60,
		},
		{
			name:      "正常系: 容量上限より大きい画像は保持されない",
			maxBytes:  100,
			ops:       []op{{put: "a", size: 10}, {put: "huge", size: 101}},
			wantKeys:  []string{"a"},
			wantBytes: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := memory.NewImageCache(tt.maxBytes)
			for _, o := range tt.ops {
				if o.put != "" {
					c.Put(o.put, newImage(t, "meals/"+o.put+".jpg", o.size))
					continue
				}
				c.Get(o.get)
			}

			var got []string
			for _, k := range []string{"a", "b", "c", "huge"} {
				if _, ok := c.Get(k); ok {
					got = append(got, k)
				}
			}
			if diff := cmp.Diff(tt.wantKeys, got); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
			if c.Bytes() != tt.wantBytes {
				t.Errorf("Bytes() = %d, want %d", c.Bytes(), tt.wantBytes)
			}
			if c.Len() != len(tt.wantKeys) {
				t.Errorf("Len() = %d, want %d", c.Len(), len(tt.wantKeys))
			}
		})
	}
}

func TestImageCache_Clear(t *testing.T) {
	c := memory.NewImageCache(0)
	c.Put("a", newImage(t, "meals/a.jpg", 10))
	c.Put("b", newImage(t, "meals/b.jpg", 10))

	c.Clear()

	if c.Len() != 0 || c.Bytes() != 0 {
		t.Errorf("after Clear() Len=%d Bytes=%d, want 0", c.Len(), c.Bytes())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get() after Clear() returned a hit")
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	c := memory.NewImageCache(1024)
	img := newImage(t, "meals/a.jpg", 16)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%8))
			c.Put(key, img)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if c.Bytes() > 1024 {
		t.Errorf("Bytes() = %d exceeds budget", c.Bytes())
	}
	if c.Len() > 8 {
		t.Errorf("Len() = %d, want <= 8", c.Len())
	}
}

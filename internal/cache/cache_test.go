package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	require.NotNil(t, c)
	assert.Equal(t, 100, c.Capacity())
	assert.Equal(t, 0, c.Len())

	assert.Equal(t, DefaultCapacity, New[string, int](0).Capacity())
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = c.Get("nonexistent")
	assert.False(t, ok)

	c.Set("key1", 7)
	val, _ = c.Get("key1")
	assert.Equal(t, 7, val)
	assert.Equal(t, 1, c.Len())
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 100
	}

	assert.Equal(t, 100, c.GetOrCreate("key1", create))
	assert.Equal(t, 100, c.GetOrCreate("key1", create))
	assert.Equal(t, 1, calls)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch "a" so "b" becomes the oldest.
	_, _ = c.Get("a")
	c.Set("d", 4)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	for _, k := range []string{"a", "c", "d"} {
		_, ok := c.Get(k)
		assert.True(t, ok, "%s should still be cached", k)
	}
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	_, _ = c.Get("a")
	_, _ = c.Get("a")
	_, _ = c.Get("missing")

	s := c.Stats()
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 2.0/3.0, s.HitRate, 1e-9)

	c.ResetStats()
	s = c.Stats()
	assert.Zero(t, s.Hits)
	assert.Zero(t, s.Misses)
	assert.Zero(t, s.HitRate)
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](64)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := strconv.Itoa((g * i) % 100)
				c.GetOrCreate(k, func() int { return i })
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 64)
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int {
			return i
		})
	}
}

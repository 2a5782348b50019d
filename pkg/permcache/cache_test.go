package permcache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapline/tapline/pkg/permcache"
)

// fakeClock provides a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestCacheGetPut(t *testing.T) {
	t.Parallel()

	t.Run("stores and retrieves values", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		gen := cache.Generation("k")
		require.True(t, cache.Put("k", "v", 0, gen))

		got, ok := cache.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("missing key is a miss", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		_, ok := cache.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, uint64(1), cache.Stats().Misses)
	})

	t.Run("entries expire after their ttl", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		cache := permcache.New[string](5*time.Minute, permcache.WithClock(clock.Now))

		require.True(t, cache.Put("k", "v", 0, cache.Generation("k")))

		clock.Advance(4 * time.Minute)
		_, ok := cache.Get("k")
		assert.True(t, ok)

		clock.Advance(time.Minute)
		_, ok = cache.Get("k")
		assert.False(t, ok)
		assert.Equal(t, uint64(1), cache.Stats().Expirations)
	})

	t.Run("per-entry ttl overrides the default", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		cache := permcache.New[string](5*time.Minute, permcache.WithClock(clock.Now))

		require.True(t, cache.Put("list", "v", 2*time.Minute, cache.Generation("list")))

		clock.Advance(2 * time.Minute)
		_, ok := cache.Get("list")
		assert.False(t, ok)
	})

	t.Run("overwrites existing entries", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		require.True(t, cache.Put("k", "old", 0, cache.Generation("k")))
		require.True(t, cache.Put("k", "new", 0, cache.Generation("k")))

		got, ok := cache.Get("k")
		require.True(t, ok)
		assert.Equal(t, "new", got)
	})
}

func TestCacheInvalidation(t *testing.T) {
	t.Parallel()

	t.Run("invalidate removes the entry immediately", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		require.True(t, cache.Put("k", "v", 0, cache.Generation("k")))
		cache.Invalidate("k")

		_, ok := cache.Get("k")
		assert.False(t, ok)
	})

	t.Run("put loses against a concurrent invalidate", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		// Simulates a slow load: generation observed, invalidation lands,
		// then the stale put arrives.
		gen := cache.Generation("k")
		cache.Invalidate("k")

		assert.False(t, cache.Put("k", "stale", 0, gen))
		_, ok := cache.Get("k")
		assert.False(t, ok)
		assert.Equal(t, uint64(1), cache.Stats().RejectedPut)
	})

	t.Run("put loses against invalidate all", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		gen := cache.Generation("k")
		cache.InvalidateAll()

		assert.False(t, cache.Put("k", "stale", 0, gen))
	})

	t.Run("invalidate then invalidate all never revives a snapshot", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		cache.Invalidate("k")
		gen := cache.Generation("k")
		cache.Invalidate("k")
		cache.InvalidateAll()

		assert.False(t, cache.Put("k", "stale", 0, gen))
	})

	t.Run("invalidate all clears every entry", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		require.True(t, cache.Put("a", "1", 0, cache.Generation("a")))
		require.True(t, cache.Put("b", "2", 0, cache.Generation("b")))
		cache.InvalidateAll()

		assert.Equal(t, 0, cache.Len())
	})

	t.Run("fresh generation after invalidate accepts puts", func(t *testing.T) {
		t.Parallel()
		cache := permcache.New[string](time.Minute)

		cache.Invalidate("k")
		assert.True(t, cache.Put("k", "fresh", 0, cache.Generation("k")))
	})
}

func TestSweepExpired(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	cache := permcache.New[string](5*time.Minute, permcache.WithClock(clock.Now))

	require.True(t, cache.Put("old", "v", 0, cache.Generation("old")))
	clock.Advance(3 * time.Minute)
	require.True(t, cache.Put("young", "v", 0, cache.Generation("young")))
	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, cache.SweepExpired())
	assert.Equal(t, 1, cache.Len())

	_, ok := cache.Get("young")
	assert.True(t, ok)
}

func TestStatsCounters(t *testing.T) {
	t.Parallel()

	cache := permcache.New[string](time.Minute)

	require.True(t, cache.Put("k", "v", 0, cache.Generation("k")))
	_, _ = cache.Get("k")
	_, _ = cache.Get("k")
	_, _ = cache.Get("missing")

	stats := cache.Stats()
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

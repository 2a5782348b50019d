package permcache

import (
	"sync"
	"time"
)

// DefaultTTL applies to permission-set entries.
const DefaultTTL = 5 * time.Minute

// DefaultListTTL is the shorter TTL conventional for list-result caches.
const DefaultListTTL = 2 * time.Minute

// Stats holds cache counters, observable in tests and metrics.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Expirations uint64
	RejectedPut uint64
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock injects a time source, replacing time.Now. Tests use it to
// drive TTL expiry deterministically.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

type entry[V any] struct {
	value     V
	createdAt time.Time
	ttl       time.Duration
}

// Cache is a mutex-guarded TTL map with generation-stamped writes.
// The zero value is not usable; construct with New.
type Cache[V any] struct {
	mu         sync.Mutex
	items      map[string]entry[V]
	keyGens    map[string]uint64
	globalGen  uint64
	defaultTTL time.Duration
	clock      func() time.Time
	stats      Stats
}

// New creates a cache whose entries default to the given TTL.
// Non-positive TTLs fall back to DefaultTTL.
func New[V any](defaultTTL time.Duration, opts ...Option) *Cache[V] {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[V]{
		items:      make(map[string]entry[V]),
		keyGens:    make(map[string]uint64),
		defaultTTL: defaultTTL,
		clock:      o.clock,
	}
}

// Generation returns the current write generation for key. Snapshot it
// before starting a slow load and pass it to Put.
func (c *Cache[V]) Generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globalGen + c.keyGens[key]
}

// Get returns the cached value for key. Expired entries count as misses
// and are removed on the spot.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	if c.clock().Sub(e.createdAt) >= e.ttl {
		delete(c.items, key)
		c.stats.Expirations++
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	return e.value, true
}

// Put stores value under key with the given TTL (zero means the cache
// default). The write is rejected, returning false, if the generation
// observed via Generation has advanced, meaning an Invalidate or
// InvalidateAll happened after the load began and the value may be stale.
func (c *Cache[V]) Put(key string, value V, ttl time.Duration, gen uint64) bool {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.globalGen+c.keyGens[key] != gen {
		c.stats.RejectedPut++
		return false
	}
	c.items[key] = entry[V]{value: value, createdAt: c.clock(), ttl: ttl}
	return true
}

// Invalidate removes the entry for key. The removal is visible to the
// next Get from any goroutine, and any in-flight Put that started before
// this call will be rejected.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	c.keyGens[key]++
}

// InvalidateAll clears every entry. Used on bulk hierarchy migrations.
func (c *Cache[V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	// keyGens is kept so observed generations only ever move forward;
	// resetting it could make an old snapshot collide with the new sum.
	c.globalGen++
}

// SweepExpired removes every expired entry and returns how many were
// dropped. Callable from a periodic timer owned by the host process.
func (c *Cache[V]) SweepExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	removed := 0
	for key, e := range c.items {
		if now.Sub(e.createdAt) >= e.ttl {
			delete(c.items, key)
			removed++
		}
	}
	c.stats.Expirations += uint64(removed)
	return removed
}

// Len returns the number of entries, expired ones included until swept.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Package permcache provides the in-memory, time-bounded cache used to
// keep authorization decisions cheap between mutations.
//
// The cache is a passive key-value store: it never loads anything itself.
// A miss is reported to the caller, who performs the store read and hands
// the result back via Put. Two instances with separate namespaces are
// conventional: one for single-principal permission sets (five-minute
// TTL) and one for list-shaped results (two-minute TTL), so list
// staleness never couples to permission staleness.
//
// Concurrent invalidation is resolved with generations rather than
// timing. Callers snapshot the generation before starting a load and pass
// it to Put; if an Invalidate or InvalidateAll happened in between, the
// generation has advanced and the stale Put is rejected:
//
//	gen := cache.Generation(key)
//	if v, ok := cache.Get(key); ok {
//	    return v, nil
//	}
//	v, err := load(ctx)            // slow path, may block on I/O
//	...
//	cache.Put(key, v, 0, gen)      // no-op if invalidated meanwhile
//
// All operations hold a single mutex, so no caller ever observes a
// half-written entry, and an Invalidate is visible to the very next Get
// from any goroutine. Expired entries are dropped lazily on Get; hosts
// that want bounded memory between accesses call SweepExpired on their
// own timer instead of relying on a hidden background goroutine.
package permcache

// Package cache provides a generic in-memory cache with TTL expiration,
// optional LRU eviction and stampede-safe loading.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's default TTL (1 hour unless configured)
//   - Negative: item never expires
//
// With [WithSlidingExpiration] every successful Get restarts the entry's TTL,
// which turns it into an idle timeout:
//
//	visitors := cache.NewMemory[*session.Visitor](
//	    cache.WithDefaultTTL(24 * time.Hour),
//	    cache.WithSlidingExpiration(),
//	    cache.WithMaxEntries(100_000),
//	)
//	defer visitors.Close()
//
// [Memory.GetOrSet] computes missing values once per key even under
// concurrent misses (golang.org/x/sync/singleflight):
//
//	doc, err := docs.GetOrSet(ctx, "home", func(ctx context.Context) (*Doc, time.Duration, error) {
//	    d, err := render("home")
//	    return d, cache.NoExpiration, err
//	})
//
// Sentinel errors [ErrNotFound] and [ErrClosed] are checked with [errors.Is].
package cache

// Package hoard provides a generic fixed-capacity in-memory cache with
// pluggable eviction policies.
//
// # Overview
//
// Hoard is a type-safe bounded cache for Go applications. A lookup
// table gives O(1) access by key and an intrusive doubly-linked list
// gives O(1) ordering updates, so every operation runs in constant
// time regardless of policy. When an insertion would exceed capacity,
// the configured eviction policy picks the entry to drop. Three
// policies ship with the package (LRU, LFU, FIFO) and callers can
// supply their own.
//
// # Basic Usage
//
// Create a cache with a capacity and perform basic operations:
//
//	cache, err := hoard.New[string, int](1000)
//	if err != nil {
//		return err
//	}
//
//	// Set a value
//	cache.Set("answer", 42)
//
//	// Get a value
//	if v, ok := cache.Get("answer"); ok {
//		fmt.Println(v)
//	}
//
//	// Delete a value
//	cache.Delete("answer")
//
// Capacity is fixed at construction and must be positive; New returns
// an error wrapping [ErrInvalidCapacity] otherwise.
//
// # Eviction Policies
//
// The policy determines which entry is removed when the cache is full:
//
//	// LRU - Least Recently Used (default)
//	cache, _ := hoard.New[string, int](100)
//
//	// LFU - Least Frequently Used, ties broken by recency
//	cache, _ := hoard.New[string, int](100,
//		hoard.WithPolicy(hoard.NewLFUPolicy[string, int]()))
//
//	// FIFO - First In, First Out; access never reorders entries
//	cache, _ := hoard.New[string, int](100,
//		hoard.WithPolicy(hoard.NewFIFOPolicy[string, int]()))
//
// Custom algorithms implement [EvictionPolicy]. The cache depends only
// on that contract: it reports insertions, accesses, and removals, and
// asks for a candidate when it must evict.
//
// # Eviction Listener
//
// An OnEvict listener observes every automatic eviction. It receives
// the exact key and value removed and runs synchronously, before the
// triggering Set returns. Explicit Delete and Clear calls do not fire
// it:
//
//	cache, _ := hoard.New[string, int](100,
//		hoard.OnEvict(func(key string, value int) {
//			log.Printf("evicted %s=%d", key, value)
//		}),
//	)
//
// Because the listener runs while the cache is mid-mutation, it must
// not call back into the cache that invoked it.
//
// # Automatic Loading
//
// Use a loader function to fetch missing entries:
//
//	cache, _ := hoard.New[string, *User](100,
//		hoard.WithLoader(func(id string) (*User, error) {
//			return db.GetUser(id)
//		}),
//	)
//
//	// GetOrLoad checks the cache, then calls the loader on miss
//	user, err := cache.GetOrLoad("user:123")
//
// # Statistics
//
// The cache counts hits, misses, evictions, and live entries:
//
//	stats := cache.Stats()
//	fmt.Printf("hit rate: %.2f\n", stats.HitRate())
//
// The hoardprom subpackage exposes these as Prometheus metrics.
//
// # Concurrency
//
// Cache methods are not safe for concurrent use. Operations are
// CPU-bound and run to completion synchronously, including listener
// callbacks; callers that share a cache across goroutines must wrap
// every operation in their own critical section so the lookup table
// and the policy are never mutated mid-flight by two goroutines.
// Statistics are the one exception: counters are atomic, so Stats may
// be read from any goroutine.
package hoard

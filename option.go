package hoard

type config[K comparable, V any] struct {
	policy  EvictionPolicy[K, V]
	loader  func(K) (V, error)
	onEvict func(K, V)
	onHit   func(K, V)
	onMiss  func(K)
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithPolicy sets the eviction policy. The default is LRU. Pass one of
// the built-in constructors (NewLRUPolicy, NewFIFOPolicy, NewLFUPolicy)
// or any custom EvictionPolicy implementation.
func WithPolicy[K comparable, V any](p EvictionPolicy[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithLoader sets a function to load values on cache miss, used by
// GetOrLoad.
func WithLoader[K comparable, V any](fn func(K) (V, error)) Option[K, V] {
	return func(c *config[K, V]) {
		c.loader = fn
	}
}

// OnEvict sets a listener invoked once per automatic eviction with the
// evicted key and value. It runs synchronously, inside the Set call
// that triggered the eviction, and is not invoked by Delete or Clear.
//
// The listener must not call back into the cache that invoked it; the
// table and policy are mid-mutation while it runs.
func OnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onEvict = fn
	}
}

// OnHit sets a callback invoked on cache hits.
func OnHit[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked on cache misses.
func OnMiss[K comparable, V any](fn func(K)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onMiss = fn
	}
}

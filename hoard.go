package hoard

import "fmt"

// Cache is a generic fixed-capacity key-value cache with a pluggable
// eviction policy. It is not safe for concurrent use; see the package
// documentation.
type Cache[K comparable, V any] struct {
	capacity int
	data     map[K]*Entry[K, V]
	policy   EvictionPolicy[K, V]
	cfg      config[K, V]
	stats    stats
}

// New creates a Cache holding at most capacity entries. Capacity must
// be positive, or New returns an error wrapping ErrInvalidCapacity.
// With no options the cache uses the LRU policy and no listeners.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCapacity, capacity)
	}

	var cfg config[K, V]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.policy == nil {
		cfg.policy = NewLRUPolicy[K, V]()
	}

	return &Cache[K, V]{
		capacity: capacity,
		data:     make(map[K]*Entry[K, V], capacity),
		policy:   cfg.policy,
		cfg:      cfg,
	}, nil
}

// Set adds or updates a value. It returns the previous value and true
// when the key was already present; otherwise the zero value and false.
//
// When inserting a new key into a full cache, Set first evicts the
// policy's candidate and, if an OnEvict listener is configured, invokes
// it with the evicted pair before returning.
func (c *Cache[K, V]) Set(key K, value V) (previous V, replaced bool) {
	if e, ok := c.data[key]; ok {
		previous = e.value
		e.value = value
		c.policy.RecordAccess(e)
		return previous, true
	}

	if len(c.data) == c.capacity {
		c.evictOne()
	}

	e := &Entry[K, V]{key: key, value: value, freq: 1}
	c.data[key] = e
	c.policy.RecordInsertion(e)
	c.stats.entryAdded()
	return previous, false
}

// evictOne removes the policy's eviction candidate from both the table
// and the policy, then notifies the listener. A full cache with no
// candidate means the policy lost track of entries the table still
// holds; that is a policy bug, not a recoverable condition.
func (c *Cache[K, V]) evictOne() {
	victim := c.policy.Candidate()
	if victim == nil {
		panic(fmt.Sprintf("hoard: policy returned no eviction candidate with %d entries cached", len(c.data)))
	}

	delete(c.data, victim.key)
	c.policy.Remove(victim)
	c.stats.evict()
	c.stats.entryRemoved()

	if c.cfg.onEvict != nil {
		c.cfg.onEvict(victim.key, victim.value)
	}
}

// Get retrieves a value, recording the access with the eviction
// policy. Returns the value and true on a hit, the zero value and
// false on a miss. A miss has no side effects beyond the miss counter.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.data[key]
	if !ok {
		c.stats.miss()
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		var zero V
		return zero, false
	}

	c.policy.RecordAccess(e)
	c.stats.hit()
	if c.cfg.onHit != nil {
		c.cfg.onHit(key, e.value)
	}
	return e.value, true
}

// GetOrLoad retrieves a value, calling the configured loader on a
// miss and caching the result. Loader errors propagate and cache
// nothing. Without a loader GetOrLoad behaves like Get, returning the
// zero value on a miss.
func (c *Cache[K, V]) GetOrLoad(key K) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	var zero V
	if c.cfg.loader == nil {
		return zero, nil
	}

	v, err := c.cfg.loader(key)
	if err != nil {
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}

// Peek retrieves a value without recording an access: the eviction
// order, the entry's frequency, and the hit/miss counters are all left
// untouched.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if e, ok := c.data[key]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Has reports whether a key is present, without recording an access.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.data[key]
	return ok
}

// Delete removes a key, returning the removed value and true if it was
// present. Deleting an absent key is a no-op returning the zero value
// and false. Delete never invokes the OnEvict listener.
func (c *Cache[K, V]) Delete(key K) (V, bool) {
	e, ok := c.data[key]
	if !ok {
		var zero V
		return zero, false
	}

	delete(c.data, key)
	c.policy.Remove(e)
	c.stats.entryRemoved()
	return e.value, true
}

// Clear removes all entries and resets the eviction policy. Hit, miss,
// and eviction counters are preserved; the entry gauge drops to zero.
func (c *Cache[K, V]) Clear() {
	c.data = make(map[K]*Entry[K, V], c.capacity)
	c.policy.Clear()
	c.stats.resetEntries()
}

// Len returns the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	return len(c.data)
}

// Capacity returns the fixed capacity set at construction.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys in unspecified order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns a snapshot of cache statistics. Unlike every other
// method, Stats may be called from any goroutine; the underlying
// counters are atomic.
func (c *Cache[K, V]) Stats() Snapshot {
	return c.stats.snapshot()
}

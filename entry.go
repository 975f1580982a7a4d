package hoard

// Entry is a single key-value pair tracked by the cache.
//
// The prev/next links are intrusive: they thread the entry directly
// into whichever List currently orders it, so policies can detach and
// reinsert it in O(1) without allocating wrapper nodes. An entry
// belongs to at most one list at a time.
type Entry[K comparable, V any] struct {
	key   K
	value V
	freq  int // access count, maintained by the LFU policy

	prev, next *Entry[K, V]
	list       *List[K, V]
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's current value.
func (e *Entry[K, V]) Value() V { return e.value }

// Frequency returns the entry's access count. Only the LFU policy
// maintains it; under other policies it stays at 1.
func (e *Entry[K, V]) Frequency() int { return e.freq }

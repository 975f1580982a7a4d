package hoard

// EvictionPolicy decides which entry the cache evicts when it is full.
// The cache notifies the policy of every insertion, access, and
// removal; the policy keeps its own ordering structure and designates
// a candidate on demand. All operations are O(1).
//
// Implementations are not required to be safe for concurrent use; the
// cache that owns the policy provides whatever synchronization it
// needs (see the package documentation).
type EvictionPolicy[K comparable, V any] interface {
	// RecordAccess is called on every cache hit and on every update
	// of an existing key.
	RecordAccess(e *Entry[K, V])

	// RecordInsertion is called exactly once per entry, when a new
	// key is added to the cache.
	RecordInsertion(e *Entry[K, V])

	// Candidate returns the entry that should be evicted next,
	// without removing it, or nil if the policy tracks nothing.
	Candidate() *Entry[K, V]

	// Remove stops tracking an entry. The cache calls it after
	// deciding to delete the entry, whether explicitly or by
	// eviction. Removing an untracked entry is a no-op.
	Remove(e *Entry[K, V])

	// Clear resets all policy state.
	Clear()
}

// Compile-time interface assertions.
var (
	_ EvictionPolicy[string, int] = (*lruPolicy[string, int])(nil)
	_ EvictionPolicy[string, int] = (*fifoPolicy[string, int])(nil)
	_ EvictionPolicy[string, int] = (*lfuPolicy[string, int])(nil)
)

// lruPolicy evicts the least recently used entry. A single intrusive
// list orders entries by access recency, newest at the front.
type lruPolicy[K comparable, V any] struct {
	order List[K, V]
}

// NewLRUPolicy returns a least-recently-used eviction policy. It is
// the default policy for new caches.
func NewLRUPolicy[K comparable, V any]() EvictionPolicy[K, V] {
	return new(lruPolicy[K, V])
}

func (p *lruPolicy[K, V]) RecordAccess(e *Entry[K, V]) {
	p.order.MoveToFront(e)
}

func (p *lruPolicy[K, V]) RecordInsertion(e *Entry[K, V]) {
	p.order.PushFront(e)
}

func (p *lruPolicy[K, V]) Candidate() *Entry[K, V] {
	return p.order.Back()
}

func (p *lruPolicy[K, V]) Remove(e *Entry[K, V]) {
	p.order.Remove(e)
}

func (p *lruPolicy[K, V]) Clear() {
	p.order.Init()
}

// fifoPolicy evicts the oldest inserted entry. Access never reorders
// the list, so the tail is always the first key that came in.
type fifoPolicy[K comparable, V any] struct {
	order List[K, V]
}

// NewFIFOPolicy returns a first-in-first-out eviction policy.
func NewFIFOPolicy[K comparable, V any]() EvictionPolicy[K, V] {
	return new(fifoPolicy[K, V])
}

func (p *fifoPolicy[K, V]) RecordAccess(e *Entry[K, V]) {
	// insertion order is fixed; access has no effect
}

func (p *fifoPolicy[K, V]) RecordInsertion(e *Entry[K, V]) {
	p.order.PushFront(e)
}

func (p *fifoPolicy[K, V]) Candidate() *Entry[K, V] {
	return p.order.Back()
}

func (p *fifoPolicy[K, V]) Remove(e *Entry[K, V]) {
	p.order.Remove(e)
}

func (p *fifoPolicy[K, V]) Clear() {
	p.order.Init()
}

// lfuPolicy evicts the least frequently used entry. Entries live in
// per-frequency buckets; within a bucket the tail is the least
// recently touched, so frequency ties break by recency. minFreq tracks
// the lowest occupied bucket.
type lfuPolicy[K comparable, V any] struct {
	buckets map[int]*List[K, V]
	minFreq int
	size    int
}

// NewLFUPolicy returns a least-frequently-used eviction policy.
// Frequency ties are broken by evicting the least recently used entry
// at that frequency.
func NewLFUPolicy[K comparable, V any]() EvictionPolicy[K, V] {
	return &lfuPolicy[K, V]{buckets: make(map[int]*List[K, V])}
}

func (p *lfuPolicy[K, V]) RecordAccess(e *Entry[K, V]) {
	b := p.buckets[e.freq]
	if b == nil || e.list != b {
		return
	}

	b.Remove(e)
	if b.Len() == 0 {
		delete(p.buckets, e.freq)
		// Only the minimum bucket emptying moves the minimum; the
		// successor bucket is the one this entry is about to occupy.
		if p.minFreq == e.freq {
			p.minFreq++
		}
	}

	e.freq++
	p.bucket(e.freq).PushFront(e)
}

func (p *lfuPolicy[K, V]) RecordInsertion(e *Entry[K, V]) {
	e.freq = 1
	p.bucket(1).PushFront(e)
	p.minFreq = 1
	p.size++
}

func (p *lfuPolicy[K, V]) Candidate() *Entry[K, V] {
	if p.size == 0 {
		return nil
	}
	return p.buckets[p.minFreq].Back()
}

func (p *lfuPolicy[K, V]) Remove(e *Entry[K, V]) {
	b := p.buckets[e.freq]
	if b == nil || e.list != b {
		return
	}

	b.Remove(e)
	p.size--
	if b.Len() == 0 {
		delete(p.buckets, e.freq)
		if e.freq == p.minFreq {
			p.resetMin()
		}
	}
}

func (p *lfuPolicy[K, V]) Clear() {
	p.buckets = make(map[int]*List[K, V])
	p.minFreq = 0
	p.size = 0
}

func (p *lfuPolicy[K, V]) bucket(freq int) *List[K, V] {
	b := p.buckets[freq]
	if b == nil {
		b = new(List[K, V])
		p.buckets[freq] = b
	}
	return b
}

// resetMin rescans bucket keys after a removal empties the minimum
// bucket. Unlike the access path there is no adjacent successor to
// step to, so this is the one operation that is O(distinct
// frequencies) instead of O(1). It only runs on explicit deletes.
func (p *lfuPolicy[K, V]) resetMin() {
	p.minFreq = 0
	if p.size == 0 {
		return
	}
	for freq := range p.buckets {
		if p.minFreq == 0 || freq < p.minFreq {
			p.minFreq = freq
		}
	}
}

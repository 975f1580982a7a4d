package hoard

// List is an intrusive doubly-linked list of cache entries. It is the
// ordering primitive behind every eviction policy: the head end holds
// whatever the policy considers "newest" (most recently used, most
// recently inserted) and the tail holds the eviction candidate.
//
// The implementation is a ring with a single sentinel, so insertion,
// removal, move-to-front, and tail access are all O(1) with no nil
// special cases. The zero value is ready to use.
type List[K comparable, V any] struct {
	root Entry[K, V] // sentinel; root.next is the head, root.prev the tail
	size int
}

func (l *List[K, V]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Init empties the list in O(1), dropping all links at once. Entries
// that were threaded keep stale link values but are no longer
// considered members. Init returns l.
func (l *List[K, V]) Init() *List[K, V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.size = 0
	return l
}

// Len returns the number of entries in the list.
func (l *List[K, V]) Len() int { return l.size }

// PushFront inserts e at the head of the list. The entry must not
// currently belong to any list; entries already in a list must be
// moved with MoveToFront or removed first.
func (l *List[K, V]) PushFront(e *Entry[K, V]) {
	l.lazyInit()
	l.insertAfter(e, &l.root)
}

// MoveToFront moves e to the head of the list. Entries that are not
// members of l are left untouched; the relative order of all other
// entries is preserved.
func (l *List[K, V]) MoveToFront(e *Entry[K, V]) {
	if e.list != l || l.root.next == e {
		return
	}
	l.unlink(e)
	l.insertAfter(e, &l.root)
}

// Remove unlinks e from the list. Removing an entry that is not a
// member of l is an explicit no-op rather than a crash, so callers can
// delete defensively.
func (l *List[K, V]) Remove(e *Entry[K, V]) {
	if e.list != l {
		return
	}
	l.unlink(e)
	e.prev = nil
	e.next = nil
	e.list = nil
}

// Front returns the head entry, or nil if the list is empty.
func (l *List[K, V]) Front() *Entry[K, V] {
	if l.size == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the tail entry without removing it, or nil if the list
// is empty. The tail is the eviction candidate under every built-in
// policy.
func (l *List[K, V]) Back() *Entry[K, V] {
	if l.size == 0 {
		return nil
	}
	return l.root.prev
}

func (l *List[K, V]) insertAfter(e, at *Entry[K, V]) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.size++
}

func (l *List[K, V]) unlink(e *Entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	l.size--
}

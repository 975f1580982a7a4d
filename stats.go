package hoard

import "sync/atomic"

// stats holds the cache's live counters. The cache itself is
// single-threaded, but the counters use atomics so an observer (a
// metrics scraper, for example) can snapshot them from another
// goroutine without synchronizing with cache operations.
type stats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	entries   atomic.Int64
}

func (s *stats) hit() {
	s.hits.Add(1)
}

func (s *stats) miss() {
	s.misses.Add(1)
}

func (s *stats) evict() {
	s.evictions.Add(1)
}

func (s *stats) entryAdded() {
	s.entries.Add(1)
}

func (s *stats) entryRemoved() {
	s.entries.Add(-1)
}

func (s *stats) resetEntries() {
	s.entries.Store(0)
}

func (s *stats) snapshot() Snapshot {
	return Snapshot{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
		Entries:   s.entries.Load(),
	}
}

// Snapshot is a point-in-time copy of cache statistics.
type Snapshot struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int64
}

// HitRate returns the cache hit rate as a value between 0 and 1.
// Returns 0 if there have been no accesses.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

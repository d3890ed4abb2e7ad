package cache

import "sync/atomic"

// Stats tracks lookups against an identifier list. The counters are shared between copies of a Stats value.
type Stats struct {
	hits      *atomic.Int64
	misses    *atomic.Int64
	size      *atomic.Int64
	refreshes *atomic.Int64
}

func (s Stats) Combined(other Stats) Stats {
	combined := NewStats()

	combined.hits.Add(s.Hits() + other.Hits())
	combined.misses.Add(s.Misses() + other.Misses())
	combined.size.Add(s.Size() + other.Size())
	combined.refreshes.Add(s.Refreshes() + other.Refreshes())

	return combined
}

func (s Stats) Miss() {
	s.misses.Add(1)
}

func (s Stats) Misses() int64 {
	return s.misses.Load()
}

func (s Stats) Hit() {
	s.hits.Add(1)
}

func (s Stats) Hits() int64 {
	return s.hits.Load()
}

func (s Stats) Size() int64 {
	return s.size.Load()
}

// Refresh records a full replacement of the tracked list with one holding newSize entries.
func (s Stats) Refresh(newSize int) {
	s.refreshes.Add(1)
	s.size.Store(int64(newSize))
}

func (s Stats) Refreshes() int64 {
	return s.refreshes.Load()
}

func NewStats() Stats {
	return Stats{
		hits:      &atomic.Int64{},
		misses:    &atomic.Int64{},
		size:      &atomic.Int64{},
		refreshes: &atomic.Int64{},
	}
}

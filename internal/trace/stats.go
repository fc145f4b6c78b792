package trace

import "sync/atomic"

// Stats counts rays cast by a Tracer. It is safe to share across goroutines.
type Stats struct {
	primary   atomic.Int64
	secondary atomic.Int64
	shadow    atomic.Int64
	deepest   atomic.Int64
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Primary   int64
	Secondary int64
	Shadow    int64
	Deepest   int64 // largest depth passed to Trace
}

func (s *Stats) trace(depth int) {
	if depth <= 1 {
		s.primary.Add(1)
	} else {
		s.secondary.Add(1)
	}
	d := int64(depth)
	for {
		cur := s.deepest.Load()
		if d <= cur || s.deepest.CompareAndSwap(cur, d) {
			return
		}
	}
}

// Snapshot reads the counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Primary:   s.primary.Load(),
		Secondary: s.secondary.Load(),
		Shadow:    s.shadow.Load(),
		Deepest:   s.deepest.Load(),
	}
}

// Total is the number of rays of all kinds.
func (s Snapshot) Total() int64 {
	return s.Primary + s.Secondary + s.Shadow
}

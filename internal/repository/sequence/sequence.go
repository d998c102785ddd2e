// Package sequence hands out identity values for the in-memory stores.
package sequence

import "sync/atomic"

// Sequence is a monotonically increasing int64 generator starting at 1.
// The zero value is ready to use.
type Sequence struct {
	last atomic.Int64
}

// Next returns the next identity value.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Observe advances the sequence so that Next never returns a value <= id.
func (s *Sequence) Observe(id int64) {
	for {
		cur := s.last.Load()
		if id <= cur || s.last.CompareAndSwap(cur, id) {
			return
		}
	}
}

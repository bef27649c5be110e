// Package trail keeps bounded per-body position history for path rendering.
package trail

import "github.com/san-kum/orbital/internal/celestial"

// ring is a fixed-capacity FIFO of positions backed by a single array.
// Appending past capacity overwrites the oldest entry; nothing is ever
// reallocated during a run.
type ring struct {
	buf  []celestial.Vec3
	head int // index of the oldest entry
	n    int
}

func (r *ring) push(p celestial.Vec3) {
	if r.n < len(r.buf) {
		r.buf[(r.head+r.n)%len(r.buf)] = p
		r.n++
		return
	}
	r.buf[r.head] = p
	r.head = (r.head + 1) % len(r.buf)
}

func (r *ring) slice() []celestial.Vec3 {
	out := make([]celestial.Vec3, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

// Store holds one ring per body, index-aligned with the body slice it was
// built from.
type Store struct {
	rings []ring
}

// NewStore allocates rings sized by each body's TrailCap (falling back to
// celestial.DefaultTrailCap for zero or negative caps).
func NewStore(bodies []*celestial.Body) *Store {
	rings := make([]ring, len(bodies))
	for i, b := range bodies {
		n := b.TrailCap
		if n <= 0 {
			n = celestial.DefaultTrailCap
		}
		rings[i] = ring{buf: make([]celestial.Vec3, n)}
	}
	return &Store{rings: rings}
}

// Record appends the position to body i's history, evicting the oldest
// entry once the ring is full.
func (s *Store) Record(i int, pos celestial.Vec3) {
	s.rings[i].push(pos)
}

// Trajectory returns body i's recorded positions oldest-first. The slice is
// a copy; queries never expose or mutate the ring.
func (s *Store) Trajectory(i int) []celestial.Vec3 {
	return s.rings[i].slice()
}

// Len returns the number of recorded entries for body i.
func (s *Store) Len(i int) int { return s.rings[i].n }

// Cap returns body i's ring capacity.
func (s *Store) Cap(i int) int { return len(s.rings[i].buf) }

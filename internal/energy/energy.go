// Package energy computes mechanical energy and conservation diagnostics.
package energy

import (
	"math"

	"github.com/san-kum/orbital/internal/celestial"
)

// Total returns the system's mechanical energy: kinetic plus pairwise
// gravitational potential, each pair counted once. Recomputed from scratch
// every call; maintaining a running sum would compound floating-point
// error.
func Total(bodies []*celestial.Body) float64 {
	ke := 0.0
	pe := 0.0
	for i, bi := range bodies {
		v := bi.Velocity
		ke += 0.5 * bi.Mass * v.Dot(v)
		for j := i + 1; j < len(bodies); j++ {
			bj := bodies[j]
			r := bj.Position.Sub(bi.Position).Norm()
			pe -= celestial.G * bi.Mass * bj.Mass / r
		}
	}
	return ke + pe
}

// Tracker compares current energy against a baseline captured once at
// construction. The relative drift is the primary correctness signal for
// the whole simulation: a well-behaved run keeps it near zero, unbounded
// growth means an integration bug or an excessive timestep.
type Tracker struct {
	initial float64
}

func NewTracker(bodies []*celestial.Body) *Tracker {
	return &Tracker{initial: Total(bodies)}
}

// Initial returns the baseline energy.
func (t *Tracker) Initial() float64 { return t.initial }

// Err returns the signed relative deviation from the baseline,
// (E - E0) / |E0|.
func (t *Tracker) Err(bodies []*celestial.Body) float64 {
	if t.initial == 0 {
		return 0
	}
	return (Total(bodies) - t.initial) / math.Abs(t.initial)
}

// Package gravity computes pairwise Newtonian accelerations for a body set.
package gravity

import (
	"errors"
	"fmt"

	"github.com/san-kum/orbital/internal/celestial"
)

// ErrCoincident indicates two bodies at identical coordinates, for which
// the pairwise force is undefined.
var ErrCoincident = errors.New("gravity: coincident bodies")

// Model evaluates gravitational accelerations. The zero value is unusable;
// use NewModel.
type Model struct {
	G float64
}

// NewModel returns a model using the SI gravitational constant.
func NewModel() *Model {
	return &Model{G: celestial.G}
}

// Accelerations returns one acceleration per body, index-aligned with the
// input. Bodies are not mutated. Coincident bodies make the force
// undefined and are reported as an error rather than producing infinities.
func (m *Model) Accelerations(bodies []*celestial.Body) ([]celestial.Vec3, error) {
	acc := make([]celestial.Vec3, len(bodies))
	if err := m.AccelerationsInto(acc, bodies); err != nil {
		return nil, err
	}
	return acc, nil
}

// AccelerationsInto writes accelerations into acc, which must have
// len(bodies) elements. Each unordered pair is visited once; the reaction
// on body j is the negated contribution scaled by the mass ratio.
func (m *Model) AccelerationsInto(acc []celestial.Vec3, bodies []*celestial.Body) error {
	if len(acc) != len(bodies) {
		return fmt.Errorf("gravity: acc buffer has %d slots for %d bodies", len(acc), len(bodies))
	}
	for i := range acc {
		acc[i] = celestial.Vec3{}
	}

	for i := 0; i < len(bodies); i++ {
		bi := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			bj := bodies[j]

			r := bj.Position.Sub(bi.Position)
			d := r.Norm()
			if d == 0 {
				return fmt.Errorf("%w: %q and %q", ErrCoincident, bi.Name, bj.Name)
			}
			inv3 := 1 / (d * d * d)

			acc[i] = acc[i].Add(r.Scale(m.G * bj.Mass * inv3))
			acc[j] = acc[j].Sub(r.Scale(m.G * bi.Mass * inv3))
		}
	}
	return nil
}

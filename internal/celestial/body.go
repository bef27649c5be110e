package celestial

import "fmt"

// Body is a point mass participating in mutual gravitation.
//
// Position and Velocity are mutated only by the integrator; Acc and AccOld
// are integration scratch carried between steps and hold no meaning outside
// a stepping sequence.
type Body struct {
	Name   string
	Mass   float64 // [kg]
	Radius float64 // [m], presentation only, not used by the physics

	Position Vec3 // [m]
	Velocity Vec3 // [m/s]

	Acc    Vec3 // [m/s^2]
	AccOld Vec3

	// TrailCap is the per-body trajectory history capacity. Slow movers
	// (the Sun) need far fewer points than fast ones.
	TrailCap int
}

// NewBody constructs a body, rejecting non-positive mass.
func NewBody(name string, mass float64, pos, vel Vec3) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("body %q: mass must be positive, got %g", name, mass)
	}
	return &Body{
		Name:     name,
		Mass:     mass,
		Position: pos,
		Velocity: vel,
		TrailCap: DefaultTrailCap,
	}, nil
}

// DefaultTrailCap is the trajectory capacity used when a catalog entry does
// not set its own.
const DefaultTrailCap = 1000

// PositionAU returns the position converted to astronomical units.
func (b *Body) PositionAU() Vec3 {
	return b.Position.Scale(1 / AU)
}

// Speed returns |velocity| in m/s.
func (b *Body) Speed() float64 {
	return b.Velocity.Norm()
}

// DistanceTo returns the distance to another body in meters.
func (b *Body) DistanceTo(o *Body) float64 {
	return b.Position.Sub(o.Position).Norm()
}

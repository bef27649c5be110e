package gravity

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbital/internal/celestial"
)

func twoBodies(sep float64) []*celestial.Body {
	return []*celestial.Body{
		{Name: "a", Mass: 1e30},
		{Name: "b", Mass: 1e24, Position: celestial.Vec3{X: sep}},
	}
}

func TestTwoBodyAcceleration(t *testing.T) {
	m := NewModel()
	bodies := twoBodies(celestial.AU)

	acc, err := m.Accelerations(bodies)
	if err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}

	// |a| = G*M_other/d^2, directed along the separation axis.
	d2 := celestial.AU * celestial.AU
	wantA := celestial.G * bodies[1].Mass / d2
	wantB := celestial.G * bodies[0].Mass / d2

	if math.Abs(acc[0].X-wantA)/wantA > 1e-12 {
		t.Errorf("body a: expected ax %g, got %g", wantA, acc[0].X)
	}
	if math.Abs(acc[1].X+wantB)/wantB > 1e-12 {
		t.Errorf("body b: expected ax %g, got %g", -wantB, acc[1].X)
	}
	if acc[0].Y != 0 || acc[0].Z != 0 || acc[1].Y != 0 || acc[1].Z != 0 {
		t.Error("off-axis acceleration for an on-axis pair")
	}
}

func TestNewtonThirdLaw(t *testing.T) {
	m := NewModel()
	bodies := []*celestial.Body{
		{Name: "a", Mass: 2e29, Position: celestial.Vec3{X: 1e10, Y: 3e10, Z: -2e10}},
		{Name: "b", Mass: 7e27, Position: celestial.Vec3{X: -4e10, Y: 2e9, Z: 1e10}},
		{Name: "c", Mass: 3e25, Position: celestial.Vec3{X: 2e10, Y: -5e10, Z: 4e10}},
	}

	acc, err := m.Accelerations(bodies)
	if err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}

	// Net force sums to zero for an isolated set.
	var net celestial.Vec3
	var scale float64
	for i, b := range bodies {
		f := acc[i].Scale(b.Mass)
		net = net.Add(f)
		scale = math.Max(scale, f.Norm())
	}
	if net.Norm() > 1e-12*scale {
		t.Errorf("net force %g relative to %g", net.Norm(), scale)
	}
}

func TestCoincidentBodiesRejected(t *testing.T) {
	m := NewModel()
	bodies := twoBodies(0)

	_, err := m.Accelerations(bodies)
	if !errors.Is(err, ErrCoincident) {
		t.Errorf("expected ErrCoincident, got %v", err)
	}
}

func TestAccelerationsDoNotMutateBodies(t *testing.T) {
	m := NewModel()
	bodies := twoBodies(celestial.AU)
	posBefore := bodies[0].Position
	velBefore := bodies[1].Velocity

	if _, err := m.Accelerations(bodies); err != nil {
		t.Fatalf("accelerations failed: %v", err)
	}
	if bodies[0].Position != posBefore || bodies[1].Velocity != velBefore {
		t.Error("force computation mutated body state")
	}
}

func TestAccelerationsIntoBufferMismatch(t *testing.T) {
	m := NewModel()
	bodies := twoBodies(celestial.AU)
	buf := make([]celestial.Vec3, 1)
	if err := m.AccelerationsInto(buf, bodies); err == nil {
		t.Error("expected error for undersized buffer")
	}
}

package energy

import (
	"math"
	"testing"

	"github.com/san-kum/orbital/internal/celestial"
)

func TestTotalMatchesHandComputation(t *testing.T) {
	const (
		m1 = 2e30
		m2 = 6e24
		d  = celestial.AU
		v  = 3e4
	)
	bodies := []*celestial.Body{
		{Name: "a", Mass: m1},
		{Name: "b", Mass: m2, Position: celestial.Vec3{X: d}, Velocity: celestial.Vec3{Y: v}},
	}

	want := 0.5*m2*v*v - celestial.G*m1*m2/d
	got := Total(bodies)
	if math.Abs(got-want)/math.Abs(want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestTotalCountsEachPairOnce(t *testing.T) {
	// Three equal masses at rest on a line: PE = -Gm^2 (1/d + 1/d + 1/2d).
	const (
		m = 1e28
		d = 1e10
	)
	bodies := []*celestial.Body{
		{Name: "a", Mass: m},
		{Name: "b", Mass: m, Position: celestial.Vec3{X: d}},
		{Name: "c", Mass: m, Position: celestial.Vec3{X: 2 * d}},
	}

	want := -celestial.G * m * m * (1/d + 1/d + 1/(2*d))
	got := Total(bodies)
	if math.Abs(got-want)/math.Abs(want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestTrackerBaseline(t *testing.T) {
	bodies := []*celestial.Body{
		{Name: "a", Mass: 2e30},
		{Name: "b", Mass: 6e24, Position: celestial.Vec3{X: celestial.AU}, Velocity: celestial.Vec3{Y: 3e4}},
	}

	tracker := NewTracker(bodies)
	if got := tracker.Err(bodies); got != 0 {
		t.Errorf("expected zero drift at baseline, got %g", got)
	}

	// Doubling a velocity changes kinetic energy; drift must move.
	bodies[1].Velocity = bodies[1].Velocity.Scale(2)
	if got := tracker.Err(bodies); got == 0 {
		t.Error("expected non-zero drift after state change")
	}
	if tracker.Initial() == Total(bodies) {
		t.Error("baseline should not track current energy")
	}
}

package trail

import (
	"testing"

	"github.com/san-kum/orbital/internal/celestial"
)

func storeWithCaps(caps ...int) *Store {
	bodies := make([]*celestial.Body, len(caps))
	for i, c := range caps {
		bodies[i] = &celestial.Body{Name: "b", Mass: 1, TrailCap: c}
	}
	return NewStore(bodies)
}

func TestEmptyTrajectory(t *testing.T) {
	s := storeWithCaps(5)
	if got := s.Trajectory(0); len(got) != 0 {
		t.Errorf("expected empty trajectory, got %d entries", len(got))
	}
}

func TestRecordBelowCapacity(t *testing.T) {
	s := storeWithCaps(5)
	for i := 0; i < 3; i++ {
		s.Record(0, celestial.Vec3{X: float64(i)})
	}

	traj := s.Trajectory(0)
	if len(traj) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(traj))
	}
	for i, p := range traj {
		if p.X != float64(i) {
			t.Errorf("entry %d: expected x=%d, got %g", i, i, p.X)
		}
	}
}

func TestFIFOEviction(t *testing.T) {
	s := storeWithCaps(5)
	for i := 0; i < 8; i++ {
		s.Record(0, celestial.Vec3{X: float64(i)})
	}

	traj := s.Trajectory(0)
	if len(traj) != 5 {
		t.Fatalf("expected capacity-limited length 5, got %d", len(traj))
	}
	// Oldest surviving entry is the 4th recorded (0..2 evicted).
	if traj[0].X != 3 {
		t.Errorf("expected oldest entry x=3, got %g", traj[0].X)
	}
	if traj[4].X != 7 {
		t.Errorf("expected newest entry x=7, got %g", traj[4].X)
	}
}

func TestPerBodyIndependence(t *testing.T) {
	s := storeWithCaps(2, 4)
	for i := 0; i < 10; i++ {
		s.Record(0, celestial.Vec3{X: float64(i)})
	}
	s.Record(1, celestial.Vec3{Y: 1})

	if got := s.Len(0); got != 2 {
		t.Errorf("body 0: expected len 2, got %d", got)
	}
	if got := s.Len(1); got != 1 {
		t.Errorf("body 1: expected len 1, got %d", got)
	}
	if s.Cap(0) != 2 || s.Cap(1) != 4 {
		t.Errorf("unexpected caps %d, %d", s.Cap(0), s.Cap(1))
	}
}

func TestTrajectoryIsACopy(t *testing.T) {
	s := storeWithCaps(3)
	s.Record(0, celestial.Vec3{X: 1})

	traj := s.Trajectory(0)
	traj[0].X = 99

	if got := s.Trajectory(0)[0].X; got != 1 {
		t.Errorf("query mutated the ring: got %g", got)
	}
}

func TestDefaultCapFallback(t *testing.T) {
	s := storeWithCaps(0)
	if got := s.Cap(0); got != celestial.DefaultTrailCap {
		t.Errorf("expected default cap %d, got %d", celestial.DefaultTrailCap, got)
	}
}

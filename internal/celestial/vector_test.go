package celestial

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	sum := a.Add(b)
	if sum != (Vec3{5, -3, 9}) {
		t.Errorf("Add: got %+v", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec3{-3, 7, -3}) {
		t.Errorf("Sub: got %+v", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %+v", scaled)
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %g", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y: got %+v", z)
	}
	if anti := y.Cross(x); anti != (Vec3{0, 0, -1}) {
		t.Errorf("y cross x: got %+v", anti)
	}
}

func TestVec3Norm(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("expected norm 5, got %g", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN component not detected")
	}
	if (Vec3{0, math.Inf(1), 0}).IsFinite() {
		t.Error("Inf component not detected")
	}
}

package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3CrossUpWithX(t *testing.T) {
	got := UnitY.Cross(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if got != want {
		t.Errorf("UnitY.Cross(X) = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3LengthLargeComponents(t *testing.T) {
	// squaring 2e20 overflows float32
	v := Vec3{2e20, 0, 0}
	l := v.Length()
	if math.IsInf(float64(l), 0) || math.IsNaN(float64(l)) {
		t.Fatalf("Vec3.Length() = %v, want finite", l)
	}
	if l != 2e20 {
		t.Errorf("Vec3.Length() = %v, want 2e20", l)
	}
}

func TestVec3NormalizeEps(t *testing.T) {
	n := Vec3{3, 4, 0}.NormalizeEps(1e-6)
	l := n.Length()
	if l < 0.999 || l > 1.0 {
		t.Errorf("NormalizeEps length = %v, want just under 1", l)
	}

	z := Vec3{}.NormalizeEps(1e-6)
	if !z.IsFinite() || z != (Vec3{}) {
		t.Errorf("NormalizeEps of zero = %v, want finite zero", z)
	}
}

func TestVec3Midpoint(t *testing.T) {
	got := Vec3{0, 0, 0}.Midpoint(Vec3{2, -4, 6})
	want := Vec3{1, -2, 3}
	if got != want {
		t.Errorf("Vec3.Midpoint() = %v, want %v", got, want)
	}
}

func TestVec3IsFinite(t *testing.T) {
	nan := float32(math.NaN())
	if (Vec3{nan, 0, 0}).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	inf := float32(math.Inf(1))
	if (Vec3{0, 0, inf}).IsFinite() {
		t.Error("Inf component should not be finite")
	}
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("plain vector should be finite")
	}
}

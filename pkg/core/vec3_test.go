package core

import (
	"math"
	"testing"
)

func almostEqual32(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestVec3_DotCross(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	if a.Dot(b) != 0 {
		t.Errorf("expected perpendicular dot 0, got %v", a.Dot(b))
	}
	c := a.Cross(b)
	if c != (Vec3{0, 0, 1}) {
		t.Errorf("expected X cross Y = Z, got %v", c)
	}
}

func TestVec3_NormalizeRoundTrip(t *testing.T) {
	v := Vec3{3, 4, 0}
	u := v.Normalize()
	if !almostEqual32(u.Get().NormSquared(), 1, 1e-5) {
		t.Errorf("normalized vector should have unit norm squared, got %v", u.Get().NormSquared())
	}
	if !almostEqual32(u.Get().X, 0.6, 1e-6) || !almostEqual32(u.Get().Y, 0.8, 1e-6) {
		t.Errorf("unexpected normalized vector %v", u.Get())
	}
}

func TestVec3_TryNormalizeZero(t *testing.T) {
	_, _, ok := (Vec3{}).TryNormalize()
	if ok {
		t.Error("expected TryNormalize to fail on the zero vector")
	}
}

func TestPoint3_MinMaxMiddle(t *testing.T) {
	a := Point3{1, 5, -1}
	b := Point3{3, 2, 4}
	if got := a.Min(b); got != (Point3{1, 2, -1}) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != (Point3{3, 5, 4}) {
		t.Errorf("Max: got %v", got)
	}
	if got := a.Middle(b); got != (Point3{2, 3.5, 1.5}) {
		t.Errorf("Middle: got %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 1, 2); got != 1 {
		t.Errorf("Lerp(0,...) = %v, want 1", got)
	}
	if got := Lerp(1, 1, 2); got != 2 {
		t.Errorf("Lerp(1,...) = %v, want 2", got)
	}
	if got := Lerp(0.5, 0, 10); got != 5 {
		t.Errorf("Lerp(0.5,...) = %v, want 5", got)
	}
}

package core

import (
	"math"
	"testing"
)

func TestTransform_TranslationInverse(t *testing.T) {
	tr := Translation(Vec3{1, 2, 3})
	p := Point3{5, 5, 5}
	moved := tr.TransformPoint(p)
	back := tr.Inv().TransformPoint(moved)
	if !almostEqual32(back.X, p.X, 1e-4) || !almostEqual32(back.Y, p.Y, 1e-4) || !almostEqual32(back.Z, p.Z, 1e-4) {
		t.Errorf("translation round trip failed: got %v, want %v", back, p)
	}
}

func TestTransform_RotationPreservesLength(t *testing.T) {
	rot := Rotation(ZAxis(), float32(math.Pi/2))
	v := Vec3{1, 0, 0}
	rotated := rot.TransformVec(v)
	if !almostEqual32(rotated.Norm(), v.Norm(), 1e-4) {
		t.Errorf("rotation changed vector length: %v vs %v", rotated.Norm(), v.Norm())
	}
	if !almostEqual32(rotated.X, 0, 1e-4) || !almostEqual32(rotated.Y, 1, 1e-4) {
		t.Errorf("90 degree rotation around Z of +X should give +Y, got %v", rotated)
	}
}

func TestTransform_ScalingInverse(t *testing.T) {
	s := Scaling(Vec3{2, 3, 4})
	p := Point3{1, 1, 1}
	scaled := s.TransformPoint(p)
	if scaled != (Point3{2, 3, 4}) {
		t.Errorf("scaling: got %v", scaled)
	}
	back := s.Inv().TransformPoint(scaled)
	if !almostEqual32(back.X, p.X, 1e-4) {
		t.Errorf("scaling round trip failed: %v", back)
	}
}

func TestTransform_ComposeOrder(t *testing.T) {
	translate := Translation(Vec3{10, 0, 0})
	scale := Scaling(Vec3{2, 2, 2})
	combined := scale.Compose(translate)

	p := Point3{1, 0, 0}
	got := combined.TransformPoint(p)
	want := Point3{12, 0, 0}
	if !almostEqual32(got.X, want.X, 1e-4) {
		t.Errorf("compose order: got %v, want %v (scale then translate)", got, want)
	}
}

func TestTriangleAsTransform_MapsCanonicalVertices(t *testing.T) {
	a := Point3{0, 0, 0}
	b := Point3{1, 0, 0}
	c := Point3{0, 1, 0}
	tr := TriangleAsTransform(a, b, c)

	got := tr.TransformPoint(Point3{0, 0, 0})
	if !almostEqual32(got.X, a.X, 1e-3) || !almostEqual32(got.Y, a.Y, 1e-3) || !almostEqual32(got.Z, a.Z, 1e-3) {
		t.Errorf("canonical vertex (0,0,0) should map to a=%v, got %v", a, got)
	}
	got = tr.TransformPoint(Point3{1, 0, 0})
	if !almostEqual32(got.X, b.X, 1e-3) || !almostEqual32(got.Y, b.Y, 1e-3) || !almostEqual32(got.Z, b.Z, 1e-3) {
		t.Errorf("canonical vertex (1,0,0) should map to b=%v, got %v", b, got)
	}
	got = tr.TransformPoint(Point3{0, 1, 0})
	if !almostEqual32(got.X, c.X, 1e-3) || !almostEqual32(got.Y, c.Y, 1e-3) || !almostEqual32(got.Z, c.Z, 1e-3) {
		t.Errorf("canonical vertex (0,1,0) should map to c=%v, got %v", c, got)
	}
}

package core

import "testing"

func TestAxisBox_Intersects_FacingRay(t *testing.T) {
	box := AxisBox{Low: Point3{-1, -1, -1}, High: Point3{1, 1, 1}}
	ray := NewRay(Point3{0, 0, -4}, NewVec3(0, 0, 1).Normalize())

	tHit, ok := box.Intersects(ray)
	if !ok {
		t.Fatal("expected ray to hit box")
	}
	if !almostEqual32(tHit, 3.0, 1e-4) {
		t.Errorf("expected t=3.0, got %v", tHit)
	}
}

func TestAxisBox_Intersects_MissingRay(t *testing.T) {
	box := AxisBox{Low: Point3{-1, -1, -1}, High: Point3{1, 1, 1}}
	ray := NewRay(Point3{10, 10, -4}, NewVec3(0, 0, 1).Normalize())

	if _, ok := box.Intersects(ray); ok {
		t.Error("expected ray to miss box")
	}
}

func TestAxisBox_Intersects_BehindRayMisses(t *testing.T) {
	box := AxisBox{Low: Point3{-1, -1, -1}, High: Point3{1, 1, 1}}
	ray := NewRay(Point3{0, 0, 4}, NewVec3(0, 0, 1).Normalize())

	if _, ok := box.Intersects(ray); ok {
		t.Error("expected box entirely behind ray origin to miss")
	}
}

func TestAxisBox_Union(t *testing.T) {
	a := AxisBox{Low: Point3{0, 0, 0}, High: Point3{1, 1, 1}}
	b := AxisBox{Low: Point3{-1, -1, -1}, High: Point3{0.5, 0.5, 0.5}}
	u := a.Union(b)
	if u.Low != (Point3{-1, -1, -1}) || u.High != (Point3{1, 1, 1}) {
		t.Errorf("unexpected union: %v", u)
	}
}

func TestBoxForShape_SphereIsFinite(t *testing.T) {
	box := BoxForShape(Sphere)
	if !box.IsFinite() {
		t.Error("sphere box should be finite")
	}
}

func TestBoxForShape_PlaneIsNotFinite(t *testing.T) {
	box := BoxForShape(Plane)
	if box.IsFinite() {
		t.Error("plane box should not be finite")
	}
}

package core

import "math"

// Ray is a parametric half-line start + t*direction, t >= 0.
type Ray struct {
	Start     Point3
	Direction Unit[Vec3]
}

func NewRay(start Point3, direction Unit[Vec3]) Ray {
	return Ray{Start: start, Direction: direction}
}

func (r Ray) At(t float32) Point3 {
	return r.Start.Add(r.Direction.Get().Scale(t))
}

// TransformRay applies t to r, renormalizing the transformed direction (a
// non-uniform scale can change a direction's length).
func (t Transform) TransformRay(r Ray) Ray {
	start := t.TransformPoint(r.Start)
	dir := t.TransformVec(r.Direction.Get()).Normalize()
	return Ray{Start: start, Direction: dir}
}

// Hit is a single intersection: parametric distance, world point, and the
// (unit, outward-facing) surface normal there.
type Hit struct {
	T      float32
	Point  Point3
	Normal Unit[Vec3]
}

// ObjectHit pairs a Hit with the id of the object it came from, so a caller
// scanning many objects can report which one won.
type ObjectHit struct {
	ID  ObjectID
	Hit Hit
}

// ClosestHit returns whichever of a, b has the smaller T, or the non-nil one if
// only one is present.
func ClosestHit(a, b *ObjectHit) *ObjectHit {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Hit.T <= b.Hit.T {
		return a
	}
	return b
}

// ClosestOf reduces a slice of candidate hits (possibly containing nils) to
// the single closest one by folding ClosestHit over them.
func ClosestOf(hits ...*ObjectHit) *ObjectHit {
	var best *ObjectHit
	for _, h := range hits {
		best = ClosestHit(best, h)
	}
	return best
}

// TransformHit carries a Hit computed in object space back into world space,
// using the exact transport formulas the object-space intersectors rely on:
// t scales by the length the transform gives the object-space unit
// direction, the point maps forward through t, and the normal maps by the
// inverse-transpose.
func (t Transform) TransformHit(h Hit, objectRay Ray) (Hit, float32) {
	transformedDir := t.TransformVec(objectRay.Direction.Get())
	dirLen := transformedDir.Norm()
	worldT := h.T * dirLen
	worldPoint := t.TransformPoint(h.Point)
	worldNormal := t.InvTransposeMulVec(h.Normal.Get()).Normalize()
	return Hit{T: worldT, Point: worldPoint, Normal: worldNormal}, worldT
}

func isFiniteF32(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// Package geometry implements the object-space ray/shape intersectors and
// the transformed-hit transport that lifts them into world space.
package geometry

import (
	"math"

	"pathtracer/pkg/core"
)

// IntersectObjectSpace dispatches to the per-shape intersector for shape,
// assuming ray is already expressed in that shape's canonical object space.
func IntersectObjectSpace(shape core.Shape, ray core.Ray) (core.Hit, bool) {
	switch shape.Kind {
	case core.ShapeSphere:
		return intersectSphere(ray)
	case core.ShapePlane:
		return intersectPlane(ray)
	case core.ShapeTriangle:
		return intersectTriangle(ray)
	case core.ShapeSquare:
		return intersectSquare(ray)
	case core.ShapeCylinder:
		return intersectCylinder(ray)
	default:
		panic("geometry: unknown shape kind")
	}
}

// IntersectObject intersects ray (in world space) against obj, bringing it
// into obj's object space, dispatching, then transporting the result back
// to world space with the exact t/point/normal formulas the transform owns.
func IntersectObject(obj core.Object, id core.ObjectID, ray core.Ray) (*core.ObjectHit, bool) {
	objectRay := obj.Transform.Inv().TransformRay(ray)
	hit, ok := IntersectObjectSpace(obj.Shape, objectRay)
	if !ok {
		return nil, false
	}
	checkHit(hit)
	worldHit, worldT := obj.Transform.TransformHit(hit, objectRay)
	worldHit.T = worldT
	checkHit(worldHit)
	return &core.ObjectHit{ID: id, Hit: worldHit}, true
}

func checkHit(h core.Hit) {
	if !core.DebugAssertionsEnabled() {
		return
	}
	if h.T < 0 {
		panic("geometry: hit with negative t")
	}
	if h.T != h.T {
		panic("geometry: hit with NaN t")
	}
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// intersectSphere intersects ray against the canonical unit sphere centered
// at the origin: ||p|| = 1.
func intersectSphere(ray core.Ray) (core.Hit, bool) {
	dir := ray.Direction.Get()
	start := ray.Start.Coords()

	b := start.Dot(dir)
	c := start.NormSquared() - 1
	discriminant := b*b - c
	if discriminant < 0 {
		return core.Hit{}, false
	}
	sqrtD := float32(math.Sqrt(float64(discriminant)))

	near := -b - sqrtD
	far := -b + sqrtD

	var t float32
	switch {
	case near >= 0:
		t = near
	case far >= 0:
		t = far
	default:
		return core.Hit{}, false
	}

	point := ray.At(t)
	normal, _, ok := point.Coords().TryNormalize()
	if !ok {
		return core.Hit{}, false
	}
	return core.Hit{T: t, Point: point, Normal: normal}, true
}

// intersectPlane intersects ray against the canonical z=0 plane, normal +Z.
func intersectPlane(ray core.Ray) (core.Hit, bool) {
	dir := ray.Direction.Get()
	if dir.Z == 0 {
		return core.Hit{}, false
	}
	t := -ray.Start.Z / dir.Z
	if !isFinite(t) || t < 0 {
		return core.Hit{}, false
	}
	point := ray.At(t)
	return core.Hit{T: t, Point: point, Normal: core.ZAxis()}, true
}

// intersectTriangle intersects ray against the canonical triangle with
// vertices (0,0,0), (1,0,0), (0,1,0): the z=0 plane, clipped to x>=0, y>=0,
// x+y<=1.
func intersectTriangle(ray core.Ray) (core.Hit, bool) {
	hit, ok := intersectPlane(ray)
	if !ok {
		return core.Hit{}, false
	}
	if hit.Point.X < 0 || hit.Point.Y < 0 || hit.Point.X+hit.Point.Y > 1 {
		return core.Hit{}, false
	}
	return hit, true
}

// intersectSquare intersects ray against the canonical unit square at z=0,
// clipped to x in [0,1], y in [0,1].
func intersectSquare(ray core.Ray) (core.Hit, bool) {
	hit, ok := intersectPlane(ray)
	if !ok {
		return core.Hit{}, false
	}
	if hit.Point.X < 0 || hit.Point.X > 1 || hit.Point.Y < 0 || hit.Point.Y > 1 {
		return core.Hit{}, false
	}
	return hit, true
}

// intersectCylinder intersects ray against the canonical infinite cylinder
// of radius 1 around the Y axis: x^2 + z^2 = 1.
func intersectCylinder(ray core.Ray) (core.Hit, bool) {
	dir := ray.Direction.Get()
	dir2D := core.NewVec3(dir.X, 0, dir.Z)
	dirNorm2D := dir2D.Norm()
	if dirNorm2D == 0 {
		return core.Hit{}, false
	}
	dirUnit2D := dir2D.Div(dirNorm2D)

	start := ray.Start.Coords()
	start2D := core.NewVec3(start.X, 0, start.Z)

	b := start2D.Dot(dirUnit2D)
	c := start2D.NormSquared() - 1
	discriminant := b*b - c
	if discriminant < 0 {
		return core.Hit{}, false
	}
	sqrtD := float32(math.Sqrt(float64(discriminant)))

	near := -b - sqrtD
	far := -b + sqrtD

	var t2D float32
	switch {
	case near >= 0:
		t2D = near
	case far >= 0:
		t2D = far
	default:
		return core.Hit{}, false
	}
	t := t2D / dirNorm2D

	point := ray.At(t)
	if point != point {
		return core.Hit{}, false
	}
	normalXZ, _, ok := core.NewVec3(point.X, 0, point.Z).TryNormalize()
	if !ok {
		return core.Hit{}, false
	}
	return core.Hit{T: t, Point: point, Normal: normalXZ}, true
}

func isFinite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

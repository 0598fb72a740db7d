package core

import "math"

// AxisBox is an axis-aligned bounding box. Low/High are allowed to contain
// +-Inf components, for shapes (an infinite plane, say) with no bound on one
// or more axes; IsFinite reports whether that's the case.
type AxisBox struct {
	Low, High Point3
}

func NewAxisBox(low, high Point3) AxisBox {
	if debugAssertionsEnabled {
		for _, axis := range Axis3All {
			if high.Get(axis) < low.Get(axis) {
				panic("core: AxisBox high < low on some axis")
			}
		}
	}
	return AxisBox{Low: low, High: high}
}

func (b AxisBox) Union(o AxisBox) AxisBox {
	return AxisBox{Low: b.Low.Min(o.Low), High: b.High.Max(o.High)}
}

func (b AxisBox) IsFinite() bool {
	return b.Low.IsFinite() && b.High.IsFinite()
}

func (b AxisBox) Center() Point3 {
	return b.Low.Middle(b.High)
}

func (b AxisBox) Area() float32 {
	dx := b.High.X - b.Low.X
	dy := b.High.Y - b.Low.Y
	dz := b.High.Z - b.Low.Z
	return 2 * (dx*dy + dy*dz + dz*dx)
}

// ForEachCorner invokes f on all 8 corners of the box.
func (b AxisBox) ForEachCorner(f func(Point3)) {
	for _, x := range [2]float32{b.Low.X, b.High.X} {
		for _, y := range [2]float32{b.Low.Y, b.High.Y} {
			for _, z := range [2]float32{b.Low.Z, b.High.Z} {
				f(Point3{x, y, z})
			}
		}
	}
}

// TransformAxisBox transforms b by t, accumulating the min/max of all 8
// transformed corners; the forward-only transform of an AABB is itself only
// an AABB approximation, which is exactly what this produces.
func (t Transform) TransformAxisBox(b AxisBox) AxisBox {
	var low, high Point3
	first := true
	b.ForEachCorner(func(p Point3) {
		wp := t.TransformPoint(p)
		if first {
			low, high = wp, wp
			first = false
			return
		}
		low = low.Min(wp)
		high = high.Max(wp)
	})
	return AxisBox{Low: low, High: high}
}

// Intersects runs the slab test against r, returning the entry distance and
// true if r crosses b at some t > 0. Division by a zero ray-direction
// component yields the IEEE +-Inf that makes the component's slab test a
// no-op, exactly as the non-finite-box case requires.
func (b AxisBox) Intersects(r Ray) (float32, bool) {
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))
	dir := r.Direction.Get()
	for _, axis := range Axis3All {
		origin := r.Start.Get(axis)
		d := dir.Get(axis)
		invD := 1 / d
		t0 := (b.Low.Get(axis) - origin) * invD
		t1 := (b.High.Get(axis) - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
	}
	if tMax < tMin || tMax <= 0 {
		return 0, false
	}
	return tMin, true
}

// BoxForShape returns the exact canonical object-space AxisBox for shape,
// independent of any transform applied to the object that carries it.
func BoxForShape(shape Shape) AxisBox {
	inf := float32(math.Inf(1))
	switch shape.Kind {
	case ShapeSphere:
		return AxisBox{Low: Point3{-1, -1, -1}, High: Point3{1, 1, 1}}
	case ShapePlane:
		return AxisBox{Low: Point3{-inf, -inf, 0}, High: Point3{inf, inf, 0}}
	case ShapeTriangle:
		return AxisBox{Low: Point3{0, 0, 0}, High: Point3{1, 1, 0}}
	case ShapeSquare:
		return AxisBox{Low: Point3{0, 0, 0}, High: Point3{1, 1, 0}}
	case ShapeCylinder:
		return AxisBox{Low: Point3{-1, -inf, -1}, High: Point3{1, inf, 1}}
	default:
		panic("core: unknown shape kind")
	}
}

// BoxForObject returns the world-space AxisBox of obj: its canonical
// object-space box carried through obj's transform.
func BoxForObject(obj Object) AxisBox {
	return obj.Transform.TransformAxisBox(BoxForShape(obj.Shape))
}

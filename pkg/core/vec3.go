package core

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector with standard affine/vector algebra.
type Vec3 struct {
	X, Y, Z float32
}

// Point3 is a position in space, kept distinct from Vec3 so the two can't be
// added where a transform should instead act on them differently (w=1 vs w=0).
type Point3 struct {
	X, Y, Z float32
}

func NewVec3(x, y, z float32) Vec3     { return Vec3{x, y, z} }
func NewPoint3(x, y, z float32) Point3 { return Point3{x, y, z} }

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3{%g, %g, %g}", v.X, v.Y, v.Z)
}

func XAxis() Unit[Vec3] { return NewUnitUnchecked(Vec3{1, 0, 0}) }
func YAxis() Unit[Vec3] { return NewUnitUnchecked(Vec3{0, 1, 0}) }
func ZAxis() Unit[Vec3] { return NewUnitUnchecked(Vec3{0, 0, 1}) }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Div(s float32) Vec3   { return Vec3{v.X / s, v.Y / s, v.Z / s} }

func (v Vec3) Dot(o Vec3) float32   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) NormSquared() float32 { return v.Dot(v) }
func (v Vec3) Norm() float32        { return float32(math.Sqrt(float64(v.NormSquared()))) }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) IsFinite() bool {
	return !math.IsInf(float64(v.X), 0) && !math.IsNaN(float64(v.X)) &&
		!math.IsInf(float64(v.Y), 0) && !math.IsNaN(float64(v.Y)) &&
		!math.IsInf(float64(v.Z), 0) && !math.IsNaN(float64(v.Z))
}

// TryNormalize returns the unit-length direction and original norm, or false
// if the vector has zero length (the degenerate case callers must handle).
func (v Vec3) TryNormalize() (Unit[Vec3], float32, bool) {
	n := v.Norm()
	if n == 0 {
		return Unit[Vec3]{}, 0, false
	}
	return NewUnitUnchecked(v.Div(n)), n, true
}

// Normalize panics if v has zero length; callers on a path that can be
// degenerate should use TryNormalize instead.
func (v Vec3) Normalize() Unit[Vec3] {
	u, _, ok := v.TryNormalize()
	if !ok {
		panic(fmt.Sprintf("cannot normalize zero-length vector %v", v))
	}
	return u
}

func (p Point3) Coords() Vec3           { return Vec3{p.X, p.Y, p.Z} }
func PointFromCoords(v Vec3) Point3     { return Point3{v.X, v.Y, v.Z} }
func Origin() Point3                    { return Point3{} }
func (p Point3) Add(v Vec3) Point3      { return PointFromCoords(p.Coords().Add(v)) }
func (p Point3) Sub(v Vec3) Point3      { return PointFromCoords(p.Coords().Sub(v)) }
func (p Point3) SubPoint(o Point3) Vec3 { return p.Coords().Sub(o.Coords()) }
func (p Point3) DistanceTo(o Point3) float32 {
	return p.SubPoint(o).Norm()
}

func (p Point3) Min(o Point3) Point3 {
	return Point3{min32(p.X, o.X), min32(p.Y, o.Y), min32(p.Z, o.Z)}
}
func (p Point3) Max(o Point3) Point3 {
	return Point3{max32(p.X, o.X), max32(p.Y, o.Y), max32(p.Z, o.Z)}
}
func (p Point3) Middle(o Point3) Point3 {
	return Point3{(p.X + o.X) / 2, (p.Y + o.Y) / 2, (p.Z + o.Z) / 2}
}
func (p Point3) IsFinite() bool { return p.Coords().IsFinite() }

// Axis3 names one of the three coordinate axes, used by the acceleration
// tree to split boxes without repeating a switch on X/Y/Z everywhere.
type Axis3 int

const (
	AxisX Axis3 = iota
	AxisY
	AxisZ
)

var Axis3All = [3]Axis3{AxisX, AxisY, AxisZ}

func (p Point3) Get(axis Axis3) float32 {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func (v Vec3) Get(axis Axis3) float32 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between x and y: t=0 gives x, t=1 gives y.
func Lerp(t, x, y float32) float32 {
	return t*y + (1-t)*x
}

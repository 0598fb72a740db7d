package core

import "math"

// matrix4 is a 4x4 row-major matrix. It stays private: Transform is the only
// public-facing type, always carrying a matrix together with its inverse so
// callers never pay for (or risk) a runtime inverse computation.
type matrix4 [4][4]float32

func identity4() matrix4 {
	var m matrix4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

func (a matrix4) mul(b matrix4) matrix4 {
	var out matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m matrix4) isFinite() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.IsNaN(float64(m[i][j])) || math.IsInf(float64(m[i][j]), 0) {
				return false
			}
		}
	}
	return true
}

func (m matrix4) mulVec4(x, y, z, w float32) (float32, float32, float32, float32) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z + m[0][3]*w,
		m[1][0]*x + m[1][1]*y + m[1][2]*z + m[1][3]*w,
		m[2][0]*x + m[2][1]*y + m[2][2]*z + m[2][3]*w,
		m[3][0]*x + m[3][1]*y + m[3][2]*z + m[3][3]*w
}

// Transform is an affine transform that carries its own inverse, so that
// applying the inverse (as pkg/geometry does constantly, to bring rays into
// object space) never requires recomputing it.
type Transform struct {
	fwd matrix4
	inv matrix4
}

func IdentityTransform() Transform {
	id := identity4()
	return Transform{fwd: id, inv: id}
}

// Inv returns the inverse transform; cheap, since it's already stored.
func (t Transform) Inv() Transform {
	return Transform{fwd: t.inv, inv: t.fwd}
}

// Compose returns the transform that applies t first, then o (o * t).
func (t Transform) Compose(o Transform) Transform {
	return Transform{fwd: o.fwd.mul(t.fwd), inv: t.inv.mul(o.inv)}
}

func (t Transform) IsFinite() bool {
	return t.fwd.isFinite() && t.inv.isFinite()
}

// TransformPoint applies t to a point (implicit w=1).
func (t Transform) TransformPoint(p Point3) Point3 {
	x, y, z, w := t.fwd.mulVec4(p.X, p.Y, p.Z, 1)
	debugAssertW(w, 1)
	return Point3{x, y, z}
}

// TransformVec applies t to a direction vector (implicit w=0); the result is
// not renormalized, since scaling transforms legitimately change length.
func (t Transform) TransformVec(v Vec3) Vec3 {
	x, y, z, w := t.fwd.mulVec4(v.X, v.Y, v.Z, 0)
	debugAssertW(w, 0)
	return Vec3{x, y, z}
}

// InvTransposeMulVec applies the inverse-transpose of t's linear part to v,
// the correct transform for surface normals under non-uniform scaling.
func (t Transform) InvTransposeMulVec(v Vec3) Vec3 {
	m := t.inv
	return Vec3{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

func debugAssertW(w, want float32) {
	if !debugAssertionsEnabled {
		return
	}
	if math.Abs(float64(w-want)) > 1e-4 {
		panic("core: Transform produced unexpected homogeneous w")
	}
}

func Translation(v Vec3) Transform {
	fwd := identity4()
	fwd[0][3], fwd[1][3], fwd[2][3] = v.X, v.Y, v.Z
	inv := identity4()
	inv[0][3], inv[1][3], inv[2][3] = -v.X, -v.Y, -v.Z
	return Transform{fwd: fwd, inv: inv}
}

func Scaling(v Vec3) Transform {
	fwd := identity4()
	fwd[0][0], fwd[1][1], fwd[2][2] = v.X, v.Y, v.Z
	inv := identity4()
	inv[0][0], inv[1][1], inv[2][2] = 1/v.X, 1/v.Y, 1/v.Z
	return Transform{fwd: fwd, inv: inv}
}

// Rotation builds a rotation transform around the given unit axis by angle
// (radians), via the Rodrigues rotation formula. A rotation matrix's inverse
// is its transpose, which is exploited here instead of a general inverse.
func Rotation(axis Unit[Vec3], angleRadians float32) Transform {
	a := axis.Get()
	s := float32(math.Sin(float64(angleRadians)))
	c := float32(math.Cos(float64(angleRadians)))
	t := 1 - c

	fwd := identity4()
	fwd[0][0] = c + a.X*a.X*t
	fwd[1][1] = c + a.Y*a.Y*t
	fwd[2][2] = c + a.Z*a.Z*t

	xy := a.X * a.Y * t
	xz := a.X * a.Z * t
	yz := a.Y * a.Z * t
	xs := a.X * s
	ys := a.Y * s
	zs := a.Z * s

	fwd[1][0] = xy + zs
	fwd[0][1] = xy - zs
	fwd[2][0] = xz - ys
	fwd[0][2] = xz + ys
	fwd[2][1] = yz + xs
	fwd[1][2] = yz - xs

	inv := identity4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = fwd[j][i]
		}
	}
	return Transform{fwd: fwd, inv: inv}
}

// LookIn builds a transform placing the origin at eye and orienting -Z along
// dir, with up used only to resolve the remaining rotation about dir.
func LookIn(eye Point3, dir Unit[Vec3], up Unit[Vec3]) Transform {
	forward := dir.Get().Neg()
	right := up.Get().Cross(forward)
	rightU, _, ok := right.TryNormalize()
	if !ok {
		rightU = XAxis()
	}
	newUp := forward.Cross(rightU.Get())

	fwd := identity4()
	fwd[0][0], fwd[1][0], fwd[2][0] = rightU.Get().X, rightU.Get().Y, rightU.Get().Z
	fwd[0][1], fwd[1][1], fwd[2][1] = newUp.X, newUp.Y, newUp.Z
	fwd[0][2], fwd[1][2], fwd[2][2] = forward.X, forward.Y, forward.Z
	fwd[0][3], fwd[1][3], fwd[2][3] = eye.X, eye.Y, eye.Z

	rot := matrix4{
		{fwd[0][0], fwd[0][1], fwd[0][2], 0},
		{fwd[1][0], fwd[1][1], fwd[1][2], 0},
		{fwd[2][0], fwd[2][1], fwd[2][2], 0},
		{0, 0, 0, 1},
	}
	invRot := matrix4{
		{rot[0][0], rot[1][0], rot[2][0], 0},
		{rot[0][1], rot[1][1], rot[2][1], 0},
		{rot[0][2], rot[1][2], rot[2][2], 0},
		{0, 0, 0, 1},
	}
	invTranslate := identity4()
	invTranslate[0][3], invTranslate[1][3], invTranslate[2][3] = -eye.X, -eye.Y, -eye.Z
	inv := invRot.mul(invTranslate)

	return Transform{fwd: fwd, inv: inv}
}

// AxesTo builds the linear transform mapping the standard basis (X, Y, Z)
// onto the three given target vectors, via explicit 3x3 cofactor inversion.
// Grounded on the original program's rotate_axes_to / map_axes_to, used by
// triangle_as_transform to turn three triangle vertices into a Transform.
func AxesTo(x, y, z Vec3) Transform {
	fwd := identity4()
	fwd[0][0], fwd[1][0], fwd[2][0] = x.X, x.Y, x.Z
	fwd[0][1], fwd[1][1], fwd[2][1] = y.X, y.Y, y.Z
	fwd[0][2], fwd[1][2], fwd[2][2] = z.X, z.Y, z.Z

	a, b, c := fwd[0][0], fwd[0][1], fwd[0][2]
	d, e, f := fwd[1][0], fwd[1][1], fwd[1][2]
	g, h, i := fwd[2][0], fwd[2][1], fwd[2][2]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)

	inv := identity4()
	if det != 0 {
		invDet := 1 / det
		inv[0][0] = (e*i - f*h) * invDet
		inv[0][1] = (c*h - b*i) * invDet
		inv[0][2] = (b*f - c*e) * invDet
		inv[1][0] = (f*g - d*i) * invDet
		inv[1][1] = (a*i - c*g) * invDet
		inv[1][2] = (c*d - a*f) * invDet
		inv[2][0] = (d*h - e*g) * invDet
		inv[2][1] = (b*g - a*h) * invDet
		inv[2][2] = (a*e - b*d) * invDet
	}

	return Transform{fwd: fwd, inv: inv}
}

// TriangleAsTransform returns the Transform mapping the canonical triangle
// ((0,0,0),(1,0,0),(0,1,0)) onto the triangle (a, b, c), so Shape::Triangle's
// object-space intersector can be reused for any world-space triangle. It
// shifts the canonical vertices to (0,0,1),(1,0,1),(0,1,1) first, so that no
// vertex sits at the origin while the axes are remapped.
func TriangleAsTransform(a, b, c Point3) Transform {
	shift := Translation(Vec3{0, 0, 1})
	axesToShift := AxesTo(Vec3{0, 0, 1}, Vec3{1, 0, 1}, Vec3{0, 1, 1})
	axesToTarget := AxesTo(a.Coords(), b.Coords(), c.Coords())
	return shift.Compose(axesToShift.Inv()).Compose(axesToTarget)
}

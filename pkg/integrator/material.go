package integrator

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// sampleDirection picks the next ray direction for a bounce off mat, given
// the (already normal-flipped) surface normal and the incoming ray
// direction. refractRatio is only used by Transparent materials, and is the
// ratio of the index of refraction on the incoming side to the outgoing
// side.
func sampleDirection(
	mat core.Material,
	normal core.Unit[core.Vec3],
	incoming core.Unit[core.Vec3],
	refractRatio float32,
	rng *rand.Rand,
) SampleInfo {
	switch mat.MaterialType.Kind {
	case core.MaterialFixed:
		panic("integrator: sample_direction called for a Fixed material")

	case core.MaterialDiffuse:
		x, y := sampleUnitDisk(rng)
		dir := diskToHemisphere(x, y, normal)
		return SampleInfo{Direction: dir, Weight: 0.5, DiffuseFraction: 1}

	case core.MaterialMirror:
		dir := reflectDirection(incoming, normal)
		return SampleInfo{Direction: dir, Weight: 1, Specular: true}

	case core.MaterialTransparent:
		dir, crosses := snellsLaw(incoming, normal, refractRatio)
		return SampleInfo{Direction: dir, Weight: 1, Specular: true, CrossesSurface: crosses}

	case core.MaterialDiffuseMirror:
		f := mat.MaterialType.F
		var info SampleInfo
		if rng.Float32() < f {
			info = sampleDirection(withType(mat, core.DiffuseType()), normal, incoming, refractRatio, rng)
		} else {
			info = sampleDirection(withType(mat, core.MirrorType()), normal, incoming, refractRatio, rng)
		}
		info.DiffuseFraction = f
		return info

	default:
		panic("integrator: unknown material kind")
	}
}

func withType(mat core.Material, t core.MaterialType) core.Material {
	mat.MaterialType = t
	return mat
}

// sampleUnitDisk draws a point uniformly distributed over the unit disk.
func sampleUnitDisk(rng *rand.Rand) (x, y float32) {
	r := float32(math.Sqrt(rng.Float64()))
	theta := float32(2 * math.Pi * rng.Float64())
	return r * float32(math.Cos(float64(theta))), r * float32(math.Sin(float64(theta)))
}

// diskToHemisphere lifts a unit-disk sample (x, y) onto the hemisphere
// around normal, giving a cosine-weighted direction: z = sqrt(1-x^2-y^2) in
// the local frame where normal is "up".
func diskToHemisphere(x, y float32, normal core.Unit[core.Vec3]) core.Unit[core.Vec3] {
	z := float32(math.Sqrt(math.Max(0, float64(1-x*x-y*y))))

	n := normal.Get()
	var helper core.Vec3
	if float32(math.Abs(float64(n.X))) > 0.9 {
		helper = core.NewVec3(0, 1, 0)
	} else {
		helper = core.NewVec3(1, 0, 0)
	}
	tangent := helper.Cross(n).Normalize()
	bitangent := n.Cross(tangent.Get())

	dir := tangent.Get().Scale(x).Add(bitangent.Scale(y)).Add(n.Scale(z))
	return dir.Normalize()
}

// reflectDirection mirrors d about normal.
func reflectDirection(d core.Unit[core.Vec3], normal core.Unit[core.Vec3]) core.Unit[core.Vec3] {
	v := d.Get()
	n := normal.Get()
	return v.Sub(n.Scale(2 * v.Dot(n))).Normalize()
}

// snellsLaw refracts d through a surface with the given incoming/outgoing
// index-of-refraction ratio. normal must already face the side d arrives
// from. Returns the reflected direction and crosses=false on total internal
// reflection, or the refracted direction and crosses=true otherwise.
func snellsLaw(d core.Unit[core.Vec3], normal core.Unit[core.Vec3], ratio float32) (core.Unit[core.Vec3], bool) {
	dir := d.Get()
	n := normal.Get()
	c := -n.Dot(dir)

	x := 1 - ratio*ratio*(1-c*c)
	if x < 0 {
		reflected := dir.Add(n.Scale(2 * c))
		return reflected.Normalize(), false
	}

	transmitted := dir.Scale(ratio).Add(n.Scale(ratio*c - float32(math.Sqrt(float64(x)))))
	return transmitted.Normalize(), true
}

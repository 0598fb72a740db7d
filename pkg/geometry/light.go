package geometry

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// sphereRadius returns the world-space radius of a sphere Object, read off
// the length its transform gives the object-space +X axis (uniform scale is
// assumed, matching every other canonical-shape formula in this package).
func sphereRadius(obj core.Object) float32 {
	return obj.Transform.TransformVec(core.NewVec3(1, 0, 0)).Norm()
}

func sphereCenter(obj core.Object) core.Point3 {
	return obj.Transform.TransformPoint(core.Origin())
}

// AreaSeenFrom approximates the solid angle a sphere Object subtends as
// seen from point, expressed as a fraction of area over 4*pi. Sphere-only;
// callers must not call this for any other Shape kind.
func AreaSeenFrom(obj core.Object, point core.Point3) float32 {
	if obj.Shape.Kind != core.ShapeSphere {
		panic("geometry: AreaSeenFrom is only defined for spheres")
	}
	radius := sphereRadius(obj)
	dist := point.DistanceTo(sphereCenter(obj)) / radius
	angle := 2 * float32(math.Asin(float64(clamp(1/dist, -1, 1))))
	return angle * angle / (4 * math.Pi)
}

// Area returns the surface area of a sphere Object.
func Area(obj core.Object) float32 {
	if obj.Shape.Kind != core.ShapeSphere {
		panic("geometry: Area is only defined for spheres")
	}
	r := sphereRadius(obj)
	return 4 * math.Pi * r * r
}

// SampleLightPoint draws a uniformly-random point on a sphere Object's
// surface and returns it with the fixed weight=2.0 next-event-estimation
// approximation spec.md documents as an open question, not a bug.
func SampleLightPoint(obj core.Object, rng *rand.Rand) (weight float32, target core.Point3) {
	if obj.Shape.Kind != core.ShapeSphere {
		panic("geometry: SampleLightPoint is only defined for spheres")
	}
	z := 1 - 2*float32(rng.Float64())
	r := float32(math.Sqrt(math.Max(0, float64(1-z*z))))
	phi := 2 * math.Pi * rng.Float64()
	x := r * float32(math.Cos(phi))
	y := r * float32(math.Sin(phi))

	objectPoint := core.NewPoint3(x, y, z)
	worldPoint := obj.Transform.TransformPoint(objectPoint)
	return 2.0, worldPoint
}

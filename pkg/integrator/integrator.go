// Package integrator implements the recursive path-tracing estimator: the
// per-ray radiance computation that the tile scheduler invokes once per
// sample. Bidirectional path tracing, photon mapping and subsurface
// scattering are explicitly out of scope; this is a plain unidirectional
// estimator with optional next-event estimation.
package integrator

import (
	"math"
	"math/rand"

	"pathtracer/pkg/accel"
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
)

// shadowBias offsets secondary rays off the surface they originated from,
// so the accelerator doesn't immediately re-hit the same point due to
// floating point error.
const shadowBias float32 = 1e-4

// Strategy selects how emitted light is accounted for along a path.
type Strategy int

const (
	// StrategySimple adds every hit's own emission unconditionally: plain
	// unidirectional path tracing, higher variance on small lights.
	StrategySimple Strategy = iota
	// StrategySampleLights adds a hit's emission only after a specular
	// bounce (so it isn't double-counted) and otherwise samples emitters
	// directly via next-event estimation.
	StrategySampleLights
)

// SampleInfo is what sampleDirection reports about the direction it chose:
// enough for the caller to weight, recurse, and track medium crossings.
type SampleInfo struct {
	Direction       core.Unit[core.Vec3]
	Weight          float32
	CrossesSurface  bool
	Specular        bool
	DiffuseFraction float32
}

// TraceRay estimates the radiance arriving along ray, recursing up to
// bouncesLeft times. medium is whatever participating medium the ray is
// currently travelling through; its volumetric colour attenuates the
// result by the distance travelled before absorption is applied.
func TraceRay(
	scene *core.Scene,
	accelerator accel.Accel,
	lights []core.ObjectID,
	strategy Strategy,
	ray core.Ray,
	isCameraRay bool,
	rng *rand.Rand,
	bouncesLeft int,
	specular bool,
	medium core.Medium,
) core.Color {
	if bouncesLeft == 0 {
		return core.Black
	}

	filter := filterFixedCameraOnly(isCameraRay)
	objHit, ok := accelerator.FirstHit(ray, float32(math.Inf(1)), filter)
	if !ok {
		return colorExp(medium.VolumetricColor, float32(math.Inf(1))).Mul(scene.SkyEmission)
	}

	obj := scene.Object(objHit.ID)
	hit := objHit.Hit
	mat := obj.Material

	if mat.MaterialType.Kind == core.MaterialFixed {
		if core.DebugAssertionsEnabled() && !isCameraRay && mat.MaterialType.CameraOnly {
			panic("integrator: Fixed{CameraOnly} material hit by a non-camera ray despite the filter")
		}
		return colorExp(medium.VolumetricColor, hit.T).Mul(mat.Albedo)
	}

	normal := hit.Normal
	cosIncoming := ray.Direction.Get().Dot(normal.Get())
	into := cosIncoming < 0

	var nextMedium core.Medium
	if into {
		debugAssertMedium(medium, mat.Outside)
		nextMedium = mat.Inside
	} else {
		debugAssertMedium(medium, mat.Inside)
		nextMedium = mat.Outside
		normal = normal.Get().Neg().Normalize()
	}
	refractRatio := medium.IndexOfRefraction / nextMedium.IndexOfRefraction

	info := sampleDirection(mat, normal, ray.Direction, refractRatio, rng)

	result := core.Black
	switch strategy {
	case StrategySimple:
		result = result.Add(mat.Emission)
	case StrategySampleLights:
		if specular {
			result = result.Add(mat.Emission)
		}
		if info.DiffuseFraction != 0 {
			nee := SampleLights(scene, accelerator, lights, hit.Point, normal, medium, rng)
			result = result.Add(mat.Albedo.Mul(nee).Scale(info.DiffuseFraction))
		}
	}

	bias := shadowBias
	if info.Direction.Get().Dot(normal.Get()) < 0 {
		bias = -shadowBias
	}
	nextOrigin := hit.Point.Add(normal.Get().Scale(bias))
	nextRay := core.NewRay(nextOrigin, info.Direction)

	bounceMedium := medium
	if info.CrossesSurface {
		bounceMedium = nextMedium
	}

	contribution := TraceRay(scene, accelerator, lights, strategy, nextRay, false, rng, bouncesLeft-1, info.Specular, bounceMedium)
	result = result.Add(mat.Albedo.Scale(info.Weight).Mul(contribution))

	return colorExp(medium.VolumetricColor, hit.T).Mul(result)
}

func debugAssertMedium(have, want core.Medium) {
	if !core.DebugAssertionsEnabled() {
		return
	}
	if have != want {
		panic("integrator: current medium does not match the material's expected side")
	}
}

// filterFixedCameraOnly builds the accel.Filter that hides
// Fixed{CameraOnly: true} objects from every ray except camera rays, so
// backdrop-only objects never cast shadows or appear in reflections.
func filterFixedCameraOnly(isCameraRay bool) accel.Filter {
	return func(obj core.Object) bool {
		if obj.Material.MaterialType.Kind == core.MaterialFixed && obj.Material.MaterialType.CameraOnly {
			return isCameraRay
		}
		return true
	}
}

func isLight(mat core.Material) bool {
	return !mat.Emission.IsBlack()
}

// CollectLights returns the ids of every object in scene whose material
// emits, the fixed set next-event estimation samples every bounce.
func CollectLights(scene *core.Scene) []core.ObjectID {
	var lights []core.ObjectID
	for i, obj := range scene.Objects {
		if isLight(obj.Material) {
			lights = append(lights, core.ObjectID(i))
		}
	}
	return lights
}

// SampleLights implements next-event estimation: for every known light, it
// samples a point on the light's surface, casts a shadow ray, and if it
// reaches the light unobstructed, accumulates the light's contribution.
func SampleLights(
	scene *core.Scene,
	accelerator accel.Accel,
	lights []core.ObjectID,
	point core.Point3,
	normal core.Unit[core.Vec3],
	medium core.Medium,
	rng *rand.Rand,
) core.Color {
	result := core.Black
	for _, lightID := range lights {
		lightObj := scene.Object(lightID)
		weight, target := geometry.SampleLightPoint(lightObj, rng)

		toLight := target.SubPoint(point)
		dirUnit, dist, ok := toLight.TryNormalize()
		if !ok {
			continue
		}

		shadowOrigin := point.Add(normal.Get().Scale(shadowBias))
		shadowRay := core.NewRay(shadowOrigin, dirUnit)
		shadowHit, hitOK := accelerator.FirstHit(shadowRay, dist-shadowBias, filterFixedCameraOnly(false))
		if !hitOK || shadowHit.ID != lightID {
			continue
		}

		cosTheta := dirUnit.Get().Dot(normal.Get())
		absCos := float32(math.Abs(float64(cosTheta)))
		areaSeenFrom := geometry.AreaSeenFrom(lightObj, point)
		volumetricMask := colorExp(medium.VolumetricColor, dist)

		contribution := lightObj.Material.Emission.Mul(volumetricMask).Scale(weight * absCos * areaSeenFrom)
		result = result.Add(contribution)
	}
	return result
}

// colorExp raises each channel of c to the power t, which is exactly what
// makes an infinite-distance sky ray under absorption keep a channel of the
// sky emission unattenuated only where the medium's channel is exactly 1,
// and turn it black wherever that channel is below 1.
func colorExp(c core.Color, t float32) core.Color {
	return core.Color{
		R: fastPow(c.R, t),
		G: fastPow(c.G, t),
		B: fastPow(c.B, t),
	}
}

// fastPow computes base^exponent for base >= 0, special-cased so that an
// infinite exponent resolves by comparison rather than by IEEE 754's
// pow rules, and a zero base returns 0 even for a zero exponent (IEEE 754
// would make 0^0 = 1 and let a fully absorbing medium over a zero distance
// read as a no-op).
func fastPow(base, exponent float32) float32 {
	if base == 0 || base == 1 || exponent == 1 {
		return base
	}
	if math.IsInf(float64(exponent), 0) {
		if (base > 1) != (exponent < 0) {
			return float32(math.Inf(1))
		}
		return 0
	}
	return float32(math.Pow(float64(base), float64(exponent)))
}

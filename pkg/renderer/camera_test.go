package renderer

import (
	"math"
	"math/rand"
	"testing"

	"pathtracer/pkg/core"
)

func almostEqual(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestRayCamera_CenterPixelPointsForward(t *testing.T) {
	cam := core.Camera{
		FovHorizontal: float32(math.Pi / 2),
		Transform:     core.IdentityTransform(),
		Medium:        core.Vacuum,
	}
	rc := NewRayCamera(cam, 100, 100, false)
	ray := rc.Ray(50, 50, rand.New(rand.NewSource(1)))

	if !almostEqual(ray.Direction.Get().X, 0, 1e-2) || !almostEqual(ray.Direction.Get().Y, 0, 1e-2) {
		t.Errorf("expected the center pixel's ray to point straight down -Z, got %v", ray.Direction.Get())
	}
	if ray.Direction.Get().Z >= 0 {
		t.Errorf("expected ray to point in -Z, got %v", ray.Direction.Get())
	}
}

func TestRayCamera_TopRowIsYZero(t *testing.T) {
	cam := core.Camera{
		FovHorizontal: float32(math.Pi / 2),
		Transform:     core.IdentityTransform(),
		Medium:        core.Vacuum,
	}
	rc := NewRayCamera(cam, 100, 100, false)
	topRay := rc.Ray(50, 0, rand.New(rand.NewSource(1)))
	bottomRay := rc.Ray(50, 99, rand.New(rand.NewSource(1)))

	if topRay.Direction.Get().Y <= bottomRay.Direction.Get().Y {
		t.Errorf("row 0 should look upward relative to the last row: top=%v, bottom=%v",
			topRay.Direction.Get().Y, bottomRay.Direction.Get().Y)
	}
}

func TestRayCamera_JitterStaysWithinPixel(t *testing.T) {
	cam := core.Camera{
		FovHorizontal: float32(math.Pi / 2),
		Transform:     core.IdentityTransform(),
		Medium:        core.Vacuum,
	}
	rc := NewRayCamera(cam, 10, 10, true)
	rng := rand.New(rand.NewSource(2))

	center := rc.Ray(5, 5, rand.New(rand.NewSource(99)))
	for i := 0; i < 50; i++ {
		jittered := rc.Ray(5, 5, rng)
		dx := jittered.Direction.Get().X - center.Direction.Get().X
		if math.Abs(float64(dx)) > float64(rc.xSpan/float32(rc.width))*2 {
			t.Errorf("jittered ray strayed too far from pixel center: dx=%v", dx)
		}
	}
}

func TestRayCamera_RespectsTransform(t *testing.T) {
	cam := core.Camera{
		FovHorizontal: float32(math.Pi / 2),
		Transform:     core.Translation(core.NewVec3(10, 0, 0)),
		Medium:        core.Vacuum,
	}
	rc := NewRayCamera(cam, 10, 10, false)
	ray := rc.Ray(5, 5, rand.New(rand.NewSource(1)))
	if !almostEqual(ray.Start.X, 10, 1e-4) {
		t.Errorf("expected ray origin translated to x=10, got %v", ray.Start.X)
	}
}

package renderer

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// RayCamera is the pinhole camera model: given pixel coordinates (with
// optional jitter for anti-aliasing) it produces a camera-space ray, then
// carries it into world space through the camera's Transform.
type RayCamera struct {
	xSpan, ySpan float32
	width, height int
	transform    core.Transform
	antiAlias    bool
}

// NewRayCamera precomputes the horizontal/vertical field-of-view spans for
// a width x height image from the camera's horizontal field of view.
func NewRayCamera(cam core.Camera, width, height int, antiAlias bool) *RayCamera {
	xSpan := 2 * float32(math.Tan(float64(cam.FovHorizontal)/2))
	ySpan := xSpan * float32(height) / float32(width)
	return &RayCamera{
		xSpan:     xSpan,
		ySpan:     ySpan,
		width:     width,
		height:    height,
		transform: cam.Transform,
		antiAlias: antiAlias,
	}
}

// Ray builds the world-space ray through pixel (px, py), where (0,0) is the
// top-left pixel. When anti-aliasing is enabled the sub-pixel position is
// jittered by rng; otherwise every sample aims at the pixel center.
func (c *RayCamera) Ray(px, py int, rng *rand.Rand) core.Ray {
	var jx, jy float32 = 0.5, 0.5
	if c.antiAlias {
		jx, jy = rng.Float32(), rng.Float32()
	}

	nx := (float32(px) + jx) / float32(c.width)
	ny := 1 - (float32(py)+jy)/float32(c.height)

	dirX := (nx - 0.5) * c.xSpan
	dirY := (ny - 0.5) * c.ySpan

	cameraSpaceDir := core.NewVec3(dirX, dirY, -1).Normalize()
	cameraSpaceRay := core.NewRay(core.Origin(), cameraSpaceDir)
	return c.transform.TransformRay(cameraSpaceRay)
}

// Package accel implements the acceleration structures that let the
// integrator find the nearest object a ray hits without scanning every
// object in the scene on every query.
package accel

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
)

// Filter decides whether obj should be considered for a given query; used
// to implement Fixed{CameraOnly} materials being invisible to shadow rays.
type Filter func(obj core.Object) bool

// AlwaysVisible is the filter that excludes nothing.
func AlwaysVisible(core.Object) bool { return true }

// Accel answers nearest-hit queries over an immutable object list.
type Accel interface {
	FirstHit(ray core.Ray, tMax float32, filter Filter) (*core.ObjectHit, bool)
}

// Linear is the brute-force reference accelerator: a linear scan over every
// object. It exists purely as the independent-implementation fixture
// spec.md's "BVH vs brute force" testable property needs, not as a
// production traversal path.
type Linear struct {
	objects []core.Object
}

func NewLinear(objects []core.Object) *Linear {
	return &Linear{objects: objects}
}

func (l *Linear) FirstHit(ray core.Ray, tMax float32, filter Filter) (*core.ObjectHit, bool) {
	var best *core.ObjectHit
	for i, obj := range l.objects {
		if !filter(obj) {
			continue
		}
		hit, ok := geometry.IntersectObject(obj, core.ObjectID(i), ray)
		if !ok || hit.Hit.T > tMax {
			continue
		}
		best = core.ClosestHit(best, hit)
	}
	return best, best != nil
}

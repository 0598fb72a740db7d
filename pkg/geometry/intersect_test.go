package geometry

import (
	"math"
	"testing"

	"pathtracer/pkg/core"
)

func almostEqual(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestIntersectSphere_FrontalHit(t *testing.T) {
	ray := core.NewRay(core.NewPoint3(0, 0, -4), core.NewVec3(0, 0, 1).Normalize())
	hit, ok := intersectSphere(ray)
	if !ok {
		t.Fatal("expected frontal ray to hit unit sphere")
	}
	if !almostEqual(hit.T, 3.0, 1e-4) {
		t.Errorf("expected t=3.0, got %v", hit.T)
	}
	if !almostEqual(hit.Normal.Get().Z, -1, 1e-4) {
		t.Errorf("expected normal facing -Z, got %v", hit.Normal.Get())
	}
}

func TestIntersectSphere_Miss(t *testing.T) {
	ray := core.NewRay(core.NewPoint3(10, 10, -4), core.NewVec3(0, 0, 1).Normalize())
	if _, ok := intersectSphere(ray); ok {
		t.Error("expected ray far off-axis to miss unit sphere")
	}
}

func TestIntersectSphere_OriginInsideUsesFarRoot(t *testing.T) {
	ray := core.NewRay(core.Origin(), core.NewVec3(0, 0, 1).Normalize())
	hit, ok := intersectSphere(ray)
	if !ok {
		t.Fatal("expected ray from inside sphere to hit")
	}
	if !almostEqual(hit.T, 1.0, 1e-4) {
		t.Errorf("expected t=1.0 exiting through far side, got %v", hit.T)
	}
}

func TestIntersectPlane_Basic(t *testing.T) {
	ray := core.NewRay(core.NewPoint3(0, 0, -5), core.NewVec3(0, 0, 1).Normalize())
	hit, ok := intersectPlane(ray)
	if !ok {
		t.Fatal("expected ray to hit plane")
	}
	if !almostEqual(hit.T, 5, 1e-4) {
		t.Errorf("expected t=5, got %v", hit.T)
	}
}

func TestIntersectPlane_ParallelMisses(t *testing.T) {
	ray := core.NewRay(core.NewPoint3(0, 0, -5), core.NewVec3(1, 0, 0).Normalize())
	if _, ok := intersectPlane(ray); ok {
		t.Error("expected a ray parallel to the plane to miss")
	}
}

func TestIntersectTriangle_InsideVsOutside(t *testing.T) {
	inside := core.NewRay(core.NewPoint3(0.2, 0.2, -1), core.NewVec3(0, 0, 1).Normalize())
	if _, ok := intersectTriangle(inside); !ok {
		t.Error("expected ray through triangle interior to hit")
	}
	outside := core.NewRay(core.NewPoint3(0.9, 0.9, -1), core.NewVec3(0, 0, 1).Normalize())
	if _, ok := intersectTriangle(outside); ok {
		t.Error("expected ray outside the x+y<=1 edge to miss")
	}
}

func TestIntersectSquare_InsideVsOutside(t *testing.T) {
	inside := core.NewRay(core.NewPoint3(0.9, 0.9, -1), core.NewVec3(0, 0, 1).Normalize())
	if _, ok := intersectSquare(inside); !ok {
		t.Error("expected ray inside unit square to hit")
	}
	outside := core.NewRay(core.NewPoint3(1.5, 0.5, -1), core.NewVec3(0, 0, 1).Normalize())
	if _, ok := intersectSquare(outside); ok {
		t.Error("expected ray outside unit square to miss")
	}
}

func TestIntersectCylinder_Basic(t *testing.T) {
	ray := core.NewRay(core.NewPoint3(0, 0, -4), core.NewVec3(0, 0, 1).Normalize())
	hit, ok := intersectCylinder(ray)
	if !ok {
		t.Fatal("expected ray to hit infinite cylinder")
	}
	if !almostEqual(hit.T, 3.0, 1e-4) {
		t.Errorf("expected t=3.0, got %v", hit.T)
	}
}

func TestIntersectObject_TransformsHitToWorldSpace(t *testing.T) {
	obj := core.Object{
		Shape:     core.Sphere,
		Transform: core.Translation(core.NewVec3(0, 0, 10)),
	}
	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, 1).Normalize())
	hit, ok := IntersectObject(obj, 0, ray)
	if !ok {
		t.Fatal("expected ray to hit translated sphere")
	}
	if !almostEqual(hit.Hit.T, 9.0, 1e-3) {
		t.Errorf("expected t=9.0 to reach translated sphere surface, got %v", hit.Hit.T)
	}
}

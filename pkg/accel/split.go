package accel

import (
	"math"

	"pathtracer/pkg/core"
)

// SplitStrategy decides where (and whether) to partition a set of objects
// under construction into two child nodes.
type SplitStrategy interface {
	findSplit(b *builder, ids []smallID) (axis core.Axis3, value float32, ok bool)
}

// LargestAxisSplit splits at the midpoint of whichever axis has the
// greatest extent across the union of the node's object boxes. The default
// strategy, and typically the cheapest to build.
type LargestAxisSplit struct{}

func (LargestAxisSplit) findSplit(b *builder, ids []smallID) (core.Axis3, float32, bool) {
	if len(ids) < 2 {
		return 0, 0, false
	}
	bound := b.boundOf(ids)
	axis, extent := largestAxis(bound)
	if extent <= 0 {
		return 0, 0, false
	}
	mid := bound.Center().Get(axis)
	return axis, mid, true
}

func largestAxis(b core.AxisBox) (core.Axis3, float32) {
	best := core.AxisX
	bestExtent := float32(-1)
	for _, axis := range core.Axis3All {
		extent := b.High.Get(axis) - b.Low.Get(axis)
		if extent > bestExtent {
			bestExtent = extent
			best = axis
		}
	}
	return best, bestExtent
}

// SurfaceAreaHeuristicSplit evaluates a handful of candidate planes per axis
// and accepts the cheapest one found, only if it beats doing nothing
// (leaving the node as one leaf). TestPlanes, if non-nil, bounds the number
// of evenly-spaced candidate planes tried per axis; otherwise every
// object's centroid on that axis is tried.
type SurfaceAreaHeuristicSplit struct {
	TestPlanes *int
}

func (s SurfaceAreaHeuristicSplit) findSplit(b *builder, ids []smallID) (core.Axis3, float32, bool) {
	if len(ids) < 2 {
		return 0, 0, false
	}
	bound := b.boundOf(ids)
	baselineCost := float32(len(ids)) * bound.Area()

	bestCost := float32(math.Inf(1))
	var bestAxis core.Axis3
	var bestValue float32
	found := false

	for _, axis := range core.Axis3All {
		var candidates []float32
		if s.TestPlanes != nil && len(ids) > *s.TestPlanes {
			candidates = evenlySpacedPlanes(bound, axis, *s.TestPlanes)
		} else {
			candidates = centroidPlanes(b, ids, axis)
		}
		for _, plane := range candidates {
			cost := s.evalSplit(b, ids, axis, plane)
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestValue = plane
				found = true
			}
		}
	}

	if !found || bestCost >= baselineCost {
		return 0, 0, false
	}
	return bestAxis, bestValue, true
}

func (s SurfaceAreaHeuristicSplit) evalSplit(b *builder, ids []smallID, axis core.Axis3, plane float32) float32 {
	var leftBox, rightBox core.AxisBox
	leftCount, rightCount := 0, 0

	for _, id := range ids {
		bound := b.boundOfOne(id)
		centroid := objectCentroid(bound)
		if centroid.Get(axis) < plane {
			if leftCount == 0 {
				leftBox = bound
			} else {
				leftBox = leftBox.Union(bound)
			}
			leftCount++
		} else {
			if rightCount == 0 {
				rightBox = bound
			} else {
				rightBox = rightBox.Union(bound)
			}
			rightCount++
		}
	}

	if leftCount == 0 || rightCount == 0 {
		return float32(math.Inf(1))
	}
	return float32(leftCount)*leftBox.Area() + float32(rightCount)*rightBox.Area()
}

func evenlySpacedPlanes(bound core.AxisBox, axis core.Axis3, count int) []float32 {
	low := bound.Low.Get(axis)
	high := bound.High.Get(axis)
	planes := make([]float32, 0, count)
	for i := 1; i < count; i++ {
		t := float32(i) / float32(count)
		planes = append(planes, core.Lerp(t, low, high))
	}
	return planes
}

func centroidPlanes(b *builder, ids []smallID, axis core.Axis3) []float32 {
	planes := make([]float32, 0, len(ids))
	for _, id := range ids {
		planes = append(planes, objectCentroid(b.boundOfOne(id)).Get(axis))
	}
	return planes
}

func objectCentroid(b core.AxisBox) core.Point3 {
	return b.Center()
}

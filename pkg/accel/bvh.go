package accel

import (
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
)

// smallID is a narrower index than core.ObjectID, used only inside the tree
// build so the node array stays small; converted back to core.ObjectID at
// the leaves.
type smallID uint32

func (id smallID) toObjectID() core.ObjectID { return core.ObjectID(id) }

// nodeKind tags whether a Node is a leaf (a contiguous run of ids) or a
// branch (its two children sit at left and left+1 in BVH.Nodes).
type nodeKind struct {
	isLeaf    bool
	start     uint32
	length    uint32
	leftIndex uint32
}

type node struct {
	bound core.AxisBox
	kind  nodeKind
}

// BVH is a binary acceleration tree over the scene's finite-bounded objects,
// plus a flat list of objects whose AABB has an infinite extent (a Plane or
// an unbounded Cylinder) that every query must check exhaustively, since no
// split can ever separate them from anything.
type BVH struct {
	objects  []core.Object
	globalID []core.ObjectID
	ids      []smallID
	nodes    []node
}

// New builds a BVH over objects using strategy to choose splits. Panics if
// there are more than 2^32-1 objects, mirroring spec.md's hard ceiling.
func New(objects []core.Object, strategy SplitStrategy) *BVH {
	if len(objects) > math.MaxUint32 {
		panic("accel: object count exceeds 2^32-1")
	}

	var finite []smallID
	var global []core.ObjectID
	for i, obj := range objects {
		if core.BoxForObject(obj).IsFinite() {
			finite = append(finite, smallID(i))
		} else {
			global = append(global, core.ObjectID(i))
		}
	}

	bvh := &BVH{objects: objects, globalID: global}
	if len(finite) == 0 {
		return bvh
	}

	b := &builder{strategy: strategy, objects: objects}
	bvh.ids = make([]smallID, 0, len(finite))
	bvh.nodes = append(bvh.nodes, node{})
	b.build(finite, 0, &bvh.ids, &bvh.nodes)

	if core.DebugAssertionsEnabled() {
		bvh.check()
	}
	return bvh
}

type builder struct {
	strategy SplitStrategy
	objects  []core.Object
}

func (b *builder) boundOfOne(id smallID) core.AxisBox {
	return core.BoxForObject(b.objects[id])
}

func (b *builder) boundOf(ids []smallID) core.AxisBox {
	bound := b.boundOfOne(ids[0])
	for _, id := range ids[1:] {
		bound = bound.Union(b.boundOfOne(id))
	}
	return bound
}

// build fills the already-allocated node at index for ids, appending ids's
// final leaf-order placement into outIDs. A branch reserves its two children
// as a consecutive pair in outNodes before recursing, so its right child
// always sits at leftIndex+1.
func (b *builder) build(ids []smallID, index uint32, outIDs *[]smallID, outNodes *[]node) {
	bound := b.boundOf(ids)

	axis, value, ok := b.strategy.findSplit(b, ids)
	if !ok {
		b.buildLeaf(ids, index, bound, outIDs, outNodes)
		return
	}

	left, right := partition(ids, func(id smallID) bool {
		return objectCentroid(b.boundOfOne(id)).Get(axis) < value
	})
	if len(left) == 0 || len(right) == 0 {
		b.buildLeaf(ids, index, bound, outIDs, outNodes)
		return
	}

	leftIndex := uint32(len(*outNodes))
	*outNodes = append(*outNodes, node{}, node{})

	b.build(left, leftIndex, outIDs, outNodes)
	b.build(right, leftIndex+1, outIDs, outNodes)

	(*outNodes)[index] = node{bound: bound, kind: nodeKind{isLeaf: false, leftIndex: leftIndex}}
}

func (b *builder) buildLeaf(ids []smallID, index uint32, bound core.AxisBox, outIDs *[]smallID, outNodes *[]node) {
	start := uint32(len(*outIDs))
	*outIDs = append(*outIDs, ids...)
	(*outNodes)[index] = node{
		bound: bound,
		kind:  nodeKind{isLeaf: true, start: start, length: uint32(len(ids))},
	}
}

func partition(ids []smallID, left func(smallID) bool) (l, r []smallID) {
	for _, id := range ids {
		if left(id) {
			l = append(l, id)
		} else {
			r = append(r, id)
		}
	}
	return l, r
}

// FirstHit implements Accel: an exhaustive scan of the global (unbounded)
// objects first, then a tree traversal, keeping whichever hit is closer.
func (bvh *BVH) FirstHit(ray core.Ray, tMax float32, filter Filter) (*core.ObjectHit, bool) {
	var best *core.ObjectHit
	for _, id := range bvh.globalID {
		obj := bvh.objects[id]
		if !filter(obj) {
			continue
		}
		hit, ok := geometry.IntersectObject(obj, id, ray)
		if ok && hit.Hit.T <= tMax {
			best = core.ClosestHit(best, hit)
		}
	}

	if len(bvh.nodes) > 0 {
		treeHit := bvh.firstHitNode(0, ray, tMax, filter)
		best = core.ClosestHit(best, treeHit)
	}
	return best, best != nil
}

func (bvh *BVH) firstHitNode(nodeIndex uint32, ray core.Ray, tMax float32, filter Filter) *core.ObjectHit {
	n := bvh.nodes[nodeIndex]

	if n.kind.isLeaf {
		var best *core.ObjectHit
		for i := uint32(0); i < n.kind.length; i++ {
			id := bvh.ids[n.kind.start+i]
			obj := bvh.objects[id]
			if !filter(obj) {
				continue
			}
			hit, ok := geometry.IntersectObject(obj, id.toObjectID(), ray)
			if ok && hit.Hit.T <= tMax {
				best = core.ClosestHit(best, hit)
			}
		}
		return best
	}

	leftIndex := n.kind.leftIndex
	rightIndex := leftIndex + 1
	leftT, leftHits := bvh.nodes[leftIndex].bound.Intersects(ray)
	rightT, rightHits := bvh.nodes[rightIndex].bound.Intersects(ray)
	if !leftHits {
		leftT = float32(math.Inf(1))
	}
	if !rightHits {
		rightT = float32(math.Inf(1))
	}

	firstIndex, firstT, secondIndex, secondT := leftIndex, leftT, rightIndex, rightT
	if !(leftT < rightT) {
		firstIndex, firstT, secondIndex, secondT = rightIndex, rightT, leftIndex, leftT
	}

	var best *core.ObjectHit
	if firstT <= tMax {
		best = core.ClosestHit(best, bvh.firstHitNode(firstIndex, ray, tMax, filter))
	}
	effectiveMax := tMax
	if best != nil && best.Hit.T < effectiveMax {
		effectiveMax = best.Hit.T
	}
	if secondT <= effectiveMax {
		best = core.ClosestHit(best, bvh.firstHitNode(secondIndex, ray, tMax, filter))
	}
	return best
}

// check validates, in debug builds only, that every id appears exactly once
// across the global list and the tree, and that every stored node bound is
// the exact union of its descendants' object AABBs.
func (bvh *BVH) check() {
	seen := make(map[core.ObjectID]bool, len(bvh.objects))
	for _, id := range bvh.globalID {
		if seen[id] {
			panic("accel: object id appears more than once (global)")
		}
		seen[id] = true
	}
	if len(bvh.nodes) > 0 {
		bvh.checkNode(0, seen)
	}
	if len(seen) != len(bvh.objects) {
		panic("accel: not every object id is covered by the acceleration structure")
	}
}

func (bvh *BVH) checkNode(index uint32, seen map[core.ObjectID]bool) core.AxisBox {
	n := bvh.nodes[index]
	if n.kind.isLeaf {
		var bound core.AxisBox
		for i := uint32(0); i < n.kind.length; i++ {
			id := bvh.ids[n.kind.start+i]
			objID := id.toObjectID()
			if seen[objID] {
				panic("accel: object id appears more than once (leaf)")
			}
			seen[objID] = true
			objBound := core.BoxForObject(bvh.objects[objID])
			if i == 0 {
				bound = objBound
			} else {
				bound = bound.Union(objBound)
			}
		}
		if bound != n.bound {
			panic("accel: leaf bound does not match exact union of its objects")
		}
		return bound
	}

	left := bvh.checkNode(n.kind.leftIndex, seen)
	right := bvh.checkNode(n.kind.leftIndex+1, seen)
	union := left.Union(right)
	if union != n.bound {
		panic("accel: branch bound does not match exact union of its children")
	}
	return union
}

// Package predicates provides low-level geometric intersection tests used
// by recovery's candidate search and Steiner-vertex computation: point/AABB
// containment, segment/AABB overlap, and segment-triangle intersection.
//
// Grounded on the reference's predicates package (predicates/aabb.go,
// predicates/segment.go), generalized from 2D Point/AABB to 3D Vec3/AABB3.
// The reference's predicates/triangle.go (2D Orient/PointInTriangle) has no
// direct carry-over: algorithm/robust.Orient3D and algorithm/geometry cover
// the 3D analogs.
package predicates

import (
	"math"

	"github.com/zalo/CDT/types"
)

// PointInAABB tests if a point is inside or on box, expanded by eps.
func PointInAABB(p types.Vec3, box types.AABB3, eps float64) bool {
	return p.X >= box.Min.X-eps && p.X <= box.Max.X+eps &&
		p.Y >= box.Min.Y-eps && p.Y <= box.Max.Y+eps &&
		p.Z >= box.Min.Z-eps && p.Z <= box.Max.Z+eps
}

// SegmentAABBIntersect tests if segment a-b intersects box, using the
// slab method (clipping the segment's parametric range against each axis).
func SegmentAABBIntersect(a, b types.Vec3, box types.AABB3, eps float64) bool {
	if PointInAABB(a, box, eps) || PointInAABB(b, box, eps) {
		return true
	}

	d := b.Sub(a)
	tMin, tMax := 0.0, 1.0

	clip := func(dAxis, aAxis, boxMin, boxMax float64) bool {
		if math.Abs(dAxis) < 1e-15 {
			return aAxis >= boxMin-eps && aAxis <= boxMax+eps
		}
		t1 := (boxMin - eps - aAxis) / dAxis
		t2 := (boxMax + eps - aAxis) / dAxis
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		return tMin <= tMax
	}

	if !clip(d.X, a.X, box.Min.X, box.Max.X) {
		return false
	}
	if !clip(d.Y, a.Y, box.Min.Y, box.Max.Y) {
		return false
	}
	if !clip(d.Z, a.Z, box.Min.Z, box.Max.Z) {
		return false
	}
	return true
}

// TriangleAABBBounds returns the AABB3 tightly enclosing a triangle, used to
// build R-tree bounding boxes for face-recovery candidate search.
func TriangleAABBBounds(a, b, c types.Vec3) types.AABB3 {
	box := types.AABB3{Min: a, Max: a}
	box = box.Union(types.AABB3{Min: b, Max: b})
	box = box.Union(types.AABB3{Min: c, Max: c})
	return box
}

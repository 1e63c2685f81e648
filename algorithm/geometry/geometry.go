// Package geometry provides plain-float geometric helpers that do not need
// the certified correctness of algorithm/robust: distances, centroids,
// bounding boxes and tetrahedron volume, generalized from their 2D
// counterparts (triangle area, point-on-segment, centroid, loop bbox).
package geometry

import (
	"math"

	"github.com/zalo/CDT/types"
)

const bboxTol = 1e-12

// SignedVolume6 returns six times the signed volume of tetrahedron
// (a,b,c,d), computed as (b-a)x(c-a).(d-a). Its sign is the opposite of
// robust.Orient3D's for the same arguments; this float64-only variant is
// used where certified correctness is not required (e.g. ranking candidates,
// computing areas for test assertions).
func SignedVolume6(a, b, c, d types.Vec3) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	return ab.Cross(ac).Dot(ad)
}

// TriangleArea2 returns twice the area of triangle (a,b,c) in 3D, computed
// via the magnitude of the cross product of two edge vectors.
func TriangleArea2(a, b, c types.Vec3) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Norm()
}

// TriangleNormal returns the (non-normalized) normal vector of triangle
// (a,b,c), following the right-hand rule for the a->b->c winding.
func TriangleNormal(a, b, c types.Vec3) types.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// PointOnSegment reports whether point p lies on the closed segment [a,b]
// within tolerance eps.
func PointOnSegment(p, a, b types.Vec3, eps float64) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	cross := ab.Cross(ap)
	if cross.Norm() > eps*math.Max(ab.Norm(), 1) {
		return false
	}

	minX, maxX := math.Min(a.X, b.X)-bboxTol, math.Max(a.X, b.X)+bboxTol
	minY, maxY := math.Min(a.Y, b.Y)-bboxTol, math.Max(a.Y, b.Y)+bboxTol
	minZ, maxZ := math.Min(a.Z, b.Z)-bboxTol, math.Max(a.Z, b.Z)+bboxTol

	return p.X >= minX && p.X <= maxX &&
		p.Y >= minY && p.Y <= maxY &&
		p.Z >= minZ && p.Z <= maxZ
}

// DistancePointSegment computes the shortest distance between a point and a
// segment.
func DistancePointSegment(p, a, b types.Vec3) float64 {
	ab := b.Sub(a)
	length2 := ab.Dot(ab)
	if length2 == 0 {
		return p.Sub(a).Norm()
	}

	t := p.Sub(a).Dot(ab) / length2
	switch {
	case t <= 0:
		return p.Sub(a).Norm()
	case t >= 1:
		return p.Sub(b).Norm()
	default:
		proj := a.Add(ab.Scale(t))
		return p.Sub(proj).Norm()
	}
}

// Centroid returns the centroid of triangle (a,b,c).
func Centroid(a, b, c types.Vec3) types.Vec3 {
	return a.Add(b).Add(c).Scale(1.0 / 3.0)
}

// TetCentroid returns the centroid of tetrahedron (a,b,c,d).
func TetCentroid(a, b, c, d types.Vec3) types.Vec3 {
	return a.Add(b).Add(c).Add(d).Scale(1.0 / 4.0)
}

// BBox computes the axis-aligned bounding box of the supplied point set.
func BBox(pts []types.Vec3) types.AABB3 {
	if len(pts) == 0 {
		return types.AABB3{}
	}

	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}

	return types.AABB3{Min: min, Max: max}
}

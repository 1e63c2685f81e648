package predicates

import (
	"math"

	"github.com/zalo/CDT/types"
)

// Dist2 returns the squared Euclidean distance between two points.
func Dist2(a, b types.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// SegmentTriangleIntersect tests whether segment p0-p1 crosses triangle
// (a,b,c), using the Möller-Trumbore parametrization. On a hit it returns
// the barycentric parameter t along the segment and the intersection point,
// used by recovery to materialize a SegmentTriangleIntersection Steiner
// vertex (numerics.NewIntersectionVertex).
func SegmentTriangleIntersect(p0, p1, a, b, c types.Vec3, eps float64) (hit bool, t float64, point types.Vec3) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	dir := p1.Sub(p0)

	h := dir.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < eps {
		return false, 0, types.Vec3{}
	}
	invDet := 1.0 / det

	s := p0.Sub(a)
	u := invDet * s.Dot(h)
	if u < -eps || u > 1+eps {
		return false, 0, types.Vec3{}
	}

	q := s.Cross(edge1)
	v := invDet * dir.Dot(q)
	if v < -eps || u+v > 1+eps {
		return false, 0, types.Vec3{}
	}

	tParam := invDet * edge2.Dot(q)
	if tParam < -eps || tParam > 1+eps {
		return false, 0, types.Vec3{}
	}

	return true, tParam, p0.Add(dir.Scale(tParam))
}

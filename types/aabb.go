package types

// AABB3 represents an axis-aligned bounding box in 3D space.
//
// The bounds are inclusive on all sides. An AABB3 is valid when
// Min.X <= Max.X, Min.Y <= Max.Y and Min.Z <= Max.Z.
//
// Example:
//
//	box := types.AABB3{
//	    Min: types.Vec3{X: 0, Y: 0, Z: 0},
//	    Max: types.Vec3{X: 10, Y: 10, Z: 10},
//	}
type AABB3 struct {
	Min Vec3
	Max Vec3
}

// Union returns the smallest AABB3 containing both a and b.
func (a AABB3) Union(b AABB3) AABB3 {
	return AABB3{
		Min: Vec3{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y), Z: min(a.Min.Z, b.Min.Z)},
		Max: Vec3{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y), Z: max(a.Max.Z, b.Max.Z)},
	}
}

// Intersects reports whether a and b overlap (inclusive of touching faces).
func (a AABB3) Intersects(b AABB3) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Expand returns a copy of a grown by margin on every side.
func (a AABB3) Expand(margin float64) AABB3 {
	return AABB3{
		Min: Vec3{X: a.Min.X - margin, Y: a.Min.Y - margin, Z: a.Min.Z - margin},
		Max: Vec3{X: a.Max.X + margin, Y: a.Max.Y + margin, Z: a.Max.Z + margin},
	}
}

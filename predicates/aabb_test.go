package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/types"
)

func unitBox() types.AABB3 {
	return types.AABB3{Min: types.Vec3{X: 0, Y: 0, Z: 0}, Max: types.Vec3{X: 1, Y: 1, Z: 1}}
}

func TestPointInAABBInterior(t *testing.T) {
	require.True(t, PointInAABB(types.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, unitBox(), 1e-9))
}

func TestPointInAABBOutside(t *testing.T) {
	require.False(t, PointInAABB(types.Vec3{X: 2, Y: 0.5, Z: 0.5}, unitBox(), 1e-9))
}

func TestSegmentAABBIntersectPiercing(t *testing.T) {
	a := types.Vec3{X: -1, Y: 0.5, Z: 0.5}
	b := types.Vec3{X: 2, Y: 0.5, Z: 0.5}
	require.True(t, SegmentAABBIntersect(a, b, unitBox(), 1e-9))
}

func TestSegmentAABBIntersectMiss(t *testing.T) {
	a := types.Vec3{X: -1, Y: 5, Z: 5}
	b := types.Vec3{X: 2, Y: 5, Z: 5}
	require.False(t, SegmentAABBIntersect(a, b, unitBox(), 1e-9))
}

func TestTriangleAABBBounds(t *testing.T) {
	box := TriangleAABBBounds(
		types.Vec3{X: 0, Y: 0, Z: 0},
		types.Vec3{X: 1, Y: 2, Z: 0},
		types.Vec3{X: -1, Y: 0, Z: 3},
	)
	require.Equal(t, -1.0, box.Min.X)
	require.Equal(t, 2.0, box.Max.Y)
	require.Equal(t, 3.0, box.Max.Z)
}

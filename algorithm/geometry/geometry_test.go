package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/types"
)

func TestSignedVolume6UnitTet(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 1, Z: 0}
	d := types.Vec3{X: 0, Y: 0, Z: 1}

	vol := SignedVolume6(a, b, c, d)
	require.InDelta(t, 1.0, vol, 1e-9)
}

func TestTriangleArea2RightTriangle(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 2, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 2, Z: 0}

	require.InDelta(t, 4.0, TriangleArea2(a, b, c), 1e-9)
}

func TestPointOnSegment(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 10, Y: 0, Z: 0}
	mid := types.Vec3{X: 5, Y: 0, Z: 0}
	off := types.Vec3{X: 5, Y: 1, Z: 0}

	require.True(t, PointOnSegment(mid, a, b, 1e-9))
	require.False(t, PointOnSegment(off, a, b, 1e-9))
}

func TestBBox(t *testing.T) {
	pts := []types.Vec3{
		{X: -1, Y: 2, Z: 0},
		{X: 3, Y: -2, Z: 5},
	}
	box := BBox(pts)
	require.Equal(t, types.Vec3{X: -1, Y: -2, Z: 0}, box.Min)
	require.Equal(t, types.Vec3{X: 3, Y: 2, Z: 5}, box.Max)
}

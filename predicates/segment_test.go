package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/types"
)

func TestDist2(t *testing.T) {
	require.Equal(t, 25.0, Dist2(types.Vec3{X: 0, Y: 0, Z: 0}, types.Vec3{X: 3, Y: 4, Z: 0}))
}

func TestSegmentTriangleIntersectHitsCenter(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 1, Z: 0}

	p0 := types.Vec3{X: 0.2, Y: 0.2, Z: -1}
	p1 := types.Vec3{X: 0.2, Y: 0.2, Z: 1}

	hit, tParam, point := SegmentTriangleIntersect(p0, p1, a, b, c, 1e-9)
	require.True(t, hit)
	require.InDelta(t, 0.5, tParam, 1e-9)
	require.InDelta(t, 0.0, point.Z, 1e-9)
}

func TestSegmentTriangleIntersectMissesOutsideTriangle(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 1, Z: 0}

	p0 := types.Vec3{X: 5, Y: 5, Z: -1}
	p1 := types.Vec3{X: 5, Y: 5, Z: 1}

	hit, _, _ := SegmentTriangleIntersect(p0, p1, a, b, c, 1e-9)
	require.False(t, hit)
}

func TestSegmentTriangleIntersectParallelMiss(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 1, Z: 0}

	p0 := types.Vec3{X: 0.2, Y: 0.2, Z: 1}
	p1 := types.Vec3{X: 0.6, Y: 0.2, Z: 1}

	hit, _, _ := SegmentTriangleIntersect(p0, p1, a, b, c, 1e-9)
	require.False(t, hit)
}

package delaunay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/algorithm/robust"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

func TestFindSeedOrdersPositively(t *testing.T) {
	verts := []types.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	tm := tetmesh.New(verts, 0)

	a, b, c, d, err := FindSeed(tm, []types.VertexID{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1, robust.Orient3D(tm.V[a], tm.V[b], tm.V[c], tm.V[d]))
}

func TestFindSeedRejectsCoplanarInput(t *testing.T) {
	verts := []types.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}
	tm := tetmesh.New(verts, 0)

	_, _, _, _, err := FindSeed(tm, []types.VertexID{0, 1, 2, 3})
	require.ErrorIs(t, err, ErrAllCoplanar)
}

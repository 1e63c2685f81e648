package tetmesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/types"
)

func regularTetVertices() []types.Vec3 {
	return []types.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
}

func TestAddVertexDedupWithinMergeDistance(t *testing.T) {
	tm := New(regularTetVertices(), 1e-6)
	id := tm.AddVertex(types.Vec3{X: 1 + 1e-9, Y: 0, Z: 0})
	require.Equal(t, types.VertexID(1), id)
	require.Len(t, tm.V, 4)
}

func TestAddVertexAppendsWhenBeyondMergeDistance(t *testing.T) {
	tm := New(regularTetVertices(), 1e-6)
	id := tm.AddVertex(types.Vec3{X: 5, Y: 5, Z: 5})
	require.Equal(t, types.VertexID(4), id)
	require.Len(t, tm.V, 5)
}

func TestAddTetRegistersFacesAndReusesFreeList(t *testing.T) {
	tm := New(regularTetVertices(), 0)
	id0 := tm.AddTet(0, 1, 2, 3)
	require.Equal(t, TetID(0), id0)

	tm.RemoveTet(id0)
	require.True(t, tm.IsDeleted(id0))

	id1 := tm.AddTet(0, 1, 2, 3)
	require.Equal(t, id0, id1, "expected free-list slot reuse")
	require.False(t, tm.IsDeleted(id1))
}

func TestSetNeighborsIsSymmetric(t *testing.T) {
	tm := New([]types.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1},
	}, 0)
	a := tm.AddTet(0, 1, 2, 3)
	b := tm.AddTet(1, 2, 3, 4)
	tm.SetNeighbors(a, 0, b, 3)

	require.Equal(t, b, tm.Tet[a].N[0])
	require.Equal(t, a, tm.Tet[b].N[3])
}

func TestCloseConvexHullAttachesGhostsAndValidates(t *testing.T) {
	tm := New(regularTetVertices(), 0)
	tm.AddTet(0, 1, 2, 3)

	ghosts := tm.CloseConvexHull()
	require.Len(t, ghosts, 4)

	for _, g := range ghosts {
		require.True(t, tm.Tet[g].IsGhost())
	}

	require.NoError(t, tm.Validate())
}

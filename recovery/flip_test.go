package recovery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// bipyramidVertices returns a triangle A,B,C containing the origin plus two
// apexes D (above) and E (below) on the z-axis, so segment D-E transversally
// crosses the triangle's interior: the textbook Flip23 precondition.
func bipyramidVertices() []types.Vec3 {
	return []types.Vec3{
		{X: 1, Y: 0, Z: 0},   // A
		{X: -1, Y: 1, Z: 0},  // B
		{X: -1, Y: -1, Z: 0}, // C
		{X: 0, Y: 0, Z: 1},   // D
		{X: 0, Y: 0, Z: -1},  // E
	}
}

func TestFlip23ReplacesTwoTetsWithThree(t *testing.T) {
	tm := tetmesh.New(bipyramidVertices(), 0)
	a, b, c, d, e := types.VertexID(0), types.VertexID(1), types.VertexID(2), types.VertexID(3), types.VertexID(4)

	t1 := tm.AddTet(a, b, c, d)
	t2 := tm.AddTet(a, b, c, e)
	tm.SetNeighbors(t1, 3, t2, 3)

	newTets, ok := Flip23(tm, t1, t2)
	require.True(t, ok)

	finiteCount := 0
	tm.AllTets(func(id tetmesh.TetID, tt tetmesh.Tet) {
		if !tt.IsGhost() {
			finiteCount++
		}
	})
	require.Equal(t, 3, finiteCount)
	for _, id := range newTets {
		require.False(t, tm.IsDeleted(id))
	}
	require.NoError(t, tm.Validate())
}

func TestFlip23RejectsNonSharedFace(t *testing.T) {
	tm := tetmesh.New(bipyramidVertices(), 0)
	a, b, c, d, e := types.VertexID(0), types.VertexID(1), types.VertexID(2), types.VertexID(3), types.VertexID(4)

	t1 := tm.AddTet(a, b, c, d)
	t2 := tm.AddTet(a, b, c, e)
	// Deliberately omit SetNeighbors: t1 and t2 share vertices but are not
	// wired as neighbors, so sharedFace must report ok=false.

	_, ok := Flip23(tm, t1, t2)
	require.False(t, ok)
}

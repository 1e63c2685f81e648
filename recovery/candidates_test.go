package recovery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

func singleTetMesh() *tetmesh.TetMesh {
	tm := tetmesh.New([]types.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}, 0)
	tm.AddTet(0, 1, 2, 3)
	return tm
}

func TestBuildCandidateIndexFindsOverlappingTet(t *testing.T) {
	tm := singleTetMesh()
	index := BuildCandidateIndex(tm)

	hits := index.QueryTriangle(
		types.Vec3{X: 0.1, Y: 0.1, Z: 0},
		types.Vec3{X: 0.2, Y: 0.1, Z: 0},
		types.Vec3{X: 0.1, Y: 0.2, Z: 0},
	)
	require.Contains(t, hits, tetmesh.TetID(0))
}

func TestBuildCandidateIndexQuerySegmentMiss(t *testing.T) {
	tm := singleTetMesh()
	index := BuildCandidateIndex(tm)

	hits := index.QuerySegment(
		types.Vec3{X: 100, Y: 100, Z: 100},
		types.Vec3{X: 101, Y: 101, Z: 101},
	)
	require.NotContains(t, hits, tetmesh.TetID(0))
}

func TestBuildCandidateIndexExcludesGhosts(t *testing.T) {
	tm := singleTetMesh()
	tm.CloseConvexHull()
	index := BuildCandidateIndex(tm)

	hits := index.QueryTriangle(
		types.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
		types.Vec3{X: 0.2, Y: 0.1, Z: 0.1},
		types.Vec3{X: 0.1, Y: 0.2, Z: 0.1},
	)
	for _, id := range hits {
		require.False(t, tm.Tet[id].IsGhost())
	}
}

package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/plc"
	"github.com/zalo/CDT/types"
)

func unitCube() *plc.PLC {
	verts := make([]float64, 0, 24)
	for _, v := range []types.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	} {
		verts = append(verts, v.X, v.Y, v.Z)
	}

	tris := []uint32{
		0, 1, 2, 0, 2, 3,
		4, 6, 5, 4, 7, 6,
		0, 4, 5, 0, 5, 1,
		1, 5, 6, 1, 6, 2,
		2, 6, 7, 2, 7, 3,
		3, 7, 4, 3, 4, 0,
	}

	p, err := plc.New(verts, tris)
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewDeduplicatesSharedEdges(t *testing.T) {
	p := unitCube()
	s := New(p)

	require.Len(t, s.Faces, 12)
	// A closed cube's 12 triangles use each of its 18 edges (12 outer edges
	// plus one diagonal per face) exactly twice, so 36 edge uses dedup to
	// 18; assert that a dedup happened.
	require.Less(t, len(s.Edges), 36)
	require.Greater(t, len(s.Edges), 12)
}

func TestEdgeResolutionLifecycle(t *testing.T) {
	p := unitCube()
	s := New(p)

	require.False(t, s.AllEdgesResolved())

	e := NewEdge(0, 1)
	idx := s.EdgeIndex(e)
	require.GreaterOrEqual(t, idx, 0)
	require.False(t, s.Edges[idx].Resolved())

	s.SetEdgeChain(idx, []types.VertexID{0, 1})
	require.True(t, s.Edges[idx].Resolved())
}

func TestEdgeIndexMissingReturnsNegativeOne(t *testing.T) {
	p := unitCube()
	s := New(p)
	require.Equal(t, -1, s.EdgeIndex(NewEdge(100, 200)))
}

func TestFaceResolutionLifecycle(t *testing.T) {
	p := unitCube()
	s := New(p)

	require.False(t, s.Faces[0].Resolved())
	s.SetFaceChildren(0, []types.FaceKey{types.NewFaceKey(0, 1, 2)})
	require.True(t, s.Faces[0].Resolved())
}

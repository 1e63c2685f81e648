package plc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unitCubeArrays() ([]float64, []uint32) {
	vertices := []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
		0, 0, 1,
		1, 0, 1,
		1, 1, 1,
		0, 1, 1,
	}
	triangles := []uint32{
		0, 1, 2, 0, 2, 3, // bottom
		4, 6, 5, 4, 7, 6, // top
		0, 4, 5, 0, 5, 1, // front
		1, 5, 6, 1, 6, 2, // right
		2, 6, 7, 2, 7, 3, // back
		3, 7, 4, 3, 4, 0, // left
	}
	return vertices, triangles
}

func TestNewValidCube(t *testing.T) {
	v, tr := unitCubeArrays()
	p, err := New(v, tr)
	require.NoError(t, err)
	require.Len(t, p.Vertices, 8)
	require.Len(t, p.Triangles, 12)
	require.Equal(t, 8, p.NumOriginalVertices)
}

func TestNewRejectsBadVertexLength(t *testing.T) {
	v := []float64{0, 0, 1, 1}
	_, err := New(v, nil)
	require.ErrorIs(t, err, ErrVertexLengthNotDivisible)
}

func TestNewRejectsBadTriangleLength(t *testing.T) {
	v, _ := unitCubeArrays()
	_, err := New(v, []uint32{0, 1})
	require.ErrorIs(t, err, ErrTriangleLengthNotDivisible)
}

func TestNewRejectsOutOfRangeIndex(t *testing.T) {
	v, _ := unitCubeArrays()
	_, err := New(v, []uint32{0, 1, 100})
	require.ErrorIs(t, err, ErrTriangleIndexOutOfRange)
}

func TestNewRejectsDegenerateTriangle(t *testing.T) {
	v, _ := unitCubeArrays()
	_, err := New(v, []uint32{0, 0, 1})
	require.ErrorIs(t, err, ErrDegenerateTriangle)
}

func TestAddBoundingBoxAppendsHighestHandles(t *testing.T) {
	v, tr := unitCubeArrays()
	p, err := New(v, tr)
	require.NoError(t, err)

	before := p.NumOriginalVertices
	p.AddBoundingBox()
	require.Len(t, p.Vertices, before+8)
	require.Equal(t, before, p.NumOriginalVertices)
	require.True(t, p.BoundingBoxAppended)

	box := p.BoundingBox()
	for i := before; i < before+8; i++ {
		corner := p.Vertices[i]
		require.True(t, corner.X < box.Min.X || corner.X > box.Max.X ||
			corner.Y < box.Min.Y || corner.Y > box.Max.Y ||
			corner.Z < box.Min.Z || corner.Z > box.Max.Z)
	}
}

func TestAddBoundingBoxIsANoOpWhenCalledTwice(t *testing.T) {
	v, tr := unitCubeArrays()
	p, err := New(v, tr)
	require.NoError(t, err)

	p.AddBoundingBox()
	n := len(p.Vertices)
	p.AddBoundingBox()
	require.Len(t, p.Vertices, n)
}

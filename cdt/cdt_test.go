package cdt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/testutil"
)

func TestComputeCDTUnitCube(t *testing.T) {
	in := testutil.UnitCube()
	result, err := ComputeCDT(in.Vertices, in.Triangles)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.True(t, result.IsPolyhedron)
	require.GreaterOrEqual(t, result.NumTetrahedra, 5)
	require.LessOrEqual(t, result.NumTetrahedra, 24)
	require.Equal(t, 0, result.NumSteinerVertices)
}

func TestComputeCDTRegularTetrahedron(t *testing.T) {
	in := testutil.RegularTetrahedron()
	result, err := ComputeCDT(in.Vertices, in.Triangles)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.True(t, result.IsPolyhedron)
	require.Equal(t, 1, result.NumTetrahedra)
	require.Equal(t, 0, result.NumSteinerVertices)
}

func TestComputeCDTRegularOctahedron(t *testing.T) {
	in := testutil.RegularOctahedron()
	result, err := ComputeCDT(in.Vertices, in.Triangles)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.True(t, result.IsPolyhedron)
	require.GreaterOrEqual(t, result.NumTetrahedra, 4)
	require.LessOrEqual(t, result.NumTetrahedra, 12)
}

func TestComputeCDTRejectsMalformedVertexLength(t *testing.T) {
	in := testutil.MalformedVertexLength()

	validation := ValidateMesh(in.Vertices, in.Triangles)
	require.False(t, validation.Valid)

	result, err := ComputeCDT(in.Vertices, in.Triangles)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Empty(t, result.Vertices)
	require.Empty(t, result.Tetrahedra)
}

func TestComputeCDTRejectsOutOfRangeTriangleIndex(t *testing.T) {
	in := testutil.OutOfRangeTriangleIndex()

	validation := ValidateMesh(in.Vertices, in.Triangles)
	require.False(t, validation.Valid)

	result, err := ComputeCDT(in.Vertices, in.Triangles)
	require.NoError(t, err)
	require.False(t, result.Success)
}

func TestComputeCDTFailsOnCoplanarInput(t *testing.T) {
	in := testutil.CoplanarQuad()

	result, err := ComputeCDT(in.Vertices, in.Triangles)
	require.NoError(t, err)
	require.False(t, result.Success)
}

func TestComputeCDTBoundingBoxPreservesNumInputVertices(t *testing.T) {
	in := testutil.UnitCube()
	result, err := ComputeCDT(in.Vertices, in.Triangles, WithBoundingBox(true))
	require.NoError(t, err)
	require.Equal(t, 8, result.NumInputVertices)
}

func TestValidateMeshAgreesWithComputeCDTRejection(t *testing.T) {
	in := testutil.MalformedVertexLength()

	validation := ValidateMesh(in.Vertices, in.Triangles)
	result, err := ComputeCDT(in.Vertices, in.Triangles)
	require.NoError(t, err)
	require.Equal(t, validation.Valid, result.Success)
}

// Package plc implements the input Piecewise Linear Complex container and
// validation described in spec section 4.B: a packed vertex/triangle array
// pair, checked for the handful of structural defects that would otherwise
// crash or silently corrupt the tetrahedrizer.
package plc

import (
	"errors"
	"fmt"

	"github.com/zalo/CDT/algorithm/geometry"
	"github.com/zalo/CDT/types"
)

// Sentinel errors for the input-invalid category (spec section 7, category 1).
var (
	ErrVertexLengthNotDivisible   = errors.New("plc: vertex array length not divisible by 3")
	ErrTriangleLengthNotDivisible = errors.New("plc: triangle array length not divisible by 3")
	ErrTriangleIndexOutOfRange    = errors.New("plc: triangle index out of range")
	ErrDegenerateTriangle         = errors.New("plc: degenerate triangle (repeated vertex index)")
)

// Triangle is an input constraint triangle, referencing vertex handles.
type Triangle [3]types.VertexID

// PLC is the canonical in-memory input container: a contiguous vertex array
// with stable handles and the triangle list referencing them.
//
// Vertices [0, NumOriginalVertices) are true input vertices. If
// AddBoundingBox was applied, vertices [NumOriginalVertices,
// NumOriginalVertices+8) are the bounding-box corners, appended after all
// input vertices per DESIGN.md's resolution of the spec's open question on
// handle numbering. Neither block is ever reordered.
type PLC struct {
	Vertices            []types.Vec3
	Triangles           []Triangle
	NumOriginalVertices int
	BoundingBoxAppended bool
}

// New validates and wraps a packed vertex coordinate array (length divisible
// by 3, row-major x,y,z) and a packed triangle index array (length
// divisible by 3, each index < len(vertices)/3).
func New(verticesFlat []float64, trianglesFlat []uint32) (*PLC, error) {
	if len(verticesFlat)%3 != 0 {
		return nil, ErrVertexLengthNotDivisible
	}
	if len(trianglesFlat)%3 != 0 {
		return nil, ErrTriangleLengthNotDivisible
	}

	numVerts := len(verticesFlat) / 3
	vertices := make([]types.Vec3, numVerts)
	for i := 0; i < numVerts; i++ {
		vertices[i] = types.Vec3{
			X: verticesFlat[3*i+0],
			Y: verticesFlat[3*i+1],
			Z: verticesFlat[3*i+2],
		}
	}

	numTris := len(trianglesFlat) / 3
	triangles := make([]Triangle, numTris)
	for i := 0; i < numTris; i++ {
		a := trianglesFlat[3*i+0]
		b := trianglesFlat[3*i+1]
		c := trianglesFlat[3*i+2]
		if int(a) >= numVerts || int(b) >= numVerts || int(c) >= numVerts {
			return nil, fmt.Errorf("%w: triangle %d", ErrTriangleIndexOutOfRange, i)
		}
		if a == b || b == c || a == c {
			return nil, fmt.Errorf("%w: triangle %d", ErrDegenerateTriangle, i)
		}
		triangles[i] = Triangle{types.VertexID(a), types.VertexID(b), types.VertexID(c)}
	}

	return &PLC{
		Vertices:            vertices,
		Triangles:           triangles,
		NumOriginalVertices: numVerts,
	}, nil
}

// IsDegenerateTriangle reports whether triangle t has (near-)zero area given
// the current vertex positions, using eps as the area tolerance. Unlike the
// index-equality check in New (which only rejects literally repeated
// indices), this catches three distinct, collinear vertices.
func (p *PLC) IsDegenerateTriangle(t Triangle, eps float64) bool {
	a, b, c := p.Vertices[t[0]], p.Vertices[t[1]], p.Vertices[t[2]]
	return geometry.TriangleArea2(a, b, c) <= eps
}

// BoundingBox returns the axis-aligned bounding box of the original input
// vertices (never including any already-appended bounding-box corners).
func (p *PLC) BoundingBox() types.AABB3 {
	return geometry.BBox(p.Vertices[:p.NumOriginalVertices])
}

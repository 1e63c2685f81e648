package cdt

import "github.com/zalo/CDT/types"

// Result is the outcome of ComputeCDT, covering every field spec section 6
// names. All failure categories (invalid input, degenerate seed, recovery
// failure) collapse to Success=false with empty Vertices/Tetrahedra, per
// spec section 7's "Error signalling" policy — there is no separate error
// code channel on this type; ComputeCDT's own error return is reserved for
// category 4 (resource exhaustion) and category 5 (internal inconsistency),
// which spec 7 says must propagate rather than collapse into the result.
type Result struct {
	// Vertices holds every output vertex, input followed by any
	// bounding-box corners followed by Steiner vertices, length
	// NumInputVertices+NumSteinerVertices (or +8+NumSteinerVertices when
	// AddBoundingBox was used — see DESIGN.md's resolution of the spec's
	// bounding-box numbering open question).
	Vertices []types.Vec3

	// Tetrahedra holds the four vertex handles of every interior
	// (non-ghost) tet, length NumTetrahedra.
	Tetrahedra [][4]types.VertexID

	NumInputVertices   int
	NumSteinerVertices int
	NumTetrahedra      int
	IsPolyhedron       bool
	Success            bool
}

// FlatVertices packs Vertices into the row-major x,y,z layout spec 6
// describes for the host-language binding layer.
func (r Result) FlatVertices() []float64 {
	out := make([]float64, 0, len(r.Vertices)*3)
	for _, v := range r.Vertices {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// FlatTetrahedra packs Tetrahedra into the four-vertex-indices-per-tet
// layout spec 6 describes for the host-language binding layer.
func (r Result) FlatTetrahedra() []uint32 {
	out := make([]uint32, 0, len(r.Tetrahedra)*4)
	for _, t := range r.Tetrahedra {
		out = append(out, uint32(t[0]), uint32(t[1]), uint32(t[2]), uint32(t[3]))
	}
	return out
}

// failureResult is the shared zero-value for every category 1-3 failure
// path (spec 7): empty arrays, Success=false.
func failureResult() Result {
	return Result{Success: false}
}

// ValidationResult is the outcome of ValidateMesh (spec section 6).
type ValidationResult struct {
	NumVertices  int
	NumTriangles int
	Valid        bool
}

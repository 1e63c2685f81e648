package cdt

import (
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// export builds the public Result from the pipeline's final mesh state.
//
// Grounded on the reference's ExportToMesh (cdt/cleanup.go), simplified:
// that function remaps vertex indices to drop unused (cover) vertices.
// This implementation never remaps — spec 4.D's "Ordering" invariant
// requires vertex handle == input index to hold for the lifetime of the
// computation — so export is a straight filter over non-ghost tets: when
// isPolyhedron holds only tets marked In are kept, otherwise every
// non-ghost tet is kept. Ghost tets are always dropped, per the
// resolved-open-question defensive ghost filtering in SPEC_FULL.md.
func (pl *pipeline) export(isPolyhedron, faceSuccess bool) Result {
	boundingBoxVertices := 0
	if pl.p.BoundingBoxAppended {
		boundingBoxVertices = 8
	}
	numInputAndBox := pl.p.NumOriginalVertices + boundingBoxVertices

	result := Result{
		Vertices:           append([]types.Vec3(nil), pl.tm.V...),
		NumInputVertices:   pl.p.NumOriginalVertices,
		NumSteinerVertices: len(pl.tm.V) - numInputAndBox,
		IsPolyhedron:       isPolyhedron,
		Success:            faceSuccess,
	}

	pl.tm.AllTets(func(id tetmesh.TetID, t tetmesh.Tet) {
		if t.IsGhost() {
			return
		}
		if isPolyhedron && t.M != tetmesh.In {
			return
		}
		result.Tetrahedra = append(result.Tetrahedra, t.V)
	})
	result.NumTetrahedra = len(result.Tetrahedra)

	return result
}

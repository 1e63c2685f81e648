package recovery

import (
	"fmt"

	"github.com/zalo/CDT/delaunay"
	"github.com/zalo/CDT/numerics"
	"github.com/zalo/CDT/overlay"
	"github.com/zalo/CDT/predicates"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// maxSegmentSteps bounds the HSi walk per edge; termination is guaranteed by
// spec 4.F (each Steiner point strictly subdivides an uncovered interval,
// and the set of possible Steiner points is finite), so this is a safety
// net against a logic error rather than an expected exit path.
const maxSegmentSteps = 4096

// Fixed tolerances used by findNextCrossing: the segment-triangle test
// tolerance and the radius for snapping a crossing to an existing vertex.
// The mesh's merge distance is not consulted.
const (
	defaultSegEps        = 1e-9
	defaultVertexSnapEps = 1e-7
)

// RecoverSegment forces input edge sp.Edges[edgeIdx] to be present in tm as
// a chain of mesh edges (spec 4.F), inserting Steiner vertices at
// transversal crossings of the segment with mesh faces. hint is the tet ID
// used to seed point-location for any Steiner insertion; it returns an
// updated hint for the caller's next recovery call.
//
// Grounded on the reference's forceEdge (cdt/constraint.go): a loop that
// repeatedly advances along the constraint and resolves whatever blocks it,
// generalized from edge-flipping in 2D to Steiner insertion in 3D (face
// recovery's flip-based approach has no segment-recovery analog because a
// 1D segment cannot be "flipped" past a blocking face the way a 2D edge
// can).
func RecoverSegment(tm *tetmesh.TetMesh, sp *overlay.StructuredPLC, reg *numerics.Registry, edgeIdx int, hint tetmesh.TetID) (tetmesh.TetID, error) {
	edge := sp.Edges[edgeIdx].Edge
	chain := []types.VertexID{edge.A}
	cur := edge.A
	lastHint := hint

	if hasEdge(tm, edge.A, edge.B) {
		sp.SetEdgeChain(edgeIdx, []types.VertexID{edge.A, edge.B})
		return lastHint, nil
	}

	for step := 0; step < maxSegmentSteps; step++ {
		if cur == edge.B {
			sp.SetEdgeChain(edgeIdx, chain)
			return lastHint, nil
		}

		if hasEdge(tm, cur, edge.B) {
			chain = append(chain, edge.B)
			sp.SetEdgeChain(edgeIdx, chain)
			return lastHint, nil
		}

		hitVertex, hitPoint, hitTet, ok := findNextCrossing(tm, cur, edge.B)
		if !ok {
			return lastHint, fmt.Errorf("recovery: segment (%d,%d) stalled at vertex %d after %d steps",
				edge.A, edge.B, cur, step)
		}

		if hitVertex != types.NilVertex {
			chain = append(chain, hitVertex)
			cur = hitVertex
			continue
		}

		newID := tm.AddVertex(hitPoint)
		_, lastTet, err := delaunay.InsertVertex(tm, hitTet, newID)
		if err != nil {
			return lastHint, fmt.Errorf("recovery: inserting Steiner vertex for edge (%d,%d): %w", edge.A, edge.B, err)
		}
		reg.Set(newID, numerics.NewIntersectionVertex(edge.A, edge.B, types.NilVertex, types.NilVertex, types.NilVertex, hitPoint))
		lastHint = lastTet
		chain = append(chain, newID)
		cur = newID
	}

	return lastHint, fmt.Errorf("recovery: segment (%d,%d) exceeded its step budget", edge.A, edge.B)
}

// hasEdge reports whether some finite tet already has both a and b among
// its four vertices, i.e. the mesh already contains edge (a,b).
func hasEdge(tm *tetmesh.TetMesh, a, b types.VertexID) bool {
	found := false
	tm.AllTets(func(id tetmesh.TetID, t tetmesh.Tet) {
		if found || t.IsGhost() {
			return
		}
		if t.LocalIndexOf(a) >= 0 && t.LocalIndexOf(b) >= 0 {
			found = true
		}
	})
	return found
}

// starTets returns every finite tet incident to vertex v.
func starTets(tm *tetmesh.TetMesh, v types.VertexID) []tetmesh.TetID {
	var out []tetmesh.TetID
	tm.AllTets(func(id tetmesh.TetID, t tetmesh.Tet) {
		if t.IsGhost() {
			return
		}
		if t.LocalIndexOf(v) >= 0 {
			out = append(out, id)
		}
	})
	return out
}

// findNextCrossing finds where segment cur->target first leaves cur's tet
// star: either through an existing vertex of the opposite face of some
// star tet (within vertexSnapEps, which terminates the chain at that
// vertex), or transversally through a face's interior (which yields a
// Steiner point and the tet it intersects).
func findNextCrossing(tm *tetmesh.TetMesh, cur, target types.VertexID) (hitVertex types.VertexID, hitPoint types.Vec3, hitTet tetmesh.TetID, ok bool) {
	p := tm.V[cur]
	q := tm.V[target]

	for _, tid := range starTets(tm, cur) {
		t := tm.Tet[tid]
		local := t.LocalIndexOf(cur)
		a, b, c := t.Face(local)
		pa, pb, pc := tm.V[a], tm.V[b], tm.V[c]

		hit, tParam, point := predicates.SegmentTriangleIntersect(p, q, pa, pb, pc, defaultSegEps)
		if !hit || tParam <= defaultSegEps {
			continue
		}

		for _, vid := range [3]types.VertexID{a, b, c} {
			if predicates.Dist2(point, tm.V[vid]) <= defaultVertexSnapEps*defaultVertexSnapEps {
				return vid, types.Vec3{}, tetmesh.NilTet, true
			}
		}

		return types.NilVertex, point, tid, true
	}

	return types.NilVertex, types.Vec3{}, tetmesh.NilTet, false
}

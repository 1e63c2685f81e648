// Package region implements region marking (spec section 4.H): classifying
// every finite tet as inside or outside the polyhedral region enclosed by
// the input triangles, and detecting whether the input surface was a
// closed 2-manifold in the first place.
//
// Grounded on the reference's cdt/classify.go (FloodFillClassify,
// PruneByFloodFill): a BFS that refuses to cross constrained primitives,
// generalized from a single inside/outside boundary made of edges to a
// set of constraint faces cutting 3D tet adjacency.
package region

import (
	"github.com/zalo/CDT/overlay"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// constraintFaceSet builds the set of all mesh faces recorded as children
// of any constraint triangle, i.e. the cut in the tet adjacency graph that
// flood fill must not cross.
func constraintFaceSet(sp *overlay.StructuredPLC) map[types.FaceKey]bool {
	cut := make(map[types.FaceKey]bool)
	for _, f := range sp.Faces {
		for _, key := range f.Children {
			cut[key] = true
		}
	}
	return cut
}

// MarkRegions flood-fills tm starting from every ghost tet, marking every
// tet reachable without crossing a constraint face as Out, and every tet
// that is never reached (i.e. only reachable by crossing a constraint
// face) as In. It returns the number of tets marked In.
//
// This assumes the constraint triangles' recovered faces form a closed
// 2-manifold separating the mesh into an outside reachable from infinity
// and an enclosed inside; callers should only trust the result when
// IsClosedManifold reports true for the PLC this structured PLC was built
// from.
func MarkRegions(tm *tetmesh.TetMesh, sp *overlay.StructuredPLC) int {
	cut := constraintFaceSet(sp)

	var queue []tetmesh.TetID
	tm.AllTets(func(id tetmesh.TetID, t tetmesh.Tet) {
		if t.IsGhost() {
			t.M = tetmesh.Out
			tm.Tet[id] = t
			queue = append(queue, id)
		}
	})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		t := tm.Tet[cur]
		for local := 0; local < 4; local++ {
			n := t.N[local]
			if n == tetmesh.NilTet || tm.IsDeleted(n) {
				continue
			}
			if tm.Tet[n].M != tetmesh.Unset {
				continue
			}
			if cut[t.FaceKey(local)] {
				continue
			}
			nt := tm.Tet[n]
			nt.M = tetmesh.Out
			tm.Tet[n] = nt
			queue = append(queue, n)
		}
	}

	count := 0
	tm.AllTets(func(id tetmesh.TetID, t tetmesh.Tet) {
		if t.IsGhost() {
			return
		}
		if t.M == tetmesh.Unset {
			t.M = tetmesh.In
			tm.Tet[id] = t
			count++
		}
	})

	return count
}

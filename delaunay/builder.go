package delaunay

import (
	"fmt"

	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// BuildDelaunay constructs the unconstrained Delaunay tetrahedrization of
// every vertex named in order, which must list each handle to be inserted
// exactly once (spec 4.D "Ordering": vertices are inserted in the order
// given and the input array itself is never reordered).
//
// Grounded on the reference's cdt/builder.go stage-sequence style: seed,
// then insert-each-remaining-vertex, wrapping the first failure with
// context rather than panicking.
func BuildDelaunay(tm *tetmesh.TetMesh, order []types.VertexID) error {
	a, b, c, d, err := FindSeed(tm, order)
	if err != nil {
		return err
	}

	seedTet := tm.AddTet(a, b, c, d)
	tm.CloseConvexHull()

	seeded := map[types.VertexID]bool{a: true, b: true, c: true, d: true}

	hint := seedTet
	for _, v := range order {
		if seeded[v] {
			continue
		}
		newTets, lastTet, err := InsertVertex(tm, hint, v)
		if err != nil {
			return fmt.Errorf("delaunay: inserting vertex %d: %w", v, err)
		}
		_ = newTets
		hint = lastTet
	}

	return nil
}

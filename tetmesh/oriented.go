package tetmesh

import (
	"github.com/zalo/CDT/algorithm/robust"
	"github.com/zalo/CDT/types"
)

// AddOrientedTet adds a tet over v0,v1,v2,v3, swapping v1/v2 first if needed
// so a finite tet's stored order satisfies Orient3D(v0,v1,v2,v3) > 0 (the
// invariant Tet.Face's winding relies on). v0 is never moved, so the caller
// can still address the face opposite v0 as local index 0 afterward.
//
// Ghost tets (one of v0..v3 is types.Infinite) cannot be checked this way —
// Orient3D has no defined sign against a point at infinity — so they are
// added as given; ghost orientation instead follows from the finite tet
// they were built from (see CloseConvexHull).
func (tm *TetMesh) AddOrientedTet(v0, v1, v2, v3 types.VertexID) TetID {
	if !v0.IsInfinite() && !v1.IsInfinite() && !v2.IsInfinite() && !v3.IsInfinite() {
		if robust.Orient3D(tm.V[v0], tm.V[v1], tm.V[v2], tm.V[v3]) < 0 {
			v1, v2 = v2, v1
		}
	}
	return tm.AddTet(v0, v1, v2, v3)
}

// Package delaunay builds the unconstrained Delaunay tetrahedrization of a
// finite point set (spec section 4.D): seed selection, point location by
// walking, and Bowyer-Watson cavity insertion, with ghost tets closing the
// convex hull.
//
// Grounded on the reference cdt package's incremental builder
// (cdt/supertriangle.go, cdt/locate.go, cdt/insert_point.go,
// cdt/legalize.go), generalized from 2D triangles to 3D tetrahedra.
package delaunay

import (
	"errors"

	"github.com/zalo/CDT/algorithm/robust"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// ErrAllCoplanar is returned when no four vertices among the first
// candidates scanned have a nonzero orientation, meaning the whole input is
// coplanar and no seed tetrahedron exists.
var ErrAllCoplanar = errors.New("delaunay: all candidate vertices are coplanar")

// FindSeed scans order (a permutation or prefix of vertex handles) for the
// first four vertices that are not coplanar, per spec 4.D "Initialization."
// It returns their handles ordered so that Orient3D(a,b,c,d) > 0.
func FindSeed(tm *tetmesh.TetMesh, order []types.VertexID) (a, b, c, d types.VertexID, err error) {
	n := len(order)
	if n < 4 {
		return 0, 0, 0, 0, ErrAllCoplanar
	}

	for i0 := 0; i0 < n-3; i0++ {
		for i1 := i0 + 1; i1 < n-2; i1++ {
			for i2 := i1 + 1; i2 < n-1; i2++ {
				for i3 := i2 + 1; i3 < n; i3++ {
					va, vb, vc, vd := order[i0], order[i1], order[i2], order[i3]
					sign := robust.Orient3D(tm.V[va], tm.V[vb], tm.V[vc], tm.V[vd])
					if sign == 0 {
						continue
					}
					if sign < 0 {
						vb, vc = vc, vb
					}
					return va, vb, vc, vd, nil
				}
			}
		}
	}

	return 0, 0, 0, 0, ErrAllCoplanar
}

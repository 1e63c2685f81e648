package tetmesh

import "github.com/zalo/CDT/types"

// CloseConvexHull attaches a ghost tetrahedron to every boundary face of the
// mesh (a face with NilTet on the far side), each ghost using
// types.Infinite as its fourth vertex. This keeps every finite tet's face
// adjacency total, matching the reference's SuperTriangle-at-infinity
// convention (cdt/supertriangle.go) generalized from a single bounding
// triangle to one ghost tet per hull face.
//
// Ghosts are linked to each other around shared hull edges by a second pass
// that walks each new ghost's two finite-adjacent faces.
func (tm *TetMesh) CloseConvexHull() []TetID {
	var boundary []struct {
		id    TetID
		local int
	}

	tm.AllTets(func(id TetID, t Tet) {
		if t.IsGhost() {
			return
		}
		for local, n := range t.N {
			if n == NilTet {
				boundary = append(boundary, struct {
					id    TetID
					local int
				}{id, local})
			}
		}
	})

	ghosts := make([]TetID, 0, len(boundary))
	for _, b := range boundary {
		t := tm.Tet[b.id]
		a, c, d := t.Face(b.local)
		// Ghost tet: (a, c, d, Infinite). Face 3 of the ghost (opposite its
		// local vertex 3, which is Infinite) is the triple (a, c, d) and so
		// keys back to the same triple as the finite tet's boundary face.
		ghostID := tm.AddTet(a, c, d, types.Infinite)
		// The finite neighbor across the shared face sits opposite the
		// ghost's Infinite vertex, which is local index 3, i.e. face 3.
		tm.SetNeighbors(b.id, b.local, ghostID, 3)
		ghosts = append(ghosts, ghostID)
	}

	tm.LinkOpenFaces(ghosts)
	return ghosts
}

// LinkOpenFaces wires every still-open (NilTet) face of each tet in
// candidates to whatever other tet in the mesh already shares that face
// key, via the face2tet index. Used both to close the ghost shell here and,
// by the delaunay package, to stitch newly created cavity-replacement tets
// to each other after Bowyer-Watson retetrahedrization.
func (tm *TetMesh) LinkOpenFaces(candidates []TetID) {
	for _, g := range candidates {
		t := tm.Tet[g]
		for local := 0; local < 4; local++ {
			if t.N[local] != NilTet {
				continue
			}
			key := t.FaceKey(local)
			for _, use := range tm.FindFaceTet(key) {
				if use.T == g {
					continue
				}
				tm.SetNeighbors(g, local, use.T, use.Local)
				break
			}
		}
	}
}

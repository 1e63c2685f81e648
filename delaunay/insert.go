package delaunay

import (
	"errors"

	"github.com/zalo/CDT/algorithm/robust"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

type boundaryFace struct {
	outsideTet   tetmesh.TetID
	outsideLocal int
	verts        [3]types.VertexID
}

// InsertVertex performs one step of Bowyer-Watson cavity insertion for
// vertex v, starting the point-location walk from startHint.
//
// Grounded on the reference's cdt/insert_point.go (explicit mesh-surgery
// case analysis) and cdt/legalize.go (BFS-queue pattern), recombined per
// spec 4.D: 3D cavity carving folds location, growth, and
// retetrahedrization into a single BFS-driven pass because a carved 3D
// cavity is Delaunay by construction once every boundary face connects to
// the new vertex.
func InsertVertex(tm *tetmesh.TetMesh, startHint tetmesh.TetID, v types.VertexID) ([]tetmesh.TetID, tetmesh.TetID, error) {
	p := tm.V[v]

	loc := NewLocator(tm, startHint)
	seed, err := loc.Locate(p)
	if err != nil {
		return nil, tetmesh.NilTet, err
	}

	cavity := map[tetmesh.TetID]bool{seed: true}
	queue := []tetmesh.TetID{seed}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		t := tm.Tet[id]
		for local := 0; local < 4; local++ {
			n := t.N[local]
			if n == tetmesh.NilTet || cavity[n] {
				continue
			}
			if inCircumsphere(tm, tm.Tet[n], p) {
				cavity[n] = true
				queue = append(queue, n)
			}
		}
	}

	var boundaries []boundaryFace
	cavityList := make([]tetmesh.TetID, 0, len(cavity))
	for id := range cavity {
		cavityList = append(cavityList, id)
	}

	for _, id := range cavityList {
		t := tm.Tet[id]
		for local := 0; local < 4; local++ {
			n := t.N[local]
			if n != tetmesh.NilTet && cavity[n] {
				continue
			}
			if n == tetmesh.NilTet {
				continue
			}
			outsideLocal := -1
			outside := tm.Tet[n]
			for ol, back := range outside.N {
				if back == id {
					outsideLocal = ol
					break
				}
			}
			if outsideLocal == -1 {
				return nil, tetmesh.NilTet, errors.New("delaunay: cavity boundary neighbor link is broken")
			}

			a, b, c := outside.Face(outsideLocal)
			if a.IsInfinite() || b.IsInfinite() || c.IsInfinite() {
				// Horizon edge at infinity between an absorbed ghost (t/id,
				// itself necessarily a ghost to have reached this pairing)
				// and a surviving one: removing the cavity below leaves this
				// face open on the surviving ghost, and CloseConvexHull below
				// re-ghosts it from the finite side once the new tets exist.
				continue
			}

			boundaries = append(boundaries, boundaryFace{
				outsideTet:   n,
				outsideLocal: outsideLocal,
				verts:        [3]types.VertexID{a, b, c},
			})
		}
	}

	if len(boundaries) == 0 {
		return nil, tetmesh.NilTet, errors.New("delaunay: cavity has no boundary faces")
	}

	for _, id := range cavityList {
		tm.RemoveTet(id)
	}

	newTets := make([]tetmesh.TetID, 0, len(boundaries))
	for _, bf := range boundaries {
		newID := tm.AddOrientedTet(v, bf.verts[0], bf.verts[1], bf.verts[2])
		tm.SetNeighbors(newID, 0, bf.outsideTet, bf.outsideLocal)
		newTets = append(newTets, newID)
	}

	tm.LinkOpenFaces(newTets)
	// Hull-extending insertion (v outside the old hull) absorbs one or more
	// ghosts without replacing them one-for-one; re-close whatever boundary
	// faces that left open with freshly, correctly oriented ghosts (spec 4.D).
	tm.CloseConvexHull()

	return newTets, newTets[len(newTets)-1], nil
}

// inCircumsphere reports whether p lies inside t's circumscribing sphere,
// using the spec 4.D ghost-handling rule: against a ghost tet, the test
// degenerates to an Orient3D of its three finite vertices (the infinite
// apex flattens the sphere into a half-space).
func inCircumsphere(tm *tetmesh.TetMesh, t tetmesh.Tet, p types.Vec3) bool {
	if t.IsGhost() {
		var finite [3]types.VertexID
		idx := 0
		for _, v := range t.V {
			if v.IsInfinite() {
				continue
			}
			finite[idx] = v
			idx++
		}
		return robust.Orient3D(tm.V[finite[0]], tm.V[finite[1]], tm.V[finite[2]], p) > 0
	}

	a, b, cc, d := tm.V[t.V[0]], tm.V[t.V[1]], tm.V[t.V[2]], tm.V[t.V[3]]
	return robust.InSphere(a, b, cc, d, p) > 0
}

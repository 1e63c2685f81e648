package tetmesh

import (
	"fmt"

	"github.com/zalo/CDT/predicates"
	"github.com/zalo/CDT/spatial"
	"github.com/zalo/CDT/types"
)

// faceUse records one (tet, local face index) occurrence of a face key in
// the neighbor index — at most two occurrences ever exist for a valid mesh
// (the tet on each side).
type faceUse struct {
	T     TetID
	Local int
}

// TetMesh is the flat-array tetrahedron store: a single owning arena for
// vertices and tets, growth by amortized append, deletion via a free-list
// threaded through Tet slots rather than shrinking the array.
//
// Grounded on the reference's TriSoup (cdt/adjacency.go): AddTri/RemoveTri/
// edge2tri/freeList become AddTet/RemoveTet/face2tet/freeList.
type TetMesh struct {
	V        []types.Vec3
	Tet      []Tet
	freeList []TetID
	face2tet map[types.FaceKey][]faceUse

	mergeDistance float64
	index         spatial.Index
}

// New creates an empty TetMesh seeded with the given vertex coordinates.
// mergeDistance, if positive, enables spatial-hash-grid vertex deduplication
// for every subsequent AddVertex call (used by recovery to avoid inserting
// two Steiner vertices at the same geometric point).
func New(initialVertices []types.Vec3, mergeDistance float64) *TetMesh {
	tm := &TetMesh{
		V:             append([]types.Vec3(nil), initialVertices...),
		face2tet:      make(map[types.FaceKey][]faceUse),
		mergeDistance: mergeDistance,
	}
	if mergeDistance > 0 {
		tm.index = spatial.NewHashGrid(mergeDistance)
		for i, p := range tm.V {
			tm.index.AddVertex(types.VertexID(i), p)
		}
	}
	return tm
}

// AddVertex appends a new vertex, or returns the handle of an existing
// vertex within mergeDistance, mirroring the reference's
// mesh/vertex_ops.go AddVertex hash-grid dedup.
func (tm *TetMesh) AddVertex(p types.Vec3) types.VertexID {
	if tm.index != nil {
		for _, candidate := range tm.index.FindVerticesNear(p, tm.mergeDistance) {
			if predicates.Dist2(p, tm.V[candidate]) <= tm.mergeDistance*tm.mergeDistance {
				return candidate
			}
		}
	}

	id := types.VertexID(len(tm.V))
	tm.V = append(tm.V, p)
	if tm.index != nil {
		tm.index.AddVertex(id, p)
	}
	return id
}

// AddTet inserts a new tetrahedron, reusing a free-list slot if one exists,
// and registers its four faces in the neighbor index. Neighbors are left as
// NilTet; callers wire them with SetNeighbor/SetNeighbors.
func (tm *TetMesh) AddTet(v0, v1, v2, v3 types.VertexID) TetID {
	t := Tet{V: [4]types.VertexID{v0, v1, v2, v3}, N: [4]TetID{NilTet, NilTet, NilTet, NilTet}}

	var id TetID
	if n := len(tm.freeList); n > 0 {
		id = tm.freeList[n-1]
		tm.freeList = tm.freeList[:n-1]
		tm.Tet[id] = t
	} else {
		id = TetID(len(tm.Tet))
		tm.Tet = append(tm.Tet, t)
	}

	tm.registerFaces(id)
	return id
}

// RemoveTet tombstones a tet: clears back-references on its neighbors,
// unregisters its faces, and threads the slot onto the free-list.
func (tm *TetMesh) RemoveTet(id TetID) {
	t := tm.Tet[id]
	tm.unregisterFaces(id)

	for local, n := range t.N {
		if n == NilTet {
			continue
		}
		other := &tm.Tet[n]
		for ol := range other.N {
			if other.N[ol] == id {
				other.N[ol] = NilTet
			}
		}
		_ = local
	}

	tm.Tet[id] = Tet{V: [4]types.VertexID{-1, -1, -1, -1}, N: [4]TetID{NilTet, NilTet, NilTet, NilTet}}
	tm.freeList = append(tm.freeList, id)
}

// IsDeleted reports whether id refers to a tombstoned (free-listed) slot.
func (tm *TetMesh) IsDeleted(id TetID) bool {
	return tm.Tet[id].V[0] == types.VertexID(-1) && tm.Tet[id].V[1] == types.VertexID(-1)
}

// SetNeighbor wires the neighbor across local face `local` of tet id to n,
// without touching n's own neighbor slots (see SetNeighbors for the
// symmetric variant).
func (tm *TetMesh) SetNeighbor(id TetID, local int, n TetID) {
	tm.Tet[id].N[local] = n
}

// SetNeighbors wires a and b as neighbors of each other across the face
// they share, which must be face aLocal on a and bLocal on b.
func (tm *TetMesh) SetNeighbors(a TetID, aLocal int, b TetID, bLocal int) {
	tm.Tet[a].N[aLocal] = b
	if b != NilTet {
		tm.Tet[b].N[bLocal] = a
	}
}

// FindFaceTet returns the (tet, local face index) pairs currently
// registered under key, at most two for a valid mesh.
func (tm *TetMesh) FindFaceTet(key types.FaceKey) []faceUse {
	return tm.face2tet[key]
}

func (tm *TetMesh) registerFaces(id TetID) {
	t := tm.Tet[id]
	for local := 0; local < 4; local++ {
		key := t.FaceKey(local)
		tm.face2tet[key] = append(tm.face2tet[key], faceUse{T: id, Local: local})
	}
}

func (tm *TetMesh) unregisterFaces(id TetID) {
	t := tm.Tet[id]
	for local := 0; local < 4; local++ {
		key := t.FaceKey(local)
		uses := tm.face2tet[key]
		for i, u := range uses {
			if u.T == id && u.Local == local {
				uses = append(uses[:i], uses[i+1:]...)
				break
			}
		}
		if len(uses) == 0 {
			delete(tm.face2tet, key)
		} else {
			tm.face2tet[key] = uses
		}
	}
}

// AllTets iterates every non-deleted tet, calling fn(id, tet) for each.
func (tm *TetMesh) AllTets(fn func(TetID, Tet)) {
	for i := range tm.Tet {
		id := TetID(i)
		if tm.IsDeleted(id) {
			continue
		}
		fn(id, tm.Tet[id])
	}
}

// Validate checks the structural invariants from spec section 3: finite
// tets have four distinct in-range vertices, and the neighbor relation is
// symmetric and face-consistent.
func (tm *TetMesh) Validate() error {
	var err error
	tm.AllTets(func(id TetID, t Tet) {
		if err != nil {
			return
		}
		if !t.IsGhost() {
			seen := map[types.VertexID]bool{}
			for _, v := range t.V {
				if !v.IsValid() || int(v) >= len(tm.V) {
					err = fmt.Errorf("tet %d: vertex %d out of range", id, v)
					return
				}
				if seen[v] {
					err = fmt.Errorf("tet %d: repeated vertex %d", id, v)
					return
				}
				seen[v] = true
			}
		}
		for local, n := range t.N {
			if n == NilTet {
				continue
			}
			if tm.IsDeleted(n) {
				err = fmt.Errorf("tet %d: neighbor %d across face %d is deleted", id, n, local)
				return
			}
			other := tm.Tet[n]
			found := false
			for ol, back := range other.N {
				if back == id {
					found = true
					if other.FaceKey(ol) != t.FaceKey(local) {
						err = fmt.Errorf("tet %d/%d: neighbor link face mismatch", id, n)
					}
					break
				}
			}
			if !found {
				err = fmt.Errorf("tet %d: neighbor %d does not point back", id, n)
				return
			}
		}
	})
	return err
}

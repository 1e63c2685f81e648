// Package tetmesh provides the combinatorial tetrahedron store described in
// spec section 4.C: flat vertex/tet arrays, free-list tombstoning, symmetric
// neighbor links, and ghost-tet handling for the convex hull boundary.
//
// Grounded on the reference's TriSoup (cdt/adjacency.go), generalized from
// 3-vertex/3-neighbor triangles to 4-vertex/4-neighbor tetrahedra and from
// an edge-keyed to a face-keyed neighbor index.
package tetmesh

import "github.com/zalo/CDT/types"

// TetID indexes a tetrahedron within a TetMesh's Tet array. NilTet marks an
// absent neighbor (a hull-boundary face with no ghost wired yet, or a
// tombstoned slot in the free-list).
type TetID int

// NilTet is the sentinel for "no tetrahedron".
const NilTet TetID = -1

// Mark classifies a tetrahedron as inside or outside the polyhedral region
// once region marking (spec section 4.H) completes.
type Mark byte

const (
	// Unset is the initial mark of every non-ghost tet before region
	// marking runs.
	Unset Mark = iota
	In
	Out
)

// Tet is an ordered 4-tuple of vertex handles plus four neighbor handles,
// one per face, in canonical face order (face i is opposite vertex i), plus
// a mark byte.
//
// A Tet is a ghost iff one of its four vertices is types.Infinite.
type Tet struct {
	V [4]types.VertexID
	N [4]TetID
	M Mark
}

// IsGhost reports whether t has the infinite vertex as one of its corners.
func (t Tet) IsGhost() bool {
	for _, v := range t.V {
		if v.IsInfinite() {
			return true
		}
	}
	return false
}

// Face returns the three vertex handles of the face opposite local vertex
// index i (0..3). For a positively oriented tet (robust.Orient3D(V0,V1,V2,V3)
// > 0) the winding gives Orient3D(face, V[i]) < 0, so Orient3D(face, p) > 0
// exactly for points p on the far side of the face from the tet. (The
// right-hand normal of the returned triple points toward V[i].)
func (t Tet) Face(i int) (types.VertexID, types.VertexID, types.VertexID) {
	switch i {
	case 0:
		return t.V[1], t.V[2], t.V[3]
	case 1:
		return t.V[0], t.V[3], t.V[2]
	case 2:
		return t.V[0], t.V[1], t.V[3]
	default:
		return t.V[0], t.V[2], t.V[1]
	}
}

// FaceKey returns the canonical key of the face opposite local vertex i.
func (t Tet) FaceKey(i int) types.FaceKey {
	a, b, c := t.Face(i)
	return types.NewFaceKey(a, b, c)
}

// LocalIndexOf returns the local vertex index (0..3) of v within t, or -1 if
// v is not a vertex of t.
func (t Tet) LocalIndexOf(v types.VertexID) int {
	for i, w := range t.V {
		if w == v {
			return i
		}
	}
	return -1
}

// OppositeLocalFace returns the local face index whose three vertices are
// exactly {a,b,c} (in any order), or -1 if no such face exists on t.
func (t Tet) OppositeLocalFace(a, b, c types.VertexID) int {
	key := types.NewFaceKey(a, b, c)
	for i := 0; i < 4; i++ {
		if t.FaceKey(i) == key {
			return i
		}
	}
	return -1
}

package types

import "sort"

// FaceKey canonically identifies a triangular face by its three vertex
// handles, independent of winding. Two faces with the same three vertices in
// any order compare equal once constructed via NewFaceKey.
//
// Faces are not stored directly anywhere in the tet mesh; they are always
// transient — identified as (tet, local-face-index) and canonicalized to a
// FaceKey only when used as a map key (neighbor lookup, constraint
// cross-indexing).
type FaceKey [3]VertexID

// NewFaceKey builds the canonical (sorted) key for the face (a, b, c).
func NewFaceKey(a, b, c VertexID) FaceKey {
	v := [3]VertexID{a, b, c}
	sort.Slice(v[:], func(i, j int) bool { return v[i] < v[j] })
	return FaceKey{v[0], v[1], v[2]}
}

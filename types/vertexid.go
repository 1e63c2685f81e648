package types

// VertexID is a stable integer index into a mesh's vertex array.
//
// VertexID values are assigned sequentially starting from 0 when
// vertices are added to a mesh. They remain stable for the lifetime
// of the mesh (vertices are never removed or reordered).
//
// The special value NilVertex (-1) represents an invalid or absent
// vertex reference.
//
// Example:
//
//	var v types.VertexID = 0  // First vertex
//	var invalid types.VertexID = types.NilVertex  // Invalid reference
type VertexID int

// NilVertex is a sentinel value representing an invalid or absent vertex.
const NilVertex VertexID = -1

// Infinite is the distinguished vertex handle representing the point at
// infinity used to close the convex hull via ghost tetrahedra. It is never
// a valid index into a vertex coordinate array.
const Infinite VertexID = -2

// IsValid returns true if this VertexID represents a valid, finite vertex
// reference that may be used to index a vertex coordinate array.
//
// A VertexID is valid if it is non-negative. Note that this does not
// guarantee the ID is in range for any particular mesh.
func (v VertexID) IsValid() bool {
	return v >= 0
}

// IsInfinite reports whether v is the distinguished point-at-infinity handle.
func (v VertexID) IsInfinite() bool {
	return v == Infinite
}

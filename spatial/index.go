// Package spatial provides spatial indexing over 3D vertex positions, used
// to dedup near-coincident Steiner vertices during recovery.
//
// Grounded on the reference's spatial package (spatial/index.go,
// spatial/hashgrid.go), generalized from 2D Point to 3D Vec3 cells.
package spatial

import "github.com/zalo/CDT/types"

// Index provides spatial queries for vertices.
type Index interface {
	// FindVerticesNear returns candidate vertex IDs that may lie within
	// radius of point p; the result can include farther vertices, so callers
	// filter by exact distance.
	FindVerticesNear(p types.Vec3, radius float64) []types.VertexID
	// AddVertex adds a vertex to the index.
	AddVertex(id types.VertexID, p types.Vec3)
	// Build finalizes the index structure.
	Build()
}

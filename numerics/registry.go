package numerics

import "github.com/zalo/CDT/types"

// Registry records the provenance (SteinerVertex tag) of every vertex
// handle in a tetrahedrization: input, bounding-box, or recovery-inserted.
// The cdt pipeline seeds it from the input PLC and plc.AddBoundingBox, and
// recovery records an entry for every Steiner vertex it inserts.
type Registry struct {
	byVertex map[types.VertexID]SteinerVertex
}

// NewRegistry creates an empty provenance registry.
func NewRegistry() *Registry {
	return &Registry{byVertex: make(map[types.VertexID]SteinerVertex)}
}

// Set records sv's provenance under handle v.
func (r *Registry) Set(v types.VertexID, sv SteinerVertex) {
	r.byVertex[v] = sv
}

// Get returns the recorded provenance for v, if any.
func (r *Registry) Get(v types.VertexID) (SteinerVertex, bool) {
	sv, ok := r.byVertex[v]
	return sv, ok
}

// Len reports how many vertices have recorded provenance.
func (r *Registry) Len() int {
	return len(r.byVertex)
}

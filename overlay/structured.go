// Package overlay implements the structured PLC described in spec section
// 4.E: a cross-index from every input constraint (triangle, edge) to the
// tet-mesh primitives that currently realize it. Immediately after Delaunay
// construction every constraint is unresolved; segment and face recovery
// (the recovery package) fill the child lists in as they run.
//
// Grounded on the reference's PSLG (cdt/pslg.go): Segments/Outer/Holes as
// cross-references into mesh indices becomes an unordered set of 3D
// constraint triangles, each carrying its own three constraint edges.
package overlay

import (
	"github.com/zalo/CDT/plc"
	"github.com/zalo/CDT/types"
)

// Edge is a canonical (sorted) pair of vertex handles, the overlay's key for
// an input edge shared by one or more input triangles.
type Edge struct {
	A, B types.VertexID
}

// NewEdge returns the canonical form of the edge between a and b.
func NewEdge(a, b types.VertexID) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// ConstraintEdge tracks one input edge's recovery state: the ordered chain
// of mesh vertices from A to B once recovered (§4.F "Record").
type ConstraintEdge struct {
	Edge     Edge
	Children []types.VertexID
}

// Resolved reports whether this edge has been recovered as a chain of mesh
// edges (§4.F terminates with at least the two endpoints present).
func (c *ConstraintEdge) Resolved() bool {
	return len(c.Children) >= 2
}

// ConstraintFace tracks one input triangle's recovery state: the set of
// mesh faces tiling it once recovered (§4.G "Records the child faces").
type ConstraintFace struct {
	Triangle plc.Triangle
	Children []types.FaceKey
}

// Resolved reports whether this triangle has been recovered as a tiling of
// mesh faces.
func (c *ConstraintFace) Resolved() bool {
	return len(c.Children) > 0
}

// StructuredPLC cross-indexes an input PLC's triangles and their bounding
// edges against the tet mesh being built from it.
type StructuredPLC struct {
	Edges []ConstraintEdge
	Faces []ConstraintFace

	edgeIndex map[Edge]int
}

// New derives the unique constraint edges from p's triangles (each
// triangle contributes its three bounding edges, deduplicated across
// triangles that share an edge) and seeds every constraint as unresolved.
func New(p *plc.PLC) *StructuredPLC {
	s := &StructuredPLC{
		edgeIndex: make(map[Edge]int),
	}

	for _, tri := range p.Triangles {
		s.Faces = append(s.Faces, ConstraintFace{Triangle: tri})

		edges := [3]Edge{
			NewEdge(tri[0], tri[1]),
			NewEdge(tri[1], tri[2]),
			NewEdge(tri[2], tri[0]),
		}
		for _, e := range edges {
			if _, ok := s.edgeIndex[e]; ok {
				continue
			}
			s.edgeIndex[e] = len(s.Edges)
			s.Edges = append(s.Edges, ConstraintEdge{Edge: e})
		}
	}

	return s
}

// EdgeIndex returns the index into s.Edges for e, or -1 if e is not a
// constraint edge of this complex.
func (s *StructuredPLC) EdgeIndex(e Edge) int {
	if i, ok := s.edgeIndex[e]; ok {
		return i
	}
	return -1
}

// SetEdgeChain records the recovered vertex chain for constraint edge
// index i, replacing any previous (partial) chain.
func (s *StructuredPLC) SetEdgeChain(i int, chain []types.VertexID) {
	s.Edges[i].Children = chain
}

// SetFaceChildren records the recovered set of mesh faces tiling constraint
// triangle index i.
func (s *StructuredPLC) SetFaceChildren(i int, faces []types.FaceKey) {
	s.Faces[i].Children = faces
}

// AllEdgesResolved reports whether every constraint edge has a recorded
// chain, the precondition for face recovery to begin (§4.G "After its three
// bounding edges are recovered").
func (s *StructuredPLC) AllEdgesResolved() bool {
	for _, e := range s.Edges {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// AllFacesResolved reports whether every constraint triangle has recorded
// child faces.
func (s *StructuredPLC) AllFacesResolved() bool {
	for _, f := range s.Faces {
		if !f.Resolved() {
			return false
		}
	}
	return true
}

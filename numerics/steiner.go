// Package numerics bridges the certified predicate kernel (algorithm/robust)
// to the mesh-building packages: the symbolic Steiner-vertex representation
// and the FPU scoped acquisition described in spec section 9's design notes.
package numerics

import "github.com/zalo/CDT/types"

// VertexKind tags how a vertex handle's position was derived.
type VertexKind int

const (
	// KindInput marks a vertex taken directly from the caller's input array.
	KindInput VertexKind = iota
	// KindBoundingBox marks one of the eight bounding-box corners appended
	// by plc.AddBoundingBox.
	KindBoundingBox
	// KindSegmentTriangleIntersection marks a Steiner vertex introduced by
	// segment recovery (F) or face recovery (G) at the exact intersection
	// of a segment and a triangle.
	KindSegmentTriangleIntersection
)

// SteinerVertex is the tagged variant described in spec section 9
// ("Symbolic vertices"): either an input vertex or the exact intersection
// of a segment and a triangle, each identified by the input primitives that
// define it.
//
// Scope decision (see DESIGN.md "numerics"): full symbolic/exact predicate
// evaluation against the algebraic definition of an intersection vertex is
// out of scope here. Coord is always materialized to a concrete
// double-precision position at construction time, and every predicate
// (including the exact math/big fallback tier) operates on that
// materialized position like any other vertex. The tag and originating
// primitives are retained so a future exact-rational evaluator has
// something to dispatch on; today they are descriptive only.
type SteinerVertex struct {
	Kind VertexKind

	// InputIndex is valid when Kind == KindInput or KindBoundingBox: the
	// index of this vertex in the original (possibly bounding-box-extended)
	// input array.
	InputIndex int

	// SegA, SegB identify the input edge endpoints defining the
	// intersection, valid when Kind == KindSegmentTriangleIntersection.
	SegA, SegB types.VertexID

	// TriA, TriB, TriC identify the input triangle vertices defining the
	// intersection, valid when Kind == KindSegmentTriangleIntersection.
	TriA, TriB, TriC types.VertexID

	// Coord is the materialized double-precision position used by every
	// predicate evaluation against this vertex.
	Coord types.Vec3
}

// NewInputVertex wraps an input vertex at the given array index.
func NewInputVertex(index int, coord types.Vec3) SteinerVertex {
	return SteinerVertex{Kind: KindInput, InputIndex: index, Coord: coord}
}

// NewBoundingBoxVertex wraps one of the eight bounding-box corners.
func NewBoundingBoxVertex(index int, coord types.Vec3) SteinerVertex {
	return SteinerVertex{Kind: KindBoundingBox, InputIndex: index, Coord: coord}
}

// NewIntersectionVertex wraps a Steiner vertex at the intersection of
// segment (segA,segB) and triangle (triA,triB,triC), materialized to coord.
func NewIntersectionVertex(segA, segB, triA, triB, triC types.VertexID, coord types.Vec3) SteinerVertex {
	return SteinerVertex{
		Kind:  KindSegmentTriangleIntersection,
		SegA:  segA,
		SegB:  segB,
		TriA:  triA,
		TriB:  triB,
		TriC:  triC,
		Coord: coord,
	}
}

// IsSteiner reports whether this vertex was introduced by recovery rather
// than present in the input.
func (v SteinerVertex) IsSteiner() bool {
	return v.Kind == KindSegmentTriangleIntersection
}

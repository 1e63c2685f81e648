package region

import (
	"github.com/zalo/CDT/overlay"
	"github.com/zalo/CDT/plc"
	"github.com/zalo/CDT/types"
)

// orientedEdge is a directed edge of an input triangle, used to detect
// whether the input surface is a closed, consistently-oriented 2-manifold.
type orientedEdge struct {
	from, to types.VertexID
}

// IsClosedManifold reports whether p's triangles form a closed, consistently
// oriented 2-manifold: every undirected edge must be used by exactly two
// triangles, once in each direction. This is the precondition spec 4.H
// states for MarkRegions' flood fill to be meaningful; a surface with a
// hole, a non-manifold edge (used by more than two triangles), or
// inconsistent winding fails this check and region marking is skipped,
// with the caller reporting every non-ghost tet.
//
// No direct analog exists in the reference, which only ever triangulates a
// single well-formed 2D PSLG and has no notion of "is this boundary
// closed"; this is a 3D-specific addition built in the reference's idiom
// of counting primitive incidences (cdt/classify.go's boundary-vertex
// collection counts vertex membership the same way this counts edge
// membership).
func IsClosedManifold(p *plc.PLC) bool {
	directed := make(map[orientedEdge]int)
	undirected := make(map[overlay.Edge]int)

	for _, tri := range p.Triangles {
		edges := [3][2]types.VertexID{
			{tri[0], tri[1]},
			{tri[1], tri[2]},
			{tri[2], tri[0]},
		}
		for _, e := range edges {
			directed[orientedEdge{e[0], e[1]}]++
			undirected[overlay.NewEdge(e[0], e[1])]++
		}
	}

	for _, count := range undirected {
		if count != 2 {
			return false
		}
	}
	for de, count := range directed {
		if count != 1 {
			return false
		}
		if directed[orientedEdge{de.to, de.from}] != 1 {
			return false
		}
	}
	return true
}

// Package recovery implements constraint recovery (spec sections 4.F and
// 4.G): forcing every input edge and triangle to be present in the tet
// mesh as a union of mesh primitives, inserting Steiner vertices where a
// constraint transversally crosses the current mesh.
//
// Grounded on the reference's cdt/constraint.go (forceEdge,
// findIntersectingEdges) and cdt/legalize.go, generalized from 2D edge
// flips to 3D tet-walk-and-Steiner-insertion.
package recovery

import (
	"github.com/dhconnelly/rtreego"

	"github.com/zalo/CDT/predicates"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// tetBox adapts a tet's bounding box to rtreego.Spatial so the mesh's
// finite tets can be indexed for candidate search.
type tetBox struct {
	id  tetmesh.TetID
	box types.AABB3
}

func (t *tetBox) Bounds() rtreego.Rect {
	lengths := [3]float64{
		t.box.Max.X - t.box.Min.X,
		t.box.Max.Y - t.box.Min.Y,
		t.box.Max.Z - t.box.Min.Z,
	}
	for i := range lengths {
		if lengths[i] <= 0 {
			lengths[i] = 1e-9
		}
	}
	rect, _ := rtreego.NewRect(
		rtreego.Point{t.box.Min.X, t.box.Min.Y, t.box.Min.Z},
		lengths[:],
	)
	return rect
}

// CandidateIndex accelerates "which tets might this segment/triangle cross"
// queries with an R-tree over finite-tet bounding boxes, replacing the
// reference's O(n) per-primitive scan (cdt/constraint.go's
// findIntersectingEdges walks every triangle).
type CandidateIndex struct {
	tree *rtreego.Rtree
}

// BuildCandidateIndex indexes every non-ghost tet currently in tm.
func BuildCandidateIndex(tm *tetmesh.TetMesh) *CandidateIndex {
	tree := rtreego.NewTree(3, 4, 16)
	tm.AllTets(func(id tetmesh.TetID, t tetmesh.Tet) {
		if t.IsGhost() {
			return
		}
		box := predicates.TriangleAABBBounds(tm.V[t.V[0]], tm.V[t.V[1]], tm.V[t.V[2]])
		box = box.Union(predicates.TriangleAABBBounds(tm.V[t.V[1]], tm.V[t.V[2]], tm.V[t.V[3]]))
		tree.Insert(&tetBox{id: id, box: box})
	})
	return &CandidateIndex{tree: tree}
}

// QuerySegment returns the tet IDs whose bounding box overlaps the segment
// a-b's own bounding box, a superset of the tets the segment might cross.
func (c *CandidateIndex) QuerySegment(a, b types.Vec3) []tetmesh.TetID {
	box := predicates.TriangleAABBBounds(a, b, a)
	return c.query(box)
}

// QueryTriangle returns the tet IDs whose bounding box overlaps triangle
// (a,b,c)'s bounding box.
func (c *CandidateIndex) QueryTriangle(a, b, cc types.Vec3) []tetmesh.TetID {
	box := predicates.TriangleAABBBounds(a, b, cc)
	return c.query(box)
}

func (c *CandidateIndex) query(box types.AABB3) []tetmesh.TetID {
	lengths := [3]float64{
		box.Max.X - box.Min.X,
		box.Max.Y - box.Min.Y,
		box.Max.Z - box.Min.Z,
	}
	for i := range lengths {
		if lengths[i] <= 0 {
			lengths[i] = 1e-9
		}
	}
	rect, _ := rtreego.NewRect(
		rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z},
		lengths[:],
	)

	hits := c.tree.SearchIntersect(rect)
	out := make([]tetmesh.TetID, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*tetBox).id)
	}
	return out
}

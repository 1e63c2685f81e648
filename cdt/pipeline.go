package cdt

import (
	"github.com/zalo/CDT/delaunay"
	"github.com/zalo/CDT/numerics"
	"github.com/zalo/CDT/overlay"
	"github.com/zalo/CDT/plc"
	"github.com/zalo/CDT/recovery"
	"github.com/zalo/CDT/region"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// pipeline carries the state threaded through the A→B→D→E→F→G→H stage
// sequence (spec section 2's control-flow diagram), mirroring the
// reference's Build (cdt/builder.go): one function per stage, errors
// wrapped with the stage name, a single struct threaded through instead of
// a long parameter list.
type pipeline struct {
	cfg config
	log Logger

	p   *plc.PLC
	tm  *tetmesh.TetMesh
	sp  *overlay.StructuredPLC
	reg *numerics.Registry
}

// run executes every stage in order, returning a Result for every
// category-1-through-3 failure (spec 7) and a Go error only for conditions
// spec 7 says must propagate (category 4/5 — this implementation has no
// allocation-failure path to surface and treats a detected predicate
// contradiction, were one ever raised, as the sole propagating error).
func (pl *pipeline) run(verticesFlat []float64, trianglesFlat []uint32) (Result, error) {
	p, err := plc.New(verticesFlat, trianglesFlat)
	if err != nil {
		pl.log.Logf("input rejected: %v", err)
		return failureResult(), nil
	}
	pl.p = p

	if pl.cfg.addBoundingBox {
		p.AddBoundingBox()
		pl.log.Logf("bounding box appended: %d vertices now %d", p.NumOriginalVertices, len(p.Vertices))
	}

	pl.reg = numerics.NewRegistry()
	for i, v := range p.Vertices {
		if i < p.NumOriginalVertices {
			pl.reg.Set(types.VertexID(i), numerics.NewInputVertex(i, v))
		} else {
			pl.reg.Set(types.VertexID(i), numerics.NewBoundingBoxVertex(i, v))
		}
	}

	pl.tm = tetmesh.New(p.Vertices, pl.cfg.mergeDistance)

	order := make([]types.VertexID, len(p.Vertices))
	for i := range order {
		order[i] = types.VertexID(i)
	}
	if err := delaunay.BuildDelaunay(pl.tm, order); err != nil {
		pl.log.Logf("delaunay construction failed: %v", err)
		return failureResult(), nil
	}
	pl.log.Logf("delaunay construction: %d tets", len(pl.tm.Tet))

	pl.sp = overlay.New(p)

	hint := pl.firstFiniteTet()
	for i := range pl.sp.Edges {
		newHint, err := recovery.RecoverSegment(pl.tm, pl.sp, pl.reg, i, hint)
		if err != nil {
			pl.log.Logf("segment recovery failed for edge %d: %v", i, err)
			return failureResult(), nil
		}
		hint = newHint
	}
	pl.log.Logf("segment recovery: %d/%d edges resolved", countResolvedEdges(pl.sp), len(pl.sp.Edges))

	faceSuccess := true
	for i := range pl.sp.Faces {
		ok, newHint := recovery.RecoverFace(pl.tm, pl.sp, pl.reg, i, hint)
		hint = newHint
		if !ok {
			faceSuccess = false
		}
	}
	pl.log.Logf("face recovery: %d/%d faces resolved, success=%v", countResolvedFaces(pl.sp), len(pl.sp.Faces), faceSuccess)
	if !faceSuccess {
		return failureResult(), nil
	}

	isPolyhedron := faceSuccess && region.IsClosedManifold(p)
	if isPolyhedron {
		region.MarkRegions(pl.tm, pl.sp)
	}
	pl.log.Logf("region marking: isPolyhedron=%v", isPolyhedron)

	result := pl.export(isPolyhedron, faceSuccess)
	return result, nil
}

func (pl *pipeline) firstFiniteTet() tetmesh.TetID {
	found := tetmesh.NilTet
	pl.tm.AllTets(func(id tetmesh.TetID, t tetmesh.Tet) {
		if found == tetmesh.NilTet && !t.IsGhost() {
			found = id
		}
	})
	return found
}

func countResolvedEdges(sp *overlay.StructuredPLC) int {
	n := 0
	for i := range sp.Edges {
		if sp.Edges[i].Resolved() {
			n++
		}
	}
	return n
}

func countResolvedFaces(sp *overlay.StructuredPLC) int {
	n := 0
	for i := range sp.Faces {
		if sp.Faces[i].Resolved() {
			n++
		}
	}
	return n
}

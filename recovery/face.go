package recovery

import (
	"github.com/zalo/CDT/delaunay"
	"github.com/zalo/CDT/numerics"
	"github.com/zalo/CDT/overlay"
	"github.com/zalo/CDT/predicates"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// maxFaceSteps bounds how many flip-or-Steiner-insert rounds RecoverFace
// attempts before giving up and reporting failure for this triangle (spec
// 4.G: "Face recovery may fail on extreme inputs... does not crash the
// pipeline").
const maxFaceSteps = 256

// RecoverFace attempts to tile constraint triangle sp.Faces[triIdx] with
// mesh faces (spec 4.G), assuming its three bounding edges are already
// recovered. It returns faceRecoverySuccess and an updated point-location
// hint; a false return means this triangle's interior could not be
// covered within the step budget, which the caller reports as
// success=false for the run without aborting remaining recovery.
//
// Algorithm: if the direct face (A,B,C) is already a mesh face, done.
// Otherwise repeatedly look for a mesh face whose removal by Flip23 would
// progress toward that direct face (chosen as any crossing face pair that
// passes Flip23's local-convexity test); if none qualifies, fall back to
// inserting a Steiner vertex at the triangle's intersection with a
// crossing mesh edge and re-Delaunaying locally. This opportunistic
// search is simpler than a full "pipe of tets" enumeration (which would
// track an ordered corridor of tets between the two sides of T) but
// follows the same "test locally, flip or insert Steiner, requeue"
// control flow as the reference's legalize loop (cdt/legalize.go).
func RecoverFace(tm *tetmesh.TetMesh, sp *overlay.StructuredPLC, reg *numerics.Registry, triIdx int, hint tetmesh.TetID) (bool, tetmesh.TetID) {
	tri := sp.Faces[triIdx].Triangle
	a, b, c := tri[0], tri[1], tri[2]

	if key, ok := directFace(tm, a, b, c); ok {
		sp.SetFaceChildren(triIdx, []types.FaceKey{key})
		return true, hint
	}

	curHint := hint
	for step := 0; step < maxFaceSteps; step++ {
		index := BuildCandidateIndex(tm)
		candidates := index.QueryTriangle(tm.V[a], tm.V[b], tm.V[c])

		progressed := false
		for _, tid := range candidates {
			if tm.IsDeleted(tid) {
				continue
			}
			t := tm.Tet[tid]
			if t.IsGhost() {
				continue
			}
			for local := 0; local < 4; local++ {
				n := t.N[local]
				if n == tetmesh.NilTet || tm.IsDeleted(n) || tm.Tet[n].IsGhost() {
					continue
				}
				if !faceCrossesTriangle(tm, tid, local, a, b, c) {
					continue
				}
				if _, ok := Flip23(tm, tid, n); ok {
					progressed = true
				}
				break
			}
			if progressed {
				break
			}
		}

		if key, ok := directFace(tm, a, b, c); ok {
			sp.SetFaceChildren(triIdx, []types.FaceKey{key})
			return true, curHint
		}

		if progressed {
			continue
		}

		inserted, newHint := steinerInsertOnTriangle(tm, reg, a, b, c, candidates, curHint)
		if !inserted {
			return false, curHint
		}
		curHint = newHint
	}

	return false, curHint
}

// directFace reports whether the mesh already has a face with exactly
// vertex set {a,b,c}.
func directFace(tm *tetmesh.TetMesh, a, b, c types.VertexID) (types.FaceKey, bool) {
	key := types.NewFaceKey(a, b, c)
	uses := tm.FindFaceTet(key)
	return key, len(uses) > 0
}

// faceCrossesTriangle tests whether the plane triangle spanned by the
// shared-face apexes of tet tid and its neighbor across local face
// `local` crosses constraint triangle (a,b,c): a cheap proxy for "this
// face blocks the constraint," using the apex-to-apex segment against
// the constraint triangle.
func faceCrossesTriangle(tm *tetmesh.TetMesh, tid tetmesh.TetID, local int, a, b, c types.VertexID) bool {
	t := tm.Tet[tid]
	apex1 := t.V[local]
	n := tm.Tet[t.N[local]]

	for ol := range n.N {
		if n.N[ol] == tid {
			apex2 := n.V[ol]
			hit, tParam, _ := predicates.SegmentTriangleIntersect(tm.V[apex1], tm.V[apex2], tm.V[a], tm.V[b], tm.V[c], 1e-9)
			return hit && tParam > 1e-9 && tParam < 1-1e-9
		}
	}
	return false
}

// steinerInsertOnTriangle inserts a Steiner vertex at the intersection of
// triangle (a,b,c) with the first candidate edge found crossing it, and
// re-Delaunays locally via Bowyer-Watson insertion.
func steinerInsertOnTriangle(tm *tetmesh.TetMesh, reg *numerics.Registry, a, b, c types.VertexID, candidates []tetmesh.TetID, hint tetmesh.TetID) (bool, tetmesh.TetID) {
	for _, tid := range candidates {
		if tm.IsDeleted(tid) {
			continue
		}
		t := tm.Tet[tid]
		if t.IsGhost() {
			continue
		}
		edges := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
		for _, e := range edges {
			u, v := t.V[e[0]], t.V[e[1]]
			hit, tParam, point := predicates.SegmentTriangleIntersect(tm.V[u], tm.V[v], tm.V[a], tm.V[b], tm.V[c], 1e-9)
			if !hit || tParam <= 1e-9 || tParam >= 1-1e-9 {
				continue
			}

			newID := tm.AddVertex(point)
			_, lastTet, err := delaunay.InsertVertex(tm, tid, newID)
			if err != nil {
				continue
			}
			reg.Set(newID, numerics.NewIntersectionVertex(u, v, a, b, c, point))
			return true, lastTet
		}
	}
	return false, hint
}

package recovery

import (
	"github.com/zalo/CDT/algorithm/robust"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// sharedFace returns the three vertices of the face shared by tets t1 and
// t2, and the apex of each tet opposite that shared face, or ok=false if
// t1 and t2 do not share a face.
func sharedFace(tm *tetmesh.TetMesh, t1, t2 tetmesh.TetID) (a, b, c, apex1, apex2 types.VertexID, ok bool) {
	T1 := tm.Tet[t1]
	for local := 0; local < 4; local++ {
		if T1.N[local] != t2 {
			continue
		}
		a, b, c = T1.Face(local)
		apex1 = T1.V[local]
		apex2Local := -1
		T2 := tm.Tet[t2]
		for ol := range T2.N {
			if T2.N[ol] == t1 {
				apex2Local = ol
				break
			}
		}
		if apex2Local == -1 {
			return 0, 0, 0, 0, 0, false
		}
		apex2 = T2.V[apex2Local]
		return a, b, c, apex1, apex2, true
	}
	return 0, 0, 0, 0, 0, false
}

// Flip23 replaces the two tets sharing a face (t1, t2) with three tets
// sharing the edge between their two apexes, provided the edge passes
// through the shared face's interior (the bipyramid formed by the two
// tets is locally convex). It reports ok=false, leaving the mesh
// unchanged, when the flip would produce inverted or degenerate tets.
//
// Grounded on the reference's FlipEdge (cdt/adjacency.go): same "locate
// shared primitive, test orientation of the replacement shape before
// committing, re-stitch all outer neighbors" structure, generalized from
// a 2-triangle quad flip to a 2-tet bipyramid flip.
func Flip23(tm *tetmesh.TetMesh, t1, t2 tetmesh.TetID) ([3]tetmesh.TetID, bool) {
	var out [3]tetmesh.TetID

	a, b, c, d, e, ok := sharedFace(tm, t1, t2)
	if !ok {
		return out, false
	}

	pd, pe := tm.V[d], tm.V[e]
	pa, pb, pc := tm.V[a], tm.V[b], tm.V[c]

	s1 := robust.Orient3D(pd, pe, pa, pb)
	s2 := robust.Orient3D(pd, pe, pb, pc)
	s3 := robust.Orient3D(pd, pe, pc, pa)
	if s1 == 0 || s2 == 0 || s3 == 0 || s1 != s2 || s2 != s3 {
		return out, false
	}

	tm.RemoveTet(t1)
	tm.RemoveTet(t2)

	out[0] = tm.AddOrientedTet(d, e, a, b)
	out[1] = tm.AddOrientedTet(d, e, b, c)
	out[2] = tm.AddOrientedTet(d, e, c, a)

	tm.LinkOpenFaces(out[:])
	return out, true
}

// Flip32 replaces the three tets sharing edge (d,e) with two tets sharing
// the face formed by their three distinct "ring" vertices, the inverse of
// Flip23. t1, t2, t3 must share exactly the edge (d,e) and be given in
// rotational order around it.
func Flip32(tm *tetmesh.TetMesh, d, e types.VertexID, t1, t2, t3 tetmesh.TetID) ([2]tetmesh.TetID, bool) {
	var out [2]tetmesh.TetID

	ring := make([]types.VertexID, 0, 3)
	for _, tid := range [3]tetmesh.TetID{t1, t2, t3} {
		t := tm.Tet[tid]
		if t.LocalIndexOf(d) < 0 || t.LocalIndexOf(e) < 0 {
			return out, false
		}
		for _, v := range t.V {
			if v == d || v == e {
				continue
			}
			found := false
			for _, r := range ring {
				if r == v {
					found = true
					break
				}
			}
			if !found {
				ring = append(ring, v)
			}
		}
	}
	if len(ring) != 3 {
		return out, false
	}
	a, b, c := ring[0], ring[1], ring[2]

	if robust.Orient3D(tm.V[a], tm.V[b], tm.V[c], tm.V[d]) == 0 ||
		robust.Orient3D(tm.V[a], tm.V[b], tm.V[c], tm.V[e]) == 0 {
		return out, false
	}

	tm.RemoveTet(t1)
	tm.RemoveTet(t2)
	tm.RemoveTet(t3)

	out[0] = tm.AddOrientedTet(a, b, c, d)
	out[1] = tm.AddOrientedTet(a, b, c, e)

	tm.LinkOpenFaces(out[:])
	return out, true
}

package delaunay

import (
	"errors"

	"github.com/zalo/CDT/algorithm/robust"
	"github.com/zalo/CDT/tetmesh"
	"github.com/zalo/CDT/types"
)

// ErrPointOutsideHull is returned when the walk reaches an open (NilTet)
// face with no ghost wired behind it, which should not happen once
// CloseConvexHull has run — it indicates a broken hull-closure invariant
// rather than an ordinary "point outside the hull" condition, since a
// ghost seed is now a valid Locate result (see the IsGhost branch below).
var ErrPointOutsideHull = errors.New("delaunay: point lies outside the convex hull")

// ErrLocateBudgetExceeded is returned when a walk exceeds its step budget,
// indicating a cycle that the visited-set guard could not resolve.
var ErrLocateBudgetExceeded = errors.New("delaunay: point location exceeded its step budget")

// Locator walks the tet mesh to find the tet containing a query point,
// remembering the last successful location as a hint for the next query.
//
// Grounded on the reference's Locator (cdt/locate.go): same "hint + oriented
// walk + visited guard + step budget" shape, generalized from 3
// edge-orientation tests per triangle to 4 face-orientation tests per tet.
type Locator struct {
	tm   *tetmesh.TetMesh
	last tetmesh.TetID
}

// NewLocator creates a point locator over tm, hinted to start from start.
func NewLocator(tm *tetmesh.TetMesh, start tetmesh.TetID) *Locator {
	return &Locator{tm: tm, last: start}
}

// Locate finds the tet containing p, walking from the locator's hint.
func (l *Locator) Locate(p types.Vec3) (tetmesh.TetID, error) {
	if l.last == tetmesh.NilTet || l.tm.IsDeleted(l.last) {
		return tetmesh.NilTet, errors.New("delaunay: locator has no valid starting tet")
	}

	cur := l.last
	visited := make(map[tetmesh.TetID]bool)
	maxSteps := (len(l.tm.Tet) + 4) * 2

	for step := 0; step < maxSteps; step++ {
		if l.tm.IsDeleted(cur) {
			return tetmesh.NilTet, errors.New("delaunay: walk stepped onto a deleted tet")
		}
		if visited[cur] {
			return tetmesh.NilTet, ErrLocateBudgetExceeded
		}
		visited[cur] = true

		t := l.tm.Tet[cur]
		if t.IsGhost() {
			// Ghosts always carry the infinite vertex last (CloseConvexHull's
			// construction), so V[0..2] is the real hull face in the same
			// outward winding inCircumsphere's ghost rule tests against.
			a, b, c := l.tm.V[t.V[0]], l.tm.V[t.V[1]], l.tm.V[t.V[2]]
			if robust.Orient3D(a, b, c, p) > 0 {
				// p lies beyond the hull through this face: a valid seed for
				// hull-extending Bowyer-Watson insertion (spec 4.D).
				l.last = cur
				return cur, nil
			}

			next := t.N[3]
			if next == tetmesh.NilTet {
				return tetmesh.NilTet, errors.New("delaunay: ghost tet missing its finite neighbor")
			}
			cur = next
			continue
		}

		exit := -1
		for i := 0; i < 4; i++ {
			a, b, c := t.Face(i)
			pa, pb, pc := l.tm.V[a], l.tm.V[b], l.tm.V[c]

			refSign := robust.Orient3D(pa, pb, pc, l.tm.V[t.V[i]])
			if refSign == 0 {
				continue
			}
			qSign := robust.Orient3D(pa, pb, pc, p)
			if qSign != 0 && qSign != refSign {
				exit = i
				break
			}
		}

		if exit == -1 {
			l.last = cur
			return cur, nil
		}

		next := t.N[exit]
		if next == tetmesh.NilTet {
			return tetmesh.NilTet, ErrPointOutsideHull
		}
		cur = next
	}

	return tetmesh.NilTet, ErrLocateBudgetExceeded
}

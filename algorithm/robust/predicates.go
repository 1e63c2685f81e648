// Package robust implements certified geometric predicates for 3D points:
// Orient3D and InSphere. Both evaluate a fast double-precision filter first,
// then an interval-arithmetic evaluation (interval.go) when the filter
// cannot certify the sign, and fall back to big.Float arithmetic only when
// the interval straddles zero, generalizing a 2D orientation/incircle
// predicate pair from 2x2/3x3 to 4x4/5x5 determinants.
package robust

import (
	"math"
	"math/big"

	"github.com/zalo/CDT/types"
)

const (
	orientFilter = 1e-15
)

// Orient3D returns the orientation of the tetrahedron (a,b,c,d).
//
// The return value is:
//   - +1 if d lies below the plane through a,b,c, where "above" is the side
//     the right-hand normal (b-a)x(c-a) points to (so the sign is the
//     opposite of geometry.SignedVolume6's)
//   - -1 if d lies above that plane
//   - 0 if a,b,c,d are coplanar
//
// Evaluates the determinant in float64 with an adaptive error bound first,
// falling back to arbitrary precision when the sign cannot be certified.
func Orient3D(a, b, c, d types.Vec3) int {
	ax, ay, az := a.X-d.X, a.Y-d.Y, a.Z-d.Z
	bx, by, bz := b.X-d.X, b.Y-d.Y, b.Z-d.Z
	cx, cy, cz := c.X-d.X, c.Y-d.Y, c.Z-d.Z

	det := det3(
		ax, ay, az,
		bx, by, bz,
		cx, cy, cz,
	)

	maxMag := maxAbs(ax, ay, az, bx, by, bz, cx, cy, cz)
	eps := maxMag * maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		if sign := orient3DInterval(ax, ay, az, bx, by, bz, cx, cy, cz); sign != 2 {
			return sign
		}
		return orient3DExact(a, b, c, d)
	}
}

func orient3DInterval(ax, ay, az, bx, by, bz, cx, cy, cz float64) int {
	det := det3Interval(
		exact(ax), exact(ay), exact(az),
		exact(bx), exact(by), exact(bz),
		exact(cx), exact(cy), exact(cz),
	)
	return det.sign()
}

func orient3DExact(a, b, c, d types.Vec3) int {
	ax := bigSub(a.X, d.X)
	ay := bigSub(a.Y, d.Y)
	az := bigSub(a.Z, d.Z)
	bx := bigSub(b.X, d.X)
	by := bigSub(b.Y, d.Y)
	bz := bigSub(b.Z, d.Z)
	cx := bigSub(c.X, d.X)
	cy := bigSub(c.Y, d.Y)
	cz := bigSub(c.Z, d.Z)

	det := bigDet3(
		ax, ay, az,
		bx, by, bz,
		cx, cy, cz,
	)
	return det.Sign()
}

// InSphere tests whether point e lies inside, on, or outside the
// circumscribing sphere of tetrahedron (a,b,c,d).
//
// The sign convention matches Orient3D: if (a,b,c,d) has positive
// orientation, a positive return value means e lies inside the sphere.
// Ghost tetrahedra (one vertex at infinity) never reach this predicate
// directly — callers degenerate that case to an Orient3D test themselves
// (see the delaunay package), per the spec's ghost-handling rule.
func InSphere(a, b, c, d, e types.Vec3) int {
	ax, ay, az := a.X-e.X, a.Y-e.Y, a.Z-e.Z
	bx, by, bz := b.X-e.X, b.Y-e.Y, b.Z-e.Z
	cx, cy, cz := c.X-e.X, c.Y-e.Y, c.Z-e.Z
	dx, dy, dz := d.X-e.X, d.Y-e.Y, d.Z-e.Z

	a2 := ax*ax + ay*ay + az*az
	b2 := bx*bx + by*by + bz*bz
	c2 := cx*cx + cy*cy + cz*cz
	d2 := dx*dx + dy*dy + dz*dz

	det := det4(
		ax, ay, az, a2,
		bx, by, bz, b2,
		cx, cy, cz, c2,
		dx, dy, dz, d2,
	)

	maxMag := maxAbs(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy, dz)
	eps := math.Pow(maxMag, 5) * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		if sign := inSphereInterval(ax, ay, az, a2, bx, by, bz, b2, cx, cy, cz, c2, dx, dy, dz, d2); sign != 2 {
			return sign
		}
		return inSphereExact(a, b, c, d, e)
	}
}

func inSphereInterval(
	ax, ay, az, a2,
	bx, by, bz, b2,
	cx, cy, cz, c2,
	dx, dy, dz, d2 float64,
) int {
	det := det4Interval(
		exact(ax), exact(ay), exact(az), exact(a2),
		exact(bx), exact(by), exact(bz), exact(b2),
		exact(cx), exact(cy), exact(cz), exact(c2),
		exact(dx), exact(dy), exact(dz), exact(d2),
	)
	return det.sign()
}

func inSphereExact(a, b, c, d, e types.Vec3) int {
	ax := bigSub(a.X, e.X)
	ay := bigSub(a.Y, e.Y)
	az := bigSub(a.Z, e.Z)
	bx := bigSub(b.X, e.X)
	by := bigSub(b.Y, e.Y)
	bz := bigSub(b.Z, e.Z)
	cx := bigSub(c.X, e.X)
	cy := bigSub(c.Y, e.Y)
	cz := bigSub(c.Z, e.Z)
	dx := bigSub(d.X, e.X)
	dy := bigSub(d.Y, e.Y)
	dz := bigSub(d.Z, e.Z)

	sq := func(v *big.Float) *big.Float { return bigMul(v, v) }
	sum3 := func(x, y, z *big.Float) *big.Float {
		out := bigFloat(0)
		out.Add(sq(x), sq(y))
		out.Add(out, sq(z))
		return out
	}

	a2 := sum3(ax, ay, az)
	b2 := sum3(bx, by, bz)
	c2 := sum3(cx, cy, cz)
	d2 := sum3(dx, dy, dz)

	det := bigDet4(
		ax, ay, az, a2,
		bx, by, bz, b2,
		cx, cy, cz, c2,
		dx, dy, dz, d2,
	)
	return det.Sign()
}

// --- float64 determinant helpers ---

func det3(
	a1, a2, a3,
	b1, b2, b3,
	c1, c2, c3 float64,
) float64 {
	return a1*(b2*c3-b3*c2) -
		a2*(b1*c3-b3*c1) +
		a3*(b1*c2-b2*c1)
}

// det4 expands a 4x4 determinant via cofactors along the first row, reusing
// det3 for each 3x3 minor.
func det4(
	a1, a2, a3, a4,
	b1, b2, b3, b4,
	c1, c2, c3, c4,
	d1, d2, d3, d4 float64,
) float64 {
	m1 := det3(b2, b3, b4, c2, c3, c4, d2, d3, d4)
	m2 := det3(b1, b3, b4, c1, c3, c4, d1, d3, d4)
	m3 := det3(b1, b2, b4, c1, c2, c4, d1, d2, d4)
	m4 := det3(b1, b2, b3, c1, c2, c3, d1, d2, d3)
	return a1*m1 - a2*m2 + a3*m3 - a4*m4
}

func maxAbs(values ...float64) float64 {
	m := 0.0
	for _, v := range values {
		if abs := math.Abs(v); abs > m {
			m = abs
		}
	}
	return m
}

// --- big.Float determinant helpers (exact fallback tier) ---

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(v)
}

func bigSub(u, v float64) *big.Float {
	out := bigFloat(u)
	return out.Sub(out, bigFloat(v))
}

func bigMul(a, b *big.Float) *big.Float {
	out := bigFloat(0)
	return out.Mul(a, b)
}

func bigDet3(
	a1, a2, a3,
	b1, b2, b3,
	c1, c2, c3 *big.Float,
) *big.Float {
	t1 := bigMul(a1, bigSub2(bigMul(b2, c3), bigMul(b3, c2)))
	t2 := bigMul(a2, bigSub2(bigMul(b1, c3), bigMul(b3, c1)))
	t3 := bigMul(a3, bigSub2(bigMul(b1, c2), bigMul(b2, c1)))

	out := bigFloat(0)
	out.Sub(t1, t2)
	out.Add(out, t3)
	return out
}

func bigDet4(
	a1, a2, a3, a4,
	b1, b2, b3, b4,
	c1, c2, c3, c4,
	d1, d2, d3, d4 *big.Float,
) *big.Float {
	m1 := bigDet3(b2, b3, b4, c2, c3, c4, d2, d3, d4)
	m2 := bigDet3(b1, b3, b4, c1, c3, c4, d1, d3, d4)
	m3 := bigDet3(b1, b2, b4, c1, c2, c4, d1, d2, d4)
	m4 := bigDet3(b1, b2, b3, c1, c2, c3, d1, d2, d3)

	out := bigFloat(0)
	out.Add(out, bigMul(a1, m1))
	out.Sub(out, bigMul(a2, m2))
	out.Add(out, bigMul(a3, m3))
	out.Sub(out, bigMul(a4, m4))
	return out
}

func bigSub2(a, b *big.Float) *big.Float {
	out := bigFloat(0)
	return out.Sub(a, b)
}

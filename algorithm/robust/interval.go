package robust

import "math"

// interval is a conservative enclosure [lo, hi] of a real value, tracked
// through arithmetic with directed rounding so that the true value is
// guaranteed to lie within the bounds. This is the second of the three
// evaluation tiers described in spec section 4.A: cheaper than the
// arbitrary-precision fallback, more precise than the plain float64 filter,
// used to certify signs that the fast filter's a priori bound couldn't.
type interval struct {
	lo, hi float64
}

func exact(v float64) interval { return interval{lo: v, hi: v} }

func (a interval) add(b interval) interval {
	return interval{
		lo: math.Nextafter(a.lo+b.lo, math.Inf(-1)),
		hi: math.Nextafter(a.hi+b.hi, math.Inf(1)),
	}
}

func (a interval) sub(b interval) interval {
	return interval{
		lo: math.Nextafter(a.lo-b.hi, math.Inf(-1)),
		hi: math.Nextafter(a.hi-b.lo, math.Inf(1)),
	}
}

func (a interval) mul(b interval) interval {
	candidates := [4]float64{a.lo * b.lo, a.lo * b.hi, a.hi * b.lo, a.hi * b.hi}
	lo, hi := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return interval{lo: math.Nextafter(lo, math.Inf(-1)), hi: math.Nextafter(hi, math.Inf(1))}
}

// sign returns the certified sign of the interval, or 2 if zero lies within
// the bounds and the sign cannot be certified at this precision.
func (a interval) sign() int {
	switch {
	case a.lo > 0:
		return 1
	case a.hi < 0:
		return -1
	default:
		return 2
	}
}

func det3Interval(
	a1, a2, a3,
	b1, b2, b3,
	c1, c2, c3 interval,
) interval {
	m1 := b2.mul(c3).sub(b3.mul(c2))
	m2 := b1.mul(c3).sub(b3.mul(c1))
	m3 := b1.mul(c2).sub(b2.mul(c1))
	return a1.mul(m1).sub(a2.mul(m2)).add(a3.mul(m3))
}

func det4Interval(
	a1, a2, a3, a4,
	b1, b2, b3, b4,
	c1, c2, c3, c4,
	d1, d2, d3, d4 interval,
) interval {
	m1 := det3Interval(b2, b3, b4, c2, c3, c4, d2, d3, d4)
	m2 := det3Interval(b1, b3, b4, c1, c3, c4, d1, d3, d4)
	m3 := det3Interval(b1, b2, b4, c1, c2, c4, d1, d2, d4)
	m4 := det3Interval(b1, b2, b3, c1, c2, c3, d1, d2, d3)
	return a1.mul(m1).sub(a2.mul(m2)).add(a3.mul(m3)).sub(a4.mul(m4))
}

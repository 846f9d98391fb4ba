package fraction

import "golang.org/x/exp/constraints"

// GCF returns the greatest common factor of |a| and |b|, the largest integer
// that divides both. GCF returns 1 if either a or b is zero, so dividing by
// its result is always safe.
//
// The absolute value of the minimum value of T is not representable in T,
// so GCF must not be called with it.
func GCF[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 1
	}
	_, _, d := ExtGCD(abs(a), abs(b))
	return d
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
//
// m and n should be positive. If n is zero, ExtGCD returns 1, 0, m.
func ExtGCD[T constraints.Signed](m, n T) (a, b, d T) {
	if n == 0 {
		return 1, 0, m
	}
	// Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E
	var a0, b0 T
	a0, a = 1, 0
	b0, b = 0, 1
	c := m
	d = n
	for {
		q, r := c/d, c%d
		if r == 0 {
			return a, b, d
		}
		c, d = d, r
		a0, a = a, a0-q*a
		b0, b = b, b0-q*b
	}
}

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

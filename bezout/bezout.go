package bezout

import (
	"fmt"

	"github.com/katalvlaran/lindio/numtheory"
)

// Bezout returns coefficients (s, t) such that a·s + b·t == d,
// where d must equal numtheory.GCD(a, b).
//
// Preconditions:
//   - d == gcd(a, b), otherwise ErrWrongGCD.
//
// For a = b = 0 (d = 0) the pair (0, 0) is returned.
//
// Example:
//
//	c, err := Bezout(48, 18, 6) // c = (-1, 3): 48·(-1) + 18·3 = 6
func Bezout(a, b, d int64) (Coefficients, error) {
	if g := numtheory.GCD(a, b); g != d {
		return Coefficients{}, fmt.Errorf("%w: got %d, gcd(%d, %d) = %d", ErrWrongGCD, d, a, b, g)
	}

	c, g := ExtGCD(a, b)
	if a*c.S+b*c.T != g {
		return Coefficients{}, fmt.Errorf("%w: %d·%d + %d·%d != %d", ErrIdentityViolated, a, c.S, b, c.T, g)
	}

	return c, nil
}

// ExtGCD runs the Extended Euclidean Algorithm and returns the Bézout
// coefficients of (a, b) together with g = gcd(a, b) ≥ 0.
//
// Unlike Bezout it takes no divisor to validate against.
func ExtGCD(a, b int64) (Coefficients, int64) {
	x, y := numtheory.Abs(a), numtheory.Abs(b)
	s1, s2 := int64(1), int64(0)
	t1, t2 := int64(0), int64(1)

	for y != 0 {
		q, r := x/y, x%y
		x, y = y, r
		s1, s2 = s2, s1-q*s2
		t1, t2 = t2, t1-q*t2
	}

	// x now holds the gcd; undo the absolute values taken above
	if a < 0 {
		s1 = -s1
	}
	if b < 0 {
		t1 = -t1
	}
	if x == 0 {
		// a = b = 0: any pair works, report the neutral one
		return Coefficients{}, 0
	}

	return Coefficients{S: s1, T: t1}, x
}

package bezout

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Bezout.
var (
	// ErrWrongGCD indicates that d passed to Bezout is not gcd(a, b).
	// This is a programmer error on the caller side.
	ErrWrongGCD = errors.New("bezout: d is not gcd(a, b)")

	// ErrIdentityViolated indicates that a·s + b·t != d after the computation.
	ErrIdentityViolated = errors.New("bezout: identity a·s + b·t = d does not hold")
)

// Coefficients is a Bézout pair (S, T) with a·S + b·T = gcd(a, b).
// It is only meaningful together with the (a, b) that produced it.
type Coefficients struct {
	S int64
	T int64
}

// String renders the pair as "(s, t)".
func (c Coefficients) String() string {
	return fmt.Sprintf("(%d, %d)", c.S, c.T)
}

package diophantine

import (
	"fmt"

	"github.com/katalvlaran/lindio/bezout"
	"github.com/katalvlaran/lindio/numtheory"
)

// ParticularSolution returns one solution (x0, y0) of a·x + b·y = c.
//
// Steps:
//  1. Check gcd(a, b) | c, else ErrNoIntegralSolution.
//  2. d = gcd(a, b), (s, t) = Bezout(a, b, d).
//  3. m = c / d (exact), x0 = s·m, y0 = t·m.
//
// Errors:
//   - ErrNoIntegralSolution if gcd(a, b) does not divide c.
//   - ErrDegenerateEquation if a = b = c = 0.
//   - ErrOverflow if a coefficient is math.MinInt64 or s·m, t·m overflow.
//
// Example:
//
//	p, err := ParticularSolution(NewEquation(3, 5, 1)) // p = (2, -1)
func ParticularSolution(eq Equation) (Solution, error) {
	if err := eq.validate(); err != nil {
		return Solution{}, err
	}
	if !numtheory.IsSolvable(eq.A, eq.B, eq.C) {
		return Solution{}, fmt.Errorf("%w: gcd(%d, %d) = %d does not divide %d",
			ErrNoIntegralSolution, eq.A, eq.B, numtheory.GCD(eq.A, eq.B), eq.C)
	}

	d := numtheory.GCD(eq.A, eq.B)
	if d == 0 {
		return Solution{}, ErrDegenerateEquation
	}

	c, err := bezout.Bezout(eq.A, eq.B, d)
	if err != nil {
		return Solution{}, err
	}

	m := eq.C / d
	x0, okX := numtheory.MulChecked(c.S, m)
	y0, okY := numtheory.MulChecked(c.T, m)
	if !okX || !okY {
		return Solution{}, fmt.Errorf("%w: scaling %v by %d", ErrOverflow, c, m)
	}

	sol := Solution{X: x0, Y: y0}
	if !eq.Satisfies(sol) {
		return Solution{}, fmt.Errorf("%w: %v does not solve %v", bezout.ErrIdentityViolated, sol, eq)
	}

	return sol, nil
}

// GeneralSolution returns the family of all solutions of a·x + b·y = c:
//
//	x = x0 + (b/d)·t,  y = y0 − (a/d)·t
//
// where (x0, y0) is ParticularSolution(eq) and d = gcd(a, b).
// With WithInvert() the steps are negated: x = x0 − (b/d)·t, y = y0 + (a/d)·t.
//
// Errors: those of ParticularSolution, ErrOverflow if the member at t = 1
// is not representable, and any invalid Option.
func GeneralSolution(eq Equation, opts ...Option) (Family, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Family{}, err
	}

	fam, _, err := generalSolution(eq)
	if err != nil {
		return Family{}, err
	}
	if cfg.Invert {
		return fam.Invert(), nil
	}

	return fam, nil
}

// generalSolution builds the non-inverted family and returns d alongside.
func generalSolution(eq Equation) (Family, int64, error) {
	p, err := ParticularSolution(eq)
	if err != nil {
		return Family{}, 0, err
	}

	d := numtheory.GCD(eq.A, eq.B)
	fam := Family{
		X: Line{Base: p.X, Step: eq.B / d},
		Y: Line{Base: p.Y, Step: -eq.A / d},
	}

	// the next member along the line must solve the equation as well
	next, err := fam.At(1)
	if err != nil {
		return Family{}, 0, err
	}
	if !eq.Satisfies(next) {
		return Family{}, 0, fmt.Errorf("%w: %v at t=1 does not solve %v", bezout.ErrIdentityViolated, fam, eq)
	}

	return fam, d, nil
}

// Solve runs the whole pipeline for eq: gcd, Bézout coefficients, particular
// solution, general family, its natural parameter range and, with
// WithNaturals(), the natural solutions themselves.
//
// WithInvert() applies to Result.Family and therefore to the enumeration.
// WithLimit, WithAll and WithoutShortcut are forwarded to the enumerator.
func Solve(eq Equation, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	fam, d, err := generalSolution(eq)
	if err != nil {
		return Result{}, err
	}
	if cfg.Invert {
		fam = fam.Invert()
	}

	coeffs, err := bezout.Bezout(eq.A, eq.B, d)
	if err != nil {
		return Result{}, err
	}

	r, err := ParameterRange(fam)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Equation:     eq,
		GCD:          d,
		Coefficients: coeffs,
		Particular:   Solution{X: fam.X.Base, Y: fam.Y.Base},
		Family:       fam,
		Range:        r,
	}
	if !cfg.Naturals {
		return res, nil
	}

	res.Naturals, err = NaturalSolutions(eq, fam, opts...)
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

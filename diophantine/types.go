// Package diophantine defines the value types, sentinel errors and functional
// options shared by the solver and the natural-solution enumerator.
package diophantine

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lindio/bezout"
	"github.com/katalvlaran/lindio/numtheory"
)

// DefaultLimit is the number of natural solutions produced when no WithLimit
// option is given.
const DefaultLimit = 1000

// Sentinel errors returned by the diophantine package.
var (
	// ErrNoIntegralSolution indicates that gcd(a, b) does not divide c,
	// so a·x + b·y = c has no solution in integers.
	ErrNoIntegralSolution = errors.New("diophantine: no integral solution")

	// ErrDegenerateEquation indicates a = b = 0 and c = 0: every pair is a
	// solution and there is no one-parameter family describing them.
	ErrDegenerateEquation = errors.New("diophantine: degenerate equation 0·x + 0·y = 0")

	// ErrBadLimit indicates that WithLimit received a negative value.
	ErrBadLimit = errors.New("diophantine: limit must be non-negative")

	// ErrOverflow is numtheory.ErrOverflow; a value left the int64 range.
	ErrOverflow = numtheory.ErrOverflow
)

// Equation is a·x + b·y = c.
type Equation struct {
	A int64
	B int64
	C int64
}

// NewEquation returns the equation a·x + b·y = c.
func NewEquation(a, b, c int64) Equation {
	return Equation{A: a, B: b, C: c}
}

// String renders the equation as "3x + 5y = 1".
func (e Equation) String() string {
	op, b := "+", e.B
	if b < 0 {
		op, b = "-", -b
	}

	return fmt.Sprintf("%dx %s %dy = %d", e.A, op, b, e.C)
}

// Satisfies reports whether a·s.X + b·s.Y == c holds exactly.
func (e Equation) Satisfies(s Solution) bool {
	lhs := new(big.Int).Mul(big.NewInt(e.A), big.NewInt(s.X))
	lhs.Add(lhs, new(big.Int).Mul(big.NewInt(e.B), big.NewInt(s.Y)))

	return lhs.Cmp(big.NewInt(e.C)) == 0
}

// validate rejects coefficients whose magnitude is not representable.
func (e Equation) validate() error {
	if e.A == math.MinInt64 || e.B == math.MinInt64 || e.C == math.MinInt64 {
		return fmt.Errorf("%w: coefficient math.MinInt64 in %v", ErrOverflow, e)
	}

	return nil
}

// Solution is one integer point (X, Y).
type Solution struct {
	X int64
	Y int64
}

// String renders the point as "(x, y)".
func (s Solution) String() string {
	return fmt.Sprintf("(%d, %d)", s.X, s.Y)
}

// Natural reports whether both coordinates are strictly positive.
func (s Solution) Natural() bool {
	return s.X > 0 && s.Y > 0
}

// Line is one coordinate of a general solution: Base + Step·t.
type Line struct {
	Base int64
	Step int64
}

// at returns Base + Step·t, or false on overflow.
func (l Line) at(t int64) (int64, bool) {
	p, ok := numtheory.MulChecked(l.Step, t)
	if !ok {
		return 0, false
	}

	return numtheory.AddChecked(l.Base, p)
}

// Family is the general solution x = X.Base + X.Step·t, y = Y.Base + Y.Step·t.
// Every integer t yields a solution and every solution comes from exactly one t.
type Family struct {
	X Line
	Y Line
}

// At returns the member of the family for parameter t.
//
// Errors:
//   - ErrOverflow if a coordinate does not fit in int64.
func (f Family) At(t int64) (Solution, error) {
	s, ok := f.at(t)
	if !ok {
		return Solution{}, fmt.Errorf("%w: family %v at t=%d", ErrOverflow, f, t)
	}

	return s, nil
}

func (f Family) at(t int64) (Solution, bool) {
	x, ok := f.X.at(t)
	if !ok {
		return Solution{}, false
	}
	y, ok := f.Y.at(t)
	if !ok {
		return Solution{}, false
	}

	return Solution{X: x, Y: y}, true
}

// Invert returns the same family walked in the opposite direction:
// both steps are negated, so Invert().At(t) == At(-t).
func (f Family) Invert() Family {
	return Family{
		X: Line{Base: f.X.Base, Step: -f.X.Step},
		Y: Line{Base: f.Y.Base, Step: -f.Y.Step},
	}
}

// String renders the family as "x = +2 +5t, y = -1 -3t".
func (f Family) String() string {
	return fmt.Sprintf("x = %+d %+dt, y = %+d %+dt", f.X.Base, f.X.Step, f.Y.Base, f.Y.Step)
}

// Range is the set of integer parameters t for which a Family yields natural
// solutions. A missing bound (HasLower or HasUpper false) means the range is
// unbounded on that side. Empty marks a range proven to contain no t.
type Range struct {
	Lower    int64
	Upper    int64
	HasLower bool
	HasUpper bool
	Empty    bool
}

// Finite reports whether the range is bounded on both sides.
func (r Range) Finite() bool {
	return r.HasLower && r.HasUpper
}

// String renders the range in interval notation, e.g. "[-39, -34]" or "(-∞, 0]".
func (r Range) String() string {
	if r.Empty {
		return "∅"
	}
	lo, hi := "(-∞", "+∞)"
	if r.HasLower {
		lo = fmt.Sprintf("[%d", r.Lower)
	}
	if r.HasUpper {
		hi = fmt.Sprintf("%d]", r.Upper)
	}

	return lo + ", " + hi
}

// Result gathers everything Solve computes for one equation.
type Result struct {
	Equation     Equation
	GCD          int64
	Coefficients bezout.Coefficients
	Particular   Solution
	Family       Family
	Range        Range
	// Naturals is nil unless WithNaturals was given.
	Naturals []Solution
}

// Option configures the solver and the enumerator via functional arguments.
// Invalid values are recorded and surfaced as an error by the call that
// receives them.
type Option func(*Options)

// Options holds the settings shared by GeneralSolution, Naturals and Solve.
type Options struct {
	// Invert negates the family steps so that increasing t walks the other way.
	Invert bool

	// Limit caps the number of natural solutions. Default DefaultLimit.
	Limit int

	// All walks a finite parameter range to its end, ignoring Limit.
	// Ranges unbounded on a side are always capped by Limit.
	All bool

	// Shortcut enables the a + b == c ⇒ [(1, 1)] shortcut. Default true.
	Shortcut bool

	// Naturals makes Solve enumerate natural solutions.
	Naturals bool

	err error
}

// DefaultOptions returns Options with Limit = DefaultLimit and the shortcut on.
func DefaultOptions() Options {
	return Options{
		Limit:    DefaultLimit,
		Shortcut: true,
	}
}

// WithInvert flips the direction of the general solution family.
func WithInvert() Option {
	return func(o *Options) {
		o.Invert = true
	}
}

// WithLimit caps the number of natural solutions.
//
//	n > 0:  at most n solutions
//	n == 0: no solutions, unless WithAll on a finite range
//	n < 0:  invalid → ErrBadLimit
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadLimit, n)
			return
		}
		o.Limit = n
	}
}

// WithAll enumerates every natural solution of a finite parameter range.
// The cost is proportional to the width of the range.
func WithAll() Option {
	return func(o *Options) {
		o.All = true
	}
}

// WithoutShortcut disables the a + b == c shortcut and always runs the
// bound analysis.
func WithoutShortcut() Option {
	return func(o *Options) {
		o.Shortcut = false
	}
}

// WithNaturals makes Solve enumerate natural solutions into Result.Naturals.
func WithNaturals() Option {
	return func(o *Options) {
		o.Naturals = true
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

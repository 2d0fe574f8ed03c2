package diophantine

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lindio/numtheory"
)

// ParameterRange returns the integers t for which fam.At(t) has both
// coordinates strictly positive.
//
// Each coordinate base + step·t contributes one bound:
//
//	step > 0: t ≥ ⌈(1 − base) / step⌉
//	step < 0: t ≤ ⌊(base − 1) / |step|⌋
//	step = 0: no bound if base > 0, otherwise no t at all (Empty)
//
// The result is the intersection of both coordinate ranges.
//
// Errors:
//   - ErrOverflow if a bound is not representable in int64.
func ParameterRange(fam Family) (Range, error) {
	rx, err := lineRange(fam.X)
	if err != nil {
		return Range{}, err
	}
	ry, err := lineRange(fam.Y)
	if err != nil {
		return Range{}, err
	}

	return rx.intersect(ry), nil
}

func lineRange(l Line) (Range, error) {
	switch {
	case l.Step > 0:
		n, ok := numtheory.SubChecked(1, l.Base)
		if !ok {
			return Range{}, fmt.Errorf("%w: lower bound of %+d %+dt", ErrOverflow, l.Base, l.Step)
		}
		return Range{Lower: numtheory.CeilDiv(n, l.Step), HasLower: true}, nil

	case l.Step < 0:
		n, ok := numtheory.SubChecked(l.Base, 1)
		if !ok || l.Step == math.MinInt64 {
			return Range{}, fmt.Errorf("%w: upper bound of %+d %+dt", ErrOverflow, l.Base, l.Step)
		}
		return Range{Upper: numtheory.FloorDiv(n, -l.Step), HasUpper: true}, nil

	default:
		// constant coordinate: either always positive or never
		return Range{Empty: l.Base <= 0}, nil
	}
}

func (r Range) intersect(o Range) Range {
	if r.Empty || o.Empty {
		return Range{Empty: true}
	}

	out := r
	if o.HasLower && (!out.HasLower || o.Lower > out.Lower) {
		out.Lower, out.HasLower = o.Lower, true
	}
	if o.HasUpper && (!out.HasUpper || o.Upper < out.Upper) {
		out.Upper, out.HasUpper = o.Upper, true
	}
	if out.Finite() && out.Lower > out.Upper {
		return Range{Empty: true}
	}

	return out
}

// Naturals returns a lazy sequence of (t, solution) pairs of fam whose
// coordinates are both strictly positive. fam is expected to be the general
// solution of eq; eq itself is only consulted for the a + b == c shortcut.
//
// Walk order:
//
//   - bounded below: t = Lower, Lower+1, … up to Upper (if any);
//   - bounded above only: t = Upper, Upper−1, …, i.e. increasing t along
//     fam.Invert();
//   - unbounded: t = 0, 1, ….
//
// At most Limit pairs are produced. WithAll() lifts the limit when the range
// is finite on both sides. Every candidate is checked for positivity before it
// is yielded, and a candidate that overflows int64 ends the sequence.
//
// When a + b == c and the shortcut is enabled (default), the sequence is the
// single solution (1, 1), regardless of Limit. This is exact for a, b > 0 but
// not in general: 3x − y = 2 has infinitely many natural solutions.
//
// The sequence holds no state between iterations: ranging over it again
// starts from the beginning.
//
// Errors: ErrBadLimit for a negative limit, ErrOverflow from ParameterRange.
func Naturals(eq Equation, fam Family, opts ...Option) (iter.Seq2[int64, Solution], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	if sum, ok := numtheory.AddChecked(eq.A, eq.B); cfg.Shortcut && ok && sum == eq.C {
		t := parameterOf(fam, Solution{X: 1, Y: 1})
		return func(yield func(int64, Solution) bool) {
			yield(t, Solution{X: 1, Y: 1})
		}, nil
	}

	r, err := ParameterRange(fam)
	if err != nil {
		return nil, err
	}
	if r.Empty {
		return func(func(int64, Solution) bool) {}, nil
	}

	start, step := int64(0), int64(1)
	switch {
	case r.HasLower:
		start = r.Lower
	case r.HasUpper:
		start, step = r.Upper, -1
	}
	capped := !(cfg.All && r.Finite())

	return func(yield func(int64, Solution) bool) {
		count := 0
		for t := start; ; t += step {
			if capped && count >= cfg.Limit {
				return
			}
			if (r.HasLower && t < r.Lower) || (r.HasUpper && t > r.Upper) {
				return
			}

			s, ok := fam.at(t)
			if !ok {
				return
			}
			if s.Natural() {
				count++
				if !yield(t, s) {
					return
				}
			}

			// stop before t wraps around
			if (step > 0 && t == math.MaxInt64) || (step < 0 && t == math.MinInt64) {
				return
			}
		}
	}, nil
}

// NaturalSolutions collects Naturals into a slice ordered by the walk.
// It accepts the same options and returns the same errors.
func NaturalSolutions(eq Equation, fam Family, opts ...Option) ([]Solution, error) {
	seq, err := Naturals(eq, fam, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Solution, 0)
	for _, s := range seq {
		out = append(out, s)
	}

	return out, nil
}

// parameterOf returns the t with fam.At(t) == s, or 0 when s is not on fam.
func parameterOf(fam Family, s Solution) int64 {
	for _, c := range []struct {
		l Line
		v int64
	}{{fam.X, s.X}, {fam.Y, s.Y}} {
		if c.l.Step == 0 {
			continue
		}
		n, ok := numtheory.SubChecked(c.v, c.l.Base)
		if !ok || n%c.l.Step != 0 {
			continue
		}
		t := n / c.l.Step
		if got, ok := fam.at(t); ok && got == s {
			return t
		}
	}

	return 0
}

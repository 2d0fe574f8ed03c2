// Package diophantine solves linear Diophantine equations in two unknowns,
//
//	a·x + b·y = c,   a, b, c ∈ ℤ
//
// and enumerates their natural (strictly positive) solutions.
//
// 🚀 What does it compute?
//
//	• ParticularSolution – one integer pair (x0, y0), via Bézout coefficients
//	• GeneralSolution    – the family x = x0 + (b/d)·t, y = y0 − (a/d)·t
//	• ParameterRange     – the interval of t where both coordinates are > 0
//	• Naturals           – a lazy iter.Seq2 over (t, (x, y)) in that interval
//	• NaturalSolutions   – the same, collected into a slice
//	• Solve              – all of the above in one call
//
// Theory in brief:
//
//	A solution exists iff d = gcd(a, b) divides c. With Bézout coefficients
//	a·s + b·t = d, the pair (s·c/d, t·c/d) is a solution, and adding any
//	multiple of (b/d, −a/d) keeps it one. Natural solutions are those members
//	whose parameter lies in the intersection of the half-lines where x > 0
//	and y > 0.
//
// ⚙️ Usage:
//
//	eq := diophantine.NewEquation(3, 5, 100)
//	fam, err := diophantine.GeneralSolution(eq)
//	if err != nil {
//	    // errors.Is(err, diophantine.ErrNoIntegralSolution) when gcd ∤ c
//	}
//	sols, _ := diophantine.NaturalSolutions(eq, fam, diophantine.WithAll())
//	// [(5, 17) (10, 14) (15, 11) (20, 8) (25, 5) (30, 2)]
//
// Options:
//
//	– WithInvert():      negate the family steps (walk the line the other way).
//	– WithLimit(n):      cap the number of natural solutions (default 1000).
//	– WithAll():         walk a finite range to its end regardless of the limit.
//	– WithoutShortcut(): disable the a + b == c ⇒ [(1, 1)] shortcut.
//	– WithNaturals():    make Solve enumerate natural solutions.
//
// Errors (sentinel):
//
//   - ErrNoIntegralSolution – gcd(a, b) does not divide c.
//   - ErrDegenerateEquation – a = b = c = 0; every pair solves it.
//   - ErrBadLimit           – negative limit.
//   - ErrOverflow           – a value does not fit in int64.
//
// Enumeration cost is proportional to the number of parameters walked. Ranges
// unbounded on one side are always capped by the limit; WithAll on a wide
// finite range costs as much as the range is wide. There is no cancellation:
// consumers of Naturals can stop early by breaking out of the range loop.
//
// All functions are pure and safe for concurrent use.
package diophantine

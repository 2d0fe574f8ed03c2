// Package numtheory provides the integer primitives the rest of the module is
// built on: greatest common divisors, the solvability test for a·x + b·y = c,
// and floor/ceil division and overflow-checked arithmetic on int64.
//
// 🚀 What is inside?
//
//	• GCD(a, b)           – Euclid's algorithm, always non-negative, GCD(0, 0) = 0
//	• GCDMany(values...)  – fold of GCD over a list, stops early once it hits 1
//	• LCM(a, b)           – least common multiple, overflow-checked
//	• IsSolvable(a, b, c) – gcd(a, b) | c, with a = b = 0 handled explicitly
//	• FloorDiv / CeilDiv  – rounding division for signed operands
//	• AddChecked / SubChecked / MulChecked – int64 arithmetic reporting overflow
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lindio/numtheory"
//
//	d := numtheory.GCD(48, 18)                 // 6
//	g, err := numtheory.GCDMany(12, 18, 24)    // 6, nil
//	ok := numtheory.IsSolvable(2, 4, 7)        // false: 2 does not divide 7
//
// Errors (sentinel):
//
//   - ErrEmptyInput – GCDMany called without values.
//   - ErrOverflow   – a result does not fit in int64.
//
// Complexity:
//
//   - GCD:     O(log min(|a|, |b|))
//   - GCDMany: O(n · log M) where M is the largest magnitude
//
// All functions are pure and safe for concurrent use.
package numtheory

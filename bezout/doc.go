// Package bezout computes Bézout coefficients with the Extended Euclidean
// Algorithm.
//
// For integers a, b with d = gcd(a, b), Bézout's identity guarantees integers
// s and t such that
//
//	a·s + b·t = d
//
// Algorithm outline:
//  1. Run Euclid on (|a|, |b|), carrying the coefficient pairs (s1, s2) and
//     (t1, t2), starting from (1, 0) and (0, 1).
//  2. At each step q, r = divmod(x, y):
//     (s1, s2) ← (s2, s1 − q·s2)
//     (t1, t2) ← (t2, t1 − q·t2)
//  3. When the remainder reaches zero, |a|·s1 + |b|·t1 = d.
//  4. The loop ran on magnitudes, so s1 is negated when a < 0 and t1 when
//     b < 0; the identity then holds for the signed inputs.
//
// Errors (sentinel):
//
//   - ErrWrongGCD         – the caller-supplied d is not gcd(a, b).
//   - ErrIdentityViolated – the computed pair does not satisfy the identity.
//     Never expected; returned instead of a silent wrong answer.
//
// Complexity: O(log min(|a|, |b|)) time, O(1) memory.
package bezout

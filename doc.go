// Package lindio is a small, dependency-light toolkit for linear Diophantine
// equations in two unknowns, a·x + b·y = c.
//
// 🚀 What is lindio?
//
//	A pure-Go library, plus a CLI, that brings together:
//		• Number theory: gcd, gcd of many, lcm, solvability, checked int64 arithmetic
//		• Bézout: Extended Euclidean Algorithm with sign correction
//		• Solver: particular solution and the general solution family
//		• Natural solutions: parameter-range analysis and a lazy enumerator
//
// ✨ Why choose lindio?
//
//   - Typed errors instead of process exits (errors.Is friendly sentinels)
//   - Exact int64 arithmetic: overflow is reported, never wrapped silently
//   - Lazy iter.Seq2 enumeration for infinite solution sets
//   - Pure functions, no shared state, safe for concurrent use
//
// Under the hood, everything is organized under three subpackages:
//
//	numtheory/    gcd, lcm, solvability, floor/ceil division, checked arithmetic
//	bezout/       Bézout coefficients via the Extended Euclidean Algorithm
//	diophantine/  particular & general solutions, natural-solution enumeration
//
// and one command:
//
//	cmd/diophantine  solve, gcd, batch (YAML) and version subcommands
//
// Quick example, 3x + 5y = 100:
//
//	x = +200 +5t, y = -100 -3t,  t ∈ [-39, -34]
//	(5, 17) (10, 14) (15, 11) (20, 8) (25, 5) (30, 2)
//
//	go get github.com/katalvlaran/lindio
package lindio

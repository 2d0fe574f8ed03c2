// Package diophantine_test provides runnable examples for the solver and the
// natural-solution enumerator.
package diophantine_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lindio/diophantine"
)

// ExampleGeneralSolution prints the family of 3x + 5y = 1 and one member.
func ExampleGeneralSolution() {
	eq := diophantine.NewEquation(3, 5, 1)
	fam, err := diophantine.GeneralSolution(eq)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ := fam.At(1)
	fmt.Println(fam)
	fmt.Println(s, eq.Satisfies(s))
	// Output:
	// x = +2 +5t, y = -1 -3t
	// (7, -4) true
}

// ExampleParticularSolution shows the typed failure for an unsolvable equation.
func ExampleParticularSolution() {
	_, err := diophantine.ParticularSolution(diophantine.NewEquation(2, 4, 7))
	fmt.Println(errors.Is(err, diophantine.ErrNoIntegralSolution))
	fmt.Println(err)
	// Output:
	// true
	// diophantine: no integral solution: gcd(2, 4) = 2 does not divide 7
}

// ExampleNaturalSolutions lists every positive pair of 3x + 5y = 100.
func ExampleNaturalSolutions() {
	eq := diophantine.NewEquation(3, 5, 100)
	fam, err := diophantine.GeneralSolution(eq)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sols, err := diophantine.NaturalSolutions(eq, fam, diophantine.WithAll())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sols)
	// Output: [(5, 17) (10, 14) (15, 11) (20, 8) (25, 5) (30, 2)]
}

// ExampleNaturals consumes the lazy sequence of 3x − 5y = 1, which has
// infinitely many natural solutions, and stops after three.
func ExampleNaturals() {
	eq := diophantine.NewEquation(3, -5, 1)
	fam, _ := diophantine.GeneralSolution(eq, diophantine.WithInvert())
	seq, err := diophantine.Naturals(eq, fam)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n := 0
	for t, s := range seq {
		fmt.Println(t, s)
		n++
		if n == 3 {
			break
		}
	}
	// Output:
	// 0 (2, 1)
	// 1 (7, 4)
	// 2 (12, 7)
}

// ExampleSolve runs the whole pipeline at once.
func ExampleSolve() {
	res, err := diophantine.Solve(diophantine.NewEquation(1, 1, 2), diophantine.WithNaturals())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Equation, "|", res.Family, "|", res.Naturals)
	// Output: 1x + 1y = 2 | x = +0 +1t, y = +2 -1t | [(1, 1)]
}

package bezout_test

import (
	"fmt"

	"github.com/katalvlaran/lindio/bezout"
	"github.com/katalvlaran/lindio/numtheory"
)

// ExampleBezout finds s, t with 48·s + 18·t = 6.
func ExampleBezout() {
	d := numtheory.GCD(48, 18)
	c, err := bezout.Bezout(48, 18, d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("48·%d + 18·%d = %d\n", c.S, c.T, 48*c.S+18*c.T)
	// Output: 48·-1 + 18·3 = 6
}

// ExampleExtGCD returns the gcd along with the coefficients.
func ExampleExtGCD() {
	c, g := bezout.ExtGCD(3, -5)
	fmt.Println(c, g)
	// Output: (2, 1) 1
}

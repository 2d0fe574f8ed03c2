package bezout_test

import (
	"testing"

	"github.com/katalvlaran/lindio/bezout"
)

// BenchmarkExtGCD_Fibonacci uses consecutive Fibonacci numbers, which
// maximise the number of division steps.
func BenchmarkExtGCD_Fibonacci(b *testing.B) {
	const x, y = 2971215073, 1836311903 // F(47), F(46)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bezout.ExtGCD(x, y)
	}
}

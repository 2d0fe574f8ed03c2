package numtheory

import "math"

// Abs returns |x|. Abs(math.MinInt64) wraps to math.MinInt64.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// FloorDiv returns ⌊n/d⌋ for d != 0, rounding toward negative infinity
// (Go's / truncates toward zero).
func FloorDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}

	return q
}

// CeilDiv returns ⌈n/d⌉ for d != 0, rounding toward positive infinity.
func CeilDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && (n < 0) == (d < 0) {
		q++
	}

	return q
}

// AddChecked returns a+b and false if the sum overflows int64.
func AddChecked(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}

// SubChecked returns a-b and false if the difference overflows int64.
func SubChecked(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}

	return a - b, true
}

// MulChecked returns a·b and false if the product overflows int64.
func MulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}

	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

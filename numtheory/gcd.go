package numtheory

import "fmt"

// GCD returns the greatest common divisor of a and b.
//
// The result is never negative: signs of the inputs are ignored.
// GCD(a, 0) == |a| and GCD(0, 0) == 0.
//
// Note: |math.MinInt64| is not representable, so GCD(math.MinInt64, 0)
// and GCD(math.MinInt64, math.MinInt64) wrap to math.MinInt64.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return Abs(a)
}

// GCDMany returns the greatest common divisor of all values.
//
// The running divisor is seeded with |values[0]| and folded with GCD over the
// rest. As soon as it reaches 1 the remaining values cannot change it, so the
// fold stops early.
//
// Errors:
//   - ErrEmptyInput if no values are given.
func GCDMany(values ...int64) (int64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	result := Abs(values[0])
	for _, v := range values[1:] {
		result = GCD(result, v)
		if result == 1 {
			return 1, nil
		}
	}

	return result, nil
}

// LCM returns the least common multiple of a and b, always non-negative.
// LCM(a, 0) == LCM(0, b) == 0.
//
// Errors:
//   - ErrOverflow if |a·b| / gcd(a, b) does not fit in int64.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	// divide first so the product stays as small as possible
	q := Abs(a) / GCD(a, b)
	l, ok := MulChecked(q, Abs(b))
	if !ok || l < 0 {
		return 0, fmt.Errorf("%w: lcm(%d, %d)", ErrOverflow, a, b)
	}

	return l, nil
}

// IsSolvable reports whether a·x + b·y = c has an integral solution,
// i.e. whether gcd(a, b) divides c.
//
// For a = b = 0 the gcd is zero and the equation reads 0 = c, which holds
// only for c == 0; that case is answered without dividing.
func IsSolvable(a, b, c int64) bool {
	d := GCD(a, b)
	if d == 0 {
		return c == 0
	}

	return c%d == 0
}

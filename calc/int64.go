package calc

import "github.com/genkinhq/genkin"

// Int64 is a [genkin.Calculator] over native int64 values. Arithmetic is
// exact within the int64 range; overflow is not detected. Amounts beyond
// roughly 92 quadrillion minor units belong on [BigInt] or [BigDecimal].
type Int64 struct{}

var _ genkin.Calculator[int64] = Int64{}

// Zero returns 0.
func (Int64) Zero() int64 { return 0 }

// Add returns x + y.
func (Int64) Add(x, y int64) int64 { return x + y }

// Sub returns x - y.
func (Int64) Sub(x, y int64) int64 { return x - y }

// Mul returns x * y.
func (Int64) Mul(x, y int64) int64 { return x * y }

// IntDiv returns x / y rounded toward negative infinity, so
// IntDiv(-7, 2) = -4.
func (Int64) IntDiv(x, y int64) (int64, error) {
	if y == 0 {
		return 0, genkin.ErrDivisionByZero
	}
	q := x / y
	if r := x % y; r != 0 && (r < 0) != (y < 0) {
		q--
	}
	return q, nil
}

// Mod returns the remainder of the floored division of x by y. The result
// carries the sign of the divisor.
func (Int64) Mod(x, y int64) (int64, error) {
	if y == 0 {
		return 0, genkin.ErrDivisionByZero
	}
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r, nil
}

// Pow returns base raised to a non-negative exponent by binary
// exponentiation.
func (Int64) Pow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, genkin.ErrNegativeExponent
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		if exp > 0 {
			base *= base
		}
	}
	return result, nil
}

// Inc returns x + 1.
func (Int64) Inc(x int64) int64 { return x + 1 }

// Dec returns x - 1.
func (Int64) Dec(x int64) int64 { return x - 1 }

// Cmp returns -1 if x < y, 0 if x = y, and +1 if x > y.
func (Int64) Cmp(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

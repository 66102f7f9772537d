package genkin

import "math/bits"

// Calculator abstracts the arithmetic primitives required to operate on
// minor units of type T. Implementations must be stateless, pure, and
// side-effect-free; the calc subpackage provides calculators for int64,
// *big.Int, govalues and shopspring decimals, and float64.
//
// IntDiv and Mod implement floored division: the quotient is rounded
// toward negative infinity and the remainder carries the sign of the
// divisor, so IntDiv(-7, 2) = -4 and Mod(-7, 2) = 1. Both fail with
// [ErrDivisionByZero] when the divisor is zero. Pow fails with
// [ErrNegativeExponent] when the exponent is negative; arbitrary-precision
// implementations use binary exponentiation.
type Calculator[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// Add returns x + y.
	Add(x, y T) T
	// Sub returns x - y.
	Sub(x, y T) T
	// Mul returns x * y.
	Mul(x, y T) T
	// IntDiv returns x / y rounded toward negative infinity.
	IntDiv(x, y T) (T, error)
	// Mod returns the remainder of the floored division of x by y.
	Mod(x, y T) (T, error)
	// Pow returns base raised to a non-negative integer exponent.
	Pow(base, exp T) (T, error)
	// Inc returns x + 1.
	Inc(x T) T
	// Dec returns x - 1.
	Dec(x T) T
	// Cmp returns -1 if x < y, 0 if x = y, and +1 if x > y.
	Cmp(x, y T) int
}

// finiteChecker is an optional capability for calculators whose numeric
// type admits non-finite states (NaN, infinities). The engine probes for
// it at construction and division boundaries.
type finiteChecker[T any] interface {
	IsFinite(x T) bool
}

// isFinite reports whether x is a usable numeric value under c.
// Calculators without non-finite states implicitly report true.
func isFinite[T any](c Calculator[T], x T) bool {
	if f, ok := c.(finiteChecker[T]); ok {
		return f.IsFinite(x)
	}
	return true
}

// number converts a small machine integer to T using binary doubling,
// touching only the Calculator primitives.
func number[T any](c Calculator[T], n int64) T {
	neg := n < 0
	if neg {
		n = -n
	}
	x := c.Zero()
	for i := bits.Len64(uint64(n)) - 1; i >= 0; i-- {
		x = c.Add(x, x)
		if n&(1<<uint(i)) != 0 {
			x = c.Inc(x)
		}
	}
	if neg {
		x = c.Sub(c.Zero(), x)
	}
	return x
}

// scaleFactor returns base^exp as a T. Both arguments must be
// non-negative; the callers only ever pass validated scales, so a
// violation is a programming error and panics.
func scaleFactor[T any](c Calculator[T], base, exp int) T {
	f, err := c.Pow(number(c, int64(base)), number(c, int64(exp)))
	if err != nil {
		panic("genkin: scaleFactor: " + err.Error())
	}
	return f
}

// isEven reports whether x is an even integer.
func isEven[T any](c Calculator[T], x T) bool {
	two := number(c, 2)
	r, err := c.Mod(x, two)
	if err != nil {
		return false
	}
	return c.Cmp(r, c.Zero()) == 0
}

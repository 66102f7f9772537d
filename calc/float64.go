package calc

import (
	"math"

	"github.com/genkinhq/genkin"
)

// Float64 is a [genkin.Calculator] over native float64 values. It exists
// for compatibility with float-based callers and is explicitly exempt from
// the exactness guarantees of the other calculators: results are subject
// to binary floating-point error. Precision-critical computation belongs
// on the integer or decimal calculators.
//
// Float64 reports NaN and infinities as non-finite, which the engine
// rejects at construction and division boundaries.
type Float64 struct{}

var _ genkin.Calculator[float64] = Float64{}

// Zero returns 0.
func (Float64) Zero() float64 { return 0 }

// Add returns x + y.
func (Float64) Add(x, y float64) float64 { return x + y }

// Sub returns x - y.
func (Float64) Sub(x, y float64) float64 { return x - y }

// Mul returns x * y.
func (Float64) Mul(x, y float64) float64 { return x * y }

// IntDiv returns x / y rounded toward negative infinity.
func (Float64) IntDiv(x, y float64) (float64, error) {
	if y == 0 {
		return 0, genkin.ErrDivisionByZero
	}
	return math.Floor(x / y), nil
}

// Mod returns the remainder of the floored division of x by y. The result
// carries the sign of the divisor.
func (Float64) Mod(x, y float64) (float64, error) {
	if y == 0 {
		return 0, genkin.ErrDivisionByZero
	}
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r, nil
}

// Pow returns base raised to a non-negative exponent.
func (Float64) Pow(base, exp float64) (float64, error) {
	if exp < 0 {
		return 0, genkin.ErrNegativeExponent
	}
	return math.Pow(base, exp), nil
}

// Inc returns x + 1.
func (Float64) Inc(x float64) float64 { return x + 1 }

// Dec returns x - 1.
func (Float64) Dec(x float64) float64 { return x - 1 }

// Cmp returns -1 if x < y, 0 if x = y, and +1 if x > y.
func (Float64) Cmp(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// IsFinite reports whether x is neither NaN nor an infinity.
func (Float64) IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

package calc

import (
	"fmt"

	sdecimal "github.com/shopspring/decimal"

	"github.com/genkinhq/genkin"
)

// BigDecimal is a [genkin.Calculator] over
// [github.com/shopspring/decimal] values: decimals with an
// arbitrary-precision coefficient. All operations are exact.
type BigDecimal struct{}

var _ genkin.Calculator[sdecimal.Decimal] = BigDecimal{}

var sdecOne = sdecimal.NewFromInt(1)

// Zero returns 0.
func (BigDecimal) Zero() sdecimal.Decimal { return sdecimal.Decimal{} }

// Add returns x + y.
func (BigDecimal) Add(x, y sdecimal.Decimal) sdecimal.Decimal { return x.Add(y) }

// Sub returns x - y.
func (BigDecimal) Sub(x, y sdecimal.Decimal) sdecimal.Decimal { return x.Sub(y) }

// Mul returns x * y.
func (BigDecimal) Mul(x, y sdecimal.Decimal) sdecimal.Decimal { return x.Mul(y) }

// IntDiv returns x / y rounded toward negative infinity.
func (BigDecimal) IntDiv(x, y sdecimal.Decimal) (sdecimal.Decimal, error) {
	if y.IsZero() {
		return sdecimal.Decimal{}, genkin.ErrDivisionByZero
	}
	q, r := x.QuoRem(y, 0)
	if !r.IsZero() && (r.Sign() < 0) != (y.Sign() < 0) {
		q = q.Sub(sdecOne)
	}
	return q, nil
}

// Mod returns the remainder of the floored division of x by y. The result
// carries the sign of the divisor.
func (BigDecimal) Mod(x, y sdecimal.Decimal) (sdecimal.Decimal, error) {
	if y.IsZero() {
		return sdecimal.Decimal{}, genkin.ErrDivisionByZero
	}
	_, r := x.QuoRem(y, 0)
	if !r.IsZero() && (r.Sign() < 0) != (y.Sign() < 0) {
		r = r.Add(y)
	}
	return r, nil
}

// Pow returns base raised to a non-negative integer exponent by repeated
// squaring over exact multiplication.
func (BigDecimal) Pow(base, exp sdecimal.Decimal) (sdecimal.Decimal, error) {
	if exp.Sign() < 0 {
		return sdecimal.Decimal{}, genkin.ErrNegativeExponent
	}
	if !exp.IsInteger() {
		return sdecimal.Decimal{}, fmt.Errorf("%w: exponent must be an integer, got %v", genkin.ErrInvalidInput, exp)
	}
	n := exp.IntPart()
	result := sdecOne
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result, nil
}

// Inc returns x + 1.
func (BigDecimal) Inc(x sdecimal.Decimal) sdecimal.Decimal { return x.Add(sdecOne) }

// Dec returns x - 1.
func (BigDecimal) Dec(x sdecimal.Decimal) sdecimal.Decimal { return x.Sub(sdecOne) }

// Cmp returns -1 if x < y, 0 if x = y, and +1 if x > y.
func (BigDecimal) Cmp(x, y sdecimal.Decimal) int { return x.Cmp(y) }

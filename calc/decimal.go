package calc

import (
	"fmt"

	gdecimal "github.com/govalues/decimal"

	"github.com/genkinhq/genkin"
)

// Decimal is a [genkin.Calculator] over [github.com/govalues/decimal]
// values: exact decimals with a 19-digit coefficient. Add, Sub, and Mul
// panic on coefficient overflow rather than returning a corrupted value;
// amounts near that range belong on [BigInt] or [BigDecimal].
type Decimal struct{}

var _ genkin.Calculator[gdecimal.Decimal] = Decimal{}

var gdecOne = gdecimal.MustNew(1, 0)

// Zero returns 0.
func (Decimal) Zero() gdecimal.Decimal { return gdecimal.Decimal{} }

// Add returns x + y.
func (Decimal) Add(x, y gdecimal.Decimal) gdecimal.Decimal {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("computing [%v + %v]: %v", x, y, err))
	}
	return z
}

// Sub returns x - y.
func (Decimal) Sub(x, y gdecimal.Decimal) gdecimal.Decimal {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("computing [%v - %v]: %v", x, y, err))
	}
	return z
}

// Mul returns x * y.
func (Decimal) Mul(x, y gdecimal.Decimal) gdecimal.Decimal {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("computing [%v * %v]: %v", x, y, err))
	}
	return z
}

// IntDiv returns x / y rounded toward negative infinity.
func (Decimal) IntDiv(x, y gdecimal.Decimal) (gdecimal.Decimal, error) {
	if y.IsZero() {
		return gdecimal.Decimal{}, genkin.ErrDivisionByZero
	}
	q, r, err := x.QuoRem(y)
	if err != nil {
		return gdecimal.Decimal{}, err
	}
	if !r.IsZero() && r.IsNeg() != y.IsNeg() {
		q, err = q.Sub(gdecOne)
		if err != nil {
			return gdecimal.Decimal{}, err
		}
	}
	return q, nil
}

// Mod returns the remainder of the floored division of x by y. The result
// carries the sign of the divisor.
func (Decimal) Mod(x, y gdecimal.Decimal) (gdecimal.Decimal, error) {
	if y.IsZero() {
		return gdecimal.Decimal{}, genkin.ErrDivisionByZero
	}
	_, r, err := x.QuoRem(y)
	if err != nil {
		return gdecimal.Decimal{}, err
	}
	if !r.IsZero() && r.IsNeg() != y.IsNeg() {
		r, err = r.Add(y)
		if err != nil {
			return gdecimal.Decimal{}, err
		}
	}
	return r, nil
}

// Pow returns base raised to a non-negative integer exponent.
func (Decimal) Pow(base, exp gdecimal.Decimal) (gdecimal.Decimal, error) {
	if exp.IsNeg() {
		return gdecimal.Decimal{}, genkin.ErrNegativeExponent
	}
	if !exp.IsInt() {
		return gdecimal.Decimal{}, fmt.Errorf("%w: exponent must be an integer, got %v", genkin.ErrInvalidInput, exp)
	}
	whole, _, ok := exp.Int64(0)
	if !ok {
		return gdecimal.Decimal{}, fmt.Errorf("%w: exponent %v out of range", genkin.ErrInvalidInput, exp)
	}
	return base.Pow(int(whole))
}

// Inc returns x + 1.
func (d Decimal) Inc(x gdecimal.Decimal) gdecimal.Decimal { return d.Add(x, gdecOne) }

// Dec returns x - 1.
func (d Decimal) Dec(x gdecimal.Decimal) gdecimal.Decimal { return d.Sub(x, gdecOne) }

// Cmp returns -1 if x < y, 0 if x = y, and +1 if x > y. Values of
// different internal scale compare numerically.
func (Decimal) Cmp(x, y gdecimal.Decimal) int { return x.Cmp(y) }

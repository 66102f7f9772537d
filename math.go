package genkin

import "fmt"

// rescaleUpTo returns a copy of a at a larger scale. Increasing the scale
// multiplies the minor units by a power of the currency base and is exact.
func (a Amount[T]) rescaleUpTo(scale int) Amount[T] {
	if scale <= a.scale {
		return a
	}
	f := scaleFactor(a.calc, a.curr.Base, scale-a.scale)
	return a.deriving(a.calc.Mul(a.units, f), scale)
}

// align brings both operands to their common (maximum) scale and returns
// the rescaled minor units. At least one operand is unchanged and the
// other only ever scales up, so alignment never loses precision.
func (a Amount[T]) align(b Amount[T]) (x, y T, scale int) {
	scale = max(a.scale, b.scale)
	return a.rescaleUpTo(scale).units, b.rescaleUpTo(scale).units, scale
}

func (a Amount[T]) mismatch(b Amount[T]) error {
	return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, a.curr.Code, b.curr.Code)
}

// Add returns the sum of amounts a and b at their common scale.
// The result carries a's rounding mode (no rounding takes place).
//
// Add returns an error if the amounts are denominated in different
// currencies.
func (a Amount[T]) Add(b Amount[T]) (Amount[T], error) {
	if !a.SameCurr(b) {
		return Amount[T]{}, fmt.Errorf("computing [%v + %v]: %w", a, b, a.mismatch(b))
	}
	x, y, scale := a.align(b)
	return a.deriving(a.calc.Add(x, y), scale), nil
}

// Sub returns the difference between amounts a and b at their common scale.
//
// Sub returns an error if the amounts are denominated in different
// currencies.
func (a Amount[T]) Sub(b Amount[T]) (Amount[T], error) {
	if !a.SameCurr(b) {
		return Amount[T]{}, fmt.Errorf("computing [%v - %v]: %w", a, b, a.mismatch(b))
	}
	x, y, scale := a.align(b)
	return a.deriving(a.calc.Sub(x, y), scale), nil
}

// Mul returns the product of amount a and an integer-valued factor. The
// scale is preserved and the result is exact; factors carrying fractional
// digits belong in [Amount.MulScaled].
func (a Amount[T]) Mul(factor T) Amount[T] {
	return a.deriving(a.calc.Mul(a.units, factor), a.scale)
}

// MulScaled returns the product of amount a and a factor carrying its own
// scale. The result scale is the sum of both scales, so multiplying a
// scale-2 amount by Scaled{150, 2} (1.50) yields an exact scale-4 amount.
func (a Amount[T]) MulScaled(factor Scaled[T]) (Amount[T], error) {
	if factor.Scale < 0 {
		return Amount[T]{}, fmt.Errorf("computing [%v * %v]: %w: factor scale must not be negative", a, factor.Value, ErrInvalidInput)
	}
	return a.deriving(a.calc.Mul(a.units, factor.Value), a.scale+factor.Scale), nil
}

// Div returns amount a integer-divided by the divisor, rounding toward
// negative infinity. The scale is preserved.
//
// Div returns an error if the divisor is zero or non-finite.
func (a Amount[T]) Div(divisor T) (Amount[T], error) {
	if !isFinite(a.calc, divisor) {
		return Amount[T]{}, fmt.Errorf("computing [%v / %v]: %w: non-finite divisor", a, divisor, ErrInvalidInput)
	}
	q, err := a.calc.IntDiv(a.units, divisor)
	if err != nil {
		return Amount[T]{}, fmt.Errorf("computing [%v / %v]: %w", a, divisor, err)
	}
	return a.deriving(q, a.scale), nil
}

// Neg returns the amount with the opposite sign.
func (a Amount[T]) Neg() Amount[T] {
	return a.deriving(a.calc.Sub(a.calc.Zero(), a.units), a.scale)
}

// Abs returns the absolute value of the amount.
func (a Amount[T]) Abs() Amount[T] {
	if a.calc.Cmp(a.units, a.calc.Zero()) < 0 {
		return a.Neg()
	}
	return a
}

// Convert returns the amount converted to the target currency using a
// plain integer-valued rate. The minor units are multiplied by the rate
// exactly; when the source scale is below the target currency's precision
// the result is scaled up (exactly) to reach it.
func (a Amount[T]) Convert(to Currency, rate T) (Amount[T], error) {
	if err := to.validate(); err != nil {
		return Amount[T]{}, fmt.Errorf("converting %v to %s: %w", a, to.Code, err)
	}
	res := a.deriving(a.calc.Mul(a.units, rate), a.scale)
	res.curr = to
	if res.scale < to.Precision {
		res = res.rescaleUpTo(to.Precision)
	}
	return res, nil
}

// ConvertScaled returns the amount converted to the target currency using
// a rate carrying its own scale. The result scale is the sum of the source
// scale and the rate scale, keeping the conversion exact.
func (a Amount[T]) ConvertScaled(to Currency, rate Scaled[T]) (Amount[T], error) {
	if err := to.validate(); err != nil {
		return Amount[T]{}, fmt.Errorf("converting %v to %s: %w", a, to.Code, err)
	}
	if rate.Scale < 0 {
		return Amount[T]{}, fmt.Errorf("converting %v to %s: %w: rate scale must not be negative", a, to.Code, ErrInvalidInput)
	}
	res := a.deriving(a.calc.Mul(a.units, rate.Value), a.scale+rate.Scale)
	res.curr = to
	return res, nil
}

// Rescale returns the amount at the given scale, rounding with the
// amount's own rounding mode when the scale decreases.
// See also [Amount.RescaleWith].
func (a Amount[T]) Rescale(scale int) (Amount[T], error) {
	return a.RescaleWith(scale, a.mode)
}

// RescaleWith returns the amount at the given scale. Equal scale returns
// the amount unchanged; a larger scale multiplies the minor units by a
// power of the currency base, exactly; a smaller scale divides them and
// rounds the remainder per mode. This is the one operation in this package
// that can legitimately discard precision, and it is always explicit.
//
// RescaleWith returns an error if the scale is negative or the mode is
// unknown.
func (a Amount[T]) RescaleWith(scale int, mode RoundingMode) (Amount[T], error) {
	if scale < 0 {
		return Amount[T]{}, fmt.Errorf("rescaling %v: %w: scale must not be negative, got %d", a, ErrInvalidInput, scale)
	}
	if !mode.valid() {
		return Amount[T]{}, fmt.Errorf("rescaling %v: %w: unknown rounding mode %d", a, ErrInvalidInput, mode)
	}
	switch {
	case scale == a.scale:
		return a, nil
	case scale > a.scale:
		return a.rescaleUpTo(scale), nil
	default:
		f := scaleFactor(a.calc, a.curr.Base, a.scale-scale)
		units, err := divRound(a.calc, a.units, f, mode)
		if err != nil {
			return Amount[T]{}, fmt.Errorf("rescaling %v: %w", a, err)
		}
		return a.deriving(units, scale), nil
	}
}

// NormalizeScale returns a copy of the amounts with every element rescaled
// up to the maximum scale present in the collection. Rescaling up is
// exact, so no value changes. An empty input yields an empty slice.
func NormalizeScale[T any](amounts []Amount[T]) []Amount[T] {
	scale := 0
	for _, a := range amounts {
		scale = max(scale, a.scale)
	}
	res := make([]Amount[T], len(amounts))
	for i, a := range amounts {
		res[i] = a.rescaleUpTo(scale)
	}
	return res
}

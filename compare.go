package genkin

import "fmt"

// Cmp compares amounts at their common scale and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if the amounts are denominated in different
// currencies: ordering across currencies is undefined. [Amount.Equal] is
// the deliberate exception to this rule.
func (a Amount[T]) Cmp(b Amount[T]) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, a.mismatch(b))
	}
	x, y, _ := a.align(b)
	return a.calc.Cmp(x, y), nil
}

// Equal reports whether both amounts represent the same monetary value.
// Amounts of different scale are compared at their common scale, so
// 12.34 at scale 2 equals 12.340 at scale 3. Unlike the ordering
// predicates, Equal is total: amounts in different currencies are simply
// not equal, and no error is raised.
func (a Amount[T]) Equal(b Amount[T]) bool {
	if !a.SameCurr(b) {
		return false
	}
	x, y, _ := a.align(b)
	return a.calc.Cmp(x, y) == 0
}

// LessThan reports whether a < b.
// It returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) LessThan(b Amount[T]) (bool, error) {
	c, err := a.Cmp(b)
	return c < 0, err
}

// LessThanOrEqual reports whether a <= b.
// It returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) LessThanOrEqual(b Amount[T]) (bool, error) {
	c, err := a.Cmp(b)
	return c <= 0, err
}

// GreaterThan reports whether a > b.
// It returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) GreaterThan(b Amount[T]) (bool, error) {
	c, err := a.Cmp(b)
	return c > 0, err
}

// GreaterThanOrEqual reports whether a >= b.
// It returns an error if the amounts are denominated in different currencies.
func (a Amount[T]) GreaterThanOrEqual(b Amount[T]) (bool, error) {
	c, err := a.Cmp(b)
	return c >= 0, err
}

// IsZero reports whether the amount is exactly zero.
func (a Amount[T]) IsZero() bool {
	return a.calc.Cmp(a.units, a.calc.Zero()) == 0
}

// IsPositive reports whether the amount is greater than or equal to zero.
// Zero counting as positive is a documented compatibility quirk inherited
// from the legacy surfaces this package reproduces; use [Amount.IsZero] to
// distinguish the boundary.
func (a Amount[T]) IsPositive() bool {
	return a.calc.Cmp(a.units, a.calc.Zero()) >= 0
}

// IsNegative reports whether the amount is less than zero.
func (a Amount[T]) IsNegative() bool {
	return a.calc.Cmp(a.units, a.calc.Zero()) < 0
}

// HasSubUnits reports whether the amount carries a fractional major-unit
// part, i.e. whether the minor units are not a multiple of Base^scale.
func (a Amount[T]) HasSubUnits() bool {
	r, err := a.calc.Mod(a.units, scaleFactor(a.calc, a.curr.Base, a.scale))
	if err != nil {
		return false
	}
	return a.calc.Cmp(r, a.calc.Zero()) != 0
}

// Min returns the smallest of the given amounts. A single amount is
// returned unchanged.
//
// Min returns an error if no amounts are given or the amounts are
// denominated in different currencies.
func Min[T any](amounts ...Amount[T]) (Amount[T], error) {
	return pick(amounts, -1, "min")
}

// Max returns the largest of the given amounts. A single amount is
// returned unchanged.
//
// Max returns an error if no amounts are given or the amounts are
// denominated in different currencies.
func Max[T any](amounts ...Amount[T]) (Amount[T], error) {
	return pick(amounts, +1, "max")
}

func pick[T any](amounts []Amount[T], sign int, op string) (Amount[T], error) {
	if len(amounts) == 0 {
		return Amount[T]{}, fmt.Errorf("computing %s: %w: no amounts", op, ErrEmptyCollection)
	}
	best := amounts[0]
	for _, a := range amounts[1:] {
		c, err := best.Cmp(a)
		if err != nil {
			return Amount[T]{}, fmt.Errorf("computing %s: %w", op, err)
		}
		if c*sign < 0 {
			best = a
		}
	}
	return best, nil
}

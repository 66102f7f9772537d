package genkin

import "fmt"

// Allocate distributes the amount across the given ratios and returns one
// share per ratio. Each slot receives the floored proportional part of the
// minor units; whatever remains is handed out one minor unit at a time to
// the slots in ratio order, skipping zero ratios. The shares always sum
// exactly to the original minor units; no unit is created or lost.
//
// Remainder distribution is deterministic by index order rather than
// largest-remainder-first, matching the legacy behavior this package
// reproduces; callers must not assume per-slot fairness beyond the
// sum-exactness guarantee.
//
// Allocate returns an error if no ratios are given, any ratio is negative,
// or the ratios sum to zero.
func (a Amount[T]) Allocate(ratios ...T) ([]Amount[T], error) {
	scaled := make([]Scaled[T], len(ratios))
	for i, r := range ratios {
		scaled[i] = Scaled[T]{Value: r}
	}
	return a.AllocateScaled(scaled...)
}

// AllocateScaled is like [Amount.Allocate] for ratios carrying their own
// scales, e.g. Scaled{505, 1} and Scaled{495, 1} for a 50.5/49.5 split.
// Ratios are first brought to their common scale exactly; the shares keep
// the scale of the source amount.
func (a Amount[T]) AllocateScaled(ratios ...Scaled[T]) ([]Amount[T], error) {
	shares, err := a.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating %v: %w", a, err)
	}
	return shares, nil
}

func (a Amount[T]) allocate(ratios []Scaled[T]) ([]Amount[T], error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: no ratios", ErrEmptyCollection)
	}
	c := a.calc
	zero := c.Zero()

	maxScale := 0
	for _, r := range ratios {
		if r.Scale < 0 {
			return nil, fmt.Errorf("%w: ratio scale must not be negative", ErrInvalidInput)
		}
		maxScale = max(maxScale, r.Scale)
	}

	// Normalize the ratios to their common scale and total them. The
	// common factor cancels out of every share, so the shares themselves
	// stay at the amount's scale.
	values := make([]T, len(ratios))
	total := zero
	for i, r := range ratios {
		v := r.Value
		if r.Scale < maxScale {
			v = c.Mul(v, scaleFactor(c, a.curr.Base, maxScale-r.Scale))
		}
		if c.Cmp(v, zero) < 0 {
			return nil, fmt.Errorf("%w: ratios must not be negative", ErrInvalidInput)
		}
		values[i] = v
		total = c.Add(total, v)
	}
	if c.Cmp(total, zero) == 0 {
		return nil, fmt.Errorf("%w: ratios sum to zero", ErrEmptyCollection)
	}

	shares := make([]T, len(values))
	sum := zero
	for i, v := range values {
		if c.Cmp(v, zero) == 0 {
			shares[i] = zero
			continue
		}
		q, err := c.IntDiv(c.Mul(a.units, v), total)
		if err != nil {
			return nil, err
		}
		shares[i] = q
		sum = c.Add(sum, q)
	}

	// Every share was floored, so the leftover is non-negative and
	// strictly smaller than the number of non-zero ratios.
	rem := c.Sub(a.units, sum)
	for i := range shares {
		if c.Cmp(rem, zero) <= 0 {
			break
		}
		if c.Cmp(values[i], zero) == 0 {
			continue
		}
		shares[i] = c.Inc(shares[i])
		rem = c.Dec(rem)
	}

	res := make([]Amount[T], len(shares))
	for i, s := range shares {
		res[i] = a.deriving(s, a.scale)
	}
	return res, nil
}

// Split divides the amount into the given number of parts that are as
// equal as possible, distributing the remainder to the first parts.
// It is shorthand for allocating across equal ratios.
//
// Split returns an error if parts is not positive.
func (a Amount[T]) Split(parts int) ([]Amount[T], error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %d parts: %w: parts must be positive", a, parts, ErrInvalidInput)
	}
	one := number(a.calc, 1)
	ratios := make([]T, parts)
	for i := range ratios {
		ratios[i] = one
	}
	shares, err := a.Allocate(ratios...)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %d parts: %w", a, parts, err)
	}
	return shares, nil
}

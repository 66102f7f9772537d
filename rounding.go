package genkin

// RoundingMode selects how a fractional intermediate result collapses to
// an integer number of minor units. Rounding only ever happens at two
// boundaries: constructing an amount from a fractional major-unit value,
// and decreasing an amount's scale.
//
// The zero value is [HalfEven] (banker's rounding), the default everywhere
// a mode is not given explicitly.
type RoundingMode uint8

const (
	// HalfEven rounds to the nearest integer, ties to the even neighbor.
	HalfEven RoundingMode = iota
	// Up rounds toward positive infinity.
	Up
	// Down rounds toward negative infinity.
	Down
	// TowardZero truncates the fractional part.
	TowardZero
	// AwayFromZero rounds to the integer with the larger magnitude.
	AwayFromZero
	// HalfUp rounds to the nearest integer, ties toward positive infinity.
	HalfUp
	// HalfDown rounds to the nearest integer, ties toward negative infinity.
	HalfDown
	// HalfTowardZero rounds to the nearest integer, ties toward zero.
	HalfTowardZero
	// HalfAwayFromZero rounds to the nearest integer, ties away from zero.
	HalfAwayFromZero
	// HalfOdd rounds to the nearest integer, ties to the odd neighbor.
	HalfOdd
)

var roundingModeNames = map[RoundingMode]string{
	HalfEven:         "half even",
	Up:               "up",
	Down:             "down",
	TowardZero:       "toward zero",
	AwayFromZero:     "away from zero",
	HalfUp:           "half up",
	HalfDown:         "half down",
	HalfTowardZero:   "half toward zero",
	HalfAwayFromZero: "half away from zero",
	HalfOdd:          "half odd",
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if s, ok := roundingModeNames[m]; ok {
		return s
	}
	return "unknown"
}

func (m RoundingMode) valid() bool {
	_, ok := roundingModeNames[m]
	return ok
}

// divRound divides x by a positive divisor y and rounds the quotient to an
// integer according to mode. The tie decision compares 2r against y, which
// is exact for every calculator: no fractional remainder is ever
// approximated.
func divRound[T any](c Calculator[T], x, y T, mode RoundingMode) (T, error) {
	q, err := c.IntDiv(x, y)
	if err != nil {
		return q, err
	}
	r, err := c.Mod(x, y)
	if err != nil {
		return q, err
	}
	zero := c.Zero()
	if c.Cmp(r, zero) == 0 {
		return q, nil
	}

	// The floored quotient carries the sign of the dividend whenever the
	// remainder is non-zero.
	neg := c.Cmp(q, zero) < 0

	switch mode {
	case Down:
		return q, nil
	case Up:
		return c.Inc(q), nil
	case TowardZero:
		if neg {
			return c.Inc(q), nil
		}
		return q, nil
	case AwayFromZero:
		if neg {
			return q, nil
		}
		return c.Inc(q), nil
	}

	switch cmp := c.Cmp(c.Add(r, r), y); {
	case cmp < 0:
		return q, nil
	case cmp > 0:
		return c.Inc(q), nil
	}

	// Exact tie.
	switch mode {
	case HalfUp:
		return c.Inc(q), nil
	case HalfDown:
		return q, nil
	case HalfTowardZero:
		if neg {
			return c.Inc(q), nil
		}
		return q, nil
	case HalfAwayFromZero:
		if neg {
			return q, nil
		}
		return c.Inc(q), nil
	case HalfOdd:
		if isEven(c, q) {
			return c.Inc(q), nil
		}
		return q, nil
	default: // HalfEven
		if isEven(c, q) {
			return q, nil
		}
		return c.Inc(q), nil
	}
}

// roundToInteger collapses x to an integer value according to mode.
func roundToInteger[T any](c Calculator[T], x T, mode RoundingMode) (T, error) {
	one := number(c, 1)
	return divRound(c, x, one, mode)
}

package compat

import (
	"fmt"

	"github.com/genkinhq/genkin"
)

// V1Object is the v1-style serialized shape of an amount: the major-unit
// view under "amount", the currency code, and the scale under the legacy
// field name "precision".
type V1Object[T any] struct {
	Amount    T      `json:"amount"`
	Currency  string `json:"currency"`
	Precision int    `json:"precision"`
}

// V1FromAmount snapshots an amount into the v1 shape.
func V1FromAmount[T any](a genkin.Amount[T]) V1Object[T] {
	s := a.Snapshot()
	return V1Object[T]{Amount: s.Amount, Currency: s.Currency, Precision: s.Scale}
}

// ToAmount reconstructs an amount from the v1 shape, resolving the
// currency code against the given registry.
//
// ToAmount returns an error if the currency code is not registered or the
// precision is negative.
func (o V1Object[T]) ToAmount(c genkin.Calculator[T], reg *genkin.Registry) (genkin.Amount[T], error) {
	curr, ok := reg.Get(o.Currency)
	if !ok {
		return genkin.Amount[T]{}, fmt.Errorf("converting v1 object: %w: unknown currency %q", genkin.ErrInvalidInput, o.Currency)
	}
	a, err := genkin.New(c, o.Amount, genkin.WithCurrency(curr), genkin.WithScale(o.Precision))
	if err != nil {
		return genkin.Amount[T]{}, fmt.Errorf("converting v1 object: %w", err)
	}
	return a, nil
}

var v1ModeNames = map[genkin.RoundingMode]string{
	genkin.Up:               "UP",
	genkin.Down:             "DOWN",
	genkin.TowardZero:       "TOWARDS_ZERO",
	genkin.AwayFromZero:     "AWAY_FROM_ZERO",
	genkin.HalfUp:           "HALF_UP",
	genkin.HalfDown:         "HALF_DOWN",
	genkin.HalfEven:         "HALF_EVEN",
	genkin.HalfOdd:          "HALF_ODD",
	genkin.HalfTowardZero:   "HALF_TOWARDS_ZERO",
	genkin.HalfAwayFromZero: "HALF_AWAY_FROM_ZERO",
}

var v1Modes = invert(v1ModeNames)

// ParseV1RoundingMode maps a v1 rounding-mode name such as "HALF_EVEN" to
// its [genkin.RoundingMode]. Unknown names are rejected.
func ParseV1RoundingMode(name string) (genkin.RoundingMode, error) {
	m, ok := v1Modes[name]
	if !ok {
		return 0, fmt.Errorf("parsing v1 rounding mode: %w: unknown name %q", genkin.ErrInvalidInput, name)
	}
	return m, nil
}

// V1RoundingModeName maps a [genkin.RoundingMode] to its v1 name.
func V1RoundingModeName(m genkin.RoundingMode) (string, error) {
	name, ok := v1ModeNames[m]
	if !ok {
		return "", fmt.Errorf("naming v1 rounding mode: %w: unknown mode %d", genkin.ErrInvalidInput, m)
	}
	return name, nil
}

func invert(names map[genkin.RoundingMode]string) map[string]genkin.RoundingMode {
	modes := make(map[string]genkin.RoundingMode, len(names))
	for m, name := range names {
		modes[name] = m
	}
	return modes
}

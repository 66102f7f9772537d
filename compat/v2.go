package compat

import (
	"fmt"

	"github.com/genkinhq/genkin"
)

// V2Snapshot is the v2-style serialized shape of an amount: the major-unit
// view under "amount", the currency code, and the scale under "scale".
type V2Snapshot[T any] struct {
	Amount   T      `json:"amount"`
	Currency string `json:"currency"`
	Scale    int    `json:"scale"`
}

// V2FromAmount snapshots an amount into the v2 shape.
func V2FromAmount[T any](a genkin.Amount[T]) V2Snapshot[T] {
	s := a.Snapshot()
	return V2Snapshot[T]{Amount: s.Amount, Currency: s.Currency, Scale: s.Scale}
}

// ToAmount reconstructs an amount from the v2 shape, resolving the
// currency code against the given registry.
//
// ToAmount returns an error if the currency code is not registered or the
// scale is negative.
func (s V2Snapshot[T]) ToAmount(c genkin.Calculator[T], reg *genkin.Registry) (genkin.Amount[T], error) {
	curr, ok := reg.Get(s.Currency)
	if !ok {
		return genkin.Amount[T]{}, fmt.Errorf("converting v2 snapshot: %w: unknown currency %q", genkin.ErrInvalidInput, s.Currency)
	}
	a, err := genkin.New(c, s.Amount, genkin.WithCurrency(curr), genkin.WithScale(s.Scale))
	if err != nil {
		return genkin.Amount[T]{}, fmt.Errorf("converting v2 snapshot: %w", err)
	}
	return a, nil
}

var v2ModeNames = map[genkin.RoundingMode]string{
	genkin.Up:               "up",
	genkin.Down:             "down",
	genkin.TowardZero:       "towardsZero",
	genkin.AwayFromZero:     "awayFromZero",
	genkin.HalfUp:           "halfUp",
	genkin.HalfDown:         "halfDown",
	genkin.HalfEven:         "halfEven",
	genkin.HalfOdd:          "halfOdd",
	genkin.HalfTowardZero:   "halfTowardsZero",
	genkin.HalfAwayFromZero: "halfAwayFromZero",
}

var v2Modes = invert(v2ModeNames)

// ParseV2RoundingMode maps a v2 rounding-mode name such as "halfEven" to
// its [genkin.RoundingMode]. Unknown names are rejected.
func ParseV2RoundingMode(name string) (genkin.RoundingMode, error) {
	m, ok := v2Modes[name]
	if !ok {
		return 0, fmt.Errorf("parsing v2 rounding mode: %w: unknown name %q", genkin.ErrInvalidInput, name)
	}
	return m, nil
}

// V2RoundingModeName maps a [genkin.RoundingMode] to its v2 name.
func V2RoundingModeName(m genkin.RoundingMode) (string, error) {
	name, ok := v2ModeNames[m]
	if !ok {
		return "", fmt.Errorf("naming v2 rounding mode: %w: unknown mode %d", genkin.ErrInvalidInput, m)
	}
	return name, nil
}

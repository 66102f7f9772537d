package genkin

import "fmt"

// ExchangeRate represents a unidirectional exchange rate between a base
// and a quote currency, with the rate value carrying its own scale:
// Scaled{10802, 4} reads as 1.0802 quote units per base unit.
// ExchangeRate values are immutable.
type ExchangeRate[T any] struct {
	calc  Calculator[T]
	base  Currency  // currency being exchanged
	quote Currency  // currency being obtained for the base currency
	value Scaled[T] // quote units per one base unit
}

// NewExchRate returns a new exchange rate between the base and quote
// currencies.
//
// NewExchRate returns an error if either descriptor is invalid, the rate
// is not positive, its scale is negative, or the currencies are equal
// while the rate is not exactly one.
func NewExchRate[T any](c Calculator[T], base, quote Currency, rate Scaled[T]) (ExchangeRate[T], error) {
	if c == nil {
		return ExchangeRate[T]{}, fmt.Errorf("constructing exchange rate: %w: nil calculator", ErrInvalidInput)
	}
	if err := base.validate(); err != nil {
		return ExchangeRate[T]{}, fmt.Errorf("constructing exchange rate: base: %w", err)
	}
	if err := quote.validate(); err != nil {
		return ExchangeRate[T]{}, fmt.Errorf("constructing exchange rate: quote: %w", err)
	}
	if rate.Scale < 0 {
		return ExchangeRate[T]{}, fmt.Errorf("constructing exchange rate: %w: rate scale must not be negative", ErrInvalidInput)
	}
	if c.Cmp(rate.Value, c.Zero()) <= 0 {
		return ExchangeRate[T]{}, fmt.Errorf("constructing exchange rate: %w: rate must be positive", ErrInvalidInput)
	}
	if base.Code == quote.Code {
		one := scaleFactor(c, base.Base, rate.Scale)
		if c.Cmp(rate.Value, one) != 0 {
			return ExchangeRate[T]{}, fmt.Errorf("constructing exchange rate: %w: rate between %s and itself must be one", ErrInvalidInput, base.Code)
		}
	}
	return ExchangeRate[T]{calc: c, base: base, quote: quote, value: rate}, nil
}

// Base returns the currency being exchanged.
func (r ExchangeRate[T]) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained for the base currency.
func (r ExchangeRate[T]) Quote() Currency {
	return r.quote
}

// Rate returns the scaled rate value.
func (r ExchangeRate[T]) Rate() Scaled[T] {
	return r.value
}

// CanConv reports whether [ExchangeRate.Conv] can convert the given amount,
// i.e. whether the amount is denominated in the base currency.
func (r ExchangeRate[T]) CanConv(a Amount[T]) bool {
	return r.calc != nil && a.Currency().Code == r.base.Code
}

// Conv converts an amount denominated in the base currency to the quote
// currency. The conversion multiplies minor units exactly; the result
// scale is the sum of the amount scale and the rate scale.
//
// Conv returns an error if the amount is not denominated in the base
// currency.
func (r ExchangeRate[T]) Conv(a Amount[T]) (Amount[T], error) {
	if !r.CanConv(a) {
		return Amount[T]{}, fmt.Errorf("converting %v at %s/%s: %w: %s and %s",
			a, r.base.Code, r.quote.Code, ErrCurrencyMismatch, a.Currency().Code, r.base.Code)
	}
	return a.ConvertScaled(r.quote, r.value)
}

// String implements the [fmt.Stringer] interface, rendering the currency
// pair ("USD/EUR").
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate[T]) String() string {
	return r.base.Code + "/" + r.quote.Code
}

package genkin

import "fmt"

// Currency describes a currency: its ISO 4217 alphabetic code, numeric
// code, default precision (number of fractional digits separating major
// and minor units), optional display symbol and name, and the base (radix)
// relating one scale step to the next. Every currency in the bundled table
// uses base 10.
//
// A Currency is an immutable record; it is constructed once, typically
// from the bundled table or a [Registry], and copied by value thereafter.
type Currency struct {
	Code      string // alphabetic code, e.g. "USD"
	Numeric   int    // numeric code, e.g. 840
	Precision int    // default number of fractional digits
	Symbol    string // display glyph, e.g. "$"; may be empty
	Name      string // display name, e.g. "US Dollar"; may be empty
	Base      int    // radix, 10 unless stated otherwise
}

// DefaultCurrency is the fallback descriptor used when an amount is
// constructed without an explicit currency.
var DefaultCurrency = USD

// String implements the [fmt.Stringer] interface and returns the
// alphabetic code.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code
}

// validate checks the descriptor invariants: a non-empty code, a
// non-negative precision, and a base of at least 2.
func (c Currency) validate() error {
	if c.Code == "" {
		return fmt.Errorf("%w: currency code must not be empty", ErrInvalidInput)
	}
	if c.Precision < 0 {
		return fmt.Errorf("%w: currency %s: precision must not be negative, got %d", ErrInvalidInput, c.Code, c.Precision)
	}
	if c.Base < 2 {
		return fmt.Errorf("%w: currency %s: base must be at least 2, got %d", ErrInvalidInput, c.Code, c.Base)
	}
	return nil
}

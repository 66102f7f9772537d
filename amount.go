package genkin

import (
	"encoding/json"
	"fmt"
)

// Amount represents a monetary value: an integer number of minor units of
// type T at an explicit scale, tied to a [Currency] and a [Calculator].
// The minor units are the sole source of truth; the major-unit view is
// derived on read and is lossy.
//
// Amounts are immutable and therefore safe for concurrent use. The zero
// value has no calculator bound to it and is not usable; construct amounts
// with [New], [FromMinorUnits], or [MustNew].
type Amount[T any] struct {
	calc  Calculator[T]
	units T            // minor units, already scaled
	scale int          // fractional digits represented by units
	curr  Currency     // owning currency descriptor
	mode  RoundingMode // applied when this amount must round
}

// Scaled pairs a raw value with the number of fractional digits it
// represents, allowing multipliers, rates, and ratios to carry their own
// precision. Scaled{150, 2} reads as 1.50.
type Scaled[T any] struct {
	Value T
	Scale int
}

// Option configures amount construction. See [WithCurrency], [WithScale],
// [WithRounding], and [InMinorUnits].
type Option func(*amountOptions)

type amountOptions struct {
	curr     Currency
	hasCurr  bool
	scale    int
	hasScale bool
	mode     RoundingMode
	hasMode  bool
	minor    bool
}

// WithCurrency binds the amount to the given currency descriptor instead
// of [DefaultCurrency].
func WithCurrency(c Currency) Option {
	return func(o *amountOptions) {
		o.curr = c
		o.hasCurr = true
	}
}

// WithScale overrides the currency's default precision.
func WithScale(scale int) Option {
	return func(o *amountOptions) {
		o.scale = scale
		o.hasScale = true
	}
}

// WithRounding sets the rounding mode carried by the amount and applied
// during construction from major units. The default is [HalfEven].
func WithRounding(mode RoundingMode) Option {
	return func(o *amountOptions) {
		o.mode = mode
		o.hasMode = true
	}
}

// InMinorUnits marks the construction value as already expressed in minor
// units: it is stored verbatim, with no scaling and no rounding.
func InMinorUnits() Option {
	return func(o *amountOptions) {
		o.minor = true
	}
}

// New constructs an amount from value using the given calculator.
// By default value is interpreted in major units: it is multiplied by
// Base^scale and rounded to an integer per the rounding mode. With
// [InMinorUnits] the value is stored verbatim.
//
// New returns an error if the calculator is nil, the currency descriptor
// or scale is invalid, the rounding mode is unknown, or the value is
// non-finite under a calculator that admits such states.
func New[T any](c Calculator[T], value T, opts ...Option) (Amount[T], error) {
	if c == nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w: nil calculator", ErrInvalidInput)
	}
	var o amountOptions
	for _, opt := range opts {
		opt(&o)
	}

	curr := DefaultCurrency
	if o.hasCurr {
		curr = o.curr
	}
	if err := curr.validate(); err != nil {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
	}

	scale := curr.Precision
	if o.hasScale {
		scale = o.scale
	}
	if scale < 0 {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w: scale must not be negative, got %d", ErrInvalidInput, scale)
	}

	mode := HalfEven
	if o.hasMode {
		mode = o.mode
	}
	if !mode.valid() {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w: unknown rounding mode %d", ErrInvalidInput, mode)
	}

	if !isFinite(c, value) {
		return Amount[T]{}, fmt.Errorf("constructing amount: %w: non-finite value", ErrInvalidInput)
	}

	units := value
	if !o.minor {
		scaled := c.Mul(value, scaleFactor(c, curr.Base, scale))
		var err error
		units, err = roundToInteger(c, scaled, mode)
		if err != nil {
			return Amount[T]{}, fmt.Errorf("constructing amount: %w", err)
		}
	}
	return Amount[T]{calc: c, units: units, scale: scale, curr: curr, mode: mode}, nil
}

// MustNew is like [New] but panics if the amount cannot be constructed.
// It simplifies safe initialization of variables holding amounts.
func MustNew[T any](c Calculator[T], value T, opts ...Option) Amount[T] {
	a, err := New(c, value, opts...)
	if err != nil {
		panic(fmt.Sprintf("New(%v) failed: %v", value, err))
	}
	return a
}

// FromMinorUnits constructs an amount from a value already expressed in
// minor units of the given currency, at the currency's default precision.
func FromMinorUnits[T any](c Calculator[T], curr Currency, units T) (Amount[T], error) {
	return New(c, units, WithCurrency(curr), InMinorUnits())
}

// deriving returns a copy of a holding the given units and scale. Every
// transforming operation funnels through here, so currency, rounding mode,
// and calculator always carry over unchanged.
func (a Amount[T]) deriving(units T, scale int) Amount[T] {
	return Amount[T]{calc: a.calc, units: units, scale: scale, curr: a.curr, mode: a.mode}
}

// MinorUnits returns the exact integer value of the amount in minor units.
func (a Amount[T]) MinorUnits() T {
	return a.units
}

// Major returns the amount in major units, computed by integer division of
// the minor units by Base^scale. The fractional part is discarded; this is
// a display and serialization view, never an input to arithmetic.
func (a Amount[T]) Major() T {
	q, err := a.calc.IntDiv(a.units, scaleFactor(a.calc, a.curr.Base, a.scale))
	if err != nil {
		panic(fmt.Sprintf("computing major units of %v: %v", a, err))
	}
	return q
}

// Currency returns the currency descriptor of the amount.
func (a Amount[T]) Currency() Currency {
	return a.curr
}

// Scale returns the number of fractional digits the minor units represent.
func (a Amount[T]) Scale() int {
	return a.scale
}

// Rounding returns the rounding mode carried by the amount.
func (a Amount[T]) Rounding() RoundingMode {
	return a.mode
}

// SameCurr reports whether both amounts are denominated in the same
// currency, judged by code equality.
func (a Amount[T]) SameCurr(b Amount[T]) bool {
	return a.curr.Code == b.curr.Code
}

// SameScale reports whether both amounts have the same scale.
func (a Amount[T]) SameScale(b Amount[T]) bool {
	return a.scale == b.scale
}

// Zero returns an amount of zero minor units with the same currency,
// scale, and rounding mode as a.
func (a Amount[T]) Zero() Amount[T] {
	return a.deriving(a.calc.Zero(), a.scale)
}

// Snapshot is the serialized shape of an amount: the major-unit view, the
// currency code, and the scale. It is a copy taken at call time, not a
// live view.
type Snapshot[T any] struct {
	Amount   T      `json:"amount"`
	Currency string `json:"currency"`
	Scale    int    `json:"scale"`
}

// Snapshot returns the serialized shape of the amount.
func (a Amount[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{Amount: a.Major(), Currency: a.curr.Code, Scale: a.scale}
}

// MarshalJSON implements the [json.Marshaler] interface by encoding the
// amount's [Snapshot].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Snapshot())
}

// String implements the [fmt.Stringer] interface. The currency symbol is
// prefixed when present and distinct from the code ("$10.50"); otherwise
// the code is suffixed ("10.50 CHF"). A decimal point is inserted per the
// scale for base-10 currencies; other bases render raw minor units.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount[T]) String() string {
	if a.calc == nil {
		return "<invalid amount>"
	}
	digits := a.digits()
	if a.curr.Symbol != "" && a.curr.Symbol != a.curr.Code {
		if digits[0] == '-' {
			return "-" + a.curr.Symbol + digits[1:]
		}
		return a.curr.Symbol + digits
	}
	return digits + " " + a.curr.Code
}

// digits renders the minor units as a signed decimal string, inserting the
// decimal point per the scale when the currency base is 10.
func (a Amount[T]) digits() string {
	c := a.calc
	zero := c.Zero()
	x := a.units
	neg := c.Cmp(x, zero) < 0
	if neg {
		x = c.Sub(zero, x)
	}

	ten := number(c, 10)
	var buf []byte
	for {
		r, err := c.Mod(x, ten)
		if err != nil {
			return "<invalid amount>"
		}
		buf = append(buf, digitByte(c, r))
		x, err = c.IntDiv(x, ten)
		if err != nil || c.Cmp(x, zero) == 0 {
			break
		}
	}
	// buf holds the digits least significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	s := string(buf)
	if a.scale > 0 && a.curr.Base == 10 {
		for len(s) <= a.scale {
			s = "0" + s
		}
		point := len(s) - a.scale
		s = s[:point] + "." + s[point:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// digitByte converts a single-digit value (0 through 9) to its ASCII byte.
func digitByte[T any](c Calculator[T], d T) byte {
	probe := c.Zero()
	for i := byte(0); i < 10; i++ {
		if c.Cmp(d, probe) == 0 {
			return '0' + i
		}
		probe = c.Inc(probe)
	}
	return '?'
}

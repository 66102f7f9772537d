/*
Package genkin implements exact, currency-aware monetary values over a
pluggable numeric representation.

# Representation

An [Amount] stores an integer number of minor units (e.g. cents) together
with an explicit scale (the number of fractional digits those units
represent), a [Currency] descriptor, and a [RoundingMode]. The minor units
are held in an opaque numeric type T and every arithmetic primitive is
delegated to the [Calculator] the amount was constructed with. Concrete
calculators for machine integers, arbitrary-precision integers, and
arbitrary-precision decimals live in the calc subpackage.

Amounts are immutable: every operation returns a new value, which makes
them safe to share between goroutines. The one piece of mutable state in
the package is the currency [Registry]; see its documentation for the
synchronization rules.

# Arithmetic

Binary operations require both operands to share a currency and rescale
them to the larger of the two scales before combining. Increasing the
scale multiplies the minor units by a power of the currency's base and is
always exact. Decreasing the scale is only ever done through [Amount.Rescale]
or [Amount.RescaleWith], where the caller controls the rounding mode.

Allocation distributes an amount across a list of ratios without creating
or destroying minor units: each slot receives the floored proportional
share and the remainder is handed out one unit at a time in ratio order,
skipping zero ratios.

# Rounding

Ten rounding modes are supported, defaulting to [HalfEven] (banker's
rounding). Ties are detected by exact integer comparison of twice the
remainder against the divisor, never through floating-point intermediaries.

# Errors

Failures are reported through wrapped sentinel errors: [ErrCurrencyMismatch],
[ErrInvalidInput], [ErrDivisionByZero], [ErrNegativeExponent], and
[ErrEmptyCollection]. The package never clamps, substitutes defaults, or
recovers internally; a failed operation always surfaces to the caller.
*/
package genkin

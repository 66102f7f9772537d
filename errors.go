package genkin

import "errors"

var (
	// ErrCurrencyMismatch is returned by binary arithmetic and ordering
	// operations when the operands are denominated in different currencies.
	// The wrapping error names both currency codes.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInvalidInput is returned when a constructor or operation receives
	// a value it cannot represent: a non-finite number, a negative scale,
	// an invalid currency descriptor, or a negative allocation ratio.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero is returned when a divisor or modulus is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeExponent is returned by [Calculator.Pow] implementations
	// when the exponent is negative.
	ErrNegativeExponent = errors.New("negative exponent")

	// ErrEmptyCollection is returned by [Min], [Max], and [Amount.Allocate]
	// when given no elements, and by allocation when the ratios sum to zero.
	ErrEmptyCollection = errors.New("empty collection")
)

package calc

import (
	"math/big"

	"github.com/genkinhq/genkin"
)

// BigInt is a [genkin.Calculator] over arbitrary-precision *big.Int
// values. All operations allocate fresh results and never mutate their
// operands, preserving the immutability of amounts that share them.
type BigInt struct{}

var _ genkin.Calculator[*big.Int] = BigInt{}

// Zero returns a new zero-valued integer.
func (BigInt) Zero() *big.Int { return new(big.Int) }

// Add returns x + y.
func (BigInt) Add(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }

// Sub returns x - y.
func (BigInt) Sub(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }

// Mul returns x * y.
func (BigInt) Mul(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }

// IntDiv returns x / y rounded toward negative infinity.
func (BigInt) IntDiv(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, genkin.ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q, nil
}

// Mod returns the remainder of the floored division of x by y. The result
// carries the sign of the divisor.
func (BigInt) Mod(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, genkin.ErrDivisionByZero
	}
	r := new(big.Int).Rem(x, y)
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		r.Add(r, y)
	}
	return r, nil
}

// Pow returns base raised to a non-negative exponent. big.Int.Exp performs
// the binary exponentiation.
func (BigInt) Pow(base, exp *big.Int) (*big.Int, error) {
	if exp.Sign() < 0 {
		return nil, genkin.ErrNegativeExponent
	}
	return new(big.Int).Exp(base, exp, nil), nil
}

// Inc returns x + 1.
func (BigInt) Inc(x *big.Int) *big.Int { return new(big.Int).Add(x, big.NewInt(1)) }

// Dec returns x - 1.
func (BigInt) Dec(x *big.Int) *big.Int { return new(big.Int).Sub(x, big.NewInt(1)) }

// Cmp returns -1 if x < y, 0 if x = y, and +1 if x > y.
func (BigInt) Cmp(x, y *big.Int) int { return x.Cmp(y) }

/*
Package calc provides the concrete [genkin.Calculator] implementations:

  - [Int64] over native machine integers
  - [BigInt] over arbitrary-precision integers (math/big)
  - [Decimal] over 19-digit exact decimals (github.com/govalues/decimal)
  - [BigDecimal] over arbitrary-precision decimals (github.com/shopspring/decimal)
  - [Float64] over native floats, for compatibility only

All calculators are stateless empty structs; the zero value of each is
ready to use. Division and modulo follow floored semantics throughout:
the quotient rounds toward negative infinity and the remainder carries
the sign of the divisor.
*/
package calc

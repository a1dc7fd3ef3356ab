// Package bignum implements exact arbitrary-precision arithmetic over rationals,
// as well as base-radix digit parsing and polynomial interpolation.
package bignum

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDivideByZero is returned when constructing a Rational with a zero
// denominator or when dividing by a zero Rational.
var ErrDivideByZero = errors.New("division by zero")

// Rational is an immutable exact fraction over arbitrary-precision integers.
// A Rational is always stored in reduced form: the denominator is strictly
// positive and coprime with the numerator, and zero is stored as 0/1.
// All arithmetic methods return a new reduced Rational and never mutate
// their operands.
//
// The zero value of the type is not usable; values must be obtained from
// [NewRational], [NewRationalInt] or an arithmetic method.
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewRational returns the reduced fraction num/den.
// Returns an error wrapping [ErrDivideByZero] if den is zero.
func NewRational(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("cannot NewRational: %w: %s/0", ErrDivideByZero, num.String())
	}
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// NewRationalInt returns x/1.
func NewRationalInt(x *big.Int) Rational {
	return Rational{num: new(big.Int).Set(x), den: big.NewInt(1)}
}

// Zero returns 0/1.
func Zero() Rational {
	return Rational{num: new(big.Int), den: big.NewInt(1)}
}

// One returns 1/1.
func One() Rational {
	return Rational{num: big.NewInt(1), den: big.NewInt(1)}
}

// reduce normalizes num/den in place and takes ownership of both operands.
// The caller guarantees den != 0.
func reduce(num, den *big.Int) Rational {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	// GCD(0, den) = den, so a zero numerator reduces to 0/1.
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)
	return Rational{num: num, den: den}
}

// Add returns r + b.
func (r Rational) Add(b Rational) Rational {
	num := new(big.Int).Mul(r.num, b.den)
	num.Add(num, new(big.Int).Mul(b.num, r.den))
	return reduce(num, new(big.Int).Mul(r.den, b.den))
}

// Sub returns r - b.
func (r Rational) Sub(b Rational) Rational {
	num := new(big.Int).Mul(r.num, b.den)
	num.Sub(num, new(big.Int).Mul(b.num, r.den))
	return reduce(num, new(big.Int).Mul(r.den, b.den))
}

// Mul returns r * b.
func (r Rational) Mul(b Rational) Rational {
	return reduce(new(big.Int).Mul(r.num, b.num), new(big.Int).Mul(r.den, b.den))
}

// Div returns r / b.
// Returns an error wrapping [ErrDivideByZero] if b is zero.
func (r Rational) Div(b Rational) (Rational, error) {
	if b.num.Sign() == 0 {
		return Rational{}, fmt.Errorf("cannot Div: %w", ErrDivideByZero)
	}
	return reduce(new(big.Int).Mul(r.num, b.den), new(big.Int).Mul(r.den, b.num)), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Equal reports whether r and b are mathematically equal.
// Since values are always reduced with a positive denominator, this is a
// component-wise comparison.
func (r Rational) Equal(b Rational) bool {
	return r.num.Cmp(b.num) == 0 && r.den.Cmp(b.den) == 0
}

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool {
	return r.num.Sign() == 0
}

// IsInt reports whether r is an integer.
func (r Rational) IsInt() bool {
	return r.den.Cmp(oneInt) == 0
}

// Num returns a copy of the reduced numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.num)
}

// Denom returns a copy of the reduced denominator.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.den)
}

// Float returns the value of r as a *big.Float with prec bits of mantissa.
func (r Rational) Float(prec uint) *big.Float {
	num := new(big.Float).SetPrec(prec).SetInt(r.num)
	den := new(big.Float).SetPrec(prec).SetInt(r.den)
	return num.Quo(num, den)
}

// String renders r as "num" when r is an integer and "num/den" otherwise.
func (r Rational) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

var oneInt = big.NewInt(1)

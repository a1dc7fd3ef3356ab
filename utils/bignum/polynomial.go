package bignum

import (
	"math/big"
)

// Polynomial is a dense univariate polynomial with [Rational] coefficients.
// The coefficient at index i is the coefficient of x^i.
type Polynomial []Rational

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Evaluate returns p(x) as an exact [Rational], accumulating a running
// power of x so that each term costs a single multiplication.
func (p Polynomial) Evaluate(x *big.Int) Rational {
	if len(p) == 0 {
		return Zero()
	}

	xr := NewRationalInt(x)

	y := p[0]
	pow := One()
	for i := 1; i < len(p); i++ {
		pow = pow.Mul(xr)
		y = y.Add(p[i].Mul(pow))
	}

	return y
}

// Clone returns a deep copy of the polynomial.
func (p Polynomial) Clone() Polynomial {
	pcpy := make(Polynomial, len(p))
	copy(pcpy, p)
	return pcpy
}

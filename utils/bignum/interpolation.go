package bignum

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrSingularInterpolation is returned when two interpolation points share
// an abscissa, leaving no polynomial of degree len(x)-1 through the points.
var ErrSingularInterpolation = errors.New("duplicate abscissa among interpolation points")

// Interpolate returns the unique polynomial of degree len(x)-1 passing
// through the points (x[i], y[i]), computed with Lagrange's formula over
// exact rationals.
//
// For each point j, the basis numerator prod_{m!=j}(X - x_m) is built by
// iterative convolution and scaled by y_j / prod_{m!=j}(x_j - x_m) before
// being accumulated into the result.
func Interpolate(x, y []*big.Int) (Polynomial, error) {

	if len(x) != len(y) {
		return nil, fmt.Errorf("cannot Interpolate: got %d abscissas for %d ordinates", len(x), len(y))
	}

	k := len(x)

	if k == 0 {
		return nil, fmt.Errorf("cannot Interpolate: at least one point is required")
	}

	coeffs := make(Polynomial, k)
	for i := range coeffs {
		coeffs[i] = Zero()
	}

	for j := 0; j < k; j++ {

		// basis holds the running product prod_{m!=j}(X - x_m).
		basis := make(Polynomial, 1, k)
		basis[0] = One()

		denom := One()

		for m := 0; m < k; m++ {

			if m == j {
				continue
			}

			xm := NewRationalInt(x[m])

			// Multiply basis by (X - x_m): next[d] = basis[d-1] - x_m * basis[d].
			next := make(Polynomial, len(basis)+1)
			for d := range next {
				c := Zero()
				if d < len(basis) {
					c = basis[d].Mul(xm).Neg()
				}
				if d > 0 {
					c = c.Add(basis[d-1])
				}
				next[d] = c
			}
			basis = next

			denom = denom.Mul(NewRationalInt(new(big.Int).Sub(x[j], x[m])))
		}

		if denom.IsZero() {
			return nil, fmt.Errorf("cannot Interpolate: %w: x=%s", ErrSingularInterpolation, x[j].String())
		}

		scale, err := NewRationalInt(y[j]).Div(denom)
		if err != nil {
			return nil, fmt.Errorf("cannot Interpolate: %w", err)
		}

		for d := range basis {
			coeffs[d] = coeffs[d].Add(basis[d].Mul(scale))
		}
	}

	return coeffs, nil
}

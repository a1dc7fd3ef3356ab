package bignum

import (
	"math/big"
	"testing"

	"github.com/ALTree/bigfloat"
	"github.com/stretchr/testify/require"
)

func bigInts(vs ...int64) (r []*big.Int) {
	r = make([]*big.Int, len(vs))
	for i, v := range vs {
		r[i] = big.NewInt(v)
	}
	return
}

func TestInterpolate(t *testing.T) {

	t.Run("Quadratic", func(t *testing.T) {

		// f(x) = x^2 + 3 through (1,4), (2,7), (3,12).
		p, err := Interpolate(bigInts(1, 2, 3), bigInts(4, 7, 12))
		require.NoError(t, err)
		require.Equal(t, 2, p.Degree())

		require.Equal(t, "3", p[0].String())
		require.Equal(t, "0", p[1].String())
		require.Equal(t, "1", p[2].String())
	})

	t.Run("ExactThroughAllPoints", func(t *testing.T) {

		x := bigInts(-3, -1, 0, 2, 5, 11)
		y := bigInts(7, -2, 13, 0, 41, -999)

		p, err := Interpolate(x, y)
		require.NoError(t, err)
		require.Equal(t, len(x)-1, p.Degree())

		for i := range x {
			require.True(t, p.Evaluate(x[i]).Equal(NewRationalInt(y[i])))
		}
	})

	t.Run("RationalCoefficients", func(t *testing.T) {

		// The line through (1,0) and (3,1) is x/2 - 1/2.
		p, err := Interpolate(bigInts(1, 3), bigInts(0, 1))
		require.NoError(t, err)
		require.Equal(t, "-1/2", p[0].String())
		require.Equal(t, "1/2", p[1].String())
	})

	t.Run("SinglePoint", func(t *testing.T) {

		p, err := Interpolate(bigInts(5), bigInts(17))
		require.NoError(t, err)
		require.Equal(t, 0, p.Degree())
		require.Equal(t, "17", p[0].String())
	})

	t.Run("Singular", func(t *testing.T) {
		_, err := Interpolate(bigInts(1, 2, 2), bigInts(4, 7, 9))
		require.ErrorIs(t, err, ErrSingularInterpolation)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Interpolate(bigInts(1, 2), bigInts(4))
		require.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Interpolate(nil, nil)
		require.Error(t, err)
	})
}

// TestEvaluateCrossCheck compares the exact rational evaluation against an
// independent floating-point evaluation at 256 bits of precision.
func TestEvaluateCrossCheck(t *testing.T) {

	const prec = 256

	p, err := Interpolate(bigInts(1, 2, 3, 7), bigInts(4, 7, 12, -5))
	require.NoError(t, err)

	for _, x := range bigInts(-10, -1, 0, 4, 25) {

		want := p.Evaluate(x).Float(prec)

		xf := new(big.Float).SetPrec(prec).SetInt(x)
		got := new(big.Float).SetPrec(prec)

		for i, c := range p {
			term := c.Float(prec)
			if i > 0 && xf.Sign() != 0 {
				pow := bigfloat.Pow(new(big.Float).SetPrec(prec).Abs(xf), new(big.Float).SetPrec(prec).SetInt64(int64(i)))
				if xf.Sign() < 0 && i&1 == 1 {
					pow.Neg(pow)
				}
				term.Mul(term, pow)
			} else if i > 0 {
				term.SetInt64(0)
			}
			got.Add(got, term)
		}

		diff := new(big.Float).Sub(want, got)
		diff.Abs(diff)

		eps := new(big.Float).SetPrec(prec).SetFloat64(1e-30)
		require.True(t, diff.Cmp(eps) < 0, "x=%s: |%s - %s| >= 1e-30", x, want.String(), got.String())
	}
}

func TestPolynomial(t *testing.T) {

	t.Run("EmptyEvaluatesToZero", func(t *testing.T) {
		require.True(t, Polynomial{}.Evaluate(big.NewInt(3)).IsZero())
	})

	t.Run("Clone", func(t *testing.T) {
		p := Polynomial{One(), Zero(), One()}
		q := p.Clone()
		q[0] = q[0].Add(One())
		require.True(t, p[0].Equal(One()))
	})
}

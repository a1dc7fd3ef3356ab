package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRational(t *testing.T) {

	rat := func(num, den int64) Rational {
		r, err := NewRational(big.NewInt(num), big.NewInt(den))
		require.NoError(t, err)
		return r
	}

	t.Run("Reduction", func(t *testing.T) {

		cases := []struct {
			num, den       int64
			redNum, redDen int64
			str            string
		}{
			{6, 4, 3, 2, "3/2"},
			{-6, 4, -3, 2, "-3/2"},
			{6, -4, -3, 2, "-3/2"},
			{-6, -4, 3, 2, "3/2"},
			{0, 7, 0, 1, "0"},
			{0, -7, 0, 1, "0"},
			{42, 6, 7, 1, "7"},
			{1, 1, 1, 1, "1"},
		}

		for _, c := range cases {
			r := rat(c.num, c.den)
			require.Equal(t, c.redNum, r.Num().Int64())
			require.Equal(t, c.redDen, r.Denom().Int64())
			require.Equal(t, c.str, r.String())
			require.True(t, r.Denom().Sign() > 0)

			// Reducing an already reduced value is the identity.
			r2, err := NewRational(r.Num(), r.Denom())
			require.NoError(t, err)
			require.True(t, r.Equal(r2))
		}
	})

	t.Run("ZeroDenominator", func(t *testing.T) {
		_, err := NewRational(big.NewInt(1), new(big.Int))
		require.ErrorIs(t, err, ErrDivideByZero)
	})

	t.Run("Arithmetic", func(t *testing.T) {
		a := rat(1, 2)
		b := rat(1, 3)

		require.Equal(t, "5/6", a.Add(b).String())
		require.Equal(t, "1/6", a.Sub(b).String())
		require.Equal(t, "1/6", a.Mul(b).String())

		q, err := a.Div(b)
		require.NoError(t, err)
		require.Equal(t, "3/2", q.String())

		require.Equal(t, "-1/2", a.Neg().String())

		// Operands are never mutated.
		require.Equal(t, "1/2", a.String())
		require.Equal(t, "1/3", b.String())
	})

	t.Run("DivByZero", func(t *testing.T) {
		_, err := One().Div(Zero())
		require.ErrorIs(t, err, ErrDivideByZero)
	})

	t.Run("Equal", func(t *testing.T) {
		require.True(t, rat(2, 4).Equal(rat(1, 2)))
		require.True(t, rat(-2, 4).Equal(rat(1, -2)))
		require.False(t, rat(1, 2).Equal(rat(1, 3)))
		require.True(t, Zero().Equal(rat(0, 5)))
	})

	t.Run("Predicates", func(t *testing.T) {
		require.True(t, Zero().IsZero())
		require.False(t, One().IsZero())
		require.True(t, rat(4, 2).IsInt())
		require.False(t, rat(1, 2).IsInt())
	})

	t.Run("Float", func(t *testing.T) {
		f, _ := rat(1, 4).Float(64).Float64()
		require.Equal(t, 0.25, f)
	})
}

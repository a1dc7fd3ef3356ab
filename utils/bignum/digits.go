package bignum

import (
	"errors"
	"fmt"
	"math/big"
)

// Bounds on the radix accepted by [ParseDigits].
const (
	MinBase = 2
	MaxBase = 36
)

var (
	// ErrInvalidDigit is returned when a character is outside [0-9a-zA-Z].
	ErrInvalidDigit = errors.New("invalid digit character")
	// ErrDigitOutOfRange is returned when a digit value is not below the radix.
	ErrDigitOutOfRange = errors.New("digit out of range for base")
)

// ParseDigits decodes the digit string s in the given base into an
// arbitrary-precision integer, most-significant digit first.
// Digits map as '0'-'9' to 0-9 and 'a'-'z' (case-insensitive) to 10-35.
// The empty string decodes to 0.
func ParseDigits(s string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("cannot ParseDigits: base must be in [%d, %d] but is %d", MinBase, MaxBase, base)
	}

	v := new(big.Int)
	radix := big.NewInt(int64(base))

	for _, c := range s {
		var d int64
		switch {
		case c >= '0' && c <= '9':
			d = int64(c - '0')
		case c >= 'a' && c <= 'z':
			d = int64(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			d = int64(c-'A') + 10
		default:
			return nil, fmt.Errorf("cannot ParseDigits: %w: %q", ErrInvalidDigit, c)
		}

		if d >= int64(base) {
			return nil, fmt.Errorf("cannot ParseDigits: %w %d: %q maps to %d", ErrDigitOutOfRange, base, c, d)
		}

		v.Mul(v, radix)
		v.Add(v, big.NewInt(d))
	}

	return v, nil
}

package shamir

import (
	"errors"
)

var (
	// ErrInsufficientShares is returned when fewer usable shares are
	// available than the reconstruction threshold.
	ErrInsufficientShares = errors.New("fewer shares than threshold")

	// ErrNoValidPolynomial is returned when every candidate subset of
	// shares is singular and no polynomial could be reconstructed.
	ErrNoValidPolynomial = errors.New("no subset of shares defines a polynomial")
)

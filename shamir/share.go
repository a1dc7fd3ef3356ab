// Package shamir implements the reconstruction of a secret from a
// t-out-of-N threshold secret sharing scheme when part of the supplied
// shares may be corrupted. Shares are points of a polynomial of degree
// threshold-1 over the integers; reconstruction searches for the
// polynomial consistent with the largest subset of the shares and returns
// its constant term as the secret.
package shamir

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"github.com/ayushshinde13/hashira/utils/bignum"
)

// Share is one (x, y) point of the secret sharing scheme.
// Shares are immutable once decoded.
type Share struct {
	X *big.Int
	Y *big.Int
}

// EncodedShare is the raw form of a share value: a digit string in some
// base in [2, 36]. The base is kept as a string since input documents
// carry it either quoted or as a bare number.
type EncodedShare struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// DecodeShares decodes the given identifier-to-value mapping into a share
// list. Identifiers are the decimal x coordinates; values are decoded with
// [bignum.ParseDigits] according to their declared base.
//
// If use is non-nil, only the listed identifiers are decoded and the share
// list follows their order. Otherwise all entries are decoded and the list
// is sorted by ascending x so that downstream subset enumeration is
// deterministic.
func DecodeShares(encoded map[string]EncodedShare, use []string) ([]Share, error) {

	ids := use
	if ids == nil {
		ids = make([]string, 0, len(encoded))
		for id := range encoded {
			ids = append(ids, id)
		}
	}

	shares := make([]Share, 0, len(ids))

	for _, id := range ids {

		enc, ok := encoded[id]
		if !ok {
			return nil, fmt.Errorf("cannot DecodeShares: no share with identifier %q", id)
		}

		x, ok := new(big.Int).SetString(id, 10)
		if !ok {
			return nil, fmt.Errorf("cannot DecodeShares: identifier %q is not a decimal integer", id)
		}

		base, err := strconv.Atoi(enc.Base)
		if err != nil {
			return nil, fmt.Errorf("cannot DecodeShares: share %q: invalid base %q", id, enc.Base)
		}

		y, err := bignum.ParseDigits(enc.Value, base)
		if err != nil {
			return nil, fmt.Errorf("cannot DecodeShares: share %q: %w", id, err)
		}

		shares = append(shares, Share{X: x, Y: y})
	}

	if use == nil {
		slices.SortFunc(shares, func(a, b Share) int { return a.X.Cmp(b.X) })
	}

	return shares, nil
}

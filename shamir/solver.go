package shamir

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Config parametrizes a solve.
type Config struct {
	// K is the reconstruction threshold: the number of shares defining the
	// polynomial, i.e. its degree plus one.
	K int `json:"k"`

	// N is the advertised total number of shares. Informational only; the
	// solver works from the shares it is actually given.
	N int `json:"n"`

	// Use optionally restricts which identifiers of the share mapping are
	// treated as shares. When nil, every entry is used.
	Use []string `json:"use,omitempty"`

	// Workers sets the number of goroutines evaluating candidate subsets.
	// Values below 2 select the sequential search.
	Workers int `json:"-"`
}

// Result is the outcome of a successful solve.
type Result struct {
	// Secret is the constant term of the winning polynomial, rendered as a
	// decimal string (or "num/den" should it not be an integer).
	Secret string `json:"secret"`

	// WrongShares lists the shares not on the winning polynomial as
	// [x, y] decimal-string pairs.
	WrongShares [][2]string `json:"wrong_shares"`

	// UsedShares lists the shares exactly on the winning polynomial as
	// [x, y] decimal-string pairs.
	UsedShares [][2]string `json:"used_shares"`

	// Polynomial maps "a0".."a{k-1}" to the coefficient of x^i.
	Polynomial map[string]string `json:"polynomial"`

	// Note names the reconstructed degree in human-readable form.
	Note string `json:"note"`
}

// Equal performs a deep equal.
// Fields are compared individually; comparing the whole receiver with
// cmp.Equal would dispatch back to this method.
func (r *Result) Equal(other *Result) (res bool) {
	if r == nil || other == nil {
		return r == other
	}

	res = r.Secret == other.Secret
	res = res && cmp.Equal(r.WrongShares, other.WrongShares)
	res = res && cmp.Equal(r.UsedShares, other.UsedShares)
	res = res && cmp.Equal(r.Polynomial, other.Polynomial)
	res = res && r.Note == other.Note

	return
}

// Solve decodes the encoded shares, runs the consensus search with the
// configured threshold and assembles the result.
//
// Returns an error wrapping [ErrInsufficientShares] when fewer shares than
// cfg.K are usable, and [ErrNoValidPolynomial] when no subset of shares
// defines a polynomial. Decoding failures abort the solve.
func Solve(cfg Config, encoded map[string]EncodedShare) (*Result, error) {

	if cfg.K < 1 {
		return nil, fmt.Errorf("cannot Solve: threshold must be >= 1 but is %d", cfg.K)
	}

	shares, err := DecodeShares(encoded, cfg.Use)
	if err != nil {
		return nil, fmt.Errorf("cannot Solve: %w", err)
	}

	var sr *SearchResult
	if cfg.Workers > 1 {
		sr, err = SearchConcurrent(shares, cfg.K, cfg.Workers)
	} else {
		sr, err = Search(shares, cfg.K)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot Solve: %w", err)
	}

	poly := make(map[string]string, len(sr.Polynomial))
	for i, c := range sr.Polynomial {
		poly[fmt.Sprintf("a%d", i)] = c.String()
	}

	return &Result{
		Secret:      sr.Polynomial[0].String(),
		WrongShares: renderShares(sr.Outliers),
		UsedShares:  renderShares(sr.Inliers),
		Polynomial:  poly,
		Note:        fmt.Sprintf("reconstructed polynomial of degree %d from %d shares", sr.Polynomial.Degree(), len(shares)),
	}, nil
}

func renderShares(shares []Share) [][2]string {
	out := make([][2]string, len(shares))
	for i, s := range shares {
		out[i] = [2]string{s.X.String(), s.Y.String()}
	}
	return out
}

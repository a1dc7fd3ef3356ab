package shamir

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ayushshinde13/hashira/utils/bignum"
	"github.com/ayushshinde13/hashira/utils/concurrency"
)

// SearchResult is the winning candidate of a consensus search: the
// polynomial reconstructed from the best subset, and the classification of
// every share against it.
type SearchResult struct {
	Polynomial bignum.Polynomial
	Inliers    []Share
	Outliers   []Share
}

// Search enumerates every k-element subset of the shares in lexicographic
// order by share index, interpolates each, and returns the candidate whose
// polynomial passes exactly through the largest number of shares. Ties are
// broken in favor of the earliest subset in enumeration order, so the
// result is deterministic.
//
// Subsets with a duplicated x coordinate are singular and are skipped.
// Returns an error wrapping [ErrInsufficientShares] when len(shares) < k,
// and [ErrNoValidPolynomial] when every subset was singular.
func Search(shares []Share, k int) (*SearchResult, error) {

	if err := checkSearchArgs("Search", shares, k); err != nil {
		return nil, err
	}

	var best *SearchResult

	for _, subset := range combinations(len(shares), k) {

		res, err := evaluateSubset(shares, subset)
		if errors.Is(err, bignum.ErrSingularInterpolation) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cannot Search: %w", err)
		}

		if best == nil || len(res.Inliers) > len(best.Inliers) {
			best = res
		}
	}

	if best == nil {
		return nil, fmt.Errorf("cannot Search: %w", ErrNoValidPolynomial)
	}

	return best, nil
}

// SearchConcurrent is [Search] with the subset evaluations distributed over
// the given number of workers. The reduction applies the same inlier-count
// and earliest-subset rules, so the result is identical to the sequential
// search.
func SearchConcurrent(shares []Share, k, workers int) (*SearchResult, error) {

	if err := checkSearchArgs("SearchConcurrent", shares, k); err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}

	subsets := combinations(len(shares), k)

	// Per-worker best candidate, tagged with its subset ordinal.
	type candidate struct {
		ord int
		res *SearchResult
	}

	accs := make([]*candidate, workers)
	for i := range accs {
		accs[i] = &candidate{ord: -1}
	}

	rm := concurrency.NewResourceManager(accs)

	chunk := (len(subsets) + workers - 1) / workers

	for start := 0; start < len(subsets); start += chunk {

		end := min(start+chunk, len(subsets))

		rm.Run(func(acc *candidate) error {
			for ord := start; ord < end; ord++ {
				res, err := evaluateSubset(shares, subsets[ord])
				if errors.Is(err, bignum.ErrSingularInterpolation) {
					continue
				}
				if err != nil {
					return err
				}
				// An accumulator may serve several chunks and see them out
				// of ordinal order, so ties also compare ordinals here.
				if acc.res == nil ||
					len(res.Inliers) > len(acc.res.Inliers) ||
					(len(res.Inliers) == len(acc.res.Inliers) && ord < acc.ord) {
					acc.ord, acc.res = ord, res
				}
			}
			return nil
		})
	}

	if err := rm.Wait(); err != nil {
		return nil, fmt.Errorf("cannot SearchConcurrent: %w", err)
	}

	var best *candidate
	for _, acc := range accs {
		if acc.res == nil {
			continue
		}
		if best == nil ||
			len(acc.res.Inliers) > len(best.res.Inliers) ||
			(len(acc.res.Inliers) == len(best.res.Inliers) && acc.ord < best.ord) {
			best = acc
		}
	}

	if best == nil {
		return nil, fmt.Errorf("cannot SearchConcurrent: %w", ErrNoValidPolynomial)
	}

	return best.res, nil
}

func checkSearchArgs(op string, shares []Share, k int) error {
	if k < 1 {
		return fmt.Errorf("cannot %s: threshold must be >= 1 but is %d", op, k)
	}
	if len(shares) < k {
		return fmt.Errorf("cannot %s: %w: have %d, need %d", op, ErrInsufficientShares, len(shares), k)
	}
	return nil
}

// evaluateSubset interpolates the shares selected by subset and classifies
// every share against the resulting polynomial by exact equality.
func evaluateSubset(shares []Share, subset []int) (*SearchResult, error) {

	xs := make([]*big.Int, len(subset))
	ys := make([]*big.Int, len(subset))
	for i, idx := range subset {
		xs[i] = shares[idx].X
		ys[i] = shares[idx].Y
	}

	p, err := bignum.Interpolate(xs, ys)
	if err != nil {
		return nil, err
	}

	res := &SearchResult{
		Polynomial: p,
		Inliers:    []Share{},
		Outliers:   []Share{},
	}

	for _, s := range shares {
		if p.Evaluate(s.X).Equal(bignum.NewRationalInt(s.Y)) {
			res.Inliers = append(res.Inliers, s)
		} else {
			res.Outliers = append(res.Outliers, s)
		}
	}

	return res, nil
}

// combinations returns every k-element subset of [0, n) as index slices in
// lexicographic order.
func combinations(n, k int) (subsets [][]int) {

	if k > n {
		return nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		subsets = append(subsets, append([]int(nil), idx...))

		// Advance to the lexicographic successor.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

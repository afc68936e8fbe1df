package stats

import "math/rand"

// Bootstrap — one resampled replica of s.
//
// Description:
//
//	Draws, with replacement, a new sample of the same length as s, each
//	element chosen independently and uniformly at random from s. Callers
//	repeat this many times (one replica per call) and take the spread of
//	the replica means as the statistical error.
//
// Determinism:
//   - rng==nil selects the fixed default stream (see rng.go), so
//     unseeded callers still get reproducible replicas.
//
// Errors:
//   - ErrEmptySeries — empty input.
//
// Complexity: O(n) time and space.
func Bootstrap(s []float64, rng *rand.Rand) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	r := rng
	if r == nil {
		r = RNGFromSeed(0)
	}

	out := make([]float64, len(s))
	for i := range out {
		out[i] = s[r.Intn(len(s))]
	}
	return out, nil
}

// BootstrapRows resamples whole rows of a rectangular batch with
// replacement along the leading axis. Selected rows are copied, never
// aliased, so mutating the result cannot touch caller-owned data.
//
// Errors:
//   - ErrEmptySeries — no rows.
//   - ErrRaggedRows  — rows of differing lengths.
//
// Complexity: O(n·w) time and space for n rows of width w.
func BootstrapRows(rows [][]float64, rng *rand.Rand) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySeries
	}
	if _, err := rectWidth(rows); err != nil {
		return nil, err
	}
	r := rng
	if r == nil {
		r = RNGFromSeed(0)
	}

	out := make([][]float64, len(rows))
	for i := range out {
		src := rows[r.Intn(len(rows))]
		row := make([]float64, len(src))
		copy(row, src)
		out[i] = row
	}
	return out, nil
}

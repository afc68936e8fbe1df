package stats

import "gonum.org/v1/gonum/stat"

// AutoCorrelation — unnormalized circular autocovariance.
//
// Description:
//
//	Estimates how long a measurement chain "remembers" its past. With
//	μ the sample mean, the value at lag t is
//
//	    acf[t] = (1/N) · Σ_i (s[i] − μ)(s[(i+t) mod N] − μ)
//
//	for t in [0, floor(N/2)). Indices wrap circularly, matching the
//	cyclic-shift ("roll") estimator; by the substitution i → i−t the
//	forward and backward wrap conventions are identical.
//
// The estimator is unnormalized: acf[0] equals the population variance
// of s. Callers divide by acf[0] if they need the normalized function,
// and integrate it to estimate the effective sample size.
//
// Errors:
//   - ErrEmptySeries — empty input.
//
// Complexity: O(n²) time, O(n) space.
func AutoCorrelation(s []float64) ([]float64, error) {
	n := len(s)
	if n == 0 {
		return nil, ErrEmptySeries
	}

	mean := stat.Mean(s, nil)
	centered := make([]float64, n)
	for i, v := range s {
		centered[i] = v - mean
	}

	lags := n / 2
	acf := make([]float64, lags)
	inv := 1.0 / float64(n)
	for t := 0; t < lags; t++ {
		var sum float64
		for i := 0; i < n; i++ {
			j := i + t
			if j >= n {
				j -= n
			}
			sum += centered[i] * centered[j]
		}
		acf[t] = sum * inv
	}
	return acf, nil
}

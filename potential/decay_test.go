package potential_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hadron/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wilsonLoops builds a synthetic loop array: loops[r][t-1] =
// amp·exp(−rate(r)·t) for t = 1..slices.
func wilsonLoops(amp float64, rates []float64, slices int) [][]float64 {
	out := make([][]float64, len(rates))
	for r, rate := range rates {
		row := make([]float64, slices)
		for i := range row {
			row[i] = amp * math.Exp(-rate*float64(i+1))
		}
		out[r] = row
	}
	return out
}

// TestFitDecayCurve_RoundTrip verifies recovery of amplitude and rate
// from a noiseless profile.
func TestFitDecayCurve_RoundTrip(t *testing.T) {
	loops := wilsonLoops(2.0, []float64{0.5}, 8)

	fit, err := potential.FitDecayCurve(loops[0], nil)
	require.NoError(t, err)
	assert.True(t, fit.Converged(), "status: %s", fit.Status)
	assert.InDelta(t, 2.0, fit.Amplitude, 1e-4)
	assert.InDelta(t, 0.5, fit.Rate, 1e-4)
}

// TestFitDecay_SpecScenario verifies the reference scenario: a
// (3 separations × 5 slices) array generated with (amp, rate) =
// (2.0, 0.5) per separation must recover rate within 1% everywhere.
func TestFitDecay_SpecScenario(t *testing.T) {
	loops := wilsonLoops(2.0, []float64{0.5, 0.5, 0.5}, 5)

	pots, err := potential.FitDecay(loops, nil)
	require.NoError(t, err)
	require.Len(t, pots, 3)
	for r, v := range pots {
		assert.InEpsilon(t, 0.5, v, 0.01, "separation %d", r+1)
	}
}

// TestFitDecay_PerSeparationRates verifies that each row is fitted
// independently: distinct rates come back per separation.
func TestFitDecay_PerSeparationRates(t *testing.T) {
	rates := []float64{0.4, 0.7, 1.1}
	loops := wilsonLoops(1.5, rates, 10)

	pots, err := potential.FitDecay(loops, nil)
	require.NoError(t, err)
	require.Len(t, pots, len(rates))
	for r, want := range rates {
		assert.InDelta(t, want, pots[r], 1e-3, "separation %d", r+1)
	}
}

// TestFitDecay_Validation verifies the shape sentinels.
func TestFitDecay_Validation(t *testing.T) {
	_, err := potential.FitDecay(nil, nil)
	assert.ErrorIs(t, err, potential.ErrEmptyCurve)

	_, err = potential.FitDecay([][]float64{{1, 2}, {1}}, nil)
	assert.ErrorIs(t, err, potential.ErrRaggedRows)

	_, err = potential.FitDecayCurve([]float64{1}, nil)
	assert.ErrorIs(t, err, potential.ErrCurveTooShort)
}

// TestFitDecayBatch_Members verifies member-by-member recursion over a
// batch of loop arrays.
func TestFitDecayBatch_Members(t *testing.T) {
	batch := [][][]float64{
		wilsonLoops(2.0, []float64{0.5, 0.6}, 8),
		wilsonLoops(2.0, []float64{0.7, 0.8}, 8),
	}

	out, err := potential.FitDecayBatch(batch, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.5, out[0][0], 1e-3)
	assert.InDelta(t, 0.8, out[1][1], 1e-3)

	_, err = potential.FitDecayBatch(nil, nil)
	assert.ErrorIs(t, err, potential.ErrEmptyCurve)
}

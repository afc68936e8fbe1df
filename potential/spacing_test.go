package potential_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hadron/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// physicalLoops builds Wilson loops whose decay rates trace a confining
// potential V(r) = linear·r + coulomb/r + offset over r = 1..seps.
func physicalLoops(linear, coulomb, offset float64, seps, slices int) [][]float64 {
	rates := make([]float64, seps)
	for r := range rates {
		rates[r] = potential.PairPotential(linear, coulomb, offset, float64(r+1))
	}
	return wilsonLoops(2.0, rates, slices)
}

// TestLatticeSpacing_Positive verifies the full composition on loops
// generated from a confining potential: the spacing is a single positive
// real number and matches the closed-form Sommer value.
func TestLatticeSpacing_Positive(t *testing.T) {
	const linear, coulomb, offset = 0.3, 0.2, 0.1
	loops := physicalLoops(linear, coulomb, offset, 4, 10)

	a, err := potential.LatticeSpacing(loops, nil)
	require.NoError(t, err)
	assert.Greater(t, a, 0.0)

	want := 0.5 / math.Sqrt((1.65+coulomb)/linear)
	assert.InDelta(t, want, a, 1e-3, "Sommer relation on recovered parameters")
}

// TestLatticeSpacingBatch_PerReplica verifies one spacing per batch
// member and identical values for identical replicas.
func TestLatticeSpacingBatch_PerReplica(t *testing.T) {
	loops := physicalLoops(0.3, 0.2, 0.1, 4, 10)
	batch := [][][]float64{loops, loops}

	out, err := potential.LatticeSpacingBatch(batch, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, out[0], out[1], 1e-12, "identical replicas, identical spacings")
	assert.Greater(t, out[0], 0.0)

	_, err = potential.LatticeSpacingBatch(nil, nil)
	assert.ErrorIs(t, err, potential.ErrEmptyCurve)
}

// TestLatticeSpacing_NonPhysical verifies that a deconfining (negative
// linear term) potential is rejected rather than yielding NaN.
func TestLatticeSpacing_NonPhysical(t *testing.T) {
	loops := physicalLoops(-0.3, 0.2, 2.0, 4, 10)

	_, err := potential.LatticeSpacing(loops, nil)
	assert.ErrorIs(t, err, potential.ErrNonPhysical)
}

// TestLatticeSpacing_ShapeErrors verifies pass-through of shape errors
// from the decay stage.
func TestLatticeSpacing_ShapeErrors(t *testing.T) {
	_, err := potential.LatticeSpacing(nil, nil)
	assert.ErrorIs(t, err, potential.ErrEmptyCurve)

	_, err = potential.LatticeSpacing([][]float64{{1, 2, 3}, {1, 2}}, nil)
	assert.ErrorIs(t, err, potential.ErrRaggedRows)
}

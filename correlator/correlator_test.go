package correlator_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hadron/correlator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// diagonalPropagator builds a propagator that is diagonal in spin and
// colour with the per-time profile amp(t) on every spatial site,
// imitating a free-field-like amplitude.
func diagonalPropagator(t *testing.T, timeExtent, sites int, amp func(t int) complex128) *correlator.Propagator {
	t.Helper()
	p, err := correlator.NewPropagator(timeExtent, sites)
	require.NoError(t, err)
	for ts := 0; ts < timeExtent; ts++ {
		for x := 0; x < sites; x++ {
			for s := 0; s < correlator.NumSpins; s++ {
				for c := 0; c < correlator.NumColours; c++ {
					require.NoError(t, p.Set(ts, x, s, s, c, c, amp(ts)))
				}
			}
		}
	}
	return p
}

// TestPropagator_AtSetRoundTrip verifies element access and the
// read-back of stored amplitudes.
func TestPropagator_AtSetRoundTrip(t *testing.T) {
	p, err := correlator.NewPropagator(2, 3)
	require.NoError(t, err)

	want := complex(1.5, -2.5)
	require.NoError(t, p.Set(1, 2, 3, 0, 2, 1, want))

	got, err := p.At(1, 2, 3, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	other, err := p.At(0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), other, "untouched amplitudes stay zero")
}

// TestPropagator_Bounds verifies the index sentinels on every axis.
func TestPropagator_Bounds(t *testing.T) {
	p, err := correlator.NewPropagator(2, 3)
	require.NoError(t, err)

	cases := [][6]int{
		{2, 0, 0, 0, 0, 0},
		{0, 3, 0, 0, 0, 0},
		{0, 0, 4, 0, 0, 0},
		{0, 0, 0, 4, 0, 0},
		{0, 0, 0, 0, 3, 0},
		{0, 0, 0, 0, 0, 3},
		{-1, 0, 0, 0, 0, 0},
	}
	for _, c := range cases {
		_, err := p.At(c[0], c[1], c[2], c[3], c[4], c[5])
		assert.ErrorIs(t, err, correlator.ErrIndexOutOfRange, "indices %v", c)
	}

	_, err = correlator.NewPropagator(0, 3)
	assert.ErrorIs(t, err, correlator.ErrBadShape)
}

// TestCorrelate_Validation verifies nil, shape and gamma sentinels.
func TestCorrelate_Validation(t *testing.T) {
	basis := correlator.NewDiracBasis()
	p1, err := correlator.NewPropagator(2, 2)
	require.NoError(t, err)
	p2, err := correlator.NewPropagator(2, 4)
	require.NoError(t, err)

	_, err = basis.Correlate(nil, p1, basis.Gamma5())
	assert.ErrorIs(t, err, correlator.ErrNilPropagator)

	_, err = basis.Correlate(p1, p2, basis.Gamma5())
	assert.ErrorIs(t, err, correlator.ErrShapeMismatch)

	_, err = basis.Correlate(p1, p1, nil)
	assert.ErrorIs(t, err, correlator.ErrBadGamma)

	_, err = basis.Correlate(p1, p1, mat.NewCDense(2, 2, nil))
	assert.ErrorIs(t, err, correlator.ErrBadGamma)
}

// TestCorrelate_DiagonalClosedForm verifies the contraction against the
// closed form for a spin/colour-diagonal propagator: with Γ = identity
// the per-site value is NumSpins·NumColours·|amp|².
func TestCorrelate_DiagonalClosedForm(t *testing.T) {
	const timeExtent, sites = 3, 2
	amp := func(ts int) complex128 { return complex(float64(ts+1), 0.5) }
	p := diagonalPropagator(t, timeExtent, sites, amp)

	basis := correlator.NewDiracBasis()
	identity := basis.Interpolators()[0]

	pos, err := basis.Correlate(p, p, identity)
	require.NoError(t, err)
	require.Len(t, pos, timeExtent*sites)

	for ts := 0; ts < timeExtent; ts++ {
		a := amp(ts)
		want := float64(correlator.NumSpins*correlator.NumColours) *
			(real(a)*real(a) + imag(a)*imag(a))
		for x := 0; x < sites; x++ {
			assert.InDelta(t, want, pos[ts*sites+x], 1e-10, "t=%d x=%d", ts, x)
		}
	}
}

// TestCorrelate_TimeReversalSmoke verifies that Γ = identity with
// p1 == p2 on a time-symmetric free-field-like amplitude yields a
// correlator symmetric under time reversal (modulo the t=0 slice).
func TestCorrelate_TimeReversalSmoke(t *testing.T) {
	const timeExtent, sites = 8, 8
	amp := func(ts int) complex128 {
		d := ts
		if timeExtent-ts < d {
			d = timeExtent - ts
		}
		return complex(math.Exp(-0.4*float64(d)), 0)
	}
	p := diagonalPropagator(t, timeExtent, sites, amp)

	basis := correlator.NewDiracBasis()
	pos, err := basis.Correlate(p, p, basis.Interpolators()[0])
	require.NoError(t, err)

	proj, err := correlator.ProjectMomentum(pos,
		correlator.LatticeShape{timeExtent, 2, 2, 2}, correlator.Momentum{})
	require.NoError(t, err)
	require.Len(t, proj, timeExtent)

	for ts := 1; ts < timeExtent; ts++ {
		mirror := timeExtent - ts
		assert.InDelta(t, proj[mirror], proj[ts], 1e-9*math.Abs(proj[ts])+1e-12,
			"C(%d) vs C(%d)", ts, mirror)
	}
}

// TestCorrelate_InputsUntouched verifies that the engine never mutates
// its propagators.
func TestCorrelate_InputsUntouched(t *testing.T) {
	p := diagonalPropagator(t, 2, 2, func(int) complex128 { return 2 + 1i })
	basis := correlator.NewDiracBasis()

	_, err := basis.Correlate(p, p, basis.Gamma5())
	require.NoError(t, err)

	v, err := p.At(0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(2+1i), v)
}

package correlator_test

import (
	"testing"

	"github.com/katalvlaran/hadron/correlator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// mulSpin returns the 4×4 product a·b.
func mulSpin(a, b *mat.CDense) *mat.CDense {
	ar, _ := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ar, bc, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())
	return out
}

// assertSpinEqual compares two 4×4 complex matrices entrywise.
func assertSpinEqual(t *testing.T, want, got mat.CMatrix, msg string) {
	t.Helper()
	for i := 0; i < correlator.NumSpins; i++ {
		for j := 0; j < correlator.NumSpins; j++ {
			assert.InDelta(t, real(want.At(i, j)), real(got.At(i, j)), 1e-12, "%s: re(%d,%d)", msg, i, j)
			assert.InDelta(t, imag(want.At(i, j)), imag(got.At(i, j)), 1e-12, "%s: im(%d,%d)", msg, i, j)
		}
	}
}

// spinIdentity builds the 4×4 identity.
func spinIdentity() *mat.CDense {
	id := mat.NewCDense(correlator.NumSpins, correlator.NumSpins, nil)
	for i := 0; i < correlator.NumSpins; i++ {
		id.Set(i, i, 1)
	}
	return id
}

// TestNewDiracBasis_Counts verifies the 16-matrix library and its fixed
// group decomposition.
func TestNewDiracBasis_Counts(t *testing.T) {
	basis := correlator.NewDiracBasis()

	flat := basis.Interpolators()
	require.Len(t, flat, correlator.NumInterpolators)

	groups := basis.Groups()
	require.Len(t, groups, 5)
	names := make([]string, len(groups))
	sizes := make([]int, len(groups))
	for i, g := range groups {
		names[i] = g.Name
		sizes[i] = len(g.Matrices)
	}
	assert.Equal(t, []string{"scalar", "pseudoscalar", "vector", "axial", "tensor"}, names)
	assert.Equal(t, []int{1, 1, 4, 4, 6}, sizes)
}

// TestNewDiracBasis_StableOrder verifies that flattening is reproducible
// across constructions: correlator columns must align between runs.
func TestNewDiracBasis_StableOrder(t *testing.T) {
	a := correlator.NewDiracBasis().Interpolators()
	b := correlator.NewDiracBasis().Interpolators()

	require.Len(t, b, len(a))
	for k := range a {
		assertSpinEqual(t, a[k], b[k], "interpolator order must be stable")
	}

	// Column anchors: scalar first, pseudoscalar second.
	assertSpinEqual(t, spinIdentity(), a[0], "column 1 is the scalar channel")
	assertSpinEqual(t, correlator.NewDiracBasis().Gamma5(), a[1], "column 2 is the pseudoscalar channel")
}

// TestNewDiracBasis_GammaAlgebra verifies γ² = 1 for γ₅ and the vector
// gammas, the algebra the contraction relies on.
func TestNewDiracBasis_GammaAlgebra(t *testing.T) {
	basis := correlator.NewDiracBasis()
	id := spinIdentity()

	sq := mulSpin(basis.Gamma5(), basis.Gamma5())
	assertSpinEqual(t, id, sq, "gamma5 squared")

	for _, g := range basis.Groups()[2].Matrices { // vector channel
		gg := mulSpin(g, g)
		assertSpinEqual(t, id, gg, "vector gamma squared")
	}
}

// TestNewDiracBasis_VectorAnticommute verifies {γ₁,γ₂} = 0, a spot check
// of the Clifford algebra.
func TestNewDiracBasis_VectorAnticommute(t *testing.T) {
	vec := correlator.NewDiracBasis().Groups()[2].Matrices

	ab := mulSpin(vec[0], vec[1])
	ba := mulSpin(vec[1], vec[0])

	for i := 0; i < correlator.NumSpins; i++ {
		for j := 0; j < correlator.NumSpins; j++ {
			sum := ab.At(i, j) + ba.At(i, j)
			assert.InDelta(t, 0, real(sum), 1e-12, "re(%d,%d)", i, j)
			assert.InDelta(t, 0, imag(sum), 1e-12, "im(%d,%d)", i, j)
		}
	}
}

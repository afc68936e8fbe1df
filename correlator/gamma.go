package correlator

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// NumInterpolators is the number of independent spin-space interpolating
// matrices: 1 scalar + 1 pseudoscalar + 4 vector + 4 axial + 6 tensor.
const NumInterpolators = 16

// GammaGroup is one named channel of interpolating matrices.
type GammaGroup struct {
	Name     string
	Matrices []*mat.CDense
}

// GammaBasis is the immutable gamma-matrix library: γ₅ plus the 16
// interpolators in five named groups. Build it once with NewDiracBasis
// and pass it explicitly to the engine and driver; the matrices are
// shared read-only and must not be modified.
type GammaBasis struct {
	gamma5 *mat.CDense
	groups []GammaGroup
	flat   []*mat.CDense
}

// NewDiracBasis constructs the library in the Dirac–Pauli representation
// (γ₄ diagonal, γ₅ = antidiagonal identity blocks, γ₅² = 1).
//
// Group order is fixed and reproducible:
//
//	scalar        1
//	pseudoscalar  γ₅
//	vector        γ₁ γ₂ γ₃ γ₄
//	axial         γ₅γ₁ γ₅γ₂ γ₅γ₃ γ₅γ₄
//	tensor        γ₁γ₂ γ₁γ₃ γ₁γ₄ γ₂γ₃ γ₂γ₄ γ₃γ₄
//
// Interpolators flattens the groups in this order, so correlator column
// j+1 always refers to the same channel across runs.
func NewDiracBasis() *GammaBasis {
	i := complex(0, 1)

	identity := spinMatrix(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	gamma1 := spinMatrix(
		0, 0, 0, -i,
		0, 0, -i, 0,
		0, i, 0, 0,
		i, 0, 0, 0,
	)
	gamma2 := spinMatrix(
		0, 0, 0, -1,
		0, 0, 1, 0,
		0, 1, 0, 0,
		-1, 0, 0, 0,
	)
	gamma3 := spinMatrix(
		0, 0, -i, 0,
		0, 0, 0, i,
		i, 0, 0, 0,
		0, -i, 0, 0,
	)
	gamma4 := spinMatrix(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, -1,
	)
	gamma5 := spinMatrix(
		0, 0, 1, 0,
		0, 0, 0, 1,
		1, 0, 0, 0,
		0, 1, 0, 0,
	)

	vector := []*mat.CDense{gamma1, gamma2, gamma3, gamma4}

	axial := make([]*mat.CDense, len(vector))
	for k, g := range vector {
		axial[k] = mulSpin(gamma5, g)
	}

	var tensor []*mat.CDense
	for k := 0; k < len(vector); k++ {
		for l := k + 1; l < len(vector); l++ {
			tensor = append(tensor, mulSpin(vector[k], vector[l]))
		}
	}

	groups := []GammaGroup{
		{Name: "scalar", Matrices: []*mat.CDense{identity}},
		{Name: "pseudoscalar", Matrices: []*mat.CDense{gamma5}},
		{Name: "vector", Matrices: vector},
		{Name: "axial", Matrices: axial},
		{Name: "tensor", Matrices: tensor},
	}

	var flat []*mat.CDense
	for _, g := range groups {
		flat = append(flat, g.Matrices...)
	}

	return &GammaBasis{gamma5: gamma5, groups: groups, flat: flat}
}

// Gamma5 returns γ₅ (shared, read-only).
func (b *GammaBasis) Gamma5() *mat.CDense { return b.gamma5 }

// Groups returns the named channels in their fixed order (shared,
// read-only).
func (b *GammaBasis) Groups() []GammaGroup { return b.groups }

// Interpolators returns the 16 matrices flattened in group order
// (shared, read-only).
func (b *GammaBasis) Interpolators() []*mat.CDense { return b.flat }

// spinMatrix builds a 4×4 complex spin matrix from row-major entries.
func spinMatrix(rows ...complex128) *mat.CDense {
	return mat.NewCDense(NumSpins, NumSpins, rows)
}

// mulSpin returns the 4×4 product a·b.
func mulSpin(a, b *mat.CDense) *mat.CDense {
	ar, _ := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ar, bc, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())
	return out
}

package correlator

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Correlate — position-space two-point function for one interpolator.
//
// Description:
//
//	Computes, for every lattice site x,
//
//	    C(x) = Re Σ_{αβ,ab} P1(x,α,β,a,b) · P2(x,α,β,a,b)
//	    P1(x,α,β,a,b) = Σ_l (Γγ₅)[α,l] · conj(S₁(x,l,β,a,b))
//	    P2(x,α,β,a,b) = Σ_m (γ₅Γ)[β,m] · S₂(x,α,m,a,b)
//
//	i.e. the four-index spin/colour contraction
//	(Γγ₅)ᵀ·conj(S₁)·(γ₅Γ)·S₂ decomposed into two half-contractions
//	combined by an elementwise product-and-sum. The transpose of S₁ is
//	taken implicitly through the index pattern; the imaginary part is
//	discarded by contract.
//
// The result has one value per lattice site, flattened time-major
// (length TimeExtent·Sites); feed it to ProjectMomentum for the
// momentum-projected time series.
//
// Errors:
//   - ErrNilPropagator — either propagator nil.
//   - ErrShapeMismatch — propagators of differing dimensions.
//   - ErrBadGamma      — gamma nil or not 4×4.
//
// Complexity: O(V·4·4·3·3·8) with V the lattice volume; inputs are
// never mutated.
func (b *GammaBasis) Correlate(p1, p2 *Propagator, gamma *mat.CDense) ([]float64, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilPropagator
	}
	if !p1.sameShape(p2) {
		return nil, ErrShapeMismatch
	}
	if err := checkGamma(gamma); err != nil {
		return nil, err
	}

	// The two half-contraction matrices Γγ₅ and γ₅Γ, pulled out of the
	// site loop into flat spin tables.
	left := mulSpin(gamma, b.gamma5)
	right := mulSpin(b.gamma5, gamma)

	var g2, g3 [NumSpins][NumSpins]complex128
	for i := 0; i < NumSpins; i++ {
		for j := 0; j < NumSpins; j++ {
			g2[i][j] = left.At(i, j)
			g3[i][j] = right.At(i, j)
		}
	}

	volume := p1.timeExtent * p1.sites
	out := make([]float64, volume)
	for v := 0; v < volume; v++ {
		var acc complex128
		for alpha := 0; alpha < NumSpins; alpha++ {
			for beta := 0; beta < NumSpins; beta++ {
				for a := 0; a < NumColours; a++ {
					for c := 0; c < NumColours; c++ {
						var s1, s2 complex128
						for l := 0; l < NumSpins; l++ {
							s1 += g2[alpha][l] * cmplx.Conj(p1.data[p1.index(v, l, beta, a, c)])
						}
						for m := 0; m < NumSpins; m++ {
							s2 += g3[beta][m] * p2.data[p2.index(v, alpha, m, a, c)]
						}
						acc += s1 * s2
					}
				}
			}
		}
		out[v] = real(acc)
	}
	return out, nil
}

// checkGamma validates an interpolating matrix.
func checkGamma(gamma *mat.CDense) error {
	if gamma == nil {
		return ErrBadGamma
	}
	if r, c := gamma.Dims(); r != NumSpins || c != NumSpins {
		return ErrBadGamma
	}
	return nil
}

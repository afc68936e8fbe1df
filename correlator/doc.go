// Package correlator computes meson two-point correlation functions from
// quark propagators: spin/colour-contracted position-space correlators,
// momentum projection over the spatial lattice, and the spectroscopy
// driver that sweeps all 16 interpolating operators.
//
// 🚀 What is correlator?
//
//	A quark propagator S(x) is a complex tensor over lattice site, two
//	spin and two colour indices. For an interpolating matrix Γ the
//	two-point function is
//
//	    C(x) = Re Σ_{spin,colour} (Γγ₅)ᵀ · conj(S₁(x)) · (γ₅Γ) · S₂(x)
//
//	summed per lattice site, then projected onto a definite lattice
//	momentum by phase-weighted summation over each time-slice.
//
// ✨ Key design points:
//
//   - The gamma-matrix library is an immutable basis object built once
//     by NewDiracBasis and passed explicitly — no package-level state.
//     Its 16 interpolators flatten in a fixed group order (scalar,
//     pseudoscalar, vector, axial, tensor) so correlator columns align
//     reproducibly across runs.
//   - The engine treats propagators as read-only and decomposes the
//     four-index contraction into two half-contractions (Γγ₅ against
//     conj(S₁), γ₅Γ against S₂) combined by elementwise product-and-sum
//     — mathematically identical, much cheaper.
//   - Only the real part survives, by contract: physical two-point
//     functions are real for the symmetric interpolators used here.
//
// ⚙️ Usage:
//
//	basis := correlator.NewDiracBasis()
//	spec, err := basis.MesonSpectrum(src1, src2, shape, mom, report.Discard)
//	// spec[pair][t][0]   — time index
//	// spec[pair][t][1:]  — the 16 interpolator correlators
//
// Propagator loading is an external collaborator behind the
// PropagatorSource interface; MemSource is the ordered in-memory
// reference implementation.
package correlator

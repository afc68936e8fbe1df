package potential

import "math"

// Sommer-scale constants. The Sommer radius r₀ ≈ 0.5 fm is defined by
// r²·F(r)|_{r₀} = 1.65; with the additive-Coulomb fit convention the
// dimensionless solution is r₀/a = √((1.65 + coulomb)/linear).
const (
	sommerRadiusFm = 0.5
	sommerForce    = 1.65
)

// LatticeSpacing — physical lattice spacing from Wilson loops.
//
// Description:
//
//	Composes the two fits and the Sommer relation:
//	  1. FitDecay extracts the effective potential V(r) per separation.
//	  2. FitPotential fits V(r) = linear·r + coulomb/r + offset.
//	  3. a = 0.5 / √((1.65 + coulomb)/linear)  [fm].
//
// Errors:
//   - ErrNonPhysical — the radicand is not positive (no real spacing).
//   - Shape and fit errors from the composed stages, passed through.
//
// The decay stage runs with opts as-is; the potential stage keeps its
// own warning default unless the caller overrides it — pass one
// FitOptions value to both stages for uniform convergence checking.
func LatticeSpacing(loops [][]float64, opts *FitOptions) (float64, error) {
	potentials, err := FitDecay(loops, opts)
	if err != nil {
		return 0, err
	}
	fit, err := FitPotential(potentials, opts)
	if err != nil {
		return 0, err
	}
	return sommerSpacing(fit)
}

// LatticeSpacingBatch computes one spacing per batch member (e.g. per
// bootstrap replica of the Wilson-loop array).
//
// Errors:
//   - ErrEmptyCurve — empty batch.
//   - Per-member errors from LatticeSpacing, passed through.
func LatticeSpacingBatch(batches [][][]float64, opts *FitOptions) ([]float64, error) {
	if len(batches) == 0 {
		return nil, ErrEmptyCurve
	}

	out := make([]float64, len(batches))
	for i, loops := range batches {
		a, err := LatticeSpacing(loops, opts)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// sommerSpacing applies the Sommer relation to fitted parameters.
func sommerSpacing(fit PotentialFit) (float64, error) {
	radicand := (sommerForce + fit.Coulomb) / fit.Linear
	if radicand <= 0 || math.IsNaN(radicand) || math.IsInf(radicand, 0) {
		return 0, ErrNonPhysical
	}
	return sommerRadiusFm / math.Sqrt(radicand), nil
}

package potential

import "github.com/katalvlaran/hadron/leastsq"

// potentialParams is the pair-potential parameter count (linear,
// coulomb, offset).
const potentialParams = 3

// PairPotential evaluates the static quark pair-potential model
//
//	V(r) = linear·r + coulomb/r + offset
//
// at separation r (additive Coulombic sign convention).
func PairPotential(linear, coulomb, offset, r float64) float64 {
	return linear*r + coulomb/r + offset
}

// FitPotential — three-parameter pair-potential fit.
//
// Description:
//
//	Fits V(r) = linear·r + coulomb/r + offset to curve, where curve[i]
//	is the potential at integer separation r = i+1, by nonlinear least
//	squares from the initial guess (1, 1, 1).
//
// Failure policy:
//
//	A non-converged solve is soft: when opts.WarnNonConverged is set
//	(the default here) one warning line goes to the reporter, and the
//	best-available parameters are returned either way. Callers needing
//	strict fits check PotentialFit.Converged().
//
// Errors:
//   - ErrEmptyCurve    — empty input.
//   - ErrCurveTooShort — fewer than 3 points.
//   - leastsq input errors, passed through.
//
// Complexity: one leastsq.Solve over len(curve) residuals.
func FitPotential(curve []float64, opts *FitOptions) (PotentialFit, error) {
	if len(curve) == 0 {
		return PotentialFit{}, ErrEmptyCurve
	}
	if len(curve) < potentialParams {
		return PotentialFit{}, ErrCurveTooShort
	}
	o := DefaultPotentialOptions()
	if opts != nil {
		o = *opts
	}

	residual := func(p []float64) []float64 {
		out := make([]float64, len(curve))
		for i, v := range curve {
			out[i] = v - PairPotential(p[0], p[1], p[2], float64(i+1))
		}
		return out
	}

	res, err := leastsq.Solve(residual, []float64{1, 1, 1}, &o.Solver)
	if err != nil {
		return PotentialFit{}, err
	}
	if !res.Converged() && o.WarnNonConverged {
		o.reporter().Printf("potential: pair-potential fit did not converge (%s) after %d iterations",
			res.Status, res.Iterations)
	}

	return PotentialFit{
		Linear:  res.Params[0],
		Coulomb: res.Params[1],
		Offset:  res.Params[2],
		Status:  res.Status,
	}, nil
}

// FitPotentialBatch fits each replica curve independently and stacks the
// results; replica i of the output corresponds to curves[i]. Curves must
// be rectangular so replicas stay comparable.
//
// Errors:
//   - ErrEmptyCurve — no curves.
//   - ErrRaggedRows — curves of differing lengths.
//   - Per-curve errors from FitPotential, passed through.
func FitPotentialBatch(curves [][]float64, opts *FitOptions) ([]PotentialFit, error) {
	if len(curves) == 0 {
		return nil, ErrEmptyCurve
	}
	if err := requireRect(curves); err != nil {
		return nil, err
	}

	out := make([]PotentialFit, len(curves))
	for i, curve := range curves {
		fit, err := FitPotential(curve, opts)
		if err != nil {
			return nil, err
		}
		out[i] = fit
	}
	return out, nil
}

// requireRect validates that all rows share one length.
func requireRect(rows [][]float64) error {
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != width {
			return ErrRaggedRows
		}
	}
	return nil
}

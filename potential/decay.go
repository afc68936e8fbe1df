package potential

import (
	"math"

	"github.com/katalvlaran/hadron/leastsq"
)

// decayParams is the exponential-decay parameter count (amplitude, rate).
const decayParams = 2

// FitDecayCurve — two-parameter exponential-decay fit of one time profile.
//
// Description:
//
//	Fits W(t) = amp·exp(−rate·t) to profile, where profile[i] is the
//	Wilson-loop value at time slice t = i+1, from the initial guess
//	(1, 1). The fitted rate is the effective potential at the profile's
//	spatial separation.
//
// Failure policy mirrors FitPotential, but the decay defaults keep
// WarnNonConverged off (the historically silent fitter); the Status on
// the returned DecayFit still exposes non-convergence.
//
// Errors:
//   - ErrEmptyCurve    — empty profile.
//   - ErrCurveTooShort — fewer than 2 points.
//   - leastsq input errors, passed through.
func FitDecayCurve(profile []float64, opts *FitOptions) (DecayFit, error) {
	if len(profile) == 0 {
		return DecayFit{}, ErrEmptyCurve
	}
	if len(profile) < decayParams {
		return DecayFit{}, ErrCurveTooShort
	}
	o := DefaultDecayOptions()
	if opts != nil {
		o = *opts
	}

	residual := func(p []float64) []float64 {
		out := make([]float64, len(profile))
		for i, v := range profile {
			out[i] = v - p[0]*math.Exp(-p[1]*float64(i+1))
		}
		return out
	}

	res, err := leastsq.Solve(residual, []float64{1, 1}, &o.Solver)
	if err != nil {
		return DecayFit{}, err
	}
	if !res.Converged() && o.WarnNonConverged {
		o.reporter().Printf("potential: decay fit did not converge (%s) after %d iterations",
			res.Status, res.Iterations)
	}

	return DecayFit{
		Amplitude: res.Params[0],
		Rate:      res.Params[1],
		Status:    res.Status,
	}, nil
}

// FitDecay — effective potential per separation.
//
// Description:
//
//	loops[r] holds the Wilson-loop time profile at spatial separation
//	r+1; each row is fitted independently by FitDecayCurve and the
//	fitted rate becomes the effective potential V(r+1). The output has
//	one value per row.
//
// Errors:
//   - ErrEmptyCurve — no rows.
//   - ErrRaggedRows — rows of differing lengths.
//   - Per-row errors from FitDecayCurve, passed through.
func FitDecay(loops [][]float64, opts *FitOptions) ([]float64, error) {
	if len(loops) == 0 {
		return nil, ErrEmptyCurve
	}
	if err := requireRect(loops); err != nil {
		return nil, err
	}

	out := make([]float64, len(loops))
	for i, profile := range loops {
		fit, err := FitDecayCurve(profile, opts)
		if err != nil {
			return nil, err
		}
		out[i] = fit.Rate
	}
	return out, nil
}

// FitDecayBatch applies FitDecay to each batch member (e.g. bootstrap
// replicas of the Wilson-loop array) independently.
//
// Errors:
//   - ErrEmptyCurve — empty batch.
//   - Per-member errors from FitDecay, passed through.
func FitDecayBatch(batches [][][]float64, opts *FitOptions) ([][]float64, error) {
	if len(batches) == 0 {
		return nil, ErrEmptyCurve
	}

	out := make([][]float64, len(batches))
	for i, loops := range batches {
		pots, err := FitDecay(loops, opts)
		if err != nil {
			return nil, err
		}
		out[i] = pots
	}
	return out, nil
}

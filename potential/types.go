// Package potential: options and fit result types.
package potential

import (
	"github.com/katalvlaran/hadron/leastsq"
	"github.com/katalvlaran/hadron/report"
)

// Defaults for the two fitters. The asymmetric warning defaults preserve
// the reference pipeline's observed behavior (potential fit warns on
// non-convergence, decay fit does not); see the package comment.
const (
	// DefaultWarnPotential — FitPotential warns by default.
	DefaultWarnPotential = true

	// DefaultWarnDecay — FitDecay stays silent by default.
	DefaultWarnDecay = false
)

// FitOptions configures a fitter run. A nil *FitOptions means the
// fitter-specific defaults (DefaultPotentialOptions or
// DefaultDecayOptions).
type FitOptions struct {
	// Solver is passed through to leastsq.Solve.
	Solver leastsq.Options

	// Reporter receives non-convergence warnings. Never read back;
	// report.Discard silences warnings entirely.
	Reporter report.Reporter

	// WarnNonConverged emits one warning line per non-converged fit.
	// This is the uniform convergence-check hook: set it identically on
	// both fitters for symmetric checking.
	WarnNonConverged bool
}

// DefaultPotentialOptions returns the defaults used by FitPotential.
func DefaultPotentialOptions() FitOptions {
	return FitOptions{
		Solver:           leastsq.DefaultOptions(),
		Reporter:         report.Discard,
		WarnNonConverged: DefaultWarnPotential,
	}
}

// DefaultDecayOptions returns the defaults used by FitDecay.
func DefaultDecayOptions() FitOptions {
	return FitOptions{
		Solver:           leastsq.DefaultOptions(),
		Reporter:         report.Discard,
		WarnNonConverged: DefaultWarnDecay,
	}
}

// reporter returns the configured sink, falling back to Discard.
func (o *FitOptions) reporter() report.Reporter {
	if o.Reporter == nil {
		return report.Discard
	}
	return o.Reporter
}

// PotentialFit holds the three pair-potential parameters together with
// the solver status, immutable once returned.
type PotentialFit struct {
	// Linear is the string-tension (confining) coefficient of r.
	Linear float64

	// Coulomb is the Coulombic coefficient of 1/r (additive convention).
	Coulomb float64

	// Offset is the constant term.
	Offset float64

	// Status records how the underlying least-squares run terminated.
	Status leastsq.Status
}

// Converged reports whether the underlying fit converged.
func (f PotentialFit) Converged() bool { return f.Status.Converged() }

// Eval evaluates the fitted potential at separation r.
func (f PotentialFit) Eval(r float64) float64 {
	return PairPotential(f.Linear, f.Coulomb, f.Offset, r)
}

// DecayFit holds the two exponential-decay parameters for one time
// profile; Rate is the effective potential at that separation.
type DecayFit struct {
	Amplitude float64
	Rate      float64

	// Status records how the underlying least-squares run terminated.
	Status leastsq.Status
}

// Converged reports whether the underlying fit converged.
func (f DecayFit) Converged() bool { return f.Status.Converged() }

// Package leastsq: options, statuses and the result type.
package leastsq

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultMaxIterations caps the outer iteration count; the solver
	// always terminates within this many accepted-or-rejected steps.
	DefaultMaxIterations = 200

	// DefaultTolerance is the relative cost-decrease threshold: an
	// accepted step improving the cost by no more than
	// Tolerance·(1+cost) stops with StatusSmallResidual.
	DefaultTolerance = 1e-10

	// DefaultStepTolerance stops with StatusSmallStep once an accepted
	// step satisfies ‖δ‖ ≤ StepTolerance·(1+‖p‖).
	DefaultStepTolerance = 1e-12

	// DefaultGradientTolerance stops with StatusSmallGradient once
	// max|Jᵀr| falls below it.
	DefaultGradientTolerance = 1e-12

	// DefaultDamping is the initial Levenberg–Marquardt λ.
	DefaultDamping = 1e-3

	// DefaultDampingScale is the multiplicative λ schedule: divide on
	// accepted steps, multiply on rejected ones.
	DefaultDampingScale = 10.0

	// DefaultJacobianStep is the relative forward-difference step used
	// for the numerical Jacobian: h_j = JacobianStep·max(|p_j|, 1).
	DefaultJacobianStep = 1e-8
)

// Damping bounds. λ is clamped below by minDamping after successful
// steps and treated as stalled once it exceeds maxDamping without any
// step being accepted.
const (
	minDamping = 1e-12
	maxDamping = 1e14
)

// ResidualFunc evaluates the residual vector r(p). The returned slice
// must be freshly allocated and have the same, nonzero length on every
// call (the solver holds past evaluations while differencing); closures
// capture any fixed data (abscissae, observations) the model needs.
type ResidualFunc func(params []float64) []float64

// Options configures Solve. The zero value is NOT valid; use
// DefaultOptions and override fields as needed. A nil *Options passed to
// Solve means DefaultOptions().
type Options struct {
	MaxIterations     int
	Tolerance         float64
	StepTolerance     float64
	GradientTolerance float64
	Damping           float64
	DampingScale      float64
	JacobianStep      float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations:     DefaultMaxIterations,
		Tolerance:         DefaultTolerance,
		StepTolerance:     DefaultStepTolerance,
		GradientTolerance: DefaultGradientTolerance,
		Damping:           DefaultDamping,
		DampingScale:      DefaultDampingScale,
		JacobianStep:      DefaultJacobianStep,
	}
}

// validate reports whether the options are usable by Solve.
func (o *Options) validate() error {
	switch {
	case o.MaxIterations < 1,
		o.Tolerance < 0,
		o.StepTolerance < 0,
		o.GradientTolerance < 0,
		o.Damping <= 0,
		o.DampingScale <= 1,
		o.JacobianStep <= 0:
		return ErrBadOptions
	}
	return nil
}

// Status reports how the iteration terminated. The three Small* values
// form the success set; everything else is a soft failure whose
// parameters are still returned to the caller.
type Status int

const (
	// StatusSmallResidual - an accepted step changed the cost by less
	// than the relative tolerance.
	StatusSmallResidual Status = iota + 1

	// StatusSmallStep - an accepted step moved the parameters by less
	// than the step tolerance.
	StatusSmallStep

	// StatusSmallGradient - the gradient Jᵀr vanished within tolerance.
	StatusSmallGradient

	// StatusMaxIterations - the iteration cap was reached first.
	StatusMaxIterations

	// StatusStalled - damping overflowed without any acceptable step
	// (including persistent normal-equation factorization failures).
	StatusStalled
)

// Converged reports whether s belongs to the success set.
func (s Status) Converged() bool {
	switch s {
	case StatusSmallResidual, StatusSmallStep, StatusSmallGradient:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSmallResidual:
		return "small residual change"
	case StatusSmallStep:
		return "small step"
	case StatusSmallGradient:
		return "small gradient"
	case StatusMaxIterations:
		return "max iterations reached"
	case StatusStalled:
		return "stalled"
	default:
		return "unknown status"
	}
}

// Result carries the fitted parameters together with an explicit
// convergence flag, so downstream composition can decide whether to
// trust a non-converged fit instead of silently propagating it.
type Result struct {
	// Params holds the last accepted parameter vector.
	Params []float64

	// Status records how the iteration terminated.
	Status Status

	// Iterations is the number of outer iterations performed.
	Iterations int

	// Cost is the final sum of squared residuals.
	Cost float64
}

// Converged reports whether the solver terminated in the success set.
func (r Result) Converged() bool { return r.Status.Converged() }

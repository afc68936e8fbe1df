// Package potential: sentinel error set.

package potential

import "errors"

var (
	// ErrEmptyCurve indicates an empty potential curve or time profile.
	ErrEmptyCurve = errors.New("potential: empty curve")

	// ErrCurveTooShort indicates fewer data points than fit parameters.
	ErrCurveTooShort = errors.New("potential: curve shorter than parameter count")

	// ErrRaggedRows indicates a Wilson-loop array (or batch) whose rows
	// do not share one length.
	ErrRaggedRows = errors.New("potential: rows have mismatched lengths")

	// ErrNonPhysical indicates that the fitted parameters put the Sommer
	// radicand (1.65+coulomb)/linear outside the positive domain, so no
	// real lattice spacing exists.
	ErrNonPhysical = errors.New("potential: non-physical fit, Sommer radicand not positive")
)

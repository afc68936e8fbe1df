// Package leastsq: sentinel error set. Hard errors cover malformed input
// only; non-convergence is reported through Result.Status instead.

package leastsq

import "errors"

var (
	// ErrNilResidual indicates a nil ResidualFunc.
	ErrNilResidual = errors.New("leastsq: residual function is nil")

	// ErrEmptyGuess indicates an empty initial parameter vector.
	ErrEmptyGuess = errors.New("leastsq: empty initial guess")

	// ErrEmptyResidual indicates that the residual function returned an
	// empty vector.
	ErrEmptyResidual = errors.New("leastsq: residual function returned no residuals")

	// ErrResidualLength indicates that the residual function changed its
	// output length between calls.
	ErrResidualLength = errors.New("leastsq: residual length changed between calls")

	// ErrBadOptions indicates nonsensical solver options (non-positive
	// iteration cap, damping, or step sizes; scale not above 1).
	ErrBadOptions = errors.New("leastsq: invalid options")
)

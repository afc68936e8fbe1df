// Package correlator: sentinel error set. All entry points return these
// sentinels (optionally wrapped with pair/key context via %w) and tests
// match them with errors.Is.

package correlator

import "errors"

var (
	// ErrBadShape indicates a lattice shape or propagator dimension
	// below 1.
	ErrBadShape = errors.New("correlator: invalid shape")

	// ErrIndexOutOfRange indicates a propagator index outside its bounds.
	ErrIndexOutOfRange = errors.New("correlator: index out of range")

	// ErrNilPropagator indicates a nil *Propagator argument.
	ErrNilPropagator = errors.New("correlator: nil propagator")

	// ErrShapeMismatch indicates propagators or correlator arrays whose
	// shapes do not agree with each other or with the lattice shape.
	ErrShapeMismatch = errors.New("correlator: shape mismatch")

	// ErrBadGamma indicates an interpolating matrix that is not 4×4
	// spin-space.
	ErrBadGamma = errors.New("correlator: interpolator must be 4x4")

	// ErrNilSource indicates a nil PropagatorSource.
	ErrNilSource = errors.New("correlator: nil propagator source")

	// ErrMissingKey indicates a propagator key absent from a source.
	// Fatal for the affected pair: the driver aborts naming the key
	// rather than silently skipping it.
	ErrMissingKey = errors.New("correlator: missing propagator key")
)

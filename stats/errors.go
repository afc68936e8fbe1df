// Package stats: sentinel error set.
// All entry points return these sentinels on malformed input and tests
// check them via errors.Is. No function panics on user-triggered
// conditions.

package stats

import "errors"

var (
	// ErrEmptySeries indicates an empty input series where at least one
	// element is required.
	ErrEmptySeries = errors.New("stats: empty series")

	// ErrBadBinSize indicates a bin size below 1.
	ErrBadBinSize = errors.New("stats: bin size must be >= 1")

	// ErrRaggedRows indicates a batch whose rows do not all share the
	// same length. Batch members must be rectangular.
	ErrRaggedRows = errors.New("stats: rows have mismatched lengths")
)

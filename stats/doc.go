// Package stats provides the resampling and autocorrelation primitives
// used to attach statistical errors to lattice measurement ensembles.
//
// 🚀 What is stats?
//
//	Monte-Carlo measurement chains are autocorrelated: consecutive
//	configurations are not independent samples. This package turns a
//	time-ordered series of observables into decorrelated estimates:
//	  • Bin / BinRows       — replace consecutive groups by their mean
//	  • Bootstrap / ...Rows — resample with replacement for error bars
//	  • AutoCorrelation     — unnormalized circular autocovariance
//
// ✨ Key guarantees:
//
//   - Ordering is never changed silently: binning and autocorrelation
//     treat the leading axis as physical (configuration) time.
//   - Inputs are never mutated; every function allocates its output.
//   - Randomness is deterministic: a nil *rand.Rand selects a fixed
//     default stream, so results are reproducible across runs.
//
// ⚙️ Usage:
//
//	binned, err := stats.Bin(plaquettes, 10)
//	replica, err := stats.Bootstrap(binned, rng)
//	acf, err := stats.AutoCorrelation(plaquettes) // acf[0] == variance
//
// Batch ("rows") variants operate on the leading axis of a rectangular
// [][]float64, averaging or resampling whole rows, and validate
// rectangularity up front. There is no runtime rank dispatch: callers
// pick the entry point matching their data shape.
package stats

// Package hadron turns raw lattice-QCD measurement ensembles — plaquettes,
// Wilson loops, quark propagators — into physical quantities with
// statistical error control.
//
// 🚀 What is hadron?
//
//	A pure-Go post-processing toolkit for lattice field-theory
//	measurements, covering:
//	  • Binning & bootstrap resampling for decorrelated error estimates
//	  • Circular autocorrelation of observable time series
//	  • Nonlinear least-squares fitting (Levenberg–Marquardt)
//	  • Static quark pair-potential & exponential-decay fits
//	  • Sommer-scale lattice spacing
//	  • Meson two-point correlators with momentum projection
//
// ✨ Why choose hadron?
//
//   - Deterministic — seeded RNG policy, stable iteration orders, no globals
//   - Fail-fast — sentinel errors for malformed shapes, soft statuses for
//     non-converged fits so a batch never dies on one bad curve
//   - Pure Go — gonum for linear algebra, nothing else between you and
//     your numbers
//
// Everything is organized under five subpackages:
//
//	stats/      — binning, bootstrap resampling, autocorrelation
//	leastsq/    — Levenberg–Marquardt nonlinear least squares
//	potential/  — pair-potential & decay fitters, lattice spacing
//	correlator/ — propagator contractions, gamma basis, meson spectra
//	report/     — injected progress sink (fire-and-forget)
//
// Data flow, in one line:
//
//	raw arrays → stats/fitters (one branch); propagator pairs →
//	correlator engine → meson spectroscopy driver (the other).
//
//	go get github.com/katalvlaran/hadron
package hadron

// Package potential extracts the static quark pair potential and the
// physical lattice spacing from Wilson-loop measurements.
//
// 🚀 What is potential?
//
//	Rectangular Wilson loops W(r,t) decay exponentially in t with a rate
//	V(r), the potential between a static quark pair at separation r.
//	This package chains the two fits and the Sommer scale:
//	  • FitDecayCurve / FitDecay — amp·exp(−rate·t) per separation,
//	    the fitted rate is the effective potential V(r)
//	  • FitPotential             — V(r) = linear·r + coulomb/r + offset
//	  • LatticeSpacing           — a = 0.5/√((1.65 + coulomb)/linear)
//
// Sign convention: the Coulombic term is additive (coulomb/r, not
// −coulomb/r), matching the reference analysis chain; the Sommer
// relation below uses the same convention.
//
// ✨ Soft-failure policy:
//
//	A non-converged fit never aborts a batch. Every fit result carries
//	its solver Status, and fitters optionally write one warning line to
//	the configured report.Reporter. Historically only the potential fit
//	warned while the decay fit stayed silent; both defaults preserve
//	that behavior, and both are overridable through
//	FitOptions.WarnNonConverged — callers needing strict uniform
//	checking set it (or inspect Status) themselves.
//
// Batch entry points (FitPotentialBatch, FitDecayBatch,
// LatticeSpacingBatch) process bootstrap replicas member by member with
// no cross-member state; shapes are validated once up front.
package potential

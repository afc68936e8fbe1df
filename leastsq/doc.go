// Package leastsq implements damped nonlinear least squares
// (Levenberg–Marquardt) for the curve fits in the measurement pipeline.
//
// 🚀 What is leastsq?
//
//	Given a residual function r(p) and an initial parameter guess, Solve
//	searches for the p minimizing Σ rᵢ(p)², using the damped normal
//	equations
//
//	    (JᵀJ + λ·diag(JᵀJ)) · δ = Jᵀ r,   p ← p − δ
//
//	with a forward-difference Jacobian J and a multiplicative damping
//	schedule: successful steps relax λ toward Gauss–Newton, rejected
//	steps raise it toward gradient descent.
//
// ✨ Key guarantees:
//
//   - Always terminates: the iteration cap bounds every call.
//   - Soft failure: non-convergence is NOT an error. Solve returns the
//     best parameters it reached together with a Status; callers check
//     Result.Converged() when they need strict fits. Hard errors are
//     reserved for malformed input (nil residual, empty guess, ...).
//   - Deterministic: no randomness, fixed evaluation order.
//
// ⚙️ Usage:
//
//	residual := func(p []float64) []float64 {
//	  out := make([]float64, len(ts))
//	  for i, t := range ts {
//	    out[i] = ys[i] - p[0]*math.Exp(-p[1]*t)
//	  }
//	  return out
//	}
//	res, err := leastsq.Solve(residual, []float64{1, 1}, nil)
//	if err != nil { ... }            // malformed input only
//	if !res.Converged() { ... }      // soft failure, params still usable
//
// The success statuses mirror the conventional MINPACK/leastsq "ier in
// success set" reading: small residual change, small step, or small
// gradient all count as converged.
package leastsq

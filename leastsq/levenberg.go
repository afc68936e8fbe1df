package leastsq

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve — Levenberg–Marquardt minimization of Σ rᵢ(p)².
//
// Algorithm outline:
//  1. Evaluate r(p₀) and its forward-difference Jacobian J (m×n).
//  2. Stop with StatusSmallGradient if max|Jᵀr| ≤ GradientTolerance.
//  3. Solve (JᵀJ + λ·diag(JᵀJ))·δ = Jᵀr by Cholesky; zero diagonal
//     entries are damped by λ itself so the system stays definite.
//  4. Trial point q = p − δ:
//     cost(q) < cost(p) → accept, λ /= DampingScale, check the residual
//     and step stopping rules; otherwise reject, λ *= DampingScale and
//     retry the same iteration with stronger damping.
//  5. λ exceeding its overflow bound without an acceptable step stops
//     with StatusStalled; the iteration cap stops with
//     StatusMaxIterations. Either way the last accepted parameters are
//     returned — soft failure, the caller inspects Result.Status.
//
// Errors (hard, input-shape only):
//   - ErrNilResidual, ErrEmptyGuess, ErrBadOptions
//   - ErrEmptyResidual, ErrResidualLength
//
// Complexity per iteration: O(m·n) residual evaluations for the
// Jacobian plus an O(n³) Cholesky solve; n is small (2–3) for every fit
// in this library.
func Solve(f ResidualFunc, guess []float64, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilResidual
	}
	if len(guess) == 0 {
		return Result{}, ErrEmptyGuess
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	n := len(guess)
	p := make([]float64, n)
	copy(p, guess)

	r := f(p)
	m := len(r)
	if m == 0 {
		return Result{}, ErrEmptyResidual
	}
	cost := sumSquares(r)
	lambda := o.Damping

	res := Result{Params: p, Status: StatusMaxIterations, Cost: cost}

	jac := make([]float64, m*n)
	shifted := make([]float64, n)

	for iter := 1; iter <= o.MaxIterations; iter++ {
		res.Iterations = iter

		if err := jacobian(f, p, r, o.JacobianStep, shifted, jac); err != nil {
			return Result{}, err
		}
		jd := mat.NewDense(m, n, jac)
		rv := mat.NewVecDense(m, r)

		var grad mat.VecDense
		grad.MulVec(jd.T(), rv)
		if maxAbsVec(&grad) <= o.GradientTolerance {
			res.Status = StatusSmallGradient

			break
		}

		var jtj mat.Dense
		jtj.Mul(jd.T(), jd)

		accepted := false
		for !accepted {
			damped := dampedNormal(&jtj, lambda)

			var chol mat.Cholesky
			var delta mat.VecDense
			ok := chol.Factorize(damped)
			if ok {
				ok = chol.SolveVecTo(&delta, &grad) == nil
			}
			if !ok {
				lambda *= o.DampingScale
				if lambda > maxDamping {
					res.Status = StatusStalled

					return res, nil
				}

				continue
			}

			trial := make([]float64, n)
			for i := range trial {
				trial[i] = p[i] - delta.AtVec(i)
			}
			rTrial := f(trial)
			if len(rTrial) != m {
				return Result{}, ErrResidualLength
			}
			trialCost := sumSquares(rTrial)

			if trialCost < cost {
				accepted = true
				prev := cost
				copy(p, trial)
				r = rTrial
				cost = trialCost
				res.Params, res.Cost = p, cost

				lambda /= o.DampingScale
				if lambda < minDamping {
					lambda = minDamping
				}

				if prev-cost <= o.Tolerance*(1+cost) {
					res.Status = StatusSmallResidual

					return res, nil
				}
				if mat.Norm(&delta, 2) <= o.StepTolerance*(1+norm(p)) {
					res.Status = StatusSmallStep

					return res, nil
				}
			} else {
				lambda *= o.DampingScale
				if lambda > maxDamping {
					res.Status = StatusStalled

					return res, nil
				}
			}
		}
	}

	return res, nil
}

// jacobian fills jac (m×n, row-major) with forward differences of f
// around p, reusing the residual r already evaluated at p. The step for
// parameter j is step·max(|p_j|, 1).
func jacobian(f ResidualFunc, p, r []float64, step float64, shifted, jac []float64) error {
	m, n := len(r), len(p)
	for j := 0; j < n; j++ {
		h := step * math.Max(math.Abs(p[j]), 1)
		copy(shifted, p)
		shifted[j] += h

		rShift := f(shifted)
		if len(rShift) != m {
			return ErrResidualLength
		}
		inv := 1.0 / h
		for i := 0; i < m; i++ {
			jac[i*n+j] = (rShift[i] - r[i]) * inv
		}
	}
	return nil
}

// dampedNormal builds JᵀJ + λ·diag(JᵀJ) as a SymDense. Zero diagonal
// entries receive λ directly so the factorization cannot hit a zero pivot.
func dampedNormal(jtj *mat.Dense, lambda float64) *mat.SymDense {
	n, _ := jtj.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := jtj.At(i, j)
			if i == j {
				if v == 0 {
					v = lambda
				} else {
					v += lambda * v
				}
			}
			sym.SetSym(i, j, v)
		}
	}
	return sym
}

// sumSquares returns Σ vᵢ².
func sumSquares(v []float64) float64 {
	var acc float64
	for _, x := range v {
		acc += x * x
	}
	return acc
}

// norm returns the Euclidean norm of v.
func norm(v []float64) float64 {
	return math.Sqrt(sumSquares(v))
}

// maxAbsVec returns max|vᵢ| of a gonum vector.
func maxAbsVec(v *mat.VecDense) float64 {
	var best float64
	for i := 0; i < v.Len(); i++ {
		if a := math.Abs(v.AtVec(i)); a > best {
			best = a
		}
	}
	return best
}

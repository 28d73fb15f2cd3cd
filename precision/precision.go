// SPDX-License-Identifier: MIT

// Package precision inverts a symmetric positive-definite covariance matrix
// into a precision matrix through a Cholesky factorization, and derives the
// partial correlations the precision matrix encodes.
//
// A factorization that detects a non positive-definite input is terminal:
// Solve reports matrix.ErrSingular and never retries with a larger
// shrinkage intensity; that decision belongs to the caller.
package precision

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/precisiongraph/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opSolve               = "Solve"
	opPartialCorrelations = "PartialCorrelations"
)

func precisionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve returns Σ⁻¹ for a symmetric positive-definite Σ.
//
// Implementation:
//   - Stage 1: ValidateSquare and ValidateSymmetric with a tolerance of
//     matrix.DefaultEpsilon relative to max |Σ_ij|.
//   - Stage 2: Cholesky factorization Σ = LLᵀ (gonum mat.Cholesky).
//   - Stage 3: reject a factor whose condition number exceeds
//     mat.ConditionTolerance, then form Σ⁻¹ from the factor.
//   - Stage 4: copy back as *matrix.Dense; both triangles are read from the
//     symmetric result, so the output is exactly symmetric.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry, matrix.ErrNaNInf.
//   - matrix.ErrSingular when Σ is not positive definite or too ill-conditioned.
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Solve(sigma matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(sigma); err != nil {
		return nil, precisionErrorf(opSolve, err)
	}
	tol := matrix.RelativeTolerance(sigma, matrix.DefaultEpsilon)
	if err := matrix.ValidateSymmetric(sigma, tol); err != nil {
		return nil, precisionErrorf(opSolve, err)
	}
	sym, err := matrix.ToSymDense(sigma)
	if err != nil {
		return nil, precisionErrorf(opSolve, err)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, precisionErrorf(opSolve, fmt.Errorf("not positive definite: %w", matrix.ErrSingular))
	}
	if cond := chol.Cond(); cond > mat.ConditionTolerance || math.IsInf(cond, 0) {
		return nil, precisionErrorf(opSolve, fmt.Errorf("condition number %.3g: %w", cond, matrix.ErrSingular))
	}

	var inv mat.SymDense
	if err = chol.InverseTo(&inv); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, precisionErrorf(opSolve, fmt.Errorf("condition number %.3g: %w", float64(cond), matrix.ErrSingular))
		}

		return nil, precisionErrorf(opSolve, err)
	}

	out, err := matrix.FromGonum(&inv)
	if err != nil {
		return nil, precisionErrorf(opSolve, err)
	}

	return out, nil
}

// PartialCorrelations returns ρ with ρ_ij = −P_ij / √(P_ii·P_jj) and ρ_ii = 1.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrDegenerate when a diagonal entry is not strictly positive.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func PartialCorrelations(p matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(p); err != nil {
		return nil, precisionErrorf(opPartialCorrelations, err)
	}
	n := p.Rows()
	root := make([]float64, n)
	for i := 0; i < n; i++ {
		d, err := p.At(i, i)
		if err != nil {
			return nil, precisionErrorf(opPartialCorrelations, err)
		}
		if !(d > 0) {
			return nil, precisionErrorf(opPartialCorrelations, fmt.Errorf("diagonal %d is %v: %w", i, d, matrix.ErrDegenerate))
		}
		root[i] = math.Sqrt(d)
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, precisionErrorf(opPartialCorrelations, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if err = out.Set(i, i, 1); err != nil {
			return nil, precisionErrorf(opPartialCorrelations, err)
		}
		for j = i + 1; j < n; j++ {
			if v, err = p.At(i, j); err != nil {
				return nil, precisionErrorf(opPartialCorrelations, err)
			}
			rho := -v / (root[i] * root[j])
			if rho == 0 {
				rho = 0 // normalise −0
			}
			_ = out.Set(i, j, rho)
			_ = out.Set(j, i, rho)
		}
	}

	return out, nil
}

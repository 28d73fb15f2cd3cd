// SPDX-License-Identifier: MIT

package shrinkage

import (
	"fmt"
	"math"

	"github.com/katalvlaran/precisiongraph/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opNewSample = "NewSample"
	opShrink    = "Shrink"
	opTarget    = "Target"
	opEstimate  = "Estimate"
)

// shrinkageErrorf wraps err with an operation tag, preserving errors.Is.
func shrinkageErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sample is the λ-independent part of the estimator: the sample covariance
// S = XcᵀXc/(T−1), the column means, the centered returns and μ = tr(S)/N.
// A Sample is never mutated after NewSample; accessors return copies.
type Sample struct {
	cov      *matrix.Dense // S, N×N, exactly symmetric
	centered *matrix.Dense // Xc, T×N
	means    []float64     // column means, len N
	mu       float64       // mean sample variance
	t, n     int           // observations and assets
}

// NewSample computes the sample covariance of a T×N returns matrix.
//
// Implementation:
//   - Stage 1: require T ≥ 2 and N ≥ 1.
//   - Stage 2: center columns and form S = XcᵀXc/(T−1) (matrix.Covariance).
//   - Stage 3: μ = tr(S)/N; μ = 0 means every asset has zero variance.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimension (T<2 or N<1),
//     matrix.ErrNaNInf (non-finite return), matrix.ErrDegenerate (μ = 0).
//
// Complexity:
//   - Time O(T·N²), Space O(T·N + N²).
func NewSample(returns matrix.Matrix) (*Sample, error) {
	if err := matrix.ValidateNotNil(returns); err != nil {
		return nil, shrinkageErrorf(opNewSample, err)
	}
	t, n := returns.Rows(), returns.Cols()
	if t < 2 || n < 1 {
		return nil, shrinkageErrorf(opNewSample, fmt.Errorf("returns are %d×%d, need T≥2 and N≥1: %w", t, n, matrix.ErrDimension))
	}

	centered, means, err := matrix.CenterColumns(returns)
	if err != nil {
		return nil, shrinkageErrorf(opNewSample, err)
	}
	cov, _, err := matrix.Covariance(returns)
	if err != nil {
		return nil, shrinkageErrorf(opNewSample, err)
	}

	var trace float64
	for i := 0; i < n; i++ {
		v, _ := cov.At(i, i)
		trace += v
	}
	mu := trace / float64(n)
	if !(mu > 0) || math.IsInf(mu, 0) {
		return nil, shrinkageErrorf(opNewSample, matrix.ErrDegenerate)
	}

	return &Sample{
		cov:      cov,
		centered: centered,
		means:    means,
		mu:       mu,
		t:        t,
		n:        n,
	}, nil
}

// Observations returns T.
func (s *Sample) Observations() int { return s.t }

// Assets returns N.
func (s *Sample) Assets() int { return s.n }

// Mu returns the mean sample variance, the diagonal of the target.
func (s *Sample) Mu() float64 { return s.mu }

// Means returns a copy of the column means.
func (s *Sample) Means() []float64 {
	out := make([]float64, len(s.means))
	copy(out, s.means)

	return out
}

// Covariance returns a copy of the sample covariance S.
func (s *Sample) Covariance() *matrix.Dense { return s.cov.Clone().(*matrix.Dense) }

// Target returns the isotropic shrinkage target μI.
func (s *Sample) Target() (*matrix.Dense, error) {
	id, err := matrix.NewIdentity(s.n)
	if err != nil {
		return nil, shrinkageErrorf(opTarget, err)
	}
	target, err := matrix.Scale(id, s.mu)
	if err != nil {
		return nil, shrinkageErrorf(opTarget, err)
	}

	return target, nil
}

// Shrink returns (1−λ)·S + λ·μI.
//
// Implementation:
//   - Stage 1: λ ∈ [0,1] (matrix.ValidateProbability).
//   - Stage 2: Scale(S, 1−λ) + Scale(μI, λ). Both operands are exactly
//     symmetric, so the sum is too; λ=0 reproduces S bit for bit and λ=1
//     reproduces μI bit for bit.
//
// Errors:
//   - matrix.ErrInvalidParameter for λ outside [0,1] or NaN.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func (s *Sample) Shrink(lambda float64) (*matrix.Dense, error) {
	if err := matrix.ValidateProbability("lambda", lambda); err != nil {
		return nil, shrinkageErrorf(opShrink, err)
	}
	target, err := s.Target()
	if err != nil {
		return nil, shrinkageErrorf(opShrink, err)
	}
	a, err := matrix.Scale(s.cov, 1-lambda)
	if err != nil {
		return nil, shrinkageErrorf(opShrink, err)
	}
	b, err := matrix.Scale(target, lambda)
	if err != nil {
		return nil, shrinkageErrorf(opShrink, err)
	}
	out, err := matrix.Add(a, b)
	if err != nil {
		return nil, shrinkageErrorf(opShrink, err)
	}

	return out, nil
}

// Estimate is the one-shot form: NewSample(returns).Shrink(lambda).
// λ is validated before any O(T·N²) work is spent.
func Estimate(returns matrix.Matrix, lambda float64) (*matrix.Dense, error) {
	if err := matrix.ValidateProbability("lambda", lambda); err != nil {
		return nil, shrinkageErrorf(opEstimate, err)
	}
	s, err := NewSample(returns)
	if err != nil {
		return nil, shrinkageErrorf(opEstimate, err)
	}

	return s.Shrink(lambda)
}

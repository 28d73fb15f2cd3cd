// SPDX-License-Identifier: MIT

// Package shrinkage estimates a well-conditioned covariance matrix from a
// T×N returns matrix by blending the sample covariance S toward an isotropic
// target μI, where μ is the average sample variance:
//
//	Σ(λ) = (1−λ)·S + λ·μI,   λ ∈ [0,1].
//
// λ=0 returns S unchanged (possibly singular when N > T−1, which is reported
// by the precision solver rather than silently corrected); λ=1 returns the
// target exactly; any λ>0 with μ>0 yields a positive-definite matrix.
//
// The λ-independent work (centering, XᵀX, μ) lives in Sample, which is
// immutable after NewSample and safe for concurrent Shrink calls, so a
// parameter sweep pays for it once.
//
// LedoitWolf derives λ from the data in closed form (Ledoit & Wolf, 2004)
// instead of taking it from the caller.
//
// Quick example:
//
//	s, err := shrinkage.NewSample(returns)
//	if err != nil {
//		return err // matrix.ErrDimension, matrix.ErrDegenerate, matrix.ErrNaNInf
//	}
//	sigma, err := s.Shrink(0.3)
package shrinkage

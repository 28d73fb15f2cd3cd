// SPDX-License-Identifier: MIT

package shrinkage

import (
	"github.com/katalvlaran/precisiongraph/matrix"
)

const (
	opLedoitWolf         = "LedoitWolf"
	opEstimateLedoitWolf = "EstimateLedoitWolf"
)

// LedoitWolf returns the closed-form optimal shrinkage intensity toward μI.
//
// Implementation (Ledoit & Wolf 2004, in the form popularised by scikit-learn),
// with Xc the centered returns, T observations and N assets:
//   - Stage 1: b_ = Σ_{ij} ((Xc²)ᵀXc²)_{ij},  d_ = Σ_{ij} ((XcᵀXc)_{ij})² / T².
//   - Stage 2: m = Σ_t Σ_j Xc²_{tj} / (T·N)   (mean biased variance).
//   - Stage 3: β = (b_/T − d_) / (N·T);  δ = (d_ − 2·m·(N·m) + N·m²) / N.
//   - Stage 4: λ* = min(β, δ)/δ, clamped to [0,1]; λ* = 0 when N = 1 or δ = 0.
//
// Behavior highlights:
//   - δ is ‖S_b − mI‖²_F / N for the biased covariance S_b; δ = 0 means the
//     sample is already isotropic and no shrinkage is needed.
//   - The intensity is applied to the unbiased S by Shrink; the difference in
//     the denominator (T vs T−1) is a common scale and leaves λ* unchanged.
//
// Errors:
//   - matrix.ErrNilMatrix when s is nil.
//
// Complexity:
//   - Time O(T·N²), Space O(N²).
func LedoitWolf(s *Sample) (float64, error) {
	if s == nil {
		return 0, shrinkageErrorf(opLedoitWolf, matrix.ErrNilMatrix)
	}
	t, n := s.t, s.n
	if n == 1 {
		return 0, nil
	}

	// Snapshot Xc rows once; Row copies are O(N) each.
	rows := make([][]float64, t)
	for r := 0; r < t; r++ {
		row, err := s.centered.Row(r)
		if err != nil {
			return 0, shrinkageErrorf(opLedoitWolf, err)
		}
		rows[r] = row
	}

	var (
		i, j, r      int
		traceSum     float64 // Σ_j Σ_t Xc²_{tj} / T
		betaRaw      float64 // b_
		deltaRaw     float64 // d_ (before /T²)
		gram, gramSq float64
		x, y         float64
	)
	for r = 0; r < t; r++ {
		for j = 0; j < n; j++ {
			x = rows[r][j]
			traceSum += x * x
		}
	}
	traceSum /= float64(t)

	// Fixed i→j order over the symmetric N×N products.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			gram, gramSq = 0, 0
			for r = 0; r < t; r++ {
				x, y = rows[r][i], rows[r][j]
				gram += x * y
				gramSq += x * x * y * y
			}
			deltaRaw += gram * gram
			betaRaw += gramSq
		}
	}

	tf, nf := float64(t), float64(n)
	deltaRaw /= tf * tf
	mu := traceSum / nf

	beta := (betaRaw/tf - deltaRaw) / (nf * tf)
	delta := (deltaRaw - 2*mu*traceSum + nf*mu*mu) / nf
	if delta <= 0 {
		return 0, nil
	}
	if beta > delta {
		beta = delta
	}
	lambda := beta / delta

	return clampUnit(lambda), nil
}

// EstimateLedoitWolf computes the sample, derives λ* with LedoitWolf and
// returns the shrunk covariance together with the λ* that produced it.
func EstimateLedoitWolf(returns matrix.Matrix) (*matrix.Dense, float64, error) {
	s, err := NewSample(returns)
	if err != nil {
		return nil, 0, shrinkageErrorf(opEstimateLedoitWolf, err)
	}
	lambda, err := LedoitWolf(s)
	if err != nil {
		return nil, 0, shrinkageErrorf(opEstimateLedoitWolf, err)
	}
	out, err := s.Shrink(lambda)
	if err != nil {
		return nil, 0, shrinkageErrorf(opEstimateLedoitWolf, err)
	}

	return out, lambda, nil
}

// clampUnit limits v to [0,1].
func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the covariance estimator is built on
//     (centering and sample covariance) as deterministic compositions over
//     canonical kernels (Mul/Transpose/Scale) and ew* micro-kernels.
//
// Exposed API (see api.go):
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)  // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means in a deterministic pass (Dense fast-path; At fallback),
//     rejecting NaN/Inf so that a single bad return cannot poison every later stage.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix from validation; ErrNaNInf for non-finite input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	if r <= 0 || c <= 0 {
		return nil, nil, matrixErrorf(opCenterColumns, ErrDimension)
	}
	means := make([]float64, c)

	var (
		i, j int
		v    float64
		err  error
	)
	// Stage 2: accumulate sums into means, then convert to averages.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if isNonFinite(v) {
					return nil, nil, matrixErrorf(opCenterColumns, denseErrorf(ctxAt, i, j, ErrNaNInf))
				}
				means[j] += v
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opCenterColumns, err)
				}
				if isNonFinite(v) {
					return nil, nil, matrixErrorf(opCenterColumns, fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3: broadcast-subtract the means over rows to build the centered copy.
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// covariance computes the sample covariance of columns: (Xcᵀ Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X and require r ≥ 2 (unbiased denominator).
//   - Stage 2: Center columns → Xc; compute XcT = Transpose(Xc).
//   - Stage 3: Cov = (XcT * Xc) * (1/(r-1)), then Symmetrize so the result is
//     bit-exactly symmetric.
//
// Returns:
//   - *Dense: covariance (c×c), symmetric.
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrDimension when r < 2 or c < 1; ErrNaNInf for non-finite input.
//
// Complexity:
//   - Time O(r*c + c^2*r), Space O(r*c + c^2).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 || c < 1 {
		return nil, nil, matrixErrorf(opCovariance, fmt.Errorf("need ≥2 rows and ≥1 column, got %d×%d: %w", r, c, ErrDimension))
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	XcT, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(XcT, Xc) // Gram matrix (c×c)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	scaled, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Symmetrize(scaled)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

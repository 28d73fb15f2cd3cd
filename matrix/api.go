// SPDX-License-Identifier: MIT

// Package matrix - public facade for statistics and comparison helpers.
// Kernels (Add, Mul, Scale, Transpose, Symmetrize) are exported directly from
// impl_linear_algebra.go; this file exposes thin wrappers over the unexported
// statistics and ew* kernels so the implementations can stay private.
package matrix

// CenterColumns subtracts the per-column mean from every element.
// Returns the centered copy and the column means (len = Cols).
// Errors: ErrNilMatrix, ErrDimension (empty), ErrNaNInf.
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// Covariance returns the sample covariance of columns (Xcᵀ Xc)/(r−1) together
// with the column means. The result is exactly symmetric.
// Errors: ErrNilMatrix, ErrDimension (r<2 or c<1), ErrNaNInf.
// Complexity: O(r*c²).
func Covariance(X Matrix) (*Dense, []float64, error) { return covariance(X) }

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

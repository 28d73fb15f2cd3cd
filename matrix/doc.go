// SPDX-License-Identifier: MIT

// Package matrix is the numeric foundation of precisiongraph: a row-major
// dense matrix, centralized validators, deterministic linear-algebra kernels
// and the column statistics the estimation pipeline is built on.
//
// The package provides:
//
//   - Matrix, the minimal random-access interface (Rows, Cols, At, Set, Clone)
//     accepted by every stage, so a returns matrix can come from any storage.
//   - Dense, the concrete row-major implementation with O(1) bounds-checked
//     accessors and an optional NaN/Inf rejection policy.
//   - Kernels: Add, Scale, Mul, Transpose, Symmetrize. *Dense operands hit
//     flat-slice fast paths; other implementations use an At/Set fallback
//     with identical loop order.
//   - Statistics: CenterColumns and Covariance (sample, r-1 denominator).
//   - A gonum bridge (ToSymDense, FromGonum) used by the Cholesky solver.
//   - The shared sentinel errors of the pipeline (ErrDimension,
//     ErrInvalidParameter, ErrDegenerate, ErrSingular, ...).
//
// Determinism:
//
//	Every loop runs in a fixed i→j (or i→k→j) order and no kernel iterates a
//	map, so identical inputs produce bit-identical outputs.
//
// Quick example:
//
//	X, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 5}, {4, 4}})
//	cov, means, err := matrix.Covariance(X)
//	if err != nil {
//		// errors.Is(err, matrix.ErrDimension) when X has fewer than 2 rows
//	}
//	_ = means
//	fmt.Println(cov)
package matrix

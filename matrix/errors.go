// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by every estimation stage built on it (shrinkage, precision,
// threshold). All algorithms MUST return these sentinels (optionally wrapped
// with an operation tag) and tests MUST check them via errors.Is.
// No algorithm panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Stage packages wrap these sentinels with
// fmt.Errorf("<Op>: %w", ErrX); callers still use errors.Is to match.
//
// ERROR KINDS OF THE ESTIMATION PIPELINE:
//   ErrDimension         - malformed shape (T<2, N<1, label count != N, non-square).
//   ErrInvalidParameter  - shrinkage intensity or quantile outside [0,1] (or NaN).
//   ErrDegenerate        - numerically degenerate input (all variances zero).
//   ErrSingular          - covariance not positive definite at the requested shrinkage.

var (
	// ErrDimension is the umbrella for every malformed-shape condition.
	// ErrDimensionMismatch and ErrNonSquare wrap it, so errors.Is(err, ErrDimension)
	// holds for all of them.
	ErrDimension = errors.New("matrix: invalid dimensions")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: operand shapes mismatch", ErrDimension)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimension)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidParameter is returned when a scalar parameter (shrinkage
	// intensity, threshold quantile) lies outside [0,1] or is NaN.
	ErrInvalidParameter = errors.New("matrix: parameter outside [0,1]")

	// ErrDegenerate is returned when the input is numerically degenerate,
	// e.g. every column has zero variance so the isotropic target is zero.
	ErrDegenerate = errors.New("matrix: degenerate input (zero total variance)")

	// ErrSingular is returned when a factorization detects that the matrix is not
	// positive definite (or is too ill-conditioned to invert reliably).
	ErrSingular = errors.New("matrix: singular matrix")
)

// ErrInvalidDimensions historically named the NewDense shape violation.
// Kept as an alias so errors.Is(err, ErrInvalidDimensions) remains true.
var ErrInvalidDimensions = ErrDimension // Deprecated: use ErrDimension.

// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a validated symmetric Matrix to gonum factorizations (Cholesky,
//     EigenSym) without leaking gonum types into the estimation stages.
//   - Bring gonum results back as *Dense so the rest of the pipeline keeps a
//     single storage type and a single error vocabulary.
//
// Notes:
//   - ToSymDense copies the upper triangle; the caller is expected to have run
//     ValidateSymmetric first, otherwise the lower triangle is silently ignored.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToSymDense = "ToSymDense"
	opFromGonum  = "FromGonum"
)

// ToSymDense copies a square Matrix into a fresh *mat.SymDense.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf.
// Complexity: O(n²).
func ToSymDense(m Matrix) (*mat.SymDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}
	n := m.Rows()
	data := make([]float64, n*n)

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToSymDense, err)
			}
			if isNonFinite(v) {
				return nil, matrixErrorf(opToSymDense, fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
			data[i*n+j] = v
			data[j*n+i] = v
		}
	}

	return mat.NewSymDense(n, data), nil
}

// FromGonum copies any gonum matrix into a fresh *Dense.
//
// Errors: ErrNilMatrix (nil input), ErrDimension (empty), ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = g.At(i, j)
			if isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

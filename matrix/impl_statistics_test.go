// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/precisiongraph/matrix"
	"github.com/stretchr/testify/require"
)

func TestCenterColumns(t *testing.T) {
	t.Parallel()
	X := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 5, 4, 4})

	for _, in := range []matrix.Matrix{X, hide{X}} {
		Xc, means, err := matrix.CenterColumns(in)
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{8.0 / 3, 11.0 / 3}, means, closeTol)

		// Every centered column sums to zero.
		for j := 0; j < 2; j++ {
			var s float64
			for i := 0; i < 3; i++ {
				s += MustAt(t, Xc, i, j)
			}
			require.InDelta(t, 0, s, closeTol)
		}
	}
}

func TestCovariance(t *testing.T) {
	t.Parallel()
	X := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 5, 4, 4})
	want := NewFilledDense(t, 2, 2, []float64{7.0 / 3, 11.0 / 6, 11.0 / 6, 7.0 / 3})

	for _, in := range []matrix.Matrix{X, hide{X}} {
		cov, _, err := matrix.Covariance(in)
		require.NoError(t, err)
		CompareClose(t, cov, want, closeTol)
		require.Equal(t, MustAt(t, cov, 0, 1), MustAt(t, cov, 1, 0)) // exact symmetry
	}
}

func TestCovariance_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Covariance(MustDense(t, 1, 3))
	require.ErrorIs(t, err, matrix.ErrDimension)

	_, _, err = matrix.Covariance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// The numeric policy can be bypassed by a foreign Matrix; statistics still reject NaN.
	_, _, err = matrix.Covariance(nanMatrix{})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// nanMatrix is a 2×1 Matrix whose second entry is NaN.
type nanMatrix struct{}

func (nanMatrix) Rows() int { return 2 }
func (nanMatrix) Cols() int { return 1 }
func (nanMatrix) At(i, _ int) (float64, error) {
	if i == 1 {
		return math.NaN(), nil
	}
	return 1, nil
}
func (nanMatrix) Set(int, int, float64) error { return nil }
func (m nanMatrix) Clone() matrix.Matrix      { return m }

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/precisiongraph/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()
	sym := NewFilledDense(t, 2, 2, []float64{1, 0.5, 0.5, 1})
	asym := NewFilledDense(t, 2, 2, []float64{1, 0.5, 0.6, 1})

	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, -0.2)) // negative tol is abs-ed
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 1, 2), 0), matrix.ErrNonSquare)
}

func TestRelativeTolerance(t *testing.T) {
	small := NewFilledDense(t, 1, 2, []float64{0.001, -0.5})
	big := NewFilledDense(t, 1, 2, []float64{10, -200})

	assert.Equal(t, 1e-9, matrix.RelativeTolerance(small, 1e-9))
	assert.InDelta(t, 2e-7, matrix.RelativeTolerance(big, 1e-9), 1e-20)
	assert.Equal(t, 200.0, matrix.MaxAbs(hide{big}))
}

func TestValidateProbability(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{0, 0.25, 1} {
		assert.NoError(t, matrix.ValidateProbability("lambda", v))
	}
	for _, v := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		err := matrix.ValidateProbability("quantile", v)
		assert.ErrorIs(t, err, matrix.ErrInvalidParameter)
		assert.Contains(t, err.Error(), "quantile")
	}
}

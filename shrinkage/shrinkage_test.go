// SPDX-License-Identifier: MIT
package shrinkage_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/precisiongraph/internal/fixture"
	"github.com/katalvlaran/precisiongraph/matrix"
	"github.com/katalvlaran/precisiongraph/shrinkage"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// eigenvalues returns the ascending spectrum of a symmetric matrix.
func eigenvalues(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	sym, err := matrix.ToSymDense(m)
	require.NoError(t, err)
	var eig mat.EigenSym
	require.True(t, eig.Factorize(sym, false))

	return eig.Values(nil)
}

func TestNewSample_Errors(t *testing.T) {
	t.Parallel()

	_, err := shrinkage.NewSample(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = shrinkage.NewSample(mustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimension)

	flat := mustDense(t, [][]float64{{0.1, 0.2}, {0.1, 0.2}, {0.1, 0.2}})
	_, err = shrinkage.NewSample(flat)
	require.ErrorIs(t, err, matrix.ErrDegenerate)
}

func TestShrink_InvalidLambda(t *testing.T) {
	t.Parallel()
	X, err := fixture.Random(10, 3, 1)
	require.NoError(t, err)
	s, err := shrinkage.NewSample(X)
	require.NoError(t, err)

	for _, l := range []float64{-0.001, 1.0001, math.NaN(), math.Inf(-1)} {
		_, err = s.Shrink(l)
		require.ErrorIs(t, err, matrix.ErrInvalidParameter, "lambda=%v", l)
		_, err = shrinkage.Estimate(X, l)
		require.ErrorIs(t, err, matrix.ErrInvalidParameter, "lambda=%v", l)
	}
}

func TestShrink_Endpoints(t *testing.T) {
	t.Parallel()
	X, err := fixture.Random(12, 4, 7)
	require.NoError(t, err)
	s, err := shrinkage.NewSample(X)
	require.NoError(t, err)

	zero, err := s.Shrink(0)
	require.NoError(t, err)
	require.Equal(t, s.Covariance().RawRows(), zero.RawRows())

	one, err := s.Shrink(1)
	require.NoError(t, err)
	target, err := s.Target()
	require.NoError(t, err)
	require.Equal(t, target.RawRows(), one.RawRows())
	for i := 0; i < 4; i++ {
		require.Equal(t, s.Mu(), at(t, one, i, i))
	}
}

func TestShrink_Scenario(t *testing.T) {
	t.Parallel()
	X, err := fixture.ReturnsWithCovariance(fixture.ScenarioCovariance)
	require.NoError(t, err)

	sigma, err := shrinkage.Estimate(X, 0.3)
	require.NoError(t, err)

	want := [][]float64{
		{1, 0.56, 0.07},
		{0.56, 1, 0.035},
		{0.07, 0.035, 1},
	}
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], at(t, sigma, i, j), 1e-12, "(%d,%d)", i, j)
		}
	}
}

// Every λ>0 gives a symmetric positive-definite matrix, even with N > T.
func TestShrink_PositiveDefinite(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{5, 8}, {30, 6}, {3, 20}} {
		X, err := fixture.Random(dims[0], dims[1], int64(dims[0]*100+dims[1]))
		require.NoError(t, err)
		s, err := shrinkage.NewSample(X)
		require.NoError(t, err)

		for _, l := range []float64{0.01, 0.3, 0.9, 1} {
			sigma, err := s.Shrink(l)
			require.NoError(t, err)
			require.NoError(t, matrix.ValidateSymmetric(sigma, 0))
			vals := eigenvalues(t, sigma)
			require.Greater(t, vals[0], 0.0, "T=%d N=%d λ=%v", dims[0], dims[1], l)
		}
	}
}

// λ=0 with N > T−1 keeps the rank-deficient sample covariance as is.
func TestShrink_ZeroLambdaRankDeficient(t *testing.T) {
	t.Parallel()
	X, err := fixture.Random(4, 6, 42)
	require.NoError(t, err)
	sigma, err := shrinkage.Estimate(X, 0)
	require.NoError(t, err)

	vals := eigenvalues(t, sigma)
	require.InDelta(t, 0, vals[0], 1e-15)
}

func TestSample_Accessors(t *testing.T) {
	X := mustDense(t, [][]float64{{1, 2}, {3, 5}, {4, 4}})
	s, err := shrinkage.NewSample(X)
	require.NoError(t, err)

	require.Equal(t, 3, s.Observations())
	require.Equal(t, 2, s.Assets())
	require.InDelta(t, 7.0/3, s.Mu(), 1e-12)
	require.InDeltaSlice(t, []float64{8.0 / 3, 11.0 / 3}, s.Means(), 1e-12)

	// Accessors hand out copies.
	cov := s.Covariance()
	require.NoError(t, cov.Set(0, 0, 100))
	require.InDelta(t, 7.0/3, at(t, s.Covariance(), 0, 0), 1e-12)
}

// SPDX-License-Identifier: MIT

// Package fixture builds deterministic returns matrices for tests across the
// module: a T×N table whose sample covariance equals a prescribed matrix, and
// seeded pseudo-random returns.
package fixture

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/precisiongraph/matrix"
	"gonum.org/v1/gonum/mat"
)

// ScenarioCovariance is the 3-asset covariance used by the A/B/C scenario.
var ScenarioCovariance = [][]float64{
	{1, 0.8, 0.1},
	{0.8, 1, 0.05},
	{0.1, 0.05, 1},
}

// ScenarioLabels are the vertex labels of the A/B/C scenario.
var ScenarioLabels = []string{"A", "B", "C"}

// ReturnsWithCovariance returns zero-mean returns X (T×N) with
// XᵀX/(T−1) = cov up to rounding.
//
// Construction: the columns 1..N of a Sylvester–Hadamard matrix of order
// T = 2^k ≥ N+1 are mutually orthogonal and sum to zero. Scaled by
// √((T−1)/T) they give Z with ZᵀZ = (T−1)I, and X = Z·Lᵀ with L the Cholesky
// factor of cov.
func ReturnsWithCovariance(cov [][]float64) (*matrix.Dense, error) {
	n := len(cov)
	if n == 0 {
		return nil, matrix.ErrDimension
	}
	data := make([]float64, 0, n*n)
	for i := range cov {
		if len(cov[i]) != n {
			return nil, matrix.ErrNonSquare
		}
		data = append(data, cov[i]...)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(mat.NewSymDense(n, data)); !ok {
		return nil, fmt.Errorf("fixture: covariance is not positive definite: %w", matrix.ErrSingular)
	}
	var L mat.TriDense
	chol.LTo(&L)

	t := 2
	for t < n+1 {
		t *= 2
	}
	h := hadamard(t)
	scale := math.Sqrt(float64(t-1) / float64(t))

	rows := make([][]float64, t)
	for r := 0; r < t; r++ {
		rows[r] = make([]float64, n)
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k <= j; k++ { // L is lower triangular
				s += h[r][k+1] * scale * L.At(j, k)
			}
			rows[r][j] = s
		}
	}

	return matrix.NewDenseFromRows(rows)
}

// Random returns a t×n matrix of seeded N(0, 0.01²) returns.
func Random(t, n int, seed int64) (*matrix.Dense, error) {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, t)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 0.01 * rng.NormFloat64()
		}
	}

	return matrix.NewDenseFromRows(rows)
}

// hadamard returns the Sylvester–Hadamard matrix of order n (a power of two).
func hadamard(n int) [][]float64 {
	h := [][]float64{{1}}
	for len(h) < n {
		m := len(h)
		next := make([][]float64, 2*m)
		for i := 0; i < 2*m; i++ {
			next[i] = make([]float64, 2*m)
			for j := 0; j < 2*m; j++ {
				v := h[i%m][j%m]
				if i >= m && j >= m {
					v = -v
				}
				next[i][j] = v
			}
		}
		h = next
	}

	return h
}

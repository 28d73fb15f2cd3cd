// SPDX-License-Identifier: MIT

// Package threshold sparsifies a precision matrix: entries whose magnitude
// does not exceed the q-quantile Q of all N² magnitudes (diagonal included)
// are set to zero.
//
// Two interpolation rules between order statistics v₀ ≤ … ≤ v_{m−1} are
// available:
//
//	LinInterp (default): piecewise-linear empirical CDF, gonum stat.LinInterp.
//	                     {0.1, 0.2, 0.5, 0.9} at q=0.9 gives 0.74.
//	Type7:               h = (m−1)q, Q = v[⌊h⌋] + (h−⌊h⌋)(v[⌊h⌋+1] − v[⌊h⌋]).
//	                     {0.1, 0.2, 0.5, 0.9} at q=0.9 gives 0.78.
//
// q=0 keeps every nonzero entry (cutoff 0); q=1 keeps none. Raising q never
// raises the number of retained entries.
package threshold

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/precisiongraph/matrix"
	"gonum.org/v1/gonum/stat"
)

const (
	opQuantile = "Quantile"
	opCutoff   = "Cutoff"
	opFilter   = "Filter"
)

// ErrUnknownMethod is returned for a Method outside the declared set.
var ErrUnknownMethod = fmt.Errorf("%w: unknown quantile method", matrix.ErrInvalidParameter)

// Method selects the interpolation rule between order statistics.
type Method int

const (
	// LinInterp interpolates the empirical CDF linearly (gonum stat.LinInterp).
	LinInterp Method = iota
	// Type7 is the (m−1)q rule, the default of R and NumPy.
	Type7
)

// DefaultMethod is used by Quantile and Filter.
const DefaultMethod = LinInterp

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case LinInterp:
		return "lininterp"
	case Type7:
		return "type7"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "lininterp" or "type7" (case-insensitive) to a Method.
// The empty string selects DefaultMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultMethod, nil
	case "lininterp":
		return LinInterp, nil
	case "type7":
		return Type7, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

func thresholdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Quantile returns the q-quantile of values with DefaultMethod.
func Quantile(values []float64, q float64) (float64, error) {
	return QuantileWith(values, q, DefaultMethod)
}

// QuantileWith returns the q-quantile of values under method m.
// values is not modified; a sorted copy is taken.
//
// Errors:
//   - matrix.ErrInvalidParameter (q ∉ [0,1] or NaN), ErrUnknownMethod,
//     matrix.ErrDimension (no values), matrix.ErrNaNInf (non-finite value).
//
// Complexity:
//   - Time O(m log m), Space O(m).
func QuantileWith(values []float64, q float64, m Method) (float64, error) {
	if err := matrix.ValidateProbability("quantile", q); err != nil {
		return 0, thresholdErrorf(opQuantile, err)
	}
	if len(values) == 0 {
		return 0, thresholdErrorf(opQuantile, matrix.ErrDimension)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	for _, v := range sorted {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, thresholdErrorf(opQuantile, matrix.ErrNaNInf)
		}
	}
	sort.Float64s(sorted)

	switch m {
	case LinInterp:
		return stat.Quantile(q, stat.LinInterp, sorted, nil), nil
	case Type7:
		return type7(sorted, q), nil
	default:
		return 0, thresholdErrorf(opQuantile, ErrUnknownMethod)
	}
}

// type7 assumes sorted non-empty input and q ∈ [0,1].
func type7(v []float64, q float64) float64 {
	h := float64(len(v)-1) * q
	lo := int(math.Floor(h))
	if lo >= len(v)-1 {
		return v[len(v)-1]
	}

	return v[lo] + (h-float64(lo))*(v[lo+1]-v[lo])
}

// Cutoff returns the magnitude Q below or at which entries of p are zeroed:
// the q-quantile of |p_ij| over all N² entries, or 0 when q = 0.
//
// Errors: as QuantileWith, plus matrix.ErrNilMatrix and matrix.ErrNonSquare.
// Complexity: O(N² log N).
func Cutoff(p matrix.Matrix, q float64, m Method) (float64, error) {
	if err := matrix.ValidateSquare(p); err != nil {
		return 0, thresholdErrorf(opCutoff, err)
	}
	if err := matrix.ValidateProbability("quantile", q); err != nil {
		return 0, thresholdErrorf(opCutoff, err)
	}
	if m != LinInterp && m != Type7 {
		return 0, thresholdErrorf(opCutoff, ErrUnknownMethod)
	}
	if q == 0 {
		return 0, nil
	}

	n := p.Rows()
	mags := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := p.At(i, j)
			if err != nil {
				return 0, thresholdErrorf(opCutoff, err)
			}
			mags = append(mags, math.Abs(v))
		}
	}

	cut, err := QuantileWith(mags, q, m)
	if err != nil {
		return 0, thresholdErrorf(opCutoff, err)
	}

	return cut, nil
}

// Filter zeroes every entry with |p_ij| ≤ Q under DefaultMethod.
// It returns the thresholded copy and the cutoff Q.
func Filter(p matrix.Matrix, q float64) (*matrix.Dense, float64, error) {
	return FilterWith(p, q, DefaultMethod)
}

// FilterWith zeroes every entry with |p_ij| ≤ Q, Q = Cutoff(p, q, m).
//
// Behavior highlights:
//   - The mask depends only on |p_ij|, so a symmetric p yields a symmetric
//     zero pattern.
//   - p is never mutated.
//
// Complexity: O(N² log N).
func FilterWith(p matrix.Matrix, q float64, m Method) (*matrix.Dense, float64, error) {
	cut, err := Cutoff(p, q, m)
	if err != nil {
		return nil, 0, thresholdErrorf(opFilter, err)
	}

	n := p.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, 0, thresholdErrorf(opFilter, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = p.At(i, j); err != nil {
				return nil, 0, thresholdErrorf(opFilter, err)
			}
			if math.Abs(v) > cut {
				if err = out.Set(i, j, v); err != nil {
					return nil, 0, thresholdErrorf(opFilter, err)
				}
			}
		}
	}

	return out, cut, nil
}

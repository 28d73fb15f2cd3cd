// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"math"

	"github.com/katalvlaran/precisiongraph/core"
)

// ErrInvalidGraph is returned for a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: nil graph")

// ErrNilOrder is returned when Kruskal is called without an edge ordering.
var ErrNilOrder = errors.New("prim_kruskal: nil edge ordering")

// Less orders edges for Kruskal: edges that sort first are preferred.
type Less func(a, b core.Edge) bool

// ByWeight prefers lighter edges (minimum spanning forest).
func ByWeight(a, b core.Edge) bool { return a.Weight < b.Weight }

// ByStrength prefers edges of larger |Weight| (maximum spanning forest by
// magnitude). Signs are irrelevant: a strong negative precision entry is a
// strong conditional dependence.
func ByStrength(a, b core.Edge) bool { return math.Abs(a.Weight) > math.Abs(b.Weight) }

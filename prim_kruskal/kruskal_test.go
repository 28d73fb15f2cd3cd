// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/precisiongraph/core"
	"github.com/katalvlaran/precisiongraph/prim_kruskal"
	"github.com/stretchr/testify/require"
)

type wedge struct {
	from, to string
	w        float64
}

func graph(t *testing.T, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func pairs(edges []core.Edge) [][2]string {
	out := make([][2]string, len(edges))
	for i, e := range edges {
		out[i] = [2]string{e.From, e.To}
	}

	return out
}

func TestKruskal_Errors(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil, prim_kruskal.ByWeight)
	require.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Kruskal(core.NewGraph(), nil)
	require.ErrorIs(t, err, prim_kruskal.ErrNilOrder)
}

// Triangle A-B-C: the minimum tree drops the heaviest edge.
func TestKruskal_Minimum(t *testing.T) {
	g := graph(t, wedge{"A", "B", 1}, wedge{"B", "C", 2}, wedge{"A", "C", 3})

	forest, total, err := prim_kruskal.Kruskal(g, prim_kruskal.ByWeight)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, pairs(forest))
	require.Equal(t, 3.0, total)
}

// Strength ignores sign and spans each component separately.
func TestBackbone(t *testing.T) {
	g := graph(t,
		wedge{"A", "B", -0.9},
		wedge{"B", "C", 0.2},
		wedge{"A", "C", 0.5},
		wedge{"X", "Y", 0.1},
	)
	require.NoError(t, g.AddVertex("Z"))

	forest, err := prim_kruskal.Backbone(g)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"A", "B"}, {"A", "C"}, {"X", "Y"}}, pairs(forest))
}

func TestKruskal_Empty(t *testing.T) {
	forest, total, err := prim_kruskal.Kruskal(core.NewGraph(), prim_kruskal.ByWeight)
	require.NoError(t, err)
	require.Empty(t, forest)
	require.Zero(t, total)
}

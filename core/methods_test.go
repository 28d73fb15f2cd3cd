// SPDX-License-Identifier: MIT
// Package core_test verifies vertex and edge semantics of core.Graph.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/precisiongraph/core"
	"github.com/stretchr/testify/require"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))
	require.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to string
		weight   float64
		wantErr  error
	}{
		{"empty from", "", "B", 1, core.ErrEmptyVertexID},
		{"loop", "A", "A", 1, core.ErrLoopNotAllowed},
		{"nan weight", "A", "C", math.NaN(), core.ErrBadWeight},
		{"inf weight", "A", "C", math.Inf(1), core.ErrBadWeight},
		{"parallel same orientation", "A", "B", 2, core.ErrMultiEdgeNotAllowed},
		{"parallel reversed", "B", "A", 2, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := core.NewGraph()
			_, err := g.AddEdge("A", "B", -0.5)
			require.NoError(t, err)

			_, err = g.AddEdge(tc.from, tc.to, tc.weight)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, 1, g.EdgeCount())
		})
	}
}

func TestEdgeQueries(t *testing.T) {
	g := core.NewGraph()
	id1, err := g.AddEdge("B", "A", -0.8)
	require.NoError(t, err)
	id2, err := g.AddEdge("A", "C", 0.1)
	require.NoError(t, err)
	require.Equal(t, "e1", id1)
	require.Equal(t, "e2", id2)

	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))
	require.False(t, g.HasEdge("B", "C"))

	e, err := g.Edge("A", "B")
	require.NoError(t, err)
	require.Equal(t, core.Edge{ID: "e1", From: "B", To: "A", Weight: -0.8}, e)

	_, err = g.Edge("B", "C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	edges := g.Edges()
	require.Len(t, edges, 2)
	require.Equal(t, "e1", edges[0].ID)
	require.Equal(t, "e2", edges[1].ID)
}

func TestNeighborsAndDegree(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "D"}, {"A", "B"}, {"C", "A"}} {
		_, err := g.AddEdge(p[0], p[1], 1)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("Z"))

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C", "D"}, nbs)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 3, deg)

	deg, err = g.Degree("Z")
	require.NoError(t, err)
	require.Zero(t, deg)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	require.Equal(t, []string{"A", "B", "C", "D", "Z"}, g.Vertices())
}

func TestVertexAttrs(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.SetVertexAttr("A", "sector", "Tech"), core.ErrVertexNotFound)
	require.ErrorIs(t, g.SetVertexAttr("", "sector", "Tech"), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.SetVertexAttr("A", "sector", "Tech"))

	v, ok := g.VertexAttr("A", "sector")
	require.True(t, ok)
	require.Equal(t, "Tech", v)

	_, ok = g.VertexAttr("A", "color")
	require.False(t, ok)
	_, ok = g.VertexAttr("B", "sector")
	require.False(t, ok)
}

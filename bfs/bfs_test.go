// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/precisiongraph/bfs"
	"github.com/katalvlaran/precisiongraph/core"
	"github.com/stretchr/testify/require"
)

func graph(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleDepths covers the undirected square A–B–C–D–A.
func TestBFS_CycleDepths(t *testing.T) {
	g := graph(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
}

func TestBFS_Options(t *testing.T) {
	g := graph(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)
	_, err = res.PathTo("D")
	require.Error(t, err)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := graph(t, [2]string{"MSFT", "AAPL"}, [2]string{"JPM", "GS"}, [2]string{"GS", "MS"})
	require.NoError(t, g.AddVertex("XOM"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"AAPL", "MSFT"},
		{"GS", "JPM", "MS"},
		{"XOM"},
	}, comps)

	comps, err = bfs.Components(core.NewGraph())
	require.NoError(t, err)
	require.Empty(t, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/precisiongraph/core"
)

// Components partitions the vertices of g into connected components.
//
// Implementation:
//   - Stage 1: walk core.Graph.Vertices in ascending order.
//   - Stage 2: every vertex not yet seen seeds a BFS; its Order is one component.
//
// Each component is sorted ascending; components are ordered by their first
// (smallest) ID. An isolated vertex is a component of size one.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	out := [][]string{}
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, fmt.Errorf("bfs: component of %q: %w", id, err)
		}
		comp := append([]string(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

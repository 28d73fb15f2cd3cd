// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/precisiongraph/core"
)

// Kruskal returns the spanning forest of g that prefers edges sorting first
// under less, and the sum of the chosen weights.
//
// Steps:
//  1. Validate: graph and ordering non-nil.
//  2. Collect graph.Edges() (insertion order) and stable-sort them by less.
//  3. Initialize DSU parent/rank for every vertex.
//  4. Take each edge whose endpoints lie in different sets; union them.
//  5. Stop early once |V|−1 edges are chosen.
//
// An empty graph yields an empty forest.
func Kruskal(graph *core.Graph, less Less) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	if less == nil {
		return nil, 0, ErrNilOrder
	}

	vertices := graph.Vertices()
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return less(edges[i], edges[j]) })

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether u and v were disjoint.
	union := func(u, v string) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	var (
		forest = make([]core.Edge, 0, len(vertices))
		total  float64
	)
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == len(vertices)-1 {
			break
		}
	}

	return forest, total, nil
}

// Backbone is Kruskal under ByStrength.
func Backbone(graph *core.Graph) ([]core.Edge, error) {
	forest, _, err := Kruskal(graph, ByStrength)

	return forest, err
}

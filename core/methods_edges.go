// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in insertion order; IDs are "e1", "e2", … in that order.
//
// Concurrency:
//   - Edges, order and adjacency are protected by muEdgeAdj.
package core

import (
	"fmt"
	"math"
)

const edgeIDPrefix = "e"

// AddEdge connects from and to with the given weight and returns the new edge ID.
//
// Implementation:
//   - Stage 1: Validate IDs, reject loops and non-finite weights.
//   - Stage 2: Ensure both endpoints exist (idempotent AddVertex).
//   - Stage 3: Under muEdgeAdj, reject a parallel edge in either orientation,
//     then register the edge and mirror the adjacency entry.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.order = append(g.order, eid)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether a and b are adjacent (orientation-free).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edge returns a copy of the edge between a and b.
// Returns ErrEmptyVertexID or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(a, b string) (Edge, error) {
	if a == "" || b == "" {
		return Edge{}, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[a][b]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.order))
	for _, eid := range g.order {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

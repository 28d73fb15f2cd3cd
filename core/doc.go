// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory, undirected simple graph with
// float64 edge weights and string vertex attributes. It is the materialized
// form of a dependence graph: vertices are asset labels, an edge carries the
// thresholded precision entry that produced it, and vertex attributes hold
// presentation data such as a sector and its color.
//
// Shape of the graph:
//
//   - Undirected: AddEdge("A","B") and AddEdge("B","A") name the same pair.
//   - Simple: self-loops return ErrLoopNotAllowed, a second edge between the
//     same pair returns ErrMultiEdgeNotAllowed.
//   - Weighted: any finite float64; NaN and ±Inf return ErrBadWeight.
//   - Edge IDs are "e1", "e2", … in insertion order.
//
// Concurrency:
//
//	Separate sync.RWMutex locks guard the vertex catalog (muVert) and the
//	edges plus adjacency (muEdgeAdj). Lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//	Vertices() and Neighbors() are sorted lexicographically; Edges() follows
//	insertion order, so a graph built from a deterministic edge list
//	enumerates identically on every run.
//
// Core Methods:
//
//	AddVertex(id) error                     // O(1), idempotent
//	HasVertex(id) bool                      // O(1)
//	SetVertexAttr(id, key, value) error     // O(1)
//	VertexAttr(id, key) (string, bool)      // O(1)
//	AddEdge(from, to, weight) (string, error)  // O(1)
//	HasEdge(a, b) bool                      // O(1)
//	Edge(a, b) (Edge, error)                // O(1)
//	Edges() []Edge                          // O(E)
//	Neighbors(id) ([]string, error)         // O(d·log d)
//	Degree(id) (int, error)                 // O(1)
//	Vertices() []string                     // O(V·log V)
//	VertexCount(), EdgeCount() int          // O(1)
package core

// SPDX-License-Identifier: MIT

// Package prim_kruskal computes spanning forests of a core.Graph with
// Kruskal's algorithm (sort edges, union-find with path compression and
// union by rank).
//
// A thresholded dependence graph is usually disconnected, so the result is
// a forest: one spanning tree per connected component, |V| − C edges for C
// components. Backbone keeps, inside each cluster, the strongest acyclic set
// of dependencies: the maximum spanning forest by |weight|.
//
// Determinism: ties keep core.Graph.Edges insertion order (stable sort).
//
// Complexity: O(E log E + α(V)·E) time, O(E + V) memory.
package prim_kruskal

// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links and visit order, and the connected components of a
// graph built on top of it.
//
// Edge weights are ignored: a hop is a hop. On a dependence graph the
// components are the clusters of assets linked by retained conditional
// dependencies, and the BFS depth from an asset is its hop distance to every
// other asset of its cluster.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs sorted ascending and BFS enqueues them in
//	that order, so the visit sequence is reproducible. Components are ordered
//	by their smallest vertex ID, and each component lists its IDs ascending.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - Wrapped OnVisit errors; ctx.Err() on cancellation.
package bfs

// SPDX-License-Identifier: MIT

// Package precisiongraph builds sparse conditional-dependence graphs of
// assets from their returns.
//
// The pipeline, one explicit call per (λ, q):
//
//	returns (T×N) ──► shrinkage  Σ(λ) = (1−λ)·S + λ·μI
//	              ──► precision  P = Σ(λ)⁻¹ (Cholesky)
//	              ──► threshold  keep |P_ij| > Q_q(|P|)
//	              ──► netgraph   edges + sector colors
//
// Subpackages:
//
//	matrix/        dense row-major matrix, validators, covariance, gonum bridge
//	shrinkage/     sample covariance, shrinkage toward μI, Ledoit–Wolf intensity
//	precision/     Cholesky inverse, partial correlations
//	threshold/     quantile cutoff and filter
//	netgraph/      edge list, sector palette, core.Graph export, clusters, backbone
//	core/          thread-safe undirected weighted graph
//	bfs/           breadth-first search and connected components
//	prim_kruskal/  Kruskal spanning forests
//	pipeline/      Recompute(λ, q) over a fixed sample, parallel Sweep
//	returns/       CSV/XLSX readers, log returns, sector files
//	cmd/precgraph  CLI: build, sweep, serve
//
// Quick ASCII example (A and B strongly dependent, C nearly independent):
//
//	    A───B        C
//
//	go get github.com/katalvlaran/precisiongraph
package precisiongraph

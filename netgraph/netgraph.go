// SPDX-License-Identifier: MIT

// Package netgraph turns a thresholded symmetric matrix and its vertex labels
// into an undirected edge list, and optionally colors the vertices that appear
// in at least one edge by sector.
//
// Only the strict upper triangle (i<j) is scanned, so the edge list never
// holds a self-loop and never holds both (a,b) and (b,a). Edges are emitted in
// ascending i, then ascending j.
package netgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/precisiongraph/matrix"
)

const opBuild = "Build"

// Edge is one undirected pair of the graph. From is the label with the
// smaller matrix index; Weight is the matrix entry at (From, To).
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Result is the output of Build.
type Result struct {
	// Edges in ascending (i, j) order.
	Edges []Edge `json:"edges"`

	// Vertices lists the labels used by at least one edge, in matrix-index order.
	Vertices []string `json:"vertices"`

	// Colors maps each used vertex with a known sector to "#rrggbb".
	// It is nil when no sector assignment was supplied.
	Colors map[string]string `json:"colors,omitempty"`

	// Sectors maps each colored vertex to its sector; nil without an assignment.
	Sectors map[string]string `json:"sectors,omitempty"`
}

func netgraphErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Build extracts the edge list of m and, when sectors is non-nil, the vertex
// color map.
//
// Implementation:
//   - Stage 1: m square, len(labels) == N, labels non-empty and unique.
//   - Stage 2: scan i<j; emit {labels[i], labels[j], m_ij} for m_ij ≠ 0 and
//     mark both endpoints as used.
//   - Stage 3: with sectors: collect the distinct sectors of used vertices,
//     sort them, assign Palette(k) in that order and map every used vertex
//     with a sector to its color. Used vertices without a sector entry are
//     left uncolored.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimension (label count),
//     matrix.ErrNaNInf, ErrEmptyLabel, ErrDuplicateLabel.
//
// Complexity:
//   - Time O(N² + K log K) for K sectors, Space O(E + N).
func Build(m matrix.Matrix, labels []string, sectors map[string]string) (*Result, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, netgraphErrorf(opBuild, err)
	}
	n := m.Rows()
	if len(labels) != n {
		return nil, netgraphErrorf(opBuild, fmt.Errorf("%d labels for %d vertices: %w", len(labels), n, matrix.ErrDimension))
	}
	if err := ValidateLabels(labels); err != nil {
		return nil, netgraphErrorf(opBuild, err)
	}

	res := &Result{Edges: []Edge{}, Vertices: []string{}}
	used := make([]bool, n)

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, netgraphErrorf(opBuild, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, netgraphErrorf(opBuild, fmt.Errorf("entry (%d,%d): %w", i, j, matrix.ErrNaNInf))
			}
			if v == 0 {
				continue
			}
			res.Edges = append(res.Edges, Edge{From: labels[i], To: labels[j], Weight: v})
			used[i], used[j] = true, true
		}
	}
	for i = 0; i < n; i++ {
		if used[i] {
			res.Vertices = append(res.Vertices, labels[i])
		}
	}

	if sectors != nil {
		res.Colors, res.Sectors = colorize(res.Vertices, sectors)
	}

	return res, nil
}

// ValidateLabels rejects empty and repeated labels.
// Errors: ErrEmptyLabel, ErrDuplicateLabel.
func ValidateLabels(labels []string) error {
	seen := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return fmt.Errorf("label %d: %w", i, ErrEmptyLabel)
		}
		if prev, dup := seen[l]; dup {
			return fmt.Errorf("label %q at %d and %d: %w", l, prev, i, ErrDuplicateLabel)
		}
		seen[l] = i
	}

	return nil
}

// colorize assigns one palette color per distinct sector among used vertices.
func colorize(used []string, sectors map[string]string) (map[string]string, map[string]string) {
	colors := make(map[string]string, len(used))
	assigned := make(map[string]string, len(used))

	distinct := make(map[string]struct{})
	for _, label := range used {
		if s, ok := sectors[label]; ok {
			distinct[s] = struct{}{}
			assigned[label] = s
		}
	}
	names := make([]string, 0, len(distinct))
	for s := range distinct {
		names = append(names, s)
	}
	sort.Strings(names)

	palette := Palette(len(names))
	bySector := make(map[string]string, len(names))
	for k, s := range names {
		bySector[s] = palette[k]
	}
	for label, s := range assigned {
		colors[label] = bySector[s]
	}

	return colors, assigned
}

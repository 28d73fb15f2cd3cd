// SPDX-License-Identifier: MIT

package netgraph

import (
	"fmt"

	"github.com/katalvlaran/precisiongraph/bfs"
	"github.com/katalvlaran/precisiongraph/core"
	"github.com/katalvlaran/precisiongraph/prim_kruskal"
)

// Vertex attribute keys set by (*Result).Graph.
const (
	AttrSector = "sector"
	AttrColor  = "color"
)

// Graph materializes the result as a core.Graph: one vertex per used label,
// one weighted edge per Edge, and the "sector"/"color" attributes for
// colored vertices.
func (r *Result) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, v := range r.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("Graph: %w", err)
		}
	}
	for _, e := range r.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("Graph: edge %s–%s: %w", e.From, e.To, err)
		}
	}
	for label, color := range r.Colors {
		if err := g.SetVertexAttr(label, AttrColor, color); err != nil {
			return nil, fmt.Errorf("Graph: %w", err)
		}
		if err := g.SetVertexAttr(label, AttrSector, r.Sectors[label]); err != nil {
			return nil, fmt.Errorf("Graph: %w", err)
		}
	}

	return g, nil
}

// Components returns the clusters of the graph: the connected components over
// the used vertices, each sorted ascending, ordered by their smallest label.
// Isolated labels are not vertices of the result and so form no component.
func (r *Result) Components() ([][]string, error) {
	g, err := r.Graph()
	if err != nil {
		return nil, err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}

	return comps, nil
}

// Backbone returns the maximum spanning forest of the graph by |Weight|: per
// cluster, the strongest dependencies that connect it without a cycle.
func (r *Result) Backbone() ([]Edge, error) {
	g, err := r.Graph()
	if err != nil {
		return nil, err
	}
	forest, err := prim_kruskal.Backbone(g)
	if err != nil {
		return nil, fmt.Errorf("Backbone: %w", err)
	}
	out := make([]Edge, len(forest))
	for i, e := range forest {
		out[i] = Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out, nil
}

package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dungeongen/dsu"
	"github.com/katalvlaran/dungeongen/geom"
)

// Kruskal computes a minimum spanning tree (or forest) of the graph whose
// vertices are points and whose candidate edges are edges.
//
// Error Conditions:
//   - ErrVertexOutOfRange : an endpoint is outside [0, len(points)).
//
// Steps:
//  1. Validate endpoints; fewer than 2 points ⇒ empty tree.
//  2. Pair every edge with its squared length.
//  3. Stable-sort ascending by weight so ties keep input order.
//  4. Walk the sorted edges with a union-find over len(points) elements;
//     accept an edge iff its endpoints are in different sets, then union.
//  5. Stop once len(points)-1 edges are accepted.
//
// Complexity: O(E log E + E·α(V)). Memory: O(E + V).
func Kruskal(points []geom.Point, edges []Edge) ([]Edge, error) {
	// 1. Endpoints must address points; anything else is an upstream bug.
	if err := validate(len(points), edges); err != nil {
		return nil, fmt.Errorf("kruskal: %w", err)
	}
	if len(points) < 2 {
		return []Edge{}, nil
	}

	// 2. Precompute weights once; the sort compares them O(E log E) times.
	type weighted struct {
		edge   Edge
		weight float64
	}
	sorted := make([]weighted, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			// Self-loops can never join two components.
			continue
		}
		sorted = append(sorted, weighted{edge: e, weight: e.Weight(points)})
	}

	// 3. Stable sort keeps duplicate and equal-weight edges in input order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].weight < sorted[j].weight
	})

	// 4. Accept edges that join two components.
	forest := dsu.New(len(points))
	want := len(points) - 1
	tree := make([]Edge, 0, want)
	for _, w := range sorted {
		if !forest.Union(w.edge.U, w.edge.V) {
			// Duplicate side or cycle-closing edge.
			continue
		}
		tree = append(tree, w.edge)
		// 5. A spanning tree over V vertices has exactly V-1 edges.
		if len(tree) == want {
			break
		}
	}

	return tree, nil
}

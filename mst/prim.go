package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dungeongen/geom"
)

// Prim grows a minimum spanning tree from root over the same edge-list input
// as Kruskal. Only the component containing root is spanned. Generation
// does not call it; it exists to cross-check Kruskal.
//
// Error Conditions:
//   - ErrVertexOutOfRange : an endpoint or root is outside [0, len(points)).
//
// Steps:
//  1. Validate endpoints and root; fewer than 2 points ⇒ empty tree.
//  2. Build an adjacency list of edge indices per vertex.
//  3. Mark root visited and push its incident edges onto a min-heap.
//  4. Pop the lightest edge; skip it if both ends are visited, otherwise
//     accept it, visit the new end and push that end's edges.
//
// Complexity: O(E log E). Memory: O(V + E).
func Prim(points []geom.Point, edges []Edge, root int) ([]Edge, error) {
	n := len(points)
	if err := validate(n, edges); err != nil {
		return nil, fmt.Errorf("prim: %w", err)
	}
	if n < 2 {
		return []Edge{}, nil
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("prim: root %d: %w", root, ErrVertexOutOfRange)
	}

	adj := make([][]int, n)
	for i, e := range edges {
		adj[e.U] = append(adj[e.U], i)
		adj[e.V] = append(adj[e.V], i)
	}

	visited := make([]bool, n)
	tree := make([]Edge, 0, n-1)
	pq := &candidatePQ{}
	heap.Init(pq)

	visit := func(v int) {
		visited[v] = true
		for _, ei := range adj[v] {
			e := edges[ei]
			if !visited[e.U] || !visited[e.V] {
				heap.Push(pq, candidate{index: ei, weight: e.Weight(points)})
			}
		}
	}
	visit(root)

	for pq.Len() > 0 && len(tree) < n-1 {
		c := heap.Pop(pq).(candidate)
		e := edges[c.index]
		if visited[e.U] && visited[e.V] {
			continue
		}
		tree = append(tree, e)
		if visited[e.U] {
			visit(e.V)
		} else {
			visit(e.U)
		}
	}

	return tree, nil
}

// candidate is a heap entry; index breaks weight ties by input order.
type candidate struct {
	index  int
	weight float64
}

// candidatePQ implements heap.Interface as a min-heap on (weight, index).
type candidatePQ []candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].index < pq[j].index
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}

package mst

import (
	"errors"
	"sort"

	"github.com/katalvlaran/dungeongen/geom"
)

// ErrVertexOutOfRange indicates an edge endpoint or root outside the point set.
var ErrVertexOutOfRange = errors.New("mst: vertex index out of range")

// Edge is an unordered pair of point indices.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// Weight returns the squared Euclidean length of e over points.
// Endpoints must be valid indices.
func (e Edge) Weight(points []geom.Point) float64 {
	return points[e.U].DistSq(points[e.V])
}

// Same reports whether e and o join the same two vertices, in either order.
func (e Edge) Same(o Edge) bool {
	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// TotalWeight sums the squared lengths of edges.
func TotalWeight(points []geom.Point, edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight(points)
	}

	return total
}

// EdgesFromTriangles returns the three sides of every triangle in the flat
// index slice tris, walking triples from last to first. A trailing partial
// triple is ignored.
func EdgesFromTriangles(tris []int) []Edge {
	n := len(tris) / 3 * 3
	edges := make([]Edge, 0, n)
	for i := n; i > 0; i -= 3 {
		a, b, c := tris[i-3], tris[i-2], tris[i-1]
		edges = append(edges, Edge{a, b}, Edge{b, c}, Edge{c, a})
	}

	return edges
}

// validate checks every endpoint against n.
func validate(n int, edges []Edge) error {
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return ErrVertexOutOfRange
		}
	}

	return nil
}

// EdgesAlongLine orders points by their projection onto the line through
// the lowest point (by X, then Y) and the point farthest from it, and joins
// consecutive points. It is the spanning path used when points are collinear
// and no triangulation exists. Ties keep index order; coincident points chain
// in index order.
func EdgesAlongLine(points []geom.Point) []Edge {
	if len(points) < 2 {
		return []Edge{}
	}
	origin := points[0]
	for _, p := range points[1:] {
		if p.X < origin.X || (p.X == origin.X && p.Y < origin.Y) {
			origin = p
		}
	}
	dir := origin
	for _, p := range points {
		if origin.DistSq(p) > origin.DistSq(dir) {
			dir = p
		}
	}
	dir = dir.Sub(origin)

	order := make([]int, len(points))
	proj := make([]float64, len(points))
	for i, p := range points {
		order[i] = i
		d := p.Sub(origin)
		proj[i] = d.X*dir.X + d.Y*dir.Y
	}
	sort.SliceStable(order, func(a, b int) bool { return proj[order[a]] < proj[order[b]] })

	edges := make([]Edge, 0, len(points)-1)
	for i := 1; i < len(order); i++ {
		edges = append(edges, Edge{U: order[i-1], V: order[i]})
	}

	return edges
}

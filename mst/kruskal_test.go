package mst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeongen/dsu"
	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/mst"
)

var square = []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

// squareEdges lists the four sides then both diagonals.
var squareEdges = []mst.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {1, 3}}

// isSpanningTree reports whether edges connect all n vertices without a cycle.
func isSpanningTree(n int, edges []mst.Edge) bool {
	if len(edges) != n-1 {
		return false
	}
	d := dsu.New(n)
	for _, e := range edges {
		if !d.Union(e.U, e.V) {
			return false
		}
	}

	return d.Sets() == 1
}

// bruteForceMin enumerates every (n-1)-subset of edges and returns the
// smallest total weight among those that form a spanning tree.
func bruteForceMin(points []geom.Point, edges []mst.Edge) float64 {
	n := len(points)
	best := math.Inf(1)
	var pick func(start int, chosen []mst.Edge)
	pick = func(start int, chosen []mst.Edge) {
		if len(chosen) == n-1 {
			if isSpanningTree(n, chosen) {
				best = math.Min(best, mst.TotalWeight(points, chosen))
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick(i+1, append(chosen, edges[i]))
		}
	}
	pick(0, nil)

	return best
}

func TestEdgesFromTriangles(t *testing.T) {
	assert.Empty(t, mst.EdgesFromTriangles(nil))
	assert.Equal(t,
		[]mst.Edge{{2, 1}, {1, 3}, {3, 2}, {0, 1}, {1, 2}, {2, 0}},
		mst.EdgesFromTriangles([]int{0, 1, 2, 2, 1, 3}))
	// Trailing partial triple is ignored.
	assert.Equal(t, []mst.Edge{{0, 1}, {1, 2}, {2, 0}}, mst.EdgesFromTriangles([]int{0, 1, 2, 5}))
}

func TestKruskal_SquareIsMinimal(t *testing.T) {
	tree, err := mst.Kruskal(square, squareEdges)
	require.NoError(t, err)
	assert.True(t, isSpanningTree(len(square), tree))
	assert.Equal(t, bruteForceMin(square, squareEdges), mst.TotalWeight(square, tree))
	// Equal-weight sides are taken in input order.
	assert.Equal(t, []mst.Edge{{0, 1}, {1, 2}, {2, 3}}, tree)
}

func TestKruskal_AcceptanceOrder(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 0}}
	// Listed heaviest first; the result follows weight, not input order.
	edges := []mst.Edge{{0, 2}, {1, 2}, {0, 1}}
	tree, err := mst.Kruskal(points, edges)
	require.NoError(t, err)
	assert.Equal(t, []mst.Edge{{0, 1}, {1, 2}}, tree)
}

func TestKruskal_DuplicatesAndSelfLoops(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	tree, err := mst.Kruskal(points, []mst.Edge{{0, 0}, {0, 1}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []mst.Edge{{0, 1}}, tree)
}

func TestKruskal_Degenerate(t *testing.T) {
	tree, err := mst.Kruskal(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tree)

	tree, err = mst.Kruskal([]geom.Point{{X: 1, Y: 1}}, nil)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestKruskal_Forest(t *testing.T) {
	tree, err := mst.Kruskal(square, []mst.Edge{{0, 1}, {2, 3}})
	require.NoError(t, err)
	assert.Len(t, tree, 2)
}

func TestKruskal_VertexOutOfRange(t *testing.T) {
	_, err := mst.Kruskal(square, []mst.Edge{{0, 4}})
	require.ErrorIs(t, err, mst.ErrVertexOutOfRange)

	_, err = mst.Kruskal(square, []mst.Edge{{-1, 0}})
	require.ErrorIs(t, err, mst.ErrVertexOutOfRange)
}

func TestKruskal_Deterministic(t *testing.T) {
	points, edges := completeGraph(40, 7)
	first, err := mst.Kruskal(points, edges)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := mst.Kruskal(points, edges)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPrim_MatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		points, edges := completeGraph(30, seed)
		k, err := mst.Kruskal(points, edges)
		require.NoError(t, err)
		p, err := mst.Prim(points, edges, 0)
		require.NoError(t, err)

		assert.True(t, isSpanningTree(len(points), k))
		assert.True(t, isSpanningTree(len(points), p))
		assert.InDelta(t, mst.TotalWeight(points, k), mst.TotalWeight(points, p), 1e-6)
	}
}

func TestPrim_RootOutOfRange(t *testing.T) {
	_, err := mst.Prim(square, squareEdges, 9)
	require.ErrorIs(t, err, mst.ErrVertexOutOfRange)
}

func TestEdge_Same(t *testing.T) {
	assert.True(t, mst.Edge{U: 1, V: 2}.Same(mst.Edge{U: 2, V: 1}))
	assert.False(t, mst.Edge{U: 1, V: 2}.Same(mst.Edge{U: 1, V: 3}))
}

func TestEdgesAlongLine(t *testing.T) {
	// Shuffled points on a diagonal.
	points := []geom.Point{{X: 20, Y: 10}, {X: 0, Y: 0}, {X: 40, Y: 20}, {X: 10, Y: 5}}
	edges := mst.EdgesAlongLine(points)
	assert.Equal(t, []mst.Edge{{1, 3}, {3, 0}, {0, 2}}, edges)

	// A path along the line is already minimal.
	tree, err := mst.Kruskal(points, edges)
	require.NoError(t, err)
	assert.True(t, isSpanningTree(len(points), tree))

	vertical := []geom.Point{{X: 5, Y: 30}, {X: 5, Y: -10}, {X: 5, Y: 0}}
	assert.Equal(t, []mst.Edge{{1, 2}, {2, 0}}, mst.EdgesAlongLine(vertical))

	same := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	assert.Equal(t, []mst.Edge{{0, 1}, {1, 2}}, mst.EdgesAlongLine(same))

	assert.Empty(t, mst.EdgesAlongLine([]geom.Point{{X: 1, Y: 1}}))
}

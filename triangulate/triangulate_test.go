package triangulate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/triangulate"
)

func TestTriangulate_TooFewPoints(t *testing.T) {
	for _, pts := range [][]geom.Point{nil, {{X: 1, Y: 1}}, {{X: 0, Y: 0}, {X: 5, Y: 5}}} {
		tris, err := triangulate.Triangulate(pts)
		require.NoError(t, err)
		assert.NotNil(t, tris)
		assert.Empty(t, tris)
	}
}

func TestTriangulate_Triangle(t *testing.T) {
	tris, err := triangulate.Triangulate([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}})
	require.NoError(t, err)
	require.Len(t, tris, 3)
	assert.ElementsMatch(t, []int{0, 1, 2}, tris)
	assert.Equal(t, 1, triangulate.Count(tris))
}

func TestTriangulate_Square(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}
	tris, err := triangulate.Triangulate(pts)
	require.NoError(t, err)
	require.Equal(t, 2, triangulate.Count(tris))
	seen := map[int]bool{}
	for _, i := range tris {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, len(pts))
		seen[i] = true
	}
	assert.Len(t, seen, 4, "every corner belongs to a triangle")
}

func TestTriangulate_Collinear(t *testing.T) {
	_, err := triangulate.Triangulate([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}})
	require.ErrorIs(t, err, triangulate.ErrTriangulation)
}

func TestTriangulate_EulerCount(t *testing.T) {
	// For points in general position: T = 2n - 2 - h, with h hull vertices.
	// With a square hull and interior points, h = 4.
	r := rand.New(rand.NewSource(2))
	pts := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	for i := 0; i < 30; i++ {
		pts = append(pts, geom.Point{X: 5 + r.Float64()*90, Y: 5 + r.Float64()*90})
	}
	tris, err := triangulate.Triangulate(pts)
	require.NoError(t, err)
	assert.Equal(t, 2*len(pts)-2-4, triangulate.Count(tris))
}

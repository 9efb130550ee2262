package hallway_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/hallway"
	"github.com/katalvlaran/dungeongen/mst"
	"github.com/katalvlaran/dungeongen/room"
)

// fixedBody is a body that never moves.
type fixedBody struct{ r geom.Rect }

func (b fixedBody) Position() geom.Point   { return b.r.Center() }
func (b fixedBody) Vertices() geom.Polygon { return b.r.Polygon() }
func (b fixedBody) IsSleeping() bool       { return true }

func roomAt(i int, c geom.Point) *room.Room {
	return room.New(i, c, 10, 10, fixedBody{geom.RectAt(c, 10, 10)})
}

func TestPath_HorizontalFirst(t *testing.T) {
	pts := hallway.Path(geom.Pt(0, 0), geom.Pt(2, 3), true)
	assert.Equal(t, []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3},
	}, pts)
}

func TestPath_VerticalFirst(t *testing.T) {
	pts := hallway.Path(geom.Pt(2, 3), geom.Pt(0, 0), false)
	assert.Equal(t, []geom.Point{
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3},
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
	}, pts)
}

func TestPath_SamePoint(t *testing.T) {
	pts := hallway.Path(geom.Pt(5, 5), geom.Pt(5, 5), true)
	assert.Equal(t, []geom.Point{{X: 5, Y: 5}, {X: 5, Y: 5}}, pts)
}

func TestPath_InsideBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := geom.Pt(rng.Float64()*200-100, rng.Float64()*200-100)
		b := geom.Pt(rng.Float64()*200-100, rng.Float64()*200-100)
		// Compare against the endpoints directly; rebuilding the upper
		// bound as X+W rounds.
		xLo, xHi := math.Min(a.X, b.X), math.Max(a.X, b.X)
		yLo, yHi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
		for _, p := range hallway.Path(a, b, rng.Intn(2) == 0) {
			require.GreaterOrEqual(t, p.X, xLo)
			require.LessOrEqual(t, p.X, xHi)
			require.GreaterOrEqual(t, p.Y, yLo)
			require.LessOrEqual(t, p.Y, yHi)
		}
	}
}

func TestRoute_OnePerEdgeInOrder(t *testing.T) {
	mains := []*room.Room{
		roomAt(0, geom.Pt(0, 0)),
		roomAt(1, geom.Pt(4, 0)),
		roomAt(2, geom.Pt(4, 4)),
	}
	tree := []mst.Edge{{U: 0, V: 1}, {U: 1, V: 2}}

	hs := hallway.Route(tree, mains, hallway.Sequence(true, false))
	require.Len(t, hs, 2)
	assert.Equal(t, 0, hs[0].From)
	assert.Equal(t, 1, hs[0].To)
	assert.True(t, hs[0].HorizontalFirst)
	assert.False(t, hs[1].HorizontalFirst)
	assert.Len(t, hs[0].Points, 6) // 5 along x, 1 along y
	assert.Len(t, hs[1].Points, 6) // 5 along y, 1 along x
	assert.Equal(t, 12, hallway.Len(hs))

	assert.Equal(t, geom.Pt(4, 0), hs[0].Corner())
	assert.Equal(t, geom.Pt(4, 4), hs[1].Corner())
	seg := hs[1].Segment()
	assert.Equal(t, hallway.Segment{
		From: 1, To: 2,
		Start: geom.Pt(4, 0), Corner: geom.Pt(4, 4), End: geom.Pt(4, 4),
	}, seg)
}

func TestHallway_CornerIsOnBothRuns(t *testing.T) {
	a, b := geom.Pt(0, 0), geom.Pt(3, 2)
	for _, heads := range []bool{true, false} {
		h := hallway.Hallway{Start: a, End: b, HorizontalFirst: heads, Points: hallway.Path(a, b, heads)}
		n := 0
		for _, p := range h.Points {
			if p == h.Corner() {
				n++
			}
		}
		assert.Equal(t, 2, n, "heads=%v", heads)
	}
}

func TestRoute_Empty(t *testing.T) {
	assert.Empty(t, hallway.Route(nil, nil, nil))
}

func TestSequence_Cycles(t *testing.T) {
	c := hallway.Sequence(true, false, false)
	got := make([]bool, 6)
	for i := range got {
		got[i] = c()
	}
	assert.Equal(t, []bool{true, false, false, true, false, false}, got)
	assert.True(t, hallway.Sequence()())
}

func TestRandCoin(t *testing.T) {
	assert.Panics(t, func() { hallway.RandCoin(nil) })

	c := hallway.RandCoin(rand.New(rand.NewSource(1)))
	heads := 0
	for i := 0; i < 1000; i++ {
		if c() {
			heads++
		}
	}
	assert.InDelta(t, 500, heads, 100)
}

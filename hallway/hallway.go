// Package hallway routes an L-shaped corridor along every spanning-tree edge.
//
// Each corridor joins the centers of two main rooms with one horizontal and
// one vertical run. A Coin picks which run comes first; the runs are
// sampled at unit steps from their lower to their upper coordinate,
// inclusive, so the corner point appears in both runs.
package hallway

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/mst"
	"github.com/katalvlaran/dungeongen/room"
)

// Coin returns true for heads (horizontal run first).
type Coin func() bool

// RandCoin flips a fair coin drawn from rng.
func RandCoin(rng *rand.Rand) Coin {
	if rng == nil {
		panic("hallway: RandCoin requires a non-nil rng")
	}

	return func() bool { return rng.Intn(2) == 0 }
}

// Sequence replays flips in order, cycling when exhausted.
// An empty sequence always returns heads.
func Sequence(flips ...bool) Coin {
	seq := append([]bool(nil), flips...)
	i := 0

	return func() bool {
		if len(seq) == 0 {
			return true
		}
		f := seq[i%len(seq)]
		i++

		return f
	}
}

// Hallway is the sampled corridor between main rooms From and To.
// Start and End are the two room centers the corridor joins.
type Hallway struct {
	From            int          `json:"from"`
	To              int          `json:"to"`
	Start           geom.Point   `json:"start"`
	End             geom.Point   `json:"end"`
	HorizontalFirst bool         `json:"horizontalFirst"`
	Points          []geom.Point `json:"points"`
}

// Corner returns the elbow where the two runs meet.
func (h Hallway) Corner() geom.Point {
	if h.HorizontalFirst {
		return geom.Point{X: h.End.X, Y: h.Start.Y}
	}

	return geom.Point{X: h.Start.X, Y: h.End.Y}
}

// Segment is a hallway without its sampled points: enough to redraw it.
type Segment struct {
	From            int        `json:"from"`
	To              int        `json:"to"`
	Start           geom.Point `json:"start"`
	Corner          geom.Point `json:"corner"`
	End             geom.Point `json:"end"`
	HorizontalFirst bool       `json:"horizontalFirst"`
}

// Segment drops the sampled points of h.
func (h Hallway) Segment() Segment {
	return Segment{
		From:            h.From,
		To:              h.To,
		Start:           h.Start,
		Corner:          h.Corner(),
		End:             h.End,
		HorizontalFirst: h.HorizontalFirst,
	}
}

// Path samples the L between a and b.
//
// horizontalFirst: run along y = a.Y, then along x = b.X.
// Otherwise:       run along x = a.X, then along y = b.Y.
func Path(a, b geom.Point, horizontalFirst bool) []geom.Point {
	xLo, xHi := math.Min(a.X, b.X), math.Max(a.X, b.X)
	yLo, yHi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	pts := make([]geom.Point, 0, int(xHi-xLo)+int(yHi-yLo)+2)
	if horizontalFirst {
		pts = appendRunX(pts, xLo, xHi, a.Y)
		pts = appendRunY(pts, yLo, yHi, b.X)
	} else {
		pts = appendRunY(pts, yLo, yHi, a.X)
		pts = appendRunX(pts, xLo, xHi, b.Y)
	}

	return pts
}

func appendRunX(pts []geom.Point, lo, hi, y float64) []geom.Point {
	for x := lo; x <= hi; x++ {
		pts = append(pts, geom.Point{X: x, Y: y})
	}

	return pts
}

func appendRunY(pts []geom.Point, lo, hi, x float64) []geom.Point {
	for y := lo; y <= hi; y++ {
		pts = append(pts, geom.Point{X: x, Y: y})
	}

	return pts
}

// Route builds one hallway per tree edge, in tree order. Edge endpoints
// index mainRooms; the coin is flipped once per edge. A nil coin always
// lands heads.
func Route(tree []mst.Edge, mainRooms []*room.Room, coin Coin) []Hallway {
	if coin == nil {
		coin = Sequence()
	}
	out := make([]Hallway, 0, len(tree))
	for _, e := range tree {
		heads := coin()
		a, b := mainRooms[e.U].Center(), mainRooms[e.V].Center()
		out = append(out, Hallway{
			From:            e.U,
			To:              e.V,
			Start:           a,
			End:             b,
			HorizontalFirst: heads,
			Points:          Path(a, b, heads),
		})
	}

	return out
}

// Len returns the total number of sampled points across hallways.
func Len(hallways []Hallway) int {
	n := 0
	for _, h := range hallways {
		n += len(h.Points)
	}

	return n
}

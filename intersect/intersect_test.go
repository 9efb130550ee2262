package intersect_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/hallway"
	"github.com/katalvlaran/dungeongen/intersect"
	"github.com/katalvlaran/dungeongen/mst"
	"github.com/katalvlaran/dungeongen/room"
)

type fixedBody struct{ r geom.Rect }

func (b fixedBody) Position() geom.Point   { return b.r.Center() }
func (b fixedBody) Vertices() geom.Polygon { return b.r.Polygon() }
func (b fixedBody) IsSleeping() bool       { return true }

func box(i int, cx, cy, w, h float64) *room.Room {
	c := geom.Pt(cx, cy)
	return room.New(i, c, int(w), int(h), fixedBody{geom.RectAt(c, w, h)})
}

// corridorFixture lays two main rooms 100 apart on the x axis with three
// small rooms between them, two on the corridor and one well off it.
func corridorFixture() (mains, all []*room.Room) {
	a := box(0, 0, 0, 20, 20)
	b := box(1, 100, 0, 20, 20)
	onLeft := box(2, 30, 0, 10, 10)
	onRight := box(3, 70, 0, 10, 10)
	off := box(4, 50, 80, 10, 10)

	return []*room.Room{a, b}, []*room.Room{a, b, onRight, off, onLeft}
}

func TestResolve_FirstHitOrderExcludesMain(t *testing.T) {
	mains, all := corridorFixture()
	hs := hallway.Route([]mst.Edge{{U: 0, V: 1}}, mains, hallway.Sequence(true))

	got := intersect.Resolve(hs, mains, all)
	require.Len(t, got, 2)
	// The corridor runs left to right, so the left room is hit first even
	// though it comes last in the room list.
	assert.Equal(t, 2, got[0].Index)
	assert.Equal(t, 3, got[1].Index)
}

func TestResolve_NoDuplicatesAcrossHallways(t *testing.T) {
	mains, all := corridorFixture()
	// The same edge twice in both directions crosses the same rooms again.
	tree := []mst.Edge{{U: 0, V: 1}, {U: 1, V: 0}}
	hs := hallway.Route(tree, mains, hallway.Sequence(true))

	got := intersect.Resolve(hs, mains, all)
	assert.Len(t, got, 2)
}

func TestResolve_Empty(t *testing.T) {
	mains, all := corridorFixture()
	got := intersect.Resolve(nil, mains, all)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolve_RandomNeverMainNeverDuplicate(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var all []*room.Room
	for i := 0; i < 60; i++ {
		all = append(all, box(i, rng.Float64()*400, rng.Float64()*400, 10+rng.Float64()*40, 10+rng.Float64()*40))
	}
	mains := []*room.Room{all[0], all[7], all[19], all[33], all[50]}
	tree := []mst.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}

	hs, got := intersect.ResolveTree(tree, mains, all, hallway.RandCoin(rng))
	require.Len(t, hs, len(tree))

	seen := map[*room.Room]bool{}
	for _, r := range got {
		assert.NotContains(t, mains, r)
		assert.False(t, seen[r], "room %d reported twice", r.Index)
		seen[r] = true
	}
}

func TestRoomAt(t *testing.T) {
	_, all := corridorFixture()
	r := intersect.RoomAt(geom.Pt(31, 1), all)
	require.NotNil(t, r)
	assert.Equal(t, 2, r.Index)

	assert.Nil(t, intersect.RoomAt(geom.Pt(50, 40), all))
	assert.Nil(t, intersect.RoomAt(geom.Pt(0, 0), nil))
}

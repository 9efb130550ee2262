// Package intersect finds the non-main rooms that hallways pass through.
//
// Every hallway point is tested against the current outline of every room
// with even-odd ray casting. A room is reported once, in the order it was
// first hit, and main rooms are never reported: they are already part of
// the layout.
package intersect

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/hallway"
	"github.com/katalvlaran/dungeongen/mst"
	"github.com/katalvlaran/dungeongen/room"
)

// Resolve returns the rooms, other than mainRooms, that contain at least
// one hallway point. Order is first-hit order over hallways, then points,
// then rooms.
func Resolve(hallways []hallway.Hallway, mainRooms, rooms []*room.Room) []*room.Room {
	main := mapset.New[*room.Room]()
	for _, r := range mainRooms {
		main.Put(r)
	}

	// Outlines are read once; bodies are at rest by the time this runs.
	candidates := make([]*room.Room, 0, len(rooms))
	outlines := make([]geom.Polygon, 0, len(rooms))
	for _, r := range rooms {
		if main.Has(r) {
			continue
		}
		candidates = append(candidates, r)
		outlines = append(outlines, r.Outline())
	}

	seen := mapset.New[*room.Room]()
	var out []*room.Room
	for _, h := range hallways {
		for _, p := range h.Points {
			for i, r := range candidates {
				if seen.Has(r) || !outlines[i].Contains(p) {
					continue
				}
				seen.Put(r)
				out = append(out, r)
			}
		}
	}
	if out == nil {
		out = []*room.Room{}
	}

	return out
}

// ResolveTree routes tree over mainRooms with coin and resolves the result
// in one call. It returns the hallways alongside the intersecting rooms.
func ResolveTree(tree []mst.Edge, mainRooms, rooms []*room.Room, coin hallway.Coin) ([]hallway.Hallway, []*room.Room) {
	hs := hallway.Route(tree, mainRooms, coin)

	return hs, Resolve(hs, mainRooms, rooms)
}

// RoomAt returns the first room whose outline contains p, or nil.
func RoomAt(p geom.Point, rooms []*room.Room) *room.Room {
	for _, r := range rooms {
		if r.Contains(p) {
			return r
		}
	}

	return nil
}

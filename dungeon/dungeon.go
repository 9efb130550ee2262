package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/hallway"
	"github.com/katalvlaran/dungeongen/mst"
	"github.com/katalvlaran/dungeongen/room"
)

// Dungeon is the result of one generation run.
//
// Triangle indices and spanning-tree edges refer to positions in MainRooms,
// not to Room.Index.
type Dungeon struct {
	// Seed is the seed the run's RNG was built from, or 0 when the caller
	// supplied the RNG with WithRand.
	Seed          int64
	Rooms         []*room.Room
	MainRooms     []*room.Room
	AreaThreshold float64
	Triangles     []int
	TriangleEdges []mst.Edge
	SpanningTree  []mst.Edge
	Hallways      []hallway.Hallway
	Intersecting  []*room.Room
}

// IsMain reports whether r was selected as a main room.
func (d *Dungeon) IsMain(r *room.Room) bool {
	for _, m := range d.MainRooms {
		if m == r {
			return true
		}
	}

	return false
}

// Active returns the main rooms followed by the intersecting rooms.
func (d *Dungeon) Active() []*room.Room {
	out := make([]*room.Room, 0, len(d.MainRooms)+len(d.Intersecting))
	out = append(out, d.MainRooms...)

	return append(out, d.Intersecting...)
}

// Excluded returns the rooms that are neither main nor intersecting, in
// scatter order.
func (d *Dungeon) Excluded() []*room.Room {
	active := d.activeSet()
	out := make([]*room.Room, 0, len(d.Rooms))
	for _, r := range d.Rooms {
		if !active.Has(r) {
			out = append(out, r)
		}
	}

	return out
}

func (d *Dungeon) activeSet() mapset.Set[*room.Room] {
	return mapset.Of(d.Active()...)
}

// RoomView is the serializable state of one room.
type RoomView struct {
	Index        int        `json:"index"`
	Center       geom.Point `json:"center"`
	Bounds       geom.Rect  `json:"bounds"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Area         int        `json:"area"`
	Main         bool       `json:"main"`
	Intersecting bool       `json:"intersecting"`
}

// Layout is a read-only snapshot of a Dungeon suitable for encoding.
// MainRooms and Intersecting hold Room.Index values. Corridors describes
// every hallway by its corners; Hallways adds the sampled points.
type Layout struct {
	Seed          int64             `json:"seed"`
	AreaThreshold float64           `json:"areaThreshold"`
	Rooms         []RoomView        `json:"rooms"`
	MainRooms     []int             `json:"mainRooms"`
	Triangles     []int             `json:"triangles"`
	SpanningTree  []mst.Edge        `json:"spanningTree"`
	Corridors     []hallway.Segment `json:"corridors"`
	Hallways      []hallway.Hallway `json:"hallways,omitempty"`
	Intersecting  []int             `json:"intersecting"`
}

// Compact returns l without sampled hallway points. Its size grows with
// the room count only, not with corridor length.
func (l Layout) Compact() Layout {
	l.Hallways = nil

	return l
}

// Layout snapshots the current body positions and stage results.
func (d *Dungeon) Layout() Layout {
	main := mapset.Of(d.MainRooms...)
	crossed := mapset.Of(d.Intersecting...)

	views := make([]RoomView, len(d.Rooms))
	for i, r := range d.Rooms {
		views[i] = RoomView{
			Index:        r.Index,
			Center:       r.Center(),
			Bounds:       r.Outline().Bounds(),
			Width:        r.Width,
			Height:       r.Height,
			Area:         r.Area,
			Main:         main.Has(r),
			Intersecting: crossed.Has(r),
		}
	}

	corridors := make([]hallway.Segment, len(d.Hallways))
	for i, h := range d.Hallways {
		corridors[i] = h.Segment()
	}

	return Layout{
		Seed:          d.Seed,
		AreaThreshold: d.AreaThreshold,
		Rooms:         views,
		MainRooms:     indices(d.MainRooms),
		Triangles:     append([]int{}, d.Triangles...),
		SpanningTree:  append([]mst.Edge{}, d.SpanningTree...),
		Corridors:     corridors,
		Hallways:      append([]hallway.Hallway{}, d.Hallways...),
		Intersecting:  indices(d.Intersecting),
	}
}

func indices(rooms []*room.Room) []int {
	out := make([]int, len(rooms))
	for i, r := range rooms {
		out[i] = r.Index
	}

	return out
}

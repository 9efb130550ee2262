package tilemap

import (
	"math"
	"strings"

	"github.com/katalvlaran/dungeongen/dungeon"
	"github.com/katalvlaran/dungeongen/geom"
)

// New returns an all-Empty grid of w×h tiles.
// Returns ErrEmptyGrid if either dimension is not positive and ErrCellSize
// if opts.Cell is not positive.
func New(w, h int, origin geom.Point, opts Options) (*Grid, error) {
	if opts.Cell <= 0 {
		return nil, ErrCellSize
	}
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Cell:            opts.Cell,
		Origin:          origin,
		Conn:            opts.Conn,
		tiles:           make([]Tile, w*h),
		neighborOffsets: offsets,
	}, nil
}

// Rasterize converts the active rooms and hallways of d into a grid sized
// to their combined extent.
//
// A room covers every cell its outline's bounding box overlaps. A hallway
// point marks the cell containing it as Corridor unless a room already
// covers that cell. Excluded rooms are not drawn.
func Rasterize(d *dungeon.Dungeon, opts Options) (*Grid, error) {
	if opts.Cell <= 0 {
		return nil, ErrCellSize
	}
	active := d.Active()
	rects := make([]geom.Rect, len(active))
	for i, r := range active {
		rects[i] = r.Outline().Bounds()
	}

	minX, minY := math.Inf(1), math.Inf(1)
	for _, rc := range rects {
		minX, minY = math.Min(minX, rc.X), math.Min(minY, rc.Y)
	}
	for _, h := range d.Hallways {
		for _, p := range h.Points {
			minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return nil, ErrEmptyGrid
	}

	// Size the grid in cell units so a room edge on a cell boundary does not
	// add an empty row or column.
	sizer := &Grid{Cell: opts.Cell, Origin: geom.Point{
		X: math.Floor(minX/opts.Cell) * opts.Cell,
		Y: math.Floor(minY/opts.Cell) * opts.Cell,
	}}
	hiX, hiY := 0, 0
	for _, rc := range rects {
		x, y := sizer.lastCellOf(rc)
		hiX, hiY = max(hiX, x), max(hiY, y)
	}
	for _, h := range d.Hallways {
		for _, p := range h.Points {
			x, y := sizer.cellOf(p)
			hiX, hiY = max(hiX, x), max(hiY, y)
		}
	}
	g, err := New(hiX+1, hiY+1, sizer.Origin, opts)
	if err != nil {
		return nil, err
	}

	for _, rc := range rects {
		x0, y0 := g.cellOf(geom.Point{X: rc.X, Y: rc.Y})
		x1, y1 := g.lastCellOf(rc)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				g.Set(x, y, Floor)
			}
		}
	}
	for _, h := range d.Hallways {
		for _, p := range h.Points {
			x, y := g.cellOf(p)
			if g.At(x, y) == Empty {
				g.Set(x, y, Corridor)
			}
		}
	}

	return g, nil
}

// cellOf returns the cell containing p.
func (g *Grid) cellOf(p geom.Point) (x, y int) {
	return int(math.Floor((p.X - g.Origin.X) / g.Cell)), int(math.Floor((p.Y - g.Origin.Y) / g.Cell))
}

// lastCellOf returns the bottom-right cell rc overlaps. A zero-size rc
// maps to the cell containing its corner.
func (g *Grid) lastCellOf(rc geom.Rect) (x, y int) {
	x0, y0 := g.cellOf(geom.Point{X: rc.X, Y: rc.Y})
	hi := rc.Max()
	x = int(math.Ceil((hi.X-g.Origin.X)/g.Cell)) - 1
	y = int(math.Ceil((hi.Y-g.Origin.Y)/g.Cell)) - 1

	return max(x, x0), max(y, y0)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x,y), or Empty outside the grid.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Empty
	}

	return g.tiles[g.index(x, y)]
}

// Set stores t at (x,y); out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.tiles[g.index(x, y)] = t
	}
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}

	return n
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// String renders one line per row using Tile.Rune.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.At(x, y).Rune())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

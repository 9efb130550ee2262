package tilemap

import (
	"errors"

	"github.com/katalvlaran/dungeongen/geom"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("tilemap: grid must have at least one row and one column")
	// ErrCellSize indicates a non-positive cell size.
	ErrCellSize = errors.New("tilemap: cell size must be positive")
)

// Tile is the content of one cell.
type Tile uint8

const (
	Empty Tile = iota
	Floor
	Corridor
)

// Rune returns the character String uses for t.
func (t Tile) Rune() rune {
	switch t {
	case Floor:
		return '#'
	case Corridor:
		return '+'
	default:
		return '.'
	}
}

// Walkable reports whether t is Floor or Corridor.
func (t Tile) Walkable() bool { return t == Floor || t == Corridor }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options controls rasterization.
type Options struct {
	// Cell is the edge length of one tile in world units.
	Cell float64
	// Conn is the connectivity Components uses.
	Conn Connectivity
}

// DefaultOptions returns one world unit per tile with 4-connectivity.
func DefaultOptions() Options {
	return Options{Cell: 1, Conn: Conn4}
}

// Grid is a row-major tile map. Origin is the world position of the
// top-left corner of cell (0,0).
type Grid struct {
	Width, Height int
	Cell          float64
	Origin        geom.Point
	Conn          Connectivity

	tiles           []Tile
	neighborOffsets [][2]int
}

// Package room defines the Room record shared by every pipeline stage and
// the main-room selector.
//
// A Room pairs the values sampled by the scatterer (raw offset, nominal size)
// with a borrowed physics.Body. Once separation has started the body is the
// only source of truth for where a room is: Center and Contains always read
// from it, never from Offset.
package room

import (
	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/physics"
)

// Room is one rectangle of the dungeon.
type Room struct {
	// Index is the room's position in the scattered sequence.
	Index int
	// Offset is the raw point drawn around the spawn center, before physics.
	Offset geom.Point
	// Width and Height are the nominal size handed to the engine.
	Width, Height int
	// Area is Width*Height.
	Area int
	// Body is owned by the physics world; the room only borrows it.
	Body physics.Body
}

// New returns a room with Area derived from its size.
func New(index int, offset geom.Point, width, height int, body physics.Body) *Room {
	return &Room{
		Index:  index,
		Offset: offset,
		Width:  width,
		Height: height,
		Area:   width * height,
		Body:   body,
	}
}

// Center returns the body's current position.
func (r *Room) Center() geom.Point { return r.Body.Position() }

// Outline returns the body's current vertices.
func (r *Room) Outline() geom.Polygon { return r.Body.Vertices() }

// Contains reports whether p lies inside the body's current outline.
func (r *Room) Contains(p geom.Point) bool { return r.Body.Vertices().Contains(p) }

// Centers returns the current center of every room, in order.
func Centers(rooms []*Room) []geom.Point {
	pts := make([]geom.Point, len(rooms))
	for i, r := range rooms {
		pts[i] = r.Center()
	}

	return pts
}

// Bodies returns the body handle of every room, in order.
func Bodies(rooms []*Room) []physics.Body {
	out := make([]physics.Body, len(rooms))
	for i, r := range rooms {
		out[i] = r.Body
	}

	return out
}

package separation

import (
	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/physics"
)

// Body is an axis-aligned rectangle simulated by a World.
type Body struct {
	world *World
	id    int // insertion index; -1 until AddBody

	center geom.Point
	w, h   float64

	sleepThreshold int
	quiet          int
	sleeping       bool
}

var _ physics.Body = (*Body)(nil)

// rect must be called with the world lock held.
func (b *Body) rect() geom.Rect { return geom.RectAt(b.center, b.w, b.h) }

// ID returns the insertion index, or -1 if the body was never added.
func (b *Body) ID() int {
	b.world.mu.RLock()
	defer b.world.mu.RUnlock()

	return b.id
}

// Position returns the current center.
func (b *Body) Position() geom.Point {
	b.world.mu.RLock()
	defer b.world.mu.RUnlock()

	return b.center
}

// Vertices returns the four current corners.
func (b *Body) Vertices() geom.Polygon {
	b.world.mu.RLock()
	defer b.world.mu.RUnlock()

	return b.rect().Polygon()
}

// Bounds returns the current rectangle.
func (b *Body) Bounds() geom.Rect {
	b.world.mu.RLock()
	defer b.world.mu.RUnlock()

	return b.rect()
}

// IsSleeping reports whether the body has been quiet for SleepThreshold steps.
func (b *Body) IsSleeping() bool {
	b.world.mu.RLock()
	defer b.world.mu.RUnlock()

	return b.sleeping
}

// SleepThreshold returns the configured quiet-step count.
func (b *Body) SleepThreshold() int { return b.sleepThreshold }

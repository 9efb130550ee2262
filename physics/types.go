package physics

import (
	"errors"

	"github.com/katalvlaran/dungeongen/geom"
)

// ErrNotSettled indicates the separation gate gave up before every body
// came to rest (context cancelled or Gate.Timeout elapsed).
var ErrNotSettled = errors.New("physics: bodies did not settle")

// DefaultSleepThreshold is the number of consecutive quiet engine updates
// after which a body is considered asleep.
const DefaultSleepThreshold = 120

// BodyOptions configures a body at creation time.
type BodyOptions struct {
	// SleepThreshold is the number of consecutive engine updates a body must
	// stay below the engine's motion threshold before it sleeps.
	// Values <= 0 select DefaultSleepThreshold.
	SleepThreshold int
}

// Body is a handle to a rigid body owned by an external World.
// Implementations must be safe to read while the owning engine steps.
type Body interface {
	// Position returns the current center of mass.
	Position() geom.Point
	// Vertices returns the current outline in world space.
	Vertices() geom.Polygon
	// IsSleeping reports whether the engine considers the body at rest.
	IsSleeping() bool
}

// World is the capability interface the pipeline consumes.
type World interface {
	// NewRectangle creates (but does not insert) a w×h body centered at c.
	NewRectangle(c geom.Point, w, h float64, opts BodyOptions) Body
	// AddBody inserts b into the simulation.
	AddBody(b Body)
}

// StepNotifier is implemented by worlds that signal after every step.
// Subscribe returns a channel that receives (without blocking the engine)
// after each completed step, and a cancel func releasing the subscription.
// The channel is never closed by the engine.
type StepNotifier interface {
	Subscribe() (<-chan struct{}, func())
}

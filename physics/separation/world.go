package separation

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/physics"
)

// DefaultTick is the step period used by Run when tick <= 0.
const DefaultTick = time.Millisecond

// Deterministic engine defaults.
const (
	defaultWakeEpsilon = 0.05
	defaultSlop        = 0.01
	defaultCorrection  = 1.0
)

// Config tunes the solver.
type Config struct {
	// WakeEpsilon is the per-step displacement at or below which a body is quiet.
	WakeEpsilon float64 `yaml:"wakeEpsilon" json:"wakeEpsilon"`
	// Slop is the penetration depth tolerated without correction.
	Slop float64 `yaml:"slop" json:"slop"`
	// Correction is the fraction of penetration resolved per step, in (0,1].
	Correction float64 `yaml:"correction" json:"correction"`
}

// DefaultConfig returns WakeEpsilon=0.05, Slop=0.01, Correction=1.
func DefaultConfig() Config {
	return Config{
		WakeEpsilon: defaultWakeEpsilon,
		Slop:        defaultSlop,
		Correction:  defaultCorrection,
	}
}

// World owns a set of rectangular bodies and steps them.
type World struct {
	mu     sync.RWMutex
	cfg    Config
	bodies []*Body
	steps  uint64

	subs    map[uint64]chan struct{}
	nextSub uint64
}

var (
	_ physics.World        = (*World)(nil)
	_ physics.StepNotifier = (*World)(nil)
)

// NewWorld returns an empty world. Out-of-range Config fields fall back to
// DefaultConfig values.
func NewWorld(cfg Config) *World {
	def := DefaultConfig()
	if cfg.WakeEpsilon <= 0 {
		cfg.WakeEpsilon = def.WakeEpsilon
	}
	if cfg.Slop < 0 {
		cfg.Slop = def.Slop
	}
	if cfg.Correction <= 0 || cfg.Correction > 1 {
		cfg.Correction = def.Correction
	}

	return &World{cfg: cfg, subs: make(map[uint64]chan struct{})}
}

// NewRectangle creates a body owned by w. It is not simulated until AddBody.
func (w *World) NewRectangle(c geom.Point, width, height float64, opts physics.BodyOptions) physics.Body {
	threshold := opts.SleepThreshold
	if threshold <= 0 {
		threshold = physics.DefaultSleepThreshold
	}

	return &Body{world: w, id: -1, center: c, w: width, h: height, sleepThreshold: threshold}
}

// AddBody inserts b. Adding a body twice is a no-op. Panics if b was not
// created by this world, since the engine cannot simulate foreign handles.
func (w *World) AddBody(b physics.Body) {
	body, ok := b.(*Body)
	if !ok || body.world != w {
		panic("separation: AddBody with a body from another world")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if body.id >= 0 {
		return
	}
	body.id = len(w.bodies)
	w.bodies = append(w.bodies, body)
}

// Bodies returns the inserted bodies in insertion order.
func (w *World) Bodies() []*Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)

	return out
}

// Len returns the number of inserted bodies.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.bodies)
}

// Steps returns how many times Step has completed.
func (w *World) Steps() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.steps
}

// Step advances the simulation by one update and signals subscribers.
//
// Pairs are resolved in index order and each push is applied before the
// next pair is tested. A body that took part in any resolved pair is awake
// for this step regardless of its net displacement.
func (w *World) Step() {
	w.mu.Lock()
	n := len(w.bodies)
	start := make([]geom.Point, n)
	contact := make([]bool, n)
	for i, b := range w.bodies {
		start[i] = b.center
	}
	for i := 0; i < n; i++ {
		bi := w.bodies[i]
		for j := i + 1; j < n; j++ {
			bj := w.bodies[j]
			dx, dy := bi.rect().Overlap(bj.rect())
			if dx <= w.cfg.Slop || dy <= w.cfg.Slop {
				continue
			}
			contact[i], contact[j] = true, true
			// Resolve along the axis of least penetration.
			if dx <= dy {
				s := dx / 2 * w.cfg.Correction * direction(bj.center.X-bi.center.X)
				bi.center.X -= s
				bj.center.X += s
			} else {
				s := dy / 2 * w.cfg.Correction * direction(bj.center.Y-bi.center.Y)
				bi.center.Y -= s
				bj.center.Y += s
			}
		}
	}
	for i, b := range w.bodies {
		d := b.center.Sub(start[i])
		if contact[i] || math.Hypot(d.X, d.Y) > w.cfg.WakeEpsilon {
			b.quiet = 0
			b.sleeping = false
			continue
		}
		if !b.sleeping {
			b.quiet++
			if b.quiet >= b.sleepThreshold {
				b.sleeping = true
			}
		}
	}
	w.steps++
	subs := make([]chan struct{}, 0, len(w.subs))
	for _, ch := range w.subs {
		subs = append(subs, ch)
	}
	w.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// direction maps a center delta to the push sign for the higher-index body.
func direction(delta float64) float64 {
	if delta < 0 {
		return -1
	}

	return 1
}

// Settled reports whether every inserted body is asleep.
func (w *World) Settled() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, b := range w.bodies {
		if !b.sleeping {
			return false
		}
	}

	return true
}

// Settle steps synchronously until every body sleeps or maxSteps updates
// have run. It returns the number of steps taken and whether the world settled.
func (w *World) Settle(maxSteps int) (int, bool) {
	for i := 0; i < maxSteps; i++ {
		if w.Settled() {
			return i, true
		}
		w.Step()
	}

	return maxSteps, w.Settled()
}

// Run steps the world every tick until ctx is done and returns ctx.Err().
func (w *World) Run(ctx context.Context, tick time.Duration) error {
	if tick <= 0 {
		tick = DefaultTick
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			w.Step()
		}
	}
}

// Subscribe registers for per-step signals. The channel has a buffer of one,
// so a slow reader sees at most one pending signal.
func (w *World) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	w.mu.Lock()
	id := w.nextSub
	w.nextSub++
	w.subs[id] = ch
	w.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			w.mu.Unlock()
		})
	}

	return ch, cancel
}

// Overlapping returns index pairs (i<j) of bodies that still penetrate
// deeper than Config.Slop.
func (w *World) Overlapping() [][2]int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var pairs [][2]int
	for i := 0; i < len(w.bodies); i++ {
		ri := w.bodies[i].rect()
		for j := i + 1; j < len(w.bodies); j++ {
			dx, dy := ri.Overlap(w.bodies[j].rect())
			if dx > w.cfg.Slop && dy > w.cfg.Slop {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}

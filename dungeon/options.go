package dungeon

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/dungeongen/hallway"
	"github.com/katalvlaran/dungeongen/physics"
	"github.com/katalvlaran/dungeongen/scatter"
)

// DefaultSeed replaces a zero seed so that the zero value stays reproducible.
const DefaultSeed int64 = 1

// Option customizes a Generate run.
type Option func(*config)

type config struct {
	seed   int64
	rng    *rand.Rand
	coin   hallway.Coin
	params scatter.Params
	gate   physics.Gate
	hooks  []StageHook
}

func newConfig(opts ...Option) *config {
	c := &config{
		seed:   DefaultSeed,
		params: scatter.DefaultParams(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(c.seed))
	} else {
		// The caller's RNG has an unknown seed.
		c.seed = 0
	}
	if c.coin == nil {
		c.coin = hallway.RandCoin(c.rng)
	}

	return c
}

func (c *config) emit(s Stage, d *Dungeon) {
	for _, h := range c.hooks {
		h(s, d)
	}
}

// WithSeed seeds the run's RNG. Zero selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = DefaultSeed
		}
		c.seed = seed
	}
}

// WithRand supplies the RNG directly; it takes precedence over WithSeed and
// the resulting Dungeon.Seed is 0. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dungeon: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithCoin overrides the hallway coin. Panics on nil.
func WithCoin(coin hallway.Coin) Option {
	if coin == nil {
		panic("dungeon: WithCoin(nil)")
	}
	return func(c *config) { c.coin = coin }
}

// WithParams replaces the scatter parameters.
// Panics on negative sizes or radius.
func WithParams(p scatter.Params) Option {
	if p.Width < 0 || p.Height < 0 || p.StdDeviation < 0 || p.SpawnRadius < 0 {
		panic(fmt.Sprintf("dungeon: WithParams: negative size in %+v", p))
	}
	return func(c *config) { c.params = p }
}

// WithSettleTimeout bounds the separating stage. Zero waits until the
// context ends. Panics on negative d.
func WithSettleTimeout(d time.Duration) Option {
	if d < 0 {
		panic("dungeon: WithSettleTimeout(negative)")
	}
	return func(c *config) { c.gate.Timeout = d }
}

// WithPollInterval sets how often the gate re-checks a world without step
// notifications. Panics on d <= 0.
func WithPollInterval(d time.Duration) Option {
	if d <= 0 {
		panic("dungeon: WithPollInterval(non-positive)")
	}
	return func(c *config) { c.gate.Poll = d }
}

// WithStageHook adds an observer called after every stage. Hooks run in
// the order they were added. Panics on nil.
func WithStageHook(h StageHook) Option {
	if h == nil {
		panic("dungeon: WithStageHook(nil)")
	}
	return func(c *config) { c.hooks = append(c.hooks, h) }
}

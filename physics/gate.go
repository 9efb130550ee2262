package physics

import (
	"context"
	"fmt"
	"time"
)

// DefaultPollInterval is the settle re-check period for worlds that do not
// implement StepNotifier.
const DefaultPollInterval = 10 * time.Millisecond

// AllSettled reports whether every body is asleep. An empty slice is settled.
// Complexity: O(len(bodies)).
func AllSettled(bodies []Body) bool {
	for _, b := range bodies {
		if !b.IsSleeping() {
			return false
		}
	}

	return true
}

// Gate suspends a generation run until its bodies have settled.
// The zero value polls every DefaultPollInterval with no timeout.
type Gate struct {
	// Poll is the re-check period when the world has no StepNotifier.
	Poll time.Duration
	// Timeout bounds the wait; 0 waits until ctx is done.
	Timeout time.Duration
}

// Wait blocks until AllSettled(bodies) holds.
//
// If world implements StepNotifier, the predicate is evaluated after every
// step notification; otherwise it is polled on a ticker. Wait returns an
// error wrapping both ErrNotSettled and the context error when ctx is done or
// the timeout elapses first.
func (g Gate) Wait(ctx context.Context, world World, bodies []Body) error {
	if AllSettled(bodies) {
		return nil
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	// Exactly one of steps/ticks is non-nil; a nil channel never fires.
	var (
		steps <-chan struct{}
		ticks <-chan time.Time
	)
	if n, ok := world.(StepNotifier); ok {
		ch, unsubscribe := n.Subscribe()
		defer unsubscribe()
		steps = ch
	} else {
		poll := g.Poll
		if poll <= 0 {
			poll = DefaultPollInterval
		}
		ticker := time.NewTicker(poll)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %d of %d bodies awake: %w",
				ErrNotSettled, countAwake(bodies), len(bodies), ctx.Err())
		case <-steps:
		case <-ticks:
		}
		if AllSettled(bodies) {
			return nil
		}
	}
}

func countAwake(bodies []Body) int {
	n := 0
	for _, b := range bodies {
		if !b.IsSleeping() {
			n++
		}
	}

	return n
}

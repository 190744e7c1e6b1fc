package engine

import (
	"context"
	"time"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// runLoop drives one counter on a fixed cadence until ctx is cancelled. Both
// drift loops share it: stress growth steps +1, alert cooldown steps -1. The
// loops never touch the dispatch path, so a boss penalty in progress does not
// delay a tick.
func (e *Engine) runLoop(ctx context.Context, counter string, interval time.Duration, step func() (int, bool)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.safeTick(ctx, counter, step)
		}
	}
}

// safeTick applies one drift step. A panic in a hook is contained here so a
// misbehaving observer cannot kill the loop.
func (e *Engine) safeTick(ctx context.Context, counter string, step func() (int, bool)) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("drift tick panicked", "counter", counter, "err", r)
		}
	}()
	value, moved := step()
	if !moved {
		return
	}
	if e.hooks.OnDecayTick != nil {
		e.hooks.OnDecayTick(ctx, &domain.TickEvent{Counter: counter, Value: value})
	}
}

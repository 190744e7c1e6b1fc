package engine

import (
	"context"
	"time"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// gate stalls a dispatch for the full penalty delay when the boss alert level
// sits at its ceiling. The decision is made on the level observed at entry: a
// cooldown tick landing mid-wait does not shorten the delay, and a level that
// reaches the ceiling after entry does not impose one. Only the gated call
// waits; the drift loops and concurrent dispatches proceed untouched.
func (e *Engine) gate(ctx context.Context, id, action string) error {
	snap := e.store.snapshot()
	if snap.Alert < domain.AlertCeil {
		return nil
	}

	ev := &domain.PenaltyEvent{ID: id, Action: action, Alert: snap.Alert, Delay: e.penaltyDelay}
	if e.hooks.OnPenaltyEnter != nil {
		e.hooks.OnPenaltyEnter(ctx, ev)
	}

	timer := time.NewTimer(e.penaltyDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if e.hooks.OnPenaltyLeave != nil {
		e.hooks.OnPenaltyLeave(ctx, ev)
	}
	return nil
}

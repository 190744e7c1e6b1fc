package cli

import (
	"context"
	"log/slog"

	"github.com/chillmcp/chillmcp/internal/metrics"
	"github.com/chillmcp/chillmcp/pkg/domain"
	"github.com/chillmcp/chillmcp/pkg/ports"
)

// newHooks fans engine events out to the logger, the prometheus collector,
// and (when configured) the event sink. Sink failures are logged and
// swallowed: observability must never stall a dispatch.
func newHooks(logger *slog.Logger, collector *metrics.Collector, sink ports.EventSink) domain.Hooks {
	publish := func(ctx context.Context, kind domain.EventType, fields map[string]any) {
		if sink == nil {
			return
		}
		if err := sink.Publish(ctx, string(kind), fields); err != nil {
			logger.Warn("event publish failed", "kind", kind, "err", err)
		}
	}

	return domain.Hooks{
		OnInit: func(ctx context.Context, e *domain.InitEvent) {
			logger.Info("chillmcp starting",
				"boss_alertness", e.Probability,
				"cooldown", e.Cooldown,
				"stress_level", e.Stress,
				"boss_alert_level", e.Alert)
			collector.SetLevels(e.Stress, e.Alert)
			publish(ctx, domain.EventInit, map[string]any{
				"boss_alertness":   e.Probability,
				"cooldown":         e.Cooldown.String(),
				"stress_level":     e.Stress,
				"boss_alert_level": e.Alert,
			})
		},
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			logger.Info("break dispatched",
				"id", e.ID,
				"action", e.Action,
				"reduction", e.Reduction,
				"alert_raised", e.AlertRaised,
				"stress_level", e.Stress,
				"boss_alert_level", e.Alert,
				"elapsed", e.Elapsed)
			collector.ObserveDispatch(e.Action, e.Stress, e.Alert)
			publish(ctx, domain.EventDispatch, map[string]any{
				"id":               e.ID,
				"action":           e.Action,
				"reduction":        e.Reduction,
				"alert_raised":     e.AlertRaised,
				"stress_level":     e.Stress,
				"boss_alert_level": e.Alert,
			})
		},
		OnPenaltyEnter: func(ctx context.Context, e *domain.PenaltyEvent) {
			logger.Warn("boss penalty started",
				"id", e.ID, "action", e.Action, "delay", e.Delay)
			publish(ctx, domain.EventPenaltyEnter, map[string]any{
				"id":     e.ID,
				"action": e.Action,
				"delay":  e.Delay.String(),
			})
		},
		OnPenaltyLeave: func(ctx context.Context, e *domain.PenaltyEvent) {
			logger.Info("boss penalty completed",
				"id", e.ID, "action", e.Action, "delay", e.Delay)
			collector.ObservePenalty(e.Delay)
			publish(ctx, domain.EventPenaltyLeave, map[string]any{
				"id":     e.ID,
				"action": e.Action,
				"delay":  e.Delay.String(),
			})
		},
		// Drift ticks are frequent; they feed metrics and debug logs but
		// stay out of the event stream.
		OnDecayTick: func(ctx context.Context, e *domain.TickEvent) {
			logger.Debug("counter drift", "counter", e.Counter, "value", e.Value)
			collector.ObserveTick(e.Counter, e.Value)
		},
	}
}

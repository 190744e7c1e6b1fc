// Package engine implements the break state machine: two clamped counters
// (stress and boss alert), background drift loops that move them over time,
// and a dispatch pipeline that serves break actions against them.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/chillmcp/chillmcp/internal/logging"
	"github.com/chillmcp/chillmcp/pkg/domain"
)

// bossNoticedSuffix is appended to the remark when a dispatch actually raised
// the boss alert level.
const bossNoticedSuffix = " (Your boss seems to have noticed...)"

// Engine owns the counters and runs the dispatch pipeline. All methods are
// safe for concurrent use.
type Engine struct {
	cfg     Config
	catalog domain.Catalog
	store   *stateStore
	rand    Rand
	hooks   domain.Hooks
	logger  *slog.Logger

	// Fixed cadences, overridable in tests.
	growthInterval time.Duration
	penaltyDelay   time.Duration

	started atomic.Bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the default break actions.
func WithCatalog(c domain.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithHooks registers observability hooks. Hooks run synchronously on the
// goroutine that produced the event and must not block.
func WithHooks(h domain.Hooks) Option {
	return func(e *Engine) { e.hooks = h }
}

// WithRand replaces the randomness source.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rand = r }
}

// WithLogger sets a structured logger for internal engine failures. Dispatch
// errors are returned to the caller, not logged.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New builds an engine with the initial counters (stress 50, boss alert 0).
// It validates the configuration and the catalog up front so a misconfigured
// engine never starts.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:            cfg,
		catalog:        domain.DefaultCatalog(),
		store:          newStateStore(),
		rand:           systemRand{},
		logger:         logging.NewNop(),
		growthInterval: stressGrowthInterval,
		penaltyDelay:   bossPenaltyDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.catalog.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Start launches the background drift loops: stress growth and boss alert
// cooldown. The loops stop when ctx is cancelled. Start is idempotent; only
// the first call takes effect.
func (e *Engine) Start(ctx context.Context) {
	if !e.started.CompareAndSwap(false, true) {
		return
	}
	snap := e.store.snapshot()
	if e.hooks.OnInit != nil {
		e.hooks.OnInit(ctx, &domain.InitEvent{
			Probability: e.cfg.AlertProbability,
			Cooldown:    e.cfg.AlertCooldown,
			Stress:      snap.Stress,
			Alert:       snap.Alert,
		})
	}
	go e.runLoop(ctx, domain.CounterStress, e.growthInterval, func() (int, bool) {
		return e.store.addStress(1)
	})
	go e.runLoop(ctx, domain.CounterBossAlert, e.cfg.AlertCooldown, func() (int, bool) {
		return e.store.addAlert(-1)
	})
}

// Dispatch executes the named break action: boss penalty first, then stress
// relief, then the boss alert trial. The returned result reflects the state
// read back after all three steps.
//
// The random draws happen in a fixed order (relief roll, alert trial, remark
// pick) regardless of outcome, so a scripted source sees a stable sequence.
func (e *Engine) Dispatch(ctx context.Context, name string) (domain.BreakResult, error) {
	if name == domain.StatusName {
		return domain.BreakResult{}, fmt.Errorf("%w: %q is a read-only status query", domain.ErrUnknownAction, name)
	}
	act, ok := e.catalog.Find(name)
	if !ok {
		return domain.BreakResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, name)
	}

	began := time.Now()
	id := uuid.NewString()
	if err := e.gate(ctx, id, act.Name); err != nil {
		return domain.BreakResult{}, err
	}

	relief := act.MinRelief + e.rand.IntN(act.MaxRelief-act.MinRelief+1)
	e.store.addStress(-relief)

	raised := false
	if e.rand.IntN(100)+1 <= e.cfg.AlertProbability {
		_, raised = e.store.addAlert(1)
	}

	snap := e.store.snapshot()

	remark := act.Summary
	if len(act.Remarks) > 0 {
		remark = act.Remarks[e.rand.IntN(len(act.Remarks))]
	}
	if raised {
		remark += bossNoticedSuffix
	}

	if e.hooks.OnDispatch != nil {
		e.hooks.OnDispatch(ctx, &domain.DispatchEvent{
			ID:          id,
			Action:      act.Name,
			Reduction:   relief,
			AlertRaised: raised,
			Stress:      snap.Stress,
			Alert:       snap.Alert,
			Elapsed:     time.Since(began),
		})
	}

	return domain.BreakResult{
		Snapshot:    snap,
		Action:      act.Name,
		Summary:     act.Summary,
		Remark:      remark,
		Reduction:   relief,
		AlertRaised: raised,
	}, nil
}

// Status reports the current counters and their descriptive bands without
// mutating anything.
func (e *Engine) Status(_ context.Context) domain.StatusReport {
	return domain.ReportFor(e.store.snapshot())
}

// Catalog returns the break actions this engine dispatches.
func (e *Engine) Catalog() domain.Catalog {
	return e.catalog
}

package chillmcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/chillmcp/chillmcp/internal/engine"
	"github.com/chillmcp/chillmcp/pkg/domain"
)

// Engine is the high-level entry point for the ChillMCP library.
// It wraps the internal break engine and provides a simplified API for consumers.
type Engine struct {
	core    *engine.Engine
	cfg     engine.Config
	catalog domain.Catalog
	hooks   domain.Hooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithBossAlertness sets the percent chance (0-100) that a dispatched break
// raises the boss alert level by one.
func WithBossAlertness(probability int) Option {
	return func(e *Engine) {
		e.cfg.AlertProbability = probability
	}
}

// WithBossAlertnessCooldown sets how long the boss alert level takes to decay
// by one point.
func WithBossAlertnessCooldown(cooldown time.Duration) Option {
	return func(e *Engine) {
		e.cfg.AlertCooldown = cooldown
	}
}

// WithCatalog replaces the built-in break actions.
func WithCatalog(catalog domain.Catalog) Option {
	return func(e *Engine) {
		e.catalog = catalog
	}
}

// WithHooks registers observability hooks. Hooks run synchronously on the
// goroutine that produced the event and must not block.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new ChillMCP Engine with the initial counters: stress 50,
// boss alert 0. Configuration and catalog problems are reported here, never
// at dispatch time.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{cfg: engine.DefaultConfig()}
	for _, opt := range opts {
		opt(eng)
	}

	coreOpts := []engine.Option{engine.WithHooks(eng.hooks)}
	if eng.catalog != nil {
		coreOpts = append(coreOpts, engine.WithCatalog(eng.catalog))
	}
	if eng.logger != nil {
		coreOpts = append(coreOpts, engine.WithLogger(eng.logger))
	}

	core, err := engine.New(eng.cfg, coreOpts...)
	if err != nil {
		return nil, err
	}
	eng.core = core
	return eng, nil
}

// Start launches the background drift loops: stress grows by one point per
// minute and the boss alert level decays by one per cooldown. The loops stop
// when ctx is cancelled. Start is idempotent.
func (e *Engine) Start(ctx context.Context) {
	e.core.Start(ctx)
}

// Dispatch executes the named break action and returns the resulting state.
// When the boss alert level sits at its ceiling, the call stalls for the full
// penalty delay before the break is applied.
func (e *Engine) Dispatch(ctx context.Context, action string) (domain.BreakResult, error) {
	return e.core.Dispatch(ctx, action)
}

// Status reports the current counters and their descriptive bands without
// mutating anything.
func (e *Engine) Status(ctx context.Context) domain.StatusReport {
	return e.core.Status(ctx)
}

// Catalog returns the break actions this engine dispatches.
func (e *Engine) Catalog() domain.Catalog {
	return e.core.Catalog()
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chillmcp/chillmcp"
	httpadapter "github.com/chillmcp/chillmcp/internal/adapters/http"
	"github.com/chillmcp/chillmcp/internal/adapters/redis"
	"github.com/chillmcp/chillmcp/internal/catalog"
	"github.com/chillmcp/chillmcp/internal/metrics"
	"github.com/chillmcp/chillmcp/pkg/ports"
)

// RunOptions carries the flag values shared by the chat and serve commands.
type RunOptions struct {
	Alertness   int
	Cooldown    time.Duration
	CatalogPath string
	EventsRedis string
	MetricsAddr string
	Debug       bool
}

// App bundles an initialized engine with the observability plumbing every
// command needs: the prometheus collector, the optional redis event sink,
// and the optional metrics listener.
type App struct {
	Engine    *chillmcp.Engine
	Collector *metrics.Collector

	logger     *slog.Logger
	sink       ports.EventSink
	metricsSrv *http.Server
}

// NewApp initializes an engine with standard CLI conventions: catalog
// overrides from --catalog, the hook fan-out from newHooks, and a metrics
// listener when --metrics-addr is set. Configuration errors are fatal here,
// before any background process starts. The caller must Close the app.
func NewApp(ctx context.Context, opts RunOptions, logger *slog.Logger) (*App, error) {
	app := &App{
		Collector: metrics.NewCollector(),
		logger:    logger,
	}

	// Fail fast on an unreachable sink rather than silently dropping
	// every event later.
	if opts.EventsRedis != "" {
		sink := redis.New(opts.EventsRedis, "", 0)
		if err := sink.Ping(ctx); err != nil {
			return nil, fmt.Errorf("event sink: %w", err)
		}
		app.sink = sink
	}

	engineOpts := []chillmcp.Option{
		chillmcp.WithBossAlertness(opts.Alertness),
		chillmcp.WithBossAlertnessCooldown(opts.Cooldown),
		chillmcp.WithHooks(newHooks(logger, app.Collector, app.sink)),
		chillmcp.WithLogger(logger),
	}

	if opts.CatalogPath != "" {
		cat, err := catalog.Load(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, chillmcp.WithCatalog(cat))
	}

	engine, err := chillmcp.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	app.Engine = engine

	if opts.MetricsAddr != "" {
		app.metricsSrv = &http.Server{
			Addr:    opts.MetricsAddr,
			Handler: httpadapter.NewHandler(engine, app.Collector.Registry()),
		}
		go func() {
			logger.Info("metrics listener starting", "addr", opts.MetricsAddr)
			if err := app.metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics listener failed", "err", err)
			}
		}()
	}

	return app, nil
}

// Close stops the metrics listener and the event sink.
func (a *App) Close() {
	if a.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metricsSrv.Shutdown(ctx); err != nil {
			a.logger.Warn("metrics listener shutdown", "err", err)
		}
	}
	if a.sink != nil {
		if err := a.sink.Close(); err != nil {
			a.logger.Warn("event sink close", "err", err)
		}
	}
}

// Package metrics bundles the Prometheus instruments for the break engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// Collector owns the engine's instruments on a private registry, so embedders
// and tests never fight over the global one.
type Collector struct {
	registry *prometheus.Registry

	breaks      *prometheus.CounterVec
	penalties   prometheus.Counter
	penaltyTime prometheus.Histogram
	ticks       *prometheus.CounterVec
	stressLevel prometheus.Gauge
	alertLevel  prometheus.Gauge
}

// NewCollector builds and registers all instruments.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		breaks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chillmcp_breaks_total",
				Help: "Total break actions dispatched",
			},
			[]string{"action"},
		),
		penalties: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "chillmcp_boss_penalties_total",
				Help: "Total dispatches stalled by the boss penalty",
			},
		),
		penaltyTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chillmcp_boss_penalty_seconds",
				Help:    "Time spent serving boss penalties",
				Buckets: []float64{1, 5, 10, 20, 30},
			},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chillmcp_decay_ticks_total",
				Help: "Background drift ticks that moved a counter",
			},
			[]string{"counter"},
		),
		stressLevel: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chillmcp_stress_level",
				Help: "Current stress level (0-100)",
			},
		),
		alertLevel: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chillmcp_boss_alert_level",
				Help: "Current boss alert level (0-5)",
			},
		),
	}
	c.registry.MustRegister(c.breaks, c.penalties, c.penaltyTime, c.ticks, c.stressLevel, c.alertLevel)
	return c
}

// Registry exposes the underlying registry for the /metrics endpoint.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// SetLevels records the current counter values.
func (c *Collector) SetLevels(stress, alert int) {
	c.stressLevel.Set(float64(stress))
	c.alertLevel.Set(float64(alert))
}

// ObserveDispatch records one dispatched break and the levels it left behind.
func (c *Collector) ObserveDispatch(action string, stress, alert int) {
	c.breaks.WithLabelValues(action).Inc()
	c.SetLevels(stress, alert)
}

// ObservePenalty records one fully served boss penalty.
func (c *Collector) ObservePenalty(delay time.Duration) {
	c.penalties.Inc()
	c.penaltyTime.Observe(delay.Seconds())
}

// ObserveTick records one drift tick for the named counter.
func (c *Collector) ObserveTick(counter string, value int) {
	c.ticks.WithLabelValues(counter).Inc()
	switch counter {
	case domain.CounterStress:
		c.stressLevel.Set(float64(value))
	case domain.CounterBossAlert:
		c.alertLevel.Set(float64(value))
	}
}

// Package http serves the operational side surface: health, current status
// and Prometheus metrics. It is observational only; breaks are never
// dispatched over plain HTTP.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chillmcp/chillmcp/pkg/ports"
)

// NewHandler builds the ops router. registry may be nil, in which case the
// /metrics endpoint is omitted.
func NewHandler(engine ports.BreakEngine, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		report := engine.Status(req.Context())
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			http.Error(w, "failed to encode status", http.StatusInternalServerError)
		}
	})

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	return r
}

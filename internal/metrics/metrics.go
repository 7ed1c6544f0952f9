// Package metrics provides Prometheus instrumentation for the analyze
// pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "ohmscope"
	subsystem = "analyze"
)

// Metrics holds the collectors for the analyze pipeline. A custom registry
// keeps the scrape output limited to service metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Requests counts analyze calls by final status class.
	Requests *prometheus.CounterVec

	// DecodeLatency observes upstream decode time by transport.
	DecodeLatency *prometheus.HistogramVec

	// Fallbacks counts requests served by the fallback transport.
	Fallbacks prometheus.Counter

	// Errors counts failed requests by error kind.
	Errors *prometheus.CounterVec
}

// New creates a Metrics instance on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Analyze requests by result status.",
		}, []string{"status"}),
		DecodeLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_duration_seconds",
			Help:      "Upstream band decode latency by transport.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"transport"}),
		Fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_fallbacks_total",
			Help:      "Requests answered by the fallback transport.",
		}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "errors_total",
			Help:      "Failed analyze requests by error kind.",
		}, []string{"kind"}),
	}
}

// Handler returns the scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

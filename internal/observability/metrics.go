// Package observability provides the prometheus metric set and the
// OpenTelemetry tracer used by the service and HTTP layers.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can build many collectors
// without colliding on the global one.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Mutations *prometheus.CounterVec
	Queries   *prometheus.CounterVec

	StoreSaves    *prometheus.CounterVec
	StoreDuration prometheus.Histogram

	Spots prometheus.Gauge
	Paths prometheus.Gauge
}

// NewCollector registers every tourgraph metric under namespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "tourgraph"
	}
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_mutations_total",
			Help:      "Graph mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_queries_total",
			Help:      "Route queries by kind and outcome (ok, unreachable, error).",
		}, []string{"kind", "outcome"}),
		StoreSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_saves_total",
			Help:      "Document saves by outcome.",
		}, []string{"outcome"}),
		StoreDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_save_duration_seconds",
			Help:      "Document save latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		Spots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_spots",
			Help:      "Non-deleted spots.",
		}),
		Paths: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_paths",
			Help:      "Stored undirected paths.",
		}),
	}

	registry.MustRegister(
		c.HTTPRequests, c.HTTPDuration,
		c.Mutations, c.Queries,
		c.StoreSaves, c.StoreDuration,
		c.Spots, c.Paths,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry exposes the private registry (for tests and custom exporters).
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveSave records one store save.
func (c *Collector) ObserveSave(d time.Duration, err error) {
	c.StoreDuration.Observe(d.Seconds())
	c.StoreSaves.WithLabelValues(outcome(err)).Inc()
}

// SetGraphSize updates the size gauges.
func (c *Collector) SetGraphSize(spots, paths int) {
	c.Spots.Set(float64(spots))
	c.Paths.Set(float64(paths))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}

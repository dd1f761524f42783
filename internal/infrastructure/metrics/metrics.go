// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quicksquad"

var (
	// HTTP metrics - request volume and latency.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Geo metrics - how requests resolve by country.
	GeoResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "geo",
			Name:      "resolved_total",
			Help:      "Requests by resolved country and hint source",
		},
		[]string{"country", "source"},
	)

	// Admin gate decisions.
	AdminGateDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "gate_decisions_total",
			Help:      "Admin gate outcomes by decision",
		},
		[]string{"decision"},
	)

	// Blog metrics.
	BlogWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blog",
			Name:      "writes_total",
			Help:      "Blog write operations by kind",
		},
		[]string{"kind"},
	)

	BlogCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blog",
			Name:      "cache_hits_total",
			Help:      "Blog cache hits by kind",
		},
		[]string{"kind"},
	)

	BlogCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blog",
			Name:      "cache_misses_total",
			Help:      "Blog cache misses by kind",
		},
		[]string{"kind"},
	)
)

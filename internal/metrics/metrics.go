// Package metrics exposes prometheus instrumentation for the aggregation
// pipeline: per-source event and failure counters plus scrape durations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the pipeline's collectors on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	ScrapeEvents   *prometheus.CounterVec
	ScrapeFailures *prometheus.CounterVec
	ScrapeDuration *prometheus.HistogramVec
	Aggregations   prometheus.Counter
}

// New creates the pipeline metrics on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ScrapeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kokomo_scrape_events_total",
			Help: "Normalized event records produced, per source.",
		}, []string{"source"}),
		ScrapeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kokomo_scrape_failures_total",
			Help: "Source fetches that settled with an error, per source.",
		}, []string{"source"}),
		ScrapeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kokomo_scrape_duration_seconds",
			Help:    "Wall time of one source fetch, per source.",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		Aggregations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kokomo_aggregations_total",
			Help: "Full aggregation runs served.",
		}),
	}

	m.registry.MustRegister(
		m.ScrapeEvents,
		m.ScrapeFailures,
		m.ScrapeDuration,
		m.Aggregations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry backing the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

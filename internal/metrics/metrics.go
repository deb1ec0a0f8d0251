package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"JaundiceRate/internal/domain"
)

const namespace = "jaundice"

// Metrics groups the collectors of the rating pipeline. A nil *Metrics is a no-op.
type Metrics struct {
	registry *prometheus.Registry
	results  *prometheus.CounterVec
	fetch    *prometheus.HistogramVec
	analysis *prometheus.HistogramVec
}

// New registers collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_total",
			Help:      "Processed articles by terminal status.",
		}, []string{"status"}),
		fetch: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent downloading article pages.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		analysis: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent sanitizing, tokenizing and scoring articles.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.results, m.fetch, m.analysis)
	for _, status := range domain.Statuses() {
		m.results.WithLabelValues(string(status))
	}
	return m
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveResult counts one terminal status.
func (m *Metrics) ObserveResult(status domain.ProcessingStatus) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(string(status)).Inc()
}

// ObserveFetch records one download attempt.
func (m *Metrics) ObserveFetch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.fetch.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveAnalysis records one analysis run.
func (m *Metrics) ObserveAnalysis(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.analysis.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// Package metrics exposes Prometheus instrumentation for AI generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
)

const namespace = "rankpilot"

// GenerationMetrics records provider attempts. It implements
// generation.Recorder and is safe for concurrent use.
type GenerationMetrics struct {
	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewGenerationMetrics creates the collectors on a dedicated registry that
// also carries the Go runtime and process collectors.
func NewGenerationMetrics() *GenerationMetrics {
	registry := prometheus.NewRegistry()

	m := &GenerationMetrics{
		registry: registry,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "provider_attempts_total",
			Help:      "Provider calls made by the generation orchestrator, by outcome.",
		}, []string{"provider", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "provider_attempt_duration_seconds",
			Help:      "Latency of provider calls made by the generation orchestrator.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"provider"}),
	}

	registry.MustRegister(
		m.attempts,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordAttempt implements generation.Recorder.
func (m *GenerationMetrics) RecordAttempt(provider string, outcome generation.Outcome, elapsed time.Duration) {
	m.attempts.WithLabelValues(provider, string(outcome)).Inc()
	m.duration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// Registry returns the registry holding all collectors.
func (m *GenerationMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *GenerationMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

var _ generation.Recorder = (*GenerationMetrics)(nil)

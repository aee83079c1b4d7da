// Package metrics exposes the Prometheus collectors for the service.
// Collectors are registered with the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taglines"

// Outcome label values for GenerationTotal.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeNotConfigured   = "not_configured"
	OutcomeAuth            = "auth"
	OutcomeQuota           = "quota"
	OutcomeRateLimited     = "rate_limited"
	OutcomeGenerationError = "generation_failed"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	GenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_total",
			Help:      "Generation requests by backend and outcome",
		},
		[]string{"backend", "outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent producing a generation result",
			Buckets:   []float64{.0005, .001, .01, .1, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"backend"},
	)

	// ModelFallbackTotal counts moves from one model to the next in the
	// external adapter's fallback chain.
	ModelFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_fallback_total",
			Help:      "Number of times generation fell back to another model",
		},
		[]string{"from", "to"},
	)
)

package pairwise

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("pairwise")

var (
	// requestsTotal counts pipeline runs by pipeline and result.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pairwise_requests_total",
		Help: "Pairwise pipeline runs by pipeline and result",
	}, []string{"pipeline", "result"})

	// evaluationsTotal counts statistic evaluations (one per unordered pair).
	evaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pairwise_evaluations_total",
		Help: "Statistic evaluations performed",
	})

	// computeDuration tracks matrix computation latency.
	computeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pairwise_compute_duration_seconds",
		Help:    "Pairwise matrix computation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	// componentsFound tracks components returned per thresholded request.
	componentsFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pairwise_components_found",
		Help:    "Connected components (size >= 2) found per request",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
)

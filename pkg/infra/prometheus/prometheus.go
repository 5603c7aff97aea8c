package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; the upper buckets cover slow model calls
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sendsafe_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sendsafe_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"path"},
	)

	DetectionTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sendsafe_detections_total",
			Help: "Analyses by outcome flag and confidence",
		},
		[]string{"flagged", "confidence"},
	)

	RateLimitRejected = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "sendsafe_rate_limit_rejected_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	ProviderFailures = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sendsafe_provider_failures_total",
			Help: "Failed model completion calls",
		},
		[]string{"provider"},
	)

	MalformedReplies = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "sendsafe_malformed_replies_total",
			Help: "Model replies that failed normalization",
		},
	)
)

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

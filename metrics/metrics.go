package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP surface
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parody_http_requests_total",
			Help: "HTTP requests processed, by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parody_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Generation pipeline
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parody_generations_total",
			Help: "Generation attempts by outcome (success, fallback, or error kind)",
		},
		[]string{"outcome"},
	)
	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parody_generation_duration_seconds",
			Help:    "Latency of upstream generation calls",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8), // 0.5s..64s
		},
	)

	// Upstream usage
	UpstreamTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parody_upstream_tokens_total",
			Help: "Token usage reported by the model, by direction",
		},
		[]string{"direction"}, // direction: prompt|completion
	)
)

func init() {
	prometheus.MustRegister(
		// HTTP
		HTTPRequests,
		HTTPRequestDuration,

		// Generation
		Generations,
		GenerationDuration,

		// Upstream
		UpstreamTokens,
	)
}

// Handler exposes the registry for mounting on the main router.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTP
func IncHTTPRequest(method, route string, status int) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func ObserveHTTPRequest(method, route string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Generation
func IncGeneration(outcome string) {
	Generations.WithLabelValues(outcome).Inc()
}

func ObserveGeneration(d time.Duration) {
	GenerationDuration.Observe(d.Seconds())
}

// Upstream
func AddUpstreamTokens(promptTokens, completionTokens int) {
	UpstreamTokens.WithLabelValues("prompt").Add(float64(promptTokens))
	UpstreamTokens.WithLabelValues("completion").Add(float64(completionTokens))
}

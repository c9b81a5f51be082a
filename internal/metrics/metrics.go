package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream provider calls
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to upstream providers",
		},
		[]string{"provider", "endpoint", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of upstream provider requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "endpoint"},
	)

	// Cache lookups by namespace
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"namespace"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"namespace"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of entries evicted to make room",
		},
		[]string{"backend"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_errors_total",
			Help: "Total number of cache backend errors",
		},
		[]string{"backend", "kind"},
	)

	// Responses served from fallback data
	DegradedResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degraded_responses_total",
			Help: "Total number of responses served from fallback data",
		},
		[]string{"endpoint"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordUpstreamRequest records the outcome and latency of one upstream call
func RecordUpstreamRequest(provider, endpoint, outcome string, elapsed time.Duration) {
	UpstreamRequests.WithLabelValues(provider, endpoint, outcome).Inc()
	UpstreamDuration.WithLabelValues(provider, endpoint).Observe(elapsed.Seconds())
}

// RecordCacheHit records a cache hit
func RecordCacheHit(namespace string) {
	CacheHits.WithLabelValues(namespace).Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss(namespace string) {
	CacheMisses.WithLabelValues(namespace).Inc()
}

// RecordCacheEviction records an entry pushed out by a size limit
func RecordCacheEviction(backend string) {
	CacheEvictions.WithLabelValues(backend).Inc()
}

// RecordCacheError records a cache error with backend and kind
func RecordCacheError(backend, kind string) {
	CacheErrors.WithLabelValues(backend, kind).Inc()
}

// RecordDegraded records a response served from fallback data
func RecordDegraded(endpoint string) {
	DegradedResponses.WithLabelValues(endpoint).Inc()
}

// RecordHTTPRequest records a handled HTTP request
func RecordHTTPRequest(method, route, status string, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

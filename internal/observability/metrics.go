// Package observability provides Prometheus collectors and OpenTelemetry tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login outcomes recorded by LoginAttempts.
const (
	LoginSuccess  = "success"
	LoginRejected = "rejected"
	LoginError    = "error"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamereviews_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gamereviews_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LoginAttempts counts credential checks by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamereviews_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// RateLimitedRequests counts requests rejected by the Redis rate limiter.
	RateLimitedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamereviews_rate_limited_requests_total",
		Help: "Total number of requests rejected by rate limiting",
	}, []string{"resource"})
)

// DatabaseMetrics records query latency for one table.
type DatabaseMetrics struct {
	table string
}

// NewDatabaseMetrics returns a DatabaseMetrics for table.
func NewDatabaseMetrics(table string) *DatabaseMetrics {
	return &DatabaseMetrics{table: table}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, m.table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, start)
	}
}

// RecordLogin increments the login counter for outcome.
func RecordLogin(outcome string) {
	LoginAttempts.WithLabelValues(outcome).Inc()
}

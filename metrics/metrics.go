// Package metrics provides Prometheus metrics for the MAL MCP server.
// It tracks tool call counts, latencies, upstream API behavior, and
// authorization flow outcomes.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "mal_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// MALAPILatency measures MAL API call latency by HTTP method
	MALAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "mal_api_latency_seconds",
		Help:      "MAL API call latency by HTTP method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// MALAPIRequestsTotal counts MAL API requests by method and status code
	MALAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "mal_api_requests_total",
		Help:      "Total MAL API requests by method and status code",
	}, []string{"method", "status"})

	// AuthRequired counts gated tool calls rejected for missing tokens
	AuthRequired = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_required_total",
		Help:      "Gated tool calls rejected because no token is held",
	}, []string{"tool"})

	// AuthFailures counts authorization flow failures by reason
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authorization flow failure count by reason",
	}, []string{"reason"})

	// AuthCompleted counts successful token exchanges
	AuthCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_completed_total",
		Help:      "Successful authorization code exchanges",
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// HTTPRequestsTotal counts HTTP transport requests
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method and status",
	}, []string{"method", "status"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a MAL API call. A status of 0 means the request
// never produced a response (transport failure).
func RecordAPICall(method string, duration float64, status int) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	MALAPIRequestsTotal.WithLabelValues(method, label).Inc()
	MALAPILatency.WithLabelValues(method).Observe(duration)
}

// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes used as the "outcome" label of ClientRequestsTotal.
// Error outcomes reuse the client error type names.
const (
	OutcomeSuccess  = "success"
	OutcomeClient   = "client"
	OutcomeNetwork  = "network"
	OutcomeHTTP     = "http"
	OutcomeParse    = "parse"
	OutcomeBusiness = "business"
)

var (
	// Client Request Metrics
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arts_client_requests_total",
			Help: "Total number of Arts API requests by HTTP method and outcome",
		},
		[]string{"method", "outcome"},
	)

	ClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arts_client_request_duration_seconds",
			Help:    "Arts API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)

	ClientInflightRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "arts_client_inflight_requests",
			Help: "Current number of Arts API requests in flight",
		},
	)

	ClientRateLimitWaits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "arts_client_rate_limit_wait_seconds",
			Help:    "Time spent waiting for the client-side rate limiter",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordClientRequest records one completed Arts API request.
func RecordClientRequest(method, outcome string, duration time.Duration) {
	ClientRequestsTotal.WithLabelValues(method, outcome).Inc()
	ClientRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// TrackInflight increments or decrements the in-flight request gauge.
func TrackInflight(inc bool) {
	if inc {
		ClientInflightRequests.Inc()
	} else {
		ClientInflightRequests.Dec()
	}
}

// RecordRateLimitWait records time spent blocked on the rate limiter.
func RecordRateLimitWait(d time.Duration) {
	ClientRateLimitWaits.Observe(d.Seconds())
}

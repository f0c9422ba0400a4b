// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

/*
Package metrics provides the Prometheus collectors recorded by the Arts client.

All collectors register on the default registry through promauto. artsctl
prints them in text exposition format with --dump-metrics.

# Available Metrics

Client Metrics:
  - arts_client_requests_total: Requests by outcome (counter)
    Labels: method, outcome (success, client, network, http, parse, business)
  - arts_client_request_duration_seconds: Request latency (histogram)
    Labels: method
  - arts_client_inflight_requests: Requests in flight (gauge)
  - arts_client_rate_limit_wait_seconds: Limiter wait time (histogram)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
    Labels: name
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
    Labels: name
  - circuit_breaker_state_transitions_total: State changes (counter)
    Labels: name, from_state, to_state

# Usage

	start := time.Now()
	metrics.TrackInflight(true)
	defer metrics.TrackInflight(false)
	// ... perform request ...
	metrics.RecordClientRequest("GET", metrics.OutcomeSuccess, time.Since(start))
*/
package metrics

// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/artsapi/internal/metrics"
)

// DefaultBreakerName labels the breaker's log lines and metrics.
const DefaultBreakerName = "arts-api"

// CircuitBreakerSettings enables a circuit breaker in front of the backend.
// Zero fields take the defaults listed below.
type CircuitBreakerSettings struct {
	Name         string        // default: arts-api
	MaxRequests  uint32        // requests allowed while half-open, default 1
	Interval     time.Duration // closed-state count reset, default 1m
	Timeout      time.Duration // open duration before half-open, default 30s
	MinRequests  uint32        // requests before the ratio is considered, default 10
	FailureRatio float64       // trip threshold, default 0.6
}

// errServerFailure marks a 5xx response as a breaker failure. It never
// reaches the caller; the response itself is returned.
var errServerFailure = errors.New("server error response")

// breakerTransport counts transport errors and 5xx responses against a
// gobreaker circuit. While open, requests fail with gobreaker.ErrOpenState.
//
// The breaker uses real time for its interval and timeout; tests exercise it
// through a fake backend rather than by mocking the clock.
type breakerTransport struct {
	next   http.RoundTripper
	cb     *gobreaker.CircuitBreaker[*http.Response]
	name   string
	logger zerolog.Logger
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newBreakerTransport(next http.RoundTripper, s CircuitBreakerSettings, logger zerolog.Logger) *breakerTransport {
	s = s.withDefaults()

	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.Name).Set(0)

	bt := &breakerTransport{next: next, name: s.Name, logger: logger}
	bt.cb = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio

			if shouldTrip {
				logger.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logger.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// A caller giving up is not a backend failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return bt
}

func (s CircuitBreakerSettings) withDefaults() CircuitBreakerSettings {
	if s.Name == "" {
		s.Name = DefaultBreakerName
	}
	if s.MaxRequests == 0 {
		s.MaxRequests = 1
	}
	if s.Interval == 0 {
		s.Interval = time.Minute
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.MinRequests == 0 {
		s.MinRequests = 10
	}
	if s.FailureRatio <= 0 {
		s.FailureRatio = 0.6
	}
	return s
}

// RoundTrip implements http.RoundTripper.
func (bt *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := bt.execute(func() (*http.Response, error) {
		resp, err := bt.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerFailure
		}
		return resp, nil
	})
	if errors.Is(err, errServerFailure) {
		return resp, nil
	}
	return resp, err
}

// execute runs fn under the breaker and records the outcome.
func (bt *breakerTransport) execute(fn func() (*http.Response, error)) (*http.Response, error) {
	resp, err := bt.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(bt.name, "rejected").Inc()
			bt.logger.Warn().Err(err).Str("breaker", bt.name).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(bt.name, "failure").Inc()

			counts := bt.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(bt.name).Set(float64(counts.ConsecutiveFailures))
		}
		return resp, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(bt.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(bt.name).Set(0)

	return resp, nil
}

// State returns the breaker state as closed, half-open or open.
func (bt *breakerTransport) State() string {
	return stateToString(bt.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/artsapi/internal/metrics"
	"github.com/tomtom215/artsapi/internal/testserver"
)

func TestCircuitBreaker_OpensOnServerErrors(t *testing.T) {
	name := "test-opens-on-5xx"
	c, srv := newTestClient(t, Options{CircuitBreaker: &CircuitBreakerSettings{
		Name:         name,
		MinRequests:  2,
		FailureRatio: 0.5,
		Timeout:      time.Minute,
	}})
	srv.Fallback(testserver.EnvelopeStatus(http.StatusServiceUnavailable, 503, "maintenance", nil))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.Health.Check(ctx)
		apiErr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeHTTP, apiErr.Type, "5xx still reaches the caller as http")
		assert.Equal(t, "maintenance", apiErr.Message)
	}
	assert.Equal(t, "open", c.BreakerState())

	_, err := c.Health.Check(ctx)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNetwork, apiErr.Type)
	assert.Equal(t, "circuit breaker is open", apiErr.Message)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, 2, srv.Count(), "open breaker must not reach the backend")

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues(name, "failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.CircuitBreakerTransitions.WithLabelValues(name, "closed", "open")))
}

func TestCircuitBreaker_IgnoresClientErrors(t *testing.T) {
	c, srv := newTestClient(t, Options{CircuitBreaker: &CircuitBreakerSettings{
		Name:         "test-ignores-4xx",
		MinRequests:  2,
		FailureRatio: 0.5,
	}})
	srv.Fallback(testserver.EnvelopeStatus(http.StatusNotFound, 404, "missing", nil))

	for i := 0; i < 5; i++ {
		_, err := c.Health.Check(context.Background())
		assert.True(t, IsType(err, ErrorTypeHTTP))
	}
	assert.Equal(t, "closed", c.BreakerState())
	assert.Equal(t, 5, srv.Count())
}

func TestCircuitBreaker_IgnoresCallerCancel(t *testing.T) {
	c, srv := newTestClient(t, Options{CircuitBreaker: &CircuitBreakerSettings{
		Name:         "test-ignores-cancel",
		MinRequests:  1,
		FailureRatio: 0.1,
	}})
	srv.Fallback(testserver.OK(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 3; i++ {
		_, err := c.Health.Check(ctx)
		assert.True(t, IsType(err, ErrorTypeNetwork))
	}
	assert.Equal(t, "closed", c.BreakerState())

	_, err := c.Health.Check(context.Background())
	assert.NoError(t, err)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	var healthy atomic.Bool
	c, srv := newTestClient(t, Options{CircuitBreaker: &CircuitBreakerSettings{
		Name:         "test-half-open",
		MinRequests:  1,
		FailureRatio: 0.5,
		Timeout:      20 * time.Millisecond,
	}})
	srv.Fallback(func(w http.ResponseWriter, r *http.Request) {
		if healthy.Load() {
			testserver.OK(nil)(w, r)
			return
		}
		testserver.Raw(http.StatusInternalServerError, "text/plain", nil)(w, r)
	})

	_, err := c.Health.Check(context.Background())
	require.True(t, IsType(err, ErrorTypeHTTP))
	require.Equal(t, "open", c.BreakerState())

	healthy.Store(true)
	time.Sleep(50 * time.Millisecond)

	_, err = c.Health.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "closed", c.BreakerState())
}

func TestCircuitBreakerSettings_Defaults(t *testing.T) {
	s := CircuitBreakerSettings{}.withDefaults()
	assert.Equal(t, DefaultBreakerName, s.Name)
	assert.Equal(t, uint32(1), s.MaxRequests)
	assert.Equal(t, time.Minute, s.Interval)
	assert.Equal(t, 30*time.Second, s.Timeout)
	assert.Equal(t, uint32(10), s.MinRequests)
	assert.Equal(t, 0.6, s.FailureRatio)

	custom := CircuitBreakerSettings{Name: "x", MaxRequests: 3, FailureRatio: 0.9}.withDefaults()
	assert.Equal(t, "x", custom.Name)
	assert.Equal(t, uint32(3), custom.MaxRequests)
	assert.Equal(t, 0.9, custom.FailureRatio)
}

func TestStateConversions(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		str   string
		num   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
		{gobreaker.State(99), "unknown", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.str, stateToString(tt.state))
		assert.Equal(t, tt.num, stateToFloat(tt.state))
	}
}

func TestRateLimit_ThrottlesRequests(t *testing.T) {
	c, srv := newTestClient(t, Options{RateLimit: &RateLimitSettings{RPS: 0.1, Burst: 1}})
	srv.Fallback(testserver.OK(nil))

	_, err := c.Health.Check(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Health.Check(ctx)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNetwork, apiErr.Type)
	assert.Equal(t, 1, srv.Count(), "throttled request must not be sent")
}

func TestRateLimit_BurstPasses(t *testing.T) {
	c, srv := newTestClient(t, Options{RateLimit: &RateLimitSettings{RPS: 0.1, Burst: 3}})
	srv.Fallback(testserver.OK(nil))

	for i := 0; i < 3; i++ {
		_, err := c.Health.Check(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, srv.Count())
}

func TestRateLimit_UnlimitedWhenRPSZero(t *testing.T) {
	rt := newRateLimitTransport(http.DefaultTransport, RateLimitSettings{})
	assert.True(t, rt.limiter.Allow())
	assert.True(t, rt.limiter.Allow())
}

func TestTracing_TransportStillWorks(t *testing.T) {
	c, srv := newTestClient(t, Options{Tracing: true})
	srv.Fallback(testserver.OK(map[string]string{"status": "ok"}))

	resp, err := c.Health.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Data.Status)
}

func TestBuildHTTPClient_Order(t *testing.T) {
	nop := newTestLogger()
	hc, breaker := buildHTTPClient(Options{
		CircuitBreaker: &CircuitBreakerSettings{Name: "test-order"},
		RateLimit:      &RateLimitSettings{RPS: 1},
	}, nop)

	require.NotNil(t, breaker)
	outer, ok := hc.Transport.(*rateLimitTransport)
	require.True(t, ok, "rate limiter is outermost")
	assert.Same(t, breaker, outer.next)
	assert.Equal(t, http.DefaultTransport, breaker.next)
	assert.Zero(t, hc.Timeout)
}

func TestBuildHTTPClient_DropsTokenOnCrossHostRedirect(t *testing.T) {
	foreign := testserver.New(t)
	foreign.Handle(http.MethodGet, "/arts/target", testserver.OK(nil))

	c, srv := newTestClient(t, Options{Token: "secret-session"})
	srv.Handle(http.MethodGet, "/arts/away", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, foreign.URL+"/arts/target", http.StatusFound)
	})
	srv.Handle(http.MethodGet, "/arts/here", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/arts/target", http.StatusFound)
	})
	srv.Handle(http.MethodGet, "/arts/target", testserver.OK(nil))

	_, err := RequestJSON[any](context.Background(), c, http.MethodGet, "/arts/away", RequestOptions{})
	require.NoError(t, err)
	got, ok := foreign.Last()
	require.True(t, ok)
	assert.Empty(t, got.Header.Get("Token"), "token must not follow a redirect to another host")

	_, err = RequestJSON[any](context.Background(), c, http.MethodGet, "/arts/here", RequestOptions{})
	require.NoError(t, err)
	got, ok = srv.Last()
	require.True(t, ok)
	assert.Equal(t, "/arts/target", got.Path)
	assert.Equal(t, "secret-session", got.Header.Get("Token"), "same-host redirects keep the token")
}

func TestBuildHTTPClient_RedirectLimit(t *testing.T) {
	c, srv := newTestClient(t, Options{})
	srv.Handle(http.MethodGet, "/arts/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/arts/loop", http.StatusFound)
	})

	_, err := RequestJSON[any](context.Background(), c, http.MethodGet, "/arts/loop", RequestOptions{})

	assert.True(t, IsType(err, ErrorTypeNetwork))
	assert.Equal(t, maxRedirects, srv.Count())
}

func TestBuildHTTPClient_KeepsCallerRedirectPolicy(t *testing.T) {
	called := false
	hc := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		called = true
		return http.ErrUseLastResponse
	}}

	built, _ := buildHTTPClient(Options{HTTPClient: hc}, zerolog.Nop())
	require.NotNil(t, built.CheckRedirect)
	assert.Equal(t, http.ErrUseLastResponse, built.CheckRedirect(nil, nil))
	assert.True(t, called)
}

// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/tomtom215/artsapi/internal/metrics"
)

// RateLimitSettings throttles outgoing requests with a token bucket.
type RateLimitSettings struct {
	RPS   float64 // sustained requests per second
	Burst int     // bucket size, default 1
}

// rateLimitTransport waits for a token before each request. A wait that
// outlives the request context fails the request.
type rateLimitTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func newRateLimitTransport(next http.RoundTripper, s RateLimitSettings) *rateLimitTransport {
	burst := s.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(s.RPS)
	if s.RPS <= 0 {
		limit = rate.Inf
	}
	return &rateLimitTransport{next: next, limiter: rate.NewLimiter(limit, burst)}
}

// RoundTrip implements http.RoundTripper.
func (rt *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	if err := rt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	metrics.RecordRateLimitWait(time.Since(start))
	return rt.next.RoundTrip(req)
}

// buildHTTPClient copies the caller's client and decorates its transport.
// From the outside in: rate limiter, circuit breaker, tracing, base transport.
// The client-level Timeout is left alone; per-request timeouts use contexts.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func buildHTTPClient(opts Options, logger zerolog.Logger) (*http.Client, *breakerTransport) {
	hc := &http.Client{}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		hc = &copied
	}

	rt := hc.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}

	if opts.Tracing {
		rt = otelhttp.NewTransport(rt,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "arts " + r.Method + " " + r.URL.Path
			}),
		)
	}

	var breaker *breakerTransport
	if opts.CircuitBreaker != nil {
		breaker = newBreakerTransport(rt, *opts.CircuitBreaker, logger)
		rt = breaker
	}

	if opts.RateLimit != nil {
		rt = newRateLimitTransport(rt, *opts.RateLimit)
	}

	hc.Transport = rt
	if hc.CheckRedirect == nil {
		hc.CheckRedirect = dropTokenOnHostChange
	}
	return hc, breaker
}

// maxRedirects matches the net/http default policy.
const maxRedirects = 10

// dropTokenOnHostChange follows redirects like the net/http default policy but
// removes the session header when the target host differs from the original.
// net/http only strips Authorization, Cookie and WWW-Authenticate on its own.
func dropTokenOnHostChange(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return errors.New("stopped after 10 redirects")
	}
	if req.URL.Host != via[0].URL.Host {
		req.Header.Del(tokenHeader)
	}
	return nil
}

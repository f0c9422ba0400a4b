// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

// Package testserver provides a fake Arts backend for tests.
//
// The server records every request it receives and answers through chi
// routes registered by the test:
//
//	srv := testserver.New(t)
//	srv.Handle(http.MethodGet, "/arts/user/info", testserver.OK(arts.UserInfo{ID: 7}))
//
//	client := artsapi.New(artsapi.Options{BaseURL: srv.URL, Token: "tok"})
//	resp, err := client.User.Info(ctx)
//
//	req, _ := srv.Last()
//	req.Header.Get("Token") // "tok"
//
// Unregistered routes answer 404 with a plain text body unless a Fallback
// handler is installed. WithRateLimit puts a go-chi/httprate limiter in front
// of every route, answering 429 with an envelope once the budget is spent.
package testserver

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// Capture is one recorded request.
type Capture struct {
	Method      string
	Path        string
	EscapedPath string
	RawQuery    string
	Query       url.Values
	Header      http.Header
	Body        []byte
}

// Server is an httptest server with a chi router and a request log.
type Server struct {
	*httptest.Server

	router   chi.Router
	mu       sync.Mutex
	captures []Capture
}

// Option configures a Server before it starts.
type Option func(*settings)

type settings struct {
	limitRequests int
	limitWindow   time.Duration
}

// WithRateLimit allows requests per window across all clients. Requests over
// the limit are still recorded.
func WithRateLimit(requests int, window time.Duration) Option {
	return func(s *settings) {
		s.limitRequests = requests
		s.limitWindow = window
	}
}

// New starts a server that is closed when the test ends.
func New(t testing.TB, opts ...Option) *Server {
	t.Helper()

	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{router: chi.NewRouter()}

	// Wrapped outside the router: chi skips its middleware stack when no
	// route is registered, which is the case for Fallback-only servers.
	var h http.Handler = s.router
	if cfg.limitRequests > 0 {
		h = httprate.Limit(
			cfg.limitRequests,
			cfg.limitWindow,
			httprate.WithKeyFuncs(func(*http.Request) (string, error) { return "all", nil }),
			httprate.WithLimitHandler(EnvelopeStatus(http.StatusTooManyRequests, http.StatusTooManyRequests, "too many requests", nil)),
		)(h)
	}
	s.Server = httptest.NewServer(s.capture(h))
	t.Cleanup(s.Close)

	return s
}

// Handle registers h for method and a chi route pattern.
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) {
	s.router.MethodFunc(method, pattern, h)
}

// Fallback answers every request that matches no registered route.
func (s *Server) Fallback(h http.HandlerFunc) {
	s.router.NotFound(h)
	s.router.MethodNotAllowed(h)
}

// Requests returns a copy of the request log.
func (s *Server) Requests() []Capture {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Capture, len(s.captures))
	copy(out, s.captures)
	return out
}

// Count returns the number of requests received.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.captures)
}

// Last returns the most recent request.
func (s *Server) Last() (Capture, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.captures) == 0 {
		return Capture{}, false
	}
	return s.captures[len(s.captures)-1], true
}

// capture records the request and restores its body for the handler.
func (s *Server) capture(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			_ = r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.captures = append(s.captures, Capture{
			Method:      r.Method,
			Path:        r.URL.Path,
			EscapedPath: r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			Query:       r.URL.Query(),
			Header:      r.Header.Clone(),
			Body:        body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

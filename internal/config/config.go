// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

// Package config loads the artsctl application configuration.
//
// Configuration is layered with Koanf v2: struct defaults, then an optional
// YAML file, then environment variables. The Arts client itself never reads
// this package's sources; the application maps Config onto client options.
//
// Configuration Sections:
//
//  1. API: base URL, token, language and per-request timeout.
//  2. Breaker: optional circuit breaker around the HTTP transport.
//  3. RateLimit: optional client-side request throttle.
//  4. Tracing: optional OpenTelemetry transport instrumentation.
//  5. Logging: log level, output format and caller info.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	client := artsapi.NewFromConfig(cfg)
//
// Config is immutable after Load() and safe for concurrent read access.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	API       APIConfig       `koanf:"api"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Tracing   TracingConfig   `koanf:"tracing"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// APIConfig holds the connection parameters of the Arts client.
type APIConfig struct {
	// BaseURL may already end in /arts; request paths are de-duplicated.
	BaseURL  string        `koanf:"base_url" validate:"required,httpurl"`
	Token    string        `koanf:"token"`
	Language string        `koanf:"language" validate:"langtag"`
	Timeout  time.Duration `koanf:"timeout" validate:"gte=0"` // 0 disables the per-request timeout
}

// BreakerConfig configures the gobreaker circuit breaker around the transport.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"` // requests allowed while half-open
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gte=0"` // open -> half-open delay
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gte=0,lte=1"`
}

// RateLimitConfig configures the client-side token bucket.
type RateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps" validate:"gte=0"`
	Burst   int     `koanf:"burst" validate:"gte=0"`
}

// TracingConfig toggles otelhttp transport instrumentation. Spans are only
// exported when the embedding process installs an OpenTelemetry
// TracerProvider; artsctl does not.
type TracingConfig struct {
	Enabled bool `koanf:"enabled"`
}

// LoggingConfig holds logging output settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load is an alias for LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

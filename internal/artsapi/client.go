// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/artsapi/internal/config"
	"github.com/tomtom215/artsapi/internal/logging"
)

// Options configures a Client. Only BaseURL is normally required.
type Options struct {
	// BaseURL is the backend origin, optionally ending in /arts.
	BaseURL string
	// Token is the initial session token.
	Token string
	// Language is the static fallback language.
	Language string
	// LanguageProvider, when set, wins over Language.
	LanguageProvider LanguageProvider
	// Timeout bounds each request; 0 disables it.
	Timeout time.Duration
	// ErrorFormatter receives every failure. Default: DefaultErrorFormatter.
	ErrorFormatter ErrorFormatter

	// HTTPClient is copied and its transport decorated. Default: a fresh client.
	HTTPClient *http.Client
	// Logger defaults to the global logger with component=artsapi.
	Logger *zerolog.Logger

	CircuitBreaker *CircuitBreakerSettings
	RateLimit      *RateLimitSettings
	// Tracing wraps the transport with otelhttp. Spans go to the global
	// TracerProvider, which the host process must install; without one they
	// are dropped.
	Tracing        bool
}

// Client is the Arts API client. It is safe for concurrent use; connection
// settings are read once at the start of each call, so setters never affect
// a request already in flight.
type Client struct {
	mu               sync.RWMutex
	baseURL          string
	token            string
	language         string
	languageProvider LanguageProvider
	timeout          time.Duration
	formatter        ErrorFormatter

	httpClient *http.Client
	breaker    *breakerTransport
	logger     zerolog.Logger

	Health      *HealthService
	User        *UserService
	Work        *WorkService
	Points      *PointsService
	File        *FileService
	Static      *StaticService
	Node        *NodeService
	Deposit     *DepositService
	Ticket      *TicketService
	Consignment *ConsignmentService
	Channel     *ChannelService
	Admin       *AdminService
}

// callConfig is the snapshot of connection settings used by one call.
type callConfig struct {
	baseURL          string
	token            string
	language         string
	languageProvider LanguageProvider
	timeout          time.Duration
	formatter        ErrorFormatter
}

// New creates a client and wires every domain module to it.
func New(opts Options) *Client {
	formatter := opts.ErrorFormatter
	if formatter == nil {
		formatter = DefaultErrorFormatter
	}

	logger := logging.WithComponent("artsapi")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	httpClient, breaker := buildHTTPClient(opts, logger)

	c := &Client{
		baseURL:          NormalizeBaseURL(opts.BaseURL),
		token:            opts.Token,
		language:         opts.Language,
		languageProvider: opts.LanguageProvider,
		timeout:          opts.Timeout,
		formatter:        formatter,
		httpClient:       httpClient,
		breaker:          breaker,
		logger:           logger,
	}

	c.Health = &HealthService{c: c}
	c.User = &UserService{c: c}
	c.Work = &WorkService{c: c}
	c.Points = &PointsService{c: c}
	c.File = &FileService{c: c}
	c.Static = &StaticService{c: c}
	c.Node = &NodeService{c: c, Mining: &NodeMiningService{c: c}}
	c.Deposit = &DepositService{c: c}
	c.Ticket = &TicketService{c: c}
	c.Consignment = &ConsignmentService{c: c}
	c.Channel = &ChannelService{c: c}
	c.Admin = &AdminService{
		c:           c,
		Users:       &AdminUserService{c: c},
		Tokens:      &AdminTokenService{c: c},
		Works:       &AdminWorkService{c: c},
		TicketStats: &AdminTicketStatsService{c: c},
	}

	return c
}

// NewFromConfig builds a client from the application configuration.
func NewFromConfig(cfg *config.Config) *Client {
	opts := Options{
		BaseURL:  cfg.API.BaseURL,
		Token:    cfg.API.Token,
		Language: cfg.API.Language,
		Timeout:  cfg.API.Timeout,
		Tracing:  cfg.Tracing.Enabled,
	}

	if cfg.Breaker.Enabled {
		opts.CircuitBreaker = &CircuitBreakerSettings{
			MaxRequests:  cfg.Breaker.MaxRequests,
			Interval:     cfg.Breaker.Interval,
			Timeout:      cfg.Breaker.Timeout,
			MinRequests:  cfg.Breaker.MinRequests,
			FailureRatio: cfg.Breaker.FailureRatio,
		}
	}

	if cfg.RateLimit.Enabled {
		opts.RateLimit = &RateLimitSettings{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		}
	}

	return New(opts)
}

// snapshot captures the settings for one call.
func (c *Client) snapshot() callConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return callConfig{
		baseURL:          c.baseURL,
		token:            c.token,
		language:         c.language,
		languageProvider: c.languageProvider,
		timeout:          c.timeout,
		formatter:        c.formatter,
	}
}

// SetToken replaces the session token. An empty token logs the client out.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current session token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetLanguage sets the static fallback language.
func (c *Client) SetLanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = lang
}

// Language returns the static fallback language as set, not normalized.
func (c *Client) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// SetLanguageProvider installs or, with nil, removes the language provider.
func (c *Client) SetLanguageProvider(p LanguageProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.languageProvider = p
}

// SetBaseURL changes the backend origin.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = NormalizeBaseURL(baseURL)
}

// BaseURL returns the normalized backend origin.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetTimeout changes the per-request timeout; 0 disables it.
func (c *Client) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeout
}

// BreakerState reports closed, half-open or open, or "" when no circuit
// breaker is configured.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return ""
	}
	return c.breaker.State()
}

// SetErrorFormatter replaces the formatter; nil restores the default.
func (c *Client) SetErrorFormatter(f ErrorFormatter) {
	if f == nil {
		f = DefaultErrorFormatter
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formatter = f
}

// ToFormData is the package ToFormData with failures routed through the
// client's error formatter.
func (c *Client) ToFormData(file LocalFile, filename string) (*FormData, error) {
	form, err := ToFormData(file, filename)
	if err != nil {
		return nil, c.formatLocal(err)
	}
	return form, nil
}

// formatLocal routes an error raised before any request through the formatter.
func (c *Client) formatLocal(err error) error {
	formatter := c.snapshot().formatter
	if apiErr, ok := AsError(err); ok {
		return formatError(formatter, ErrorInput(*apiErr))
	}
	return formatError(formatter, ErrorInput{Type: ErrorTypeClient, Message: err.Error(), Raw: err})
}

// formatError applies f, falling back to the default when f returns nil.
func formatError(f ErrorFormatter, in ErrorInput) error {
	if err := f.FormatError(in); err != nil {
		return err
	}
	return DefaultErrorFormatter.FormatError(in)
}

// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/artsapi/internal/logging"
	"github.com/tomtom215/artsapi/internal/metrics"
	"github.com/tomtom215/artsapi/internal/models/arts"
)

// AuthMode controls whether a call sends or requires the session token.
type AuthMode string

const (
	// AuthOptional sends the token when one is set. It is the zero value's meaning.
	AuthOptional AuthMode = "optional"
	// AuthRequired fails locally when no token is set.
	AuthRequired AuthMode = "required"
	// AuthNone never sends the token.
	AuthNone AuthMode = "none"
)

// tokenHeader carries the session token.
const tokenHeader = "Token"

// RequestOptions are the per-call inputs of a request.
type RequestOptions struct {
	// Auth defaults to AuthOptional.
	Auth AuthMode
	// Query is a Query, a string-keyed map or a parameter struct.
	Query any
	// Body is encoded as JSON. Ignored when Form is set.
	Body any
	// Form is sent as multipart/form-data.
	Form *FormData
	// Headers are added before the client's own headers.
	Headers http.Header
	// Language overrides every other language source for this call.
	Language string
}

// Blob is a downloaded binary body.
type Blob struct {
	Data        []byte
	ContentType string
	Filename    string // from Content-Disposition, when present
}

// call tracks one request from start to finish.
type call struct {
	c      *Client
	cfg    callConfig
	method string
	url    string
	auth   AuthMode
	start  time.Time
	log    zerolog.Logger
	status int
}

// RequestJSON performs a JSON call and returns the decoded envelope.
//
// It fails with http on a non-2xx status, parse when the body is not JSON or
// not an envelope, and business when the envelope code is not zero.
func RequestJSON[T any](ctx context.Context, c *Client, method, path string, opts RequestOptions) (*arts.Response[T], error) {
	k, ctx, err := c.begin(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}

	resp, release, err := k.send(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer release()

	if !isSuccessStatus(resp.StatusCode) {
		return nil, k.httpError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, k.fail(ErrorInput{Type: ErrorTypeNetwork, Message: "failed to read response body", Status: resp.StatusCode, Raw: err})
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, k.fail(ErrorInput{Type: ErrorTypeParse, Message: "response body is not valid JSON", Status: resp.StatusCode, Raw: err})
	}

	if !IsResponse(raw) {
		return nil, k.fail(ErrorInput{Type: ErrorTypeParse, Message: "response is not a valid API envelope", Status: resp.StatusCode, Data: raw})
	}

	code, msg, data := envelopeFields(raw)
	if code != arts.CodeOK {
		return nil, k.fail(ErrorInput{Type: ErrorTypeBusiness, Code: int(code), Message: msg, Status: resp.StatusCode, Data: data})
	}

	var out arts.Response[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, k.fail(ErrorInput{Type: ErrorTypeParse, Message: "failed to decode response data", Status: resp.StatusCode, Data: data, Raw: err})
	}

	k.succeed()
	return &out, nil
}

// RequestBinary performs a call and returns the raw body without envelope
// parsing.
func (c *Client) RequestBinary(ctx context.Context, method, path string, opts RequestOptions) (*Blob, error) {
	k, ctx, err := c.begin(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}

	resp, release, err := k.send(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer release()

	if !isSuccessStatus(resp.StatusCode) {
		return nil, k.httpError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, k.fail(ErrorInput{Type: ErrorTypeNetwork, Message: "failed to read response body", Status: resp.StatusCode, Raw: err})
	}

	k.succeed()
	return &Blob{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    dispositionFilename(resp.Header.Get("Content-Disposition")),
	}, nil
}

// RequestResponse performs a call and returns the response with its body
// unread. The caller must close the body; the per-request timeout stays in
// force until it does.
func (c *Client) RequestResponse(ctx context.Context, method, path string, opts RequestOptions) (*http.Response, error) {
	k, ctx, err := c.begin(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}

	resp, release, err := k.send(ctx, opts)
	if err != nil {
		return nil, err
	}

	if !isSuccessStatus(resp.StatusCode) {
		defer release()
		return nil, k.httpError(resp)
	}

	resp.Body = &releaseOnClose{ReadCloser: resp.Body, release: release}
	k.succeed()
	return resp, nil
}

// begin snapshots the configuration, resolves the URL and checks the auth
// precondition. The returned context carries the request ID.
func (c *Client) begin(ctx context.Context, method, path string, opts RequestOptions) (*call, context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if logging.RequestIDFromContext(ctx) == "" {
		ctx = logging.ContextWithRequestID(ctx, logging.GenerateRequestID())
	}

	cfg := c.snapshot()
	k := &call{
		c:      c,
		cfg:    cfg,
		method: method,
		auth:   opts.Auth,
		start:  time.Now(),
		log:    logging.Ctx(ctx, c.logger),
	}
	if k.auth == "" {
		k.auth = AuthOptional
	}

	query, err := QueryFrom(opts.Query)
	if err != nil {
		k.url = BuildURL(cfg.baseURL, path, nil)
		return nil, ctx, k.fail(ErrorInput{Type: ErrorTypeClient, Message: "invalid query parameters", Raw: err})
	}
	k.url = BuildURL(cfg.baseURL, path, query)

	switch k.auth {
	case AuthOptional, AuthNone:
	case AuthRequired:
		if cfg.token == "" {
			return nil, ctx, k.fail(ErrorInput{Type: ErrorTypeClient, Message: "authentication token is required"})
		}
	default:
		return nil, ctx, k.fail(ErrorInput{Type: ErrorTypeClient, Message: fmt.Sprintf("unknown auth mode %q", k.auth)})
	}

	return k, ctx, nil
}

// send builds and performs the HTTP request. On success the caller must
// invoke release once the body is no longer needed.
func (k *call) send(ctx context.Context, opts RequestOptions) (*http.Response, func(), error) {
	body, contentType, err := encodeBody(opts)
	if err != nil {
		return nil, nil, k.fail(ErrorInput{Type: ErrorTypeClient, Message: "failed to encode request body", Raw: err})
	}

	release := func() {}
	if k.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.cfg.timeout)
		release = cancel
	}

	req, err := http.NewRequestWithContext(ctx, k.method, k.url, body)
	if err != nil {
		release()
		return nil, nil, k.fail(ErrorInput{Type: ErrorTypeClient, Message: "failed to create request", Raw: err})
	}

	for name, values := range opts.Headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if k.auth != AuthNone && k.cfg.token != "" {
		req.Header.Set(tokenHeader, k.cfg.token)
	}
	if lang := resolveLanguage(opts.Language, k.cfg.languageProvider, k.cfg.language); lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	k.log.Debug().
		Str("method", k.method).
		Str("url", k.url).
		Str("auth", string(k.auth)).
		Dict("headers", logging.HeaderDict(req.Header)).
		Msg("arts request")

	metrics.TrackInflight(true)
	resp, err := k.c.httpClient.Do(req)
	metrics.TrackInflight(false)
	if err != nil {
		release()
		return nil, nil, k.fail(ErrorInput{Type: ErrorTypeNetwork, Message: networkMessage(ctx, err, k.cfg.timeout), Raw: err})
	}

	k.status = resp.StatusCode
	respBody := resp.Body
	return resp, func() {
		_ = respBody.Close()
		release()
	}, nil
}

// encodeBody picks the multipart form over the JSON body.
func encodeBody(opts RequestOptions) (io.Reader, string, error) {
	if opts.Form != nil {
		return bytes.NewReader(opts.Form.Body), opts.Form.ContentType, nil
	}
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
	return http.NoBody, "", nil
}

// httpError converts a non-2xx response. An envelope body supplies code,
// msg and data; anything else yields code = status and the body text.
func (k *call) httpError(resp *http.Response) error {
	text := string(readBodyForError(resp.Body))

	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err == nil && IsResponse(raw) {
		code, msg, data := envelopeFields(raw)
		return k.fail(ErrorInput{Type: ErrorTypeHTTP, Code: int(code), Message: msg, Status: resp.StatusCode, Data: data})
	}

	msg := strings.TrimSpace(text)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return k.fail(ErrorInput{Type: ErrorTypeHTTP, Code: resp.StatusCode, Message: msg, Status: resp.StatusCode})
}

// fail logs the failure, records metrics and formats the error.
func (k *call) fail(in ErrorInput) error {
	in.URL = k.url
	in.Method = k.method

	duration := time.Since(k.start)
	metrics.RecordClientRequest(k.method, string(in.Type), duration)

	event := k.log.Warn().
		Str("method", k.method).
		Str("url", k.url).
		Str("type", string(in.Type)).
		Int("code", in.Code).
		Dur("duration", duration)
	if in.Status != 0 {
		event = event.Int("status", in.Status)
	}
	if in.Raw != nil {
		event = event.Err(in.Raw)
	}
	event.Msg(in.Message)

	return formatError(k.cfg.formatter, in)
}

// succeed logs and records a completed call.
func (k *call) succeed() {
	duration := time.Since(k.start)
	metrics.RecordClientRequest(k.method, metrics.OutcomeSuccess, duration)
	k.log.Debug().
		Str("method", k.method).
		Str("url", k.url).
		Int("status", k.status).
		Dur("duration", duration).
		Msg("arts response")
}

// networkMessage describes a transport failure.
func networkMessage(ctx context.Context, err error, timeout time.Duration) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit breaker is open"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		if timeout > 0 {
			return fmt.Sprintf("request timed out after %s", timeout)
		}
		return "request deadline exceeded"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	default:
		return "network request failed"
	}
}

// readBodyForError reads up to maxErrorBodySize bytes of an error response.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// dispositionFilename extracts the filename parameter of a Content-Disposition header.
func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// releaseOnClose runs release after the wrapped body is closed.
type releaseOnClose struct {
	io.ReadCloser
	release func()
}

func (r *releaseOnClose) Close() error {
	err := r.ReadCloser.Close()
	r.release()
	return err
}

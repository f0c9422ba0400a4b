// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

// Package logging provides the zerolog-based structured logger shared by the
// Arts client and the artsctl command.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("base_url", baseURL).Msg("client ready")
//	logging.Error().Err(err).Int("status", 502).Msg("request failed")
//
// # Configuration
//
// Environment Variables (read by the config package):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Correlation
//
// ContextWithRequestID and ContextWithCorrelationID attach identifiers to a
// context; Ctx copies them onto a logger so every line emitted for a call
// carries the same request_id.
//
// # Credentials
//
// Tokens, passwords and signatures are masked by MaskSecret and HeaderDict
// before they reach a log line.
package logging

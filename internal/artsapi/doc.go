// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

/*
Package artsapi is a typed client for the Arts REST backend.

Every JSON endpoint answers with the envelope {code, msg, data}. Code 0 is
success; any other code is a business failure even when the HTTP status is
2xx. The client validates the envelope and converts every failure into a
single error shape before returning it.

# Quick Start

	client := artsapi.New(artsapi.Options{
	    BaseURL:  "https://api.example.com",
	    Language: "zh-CN",
	    Timeout:  15 * time.Second,
	})

	login, err := client.User.Login(ctx, arts.LoginParams{...})
	if err != nil {
	    return err
	}
	client.SetToken(login.Data.Token)

	asset, err := client.User.Asset(ctx)

# Authentication

Each operation has an auth mode. AuthRequired fails locally with a client
error when no token is set and never touches the network. AuthOptional sends
the token when one is present. AuthNone never sends it. The token travels in
the custom "Token" header, not Authorization.

# Errors

Failures are classified as client, network, http, parse or business and pass
through the configured ErrorFormatter. The default formatter returns *Error:

	var apiErr *artsapi.Error
	if errors.As(err, &apiErr) && apiErr.Type == artsapi.ErrorTypeBusiness {
	    // apiErr.Code, apiErr.Message, apiErr.Data
	}

A formatter is the place for cross-cutting reactions such as clearing the
session on HTTP 401.

# Domain Modules

Operations are grouped by backend resource as fields on Client: Health,
User, Work, Points, File, Static, Node (with Node.Mining), Deposit, Ticket,
Consignment, Channel and Admin (with Users, Tokens, Works, TicketStats).
Modules never retry; retry and caching belong to the caller.

# Transport

Options can add a gobreaker circuit breaker, an x/time/rate limiter and
otelhttp tracing around the HTTP transport. Requests record Prometheus
metrics and log through zerolog with credentials masked.
*/
package artsapi

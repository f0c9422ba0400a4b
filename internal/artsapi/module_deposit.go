// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"context"
	"net/http"

	"github.com/tomtom215/artsapi/internal/models/arts"
)

// DepositAPI credits on-chain transfers to the in-app balance.
type DepositAPI interface {
	Config(ctx context.Context) (*arts.Response[arts.DepositConfig], error)
	Submit(ctx context.Context, params arts.DepositSubmitParams) (*arts.Response[arts.DepositOrder], error)
	Records(ctx context.Context, params arts.DepositRecordParams) (*arts.Response[arts.Page[arts.DepositOrder]], error)
	Detail(ctx context.Context, orderNo string) (*arts.Response[arts.DepositOrder], error)
}

var _ DepositAPI = (*DepositService)(nil)

// DepositService implements DepositAPI.
type DepositService struct {
	c *Client
}

// Config returns the receiving address and the accepted chains and tokens.
func (s *DepositService) Config(ctx context.Context) (*arts.Response[arts.DepositConfig], error) {
	return RequestJSON[arts.DepositConfig](ctx, s.c, http.MethodGet, "/arts/deposit/config", RequestOptions{Auth: AuthOptional})
}

// Submit reports a transfer for confirmation tracking.
func (s *DepositService) Submit(ctx context.Context, params arts.DepositSubmitParams) (*arts.Response[arts.DepositOrder], error) {
	return RequestJSON[arts.DepositOrder](ctx, s.c, http.MethodPost, "/arts/deposit/submit", RequestOptions{Auth: AuthRequired, Body: params})
}

func (s *DepositService) Records(ctx context.Context, params arts.DepositRecordParams) (*arts.Response[arts.Page[arts.DepositOrder]], error) {
	return RequestJSON[arts.Page[arts.DepositOrder]](ctx, s.c, http.MethodGet, "/arts/deposit/records", RequestOptions{Auth: AuthRequired, Query: params})
}

func (s *DepositService) Detail(ctx context.Context, orderNo string) (*arts.Response[arts.DepositOrder], error) {
	return RequestJSON[arts.DepositOrder](ctx, s.c, http.MethodGet, "/arts/deposit/"+EncodePathSegment(orderNo), RequestOptions{Auth: AuthRequired})
}

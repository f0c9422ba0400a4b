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

// TicketAPI sells event tickets and manages the user's holdings.
type TicketAPI interface {
	List(ctx context.Context, params arts.TicketListParams) (*arts.Response[arts.Page[arts.Ticket]], error)
	Detail(ctx context.Context, id int64) (*arts.Response[arts.Ticket], error)
	Mine(ctx context.Context, params arts.TicketMineParams) (*arts.Response[arts.Page[arts.TicketHolding]], error)
	Purchase(ctx context.Context, params arts.TicketPurchaseParams) (*arts.Response[arts.TicketOrder], error)
	Transfer(ctx context.Context, params arts.TicketTransferParams) (*arts.Response[any], error)
	Verify(ctx context.Context, params arts.TicketVerifyParams) (*arts.Response[arts.TicketVerifyResult], error)
}

var _ TicketAPI = (*TicketService)(nil)

// TicketService implements TicketAPI.
type TicketService struct {
	c *Client
}

func (s *TicketService) List(ctx context.Context, params arts.TicketListParams) (*arts.Response[arts.Page[arts.Ticket]], error) {
	return RequestJSON[arts.Page[arts.Ticket]](ctx, s.c, http.MethodGet, "/arts/ticket/list", RequestOptions{Auth: AuthOptional, Query: params})
}

func (s *TicketService) Detail(ctx context.Context, id int64) (*arts.Response[arts.Ticket], error) {
	return RequestJSON[arts.Ticket](ctx, s.c, http.MethodGet, "/arts/ticket/"+IDSegment(id), RequestOptions{Auth: AuthOptional})
}

func (s *TicketService) Mine(ctx context.Context, params arts.TicketMineParams) (*arts.Response[arts.Page[arts.TicketHolding]], error) {
	return RequestJSON[arts.Page[arts.TicketHolding]](ctx, s.c, http.MethodGet, "/arts/ticket/mine", RequestOptions{Auth: AuthRequired, Query: params})
}

func (s *TicketService) Purchase(ctx context.Context, params arts.TicketPurchaseParams) (*arts.Response[arts.TicketOrder], error) {
	return RequestJSON[arts.TicketOrder](ctx, s.c, http.MethodPost, "/arts/ticket/purchase", RequestOptions{Auth: AuthRequired, Body: params})
}

// Transfer gives a holding to another wallet address.
func (s *TicketService) Transfer(ctx context.Context, params arts.TicketTransferParams) (*arts.Response[any], error) {
	return RequestJSON[any](ctx, s.c, http.MethodPost, "/arts/ticket/transfer", RequestOptions{Auth: AuthRequired, Body: params})
}

// Verify checks in a holding by its code. Only staff accounts may call it.
func (s *TicketService) Verify(ctx context.Context, params arts.TicketVerifyParams) (*arts.Response[arts.TicketVerifyResult], error) {
	return RequestJSON[arts.TicketVerifyResult](ctx, s.c, http.MethodPost, "/arts/ticket/verify", RequestOptions{Auth: AuthRequired, Body: params})
}

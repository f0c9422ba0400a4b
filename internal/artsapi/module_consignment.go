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

// ConsignmentAPI is the secondary market for ticket holdings.
type ConsignmentAPI interface {
	List(ctx context.Context, params arts.ConsignmentListParams) (*arts.Response[arts.Page[arts.Consignment]], error)
	Detail(ctx context.Context, id int64) (*arts.Response[arts.Consignment], error)
	Create(ctx context.Context, params arts.ConsignmentCreateParams) (*arts.Response[arts.Consignment], error)
	Cancel(ctx context.Context, id int64) (*arts.Response[any], error)
	Buy(ctx context.Context, consignmentID int64) (*arts.Response[arts.TicketOrder], error)
	Mine(ctx context.Context, params arts.ConsignmentMineParams) (*arts.Response[arts.Page[arts.Consignment]], error)
}

var _ ConsignmentAPI = (*ConsignmentService)(nil)

// ConsignmentService implements ConsignmentAPI.
type ConsignmentService struct {
	c *Client
}

func (s *ConsignmentService) List(ctx context.Context, params arts.ConsignmentListParams) (*arts.Response[arts.Page[arts.Consignment]], error) {
	return RequestJSON[arts.Page[arts.Consignment]](ctx, s.c, http.MethodGet, "/arts/consignment/list", RequestOptions{Auth: AuthOptional, Query: params})
}

func (s *ConsignmentService) Detail(ctx context.Context, id int64) (*arts.Response[arts.Consignment], error) {
	return RequestJSON[arts.Consignment](ctx, s.c, http.MethodGet, "/arts/consignment/"+IDSegment(id), RequestOptions{Auth: AuthOptional})
}

// Create lists a holding for sale. The holding is locked until sold or
// cancelled.
func (s *ConsignmentService) Create(ctx context.Context, params arts.ConsignmentCreateParams) (*arts.Response[arts.Consignment], error) {
	return RequestJSON[arts.Consignment](ctx, s.c, http.MethodPost, "/arts/consignment/create", RequestOptions{Auth: AuthRequired, Body: params})
}

func (s *ConsignmentService) Cancel(ctx context.Context, id int64) (*arts.Response[any], error) {
	return RequestJSON[any](ctx, s.c, http.MethodPost, "/arts/consignment/"+IDSegment(id)+"/cancel", RequestOptions{Auth: AuthRequired})
}

func (s *ConsignmentService) Buy(ctx context.Context, consignmentID int64) (*arts.Response[arts.TicketOrder], error) {
	return RequestJSON[arts.TicketOrder](ctx, s.c, http.MethodPost, "/arts/consignment/buy", RequestOptions{Auth: AuthRequired, Body: arts.ConsignmentBuyParams{ConsignmentID: consignmentID}})
}

func (s *ConsignmentService) Mine(ctx context.Context, params arts.ConsignmentMineParams) (*arts.Response[arts.Page[arts.Consignment]], error) {
	return RequestJSON[arts.Page[arts.Consignment]](ctx, s.c, http.MethodGet, "/arts/consignment/mine", RequestOptions{Auth: AuthRequired, Query: params})
}

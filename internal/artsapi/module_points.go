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

// PointsAPI is the loyalty points ledger and redemption shop.
type PointsAPI interface {
	Balance(ctx context.Context) (*arts.Response[arts.PointsBalance], error)
	Records(ctx context.Context, params arts.PointsRecordParams) (*arts.Response[arts.Page[arts.PointsRecord]], error)
	Products(ctx context.Context, params arts.ProductListParams) (*arts.Response[arts.Page[arts.Product]], error)
	ProductDetail(ctx context.Context, id int64) (*arts.Response[arts.Product], error)
	Redeem(ctx context.Context, params arts.RedeemParams) (*arts.Response[arts.RedeemRecord], error)
	RedeemRecords(ctx context.Context, params arts.RedeemRecordParams) (*arts.Response[arts.Page[arts.RedeemRecord]], error)
	SignIn(ctx context.Context) (*arts.Response[arts.SignInResult], error)
}

var _ PointsAPI = (*PointsService)(nil)

// PointsService implements PointsAPI.
type PointsService struct {
	c *Client
}

func (s *PointsService) Balance(ctx context.Context) (*arts.Response[arts.PointsBalance], error) {
	return RequestJSON[arts.PointsBalance](ctx, s.c, http.MethodGet, "/arts/points/balance", RequestOptions{Auth: AuthRequired})
}

func (s *PointsService) Records(ctx context.Context, params arts.PointsRecordParams) (*arts.Response[arts.Page[arts.PointsRecord]], error) {
	return RequestJSON[arts.Page[arts.PointsRecord]](ctx, s.c, http.MethodGet, "/arts/points/records", RequestOptions{Auth: AuthRequired, Query: params})
}

func (s *PointsService) Products(ctx context.Context, params arts.ProductListParams) (*arts.Response[arts.Page[arts.Product]], error) {
	return RequestJSON[arts.Page[arts.Product]](ctx, s.c, http.MethodGet, "/arts/points/products", RequestOptions{Auth: AuthOptional, Query: params})
}

func (s *PointsService) ProductDetail(ctx context.Context, id int64) (*arts.Response[arts.Product], error) {
	return RequestJSON[arts.Product](ctx, s.c, http.MethodGet, "/arts/points/products/"+IDSegment(id), RequestOptions{Auth: AuthOptional})
}

// Redeem spends points on a product. Physical products need AddressID.
func (s *PointsService) Redeem(ctx context.Context, params arts.RedeemParams) (*arts.Response[arts.RedeemRecord], error) {
	return RequestJSON[arts.RedeemRecord](ctx, s.c, http.MethodPost, "/arts/points/redeem", RequestOptions{Auth: AuthRequired, Body: params})
}

func (s *PointsService) RedeemRecords(ctx context.Context, params arts.RedeemRecordParams) (*arts.Response[arts.Page[arts.RedeemRecord]], error) {
	return RequestJSON[arts.Page[arts.RedeemRecord]](ctx, s.c, http.MethodGet, "/arts/points/redeem/records", RequestOptions{Auth: AuthRequired, Query: params})
}

// SignIn claims the daily check-in reward.
func (s *PointsService) SignIn(ctx context.Context) (*arts.Response[arts.SignInResult], error) {
	return RequestJSON[arts.SignInResult](ctx, s.c, http.MethodPost, "/arts/points/sign-in", RequestOptions{Auth: AuthRequired})
}

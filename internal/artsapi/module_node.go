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

// NodeAPI sells mining nodes and lists the user's holdings.
type NodeAPI interface {
	List(ctx context.Context, params arts.NodeListParams) (*arts.Response[arts.Page[arts.Node]], error)
	Detail(ctx context.Context, id int64) (*arts.Response[arts.Node], error)
	Purchase(ctx context.Context, params arts.NodePurchaseParams) (*arts.Response[arts.NodeOrder], error)
	Mine(ctx context.Context, params arts.PageParams) (*arts.Response[arts.Page[arts.UserNode]], error)
}

// NodeMiningAPI runs and settles mining on owned nodes.
type NodeMiningAPI interface {
	Overview(ctx context.Context) (*arts.Response[arts.MiningOverview], error)
	Records(ctx context.Context, params arts.MiningRecordParams) (*arts.Response[arts.Page[arts.MiningRecord]], error)
	Start(ctx context.Context, nodeID int64) (*arts.Response[arts.UserNode], error)
	Claim(ctx context.Context, params arts.MiningClaimParams) (*arts.Response[arts.MiningClaimResult], error)
}

var (
	_ NodeAPI       = (*NodeService)(nil)
	_ NodeMiningAPI = (*NodeMiningService)(nil)
)

// NodeService implements NodeAPI. Mining is reached through the Mining field.
type NodeService struct {
	c      *Client
	Mining *NodeMiningService
}

// NodeMiningService implements NodeMiningAPI.
type NodeMiningService struct {
	c *Client
}

func (s *NodeService) List(ctx context.Context, params arts.NodeListParams) (*arts.Response[arts.Page[arts.Node]], error) {
	return RequestJSON[arts.Page[arts.Node]](ctx, s.c, http.MethodGet, "/arts/node/list", RequestOptions{Auth: AuthOptional, Query: params})
}

func (s *NodeService) Detail(ctx context.Context, id int64) (*arts.Response[arts.Node], error) {
	return RequestJSON[arts.Node](ctx, s.c, http.MethodGet, "/arts/node/"+IDSegment(id), RequestOptions{Auth: AuthOptional})
}

// Purchase buys nodes. With TxHash set the backend verifies an on-chain
// payment; without it the price is debited from the in-app balance.
func (s *NodeService) Purchase(ctx context.Context, params arts.NodePurchaseParams) (*arts.Response[arts.NodeOrder], error) {
	return RequestJSON[arts.NodeOrder](ctx, s.c, http.MethodPost, "/arts/node/purchase", RequestOptions{Auth: AuthRequired, Body: params})
}

func (s *NodeService) Mine(ctx context.Context, params arts.PageParams) (*arts.Response[arts.Page[arts.UserNode]], error) {
	return RequestJSON[arts.Page[arts.UserNode]](ctx, s.c, http.MethodGet, "/arts/node/mine", RequestOptions{Auth: AuthRequired, Query: params})
}

func (s *NodeMiningService) Overview(ctx context.Context) (*arts.Response[arts.MiningOverview], error) {
	return RequestJSON[arts.MiningOverview](ctx, s.c, http.MethodGet, "/arts/node/mining/overview", RequestOptions{Auth: AuthRequired})
}

func (s *NodeMiningService) Records(ctx context.Context, params arts.MiningRecordParams) (*arts.Response[arts.Page[arts.MiningRecord]], error) {
	return RequestJSON[arts.Page[arts.MiningRecord]](ctx, s.c, http.MethodGet, "/arts/node/mining/records", RequestOptions{Auth: AuthRequired, Query: params})
}

func (s *NodeMiningService) Start(ctx context.Context, nodeID int64) (*arts.Response[arts.UserNode], error) {
	return RequestJSON[arts.UserNode](ctx, s.c, http.MethodPost, "/arts/node/mining/start", RequestOptions{Auth: AuthRequired, Body: arts.MiningStartParams{NodeID: nodeID}})
}

// Claim settles the given records, or every claimable record when
// RecordIDs is empty.
func (s *NodeMiningService) Claim(ctx context.Context, params arts.MiningClaimParams) (*arts.Response[arts.MiningClaimResult], error) {
	return RequestJSON[arts.MiningClaimResult](ctx, s.c, http.MethodPost, "/arts/node/mining/claim", RequestOptions{Auth: AuthRequired, Body: params})
}

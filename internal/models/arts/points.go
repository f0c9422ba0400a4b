// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// PointsBalance is the caller's points account.
type PointsBalance struct {
	Balance       int64 `json:"balance"`
	Frozen        int64 `json:"frozen"`
	TotalEarned   int64 `json:"totalEarned"`
	TotalSpent    int64 `json:"totalSpent"`
	SignedInToday bool  `json:"signedInToday"`
}

// PointsRecordParams filters the points ledger.
type PointsRecordParams struct {
	PageParams
	Type string `json:"type,omitempty"`
}

// PointsRecord is one ledger entry; Amount is negative for spending.
type PointsRecord struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Amount    int64  `json:"amount"`
	Balance   int64  `json:"balance"`
	Remark    string `json:"remark,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// ProductListParams filters the redemption catalogue.
type ProductListParams struct {
	PageParams
	Category string `json:"category,omitempty"`
}

// Product is an item redeemable for points.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Cover       string   `json:"cover"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category"`
	Points      int64    `json:"points"`
	Stock       int      `json:"stock"`
	Description string   `json:"description,omitempty"`
	Physical    bool     `json:"physical"`
}

// RedeemParams redeems a product; AddressID is required for physical goods.
type RedeemParams struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	AddressID int64  `json:"addressId,omitempty"`
	Remark    string `json:"remark,omitempty"`
}

// RedeemRecordParams filters redemption history.
type RedeemRecordParams struct {
	PageParams
	Status string `json:"status,omitempty"`
}

// RedeemRecord is one redemption order.
type RedeemRecord struct {
	ID          int64  `json:"id"`
	OrderNo     string `json:"orderNo"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Points      int64  `json:"points"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"createdAt"`
}

// SignInResult is the reward of a daily sign-in.
type SignInResult struct {
	Points        int64 `json:"points"`
	ContinuousDay int   `json:"continuousDays"`
	Balance       int64 `json:"balance"`
}

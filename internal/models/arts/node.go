// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// NodeListParams filters the node catalogue.
type NodeListParams struct {
	PageParams
	Level int `json:"level,omitempty"`
}

// Node is a purchasable mining node (VIP tier).
type Node struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Price       string `json:"price"`
	PayToken    string `json:"payToken"`
	DailyReward string `json:"dailyReward"`
	Period      int    `json:"periodDays"`
	Stock       int    `json:"stock"`
	Sold        int    `json:"sold"`
	Cover       string `json:"cover,omitempty"`
	Description string `json:"description,omitempty"`
}

// NodePurchaseParams buys nodes with an on-chain payment.
type NodePurchaseParams struct {
	NodeID   int64  `json:"nodeId"`
	Quantity int    `json:"quantity"`
	TxHash   string `json:"txHash,omitempty"`
	PayToken string `json:"payToken,omitempty"`
}

// NodeOrder is the result of a node purchase.
type NodeOrder struct {
	OrderNo  string `json:"orderNo"`
	NodeID   int64  `json:"nodeId"`
	Quantity int    `json:"quantity"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
}

// UserNode is a node owned by the caller.
type UserNode struct {
	ID         int64  `json:"id"`
	NodeID     int64  `json:"nodeId"`
	NodeName   string `json:"nodeName"`
	Level      int    `json:"level"`
	Status     string `json:"status"`
	Mining     bool   `json:"mining"`
	StartedAt  int64  `json:"startedAt,omitempty"`
	ExpiresAt  int64  `json:"expiresAt,omitempty"`
	TotalMined string `json:"totalMined"`
}

// MiningOverview aggregates the caller's mining state.
type MiningOverview struct {
	ActiveNodes  int    `json:"activeNodes"`
	HashPower    string `json:"hashPower"`
	TodayReward  string `json:"todayReward"`
	TotalReward  string `json:"totalReward"`
	Claimable    string `json:"claimable"`
	RewardToken  string `json:"rewardToken"`
	NextSettleAt int64  `json:"nextSettleAt,omitempty"`
}

// MiningRecordParams filters mining reward records.
type MiningRecordParams struct {
	PageParams
	NodeID int64 `json:"nodeId,omitempty"`
}

// MiningRecord is one settled reward.
type MiningRecord struct {
	ID        int64  `json:"id"`
	NodeID    int64  `json:"nodeId"`
	Amount    string `json:"amount"`
	Token     string `json:"token"`
	Claimed   bool   `json:"claimed"`
	SettledAt int64  `json:"settledAt"`
}

// MiningStartParams starts mining on an owned node.
type MiningStartParams struct {
	NodeID int64 `json:"nodeId"`
}

// MiningClaimParams claims settled rewards; an empty list claims all.
type MiningClaimParams struct {
	RecordIDs []int64 `json:"recordIds,omitempty"`
}

// MiningClaimResult is the total transferred by a claim.
type MiningClaimResult struct {
	Amount string `json:"amount"`
	Token  string `json:"token"`
	Count  int    `json:"count"`
}

// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// ConsignmentListParams filters the secondary market.
type ConsignmentListParams struct {
	PageParams
	TicketID int64  `json:"ticketId,omitempty"`
	Sort     string `json:"sort,omitempty"`
}

// Consignment is a ticket listed for resale.
type Consignment struct {
	ID         int64  `json:"id"`
	HoldingID  int64  `json:"holdingId"`
	TicketID   int64  `json:"ticketId"`
	TicketName string `json:"ticketName"`
	Cover      string `json:"cover"`
	Seller     string `json:"seller"`
	Price      string `json:"price"`
	PayToken   string `json:"payToken"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"createdAt"`
}

// ConsignmentCreateParams lists a holding for resale.
type ConsignmentCreateParams struct {
	HoldingID int64  `json:"holdingId"`
	Price     string `json:"price"`
	PayToken  string `json:"payToken,omitempty"`
}

// ConsignmentBuyParams buys a listed consignment.
type ConsignmentBuyParams struct {
	ConsignmentID int64 `json:"consignmentId"`
}

// ConsignmentMineParams filters the caller's listings.
type ConsignmentMineParams struct {
	PageParams
	Status string `json:"status,omitempty"`
}

// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// Channel is a distribution channel (partner storefront).
type Channel struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// BannerParams selects banners for a page position.
type BannerParams struct {
	Position string `json:"position,omitempty"`
}

// Banner is a promotional image slot.
type Banner struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Link     string `json:"link,omitempty"`
	Position string `json:"position"`
	Sort     int    `json:"sort"`
}

// Announcement is a platform notice.
type Announcement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Pinned      bool   `json:"pinned"`
	PublishedAt int64  `json:"publishedAt"`
}

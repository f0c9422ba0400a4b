// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// WorkListParams filters the public work catalogue.
type WorkListParams struct {
	PageParams
	CategoryID int64    `json:"categoryId,omitempty"`
	Keyword    string   `json:"keyword,omitempty"`
	Sort       string   `json:"sort,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Work is a published artwork or content item.
type Work struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Cover       string   `json:"cover"`
	Author      string   `json:"author"`
	CategoryID  int64    `json:"categoryId"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	LikeCount   int64    `json:"likeCount"`
	ViewCount   int64    `json:"viewCount"`
	Liked       bool     `json:"liked"`
	Published   bool     `json:"published"`
	PublishedAt int64    `json:"publishedAt,omitempty"`
}

// WorkDetail is a work with its full content body.
type WorkDetail struct {
	Work
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
	Video   string   `json:"video,omitempty"`
}

// WorkCategory groups works in the catalogue.
type WorkCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
	Sort int    `json:"sort"`
}

// RelatedParams limits the related-works list.
type RelatedParams struct {
	Limit int `json:"limit,omitempty"`
}

// WorkIDParams identifies a work in like/unlike bodies.
type WorkIDParams struct {
	WorkID int64 `json:"workId"`
}

// LikeResult is the like state after a like or unlike call.
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

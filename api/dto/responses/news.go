// ABOUTME: Response DTOs for news and cache endpoints
// ABOUTME: Cards carry an excerpt for list views; details carry the full body

package responses

import "time"

// NewsCardResponse is one entry in a news list page
type NewsCardResponse struct {
	ID      int       `json:"id" doc:"Item identifier"`
	Title   string    `json:"title" doc:"Item headline"`
	Date    time.Time `json:"date" doc:"Publication date"`
	Tags    []string  `json:"tags" doc:"Item tags"`
	Pinned  bool      `json:"pinned" doc:"Pinned items sort first"`
	Image   string    `json:"image,omitempty" doc:"Hero image, only when it is a supported image URL"`
	Excerpt string    `json:"excerpt" doc:"Plain text excerpt of the body"`

	// BodyFailed lets clients show a load-failure state
	BodyFailed bool `json:"body_failed" doc:"True when the body could not be loaded"`
}

// NewsPageResponse is one page of the filtered, sorted news list
type NewsPageResponse struct {
	Items      []NewsCardResponse  `json:"items" doc:"Items on this page"`
	Page       int                 `json:"page" doc:"Zero-based page index after clamping"`
	PageSize   int                 `json:"page_size" doc:"Items per page"`
	PageCount  int                 `json:"page_count" doc:"Number of pages"`
	TotalItems int                 `json:"total_items" doc:"Items matching the filter"`
	Cache      CacheStatusResponse `json:"cache" doc:"Freshness of the list"`
}

// NewsItemResponse is the full detail view of one item
type NewsItemResponse struct {
	ID               int       `json:"id" doc:"Item identifier"`
	Title            string    `json:"title" doc:"Item headline"`
	Date             time.Time `json:"date" doc:"Publication date"`
	Content          string    `json:"content" doc:"Body reference"`
	Markdown         string    `json:"markdown" doc:"Body text or a load sentinel"`
	HTML             string    `json:"html,omitempty" doc:"Rendered body when HTML rendering is enabled"`
	Tags             []string  `json:"tags" doc:"Item tags"`
	Pinned           bool      `json:"pinned" doc:"Pinned items sort first"`
	Image            string    `json:"image,omitempty" doc:"Hero image"`
	AdditionalImages []string  `json:"additional_images,omitempty" doc:"Extra images"`
	BodyFailed       bool      `json:"body_failed" doc:"True when the body could not be loaded"`
}

// TagsResponse lists the distinct tags of the cached list
type TagsResponse struct {
	Tags []string `json:"tags" doc:"Distinct tags in first-seen order"`
}

// CacheStatusResponse describes how fresh the cached list is
type CacheStatusResponse struct {
	LastRefresh  *time.Time `json:"last_refresh,omitempty" doc:"Last successful refresh"`
	Updated      string     `json:"updated" doc:"Human readable age of the list"`
	IsStale      bool       `json:"is_stale" doc:"True once the list is older than the staleness threshold"`
	LastActivity *time.Time `json:"last_activity,omitempty" doc:"Last recorded user activity"`
	Refreshing   bool       `json:"refreshing" doc:"True while a refresh is running"`
	ItemCount    int        `json:"item_count" doc:"Items held in memory"`
}

// RefreshResponse is returned by the refresh and reset endpoints
type RefreshResponse struct {
	Message string              `json:"message" doc:"Outcome"`
	Items   int                 `json:"items" doc:"Items after the operation"`
	Cache   CacheStatusResponse `json:"cache" doc:"Freshness after the operation"`
}

// ActivityResponse acknowledges an activity signal
type ActivityResponse struct {
	RefreshStarted bool                `json:"refresh_started" doc:"True when the signal started a background refresh"`
	Cache          CacheStatusResponse `json:"cache" doc:"Freshness after recording the signal"`
}

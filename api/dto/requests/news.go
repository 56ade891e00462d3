// ABOUTME: Request DTOs for news list queries
// ABOUTME: Provides validation bounds and default values for query parameters

package requests

import "strings"

// ListNewsRequest holds the list query parameters
type ListNewsRequest struct {
	// Page is the zero-based page index; out-of-range values are clamped
	Page int `query:"page" minimum:"0" default:"0" doc:"Zero-based page index"`

	// PageSize is the number of items per page
	PageSize int `query:"page_size" minimum:"0" maximum:"100" default:"6" doc:"Items per page"`

	// Tag restricts the list to items carrying this exact tag
	Tag string `query:"tag" maxLength:"64" doc:"Exact tag filter"`

	// Query is a case-insensitive search over title, body and date
	Query string `query:"q" maxLength:"200" doc:"Search text"`
}

// ApplyDefaults normalizes the request
func (r *ListNewsRequest) ApplyDefaults() {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.PageSize <= 0 {
		r.PageSize = 6
	}
	r.Tag = strings.TrimSpace(r.Tag)
	r.Query = strings.TrimSpace(r.Query)
}

// ABOUTME: ContentItem domain model represents one news entry from the index resource
// ABOUTME: Tracks the body reference and the hydrated body text with its load sentinels

package domain

import (
	"strings"
	"time"
)

// Sentinel bodies. A hydrated item always carries either fetched text or one of these.
const (
	// BodyLoadFailed marks an item whose body fetch failed
	BodyLoadFailed = "content failed to load"

	// BodyUnavailable marks an item whose body reference is not supported
	BodyUnavailable = "content unavailable"

	// BodyEmpty replaces a successfully fetched but empty body
	BodyEmpty = "no content yet"
)

// ContentItem represents a single news entry
type ContentItem struct {
	// ID is the unique identifier for the item
	ID int `json:"id"`

	// Title is the item's headline
	Title string `json:"title"`

	// Date is when the item was published
	Date time.Time `json:"date"`

	// Content is the body reference: an absolute URL or a path relative to the content base
	Content string `json:"content"`

	// Body is the resolved Markdown text; nil until hydration
	Body *string `json:"markdownContent,omitempty"`

	// Tags is the item's tag set; order has no meaning
	Tags []string `json:"tags"`

	// Pinned items sort ahead of everything else
	Pinned bool `json:"pinned"`

	// Media fields
	Image            string   `json:"image,omitempty"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
}

// HasBody reports whether hydration has attached a body
func (c *ContentItem) HasBody() bool {
	return c.Body != nil
}

// BodyText returns the body or an empty string when not yet hydrated
func (c *ContentItem) BodyText() string {
	if c.Body == nil {
		return ""
	}
	return *c.Body
}

// SetBody attaches body text
func (c *ContentItem) SetBody(text string) {
	c.Body = &text
}

// BodyFailed reports whether the body is one of the failure sentinels
func (c *ContentItem) BodyFailed() bool {
	if c.Body == nil {
		return false
	}
	return *c.Body == BodyLoadFailed || *c.Body == BodyUnavailable
}

// HasTag reports exact membership of tag in the item's tag set
func (c *ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasImage reports whether the item carries a usable hero image reference
func (c *ContentItem) HasImage() bool {
	img := strings.TrimSpace(c.Image)
	return img != "" && img != `""`
}

// Clone returns a deep copy so callers cannot mutate shared lists
func (c ContentItem) Clone() ContentItem {
	out := c
	if c.Body != nil {
		body := *c.Body
		out.Body = &body
	}
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.AdditionalImages != nil {
		out.AdditionalImages = append([]string(nil), c.AdditionalImages...)
	}
	return out
}

// CloneItems deep-copies a list of items
func CloneItems(items []ContentItem) []ContentItem {
	if items == nil {
		return nil
	}
	out := make([]ContentItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"newsfeed-api/core/domain"
)

// Renderer turns a Markdown body into display forms
type Renderer interface {
	// HTML renders the body to sanitized HTML
	HTML(body string) string

	// Excerpt returns the first n characters of the body's plain text
	Excerpt(body string, n int) string
}

// StalenessChecker is the part of the content manager the staleness monitor drives
type StalenessChecker interface {
	// CheckStaleness runs one staleness check and reports a fresh to stale transition
	CheckStaleness(ctx context.Context) bool

	// Status returns the current cache status
	Status() domain.CacheStatus
}

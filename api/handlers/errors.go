// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"newsfeed-api/core/content"
	"newsfeed-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if stderrors.Is(err, content.ErrRefreshInFlight) {
		return huma.Error409Conflict("A refresh is already running")
	}

	// the upstream index was rejected, not the caller's request
	if errors.IsValidation(err) {
		return huma.Error502BadGateway("News index failed validation", err)
	}

	if errors.IsNetwork(err) {
		return huma.Error503ServiceUnavailable("News source unavailable, retry later", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

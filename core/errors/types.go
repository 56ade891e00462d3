// ABOUTME: Custom error types for the content cache business logic
// ABOUTME: Separates network, validation and per-item failures so callers can degrade correctly

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a rejected payload. Index is the offending
// element of the index array, or -1 when the payload as a whole is invalid.
type ValidationError struct {
	Field   string
	Message string
	Index   int
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("validation error on item %d field '%s': %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NetworkError represents an unreachable resource, a non-2xx response or a timeout
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error fetching %s: status %d", e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("network error fetching %s", e.URL)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// PartialContentError records that a single item's body could not be loaded.
// It is never returned to callers of the manager; it only shows up in logs.
type PartialContentError struct {
	ItemID int
	URL    string
	Err    error
}

// Error implements the error interface
func (e *PartialContentError) Error() string {
	return fmt.Sprintf("content for item %d unavailable (%s): %v", e.ItemID, e.URL, e.Err)
}

// Unwrap returns the underlying fetch error
func (e *PartialContentError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var networkErr *NetworkError
	return errors.As(err, &networkErr)
}

// IsPartialContent checks if an error is a PartialContentError
func IsPartialContent(err error) bool {
	var partialErr *PartialContentError
	return errors.As(err, &partialErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

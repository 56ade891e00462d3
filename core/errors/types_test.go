package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "news item",
		ID:       "123",
	}

	expected := "news item not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "payload level",
			err:      &ValidationError{Field: "payload", Message: "not an array", Index: -1},
			expected: "validation error on field 'payload': not an array",
		},
		{
			name:     "item level",
			err:      &ValidationError{Field: "title", Message: "missing", Index: 3},
			expected: "validation error on item 3 field 'title': missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("ValidationError.Error() = %v, want %v", tt.err.Error(), tt.expected)
			}
		})
	}
}

func TestNetworkError_Error(t *testing.T) {
	withStatus := &NetworkError{URL: "https://example.com/news.json", StatusCode: 503}
	if withStatus.Error() != "network error fetching https://example.com/news.json: status 503" {
		t.Errorf("unexpected message: %v", withStatus.Error())
	}

	withErr := &NetworkError{URL: "https://example.com/news.json", Err: errors.New("connection refused")}
	if withErr.Error() != "network error fetching https://example.com/news.json: connection refused" {
		t.Errorf("unexpected message: %v", withErr.Error())
	}
}

func TestNetworkError_UnwrapsDeadline(t *testing.T) {
	err := &NetworkError{URL: "https://example.com", Err: context.DeadlineExceeded}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("NetworkError should unwrap to context.DeadlineExceeded")
	}
}

func TestIsNotFound_WrappedError(t *testing.T) {
	notFound := &NotFoundError{
		Resource: "news item",
		ID:       "123",
	}
	wrapped := fmt.Errorf("failed to get item: %w", notFound)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
	if IsNotFound(errors.New("some other error")) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "id", Message: "missing", Index: 0}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(&NetworkError{URL: "x"}) {
		t.Error("IsValidation should return false for NetworkError")
	}
}

func TestIsNetwork(t *testing.T) {
	wrapped := WrapError(&NetworkError{URL: "x", StatusCode: 404}, "loading index")

	if !IsNetwork(wrapped) {
		t.Error("IsNetwork should return true for wrapped NetworkError")
	}
	if IsNetwork(errors.New("plain")) {
		t.Error("IsNetwork should return false for plain error")
	}
}

func TestIsPartialContent(t *testing.T) {
	err := &PartialContentError{ItemID: 7, URL: "https://example.com/a.md", Err: errors.New("boom")}

	if !IsPartialContent(err) {
		t.Error("IsPartialContent should return true for PartialContentError")
	}
	if err.Error() != "content for item 7 unavailable (https://example.com/a.md): boom" {
		t.Errorf("unexpected message: %v", err.Error())
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

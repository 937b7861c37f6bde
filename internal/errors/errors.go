// Package errors provides shared error types for the MAL MCP server.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates an entity was not present in the user's list.
type NotFoundError struct {
	Kind string // "anime" or "manga"
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found in your list", e.Kind, e.ID)
}

// NewNotFoundError creates a NotFoundError for a list item.
func NewNotFoundError(kind string, id int) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// AuthRequiredError indicates a tool that needs a user token was called
// before the OAuth flow completed. AuthURL points the caller at the
// authorization endpoint to visit.
type AuthRequiredError struct {
	AuthURL string
}

func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf("user not authenticated; visit %s to authorize", e.AuthURL)
}

// NewAuthRequiredError creates an AuthRequiredError pointing at authURL.
func NewAuthRequiredError(authURL string) *AuthRequiredError {
	return &AuthRequiredError{AuthURL: authURL}
}

// UpstreamError indicates a non-2xx response from the MAL API. The raw
// body is preserved for diagnostics.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("MAL API returned %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("MAL API returned %d", e.Status)
}

// NewUpstreamError creates an UpstreamError from a status and raw body.
func NewUpstreamError(status int, body []byte) *UpstreamError {
	return &UpstreamError{Status: status, Body: string(body)}
}

// AuthStateError indicates an OAuth callback arrived with no pending
// authorization (no verifier issued, or already consumed).
type AuthStateError struct {
	Reason string
}

func (e *AuthStateError) Error() string {
	if e.Reason != "" {
		return "invalid authorization state: " + e.Reason
	}
	return "invalid authorization state"
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAuthRequired returns true if the error is an AuthRequiredError.
func IsAuthRequired(err error) bool {
	var ar *AuthRequiredError
	return errors.As(err, &ar)
}

// IsUpstream returns true if the error is an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

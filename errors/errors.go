/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entry is not found
	ErrNotFound = errors.New("entry not found")

	// ErrMissingDocumentID is returned when an entry that must link locale
	// variants carries no document identifier
	ErrMissingDocumentID = errors.New("entry has no document identifier")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrRequestFailed is returned when a request to the content API fails
	ErrRequestFailed = errors.New("content API request failed")
)

// APIError represents a failed call against the content API. Status is the
// HTTP status code of the response, or zero when the failure happened below
// HTTP (connection refused, DNS, timeout).
type APIError struct {
	Message string
	Status  int
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	return target == ErrRequestFailed
}

// NotFoundError represents an error when an entry is not found
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingDocumentIDError represents an entry that cannot participate in the
// locale-linking protocol because the API returned it without a documentId.
type MissingDocumentIDError struct {
	Resource string
}

func (e *MissingDocumentIDError) Error() string {
	return fmt.Sprintf("created %s entry has no document identifier", e.Resource)
}

func (e *MissingDocumentIDError) Is(target error) bool {
	return target == ErrMissingDocumentID
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewTransportError creates an APIError for a failure below the HTTP layer.
// The status code stays zero because no response was received.
func NewTransportError(err error) error {
	return &APIError{
		Message: fmt.Sprintf("request failed: %v", err),
		Err:     err,
	}
}

// NewHTTPError creates an APIError for a response outside the 2xx range.
func NewHTTPError(status int, statusText string) error {
	return &APIError{
		Message: fmt.Sprintf("request failed with status %d %s", status, statusText),
		Status:  status,
	}
}

// NewDecodeError creates an APIError for a 2xx response whose body could not
// be decoded into the expected envelope.
func NewDecodeError(status int, err error) error {
	return &APIError{
		Message: fmt.Sprintf("failed to decode response body: %v", err),
		Status:  status,
		Err:     err,
	}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

// NewMissingDocumentIDError creates a new MissingDocumentIDError
func NewMissingDocumentIDError(resource string) error {
	return &MissingDocumentIDError{Resource: resource}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMissingDocumentID checks if an error is a missing document identifier error
func IsMissingDocumentID(err error) bool {
	return errors.Is(err, ErrMissingDocumentID)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAPIError checks if an error is an APIError and returns it
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusOf returns the HTTP status code carried by an error, or zero when the
// error is not an APIError or the failure happened below HTTP.
func StatusOf(err error) int {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Status
	}
	return 0
}

package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrInvalidRequest is returned when Generate is called with empty prompts or a nil schema
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrInvalidSchema is returned when a Schema cannot be compiled into a validator
	ErrInvalidSchema = errors.New("invalid schema contract")

	// ErrInvalidResponse is returned when a provider response cannot be parsed as a JSON object
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrSchemaViolation is returned when a parsed response does not satisfy the Schema
	ErrSchemaViolation = errors.New("response does not match schema")

	// ErrEmptyResponse is returned when a provider returns no content at all
	ErrEmptyResponse = errors.New("language model returned no content")

	// ErrContentBlocked is returned when the provider blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when a provider or orchestrator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrPrimaryFailed marks a terminal primary provider failure. The concrete
	// error returned to callers is a *PrimaryFailureError.
	ErrPrimaryFailed = errors.New("Primary AI provider failed")

	// ErrAllProvidersFailed is returned when both providers have been exhausted.
	// It intentionally carries no provider detail.
	ErrAllProvidersFailed = errors.New("All available AI providers failed. Please try again later.")
)

// ProviderError is the normalized form of an SDK error raised by a provider
// adapter. Adapters translate their SDK's error types into it so that the
// classifier never depends on a specific SDK.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying SDK error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ClassifiedError pairs a provider error with the fallback decision made for it.
// It is consumed by the Orchestrator and never returned to callers.
type ClassifiedError struct {
	Err       error
	Retryable bool
	Reason    string
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

// Unwrap returns the classified error.
func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// PrimaryFailureError is returned when the primary provider fails with a
// terminal error and no fallback is attempted. Both ErrPrimaryFailed and the
// original cause are reachable through errors.Is and errors.As.
type PrimaryFailureError struct {
	Provider string
	Err      error
}

// Error implements the error interface.
func (e *PrimaryFailureError) Error() string {
	return ErrPrimaryFailed.Error() + ": " + e.Err.Error()
}

// Unwrap exposes both the sentinel and the original cause.
func (e *PrimaryFailureError) Unwrap() []error {
	return []error{ErrPrimaryFailed, e.Err}
}

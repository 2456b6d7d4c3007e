package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Rizz-Vii/studio-sub011/internal/api/shared"
	"github.com/Rizz-Vii/studio-sub011/internal/generation"
	"github.com/Rizz-Vii/studio-sub011/internal/seo"
)

// Client-facing messages for generation failures.
const (
	msgPrimaryFailed  = "AI provider request failed"
	msgTimeout        = "The AI request timed out. Please try again."
	msgUnexpected     = "An unexpected error occurred"
	msgInvalidRequest = "Invalid request format"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, seo.ErrInvalidInput),
		errors.Is(err, shared.ErrInvalidJSON),
		errors.Is(err, generation.ErrInvalidRequest):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrAllProvidersFailed):
		return http.StatusServiceUnavailable

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, generation.ErrPrimaryFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Provider messages are never included.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	switch {
	case errors.Is(err, seo.ErrInvalidInput):
		return SanitizeValidationError(err)

	case errors.Is(err, shared.ErrInvalidJSON):
		return msgInvalidRequest

	case errors.Is(err, generation.ErrAllProvidersFailed):
		return generation.ErrAllProvidersFailed.Error()

	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout

	case errors.Is(err, generation.ErrPrimaryFailed):
		return msgPrimaryFailed

	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted error. defaultMsg, when set, replaces the message for 500s.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns validator failures into a message naming the
// first offending field, without echoing the submitted value.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "url":
		return "must be a valid URL"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

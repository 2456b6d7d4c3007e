package generation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// overloadedSignal is the literal text providers return when they are out of capacity.
const overloadedSignal = "overloaded"

// IsRetryable reports whether a primary provider error justifies a call to the
// fallback provider. Only two signals qualify: an HTTP 503 status anywhere in
// the error chain, or the case-sensitive substring "overloaded" in the error
// message. Every other error is terminal.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if status, ok := StatusCode(err); ok && status == http.StatusServiceUnavailable {
		return true
	}
	return strings.Contains(err.Error(), overloadedSignal)
}

// Classify wraps err with the fallback decision and a human-readable reason.
func Classify(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	status, hasStatus := StatusCode(err)
	switch {
	case hasStatus && status == http.StatusServiceUnavailable:
		return &ClassifiedError{Err: err, Retryable: true, Reason: "provider unavailable (status 503)"}
	case strings.Contains(err.Error(), overloadedSignal):
		return &ClassifiedError{Err: err, Retryable: true, Reason: "provider overloaded"}
	case hasStatus:
		return &ClassifiedError{Err: err, Reason: fmt.Sprintf("terminal provider error (status %d)", status)}
	default:
		return &ClassifiedError{Err: err, Reason: "terminal provider error"}
	}
}

// StatusCode extracts an HTTP-style status code from err. It understands
// *ProviderError and any error in the chain exposing StatusCode() or
// HTTPStatusCode().
func StatusCode(err error) (int, bool) {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) && providerErr.StatusCode != 0 {
		return providerErr.StatusCode, true
	}

	var coder interface{ StatusCode() int }
	if errors.As(err, &coder) {
		if status := coder.StatusCode(); status != 0 {
			return status, true
		}
	}

	var httpCoder interface{ HTTPStatusCode() int }
	if errors.As(err, &httpCoder) {
		if status := httpCoder.HTTPStatusCode(); status != 0 {
			return status, true
		}
	}

	return 0, false
}

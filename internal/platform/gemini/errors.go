package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
)

// translateError converts an SDK error into a *generation.ProviderError.
// Context errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &generation.ProviderError{
			Provider:   ProviderName,
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
			Err:        err,
		}
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &generation.ProviderError{
			Provider:   ProviderName,
			StatusCode: apiErrPtr.Code,
			Message:    apiErrPtr.Message,
			Err:        err,
		}
	}

	return &generation.ProviderError{
		Provider: ProviderName,
		Message:  err.Error(),
		Err:      err,
	}
}

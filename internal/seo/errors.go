package seo

import "errors"

// ErrInvalidInput is returned when a flow input fails validation. The
// underlying validator.ValidationErrors stays reachable with errors.As.
var ErrInvalidInput = errors.New("invalid input")

// inputError joins ErrInvalidInput with the validation failure.
type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.err.Error()
}

func (e *inputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.err}
}

package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTemperature biases both providers toward deterministic structured output.
const DefaultTemperature float32 = 0.1

// Request is a single structured generation request as seen by a Provider.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Schema       *Schema
	Temperature  float32
}

// Result is a generated JSON object that has validated against the request's Schema.
type Result map[string]any

// Decode converts a Result into a typed value through its JSON encoding.
func Decode[T any](r Result) (T, error) {
	var out T
	raw, err := json.Marshal(r)
	if err != nil {
		return out, fmt.Errorf("failed to encode generation result: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode generation result into %T: %w", out, err)
	}
	return out, nil
}

// Generator is the entry point used by application code (the SEO flows and
// the HTTP layer). It is implemented by Orchestrator.
type Generator interface {
	// Generate produces an object satisfying schema from the given prompts.
	// It returns either a schema-valid Result or an error; never a partial result.
	Generate(ctx context.Context, systemPrompt, userPrompt string, schema *Schema) (Result, error)
}

// Provider is the port implemented by each AI backend adapter.
type Provider interface {
	// Name identifies the provider in logs, metrics and errors.
	Name() string

	// Generate performs one call to the backend. On success the returned Result
	// has been validated against req.Schema. Backend errors are returned as
	// *ProviderError so their status survives for classification.
	Generate(ctx context.Context, req Request) (Result, error)
}

// Outcome labels the result of a single provider attempt.
type Outcome string

// Attempt outcomes reported to a Recorder.
const (
	OutcomeSuccess   Outcome = "success"
	OutcomeRetryable Outcome = "retryable_failure"
	OutcomeTerminal  Outcome = "terminal_failure"
)

// Recorder receives one observation per provider attempt.
type Recorder interface {
	RecordAttempt(provider string, outcome Outcome, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordAttempt(string, Outcome, time.Duration) {}

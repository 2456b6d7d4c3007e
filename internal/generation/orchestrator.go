package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rizz-Vii/studio-sub011/internal/redact"
)

// Orchestrator implements Generator on top of a primary and an optional
// fallback Provider. It makes at most two provider calls per request and
// holds no per-request state, so one instance serves concurrent callers.
type Orchestrator struct {
	primary  Provider
	fallback Provider
	logger   *slog.Logger
	recorder Recorder
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithRecorder reports every provider attempt to r.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.recorder = r
		}
	}
}

// NewOrchestrator creates an Orchestrator. The fallback may be nil, in which
// case retryable primary failures end in ErrAllProvidersFailed.
func NewOrchestrator(primary, fallback Provider, logger *slog.Logger, opts ...Option) (*Orchestrator, error) {
	if primary == nil {
		return nil, fmt.Errorf("%w: primary provider cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	o := &Orchestrator{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Generate sends the request to the primary provider and, if the primary
// failure is retryable, once to the fallback provider.
//
// Errors:
//   - ErrInvalidRequest for empty prompts or a nil schema (no provider is called)
//   - *PrimaryFailureError ("Primary AI provider failed: ...") for terminal primary failures
//   - ErrAllProvidersFailed once both providers are exhausted
func (o *Orchestrator) Generate(
	ctx context.Context,
	systemPrompt string,
	userPrompt string,
	schema *Schema,
) (Result, error) {
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: system prompt cannot be empty", ErrInvalidRequest)
	}
	if strings.TrimSpace(userPrompt) == "" {
		return nil, fmt.Errorf("%w: user prompt cannot be empty", ErrInvalidRequest)
	}
	if schema == nil {
		return nil, fmt.Errorf("%w: schema cannot be nil", ErrInvalidRequest)
	}

	req := Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Schema:       schema,
		Temperature:  DefaultTemperature,
	}

	log := o.logger.With(
		"generation_id", uuid.NewString(),
		"schema", schema.Name(),
	)

	result, err := o.attempt(ctx, o.primary, req)
	if err == nil {
		return result, nil
	}

	classified := Classify(err)
	if !classified.Retryable {
		log.ErrorContext(ctx, "Primary AI provider failed with terminal error",
			"provider", o.primary.Name(),
			"reason", classified.Reason,
			"error", redact.Error(err))
		return nil, &PrimaryFailureError{Provider: o.primary.Name(), Err: err}
	}

	if o.fallback == nil {
		log.ErrorContext(ctx, "Primary AI provider unavailable and no fallback is configured",
			"provider", o.primary.Name(),
			"reason", classified.Reason)
		return nil, ErrAllProvidersFailed
	}

	log.WarnContext(ctx, "Primary AI provider unavailable, falling back",
		"provider", o.primary.Name(),
		"fallback_provider", o.fallback.Name(),
		"reason", classified.Reason)

	result, err = o.attempt(ctx, o.fallback, req)
	if err != nil {
		log.ErrorContext(ctx, "Fallback AI provider failed",
			"provider", o.fallback.Name(),
			"error", redact.Error(err))
		return nil, ErrAllProvidersFailed
	}

	log.InfoContext(ctx, "Fallback AI provider succeeded",
		"provider", o.fallback.Name())
	return result, nil
}

// attempt performs one provider call and reports it to the recorder.
func (o *Orchestrator) attempt(ctx context.Context, p Provider, req Request) (Result, error) {
	start := time.Now()
	result, err := p.Generate(ctx, req)
	elapsed := time.Since(start)

	if err == nil && result == nil {
		err = fmt.Errorf("%w: provider %s returned a nil result", ErrEmptyResponse, p.Name())
	}

	switch {
	case err == nil:
		o.recorder.RecordAttempt(p.Name(), OutcomeSuccess, elapsed)
	case IsRetryable(err):
		o.recorder.RecordAttempt(p.Name(), OutcomeRetryable, elapsed)
	default:
		o.recorder.RecordAttempt(p.Name(), OutcomeTerminal, elapsed)
	}
	return result, err
}

var _ Generator = (*Orchestrator)(nil)

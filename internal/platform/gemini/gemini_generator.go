package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/Rizz-Vii/studio-sub011/internal/config"
	"github.com/Rizz-Vii/studio-sub011/internal/generation"
	"github.com/Rizz-Vii/studio-sub011/internal/redact"
)

// Generator implements generation.Provider using Google's Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client performs the GenerateContent calls
	client ModelClient

	// model is the name of the Gemini model to use
	model string
}

// NewGenerator creates a Generator backed by a real genai client.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key and primary model name
//
// Returns:
//   - A properly initialized Generator or an error wrapping generation.ErrInvalidConfig
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.PrimaryModel == "" {
		return nil, fmt.Errorf("%w: primary model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return NewGeneratorWithClient(logger, client.Models, cfg.PrimaryModel)
}

// NewGeneratorWithClient creates a Generator around an existing ModelClient.
func NewGeneratorWithClient(logger *slog.Logger, client ModelClient, model string) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, fmt.Errorf("%w: model client cannot be nil", generation.ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &Generator{
		logger: logger.With("provider", ProviderName, "model", model),
		client: client,
		model:  model,
	}, nil
}

// Name implements generation.Provider.
func (g *Generator) Name() string {
	return ProviderName
}

// Generate sends a single JSON-mode request constrained by req.Schema and
// returns the validated object.
//
// Errors:
//   - *generation.ProviderError for API failures (status code preserved)
//   - generation.ErrContentBlocked when safety filters block the prompt or answer
//   - generation.ErrEmptyResponse, ErrInvalidResponse or ErrSchemaViolation for unusable output
func (g *Generator) Generate(ctx context.Context, req generation.Request) (generation.Result, error) {
	responseSchema, err := ToGenaiSchema(req.Schema)
	if err != nil {
		return nil, err
	}

	temperature := req.Temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	}
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: combinePrompts(req.SystemPrompt, req.UserPrompt)}},
		},
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"schema", req.Schema.Name(),
		"prompt_length", len(req.SystemPrompt)+len(req.UserPrompt))

	resp, err := g.client.GenerateContent(ctx, g.model, contents, genConfig)
	if err != nil {
		translated := translateError(err)
		g.logger.WarnContext(ctx, "Gemini API call failed",
			"error", redact.Error(translated))
		return nil, translated
	}

	text, err := responseText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini returned an unusable response", "error", err)
		return nil, err
	}

	result, err := req.Schema.ParseResult(text)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini response failed schema validation",
			"schema", req.Schema.Name(),
			"error", err)
		return nil, err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful", "response_length", len(text))
	return result, nil
}

// combinePrompts joins the system and user prompts into a single user turn.
func combinePrompts(systemPrompt, userPrompt string) string {
	return systemPrompt + "\n\n" + userPrompt
}

// responseText extracts the concatenated text of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrEmptyResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

var _ generation.Provider = (*Generator)(nil)

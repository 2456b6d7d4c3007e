package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/Rizz-Vii/studio-sub011/internal/config"
	"github.com/Rizz-Vii/studio-sub011/internal/generation"
	"github.com/Rizz-Vii/studio-sub011/internal/redact"
)

// ProviderName identifies this provider in logs, metrics and errors.
const ProviderName = "openai"

// jsonDirective is appended to the caller's system prompt, followed by the
// schema text.
const jsonDirective = "Your entire response MUST be a single valid JSON object that conforms to the following JSON Schema. " +
	"Do not include any text, explanation or markdown code fences outside the JSON object."

// ChatClient is the subset of the go-openai client used by Generator.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Generator implements generation.Provider using OpenAI chat completions.
type Generator struct {
	logger *slog.Logger
	client ChatClient
	model  string
}

// NewGenerator creates a Generator from configuration. OpenAIBaseURL, when
// set, points the client at a compatible proxy or gateway.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.FallbackModel == "" {
		return nil, fmt.Errorf("%w: fallback model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientCfg := goopenai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.OpenAIBaseURL, "/")
	}

	return NewGeneratorWithClient(logger, goopenai.NewClientWithConfig(clientCfg), cfg.FallbackModel)
}

// NewGeneratorWithClient creates a Generator around an existing ChatClient.
func NewGeneratorWithClient(logger *slog.Logger, client ChatClient, model string) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, fmt.Errorf("%w: chat client cannot be nil", generation.ErrInvalidConfig)
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

// Generate requests a JSON object completion and validates it against
// req.Schema.
func (g *Generator) Generate(ctx context.Context, req generation.Request) (generation.Result, error) {
	if req.Schema == nil {
		return nil, fmt.Errorf("%w: schema cannot be nil", generation.ErrInvalidRequest)
	}

	systemPrompt, err := BuildSystemPrompt(req.SystemPrompt, req.Schema)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		translated := translateError(err)
		g.logger.WarnContext(ctx, "OpenAI API call failed", "error", redact.Error(translated))
		return nil, translated
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: %w", generation.ErrEmptyResponse, ErrNoContent)
	}
	choice := resp.Choices[0]
	if choice.FinishReason == goopenai.FinishReasonContentFilter {
		return nil, fmt.Errorf("%w: completion stopped by content filter", generation.ErrContentBlocked)
	}

	content := choice.Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: %w", generation.ErrEmptyResponse, ErrNoContent)
	}

	result, err := req.Schema.ParseResult(content)
	if err != nil {
		g.logger.WarnContext(ctx, "OpenAI response failed schema validation",
			"schema", req.Schema.Name(),
			"error", err)
		return nil, err
	}

	g.logger.DebugContext(ctx, "OpenAI API call successful",
		"response_length", len(content),
		"total_tokens", resp.Usage.TotalTokens)
	return result, nil
}

// BuildSystemPrompt appends the JSON directive and the schema text to
// systemPrompt.
func BuildSystemPrompt(systemPrompt string, schema *generation.Schema) (string, error) {
	schemaText, err := schema.JSONSchemaText()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(jsonDirective)
	sb.WriteString("\n\nJSON Schema:\n")
	sb.WriteString(schemaText)
	return sb.String(), nil
}

var _ generation.Provider = (*Generator)(nil)

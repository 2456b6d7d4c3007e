package gemini_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Rizz-Vii/studio-sub011/internal/config"
	"github.com/Rizz-Vii/studio-sub011/internal/generation"
	"github.com/Rizz-Vii/studio-sub011/internal/platform/gemini"
)

// fakeModelClient records GenerateContent calls and returns canned values.
type fakeModelClient struct {
	mu         sync.Mutex
	calls      int
	lastModel  string
	lastPrompt string
	lastConfig *genai.GenerateContentConfig

	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModelClient) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastModel = model
	f.lastConfig = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.lastPrompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content:      &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}
}

func scoreSchema() *generation.Schema {
	return generation.NewSchema("score_card",
		generation.String("title", "Short title"),
		generation.Number("score", "Score between 0 and 10"),
	)
}

func newRequest() generation.Request {
	return generation.Request{
		SystemPrompt: "You are an SEO assistant.",
		UserPrompt:   "Rate this title.",
		Schema:       scoreSchema(),
		Temperature:  generation.DefaultTemperature,
	}
}

func newGenerator(t *testing.T, client gemini.ModelClient) *gemini.Generator {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	g, err := gemini.NewGeneratorWithClient(logger, client, "gemini-2.0-flash")
	require.NoError(t, err)
	return g
}

func TestNewGenerator_Validation(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := context.Background()

	_, err := gemini.NewGenerator(ctx, nil, config.LLMConfig{GeminiAPIKey: "k", PrimaryModel: "m"})
	assert.Error(t, err)

	_, err = gemini.NewGenerator(ctx, logger, config.LLMConfig{PrimaryModel: "m"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = gemini.NewGenerator(ctx, logger, config.LLMConfig{GeminiAPIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = gemini.NewGeneratorWithClient(logger, nil, "m")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = gemini.NewGeneratorWithClient(logger, &fakeModelClient{}, "")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestGenerator_Name(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "gemini", newGenerator(t, &fakeModelClient{}).Name())
}

func TestGenerator_Generate_Success(t *testing.T) {
	t.Parallel()

	client := &fakeModelClient{resp: textResponse(`{"title":"x","score":5}`)}
	g := newGenerator(t, client)

	result, err := g.Generate(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, generation.Result{"title": "x", "score": float64(5)}, result)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "gemini-2.0-flash", client.lastModel)
	assert.Equal(t, "You are an SEO assistant.\n\nRate this title.", client.lastPrompt)

	require.NotNil(t, client.lastConfig)
	assert.Equal(t, "application/json", client.lastConfig.ResponseMIMEType)
	require.NotNil(t, client.lastConfig.Temperature)
	assert.InDelta(t, 0.1, *client.lastConfig.Temperature, 1e-6)
	require.NotNil(t, client.lastConfig.ResponseSchema)
	assert.Equal(t, genai.TypeObject, client.lastConfig.ResponseSchema.Type)
	assert.Equal(t, []string{"title", "score"}, client.lastConfig.ResponseSchema.Required)
}

func TestGenerator_Generate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		client  *fakeModelClient
		wantErr error
	}{
		{
			name:    "nil response",
			client:  &fakeModelClient{},
			wantErr: generation.ErrEmptyResponse,
		},
		{
			name:    "no candidates",
			client:  &fakeModelClient{resp: &genai.GenerateContentResponse{}},
			wantErr: generation.ErrEmptyResponse,
		},
		{
			name: "safety finish reason",
			client: &fakeModelClient{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "prompt blocked",
			client: &fakeModelClient{resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "empty text",
			client:  &fakeModelClient{resp: textResponse("")},
			wantErr: generation.ErrEmptyResponse,
		},
		{
			name:    "not JSON",
			client:  &fakeModelClient{resp: textResponse("Here is your answer")},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "missing required field",
			client:  &fakeModelClient{resp: textResponse(`{"title":"x"}`)},
			wantErr: generation.ErrSchemaViolation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newGenerator(t, tc.client).Generate(context.Background(), newRequest())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, generation.IsRetryable(err), "response problems must not trigger fallback")
		})
	}
}

func TestGenerator_Generate_APIErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantRetryable bool
	}{
		{
			name:          "service unavailable",
			err:           genai.APIError{Code: 503, Message: "The service is currently unavailable.", Status: "UNAVAILABLE"},
			wantStatus:    503,
			wantRetryable: true,
		},
		{
			name:          "model overloaded",
			err:           genai.APIError{Code: 500, Message: "The model is overloaded. Please try again later.", Status: "INTERNAL"},
			wantStatus:    500,
			wantRetryable: true,
		},
		{
			name:          "wrapped pointer error",
			err:           fmt.Errorf("call: %w", &genai.APIError{Code: 503, Message: "unavailable"}),
			wantStatus:    503,
			wantRetryable: true,
		},
		{
			name:          "invalid api key",
			err:           genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key.", Status: "INVALID_ARGUMENT"},
			wantStatus:    400,
			wantRetryable: false,
		},
		{
			name:          "quota exhausted",
			err:           genai.APIError{Code: 429, Message: "Resource has been exhausted", Status: "RESOURCE_EXHAUSTED"},
			wantStatus:    429,
			wantRetryable: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGenerator(t, &fakeModelClient{err: tc.err})

			_, err := g.Generate(context.Background(), newRequest())
			require.Error(t, err)

			var providerErr *generation.ProviderError
			require.ErrorAs(t, err, &providerErr)
			assert.Equal(t, "gemini", providerErr.Provider)
			assert.Equal(t, tc.wantStatus, providerErr.StatusCode)
			assert.Equal(t, tc.wantRetryable, generation.IsRetryable(err))
		})
	}
}

func TestGenerator_Generate_TransportError(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, &fakeModelClient{err: errors.New("dial tcp: connection refused")})

	_, err := g.Generate(context.Background(), newRequest())

	var providerErr *generation.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Zero(t, providerErr.StatusCode)
	assert.Contains(t, providerErr.Message, "connection refused")
	assert.False(t, generation.IsRetryable(err))
}

func TestGenerator_Generate_ContextErrorPassesThrough(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, &fakeModelClient{err: fmt.Errorf("request: %w", context.DeadlineExceeded)})

	_, err := g.Generate(context.Background(), newRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var providerErr *generation.ProviderError
	assert.False(t, errors.As(err, &providerErr))
}

func TestGenerator_Generate_InvalidSchema(t *testing.T) {
	t.Parallel()

	client := &fakeModelClient{resp: textResponse(`{}`)}
	req := newRequest()
	req.Schema = generation.NewSchema("bad", generation.Field{Name: "x", Type: "date"})

	_, err := newGenerator(t, client).Generate(context.Background(), req)
	assert.ErrorIs(t, err, generation.ErrInvalidSchema)
	assert.Zero(t, client.calls, "an invalid schema must fail before the API call")
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rizz-Vii/studio-sub011/internal/api/middleware"
	"github.com/Rizz-Vii/studio-sub011/internal/api/shared"
	"github.com/Rizz-Vii/studio-sub011/internal/generation"
	"github.com/Rizz-Vii/studio-sub011/internal/seo"
)

// stubGenerator returns a fixed result or error for every call.
type stubGenerator struct {
	result generation.Result
	err    error
}

func (s stubGenerator) Generate(context.Context, string, string, *generation.Schema) (generation.Result, error) {
	return s.result, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts the SEO routes behind the trace middleware, as the
// server does.
func newTestRouter(t *testing.T, gen generation.Generator) http.Handler {
	t.Helper()
	svc, err := seo.NewService(gen, testLogger())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.Trace(testLogger()))
	r.Route("/api/seo", NewSEOHandler(svc).Routes)
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSEOHandler_Success(t *testing.T) {
	auditResult := generation.Result{
		"score": float64(88),
		"issues": []any{
			map[string]any{
				"severity":       "warning",
				"category":       "headings",
				"description":    "Multiple H1 tags",
				"recommendation": "Keep a single H1",
			},
		},
		"summary": "Good page.",
	}
	h := newTestRouter(t, stubGenerator{result: auditResult})

	rec := post(t, h, "/api/seo/audit",
		`{"url":"https://shop.example.com","content":"<h1>A</h1><h1>B</h1>","targetKeyword":"shoes"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(shared.TraceIDHeader))

	var audit seo.PageAudit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &audit))
	assert.InDelta(t, 88, audit.Score, 1e-9)
	require.Len(t, audit.Issues, 1)
	assert.Equal(t, "Keep a single H1", audit.Issues[0].Recommendation)
}

func TestSEOHandler_Routes(t *testing.T) {
	tests := []struct {
		path   string
		body   string
		result generation.Result
	}{
		{
			path: "/api/seo/keywords",
			body: `{"topic":"trail running"}`,
			result: generation.Result{
				"keywords": []any{},
				"summary":  "s",
			},
		},
		{
			path: "/api/seo/content-brief",
			body: `{"keyword":"trail running shoes"}`,
			result: generation.Result{
				"title": "t", "metaDescription": "m", "outline": []any{},
				"targetWordCount": float64(1200), "relatedKeywords": []any{},
			},
		},
		{
			path: "/api/seo/competitors",
			body: `{"url":"https://a.example.com","competitors":["https://b.example.com"]}`,
			result: generation.Result{
				"competitors": []any{}, "opportunities": []any{"x"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rec := post(t, newTestRouter(t, stubGenerator{result: tc.result}), tc.path, tc.body)
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestSEOHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		genErr      error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "malformed JSON",
			body:        `{"url":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "unknown field",
			body:        `{"url":"https://a.example.com","content":"x","extra":1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "missing content",
			body:        `{"url":"https://a.example.com"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid content: required field",
		},
		{
			name:        "all providers failed",
			body:        `{"url":"https://a.example.com","content":"x"}`,
			genErr:      generation.ErrAllProvidersFailed,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "All available AI providers failed. Please try again later.",
		},
		{
			name: "terminal primary failure",
			body: `{"url":"https://a.example.com","content":"x"}`,
			genErr: &generation.PrimaryFailureError{
				Provider: "gemini",
				Err:      &generation.ProviderError{Provider: "gemini", StatusCode: 400, Message: "API key not valid"},
			},
			wantStatus:  http.StatusBadGateway,
			wantMessage: "AI provider request failed",
		},
		{
			name:        "deadline exceeded",
			body:        `{"url":"https://a.example.com","content":"x"}`,
			genErr:      context.DeadlineExceeded,
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "The AI request timed out. Please try again.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestRouter(t, stubGenerator{err: tc.genErr})
			rec := post(t, h, "/api/seo/audit", tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.wantMessage, body.Error)
			assert.Equal(t, rec.Header().Get(shared.TraceIDHeader), body.TraceID)
			assert.NotContains(t, rec.Body.String(), "API key not valid")
		})
	}
}

func TestSEOHandler_MethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/seo/audit", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

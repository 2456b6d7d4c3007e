package seo

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"text/template"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
	"github.com/Rizz-Vii/studio-sub011/internal/platform/logger"
	"github.com/Rizz-Vii/studio-sub011/internal/redact"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// Service runs the SEO flows on top of a generation.Generator.
// It is safe for concurrent use.
type Service struct {
	generator generation.Generator
	validate  *validator.Validate
	prompts   *template.Template
	logger    *slog.Logger
}

// NewService creates a Service. The generator is usually a
// *generation.Orchestrator.
func NewService(generator generation.Generator, log *slog.Logger) (*Service, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	prompts, err := template.New("seo").
		Option("missingkey=error").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(promptFS, "prompts/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}

	return &Service{
		generator: generator,
		validate:  newValidator(),
		prompts:   prompts,
		logger:    log.With("component", "seo"),
	}, nil
}

// newValidator reports fields by their JSON names so validation messages
// match the request bodies clients send.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// runFlow validates input, renders the flow's prompts, generates a result
// for schema and decodes it into T.
func runFlow[T any](ctx context.Context, s *Service, flow string, input any, schema *generation.Schema) (*T, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &inputError{err: err}
	}

	systemPrompt, err := s.render(flow+".system", input)
	if err != nil {
		return nil, err
	}
	userPrompt, err := s.render(flow+".user", input)
	if err != nil {
		return nil, err
	}

	log := s.logger
	if scoped, ok := logger.FromContext(ctx); ok {
		log = scoped.With("component", "seo")
	}
	log = log.With("flow", flow)

	start := time.Now()
	result, err := s.generator.Generate(ctx, systemPrompt, userPrompt, schema)
	if err != nil {
		log.WarnContext(ctx, "SEO flow failed",
			"duration_ms", time.Since(start).Milliseconds(),
			"error", redact.Error(err))
		return nil, err
	}

	out, err := generation.Decode[T](result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	log.InfoContext(ctx, "SEO flow completed",
		"duration_ms", time.Since(start).Milliseconds())
	return &out, nil
}

func (s *Service) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", name, err)
	}
	return buf.String(), nil
}

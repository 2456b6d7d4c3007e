package gemini

import (
	"context"

	"google.golang.org/genai"
)

// ProviderName identifies this provider in logs, metrics and errors.
const ProviderName = "gemini"

// ModelClient is the subset of the genai client used by Generator.
// *genai.Models satisfies it; tests substitute a fake.
type ModelClient interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

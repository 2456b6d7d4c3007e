package seo

import (
	"context"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
)

// DefaultKeywordCount is used when KeywordResearchInput.Count is zero.
const DefaultKeywordCount = 10

// KeywordResearchInput describes a keyword research request.
type KeywordResearchInput struct {
	Topic    string `json:"topic" validate:"required,max=200"`
	Industry string `json:"industry,omitempty" validate:"max=100"`
	Audience string `json:"audience,omitempty" validate:"max=200"`
	Count    int    `json:"count,omitempty" validate:"omitempty,min=1,max=50"`
}

// Keyword is a single keyword suggestion.
type Keyword struct {
	Keyword      string `json:"keyword"`
	SearchVolume int    `json:"searchVolume"`
	Difficulty   int    `json:"difficulty"`
	Intent       string `json:"intent"`
	Rationale    string `json:"rationale"`
}

// KeywordResearchResult is the output of ResearchKeywords.
type KeywordResearchResult struct {
	Keywords []Keyword `json:"keywords"`
	Summary  string    `json:"summary"`
}

// KeywordResearchSchema is the contract for ResearchKeywords results.
var KeywordResearchSchema = generation.NewSchema("keyword_research",
	generation.Array("keywords", "Keyword suggestions ordered by opportunity",
		generation.Object("", "A keyword suggestion",
			generation.String("keyword", "The keyword or key phrase"),
			generation.Integer("searchVolume", "Estimated monthly search volume"),
			generation.Integer("difficulty", "Ranking difficulty from 0 (easy) to 100 (hard)"),
			generation.Enum("intent", "Dominant search intent",
				"informational", "navigational", "commercial", "transactional"),
			generation.String("rationale", "Why this keyword is worth targeting"),
		),
	),
	generation.String("summary", "Short overview of the keyword landscape"),
)

// ResearchKeywords suggests keywords for a topic.
func (s *Service) ResearchKeywords(ctx context.Context, input KeywordResearchInput) (*KeywordResearchResult, error) {
	if input.Count == 0 {
		input.Count = DefaultKeywordCount
	}
	return runFlow[KeywordResearchResult](ctx, s, "keywords", input, KeywordResearchSchema)
}

package seo

import (
	"context"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
)

// CompetitorAnalysisInput describes a competitor analysis request.
type CompetitorAnalysisInput struct {
	URL         string   `json:"url" validate:"required,url"`
	Competitors []string `json:"competitors" validate:"required,min=1,max=5,dive,url"`
	Keywords    []string `json:"keywords,omitempty" validate:"max=20,dive,required,max=100"`
}

// CompetitorProfile summarizes one competitor.
type CompetitorProfile struct {
	URL         string   `json:"url"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	ContentGaps []string `json:"contentGaps"`
}

// CompetitorAnalysis is the output of AnalyzeCompetitors.
type CompetitorAnalysis struct {
	Competitors   []CompetitorProfile `json:"competitors"`
	Opportunities []string            `json:"opportunities"`
}

// CompetitorAnalysisSchema is the contract for AnalyzeCompetitors results.
var CompetitorAnalysisSchema = generation.NewSchema("competitor_analysis",
	generation.Array("competitors", "One entry per competitor URL",
		generation.Object("", "Competitor profile",
			generation.String("url", "Competitor URL"),
			generation.Array("strengths", "What the competitor does well", generation.String("", "")),
			generation.Array("weaknesses", "Where the competitor is weak", generation.String("", "")),
			generation.Array("contentGaps", "Topics the competitor covers that the site does not", generation.String("", "")),
		),
	),
	generation.Array("opportunities", "Concrete actions for the analyzed site", generation.String("", "")),
)

// AnalyzeCompetitors compares a site against up to five competitors.
func (s *Service) AnalyzeCompetitors(ctx context.Context, input CompetitorAnalysisInput) (*CompetitorAnalysis, error) {
	return runFlow[CompetitorAnalysis](ctx, s, "competitors", input, CompetitorAnalysisSchema)
}

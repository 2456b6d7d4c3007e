package seo

import (
	"context"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
)

// ContentBriefInput describes a content brief request.
type ContentBriefInput struct {
	Keyword  string `json:"keyword" validate:"required,max=200"`
	Audience string `json:"audience,omitempty" validate:"max=200"`
	Tone     string `json:"tone,omitempty" validate:"max=50"`
}

// OutlineSection is one heading of a content outline.
type OutlineSection struct {
	Heading string   `json:"heading"`
	Points  []string `json:"points"`
}

// ContentBrief is the output of GenerateContentBrief.
type ContentBrief struct {
	Title           string           `json:"title"`
	MetaDescription string           `json:"metaDescription"`
	Outline         []OutlineSection `json:"outline"`
	TargetWordCount int              `json:"targetWordCount"`
	RelatedKeywords []string         `json:"relatedKeywords"`
}

// ContentBriefSchema is the contract for GenerateContentBrief results.
var ContentBriefSchema = generation.NewSchema("content_brief",
	generation.String("title", "SEO title, at most 60 characters"),
	generation.String("metaDescription", "Meta description, at most 160 characters"),
	generation.Array("outline", "Article outline",
		generation.Object("", "An outline section",
			generation.String("heading", "Section heading (H2)"),
			generation.Array("points", "Points to cover in the section", generation.String("", "")),
		),
	),
	generation.Integer("targetWordCount", "Recommended article length in words"),
	generation.Array("relatedKeywords", "Secondary keywords to work into the text", generation.String("", "")),
)

// GenerateContentBrief produces a writing brief for a target keyword.
func (s *Service) GenerateContentBrief(ctx context.Context, input ContentBriefInput) (*ContentBrief, error) {
	return runFlow[ContentBrief](ctx, s, "content_brief", input, ContentBriefSchema)
}

package seo

import (
	"context"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
)

// PageAuditInput describes an on-page audit request.
type PageAuditInput struct {
	URL           string `json:"url" validate:"required,url"`
	Content       string `json:"content" validate:"required,max=50000"`
	TargetKeyword string `json:"targetKeyword,omitempty" validate:"max=200"`
}

// AuditIssue is one finding of a page audit.
type AuditIssue struct {
	Severity       string `json:"severity"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// PageAudit is the output of AuditPage.
type PageAudit struct {
	Score   float64      `json:"score"`
	Issues  []AuditIssue `json:"issues"`
	Summary string       `json:"summary"`
}

// PageAuditSchema is the contract for AuditPage results.
var PageAuditSchema = generation.NewSchema("page_audit",
	generation.Number("score", "Overall on-page SEO score from 0 to 100"),
	generation.Array("issues", "Problems found on the page, most severe first",
		generation.Object("", "An audit finding",
			generation.Enum("severity", "Impact of the issue", "critical", "warning", "info"),
			generation.String("category", "Area such as title, headings, content, links or metadata"),
			generation.String("description", "What is wrong"),
			generation.String("recommendation", "How to fix it"),
		),
	),
	generation.String("summary", "One paragraph summary of the audit"),
)

// AuditPage reviews page content for on-page SEO problems.
func (s *Service) AuditPage(ctx context.Context, input PageAuditInput) (*PageAudit, error) {
	return runFlow[PageAudit](ctx, s, "audit", input, PageAuditSchema)
}

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rizz-Vii/studio-sub011/internal/api/shared"
	"github.com/Rizz-Vii/studio-sub011/internal/seo"
)

// SEOService is the subset of *seo.Service the handlers depend on.
type SEOService interface {
	ResearchKeywords(ctx context.Context, input seo.KeywordResearchInput) (*seo.KeywordResearchResult, error)
	GenerateContentBrief(ctx context.Context, input seo.ContentBriefInput) (*seo.ContentBrief, error)
	AnalyzeCompetitors(ctx context.Context, input seo.CompetitorAnalysisInput) (*seo.CompetitorAnalysis, error)
	AuditPage(ctx context.Context, input seo.PageAuditInput) (*seo.PageAudit, error)
}

// SEOHandler handles the /api/seo endpoints.
type SEOHandler struct {
	service SEOService
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(service SEOService) *SEOHandler {
	return &SEOHandler{service: service}
}

// Routes mounts the SEO endpoints on r.
func (h *SEOHandler) Routes(r chi.Router) {
	r.Post("/keywords", h.ResearchKeywords)
	r.Post("/content-brief", h.GenerateContentBrief)
	r.Post("/competitors", h.AnalyzeCompetitors)
	r.Post("/audit", h.AuditPage)
}

// ResearchKeywords handles POST /api/seo/keywords requests
func (h *SEOHandler) ResearchKeywords(w http.ResponseWriter, r *http.Request) {
	serveFlow(w, r, h.service.ResearchKeywords)
}

// GenerateContentBrief handles POST /api/seo/content-brief requests
func (h *SEOHandler) GenerateContentBrief(w http.ResponseWriter, r *http.Request) {
	serveFlow(w, r, h.service.GenerateContentBrief)
}

// AnalyzeCompetitors handles POST /api/seo/competitors requests
func (h *SEOHandler) AnalyzeCompetitors(w http.ResponseWriter, r *http.Request) {
	serveFlow(w, r, h.service.AnalyzeCompetitors)
}

// AuditPage handles POST /api/seo/audit requests
func (h *SEOHandler) AuditPage(w http.ResponseWriter, r *http.Request) {
	serveFlow(w, r, h.service.AuditPage)
}

// serveFlow decodes an In from the body, runs flow and writes its result.
// Input validation happens inside the flow so the HTTP and Go callers share
// one set of rules.
func serveFlow[In any, Out any](
	w http.ResponseWriter,
	r *http.Request,
	flow func(context.Context, In) (*Out, error),
) {
	var input In
	if err := shared.DecodeJSON(w, r, &input); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	out, err := flow(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

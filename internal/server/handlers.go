package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/conclusiv/conclusiv/pkg/errors"
	"github.com/conclusiv/conclusiv/pkg/narrative"
	"github.com/conclusiv/conclusiv/pkg/pipeline"
	"github.com/conclusiv/conclusiv/pkg/plan"
	"github.com/conclusiv/conclusiv/pkg/store"
)

// planRequest is the body for POST /v1/plans.
type planRequest struct {
	Narrative *narrative.Narrative `json:"narrative"`
	Options   pipeline.Options     `json:"options"`
}

// planResponse carries the computed plan and any requested artifacts.
// Artifact bytes are base64-encoded by encoding/json.
type planResponse struct {
	Plan      *plan.Plan         `json:"plan"`
	PlanHash  string             `json:"plan_hash"`
	Steps     int                `json:"steps"`
	Cache     pipeline.CacheInfo `json:"cache"`
	Artifacts map[string][]byte  `json:"artifacts,omitempty"`
}

func (s *Server) handleBuildPlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}
	if req.Narrative == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "narrative is required"))
		return
	}
	if err := req.Options.ValidateAndSetDefaults(); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options"))
		return
	}

	result, err := s.runner.Execute(r.Context(), req.Narrative, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, planResponse{
		Plan:      result.Plan,
		PlanHash:  result.PlanHash,
		Steps:     result.Stats.StepCount,
		Cache:     result.CacheInfo,
		Artifacts: result.Artifacts,
	})
}

// sampleNarrative is rendered by the template preview endpoint so a
// template can be inspected without posting content.
func sampleNarrative() *narrative.Narrative {
	n := &narrative.Narrative{
		Title: "Template Preview",
		Sections: []narrative.Section{
			{Title: "Opening", Body: "The first beat of the story.", Icon: "flag"},
			{Title: "Evidence", Items: []string{"First point", "Second point", "Third point"}, Icon: "chart-bar"},
			{Title: "Turning Point", Body: "Where the narrative pivots.", Icon: "lightbulb"},
			{Title: "Resolution", Body: "The conclusion the audience keeps.", Icon: "check"},
		},
	}
	_ = n.Validate()
	return n
}

func (s *Server) handleTemplatePreview(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{
		Template:         chi.URLParam(r, "template"),
		Theme:            r.URL.Query().Get("theme"),
		Mobile:           r.URL.Query().Get("mobile") == "true",
		Animations:       r.URL.Query().Get("animations") != "false",
		TransitionLabels: true,
		Formats:          []string{pipeline.FormatSVG},
	}

	result, err := s.runner.Execute(r.Context(), sampleNarrative(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(result.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleSaveNarrative(w http.ResponseWriter, r *http.Request) {
	var n narrative.Narrative
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}
	if err := n.Validate(); err != nil {
		writeError(w, err)
		return
	}

	id, err := s.store.SaveNarrative(r.Context(), &n)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleListNarratives(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListNarratives(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*narrative.Narrative{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetNarrative(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.GetNarrative(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleDeleteNarrative(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteNarrative(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// shareRequest is the body for POST /v1/narratives/{id}/shares.
// A zero TTL uses the default of 30 days; -1 means no expiration.
type shareRequest struct {
	Template string `json:"template,omitempty"`
	TTLDays  int    `json:"ttl_days,omitempty"`
}

type shareResponse struct {
	Token     string     `json:"token"`
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
			return
		}
	}

	ttl := store.DefaultShareTTL
	switch {
	case req.TTLDays < 0:
		ttl = 0
	case req.TTLDays > 0:
		ttl = time.Duration(req.TTLDays) * 24 * time.Hour
	}

	share, err := s.store.CreateShare(r.Context(), chi.URLParam(r, "id"), req.Template, ttl)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := shareResponse{Token: share.Token, URL: "/s/" + share.Token}
	if !share.ExpiresAt.IsZero() {
		resp.ExpiresAt = &share.ExpiresAt
	}
	writeJSON(w, http.StatusCreated, resp)
}

var shareContentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/plain; charset=utf-8",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if err := errors.ValidateShareToken(token); err != nil {
		writeError(w, err)
		return
	}

	n, template, err := store.ResolveShare(r.Context(), s.store, token)
	if err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid format %q", format))
		return
	}

	opts := pipeline.Options{
		Template:   template,
		Theme:      r.URL.Query().Get("theme"),
		Mobile:     r.URL.Query().Get("mobile") == "true",
		Animations: format == pipeline.FormatSVG,
		Formats:    []string{format},
	}

	result, err := s.runner.Execute(r.Context(), n, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", shareContentTypes[format])
	w.Write(result.Artifacts[format])
}

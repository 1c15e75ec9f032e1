package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/conclusiv/conclusiv/pkg/narrative"
	"github.com/conclusiv/conclusiv/pkg/plan"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(nil, nil, logger)
}

func testNarrativeJSON() []byte {
	return []byte(`{
		"title": "Q3 Review",
		"template": "zoom_reveal",
		"sections": [
			{"title": "Wins", "body": "Shipped the redesign.", "icon": "rocket"},
			{"title": "Numbers", "items": ["ARR up 12%", "Churn down"]},
			{"title": "Next", "body": "Double down on mobile."}
		]
	}`)
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(t, testServer(t), http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestBuildPlan(t *testing.T) {
	body := []byte(`{"narrative": ` + string(testNarrativeJSON()) + `, "options": {"formats": ["svg", "json"]}}`)
	w := doRequest(t, testServer(t), http.MethodPost, "/v1/plans", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Plan      *plan.Plan        `json:"plan"`
		PlanHash  string            `json:"plan_hash"`
		Steps     int               `json:"steps"`
		Artifacts map[string][]byte `json:"artifacts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Steps != 3 || resp.Plan == nil || len(resp.Plan.Steps) != 3 {
		t.Errorf("steps = %d, plan = %+v", resp.Steps, resp.Plan)
	}
	if len(resp.PlanHash) != 64 {
		t.Errorf("plan hash = %q", resp.PlanHash)
	}
	if !bytes.Contains(resp.Artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact missing")
	}
	if len(resp.Artifacts["json"]) == 0 {
		t.Error("json artifact missing")
	}
}

func TestBuildPlanBadRequests(t *testing.T) {
	s := testServer(t)
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"no narrative", `{"options": {}}`},
		{"empty narrative", `{"narrative": {"title": "x", "sections": []}}`},
		{"bad format", `{"narrative": ` + string(testNarrativeJSON()) + `, "options": {"formats": ["gif"]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s, http.MethodPost, "/v1/plans", []byte(tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestTemplatePreview(t *testing.T) {
	w := doRequest(t, testServer(t), http.MethodGet, "/v1/plans/flyover_map/storyboard.svg", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	svg := w.Body.String()
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "Template Preview") {
		t.Error("preview should render the sample narrative")
	}
	// Animations default on for previews.
	if !strings.Contains(svg, "@keyframes") {
		t.Error("preview should be animated by default")
	}
}

func TestTemplatePreviewUnknownTemplateFallsBack(t *testing.T) {
	// Unknown templates resolve to the default instead of failing.
	w := doRequest(t, testServer(t), http.MethodGet, "/v1/plans/bogus/storyboard.svg", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestNarrativeCRUD(t *testing.T) {
	s := testServer(t)

	// Create.
	w := doRequest(t, s, http.MethodPost, "/v1/narratives", testNarrativeJSON())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created map[string]string
	json.Unmarshal(w.Body.Bytes(), &created)
	id := created["id"]
	if id == "" {
		t.Fatal("no id returned")
	}

	// Get.
	w = doRequest(t, s, http.MethodGet, "/v1/narratives/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var n narrative.Narrative
	if err := json.Unmarshal(w.Body.Bytes(), &n); err != nil {
		t.Fatal(err)
	}
	if n.Title != "Q3 Review" || len(n.Sections) != 3 {
		t.Errorf("narrative = %+v", n)
	}

	// List.
	w = doRequest(t, s, http.MethodGet, "/v1/narratives/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list []json.RawMessage
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Errorf("list len = %d", len(list))
	}

	// Delete.
	w = doRequest(t, s, http.MethodDelete, "/v1/narratives/"+id, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doRequest(t, s, http.MethodGet, "/v1/narratives/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", w.Code)
	}
}

func TestSaveInvalidNarrative(t *testing.T) {
	w := doRequest(t, testServer(t), http.MethodPost, "/v1/narratives", []byte(`{"title": "Empty", "sections": []}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestShareFlow(t *testing.T) {
	s := testServer(t)

	w := doRequest(t, s, http.MethodPost, "/v1/narratives", testNarrativeJSON())
	var created map[string]string
	json.Unmarshal(w.Body.Bytes(), &created)
	id := created["id"]

	// Mint a share pinned to a template.
	w = doRequest(t, s, http.MethodPost, "/v1/narratives/"+id+"/shares", []byte(`{"template": "orbit_focus"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("share status = %d, body = %s", w.Code, w.Body.String())
	}
	var share shareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &share); err != nil {
		t.Fatal(err)
	}
	if share.Token == "" || share.URL != "/s/"+share.Token {
		t.Errorf("share = %+v", share)
	}
	if share.ExpiresAt == nil {
		t.Error("default shares should expire")
	}

	// Resolve as SVG.
	w = doRequest(t, s, http.MethodGet, share.URL, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("resolve status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}

	// Resolve as JSON.
	w = doRequest(t, s, http.MethodGet, share.URL+"?format=json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("json resolve status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	// Bad format.
	w = doRequest(t, s, http.MethodGet, share.URL+"?format=gif", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad format status = %d", w.Code)
	}
}

func TestShareForMissingNarrative(t *testing.T) {
	w := doRequest(t, testServer(t), http.MethodPost, "/v1/narratives/nope/shares", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

func TestShareTokenValidation(t *testing.T) {
	s := testServer(t)
	// Malformed tokens 404 without hitting the store.
	w := doRequest(t, s, http.MethodGet, "/s/not-a-token", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

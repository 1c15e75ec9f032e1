package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/conclusiv/conclusiv/pkg/narrative"
	"github.com/conclusiv/conclusiv/pkg/plan"
)

func previewPlan(t *testing.T) *plan.Plan {
	t.Helper()
	n := &narrative.Narrative{
		Title: "Demo",
		Sections: []narrative.Section{
			{Title: "One", Body: "First beat."},
			{Title: "Two", Items: []string{"a", "b"}},
			{Title: "Three"},
		},
	}
	if err := n.Validate(); err != nil {
		t.Fatal(err)
	}
	return plan.Build(n, "zoom_reveal", plan.DefaultCanvas, false)
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func TestPreviewModelNavigation(t *testing.T) {
	m := newPreviewModel(previewPlan(t))

	// Stepping back at the first step is a no-op.
	next, _ := m.Update(keyMsg("left"))
	m = next.(previewModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d", m.cursor)
	}

	next, _ = m.Update(keyMsg("right"))
	m = next.(previewModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after right", m.cursor)
	}

	// Stepping past the last step clamps.
	next, _ = m.Update(keyMsg("G"))
	m = next.(previewModel)
	next, _ = m.Update(keyMsg("right"))
	m = next.(previewModel)
	if m.cursor != 2 {
		t.Errorf("cursor = %d at end", m.cursor)
	}

	next, _ = m.Update(keyMsg("g"))
	m = next.(previewModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after home", m.cursor)
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := newPreviewModel(previewPlan(t))
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestPreviewView(t *testing.T) {
	m := newPreviewModel(previewPlan(t))

	view := m.View()
	if !strings.Contains(view, "Demo") || !strings.Contains(view, "One") {
		t.Error("view should show the title and first section")
	}
	if !strings.Contains(view, "step 1/3") {
		t.Errorf("view should show step position:\n%s", view)
	}
	// No inbound transition on the first step.
	if strings.Contains(view, "(0.0s)") {
		t.Error("first step should not show a transition")
	}

	next, _ := m.Update(keyMsg("right"))
	m = next.(previewModel)
	view = m.View()
	if !strings.Contains(view, "Two") || !strings.Contains(view, "step 2/3") {
		t.Errorf("view after step:\n%s", view)
	}
	if !strings.Contains(view, "• a") {
		t.Error("items should be listed")
	}
}

func TestPreviewViewEmptyPlan(t *testing.T) {
	m := newPreviewModel(&plan.Plan{})
	if v := m.View(); !strings.Contains(v, "Nothing to preview") {
		t.Errorf("view = %q", v)
	}
}

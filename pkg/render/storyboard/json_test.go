package storyboard

import (
	"encoding/json"
	"testing"
)

func TestRenderJSON(t *testing.T) {
	p := testPlan(t, "zoom_reveal", 4)

	data, err := RenderJSON(p, WithJSONTheme("dark"))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Title    string `json:"title"`
		Template string `json:"template"`
		Canvas   float64 `json:"canvas"`
		Theme    string `json:"theme"`
		Steps    []struct {
			ID         string `json:"id"`
			Transition string `json:"transition"`
			Frames     []struct {
				T float64 `json:"t"`
			} `json:"frames"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Title != "Launch" || out.Template != "zoom_reveal" || out.Canvas != 1000 {
		t.Errorf("header = %+v", out)
	}
	if out.Theme != "dark" {
		t.Errorf("theme = %q", out.Theme)
	}
	if len(out.Steps) != 4 {
		t.Fatalf("steps = %d", len(out.Steps))
	}
	if out.Steps[0].ID != "s1" {
		t.Errorf("first step id = %q", out.Steps[0].ID)
	}
	if out.Steps[1].Transition != "zoom_out" {
		t.Errorf("second transition = %q", out.Steps[1].Transition)
	}
	// Frames are opt-in.
	for i, s := range out.Steps {
		if len(s.Frames) != 0 {
			t.Errorf("step %d has frames without WithJSONFrames", i)
		}
	}
}

func TestRenderJSONFrames(t *testing.T) {
	p := testPlan(t, "linear_storyboard", 3)

	data, err := RenderJSON(p, WithJSONFrames(8))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Steps []struct {
			Position struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"position"`
			Frames []struct {
				T float64 `json:"t"`
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"frames"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	// The first step has no inbound transition, so no frames.
	if len(out.Steps[0].Frames) != 0 {
		t.Error("first step should have no frames")
	}

	for i := 1; i < len(out.Steps); i++ {
		frames := out.Steps[i].Frames
		if len(frames) != 8 {
			t.Fatalf("step %d frame count = %d", i, len(frames))
		}
		last := frames[len(frames)-1]
		if last.T != 1 {
			t.Errorf("last frame t = %f", last.T)
		}
		// The eased path lands exactly on the step position.
		if last.X != out.Steps[i].Position.X || last.Y != out.Steps[i].Position.Y {
			t.Errorf("step %d final frame (%f,%f) != position (%f,%f)",
				i, last.X, last.Y, out.Steps[i].Position.X, out.Steps[i].Position.Y)
		}
	}
}

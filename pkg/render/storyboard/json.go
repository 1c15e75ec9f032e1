package storyboard

import (
	"encoding/json"

	"github.com/conclusiv/conclusiv/pkg/motion"
	"github.com/conclusiv/conclusiv/pkg/plan"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme  string
	frames int
}

// WithJSONTheme records the theme name in the JSON output for round-trip
// rendering.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithJSONFrames sets how many interpolated camera frames are emitted per
// step transition. Zero disables frame sampling.
func WithJSONFrames(n int) JSONOption { return func(r *jsonRenderer) { r.frames = n } }

type jsonOutput struct {
	Title    string                  `json:"title"`
	Template string                  `json:"template"`
	Canvas   float64                 `json:"canvas"`
	Mobile   bool                    `json:"mobile,omitempty"`
	Theme    string                  `json:"theme,omitempty"`
	Config   motion.Config           `json:"config"`
	Content  motion.ContentAnimation `json:"content"`
	Steps    []jsonStep              `json:"steps"`
}

type jsonStep struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Body       string              `json:"body,omitempty"`
	Items      []string            `json:"items,omitempty"`
	Icon       string              `json:"icon,omitempty"`
	Position   motion.NodePosition `json:"position"`
	Transition string              `json:"transition"`
	Duration   float64             `json:"duration"`
	Frames     []jsonFrame         `json:"frames,omitempty"`
}

// jsonFrame is one interpolated camera state on the way into a step,
// sampled along the template's ease curve.
type jsonFrame struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RenderJSON exports the plan as a pretty-printed JSON document.
// This is the primary data interchange format for Conclusiv, enabling:
//
//   - Playback by web and mobile clients
//   - Caching computed plans for fast re-rendering
//   - Round-trip rendering (re-import and render identically)
//
// With [WithJSONFrames], each step additionally carries eased camera frames
// interpolated from the previous step's position, so dumb clients can play
// the transition without implementing the ease curve themselves.
//
// RenderJSON returns an error only if JSON marshaling fails. It does not
// modify p and is safe to call concurrently.
func RenderJSON(p *plan.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Title:    p.Title,
		Template: string(p.Template),
		Canvas:   p.Canvas,
		Mobile:   p.Mobile,
		Theme:    r.theme,
		Config:   p.Config,
		Content:  p.Content,
		Steps:    buildJSONSteps(p, r.frames),
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONSteps(p *plan.Plan, frames int) []jsonStep {
	steps := make([]jsonStep, len(p.Steps))
	for i, s := range p.Steps {
		js := jsonStep{
			ID:         s.Section.ID,
			Title:      s.Section.Title,
			Body:       s.Section.Body,
			Items:      s.Section.Items,
			Icon:       s.Section.Icon,
			Position:   s.Position,
			Transition: string(s.Transition),
			Duration:   s.Duration,
		}
		if frames > 0 && i > 0 {
			js.Frames = sampleFrames(p.Steps[i-1].Position, s.Position, p.Config.Ease, frames)
		}
		steps[i] = js
	}
	return steps
}

func sampleFrames(from, to motion.NodePosition, ease [4]float64, n int) []jsonFrame {
	frames := make([]jsonFrame, n)
	for i := range n {
		t := float64(i+1) / float64(n)
		eased := motion.CubicBezier(ease, t)
		frames[i] = jsonFrame{
			T: t,
			X: motion.Lerp(from.X, to.X, eased),
			Y: motion.Lerp(from.Y, to.Y, eased),
		}
	}
	return frames
}

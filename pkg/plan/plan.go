// Package plan turns a narrative into a presentation plan.
//
// A plan is the fully resolved, serializable description of an animated
// presentation: the template configuration snapshot, one canvas position per
// section, the transition for every step boundary, and the content
// enter-animations. Planning is pure computation - equal inputs always
// produce equal plans - which is what makes plan caching sound.
package plan

import (
	"encoding/json"

	"github.com/conclusiv/conclusiv/pkg/errors"
	"github.com/conclusiv/conclusiv/pkg/motion"
	"github.com/conclusiv/conclusiv/pkg/narrative"
)

// DefaultCanvas is the default canvas dimension in pixels.
const DefaultCanvas = 1000.0

// Step pairs a section with its resolved presentation geometry.
type Step struct {
	Section    narrative.Section     `json:"section" bson:"section"`
	Position   motion.NodePosition   `json:"position" bson:"position"`
	Transition motion.TransitionType `json:"transition" bson:"transition"`
	Duration   float64               `json:"duration" bson:"duration"`
}

// Plan is the complete resolved presentation.
type Plan struct {
	Title    string          `json:"title" bson:"title"`
	Template motion.Template `json:"template" bson:"template"`
	Canvas   float64         `json:"canvas" bson:"canvas"`
	Mobile   bool            `json:"mobile" bson:"mobile"`

	// Config is the animation configuration the plan was computed with,
	// after any mobile overrides were applied.
	Config motion.Config `json:"config" bson:"config"`

	Steps   []Step                  `json:"steps" bson:"steps"`
	Content motion.ContentAnimation `json:"content" bson:"content"`
}

// StepCount returns the number of steps in the plan.
func (p *Plan) StepCount() int { return len(p.Steps) }

// Build computes a plan for the narrative.
//
// The template is taken from opts if set, otherwise from the narrative;
// unknown template names resolve to the default. A canvas of zero means
// DefaultCanvas. Build never fails on an empty narrative - it returns a
// plan with no steps - so callers validate narratives before planning.
func Build(n *narrative.Narrative, template string, canvas float64, mobile bool) *Plan {
	if template == "" {
		template = n.Template
	}
	name := motion.Normalize(template)

	cfg := motion.ConfigFor(string(name))
	if mobile {
		cfg = motion.MobileOverrides(string(name)).Apply(cfg)
	}
	if canvas == 0 {
		canvas = DefaultCanvas
	}

	count := n.SectionCount()
	positions := motion.NodePositions(count, cfg, canvas)
	transitions := motion.TransitionSequence(string(name), count)

	steps := make([]Step, count)
	for i := range count {
		steps[i] = Step{
			Section:    n.Sections[i],
			Position:   positions[i],
			Transition: transitions[i],
			Duration:   cfg.TransitionDuration(1),
		}
	}

	return &Plan{
		Title:    n.Title,
		Template: name,
		Canvas:   canvas,
		Mobile:   mobile,
		Config:   cfg,
		Steps:    steps,
		Content:  motion.ContentAnimationFor(string(name)),
	}
}

// Marshal serializes a plan to JSON.
func Marshal(p *Plan) ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal deserializes a plan from JSON.
func Unmarshal(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal plan")
	}
	return &p, nil
}

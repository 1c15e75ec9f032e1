package motion

// =============================================================================
// Content Enter Animations
// =============================================================================

// MotionState describes one endpoint of a content animation: opacity,
// offset, scale, and optional clip-path/filter targets. It is descriptive
// data for the rendering layer; the engine never interprets it.
type MotionState struct {
	Opacity  float64 `json:"opacity" bson:"opacity"`
	X        float64 `json:"x,omitempty" bson:"x,omitempty"`
	Y        float64 `json:"y,omitempty" bson:"y,omitempty"`
	Scale    float64 `json:"scale,omitempty" bson:"scale,omitempty"`
	ClipPath string  `json:"clip_path,omitempty" bson:"clip_path,omitempty"`
	Filter   string  `json:"filter,omitempty" bson:"filter,omitempty"`
}

// MotionTiming is the timing curve applied between the initial and animate
// states of a field.
type MotionTiming struct {
	Duration float64    `json:"duration" bson:"duration"`
	Delay    float64    `json:"delay" bson:"delay"`
	Ease     [4]float64 `json:"ease" bson:"ease"`
	Stagger  float64    `json:"stagger,omitempty" bson:"stagger,omitempty"`
}

// FieldAnimation is the {initial, animate, transition} triple for one text
// role.
type FieldAnimation struct {
	Initial    MotionState  `json:"initial" bson:"initial"`
	Animate    MotionState  `json:"animate" bson:"animate"`
	Transition MotionTiming `json:"transition" bson:"transition"`
}

// ContentAnimation is the per-template enter animation for the three text
// roles of a section.
type ContentAnimation struct {
	Title   FieldAnimation `json:"title" bson:"title"`
	Content FieldAnimation `json:"content" bson:"content"`
	Items   FieldAnimation `json:"items" bson:"items"`
}

// contentAnimations maps each template to its motion personality. The
// mapping is deliberate, not interchangeable: contrast_split reveals text
// through clip-path insets to echo its split visual identity, priority_ladder
// slides everything upward to suggest climbing, flyover_map descends from
// above, and so on.
var contentAnimations = map[Template]ContentAnimation{
	TemplateZoomReveal: {
		Title: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Scale: 0.8, Filter: "blur(8px)"},
			Animate:    MotionState{Opacity: 1, Scale: 1, Filter: "blur(0px)"},
			Transition: MotionTiming{Duration: 0.7, Delay: 0.35, Ease: [4]float64{0.16, 1, 0.3, 1}},
		},
		Content: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Y: 24, Scale: 1},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.6, Delay: 0.5, Ease: [4]float64{0.16, 1, 0.3, 1}},
		},
		Items: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Y: 16, Scale: 0.95},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.5, Delay: 0.6, Ease: [4]float64{0.16, 1, 0.3, 1}, Stagger: 0.08},
		},
	},
	TemplateLinearStoryboard: {
		Title: FieldAnimation{
			Initial:    MotionState{Opacity: 0, X: -60, Scale: 1},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.5, Delay: 0.25, Ease: [4]float64{0.4, 0, 0.2, 1}},
		},
		Content: FieldAnimation{
			Initial:    MotionState{Opacity: 0, X: 80, Scale: 1},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.5, Delay: 0.35, Ease: [4]float64{0.4, 0, 0.2, 1}},
		},
		Items: FieldAnimation{
			Initial:    MotionState{Opacity: 0, X: 40, Scale: 1},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.4, Delay: 0.45, Ease: [4]float64{0.4, 0, 0.2, 1}, Stagger: 0.06},
		},
	},
	TemplateFlyoverMap: {
		Title: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Y: -40, Scale: 1.15},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.8, Delay: 0.45, Ease: [4]float64{0.33, 1, 0.68, 1}},
		},
		Content: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Y: -20, Scale: 1.05},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.7, Delay: 0.6, Ease: [4]float64{0.33, 1, 0.68, 1}},
		},
		Items: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Y: -12, Scale: 1},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.5, Delay: 0.7, Ease: [4]float64{0.33, 1, 0.68, 1}, Stagger: 0.1},
		},
	},
	TemplateContrastSplit: {
		Title: FieldAnimation{
			Initial:    MotionState{Opacity: 1, Scale: 1, ClipPath: "inset(0 100% 0 0)"},
			Animate:    MotionState{Opacity: 1, Scale: 1, ClipPath: "inset(0 0% 0 0)"},
			Transition: MotionTiming{Duration: 0.6, Delay: 0.2, Ease: [4]float64{0.87, 0, 0.13, 1}},
		},
		Content: FieldAnimation{
			Initial:    MotionState{Opacity: 1, Scale: 1, ClipPath: "inset(0 0 100% 0)"},
			Animate:    MotionState{Opacity: 1, Scale: 1, ClipPath: "inset(0 0 0% 0)"},
			Transition: MotionTiming{Duration: 0.6, Delay: 0.35, Ease: [4]float64{0.87, 0, 0.13, 1}},
		},
		Items: FieldAnimation{
			Initial:    MotionState{Opacity: 0, X: -24, Scale: 1},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.4, Delay: 0.5, Ease: [4]float64{0.87, 0, 0.13, 1}, Stagger: 0.05},
		},
	},
	TemplatePriorityLadder: {
		Title: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Y: 40, Scale: 1},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.6, Delay: 0.3, Ease: [4]float64{0.22, 1, 0.36, 1}},
		},
		Content: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Y: 32, Scale: 1},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.6, Delay: 0.4, Ease: [4]float64{0.22, 1, 0.36, 1}},
		},
		Items: FieldAnimation{
			Initial:    MotionState{Opacity: 0, Y: 24, Scale: 0.98},
			Animate:    MotionState{Opacity: 1, Scale: 1},
			Transition: MotionTiming{Duration: 0.5, Delay: 0.5, Ease: [4]float64{0.22, 1, 0.36, 1}, Stagger: 0.07},
		},
	},
}

// ContentAnimationFor returns the enter animations for a template's title,
// body content, and list items. Same fallback rule as [ConfigFor].
func ContentAnimationFor(name string) ContentAnimation {
	return contentAnimations[Normalize(name)]
}

package motion

// TransitionType names a category of motion used when moving focus from one
// section to the next.
type TransitionType string

// The closed set of transition types.
const (
	TransitionZoomIn      TransitionType = "zoom_in"
	TransitionZoomOut     TransitionType = "zoom_out"
	TransitionPan         TransitionType = "pan"
	TransitionSlideLeft   TransitionType = "slide_left"
	TransitionFade        TransitionType = "fade"
	TransitionCardExpand  TransitionType = "card_expand"
	TransitionPanToNode   TransitionType = "pan_to_node"
	TransitionOrbit       TransitionType = "orbit"
	TransitionTilt        TransitionType = "tilt"
	TransitionSplitReveal TransitionType = "split_reveal"
	TransitionSideFlip    TransitionType = "side_flip"
	TransitionStepUp      TransitionType = "step_up"
	TransitionHighlight   TransitionType = "highlight"
)

// transitionSignatures holds each template's fixed motion signature. The
// per-section transition is signature[i % len(signature)], so long
// narratives repeat the pattern periodically rather than degenerating into
// unbounded variety.
var transitionSignatures = map[Template][]TransitionType{
	TemplateZoomReveal: {
		TransitionZoomIn, TransitionZoomOut, TransitionPan,
		TransitionZoomIn, TransitionOrbit, TransitionZoomOut,
		TransitionPanToNode,
	},
	TemplateLinearStoryboard: {
		TransitionSlideLeft, TransitionSlideLeft, TransitionFade,
		TransitionSlideLeft, TransitionCardExpand,
	},
	TemplateFlyoverMap: {
		TransitionPanToNode, TransitionTilt, TransitionOrbit,
		TransitionPan, TransitionZoomIn, TransitionOrbit,
	},
	TemplateContrastSplit: {
		TransitionSplitReveal, TransitionSideFlip, TransitionFade,
		TransitionSplitReveal, TransitionSlideLeft, TransitionSideFlip,
	},
	TemplatePriorityLadder: {
		TransitionStepUp, TransitionHighlight, TransitionStepUp,
		TransitionCardExpand, TransitionStepUp,
	},
}

// Signature returns the template's base transition list. The returned slice
// is shared; callers must not modify it.
func Signature(name string) []TransitionType {
	return transitionSignatures[Normalize(name)]
}

// TransitionSequence returns one transition tag per section, cycling the
// template's signature until sectionCount entries exist. Unknown template
// names use the default template's signature. sectionCount <= 0 yields an
// empty slice.
func TransitionSequence(name string, sectionCount int) []TransitionType {
	if sectionCount <= 0 {
		return []TransitionType{}
	}

	signature := transitionSignatures[Normalize(name)]
	sequence := make([]TransitionType, sectionCount)
	for i := range sectionCount {
		sequence[i] = signature[i%len(signature)]
	}
	return sequence
}

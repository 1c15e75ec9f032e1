package motion

// =============================================================================
// Template Names
// =============================================================================

// Template identifies a visual/motion personality.
type Template string

// Known templates.
const (
	TemplateZoomReveal       Template = "zoom_reveal"
	TemplateLinearStoryboard Template = "linear_storyboard"
	TemplateFlyoverMap       Template = "flyover_map"
	TemplateContrastSplit    Template = "contrast_split"
	TemplatePriorityLadder   Template = "priority_ladder"
)

// DefaultTemplate is the fallback for unknown or empty template names.
const DefaultTemplate = TemplateLinearStoryboard

// Templates returns all known template names in presentation order.
func Templates() []Template {
	return []Template{
		TemplateZoomReveal,
		TemplateLinearStoryboard,
		TemplateFlyoverMap,
		TemplateContrastSplit,
		TemplatePriorityLadder,
	}
}

// Normalize maps an arbitrary string to a known template name.
// Empty or unrecognized input resolves to [DefaultTemplate]. This is the
// single fallback point shared by every lookup in this package.
func Normalize(name string) Template {
	switch Template(name) {
	case TemplateZoomReveal, TemplateLinearStoryboard, TemplateFlyoverMap,
		TemplateContrastSplit, TemplatePriorityLadder:
		return Template(name)
	default:
		return DefaultTemplate
	}
}

// =============================================================================
// Layout Types
// =============================================================================

// LayoutType selects the geometric arrangement algorithm for section nodes.
type LayoutType string

// Layout algorithms.
const (
	LayoutSpiral     LayoutType = "spiral"
	LayoutHorizontal LayoutType = "horizontal"
	LayoutVertical   LayoutType = "vertical"
	LayoutGrid       LayoutType = "grid"
	LayoutRadial     LayoutType = "radial"
)

// =============================================================================
// Config - Per-Template Animation Parameters
// =============================================================================

// Spring holds physical spring parameters consumed by the animation runtime.
// The engine passes these through unchanged; interpreting them is a
// rendering-layer concern.
type Spring struct {
	Stiffness float64 `json:"stiffness" bson:"stiffness"`
	Damping   float64 `json:"damping" bson:"damping"`
	Mass      float64 `json:"mass" bson:"mass"`
}

// StatePair is a value that differs between the focused and unfocused state
// of a section card.
type StatePair struct {
	Active   float64 `json:"active" bson:"active"`
	Inactive float64 `json:"inactive" bson:"inactive"`
}

// CardStyle describes the visual parameters of a section card.
type CardStyle struct {
	Width   StatePair `json:"width" bson:"width"`
	Blur    StatePair `json:"blur" bson:"blur"`
	Opacity StatePair `json:"opacity" bson:"opacity"`
	Radius  StatePair `json:"radius" bson:"radius"`
}

// TimingPair is a transition duration split into a fixed base and a
// per-step increment. The duration of a jump spanning n sections is
// Base + n*PerStep seconds.
type TimingPair struct {
	Base    float64 `json:"base" bson:"base"`
	PerStep float64 `json:"per_step" bson:"per_step"`
}

// Features is the sparse per-template feature flag set. Each flag enables a
// rendering layer that only some templates use.
type Features struct {
	ParallaxLayers    bool `json:"parallax_layers,omitempty" bson:"parallax_layers,omitempty"`
	KenBurns          bool `json:"ken_burns,omitempty" bson:"ken_burns,omitempty"`
	SplitReveal       bool `json:"split_reveal,omitempty" bson:"split_reveal,omitempty"`
	ElevatorMotion    bool `json:"elevator_motion,omitempty" bson:"elevator_motion,omitempty"`
	AerialPerspective bool `json:"aerial_perspective,omitempty" bson:"aerial_perspective,omitempty"`
	ComicPanels       bool `json:"comic_panels,omitempty" bson:"comic_panels,omitempty"`
	DiagonalWipes     bool `json:"diagonal_wipes,omitempty" bson:"diagonal_wipes,omitempty"`
}

// Config is the complete animation configuration for one template.
// Configs are read-only singletons looked up by name via [ConfigFor];
// callers must not mutate them.
type Config struct {
	Name Template `json:"name" bson:"name"`

	// Camera and zoom spring parameters.
	Camera     Spring  `json:"camera" bson:"camera"`
	Zoom       Spring  `json:"zoom" bson:"zoom"`
	MaxZoomOut float64 `json:"max_zoom_out" bson:"max_zoom_out"`

	// Layout.
	Layout      LayoutType `json:"layout" bson:"layout"`
	NodeSpacing float64    `json:"node_spacing" bson:"node_spacing"`
	NodeScale   StatePair  `json:"node_scale" bson:"node_scale"`
	UseRotation bool       `json:"use_rotation" bson:"use_rotation"`
	Use3D       bool       `json:"use_3d" bson:"use_3d"`

	// Card visuals.
	Card CardStyle `json:"card" bson:"card"`

	// Atmosphere layers.
	ParticleCount   int     `json:"particle_count" bson:"particle_count"`
	ParticleOpacity float64 `json:"particle_opacity" bson:"particle_opacity"`
	NebulaCount     int     `json:"nebula_count" bson:"nebula_count"`
	NebulaOpacity   float64 `json:"nebula_opacity" bson:"nebula_opacity"`

	// Timing.
	Transition   TimingPair `json:"transition" bson:"transition"`
	Ease         [4]float64 `json:"ease" bson:"ease"`
	StaggerDelay float64    `json:"stagger_delay" bson:"stagger_delay"`
	ContentDelay float64    `json:"content_delay" bson:"content_delay"`

	Features Features `json:"features" bson:"features"`
}

// TransitionDuration returns the duration in seconds of a transition that
// spans steps sections.
func (c Config) TransitionDuration(steps int) float64 {
	if steps < 0 {
		steps = -steps
	}
	return c.Transition.Base + float64(steps)*c.Transition.PerStep
}

// configs holds exactly one Config per template. Never mutated after init.
var configs = map[Template]Config{
	TemplateZoomReveal: {
		Name:            TemplateZoomReveal,
		Camera:          Spring{Stiffness: 120, Damping: 20, Mass: 1},
		Zoom:            Spring{Stiffness: 100, Damping: 26, Mass: 1.2},
		MaxZoomOut:      0.3,
		Layout:          LayoutSpiral,
		NodeSpacing:     180,
		NodeScale:       StatePair{Active: 1, Inactive: 0.75},
		UseRotation:     true,
		Use3D:           true,
		Card:            CardStyle{Width: StatePair{320, 240}, Blur: StatePair{0, 6}, Opacity: StatePair{1, 0.55}, Radius: StatePair{24, 16}},
		ParticleCount:   60,
		ParticleOpacity: 0.35,
		NebulaCount:     3,
		NebulaOpacity:   0.25,
		Transition:      TimingPair{Base: 1.2, PerStep: 0.15},
		Ease:            [4]float64{0.16, 1, 0.3, 1},
		StaggerDelay:    0.08,
		ContentDelay:    0.35,
		Features:        Features{ParallaxLayers: true, KenBurns: true},
	},
	TemplateLinearStoryboard: {
		Name:            TemplateLinearStoryboard,
		Camera:          Spring{Stiffness: 170, Damping: 26, Mass: 1},
		Zoom:            Spring{Stiffness: 140, Damping: 30, Mass: 1},
		MaxZoomOut:      0.2,
		Layout:          LayoutHorizontal,
		NodeSpacing:     260,
		NodeScale:       StatePair{Active: 1, Inactive: 0.82},
		Card:            CardStyle{Width: StatePair{360, 300}, Blur: StatePair{0, 3}, Opacity: StatePair{1, 0.6}, Radius: StatePair{16, 12}},
		ParticleCount:   20,
		ParticleOpacity: 0.2,
		NebulaCount:     1,
		NebulaOpacity:   0.15,
		Transition:      TimingPair{Base: 0.8, PerStep: 0.1},
		Ease:            [4]float64{0.4, 0, 0.2, 1},
		StaggerDelay:    0.06,
		ContentDelay:    0.25,
		Features:        Features{ComicPanels: true},
	},
	TemplateFlyoverMap: {
		Name:            TemplateFlyoverMap,
		Camera:          Spring{Stiffness: 90, Damping: 18, Mass: 1.4},
		Zoom:            Spring{Stiffness: 80, Damping: 22, Mass: 1.4},
		MaxZoomOut:      0.45,
		Layout:          LayoutRadial,
		NodeSpacing:     220,
		NodeScale:       StatePair{Active: 1, Inactive: 0.7},
		UseRotation:     true,
		Use3D:           true,
		Card:            CardStyle{Width: StatePair{300, 220}, Blur: StatePair{0, 8}, Opacity: StatePair{1, 0.45}, Radius: StatePair{20, 14}},
		ParticleCount:   40,
		ParticleOpacity: 0.3,
		NebulaCount:     4,
		NebulaOpacity:   0.3,
		Transition:      TimingPair{Base: 1.5, PerStep: 0.2},
		Ease:            [4]float64{0.33, 1, 0.68, 1},
		StaggerDelay:    0.1,
		ContentDelay:    0.45,
		Features:        Features{AerialPerspective: true, ParallaxLayers: true},
	},
	TemplateContrastSplit: {
		Name:            TemplateContrastSplit,
		Camera:          Spring{Stiffness: 200, Damping: 28, Mass: 0.9},
		Zoom:            Spring{Stiffness: 160, Damping: 30, Mass: 1},
		MaxZoomOut:      0.25,
		Layout:          LayoutGrid,
		NodeSpacing:     240,
		NodeScale:       StatePair{Active: 1, Inactive: 0.85},
		Use3D:           true,
		Card:            CardStyle{Width: StatePair{340, 280}, Blur: StatePair{0, 4}, Opacity: StatePair{1, 0.65}, Radius: StatePair{8, 8}},
		ParticleCount:   0,
		NebulaCount:     0,
		Transition:      TimingPair{Base: 0.9, PerStep: 0.12},
		Ease:            [4]float64{0.87, 0, 0.13, 1},
		StaggerDelay:    0.05,
		ContentDelay:    0.2,
		Features:        Features{SplitReveal: true, DiagonalWipes: true},
	},
	TemplatePriorityLadder: {
		Name:            TemplatePriorityLadder,
		Camera:          Spring{Stiffness: 150, Damping: 24, Mass: 1},
		Zoom:            Spring{Stiffness: 130, Damping: 28, Mass: 1},
		MaxZoomOut:      0.18,
		Layout:          LayoutVertical,
		NodeSpacing:     200,
		NodeScale:       StatePair{Active: 1, Inactive: 0.78},
		Use3D:           true,
		Card:            CardStyle{Width: StatePair{380, 320}, Blur: StatePair{0, 5}, Opacity: StatePair{1, 0.5}, Radius: StatePair{12, 10}},
		ParticleCount:   30,
		ParticleOpacity: 0.25,
		NebulaCount:     2,
		NebulaOpacity:   0.2,
		Transition:      TimingPair{Base: 1.0, PerStep: 0.12},
		Ease:            [4]float64{0.22, 1, 0.36, 1},
		StaggerDelay:    0.07,
		ContentDelay:    0.3,
		Features:        Features{ElevatorMotion: true},
	},
}

// ConfigFor returns the animation configuration for a template name.
// Unknown or empty names resolve to the [DefaultTemplate] configuration,
// so the lookup never fails.
func ConfigFor(name string) Config {
	return configs[Normalize(name)]
}

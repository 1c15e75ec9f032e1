package motion

// Overrides is the reduced-motion variant of a template config for
// constrained devices. It is a partial config: callers merge it over the
// base with [Overrides.Apply] when a full config is required.
type Overrides struct {
	Camera        Spring     `json:"camera" bson:"camera"`
	Zoom          Spring     `json:"zoom" bson:"zoom"`
	MaxZoomOut    float64    `json:"max_zoom_out" bson:"max_zoom_out"`
	UseRotation   bool       `json:"use_rotation" bson:"use_rotation"`
	Use3D         bool       `json:"use_3d" bson:"use_3d"`
	ParticleCount int        `json:"particle_count" bson:"particle_count"`
	NebulaCount   int        `json:"nebula_count" bson:"nebula_count"`
	Transition    TimingPair `json:"transition" bson:"transition"`
}

// Fixed mobile spring constants. These are deliberately NOT scaled from the
// base template: every template gets the same stiff, low-bounce feel on
// mobile instead of a proportionally dampened version of its own
// personality.
var mobileSpring = Spring{Stiffness: 300, Damping: 30, Mass: 1}

// MobileOverrides derives the reduced-motion variant of a template config:
// stiff normalized springs, rotation and 3D layers disabled, zoom-out
// clamped, particle layers halved with hard caps, and faster transitions.
// The base config is never mutated. Same fallback rule as [ConfigFor].
func MobileOverrides(name string) Overrides {
	base := ConfigFor(name)

	return Overrides{
		Camera:        mobileSpring,
		Zoom:          mobileSpring,
		MaxZoomOut:    min(0.15, base.MaxZoomOut),
		UseRotation:   false,
		Use3D:         false,
		ParticleCount: min(20, base.ParticleCount/2),
		NebulaCount:   min(2, base.NebulaCount/2),
		Transition: TimingPair{
			Base:    base.Transition.Base * 0.6,
			PerStep: base.Transition.PerStep * 0.5,
		},
	}
}

// Apply merges the overrides over a base config and returns the result.
func (o Overrides) Apply(base Config) Config {
	base.Camera = o.Camera
	base.Zoom = o.Zoom
	base.MaxZoomOut = o.MaxZoomOut
	base.UseRotation = o.UseRotation
	base.Use3D = o.Use3D
	base.ParticleCount = o.ParticleCount
	base.NebulaCount = o.NebulaCount
	base.Transition = o.Transition
	return base
}

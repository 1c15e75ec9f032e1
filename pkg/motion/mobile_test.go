package motion

import "testing"

func TestMobileOverridesBounds(t *testing.T) {
	for _, tmpl := range Templates() {
		o := MobileOverrides(string(tmpl))

		if o.MaxZoomOut > 0.15 {
			t.Errorf("%s: mobile MaxZoomOut = %f, want <= 0.15", tmpl, o.MaxZoomOut)
		}
		if o.UseRotation {
			t.Errorf("%s: mobile must disable rotation", tmpl)
		}
		if o.Use3D {
			t.Errorf("%s: mobile must disable 3D", tmpl)
		}
		if o.ParticleCount > 20 {
			t.Errorf("%s: mobile ParticleCount = %d, want <= 20", tmpl, o.ParticleCount)
		}
		if o.NebulaCount > 2 {
			t.Errorf("%s: mobile NebulaCount = %d, want <= 2", tmpl, o.NebulaCount)
		}
	}
}

func TestMobileOverridesNormalizedSprings(t *testing.T) {
	// Mobile springs are fixed constants, identical across templates.
	first := MobileOverrides("zoom_reveal")
	for _, tmpl := range Templates() {
		o := MobileOverrides(string(tmpl))
		if o.Camera != first.Camera || o.Zoom != first.Zoom {
			t.Errorf("%s: mobile springs should be identical across templates", tmpl)
		}
	}
	if first.Camera != (Spring{Stiffness: 300, Damping: 30, Mass: 1}) {
		t.Errorf("mobile spring = %+v", first.Camera)
	}
}

func TestMobileOverridesTimings(t *testing.T) {
	base := ConfigFor("flyover_map")
	o := MobileOverrides("flyover_map")

	if o.Transition.Base != base.Transition.Base*0.6 {
		t.Errorf("mobile base duration = %f, want %f", o.Transition.Base, base.Transition.Base*0.6)
	}
	if o.Transition.PerStep != base.Transition.PerStep*0.5 {
		t.Errorf("mobile per-step duration = %f, want %f", o.Transition.PerStep, base.Transition.PerStep*0.5)
	}
}

func TestMobileOverridesDoNotMutateBase(t *testing.T) {
	before := ConfigFor("zoom_reveal")
	_ = MobileOverrides("zoom_reveal")
	after := ConfigFor("zoom_reveal")
	if before != after {
		t.Error("MobileOverrides mutated the base config")
	}
}

func TestOverridesApply(t *testing.T) {
	base := ConfigFor("zoom_reveal")
	merged := MobileOverrides("zoom_reveal").Apply(base)

	if merged.Use3D || merged.UseRotation {
		t.Error("merged config should have 3D and rotation disabled")
	}
	// Untouched fields carry over from the base.
	if merged.Layout != base.Layout || merged.NodeSpacing != base.NodeSpacing {
		t.Error("Apply must preserve layout fields")
	}
	if merged.Card != base.Card || merged.Ease != base.Ease {
		t.Error("Apply must preserve card styling and ease curve")
	}
}

func TestMobileOverridesFallback(t *testing.T) {
	def := MobileOverrides("linear_storyboard")
	if got := MobileOverrides("not-a-real-template"); got != def {
		t.Error("unknown template should fall back to default overrides")
	}
}

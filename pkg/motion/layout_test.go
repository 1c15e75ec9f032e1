package motion

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

func TestNodePositionsCardinality(t *testing.T) {
	for _, tmpl := range Templates() {
		cfg := ConfigFor(string(tmpl))
		for _, count := range []int{0, 1, 2, 5, 13, 50} {
			got := NodePositions(count, cfg, 1000)
			if len(got) != count {
				t.Errorf("%s: NodePositions(%d) returned %d positions", tmpl, count, len(got))
			}
		}
	}
}

func TestNodePositionsZeroCount(t *testing.T) {
	for _, tmpl := range Templates() {
		got := NodePositions(0, ConfigFor(string(tmpl)), 1000)
		if len(got) != 0 {
			t.Errorf("%s: zero count should produce empty slice, got %d", tmpl, len(got))
		}
	}
}

func TestNodePositionsNegativeCount(t *testing.T) {
	got := NodePositions(-3, ConfigFor("linear_storyboard"), 1000)
	if len(got) != 0 {
		t.Errorf("negative count should produce empty slice, got %d", len(got))
	}
}

func TestNodePositionsDeterminism(t *testing.T) {
	for _, tmpl := range Templates() {
		cfg := ConfigFor(string(tmpl))
		a := NodePositions(12, cfg, 1000)
		b := NodePositions(12, cfg, 1000)
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s: position %d differs across calls: %+v vs %+v", tmpl, i, a[i], b[i])
			}
		}
	}
}

func TestHorizontalLayout(t *testing.T) {
	// linear_storyboard is the horizontal template.
	cfg := ConfigFor("linear_storyboard")
	if cfg.Layout != LayoutHorizontal {
		t.Fatalf("linear_storyboard layout = %s, want horizontal", cfg.Layout)
	}

	got := NodePositions(5, cfg, 1000)
	if len(got) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(got))
	}

	for i, p := range got {
		if !almostEqual(p.Y, 500) {
			t.Errorf("position %d: y = %f, want 500", i, p.Y)
		}
		want := 500 + (float64(i)-2)*cfg.NodeSpacing
		if !almostEqual(p.X, want) {
			t.Errorf("position %d: x = %f, want %f", i, p.X, want)
		}
		if i > 0 && got[i].X <= got[i-1].X {
			t.Errorf("x values should ascend with index: x[%d]=%f, x[%d]=%f", i-1, got[i-1].X, i, got[i].X)
		}
	}

	// The row straddles the midline: mean x equals the center.
	var sum float64
	for _, p := range got {
		sum += p.X
	}
	if !almostEqual(sum/5, 500) {
		t.Errorf("row not centered: mean x = %f", sum/5)
	}
}

func TestVerticalLayout(t *testing.T) {
	cfg := ConfigFor("priority_ladder")
	if cfg.Layout != LayoutVertical {
		t.Fatalf("priority_ladder layout = %s, want vertical", cfg.Layout)
	}

	got := NodePositions(4, cfg, 800)
	for i, p := range got {
		if !almostEqual(p.X, 400) {
			t.Errorf("position %d: x = %f, want 400", i, p.X)
		}
		wantZ := math.Sin(float64(i)*0.8) * 50
		if !almostEqual(p.Z, wantZ) {
			t.Errorf("position %d: z = %f, want %f", i, p.Z, wantZ)
		}
	}
}

func TestSpiralLayout(t *testing.T) {
	cfg := ConfigFor("zoom_reveal")
	if cfg.Layout != LayoutSpiral {
		t.Fatalf("zoom_reveal layout = %s, want spiral", cfg.Layout)
	}

	got := NodePositions(9, cfg, 1000)

	// Radius grows linearly per step.
	for i, p := range got {
		radius := math.Hypot(p.X-500, p.Y-500)
		want := cfg.NodeSpacing + float64(i)*cfg.NodeSpacing*0.5
		if math.Abs(radius-want) > 1e-6 {
			t.Errorf("position %d: radius = %f, want %f", i, radius, want)
		}
	}

	// Rotation wobble and cycling depth.
	if !almostEqual(got[1].Rotation, math.Sin(0.5)*5) {
		t.Errorf("position 1: rotation = %f", got[1].Rotation)
	}
	wantZ := []float64{-100, 0, 100, -100, 0, 100, -100, 0, 100}
	for i, p := range got {
		if p.Z != wantZ[i] {
			t.Errorf("position %d: z = %f, want %f", i, p.Z, wantZ[i])
		}
	}
}

func TestGridLayoutSymmetry(t *testing.T) {
	cfg := ConfigFor("contrast_split")
	if cfg.Layout != LayoutGrid {
		t.Fatalf("contrast_split layout = %s, want grid", cfg.Layout)
	}

	// Perfect square: positions must be symmetric about the canvas center.
	got := NodePositions(9, cfg, 1000)
	for _, p := range got {
		mirrored := false
		for _, q := range got {
			if almostEqual(q.X, 1000-p.X) && almostEqual(q.Y, 1000-p.Y) {
				mirrored = true
				break
			}
		}
		if !mirrored {
			t.Errorf("no mirror for position (%f, %f)", p.X, p.Y)
		}
	}

	// Checkerboard depth.
	if got[0].Z != 0 || got[1].Z != 80 || got[4].Z != 0 {
		t.Errorf("checkerboard depth broken: z = %f, %f, %f", got[0].Z, got[1].Z, got[4].Z)
	}
}

func TestRadialCenterInvariant(t *testing.T) {
	cfg := ConfigFor("flyover_map")
	if cfg.Layout != LayoutRadial {
		t.Fatalf("flyover_map layout = %s, want radial", cfg.Layout)
	}

	for _, count := range []int{1, 2, 7, 8, 20} {
		got := NodePositions(count, cfg, 1200)
		hub := got[0]
		if !almostEqual(hub.X, 600) || !almostEqual(hub.Y, 600) {
			t.Errorf("count %d: hub at (%f, %f), want canvas center", count, hub.X, hub.Y)
		}
		if !almostEqual(hub.Scale, 1.1) {
			t.Errorf("count %d: hub scale = %f, want 1.1", count, hub.Scale)
		}
	}
}

// TestRadialRingBoundary pins the ring-filling boundary condition:
// count = 7 is exactly one hub plus a full first ring of 6, and count = 8
// starts the second ring with a single node. No position may be skipped or
// duplicated at the boundary.
func TestRadialRingBoundary(t *testing.T) {
	cfg := ConfigFor("flyover_map")

	seven := NodePositions(7, cfg, 1000)
	for i := 1; i < 7; i++ {
		radius := math.Hypot(seven[i].X-500, seven[i].Y-500)
		if math.Abs(radius-cfg.NodeSpacing) > 1e-6 {
			t.Errorf("count 7, node %d: radius = %f, want %f (first ring)", i, radius, cfg.NodeSpacing)
		}
	}

	// First ring nodes are evenly spaced: angular gap of 60 degrees.
	for i := 1; i < 7; i++ {
		angle := math.Atan2(seven[i].Y-500, seven[i].X-500)
		want := 2 * math.Pi * float64(i-1) / 6
		// Normalize both to [0, 2pi).
		if angle < 0 {
			angle += 2 * math.Pi
		}
		if want >= 2*math.Pi {
			want -= 2 * math.Pi
		}
		if math.Abs(angle-want) > 1e-6 && math.Abs(angle-want-2*math.Pi) > 1e-6 {
			t.Errorf("count 7, node %d: angle = %f, want %f", i, angle, want)
		}
	}

	eight := NodePositions(8, cfg, 1000)
	radius := math.Hypot(eight[7].X-500, eight[7].Y-500)
	if math.Abs(radius-2*cfg.NodeSpacing) > 1e-6 {
		t.Errorf("count 8, node 7: radius = %f, want %f (second ring)", radius, 2*cfg.NodeSpacing)
	}

	// Depth grows by 60 per ring.
	if eight[1].Z != 60 || eight[7].Z != 120 {
		t.Errorf("ring depth: z[1] = %f, z[7] = %f, want 60 and 120", eight[1].Z, eight[7].Z)
	}
}

func TestUnknownLayoutPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown layout type should panic")
		}
	}()
	cfg := ConfigFor("linear_storyboard")
	cfg.Layout = "helix"
	NodePositions(3, cfg, 1000)
}

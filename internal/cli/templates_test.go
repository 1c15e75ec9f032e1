package cli

import (
	"strings"
	"testing"

	"github.com/conclusiv/conclusiv/pkg/motion"
)

func TestRenderTemplateTable(t *testing.T) {
	out := renderTemplateTable()

	for _, name := range motion.Templates() {
		if !strings.Contains(out, string(name)) {
			t.Errorf("table should list %s", name)
		}
	}
	if !strings.Contains(out, "* "+string(motion.DefaultTemplate)) {
		t.Error("default template should be marked")
	}
}

func TestFeatureSummary(t *testing.T) {
	if got := featureSummary(motion.Features{}); got != "—" {
		t.Errorf("empty features = %q", got)
	}
	got := featureSummary(motion.Features{ParallaxLayers: true, KenBurns: true})
	if !strings.Contains(got, "parallax") || !strings.Contains(got, "ken-burns") {
		t.Errorf("featureSummary = %q", got)
	}
}

func TestMotionSignatureTruncates(t *testing.T) {
	for _, name := range motion.Templates() {
		sig := motionSignature(string(name))
		if len(sig) > 4 {
			t.Errorf("%s: signature display too long: %v", name, sig)
		}
	}
}

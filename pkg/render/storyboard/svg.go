package storyboard

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/conclusiv/conclusiv/pkg/motion"
	"github.com/conclusiv/conclusiv/pkg/plan"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme    Theme
	animate  bool
	labels   bool
	icons    map[string]string
	maxItems int
}

// WithTheme sets the color theme.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithAnimations embeds the plan's enter animations as CSS keyframes so the
// SVG plays when opened in a browser.
func WithAnimations() SVGOption { return func(r *svgRenderer) { r.animate = true } }

// WithTransitionLabels draws the transition name on each step connector.
func WithTransitionLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithIcons supplies resolved icon glyphs (inner SVG markup keyed by icon name).
func WithIcons(icons map[string]string) SVGOption {
	return func(r *svgRenderer) { r.icons = icons }
}

// RenderSVG renders a plan as a storyboard SVG: every section card placed at
// its computed canvas position, connected in step order.
func RenderSVG(p *plan.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{theme: Dark, maxItems: 4}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		p.Canvas, p.Canvas, p.Canvas, p.Canvas)

	renderBackdrop(&buf, &r, p)
	renderConnectors(&buf, &r, p)
	for i := range p.Steps {
		renderCard(&buf, &r, p, i)
	}
	if r.animate {
		renderAnimationCSS(&buf, p)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBackdrop(buf *bytes.Buffer, r *svgRenderer, p *plan.Plan) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", p.Canvas, p.Canvas, r.theme.Background)

	// Nebula blobs and particles are placed on a golden-angle spiral so the
	// backdrop is deterministic without carrying a seed through the plan.
	center := p.Canvas / 2
	for i := range p.Config.NebulaCount {
		angle := float64(i) * goldenAngle
		radius := p.Canvas * 0.3
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" opacity="%.2f"/>`+"\n",
			center+radius*math.Cos(angle), center+radius*math.Sin(angle),
			p.Canvas*0.22, r.theme.Nebula, p.Config.NebulaOpacity)
	}
	for i := range p.Config.ParticleCount {
		angle := float64(i) * goldenAngle
		radius := p.Canvas * 0.48 * math.Sqrt(float64(i+1)/float64(p.Config.ParticleCount))
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="1.5" fill="%s" opacity="%.2f"/>`+"\n",
			center+radius*math.Cos(angle), center+radius*math.Sin(angle),
			r.theme.Particle, p.Config.ParticleOpacity)
	}
}

const goldenAngle = 137.5 * math.Pi / 180

func renderConnectors(buf *bytes.Buffer, r *svgRenderer, p *plan.Plan) {
	for i := 1; i < len(p.Steps); i++ {
		a, b := p.Steps[i-1].Position, p.Steps[i].Position
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5" stroke-dasharray="6 4" opacity="0.5"/>`+"\n",
			a.X, a.Y, b.X, b.Y, r.theme.Accent)

		if r.labels {
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="middle" font-family="monospace">%s</text>`+"\n",
				(a.X+b.X)/2, (a.Y+b.Y)/2-6, r.theme.Accent, p.Steps[i].Transition)
		}
	}
}

func renderCard(buf *bytes.Buffer, r *svgRenderer, p *plan.Plan, i int) {
	step := p.Steps[i]
	pos := step.Position
	card := p.Config.Card

	w := card.Width.Active
	h := w * 0.62
	radius := card.Radius.Active

	transform := fmt.Sprintf("translate(%.1f %.1f)", pos.X, pos.Y)
	if pos.Scale != 1 {
		transform += fmt.Sprintf(" scale(%.3f)", pos.Scale)
	}
	if pos.Rotation != 0 {
		transform += fmt.Sprintf(" rotate(%.2f)", pos.Rotation)
	}

	fmt.Fprintf(buf, `  <g id="step-%d" class="card" transform="%s" opacity="%.2f">`+"\n",
		i, transform, card.Opacity.Active)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
		-w/2, -h/2, w, h, radius, r.theme.CardFill, r.theme.CardStroke)

	fmt.Fprintf(buf, `    <text class="card-title" x="0" y="%.1f" fill="%s" font-size="18" font-weight="600" text-anchor="middle" font-family="sans-serif">%s</text>`+"\n",
		-h/2+32, r.theme.Title, escape(step.Section.Title))

	if step.Section.Body != "" {
		fmt.Fprintf(buf, `    <text class="card-body" x="0" y="%.1f" fill="%s" font-size="12" text-anchor="middle" font-family="sans-serif">%s</text>`+"\n",
			-h/2+54, r.theme.Body, escape(truncate(step.Section.Body, 48)))
	}

	y := -h/2 + 76.0
	for j, item := range step.Section.Items {
		if j >= r.maxItems {
			break
		}
		fmt.Fprintf(buf, `    <text class="card-item" x="%.1f" y="%.1f" fill="%s" font-size="12" font-family="sans-serif">• %s</text>`+"\n",
			-w/2+20, y, r.theme.Body, escape(truncate(item, 40)))
		y += 18
	}

	if glyph, ok := r.icons[step.Section.Icon]; ok {
		fmt.Fprintf(buf, `    <g transform="translate(%.1f %.1f) scale(0.8)" fill="%s">%s</g>`+"\n",
			w/2-32, -h/2+12, r.theme.Accent, glyph)
	}

	fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="12" fill="%s"/>`+"\n", -w/2+4, -h/2+4, r.theme.Accent)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" fill="%s" font-size="12" font-weight="700" text-anchor="middle" font-family="sans-serif">%d</text>`+"\n",
		-w/2+4, -h/2+8, r.theme.Background, i+1)

	buf.WriteString("  </g>\n")
}

// renderAnimationCSS embeds the enter animations as CSS so the storyboard
// plays in a browser. Each card staggers by the configured delay; title,
// body and items inside a card use the template's content timings.
func renderAnimationCSS(buf *bytes.Buffer, p *plan.Plan) {
	ease := cssBezier(p.Config.Ease)
	c := p.Content

	buf.WriteString("  <style><![CDATA[\n")
	fmt.Fprintf(buf, "    .card { animation: card-in %.2fs %s both; }\n", p.Config.Transition.Base, ease)
	for i := range p.Steps {
		fmt.Fprintf(buf, "    #step-%d { animation-delay: %.2fs; }\n", i, p.Config.ContentDelay+float64(i)*p.Config.StaggerDelay)
	}
	buf.WriteString("    @keyframes card-in { from { opacity: 0; } to { opacity: 1; } }\n")

	writeFieldAnimation(buf, "card-title", c.Title, ease)
	writeFieldAnimation(buf, "card-body", c.Content, ease)
	writeFieldAnimation(buf, "card-item", c.Items, ease)
	buf.WriteString("  ]]></style>\n")
}

func writeFieldAnimation(buf *bytes.Buffer, class string, f motion.FieldAnimation, ease string) {
	fmt.Fprintf(buf, "    .%s { animation: %s-in %.2fs %s both; animation-delay: %.2fs; }\n",
		class, class, f.Transition.Duration, ease, f.Transition.Delay)
	fmt.Fprintf(buf, "    @keyframes %s-in { from { %s } to { %s } }\n",
		class, cssState(f.Initial), cssState(f.Animate))
}

func cssState(s motion.MotionState) string {
	parts := []string{fmt.Sprintf("opacity: %.2f;", s.Opacity)}
	if s.X != 0 || s.Y != 0 || s.Scale != 1 {
		scale := s.Scale
		if scale == 0 {
			scale = 1
		}
		parts = append(parts, fmt.Sprintf("transform: translate(%.1fpx, %.1fpx) scale(%.2f);", s.X, s.Y, scale))
	}
	if s.Filter != "" {
		parts = append(parts, fmt.Sprintf("filter: %s;", s.Filter))
	}
	if s.ClipPath != "" {
		parts = append(parts, fmt.Sprintf("clip-path: %s;", s.ClipPath))
	}
	return strings.Join(parts, " ")
}

func cssBezier(p [4]float64) string {
	return fmt.Sprintf("cubic-bezier(%.2f, %.2f, %.2f, %.2f)", p[0], p[1], p[2], p[3])
}

// truncate shortens s to at most n bytes without splitting a rune, so the
// output stays valid UTF-8 for the XML serializer.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimRight(s[:cut], " ") + "…"
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

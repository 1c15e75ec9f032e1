package storyboard

// Theme holds the color palette for storyboard rendering.
type Theme struct {
	Name       string
	Background string
	Nebula     string
	Particle   string
	CardFill   string
	CardStroke string
	Title      string
	Body       string
	Accent     string
}

// Dark is the default presentation theme.
var Dark = Theme{
	Name:       "dark",
	Background: "#0b0e1a",
	Nebula:     "#2b3a67",
	Particle:   "#8b9dc3",
	CardFill:   "#161b2e",
	CardStroke: "#3d4a6b",
	Title:      "#f0f2f8",
	Body:       "#a8b2cc",
	Accent:     "#6c8cff",
}

// Light is the print-friendly theme.
var Light = Theme{
	Name:       "light",
	Background: "#fafbfd",
	Nebula:     "#dde5f4",
	Particle:   "#b8c4dc",
	CardFill:   "#ffffff",
	CardStroke: "#c9d2e3",
	Title:      "#1a2033",
	Body:       "#4a5670",
	Accent:     "#3a5fcc",
}

// ThemeByName resolves a theme name, defaulting to Dark.
func ThemeByName(name string) Theme {
	if name == Light.Name {
		return Light
	}
	return Dark
}

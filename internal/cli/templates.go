package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/conclusiv/conclusiv/pkg/motion"
)

// templatesCommand creates the templates command listing the available
// motion templates and their key parameters.
func (c *CLI) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available motion templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(renderTemplateTable())
			printNextStep("Try one", "conclusiv build story.txt -t flyover_map")
			return nil
		},
	}
}

// renderTemplateTable builds the lipgloss table shown by "templates".
func renderTemplateTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, name := range motion.Templates() {
		cfg := motion.ConfigFor(string(name))
		marker := "  "
		if name == motion.DefaultTemplate {
			marker = "* "
		}
		rows = append(rows, []string{
			marker + string(name),
			string(cfg.Layout),
			fmt.Sprintf("%.1fs", cfg.Transition.Base),
			strings.Join(motionSignature(string(name)), " → "),
			featureSummary(cfg.Features),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Template", "Layout", "Base", "Transitions", "Features").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleDim
		})

	return t.Render() + "\n" + StyleDim.Render("  * default template")
}

// motionSignature abbreviates a template's transition cycle for display.
func motionSignature(name string) []string {
	sig := motion.Signature(name)
	out := make([]string, 0, 3)
	for i, tr := range sig {
		if i == 3 {
			out = append(out, "…")
			break
		}
		out = append(out, string(tr))
	}
	return out
}

// featureSummary lists the enabled feature flags as a short string.
func featureSummary(f motion.Features) string {
	var parts []string
	if f.ParallaxLayers {
		parts = append(parts, "parallax")
	}
	if f.KenBurns {
		parts = append(parts, "ken-burns")
	}
	if f.SplitReveal {
		parts = append(parts, "split")
	}
	if f.ElevatorMotion {
		parts = append(parts, "elevator")
	}
	if f.AerialPerspective {
		parts = append(parts, "aerial")
	}
	if f.ComicPanels {
		parts = append(parts, "panels")
	}
	if f.DiagonalWipes {
		parts = append(parts, "wipes")
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, ", ")
}

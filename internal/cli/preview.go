package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/conclusiv/conclusiv/pkg/plan"
)

// previewCommand creates the preview command, an interactive terminal
// walkthrough of the section flow with live transition labels.
func (c *CLI) previewCommand() *cobra.Command {
	var template string
	var mobile bool

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Step through a narrative's section flow in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := loadNarrative(args[0])
			if err != nil {
				return err
			}
			p := plan.Build(n, template, plan.DefaultCanvas, mobile)

			model := newPreviewModel(p)
			prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err = prog.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", "motion template")
	cmd.Flags().BoolVar(&mobile, "mobile", false, "apply mobile motion reduction")

	return cmd
}

// Preview styles.
var (
	previewCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan).
				Padding(1, 3).
				Width(56)

	previewDimCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 2)
)

// previewModel is the bubbletea model stepping through plan steps.
type previewModel struct {
	plan   *plan.Plan
	cursor int
}

func newPreviewModel(p *plan.Plan) previewModel {
	return previewModel{plan: p}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l", "down", "j", " ", "enter":
			if m.cursor < len(m.plan.Steps)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.plan.Steps) - 1
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	if len(m.plan.Steps) == 0 {
		return StyleDim.Render("Nothing to preview.")
	}

	var b strings.Builder
	step := m.plan.Steps[m.cursor]

	b.WriteString(StyleTitle.Render(m.plan.Title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%s]", m.plan.Template)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	// Transition into the current step.
	if m.cursor > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %s %s (%.1fs)", iconArrow, step.Transition, step.Duration)))
		b.WriteString("\n\n")
	}

	// Current section card.
	var card strings.Builder
	card.WriteString(StyleHighlight.Render(step.Section.Title))
	if step.Section.Body != "" {
		card.WriteString("\n\n")
		card.WriteString(StyleValue.Render(step.Section.Body))
	}
	for _, item := range step.Section.Items {
		card.WriteString("\n")
		card.WriteString(StyleValue.Render("  • " + item))
	}
	b.WriteString(previewCardStyle.Render(card.String()))
	b.WriteString("\n\n")

	// Upcoming section, dimmed.
	if m.cursor < len(m.plan.Steps)-1 {
		next := m.plan.Steps[m.cursor+1]
		b.WriteString(previewDimCardStyle.Render(StyleDim.Render("next: " + next.Section.Title)))
		b.WriteString("\n\n")
	}

	b.WriteString(StyleDim.Render(fmt.Sprintf("  step %d/%d · position (%.0f, %.0f)",
		m.cursor+1, len(m.plan.Steps), step.Position.X, step.Position.Y)))

	return b.String()
}

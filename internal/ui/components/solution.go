// Package components renders solutions for the terminal.
package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/solution"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

// Whiteboard draws the board steps, each line in its chalk color.
func Whiteboard(steps []solution.WhiteboardStep) string {
	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = lipgloss.NewStyle().
			Foreground(theme.Chalk(s.Color)).
			Bold(s.Color == solution.ColorGreen).
			Render(s.Text)
	}
	return theme.Whiteboard.Render(strings.Join(lines, "\n"))
}

// Solution renders every section of sol in reading order.
func Solution(sol *solution.Solution) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(sol.Understanding.Rephrased))
	b.WriteString("\n\n")

	var u strings.Builder
	for _, g := range sol.Understanding.Given {
		fmt.Fprintf(&u, "• %s\n", g)
	}
	u.WriteString(theme.Heading.Render("? ") + sol.Understanding.Required)
	b.WriteString(theme.Card.Render(u.String()))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Steps"))
	b.WriteString("\n")
	for i, step := range sol.TextSteps {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, theme.Body.Render(step))
	}
	b.WriteString("\n")

	if len(sol.WhiteboardSteps) > 0 {
		b.WriteString(Whiteboard(sol.WhiteboardSteps))
		b.WriteString("\n\n")
	}

	if sol.DrawingPrompt != "" {
		b.WriteString(theme.Hint.Render("Drawing: " + sol.DrawingPrompt))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Answer.Render(sol.FinalResult.Answer))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(sol.FinalResult.Encouragement))
	b.WriteString("\n")

	return b.String()
}

// Error renders a failure message.
func Error(msg string) string {
	return theme.Failure.Render(msg)
}

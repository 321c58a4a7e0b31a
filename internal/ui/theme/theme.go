package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/solution"
)

// Color palette: a dark chalkboard with three chalk colors.
var (
	Primary     = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary   = lipgloss.Color("#14B8A6") // Teal
	ChalkWhite  = lipgloss.Color("#F8FAFC")
	ChalkYellow = lipgloss.Color("#FACC15")
	ChalkGreen  = lipgloss.Color("#4ADE80")
	Error       = lipgloss.Color("#F43F5E") // Rose
	TextDim     = lipgloss.Color("#94A3B8") // Slate
	Board       = lipgloss.Color("#1F3B2D") // Chalkboard green
	Border      = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(ChalkWhite)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Whiteboard = lipgloss.NewStyle().
			Background(Board).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#8B5A2B")).
			Padding(1, 2)

	Answer = lipgloss.NewStyle().
		Foreground(ChalkGreen).
		Bold(true)
)

// Chalk returns the foreground color for a whiteboard step. Unknown
// colors are drawn in white.
func Chalk(c solution.Color) color.Color {
	switch c {
	case solution.ColorYellow:
		return ChalkYellow
	case solution.ColorGreen:
		return ChalkGreen
	default:
		return ChalkWhite
	}
}

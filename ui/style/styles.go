package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Layout
	App   lipgloss.Style
	Title lipgloss.Style
	Total lipgloss.Style

	// Beam
	Beam  lipgloss.Style
	Stand lipgloss.Style

	// Pans
	LeftPan       lipgloss.Style
	RightPan      lipgloss.Style
	PanHeader     lipgloss.Style
	PaletteNormal lipgloss.Style
	PaletteCursor lipgloss.Style

	// Status indicators
	StateIdle       lipgloss.Style
	StateConverging lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Misc
	Muted lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("36")), // Teal
		Total: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")),

		Beam: lipgloss.NewStyle().
			Foreground(lipgloss.Color("130")), // Saddle brown
		Stand: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		// Same hues as the original palette: light blue left, light coral right
		LeftPan: lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")),
		RightPan: lipgloss.NewStyle().
			Foreground(lipgloss.Color("210")),
		PanHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")). // Goldenrod
			Bold(true),
		PaletteNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		PaletteCursor: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Bold(true),

		StateIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		StateConverging: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")), // Muted yellow

		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Layout
	Title   lipgloss.Style
	Section lipgloss.Style
	Frame   lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Chart cells
	Block lipgloss.Style
	Water lipgloss.Style
	Empty lipgloss.Style
	Axis  lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusUnits lipgloss.Style
	ToggleOn    lipgloss.Style
	ToggleOff   lipgloss.Style

	// Overlay
	OverlayBorder   lipgloss.Style
	OverlaySelected lipgloss.Style
	OverlayNormal   lipgloss.Style
	OverlayMatch    lipgloss.Style

	// Misc
	Muted lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),

		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		// Cells - bars grey, water blue
		Block: lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")),
		Water: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
		Axis: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusUnits: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		ToggleOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		ToggleOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray (subtle)

		// Overlay (preset and history picker)
		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		OverlaySelected: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")),
		OverlayNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		OverlayMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Magenta for matched chars
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

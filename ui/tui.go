package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/rainwater/session"
)

// Run starts the TUI over ctrl and blocks until the user quits.
func Run(ctrl *session.Controller) error {
	program := tea.NewProgram(
		NewModel(ctrl),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

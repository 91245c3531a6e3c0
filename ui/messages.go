package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	bytes int
	err   error
}

// copySVG returns a command that writes svg to the clipboard off the event loop.
func copySVG(write func(string) error, svg string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{bytes: len(svg), err: write(svg)}
	}
}

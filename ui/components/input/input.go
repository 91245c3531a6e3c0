package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/rainwater/ui/style"
)

// Model is the heights text box.
// History navigation and actions belong in the parent Model.
type Model struct {
	textinput textinput.Model
	width     int
}

// New creates a new input model.
func New(styles style.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "comma-separated heights, e.g. 3,0,2,0,4"
	ti.Prompt = "heights> "
	ti.PromptStyle = styles.InputPrompt
	ti.CharLimit = 0 // No limit
	ti.Width = 80
	ti.Focus()

	return Model{
		textinput: ti,
	}
}

// SetWidth updates the input width.
func (m *Model) SetWidth(w int) {
	m.width = w
	m.textinput.Width = max(w-len(m.textinput.Prompt)-1, 1)
}

// Value returns the current input text.
func (m *Model) Value() string {
	return m.textinput.Value()
}

// SetValue sets the input text and moves the cursor to the end.
func (m *Model) SetValue(s string) {
	m.textinput.SetValue(s)
	m.textinput.CursorEnd()
}

// Reset clears the input.
func (m *Model) Reset() {
	m.textinput.SetValue("")
}

// Update handles tea messages for the input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	return m, cmd
}

// View renders the input line.
func (m *Model) View() string {
	return m.textinput.View()
}

// Package ui is the terminal front end: a bubbletea model over a
// session.Controller and a line-oriented console for -simple mode.
package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/rainwater/internal/log"
	"github.com/drake/rainwater/session"
	"github.com/drake/rainwater/ui/components/chart"
	"github.com/drake/rainwater/ui/components/input"
	"github.com/drake/rainwater/ui/components/picker"
	"github.com/drake/rainwater/ui/components/status"
	"github.com/drake/rainwater/ui/style"
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctrl *session.Controller
	snap session.Snapshot

	// Display components
	input  input.Model
	status status.Bar
	chart  chart.Chart
	styles style.Styles

	// Preset and history picker
	picker  *picker.Model[pickItem]
	picking bool

	// History browsing; the entries themselves live in the controller
	historyIndex int    // -1 = draft, 0..n = history position
	historyDraft string // Preserved when browsing history

	copy func(string) error

	width    int
	height   int
	quitting bool
}

// NewModel creates the model and renders the configured initial input.
func NewModel(ctrl *session.Controller) Model {
	styles := style.DefaultStyles()
	m := Model{
		ctrl:   ctrl,
		input:  input.New(styles),
		status: status.New(styles),
		chart:  chart.New(styles),
		styles: styles,
		picker: picker.New[pickItem](picker.Config{
			MaxVisible: 8,
			Header:     "Load: ",
			EmptyText:  "No presets or history",
		}, styles),
		historyIndex: -1,
		copy:         clipboard.WriteAll,
		width:        80,
		height:       24,
	}
	m.updateDimensions()

	initial := ctrl.Options().InitialInput
	m.input.SetValue(initial)
	m.apply(ctrl.Render(initial))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			log.Warnw("clipboard copy failed", "error", msg.err)
			m.status.SetMessage("Copy failed: "+msg.err.Error(), true)
		} else {
			m.status.SetMessage(fmt.Sprintf("Copied SVG (%d bytes)", msg.bytes), false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status.ClearMessage()

	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		if m.picking {
			m.picking = false
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.picking {
		return m.handlePickerKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.resetHistory()
		m.apply(m.ctrl.Render(m.input.Value()))
		return m, nil

	case tea.KeyCtrlR:
		m.resetHistory()
		snap := m.ctrl.Random()
		m.input.SetValue(snap.Text)
		m.apply(snap)
		return m, nil

	case tea.KeyCtrlL:
		m.resetHistory()
		m.input.Reset()
		m.apply(m.ctrl.Clear())
		return m, nil

	case tea.KeyCtrlB:
		m.apply(m.ctrl.ToggleChart(m.input.Value()))
		return m, nil

	case tea.KeyCtrlT:
		m.apply(m.ctrl.ToggleTable(m.input.Value()))
		return m, nil

	case tea.KeyCtrlY:
		return m, copySVG(m.copy, m.ctrl.SVG())

	case tea.KeyCtrlP:
		m.openPicker()
		return m, nil

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil
	}

	_, cmd := m.input.Update(msg)
	return m, cmd
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.picker.SelectUp()

	case tea.KeyDown:
		m.picker.SelectDown()

	case tea.KeyEnter, tea.KeyTab:
		if item, ok := m.picker.Selected(); ok {
			m.input.SetValue(item.text)
			m.apply(m.ctrl.Render(item.text))
		}
		m.picking = false

	case tea.KeyCtrlP:
		// Toggle off
		m.picking = false

	case tea.KeyRunes:
		m.picker.Type(string(msg.Runes))

	case tea.KeySpace:
		m.picker.Type(" ")

	case tea.KeyBackspace:
		m.picker.Backspace()
	}
	return m, nil
}

// openPicker loads presets followed by history, most recent first.
func (m *Model) openPicker() {
	var items []pickItem
	for _, p := range m.ctrl.Presets() {
		items = append(items, pickItem{name: p.Name, text: p.Text})
	}
	history := m.ctrl.History()
	for i := len(history) - 1; i >= 0; i-- {
		items = append(items, pickItem{text: history[i]})
	}
	m.picker.SetItems(items)
	m.picking = true
}

// apply makes snap the displayed state.
func (m *Model) apply(snap session.Snapshot) {
	m.snap = snap
	m.status.SetSummary(snap.Summary)
	m.status.SetToggles(snap.ShowChart, snap.ShowTable)
	m.status.SetText(snap.Status)
}

func (m *Model) updateDimensions() {
	m.input.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.picker.SetWidth(min(m.width-4, 72))
}

func (m *Model) resetHistory() {
	m.historyIndex = -1
	m.historyDraft = ""
}

func (m *Model) historyUp() {
	history := m.ctrl.History()
	if len(history) == 0 {
		return
	}

	if m.historyIndex == -1 {
		// Save current input as draft before entering history
		m.historyDraft = m.input.Value()
		m.historyIndex = len(history) - 1
	} else if m.historyIndex > 0 {
		m.historyIndex--
	}
	m.input.SetValue(history[m.historyIndex])
}

func (m *Model) historyDown() {
	if m.historyIndex == -1 {
		return
	}

	history := m.ctrl.History()
	if m.historyIndex < len(history)-1 {
		m.historyIndex++
		m.input.SetValue(history[m.historyIndex])
		return
	}

	// Past the newest entry, restore the draft
	m.input.SetValue(m.historyDraft)
	m.resetHistory()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{
		m.styles.Title.Render("Trapping Rain Water"),
		m.input.View(),
	}

	// Title, input, status and one header per section are fixed rows
	sections := 0
	if m.snap.ShowChart {
		sections++
	}
	if m.snap.ShowTable {
		sections++
	}
	if sections > 0 {
		rows := max(m.height-3, 4*sections)
		if m.picking {
			rows = max(rows-m.picker.Count()-2, 4*sections)
		}
		m.chart.SetSize(m.width, rows/sections-1)
	}

	if m.snap.ShowChart {
		parts = append(parts,
			m.styles.Section.Render("Chart"),
			m.chart.Bars(m.snap.Heights, m.snap.Profile.WaterAt))
	}
	if m.snap.ShowTable {
		parts = append(parts,
			m.styles.Section.Render("Grid"),
			m.chart.Grid(m.snap.Heights, m.snap.Profile.WaterAt))
	}

	if m.picking {
		parts = append(parts, m.picker.View())
	}

	parts = append(parts, m.status.View())
	return strings.Join(parts, "\n")
}

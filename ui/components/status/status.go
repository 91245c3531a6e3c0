package status

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/drake/rainwater/ui/style"
	"github.com/drake/rainwater/ui/util"
	"github.com/drake/rainwater/water"
)

// Bar displays the trapped total, toggle states and key hints.
type Bar struct {
	// Lua-driven text (if set, replaces the units display)
	luaText string

	// One-shot message, e.g. the result of a clipboard copy
	message string
	isError bool

	summary   water.Summary
	showChart bool
	showTable bool
	width     int
	styles    style.Styles
}

// New creates a new status bar.
func New(styles style.Styles) Bar {
	return Bar{styles: styles}
}

// SetWidth updates the status bar width.
func (s *Bar) SetWidth(w int) {
	s.width = w
}

// SetText sets the status bar text from Lua (overrides the units display).
func (s *Bar) SetText(text string) {
	s.luaText = text
}

// SetSummary updates the figures shown on the left.
func (s *Bar) SetSummary(sum water.Summary) {
	s.summary = sum
}

// SetToggles updates the chart and table indicators.
func (s *Bar) SetToggles(chart, table bool) {
	s.showChart = chart
	s.showTable = table
}

// SetMessage shows text until the next ClearMessage.
func (s *Bar) SetMessage(text string, isError bool) {
	s.message = text
	s.isError = isError
}

// ClearMessage removes the one-shot message.
func (s *Bar) ClearMessage() {
	s.message = ""
	s.isError = false
}

// Units returns the plain units text, e.g. "Units: 7".
func (s *Bar) Units() string {
	return fmt.Sprintf("Units: %d", s.summary.Total)
}

// View renders the status bar.
func (s *Bar) View() string {
	// Left section: message, Lua text or units
	var left string
	switch {
	case s.message != "" && s.isError:
		left = s.styles.Error.Render(s.message)
	case s.message != "":
		left = s.styles.StatusBar.Render(s.message)
	case s.luaText != "":
		left = s.luaText
	default:
		left = s.styles.StatusUnits.Render(s.Units())
		if s.summary.Capacity > 0 {
			left += s.styles.Muted.Render(fmt.Sprintf("  %d basins, %.0f%% full",
				s.summary.Basins, s.summary.FillRatio*100))
		}
	}

	// Right section: toggles
	right := s.toggle("chart", "^B", s.showChart) + "  " + s.toggle("table", "^T", s.showTable)

	width := s.width - 1
	if util.VisibleLen(left)+util.VisibleLen(right)+1 > width {
		// Too narrow for both: keep the figures, drop the hints
		return ansi.Truncate(left, max(width, 0), "…")
	}
	return util.PadBetween(left, right, width)
}

func (s *Bar) toggle(name, key string, on bool) string {
	if on {
		return s.styles.ToggleOn.Render("● "+name) + s.styles.Muted.Render(" "+key)
	}
	return s.styles.ToggleOff.Render("○ "+name) + s.styles.Muted.Render(" "+key)
}

package status

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/drake/rainwater/ui/style"
	"github.com/drake/rainwater/water"
)

func newBar(width int, heights []int) Bar {
	b := New(style.DefaultStyles())
	b.SetWidth(width)
	b.SetSummary(water.Summarize(heights, water.Compute(heights)))
	b.SetToggles(true, false)
	return b
}

func TestUnits(t *testing.T) {
	b := newBar(80, []int{3, 0, 2, 0, 4})
	if b.Units() != "Units: 7" {
		t.Errorf("expected Units: 7, got %q", b.Units())
	}

	out := ansi.Strip(b.View())
	for _, want := range []string{"Units: 7", "1 basins", "● chart", "○ table"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q: %q", want, out)
		}
	}
	if w := ansi.StringWidth(out); w != 79 {
		t.Errorf("expected padded width 79, got %d", w)
	}
}

func TestDryProfileHidesBasins(t *testing.T) {
	b := newBar(80, []int{2, 2, 2})
	if strings.Contains(ansi.Strip(b.View()), "basins") {
		t.Error("a flat profile should not report basins")
	}
}

func TestOverrides(t *testing.T) {
	b := newBar(80, []int{2, 0, 2})

	b.SetText("from lua")
	if !strings.Contains(b.View(), "from lua") {
		t.Error("Lua text should replace the units")
	}

	b.SetMessage("copy failed", true)
	if !strings.Contains(ansi.Strip(b.View()), "copy failed") {
		t.Error("message should take precedence")
	}

	b.ClearMessage()
	if !strings.Contains(b.View(), "from lua") {
		t.Error("clearing the message should restore the Lua text")
	}
}

func TestNarrowDropsHints(t *testing.T) {
	b := newBar(20, []int{3, 0, 2, 0, 4})
	out := ansi.Strip(b.View())
	if strings.Contains(out, "chart") {
		t.Errorf("narrow bar should drop toggles: %q", out)
	}
	if ansi.StringWidth(out) > 19 {
		t.Errorf("narrow bar too wide: %q", out)
	}
}

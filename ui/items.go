package ui

import (
	"strings"

	"github.com/drake/rainwater/ui/style"
)

// pickItem is a preset or a history entry offered by the ctrl+p picker.
type pickItem struct {
	name string // preset name; empty for history entries
	text string
}

func (p pickItem) FilterValue() string {
	if p.name == "" {
		return p.text
	}
	return p.name + " " + p.text
}

func (p pickItem) Render(width int, selected bool, matches []int, s style.Styles) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}

	var line string
	if p.name == "" {
		line = highlightText(p.text, matches, 0, s)
	} else {
		// Text starts at len(name)+1 (after the space)
		nameLen := len([]rune(p.name))
		text := truncate(p.text, width-nameLen-7)
		line = highlightText(p.name, matches, 0, s) + " → " + highlightText(text, matches, nameLen+1, s)
	}

	if selected {
		return s.OverlaySelected.Render(prefix) + line
	}
	return s.OverlayNormal.Render(prefix) + line
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 2 {
		return "…"
	}
	if len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}

// highlightText highlights matched positions in text, with offset adjustment.
func highlightText(text string, positions []int, offset int, s style.Styles) string {
	if len(positions) == 0 {
		return text
	}

	textRunes := []rune(text)
	posSet := make(map[int]bool)
	for _, pos := range positions {
		relPos := pos - offset
		if relPos >= 0 && relPos < len(textRunes) {
			posSet[relPos] = true
		}
	}
	if len(posSet) == 0 {
		return text
	}

	var result strings.Builder
	for i, r := range textRunes {
		if posSet[i] {
			result.WriteString(s.OverlayMatch.Render(string(r)))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

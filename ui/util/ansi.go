package util

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// VisibleLen returns the visible display width of a string (excluding ANSI codes).
func VisibleLen(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// PadBetween joins left and right with enough spaces to fill width.
// At least one space separates them.
func PadBetween(left, right string, width int) string {
	gap := width - VisibleLen(left) - VisibleLen(right)
	if gap < 1 {
		gap = 1
	}
	return left + spaces(gap) + right
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

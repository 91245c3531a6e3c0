package picker

import "github.com/drake/rainwater/ui/style"

// Item represents a row in the picker.
type Item interface {
	// FilterValue returns the string to be used for fuzzy matching.
	FilterValue() string

	// Render returns the styled string for a single row.
	// matches contains the rune indices of FilterValue to highlight.
	Render(width int, selected bool, matches []int, styles style.Styles) string
}

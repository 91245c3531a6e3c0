package picker

import (
	"strings"

	"github.com/drake/rainwater/ui/style"
	"github.com/drake/rainwater/ui/util"
)

// Config holds picker configuration.
type Config struct {
	MaxVisible int    // Maximum number of visible items
	Header     string // Shown before the query, e.g. "Presets: "
	EmptyText  string // Text to show when no matches (default: "No matches")
}

// Model is a generic fuzzy-filtering selector. It captures the keyboard while
// open; the parent decides when to show it and what selection means.
type Model[T Item] struct {
	items     []T
	filtered  []T
	matches   []util.Match
	query     string
	selected  int
	scrollOff int
	config    Config
	styles    style.Styles
	width     int
}

// New creates a new picker with the given configuration.
func New[T Item](config Config, styles style.Styles) *Model[T] {
	if config.MaxVisible == 0 {
		config.MaxVisible = 10
	}
	if config.EmptyText == "" {
		config.EmptyText = "No matches"
	}
	return &Model[T]{
		config: config,
		styles: styles,
	}
}

// SetItems replaces the items and clears the query.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.Filter("")
}

// SetWidth updates the picker width.
func (m *Model[T]) SetWidth(w int) {
	m.width = w
}

// Query returns the current filter query.
func (m *Model[T]) Query() string {
	return m.query
}

// Filter narrows the items to those matching query.
func (m *Model[T]) Filter(query string) {
	m.query = query

	values := make([]string, len(m.items))
	for i, item := range m.items {
		values[i] = item.FilterValue()
	}

	m.matches = util.FuzzyFilter(query, values)
	m.filtered = make([]T, len(m.matches))
	for i, match := range m.matches {
		m.filtered[i] = m.items[match.Index]
	}

	m.selected = 0
	m.scrollOff = 0
}

// Type appends runes to the query.
func (m *Model[T]) Type(s string) {
	m.Filter(m.query + s)
}

// Backspace removes the last rune of the query.
func (m *Model[T]) Backspace() {
	if r := []rune(m.query); len(r) > 0 {
		m.Filter(string(r[:len(r)-1]))
	}
}

// SelectUp moves selection up with wraparound.
func (m *Model[T]) SelectUp() {
	if len(m.filtered) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.filtered)) % len(m.filtered)
	m.adjustScroll()
}

// SelectDown moves selection down with wraparound.
func (m *Model[T]) SelectDown() {
	if len(m.filtered) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.filtered)
	m.adjustScroll()
}

func (m *Model[T]) adjustScroll() {
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	} else if m.selected >= m.scrollOff+m.config.MaxVisible {
		m.scrollOff = m.selected - m.config.MaxVisible + 1
	}
}

// Selected returns the currently selected item, or false if none.
func (m *Model[T]) Selected() (T, bool) {
	var zero T
	if m.selected >= len(m.filtered) {
		return zero, false
	}
	return m.filtered[m.selected], true
}

// Count returns the number of filtered items.
func (m *Model[T]) Count() int {
	return len(m.filtered)
}

// View renders the picker overlay.
func (m *Model[T]) View() string {
	lines := []string{m.styles.Muted.Render(m.config.Header) + m.query + "█"}

	if len(m.filtered) == 0 {
		lines = append(lines, m.styles.Muted.Render("  "+m.config.EmptyText))
	}

	end := min(m.scrollOff+m.config.MaxVisible, len(m.filtered))
	for i := m.scrollOff; i < end; i++ {
		var positions []int
		if i < len(m.matches) {
			positions = m.matches[i].Positions
		}
		lines = append(lines, m.filtered[i].Render(m.width-4, i == m.selected, positions, m.styles))
	}

	return m.styles.OverlayBorder.Width(max(m.width-4, 10)).Render(strings.Join(lines, "\n"))
}

package session

// HistoryManager keeps rendered inputs, oldest first.
type HistoryManager struct {
	lines []string
	limit int
}

// NewHistoryManager creates a new history manager with the given limit.
func NewHistoryManager(limit int) *HistoryManager {
	if limit < 1 {
		limit = 1
	}
	return &HistoryManager{
		lines: make([]string, 0, min(limit, 64)),
		limit: limit,
	}
}

// Add appends an input. An earlier copy of the same input is moved to the end
// rather than repeated.
func (h *HistoryManager) Add(text string) {
	if text == "" {
		return
	}
	for i, l := range h.lines {
		if l == text {
			h.lines = append(h.lines[:i], h.lines[i+1:]...)
			break
		}
	}
	h.lines = append(h.lines, text)
	// Trim if over limit
	if len(h.lines) > h.limit {
		h.lines = h.lines[len(h.lines)-h.limit:]
	}
}

// Get returns a copy of the history.
func (h *HistoryManager) Get() []string {
	result := make([]string, len(h.lines))
	copy(result, h.lines)
	return result
}

// Len returns the number of entries.
func (h *HistoryManager) Len() int {
	return len(h.lines)
}

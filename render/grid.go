package render

// Cell classifies one square of the level grid.
type Cell int

const (
	Empty Cell = iota
	Block
	Water
)

// String returns the CSS class used for the cell.
func (c Cell) String() string {
	switch c {
	case Block:
		return "block"
	case Water:
		return "water"
	default:
		return "empty"
	}
}

// Levels lays the profile out as rows of cells, from the highest level down to
// level 1. A bar occupies levels 1..heights[i]; water occupies the levels above
// it up to heights[i]+waterAt[i].
func Levels(heights, waterAt []int) [][]Cell {
	return LevelsFrom(heights, waterAt, Top(heights, waterAt))
}

// Top returns the highest level Levels would draw.
func Top(heights, waterAt []int) int {
	top := 0
	for _, h := range heights {
		top = max(top, h)
	}
	for _, w := range waterAt {
		top = max(top, w)
	}
	return top
}

// LevelsFrom is Levels restricted to levels top down to 1, so the cost is
// bounded by top rather than by the tallest bar.
func LevelsFrom(heights, waterAt []int, top int) [][]Cell {
	rows := make([][]Cell, 0, max(top, 0))
	for level := top; level >= 1; level-- {
		row := make([]Cell, len(heights))
		for i, h := range heights {
			switch {
			case h >= level:
				row[i] = Block
			case h+at(waterAt, i) >= level:
				row[i] = Water
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// at tolerates a waterAt shorter than heights.
func at(xs []int, i int) int {
	if i < len(xs) {
		return xs[i]
	}
	return 0
}

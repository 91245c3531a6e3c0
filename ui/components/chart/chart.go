// Package chart draws a water profile with terminal glyphs: a scaled bar
// chart and the exact level grid. Both are rebuilt from scratch on each call.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/drake/rainwater/render"
	"github.com/drake/rainwater/ui/style"
)

const (
	blockGlyph = "█"
	waterGlyph = "░"
	emptyGlyph = "·"
)

// Chart renders within a width x height cell budget.
type Chart struct {
	styles style.Styles
	width  int
	height int
}

// New creates a chart with a default 80x12 budget.
func New(styles style.Styles) Chart {
	return Chart{styles: styles, width: 80, height: 12}
}

// SetSize sets the space the chart may use.
func (c *Chart) SetSize(width, height int) {
	c.width = max(width, 8)
	c.height = max(height, 3)
}

// columnWidth is the cells used per position, including a one-cell gap.
func columnWidth(heights []int) int {
	w := 2
	for _, h := range heights {
		w = max(w, len(fmt.Sprint(h)))
	}
	return w + 1
}

// visible returns how many positions fit the width.
func (c Chart) visible(n, colW int) int {
	return min(n, max(c.width/colW, 1))
}

// Bars draws vertical bars with water stacked on top, scaled to fit the height
// budget, followed by a row of bar heights.
func (c Chart) Bars(heights, waterAt []int) string {
	if len(heights) == 0 {
		return c.styles.Muted.Render("No data")
	}

	colW := columnWidth(heights)
	n := c.visible(len(heights), colW)
	rows := scaled(heights[:n], waterAt[:min(n, len(waterAt))], c.height-1)

	var b strings.Builder
	for _, row := range rows {
		for _, cell := range row {
			b.WriteString(c.cell(cell, colW-1, false))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = fmt.Sprintf("%-*d", colW, heights[i])
	}
	b.WriteString(c.styles.Axis.Render(strings.TrimRight(strings.Join(labels, ""), " ")))
	if n < len(heights) {
		b.WriteString(c.styles.Muted.Render(fmt.Sprintf(" … +%d", len(heights)-n)))
	}
	return b.String()
}

// Grid draws the exact level grid inside a frame, one square per unit, like
// the HTML table. Levels that do not fit are cut from the top.
func (c Chart) Grid(heights, waterAt []int) string {
	if len(heights) == 0 {
		return c.styles.Muted.Render("No data")
	}

	n := c.visible(len(heights), 2)
	hs, ws := heights[:n], waterAt[:min(n, len(waterAt))]
	top := render.Top(hs, ws)
	shown := min(top, c.height-2)
	clipped := top - shown
	rows := render.LevelsFrom(hs, ws, shown)

	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, cell := range row {
			b.WriteString(c.cell(cell, 2, true))
		}
		lines[i] = b.String()
	}
	if len(lines) == 0 {
		lines = []string{strings.Repeat(" ", 2*n)}
	}

	out := c.styles.Frame.Render(strings.Join(lines, "\n"))
	if clipped > 0 || n < len(heights) {
		out += "\n" + c.styles.Muted.Render(fmt.Sprintf("%d levels and %d positions not shown", clipped, len(heights)-n))
	}
	return out
}

func (c Chart) cell(cell render.Cell, width int, showEmpty bool) string {
	switch cell {
	case render.Block:
		return c.styles.Block.Render(strings.Repeat(blockGlyph, width))
	case render.Water:
		return c.styles.Water.Render(strings.Repeat(waterGlyph, width))
	}
	if showEmpty {
		return c.styles.Empty.Render(strings.Repeat(emptyGlyph, width))
	}
	return strings.Repeat(" ", width)
}

// scaled returns level rows for heights and water fitted into at most budget
// rows, rounding each bar and water surface to the nearest row.
func scaled(heights, waterAt []int, budget int) [][]render.Cell {
	top := 0
	for i, h := range heights {
		top = max(top, h+at(waterAt, i))
	}
	if top <= budget {
		return render.Levels(heights, waterAt)
	}

	sh := make([]int, len(heights))
	sw := make([]int, len(heights))
	for i, h := range heights {
		surface := scale(h+at(waterAt, i), top, budget)
		sh[i] = scale(h, top, budget)
		sw[i] = surface - sh[i]
	}
	return render.Levels(sh, sw)
}

func scale(v, top, budget int) int {
	return int(math.Round(float64(v) / float64(top) * float64(budget)))
}

func at(xs []int, i int) int {
	if i < len(xs) {
		return xs[i]
	}
	return 0
}

package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// SVGOptions sizes the chart's view box.
type SVGOptions struct {
	Width   int
	Height  int
	Padding int
}

// DefaultSVGOptions returns a 1000x400 view box with 40 units of padding.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 1000, Height: 400, Padding: 40}
}

const chartStyle = `
.gridline { stroke: rgba(255,255,255,0.03); }
.axis { fill: #8b949e; font: 12px sans-serif; }
.blockRect { fill: #6e7681; }
.waterRect { fill: #3b82f6; opacity: 0.8; }
`

// Bar is the geometry of one position in the chart.
type Bar struct {
	X, Width       float64
	Y, Height      float64
	WaterY, WaterH float64 // zero height when dry
}

// Tick is one horizontal grid line and its axis label.
type Tick struct {
	Y     float64
	Label int
}

// Chart is the computed layout of a bar chart.
type Chart struct {
	Options SVGOptions
	MaxH    int
	Bars    []Bar
	Ticks   []Tick
}

// Layout computes bar and grid geometry without drawing anything.
func Layout(heights, waterAt []int, opts SVGOptions) Chart {
	opts = opts.withDefaults()
	c := Chart{Options: opts}
	n := len(heights)
	if n == 0 {
		return c
	}

	c.MaxH = 1
	for _, h := range heights {
		c.MaxH = max(c.MaxH, h)
	}
	maxH := float64(c.MaxH)

	inner := float64(opts.Width - 2*opts.Padding)
	plotH := float64(opts.Height - 2*opts.Padding)
	pad := float64(opts.Padding)
	slot := inner / float64(n)
	barW := math.Max(6, slot*0.8)
	gap := slot - barW

	steps := min(10, max(4, c.MaxH))
	for s := 0; s <= steps; s++ {
		frac := float64(s) / float64(steps)
		c.Ticks = append(c.Ticks, Tick{
			Y:     pad + plotH*(1-frac),
			Label: int(math.Round(maxH * frac)),
		})
	}

	c.Bars = make([]Bar, n)
	for i, h := range heights {
		b := Bar{
			X:      pad + float64(i)*(barW+gap) + gap/2,
			Width:  barW,
			Height: float64(h) / maxH * plotH,
		}
		b.Y = pad + plotH - b.Height
		if w := at(waterAt, i); w > 0 {
			b.WaterH = float64(w) / maxH * plotH
			b.WaterY = b.Y - b.WaterH
		}
		c.Bars[i] = b
	}
	return c
}

func (o SVGOptions) withDefaults() SVGOptions {
	d := DefaultSVGOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Padding < 0 || 2*o.Padding >= min(o.Width, o.Height) {
		o.Padding = min(d.Padding, min(o.Width, o.Height)/4)
	}
	return o
}

// SVG writes the profile as a bar chart: grid lines with axis labels, bars with
// their height and index labels, and water stacked on top of each bar.
func SVG(w io.Writer, heights, waterAt []int, opts SVGOptions) error {
	ew := &errWriter{w: w}
	c := Layout(heights, waterAt, opts)
	o := c.Options

	canvas := svg.New(ew)
	canvas.Startview(o.Width, o.Height, 0, 0, o.Width, o.Height)
	canvas.Style("text/css", chartStyle)

	if len(c.Bars) > 0 {
		canvas.Group(`class="grid"`)
		for _, t := range c.Ticks {
			y := px(t.Y)
			canvas.Line(o.Padding, y, o.Width-o.Padding, y, `class="gridline"`)
			canvas.Text(8, y+4, strconv.Itoa(t.Label), `class="axis"`)
		}
		canvas.Gend()

		canvas.Group(`class="water"`)
		for _, b := range c.Bars {
			if b.WaterH > 0 {
				canvas.Roundrect(px(b.X), px(b.WaterY), px(b.Width), px(b.WaterH), 2, 2, `class="waterRect"`)
			}
		}
		canvas.Gend()

		canvas.Group(`class="bars"`)
		for i, b := range c.Bars {
			mid := px(b.X + b.Width/2)
			canvas.Roundrect(px(b.X), px(b.Y), px(b.Width), px(b.Height), 3, 3, `class="blockRect"`)
			canvas.Text(mid, o.Height-8, strconv.Itoa(i), `text-anchor="middle"`, `class="axis"`)
			canvas.Text(mid, px(b.Y)-6, strconv.Itoa(heights[i]), `text-anchor="middle"`, `class="axis"`)
		}
		canvas.Gend()
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

// SVGString renders the chart into a string.
func SVGString(heights, waterAt []int, opts SVGOptions) string {
	var buf bytes.Buffer
	_ = SVG(&buf, heights, waterAt, opts)
	return buf.String()
}

func px(v float64) int {
	return int(math.Round(v))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

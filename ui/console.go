package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/drake/rainwater/session"
	"github.com/drake/rainwater/ui/components/chart"
	"github.com/drake/rainwater/ui/style"
)

// Console is the line-oriented front end used with -simple. Every input line
// is rendered and printed; lines starting with ':' are commands.
type Console struct {
	ctrl  *session.Controller
	in    io.Reader
	out   io.Writer
	chart chart.Chart
	text  string
}

// NewConsole creates a console reading from in and writing to out.
func NewConsole(ctrl *session.Controller, in io.Reader, out io.Writer) *Console {
	return &Console{
		ctrl:  ctrl,
		in:    in,
		out:   out,
		chart: chart.New(style.DefaultStyles()),
	}
}

// Run reads lines until EOF or :quit.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "Commands: :random :clear :chart :table :svg :html :history :quit")
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if !c.handle(strings.TrimSpace(scanner.Text())) {
			return nil
		}
	}
	return scanner.Err()
}

// handle processes one line and reports whether to keep reading.
func (c *Console) handle(line string) bool {
	switch line {
	case ":quit", ":q":
		return false
	case ":random":
		snap := c.ctrl.Random()
		c.text = snap.Text
		fmt.Fprintf(c.out, "heights: %s\n", snap.Text)
		c.print(snap)
	case ":clear":
		c.text = ""
		c.print(c.ctrl.Clear())
	case ":chart":
		c.print(c.ctrl.ToggleChart(c.text))
	case ":table":
		c.print(c.ctrl.ToggleTable(c.text))
	case ":svg":
		fmt.Fprintln(c.out, c.ctrl.SVG())
	case ":html":
		fmt.Fprint(c.out, c.ctrl.HTML())
	case ":history":
		for _, h := range c.ctrl.History() {
			fmt.Fprintln(c.out, h)
		}
	default:
		if strings.HasPrefix(line, ":") {
			fmt.Fprintf(c.out, "unknown command %q\n", line)
			return true
		}
		c.text = line
		c.print(c.ctrl.Render(line))
	}
	return true
}

func (c *Console) print(snap session.Snapshot) {
	fmt.Fprintf(c.out, "Units: %d\n", snap.Profile.Total)
	fmt.Fprintf(c.out, "water: %v\n", snap.Profile.WaterAt)
	if snap.Status != "" {
		fmt.Fprintln(c.out, snap.Status)
	}
	if snap.ShowChart {
		fmt.Fprintln(c.out, c.chart.Bars(snap.Heights, snap.Profile.WaterAt))
	}
	if snap.ShowTable {
		fmt.Fprintln(c.out, c.chart.Grid(snap.Heights, snap.Profile.WaterAt))
	}
}

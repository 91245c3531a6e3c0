// Package session holds the controller that turns user actions into rendered
// snapshots: parse the input, compute the profile, hand it to the renderers.
package session

import (
	"bytes"
	"math/rand"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/drake/rainwater/config"
	"github.com/drake/rainwater/lua"
	"github.com/drake/rainwater/parse"
	"github.com/drake/rainwater/render"
	"github.com/drake/rainwater/water"
)

// Snapshot is everything a front end needs to draw one result.
// It is replaced wholesale on every action and must not be modified.
type Snapshot struct {
	Text      string
	Heights   []int
	Profile   water.Profile
	Summary   water.Summary
	ShowChart bool
	ShowTable bool

	// Status is text produced by the Lua on_render hook, or the hook's error.
	Status string
}

// Stats counts controller activity for the debug monitor.
type Stats struct {
	Renders     int
	CacheHits   int
	CacheMisses int
	History     int
	LastRender  time.Time
}

// Controller owns the current input and visibility toggles.
// Actions are expected from a single goroutine; Stats may be read from any.
type Controller struct {
	opts    config.Options
	engine  *lua.Engine
	logger  *zap.SugaredLogger
	rng     *rand.Rand
	cache   *lru.Cache[string, water.Profile]
	history *HistoryManager
	snap    Snapshot

	statsMu sync.Mutex
	stats   Stats
}

// New creates a controller. engine and logger may be nil.
func New(opts config.Options, engine *lua.Engine, logger *zap.SugaredLogger) *Controller {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	cache, err := lru.New[string, water.Profile](max(opts.CacheSize, 1))
	if err != nil {
		logger.Warnw("profile cache disabled", "error", err)
	}

	c := &Controller{
		opts:    opts,
		engine:  engine,
		logger:  logger,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:   cache,
		history: NewHistoryManager(opts.HistoryLimit),
	}
	c.snap = Snapshot{
		Heights:   []int{},
		Profile:   water.Compute(nil),
		ShowChart: opts.ShowChart,
		ShowTable: opts.ShowTable,
	}
	c.snap.Summary = water.Summarize(nil, c.snap.Profile)
	return c
}

// Seed makes Random reproducible.
func (c *Controller) Seed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Options returns the settings the controller runs with.
func (c *Controller) Options() config.Options {
	return c.opts
}

// Snapshot returns the current result.
func (c *Controller) Snapshot() Snapshot {
	return c.snap
}

// Render parses text, computes its profile and makes it the current snapshot.
func (c *Controller) Render(text string) Snapshot {
	heights := parse.Heights(text)
	profile := c.profile(heights)

	c.snap = Snapshot{
		Text:      text,
		Heights:   heights,
		Profile:   profile,
		Summary:   water.Summarize(heights, profile),
		ShowChart: c.snap.ShowChart,
		ShowTable: c.snap.ShowTable,
	}
	c.history.Add(text)
	c.runHook()

	c.logger.Debugw("rendered",
		"positions", len(heights),
		"total", profile.Total,
		"chart", c.snap.ShowChart,
		"table", c.snap.ShowTable,
	)

	c.statsMu.Lock()
	c.stats.Renders++
	c.stats.History = c.history.Len()
	c.stats.LastRender = time.Now()
	c.statsMu.Unlock()
	return c.snap
}

// Random renders a fresh random sequence and returns it as the input text.
func (c *Controller) Random() Snapshot {
	heights := parse.Random(c.rng, c.opts.RandomCount, c.opts.RandomMax)
	return c.Render(parse.Format(heights))
}

// Clear renders the empty input.
func (c *Controller) Clear() Snapshot {
	return c.Render("")
}

// ToggleChart flips chart visibility and re-renders text.
func (c *Controller) ToggleChart(text string) Snapshot {
	c.snap.ShowChart = !c.snap.ShowChart
	return c.Render(text)
}

// ToggleTable flips table visibility and re-renders text.
func (c *Controller) ToggleTable(text string) Snapshot {
	c.snap.ShowTable = !c.snap.ShowTable
	return c.Render(text)
}

// SVG renders the current snapshot as an SVG document.
func (c *Controller) SVG() string {
	return render.SVGString(c.snap.Heights, c.snap.Profile.WaterAt, c.svgOptions())
}

// HTML renders the current snapshot as an HTML grid table.
func (c *Controller) HTML() string {
	var buf bytes.Buffer
	_ = render.HTMLTable(&buf, c.snap.Heights, c.snap.Profile.WaterAt)
	return buf.String()
}

// History returns rendered inputs, most recent last.
func (c *Controller) History() []string {
	return c.history.Get()
}

// Presets returns the presets registered by init.lua.
func (c *Controller) Presets() []lua.Preset {
	if c.engine == nil {
		return nil
	}
	return c.engine.Presets()
}

// Stats returns a copy of the activity counters.
func (c *Controller) Stats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

func (c *Controller) svgOptions() render.SVGOptions {
	return render.SVGOptions{
		Width:   c.opts.SVGWidth,
		Height:  c.opts.SVGHeight,
		Padding: c.opts.SVGPadding,
	}
}

// profile computes or recalls the profile for heights.
func (c *Controller) profile(heights []int) water.Profile {
	if c.cache == nil {
		return water.Compute(heights)
	}

	key := parse.Format(heights)
	if p, ok := c.cache.Get(key); ok {
		c.statsMu.Lock()
		c.stats.CacheHits++
		c.statsMu.Unlock()
		return p
	}

	p := water.Compute(heights)
	c.cache.Add(key, p)
	c.statsMu.Lock()
	c.stats.CacheMisses++
	c.statsMu.Unlock()
	return p
}

func (c *Controller) runHook() {
	if c.engine == nil {
		return
	}
	status, err := c.engine.OnRender(c.snap.Heights, c.snap.Profile)
	if err != nil {
		c.logger.Warnw("render hook failed", "error", err)
		c.snap.Status = err.Error()
		return
	}
	c.snap.Status = status
}

// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/drake/rainwater/session"
)

// Enabled returns true if debug mode is active (RAINWATER_DEBUG=1).
func Enabled() bool {
	return os.Getenv("RAINWATER_DEBUG") == "1"
}

// StatsSource is anything that can report controller statistics.
type StatsSource interface {
	Stats() session.Stats
}

// Monitor periodically logs controller statistics when debug mode is enabled.
type Monitor struct {
	source   StatsSource
	interval time.Duration
	ctx      context.Context
	logger   *zap.SugaredLogger
}

// NewMonitor creates a new monitor for the given source.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, source StatsSource, logger *zap.SugaredLogger) *Monitor {
	if !Enabled() {
		return nil
	}
	return newMonitor(ctx, source, logger, 5*time.Second)
}

func newMonitor(ctx context.Context, source StatsSource, logger *zap.SugaredLogger, interval time.Duration) *Monitor {
	return &Monitor{
		source:   source,
		interval: interval,
		ctx:      ctx,
		logger:   logger,
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Debugw("monitor started", "interval", m.interval)

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Debugw("monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	s := m.source.Stats()

	lastRender := "never"
	if !s.LastRender.IsZero() {
		lastRender = time.Since(s.LastRender).Round(time.Second).String() + " ago"
	}

	hitRate := 0.0
	if lookups := s.CacheHits + s.CacheMisses; lookups > 0 {
		hitRate = float64(s.CacheHits) / float64(lookups)
	}

	m.logger.Infow("controller stats",
		"renders", s.Renders,
		"cache_hits", s.CacheHits,
		"cache_misses", s.CacheMisses,
		"cache_hit_rate", hitRate,
		"history", s.History,
		"last_render", lastRender,
	)
}

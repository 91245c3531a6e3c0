package debug

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/drake/rainwater/session"
)

type countingSource struct {
	calls atomic.Int32
}

func (c *countingSource) Stats() session.Stats {
	c.calls.Add(1)
	return session.Stats{Renders: 3, CacheHits: 2, CacheMisses: 1}
}

func TestNewMonitorDisabled(t *testing.T) {
	t.Setenv("RAINWATER_DEBUG", "")
	if m := NewMonitor(context.Background(), &countingSource{}, zap.NewNop().Sugar()); m != nil {
		t.Fatal("monitor should be nil when debug is off")
	}
	// Start on nil is a no-op
	var m *Monitor
	m.Start()
}

func TestMonitorLogsUntilCancelled(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	src := &countingSource{}
	ctx, cancel := context.WithCancel(context.Background())

	m := newMonitor(ctx, src, zap.New(core).Sugar(), 5*time.Millisecond)
	m.Start()

	deadline := time.After(2 * time.Second)
	for src.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("monitor never polled")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	for logs.FilterMessage("monitor stopped").Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("monitor did not stop")
		case <-time.After(time.Millisecond):
		}
	}

	entries := logs.FilterMessage("controller stats").All()
	if len(entries) == 0 {
		t.Fatal("no stats logged")
	}
	if got := entries[0].ContextMap()["renders"]; got != int64(3) {
		t.Errorf("unexpected renders field %v", got)
	}
}

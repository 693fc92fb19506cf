// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/drake/balance/session"
)

// DefaultInterval is how often the monitor logs when none is given.
const DefaultInterval = 5 * time.Second

// StatsSource is anything that can report session statistics.
type StatsSource interface {
	Stats() session.Stats
}

// Monitor periodically logs session statistics at debug level.
type Monitor struct {
	source   StatsSource
	interval time.Duration
	logger   *log.Logger
}

// NewMonitor creates a new monitor for the given source. A non-positive
// interval uses DefaultInterval.
func NewMonitor(source StatsSource, logger *log.Logger, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{
		source:   source,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the monitoring loop in a goroutine. It stops when ctx is done.
func (m *Monitor) Start(ctx context.Context) {
	if m == nil {
		return
	}
	go m.run(ctx)
}

func (m *Monitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Debug("monitor started", "interval", m.interval)

	var last session.Stats
	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("monitor stopped")
			return
		case <-ticker.C:
			last = m.logStats(last)
		}
	}
}

// logStats logs the current counters and the tick rate since prev.
func (m *Monitor) logStats(prev session.Stats) session.Stats {
	s := m.source.Stats()
	rate := float64(s.TicksApplied-prev.TicksApplied) / m.interval.Seconds()

	m.logger.Debug("stats",
		"events", s.EventsProcessed,
		"ticks", s.TicksApplied,
		"rate", rate,
		"stale", s.StaleTicks,
		"dropped", s.EventsDropped,
		"timerQ", s.TimerQueueLen,
		"timerCap", s.TimerQueueCap,
		"timers", s.ActiveTimers,
		"goroutines", s.Goroutines,
	)
	return s
}

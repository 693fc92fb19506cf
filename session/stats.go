package session

import "runtime"

// Stats is a point-in-time view of the session's counters. It is safe to
// call from any goroutine.
type Stats struct {
	EventsProcessed uint64
	TicksApplied    uint64
	StaleTicks      uint64
	EventsDropped   uint64
	TimerQueueLen   int
	TimerQueueCap   int
	ActiveTimers    int
	Goroutines      int
}

// Stats returns the current counters.
func (s *Session) Stats() Stats {
	return Stats{
		EventsProcessed: s.stats.events.Load(),
		TicksApplied:    s.stats.ticks.Load(),
		StaleTicks:      s.stats.staleTicks.Load(),
		EventsDropped:   s.stats.dropped.Load(),
		TimerQueueLen:   len(s.timerEvents),
		TimerQueueCap:   cap(s.timerEvents),
		ActiveTimers:    s.timer.Pending(),
		Goroutines:      runtime.NumGoroutine(),
	}
}

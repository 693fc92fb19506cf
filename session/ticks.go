package session

import "time"

// tickScheduler lets the tilt controller schedule its ticks on the
// session's timer service. The controller calls it from the session
// goroutine, so the ticks map needs no lock.
type tickScheduler struct {
	s *Session
}

func (t tickScheduler) Schedule(d time.Duration, gen uint64) {
	id := t.s.timer.After(d)
	t.s.ticks[id] = gen
}

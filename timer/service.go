// Package timer turns wall-clock delays into events on a channel so that
// all timed work runs on the receiver's goroutine.
package timer

import (
	"sync"
	"time"
)

// Event is sent when a timer fires.
type Event struct {
	ID        int
	Repeating bool
}

// Service owns timer ids, scheduling and cancellation.
// A cancelled timer never delivers, even if its wall-clock deadline has
// already passed and only the send is pending.
type Service struct {
	events chan<- Event
	timers map[int]*entry
	nextID int
	mu     sync.Mutex

	done      chan struct{}
	closeOnce sync.Once
}

type entry struct {
	interval time.Duration // 0 = one-shot
	stop     func() bool
}

// NewService creates a timer service that delivers to events.
func NewService(events chan<- Event) *Service {
	return &Service{
		events: events,
		timers: make(map[int]*entry),
		done:   make(chan struct{}),
	}
}

// After schedules a one-shot timer and returns its id.
func (s *Service) After(d time.Duration) int {
	return s.schedule(d, 0)
}

// Every schedules a repeating timer and returns its id.
func (s *Service) Every(d time.Duration) int {
	return s.schedule(d, d)
}

func (s *Service) schedule(d, interval time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	t := time.AfterFunc(d, func() { s.fire(id) })
	s.timers[id] = &entry{interval: interval, stop: t.Stop}
	return id
}

func (s *Service) fire(id int) {
	s.mu.Lock()
	e, ok := s.timers[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	repeating := e.interval > 0
	if repeating {
		t := time.AfterFunc(e.interval, func() { s.fire(id) })
		e.stop = t.Stop
	} else {
		delete(s.timers, id)
	}
	s.mu.Unlock()

	// Blocking send: a lost tilt tick would leave the beam frozen mid-swing.
	select {
	case s.events <- Event{ID: id, Repeating: repeating}:
	case <-s.done:
	}
}

// Cancel stops a timer. Unknown ids are ignored.
func (s *Service) Cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.timers[id]; ok {
		e.stop()
		delete(s.timers, id)
	}
}

// CancelAll stops every timer.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.timers {
		e.stop()
	}
	s.timers = make(map[int]*entry)
}

// Pending returns the number of timers that have not yet fired (one-shot)
// or not been cancelled (repeating).
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels everything and releases goroutines blocked on delivery.
func (s *Service) Close() {
	s.CancelAll()
	s.closeOnce.Do(func() { close(s.done) })
}

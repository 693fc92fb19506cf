package session

import (
	"time"

	"github.com/drake/balance/event"
	"github.com/drake/balance/lua"
	"github.com/drake/balance/scale"
)

// --- Host Implementation ---
//
// Every method here runs on the session goroutine: scripts call them from
// inside the engine, and the command path calls them from handleEvent.

// Add places a weight and notifies scripts.
func (s *Session) Add(pan scale.Pan, value int) (int, error) {
	id, err := s.balance.Add(pan, value)
	if err != nil {
		s.logger.Debug("add rejected", "pan", pan, "value", value, "err", err)
		return 0, err
	}
	s.logger.Debug("added", "pan", pan, "id", id, "value", value)
	s.publish()
	s.engine.CallHook(lua.HookAdded, pan.String(), id, value)
	return id, nil
}

// Remove takes a weight off by id. An unknown id is not an error.
func (s *Session) Remove(pan scale.Pan, id int) bool {
	if !s.balance.Remove(pan, id) {
		s.logger.Debug("remove ignored", "pan", pan, "id", id)
		return false
	}
	s.logger.Debug("removed", "pan", pan, "id", id)
	s.publish()
	s.engine.CallHook(lua.HookRemoved, pan.String(), id)
	return true
}

// Reset empties both pans; the beam swings back to level.
func (s *Session) Reset() {
	s.balance.Reset()
	s.logger.Debug("reset")
	s.publish()
	s.engine.CallHook(lua.HookReset)
}

// Snapshot returns the current view of the balance.
func (s *Session) Snapshot() scale.Snapshot {
	return s.balance.Snapshot()
}

// Print shows a line in the UI.
func (s *Session) Print(text string) { s.ui.Print(text) }

// Quit ends the session.
func (s *Session) Quit() { s.shutdown() }

// Load enqueues a request to load a Lua script on the session loop.
func (s *Session) Load(path string) {
	s.post(event.Event{
		Type: event.SystemControl,
		Control: event.ControlOp{
			Action:     event.ActionLoadScript,
			ScriptPath: path,
		},
	})
}

// TimerAfter schedules a one-shot timer. Returns the timer ID.
func (s *Session) TimerAfter(d time.Duration) int {
	return s.timer.After(d)
}

// TimerEvery schedules a repeating timer. Returns the timer ID.
func (s *Session) TimerEvery(d time.Duration) int {
	return s.timer.Every(d)
}

// TimerCancel cancels a timer by ID. Tilt ticks cannot be cancelled this
// way; they belong to the controller.
func (s *Session) TimerCancel(id int) {
	if _, ok := s.ticks[id]; ok {
		return
	}
	s.timer.Cancel(id)
}

package lua

import (
	"time"

	"github.com/drake/balance/scale"
)

// BalanceService exposes the balance to scripts. Calls arrive on the
// session goroutine, so implementations may mutate state directly.
type BalanceService interface {
	Add(pan scale.Pan, value int) (int, error)
	Remove(pan scale.Pan, id int) bool
	Reset()
	Snapshot() scale.Snapshot
}

// UIService handles visual output.
type UIService interface {
	Print(text string)
}

// TimerService handles scheduling.
type TimerService interface {
	TimerAfter(d time.Duration) int
	TimerEvery(d time.Duration) int
	TimerCancel(id int)
}

// SystemService handles app lifecycle.
type SystemService interface {
	Quit()
	Load(path string)
}

// Host bundles every service the engine needs. The session implements it;
// tests use a mock.
type Host interface {
	BalanceService
	UIService
	TimerService
	SystemService
}

package lua

import (
	"sync"
	"time"

	"github.com/drake/balance/scale"
)

// nopScheduler swallows tilt ticks; the Lua tests only look at targets.
type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration, uint64) {}

type scheduledTimer struct {
	ID       int
	Duration time.Duration
	Repeat   bool
}

// MockHost implements Host for testing on top of a real Balance.
type MockHost struct {
	mu sync.Mutex

	Balance *scale.Balance

	// Captured calls
	PrintCalls      []string
	QuitCalled      bool
	LoadCalls       []string
	ScheduledTimers []scheduledTimer
	CancelledTimers []int

	nextTimerID int
}

func NewMockHost() *MockHost {
	return &MockHost{
		Balance: scale.New(scale.DefaultPalette, nopScheduler{}, scale.DefaultTiltOptions()),
	}
}

func (m *MockHost) Add(pan scale.Pan, value int) (int, error) { return m.Balance.Add(pan, value) }
func (m *MockHost) Remove(pan scale.Pan, id int) bool         { return m.Balance.Remove(pan, id) }
func (m *MockHost) Reset()                                    { m.Balance.Reset() }
func (m *MockHost) Snapshot() scale.Snapshot                  { return m.Balance.Snapshot() }

func (m *MockHost) Print(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PrintCalls = append(m.PrintCalls, text)
}

func (m *MockHost) Quit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuitCalled = true
}

func (m *MockHost) Load(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls = append(m.LoadCalls, path)
}

func (m *MockHost) TimerAfter(d time.Duration) int {
	return m.schedule(d, false)
}

func (m *MockHost) TimerEvery(d time.Duration) int {
	return m.schedule(d, true)
}

func (m *MockHost) schedule(d time.Duration, repeat bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTimerID++
	m.ScheduledTimers = append(m.ScheduledTimers, scheduledTimer{m.nextTimerID, d, repeat})
	return m.nextTimerID
}

func (m *MockHost) TimerCancel(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelledTimers = append(m.CancelledTimers, id)
}

// Helper methods for tests

func (m *MockHost) DrainPrintCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := m.PrintCalls
	m.PrintCalls = nil
	return calls
}

func (m *MockHost) DrainScheduledTimers() []scheduledTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	timers := m.ScheduledTimers
	m.ScheduledTimers = nil
	return timers
}

package lua

import (
	"time"

	glua "github.com/yuin/gopher-lua"
)

// registerTimerFuncs registers balance.after/every/cancel/cancel_all.
func (e *Engine) registerTimerFuncs() {
	// balance.after(seconds, fn) -> id: One-shot timer
	e.L.SetField(e.table, "after", e.L.NewFunction(func(L *glua.LState) int {
		seconds := L.CheckNumber(1)
		fn := L.CheckFunction(2)

		id := e.host.TimerAfter(toDuration(seconds))
		e.callbacks[id] = fn

		L.Push(glua.LNumber(id))
		return 1
	}))

	// balance.every(seconds, fn) -> id: Repeating timer
	e.L.SetField(e.table, "every", e.L.NewFunction(func(L *glua.LState) int {
		seconds := L.CheckNumber(1)
		fn := L.CheckFunction(2)
		if seconds <= 0 {
			L.ArgError(1, "interval must be positive")
		}

		id := e.host.TimerEvery(toDuration(seconds))
		e.callbacks[id] = fn

		L.Push(glua.LNumber(id))
		return 1
	}))

	// balance.cancel(id): Stop a script timer
	e.L.SetField(e.table, "cancel", e.L.NewFunction(func(L *glua.LState) int {
		id := L.CheckInt(1)
		if _, ok := e.callbacks[id]; ok {
			delete(e.callbacks, id)
			e.host.TimerCancel(id)
		}
		return 0
	}))

	// balance.cancel_all(): Stop every script timer
	e.L.SetField(e.table, "cancel_all", e.L.NewFunction(func(L *glua.LState) int {
		e.cancelTimers()
		return 0
	}))
}

// toDuration converts Lua number seconds to Go duration
func toDuration(seconds glua.LNumber) time.Duration {
	return time.Duration(float64(seconds) * float64(time.Second))
}

package lua

import glua "github.com/yuin/gopher-lua"

var knownHooks = map[string]bool{
	HookAdded:   true,
	HookRemoved: true,
	HookReset:   true,
	HookSettled: true,
}

// registerHookFuncs registers balance.on(event, fn).
//
//	added(pan, id, value)   a weight was placed
//	removed(pan, id)        a weight was taken off
//	reset()                 both pans were cleared
//	settled(angle)          the beam stopped moving
func (e *Engine) registerHookFuncs() {
	e.L.SetField(e.table, "on", e.L.NewFunction(func(L *glua.LState) int {
		event := L.CheckString(1)
		fn := L.CheckFunction(2)
		if !knownHooks[event] {
			L.ArgError(1, "unknown event "+event)
		}
		e.hooks[event] = append(e.hooks[event], fn)
		return 0
	}))
}

package lua

import glua "github.com/yuin/gopher-lua"

// registerCoreFuncs registers balance.print, balance.quit and balance.load.
func (e *Engine) registerCoreFuncs() {
	// balance.print(text): Outputs text to the message log
	e.L.SetField(e.table, "print", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Print(L.CheckString(1))
		return 0
	}))

	// balance.quit(): Exit
	e.L.SetField(e.table, "quit", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Quit()
		return 0
	}))

	// balance.load(path): Queue another script to run after the current one.
	// Failures are reported by the host.
	e.L.SetField(e.table, "load", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Load(L.CheckString(1))
		return 0
	}))
}

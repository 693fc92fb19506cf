package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/balance/errors"
	"github.com/drake/balance/scale"
)

// registerScaleFuncs registers the balance commands and queries.
func (e *Engine) registerScaleFuncs() {
	// balance.add(pan, value) -> id | nil, err
	e.L.SetField(e.table, "add", e.L.NewFunction(func(L *glua.LState) int {
		pan := checkPan(L, 1)
		value := L.CheckInt(2)

		id, err := e.host.Add(pan, value)
		if err != nil {
			L.Push(glua.LNil)
			L.Push(glua.LString(errors.UserMessage(err)))
			return 2
		}
		L.Push(glua.LNumber(id))
		return 1
	}))

	// balance.remove(pan, id) -> removed
	e.L.SetField(e.table, "remove", e.L.NewFunction(func(L *glua.LState) int {
		pan := checkPan(L, 1)
		id := L.CheckInt(2)
		L.Push(glua.LBool(e.host.Remove(pan, id)))
		return 1
	}))

	// balance.reset()
	e.L.SetField(e.table, "reset", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Reset()
		return 0
	}))

	// balance.totals() -> left, right
	e.L.SetField(e.table, "totals", e.L.NewFunction(func(L *glua.LState) int {
		snap := e.host.Snapshot()
		L.Push(glua.LNumber(snap.LeftTotal))
		L.Push(glua.LNumber(snap.RightTotal))
		return 2
	}))

	// balance.contents(pan) -> { {id=, value=}, ... } in placement order
	e.L.SetField(e.table, "contents", e.L.NewFunction(func(L *glua.LState) int {
		pan := checkPan(L, 1)
		list := L.NewTable()
		for _, inst := range e.host.Snapshot().Pan(pan) {
			item := L.NewTable()
			L.SetField(item, "id", glua.LNumber(inst.ID))
			L.SetField(item, "value", glua.LNumber(inst.Value))
			list.Append(item)
		}
		L.Push(list)
		return 1
	}))

	// balance.angle() -> current, target, state
	e.L.SetField(e.table, "angle", e.L.NewFunction(func(L *glua.LState) int {
		snap := e.host.Snapshot()
		L.Push(glua.LNumber(snap.Angle))
		L.Push(glua.LNumber(snap.Target))
		L.Push(glua.LString(snap.State.String()))
		return 3
	}))
}

// checkPan reads a pan name argument, raising a Lua error if it is unknown.
func checkPan(L *glua.LState, n int) scale.Pan {
	pan, err := scale.ParsePan(L.CheckString(n))
	if err != nil {
		L.ArgError(n, errors.UserMessage(err))
	}
	return pan
}

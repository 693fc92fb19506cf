package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	glua "github.com/yuin/gopher-lua"
)

// Hook names fired by the session.
const (
	HookAdded   = "added"
	HookRemoved = "removed"
	HookReset   = "reset"
	HookSettled = "settled"
)

// Engine wraps gopher-lua and manages the VM lifecycle.
// It knows how to run Lua code and expose the balance API; the session
// decides what to load and when.
type Engine struct {
	L *glua.LState

	// Cached reference to the global "balance" table
	table *glua.LTable

	host Host

	// Timer callbacks keyed by timer id. The timer service owns the ids.
	callbacks map[int]*glua.LFunction

	// Registered hook functions in registration order
	hooks map[string][]*glua.LFunction
}

// NewEngine creates an Engine with the given Host.
func NewEngine(host Host) *Engine {
	return &Engine{
		host:      host,
		callbacks: make(map[int]*glua.LFunction),
		hooks:     make(map[string][]*glua.LFunction),
	}
}

// --- Lifecycle ---

// Init creates (or recreates) the VM and registers the API. Timers and
// hooks from a previous VM are discarded.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}
	e.L = glua.NewState()

	e.cancelTimers()
	e.hooks = make(map[string][]*glua.LFunction)

	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	e.cancelTimers()
	e.hooks = nil
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// OnTimer runs the callback registered for id. It reports whether id
// belonged to a script.
func (e *Engine) OnTimer(id int, repeating bool) bool {
	if e.L == nil {
		return false
	}

	fn, ok := e.callbacks[id]
	if !ok {
		return false
	}
	if !repeating {
		delete(e.callbacks, id)
	}

	e.L.Push(fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		e.host.Print("timer: " + err.Error())
	}
	return true
}

// --- Execution ---

// DoString executes a string of Lua code. name is used in stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file, with its directory prepended to package.path
// for the duration so local requires resolve.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	e.L.SetField(pkg, "path", glua.LString(dir+"/?.lua;"+oldPath))

	err = e.L.DoFile(absPath)

	e.L.SetField(pkg, "path", glua.LString(oldPath))
	return err
}

// CallHook invokes every function registered for event. Supported argument
// types are string, int, float64 and bool. A failing hook is reported and
// does not stop the others.
func (e *Engine) CallHook(event string, args ...any) {
	if e.L == nil {
		return
	}
	fns := e.hooks[event]
	if len(fns) == 0 {
		return
	}

	luaArgs := make([]glua.LValue, len(args))
	for i, a := range args {
		luaArgs[i] = toLValue(a)
	}

	for _, fn := range fns {
		if err := e.L.CallByParam(glua.P{Fn: fn, NRet: 0, Protect: true}, luaArgs...); err != nil {
			e.host.Print(fmt.Sprintf("hook %s: %v", event, err))
		}
	}
}

// HasHooks reports whether anything is registered for event.
func (e *Engine) HasHooks(event string) bool {
	return len(e.hooks[event]) > 0
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.table = e.L.NewTable()
	e.L.SetGlobal("balance", e.table)

	e.registerCoreFuncs()
	e.registerScaleFuncs()
	e.registerTimerFuncs()
	e.registerHookFuncs()
}

// --- Private Helpers ---

// cancelTimers stops every timer a script scheduled. Timers the session
// uses for the tilt loop are left alone.
func (e *Engine) cancelTimers() {
	for id := range e.callbacks {
		e.host.TimerCancel(id)
	}
	e.callbacks = make(map[int]*glua.LFunction)
}

func toLValue(v any) glua.LValue {
	switch v := v.(type) {
	case string:
		return glua.LString(v)
	case int:
		return glua.LNumber(v)
	case float64:
		return glua.LNumber(v)
	case bool:
		return glua.LBool(v)
	case nil:
		return glua.LNil
	default:
		return glua.LString(fmt.Sprint(v))
	}
}

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

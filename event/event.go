// Package event defines the envelope posted to the session loop.
package event

import "github.com/drake/balance/scale"

// Type identifies the kind of event.
type Type int

const (
	Command       Type = iota // Add/Remove/Reset against the balance
	SystemControl             // Quit, load script
)

// Op is a balance command.
type Op int

const (
	OpAdd Op = iota
	OpRemove
	OpReset
)

// String returns the command verb.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// BalanceOp carries the arguments of a command.
type BalanceOp struct {
	Op    Op
	Pan   scale.Pan
	Value int // OpAdd
	ID    int // OpRemove
}

// Control action constants
const (
	ActionQuit       = "quit"
	ActionLoadScript = "load_script"
)

// ControlOp contains control operation details
type ControlOp struct {
	Action     string // Use Action* constants
	ScriptPath string
}

// Event is the universal packet sent to the session loop.
type Event struct {
	Type    Type
	Balance BalanceOp
	Control ControlOp
}

package event

import (
	"strconv"
	"strings"

	"github.com/drake/balance/errors"
	"github.com/drake/balance/scale"
)

// Parse turns a typed command line into an event.
//
//	add <pan> <value>     place a weight
//	remove <pan> <id>     take a placed weight off
//	reset                 clear both pans
//	/load <path>          run a Lua script
//	/quit                 exit
func Parse(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Event{}, errors.New(errors.ErrCodeInvalidCommand, "empty command")
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "add", "a":
		pan, n, err := panAndNumber(verb, args, "value")
		if err != nil {
			return Event{}, err
		}
		return Event{Type: Command, Balance: BalanceOp{Op: OpAdd, Pan: pan, Value: n}}, nil

	case "remove", "rm", "del":
		pan, n, err := panAndNumber(verb, args, "id")
		if err != nil {
			return Event{}, err
		}
		return Event{Type: Command, Balance: BalanceOp{Op: OpRemove, Pan: pan, ID: n}}, nil

	case "reset", "/reset":
		if len(args) != 0 {
			return Event{}, errors.New(errors.ErrCodeInvalidCommand, "reset takes no arguments")
		}
		return Event{Type: Command, Balance: BalanceOp{Op: OpReset}}, nil

	case "/load":
		if len(args) != 1 {
			return Event{}, errors.New(errors.ErrCodeInvalidCommand, "usage: /load <path>")
		}
		return Event{Type: SystemControl, Control: ControlOp{Action: ActionLoadScript, ScriptPath: args[0]}}, nil

	case "/quit", "quit":
		return Event{Type: SystemControl, Control: ControlOp{Action: ActionQuit}}, nil
	}

	return Event{}, errors.New(errors.ErrCodeInvalidCommand, "unknown command %q", fields[0])
}

func panAndNumber(verb string, args []string, what string) (scale.Pan, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidCommand, "usage: %s <left|right> <%s>", verb, what)
	}
	pan, err := scale.ParsePan(args[0])
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidCommand, err, "%s", verb)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidCommand, err, "%s: %s must be an integer", verb, what)
	}
	return pan, n, nil
}

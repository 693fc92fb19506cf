// Package scale implements the two-pan balance: the registry of placed
// weights and the controller that eases the beam toward its target angle.
//
// Nothing in this package locks. Callers are expected to drive a Balance
// from a single goroutine (see the session package).
package scale

import (
	"strings"

	"github.com/drake/balance/errors"
)

// Pan identifies one side of the balance.
type Pan int

const (
	Left Pan = iota
	Right
)

// String returns the lower-case pan name.
func (p Pan) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether p is Left or Right.
func (p Pan) Valid() bool {
	return p == Left || p == Right
}

// ParsePan accepts "left", "l", "right" or "r" in any case.
func ParsePan(s string) (Pan, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidPan, "unknown pan %q", s)
}

// Package ui renders balance snapshots and turns user input into command
// lines for the session.
package ui

import "github.com/drake/balance/scale"

// UI defines the contract for the display layer.
type UI interface {
	Run() error
	Quit()
	Done() <-chan struct{}

	// Input yields command lines ("add left 5", "reset", ...).
	Input() <-chan string

	// Print appends a line to the message log.
	Print(text string)

	// Render shows the latest state of the balance.
	Render(snap scale.Snapshot)
}

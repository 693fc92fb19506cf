package ui

import "github.com/drake/balance/scale"

// SnapshotMsg carries a new balance state into the bubbletea program.
type SnapshotMsg scale.Snapshot

// PrintLineMsg appends a line to the message log.
type PrintLineMsg string

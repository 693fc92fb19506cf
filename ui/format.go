package ui

import (
	"fmt"

	"github.com/drake/balance/scale"
)

// TotalsLine formats the pan totals the way the title bar shows them.
func TotalsLine(s scale.Snapshot) string {
	return fmt.Sprintf("L=%d | R=%d", s.LeftTotal, s.RightTotal)
}

// StatusLine is TotalsLine plus the tilt state.
func StatusLine(s scale.Snapshot) string {
	if s.State == scale.Converging {
		return fmt.Sprintf("%s  angle=%+.2f -> %+.2f (%s)", TotalsLine(s), s.Angle, s.Target, s.State)
	}
	return fmt.Sprintf("%s  angle=%+.2f (%s)", TotalsLine(s), s.Angle, s.State)
}

package network

import (
	"io"

	"github.com/rs/zerolog"
)

// newDisabledLogger returns a logger that drops every event; library use of
// Ntk stays silent unless a caller opts in via SetLogger.
func newDisabledLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

// SetLogger installs a logger used for structural diagnostics. The one event
// emitted through it is Check's warning for a latch that feeds its own input
// directly; hash-table resizes, combinational-loop traces, choice-class
// merges, retiming progress and transform aborts are not logged. The warning
// is not error-bearing (spec §7 policy) — it is observability, not control
// flow.
func (n *Ntk) SetLogger(l zerolog.Logger) {
	n.log = l
}

// Logger returns the network's current logger.
func (n *Ntk) Logger() zerolog.Logger {
	return n.log
}

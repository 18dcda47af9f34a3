package model

import "iter"

// Feed supplies the host's current set of diagnostics for one update.
// The returned sequence is complete for that update.
type Feed interface {
	Observe() iter.Seq[Observation]
}

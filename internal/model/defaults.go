package model

import "time"

// Shared defaults used by the visualizer, the terminal host and the CLI.
const (
	DefaultInterval        = 20 * time.Millisecond
	DefaultFrameInterval   = 16 * time.Millisecond
	DefaultRuntimeInterval = 250 * time.Millisecond
	DefaultChartWidth      = 200
	DefaultChartHeight     = 100
	DefaultCellWidth       = 5
	DefaultCellHeight      = 10

	// HistoryCapacity bounds every series history; the oldest sample is
	// evicted when a push would exceed it.
	HistoryCapacity = 100

	// DefaultMaxHistory is how many raw measurements a host diagnostic keeps
	// for its running average.
	DefaultMaxHistory = 20

	WindowTitle = "Diagnostics"
)

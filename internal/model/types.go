package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownSeries is returned when a series reference is neither a known
// alias nor a UUID.
var ErrUnknownSeries = errors.New("unknown series")

// SeriesID identifies a diagnostic source. It is only ever compared.
type SeriesID uuid.UUID

func (id SeriesID) String() string { return uuid.UUID(id).String() }

// NewSeriesID returns a random SeriesID for diagnostics registered at runtime.
func NewSeriesID() SeriesID { return SeriesID(uuid.New()) }

// Well-known diagnostics registered by the built-in collectors.
var (
	FrameTime  = SeriesID(uuid.MustParse("73441630-925a-4b2f-8f6e-3a5a2b9e0c11"))
	FPS        = SeriesID(uuid.MustParse("d89d5a4c-7c3b-4bd0-9f1a-5e0d43b8c2a7"))
	FrameCount = SeriesID(uuid.MustParse("e1c7a6b2-3f08-4a8d-b5e1-90f2d6c4a318"))
	Goroutines = SeriesID(uuid.MustParse("4b0f6e8a-2c1d-4e7f-a3b9-c8d5e2f1a604"))
	HeapAlloc  = SeriesID(uuid.MustParse("9a2e5c71-0d4b-4f63-8e1a-b7c3d9f0e245"))
	GCCycles   = SeriesID(uuid.MustParse("c5f8b3d2-6a9e-41c7-9d0f-2e4a7b1c8d56"))
	Wave       = SeriesID(uuid.MustParse("17e3d9a4-b8c2-4f05-a6d1-3c9e0b7f5a82"))
)

var aliases = map[string]SeriesID{
	"frame_time":  FrameTime,
	"fps":         FPS,
	"frame_count": FrameCount,
	"goroutines":  Goroutines,
	"heap_alloc":  HeapAlloc,
	"gc_cycles":   GCCycles,
	"wave":        Wave,
}

// ParseSeriesID resolves a config reference: either a well-known alias
// (case-insensitive) or a UUID string.
func ParseSeriesID(ref string) (SeriesID, error) {
	ref = strings.TrimSpace(ref)
	if id, ok := aliases[strings.ToLower(ref)]; ok {
		return id, nil
	}
	u, err := uuid.Parse(ref)
	if err != nil {
		return SeriesID{}, fmt.Errorf("%w: %q", ErrUnknownSeries, ref)
	}
	return SeriesID(u), nil
}

// Observation is one diagnostic as reported by the host for a single update.
type Observation struct {
	ID       SeriesID
	Name     string
	Enabled  bool
	Value    float64 // running average, valid only when HasValue
	HasValue bool
}

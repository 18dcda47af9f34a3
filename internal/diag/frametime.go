package diag

import (
	"math"
	"time"

	"github.com/tinytelemetry/diagviz/internal/model"
)

// FrameTime records frame time in seconds, frames per second and the
// frame count from the host's per-frame elapsed time.
type FrameTime struct {
	registry *Registry
	frames   uint64
}

// RegisterFrameTime adds the frame diagnostics to r.
func RegisterFrameTime(r *Registry) *FrameTime {
	r.Add(model.FrameTime, "frame_time", model.DefaultMaxHistory)
	r.Add(model.FPS, "fps", model.DefaultMaxHistory)
	r.Add(model.FrameCount, "frame_count", 1)
	return &FrameTime{registry: r}
}

// Frame records one frame that took elapsed.
func (f *FrameTime) Frame(elapsed time.Duration) {
	f.frames++
	f.registry.Record(model.FrameCount, float64(f.frames))

	secs := elapsed.Seconds()
	if secs <= 0 {
		return
	}
	f.registry.Record(model.FrameTime, secs)
	f.registry.Record(model.FPS, 1/secs)
}

// Frames returns how many frames were recorded.
func (f *FrameTime) Frames() uint64 { return f.frames }

// Wave is a synthetic sine diagnostic for exercising chart shapes.
type Wave struct {
	registry *Registry
	period   time.Duration
	phase    time.Duration
}

// RegisterWave adds a sine wave with the given period to r.
func RegisterWave(r *Registry, period time.Duration) *Wave {
	if period <= 0 {
		period = 2 * time.Second
	}
	r.Add(model.Wave, "wave", 1)
	return &Wave{registry: r, period: period}
}

// Advance moves the wave forward by elapsed and records its value.
func (w *Wave) Advance(elapsed time.Duration) {
	w.phase = (w.phase + elapsed) % w.period
	angle := 2 * math.Pi * float64(w.phase) / float64(w.period)
	w.registry.Record(model.Wave, 50+50*math.Sin(angle))
}

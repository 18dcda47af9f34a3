package visualizer

import (
	"time"

	"github.com/tinytelemetry/diagviz/internal/chart"
	"github.com/tinytelemetry/diagviz/internal/model"
	"github.com/tinytelemetry/diagviz/internal/sampling"
)

// Visualizer owns the sampled series, the window state and the chart
// style for one host application. Update and Render must not run
// concurrently.
type Visualizer struct {
	store *sampling.Store
	style chart.Style
	open  bool
}

// Update feeds one host frame into the store.
func (v *Visualizer) Update(elapsed time.Duration, feed model.Feed) {
	if feed == nil {
		v.store.Tick(elapsed, nil)
		return
	}
	v.store.Tick(elapsed, feed.Observe())
}

// Render draws the Diagnostics window. Nothing per series is computed
// while the window is closed.
func (v *Visualizer) Render(host chart.Host) {
	var series []sampling.SeriesView
	if v.open {
		series = v.store.Snapshot()
	}
	chart.RenderWindow(host, &v.open, v.style, series)
}

// Series returns the current snapshot in render order.
func (v *Visualizer) Series() []sampling.SeriesView { return v.store.Snapshot() }

// Store exposes the sampling store.
func (v *Visualizer) Store() *sampling.Store { return v.store }

// Style returns the chart style.
func (v *Visualizer) Style() chart.Style { return v.style }

// IsOpen reports whether the window is open.
func (v *Visualizer) IsOpen() bool { return v.open }

// SetOpen opens or closes the window.
func (v *Visualizer) SetOpen(open bool) { v.open = open }

// Toggle flips the window state and returns the new state.
func (v *Visualizer) Toggle() bool {
	v.open = !v.open
	return v.open
}

// Include switches to (or extends) an include-only filter.
func (v *Visualizer) Include(id model.SeriesID) { v.store.Include(id) }

// Exclude switches to (or extends) an exclude-only filter.
func (v *Visualizer) Exclude(id model.SeriesID) { v.store.Exclude(id) }

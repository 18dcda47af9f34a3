// Package diag is the host-side diagnostics store: named measurements
// recorded by collectors and reported to the visualizer as running averages.
package diag

import (
	"iter"

	"github.com/tinytelemetry/diagviz/internal/history"
	"github.com/tinytelemetry/diagviz/internal/model"
)

// Diagnostic is one named measurement stream.
type Diagnostic struct {
	ID           model.SeriesID
	Name         string
	Enabled      bool
	measurements *history.Buffer
}

// Average returns the mean of the retained measurements.
func (d *Diagnostic) Average() (float64, bool) {
	values := d.measurements.Values()
	if len(values) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// Value returns the latest measurement.
func (d *Diagnostic) Value() (float64, bool) {
	return d.measurements.Last()
}

// Registry holds diagnostics in registration order. Like the rest of the
// host loop it is single-threaded.
type Registry struct {
	order []model.SeriesID
	byID  map[model.SeriesID]*Diagnostic
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[model.SeriesID]*Diagnostic)}
}

// Add registers a diagnostic, or returns the existing one for id.
func (r *Registry) Add(id model.SeriesID, name string, maxHistory int) *Diagnostic {
	if d, ok := r.byID[id]; ok {
		return d
	}
	if maxHistory <= 0 {
		maxHistory = model.DefaultMaxHistory
	}
	d := &Diagnostic{ID: id, Name: name, Enabled: true, measurements: history.NewN(maxHistory)}
	r.byID[id] = d
	r.order = append(r.order, id)
	return d
}

// Remove unregisters a diagnostic.
func (r *Registry) Remove(id model.SeriesID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the diagnostic for id.
func (r *Registry) Get(id model.SeriesID) (*Diagnostic, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Len returns the number of registered diagnostics.
func (r *Registry) Len() int { return len(r.order) }

// Record adds a measurement. Disabled diagnostics drop it.
func (r *Registry) Record(id model.SeriesID, v float64) bool {
	d, ok := r.byID[id]
	if !ok || !d.Enabled {
		return false
	}
	d.measurements.Push(v)
	return true
}

// SetEnabled enables or disables a diagnostic.
func (r *Registry) SetEnabled(id model.SeriesID, enabled bool) bool {
	d, ok := r.byID[id]
	if !ok {
		return false
	}
	d.Enabled = enabled
	return true
}

// EnableAll enables every diagnostic and returns how many changed.
func (r *Registry) EnableAll() int {
	n := 0
	for _, d := range r.byID {
		if !d.Enabled {
			d.Enabled = true
			n++
		}
	}
	return n
}

// Toggle flips the enabled flag and returns the new value.
func (r *Registry) Toggle(id model.SeriesID) (enabled, ok bool) {
	d, ok := r.byID[id]
	if !ok {
		return false, false
	}
	d.Enabled = !d.Enabled
	return d.Enabled, true
}

// Observe reports every diagnostic with its running average.
func (r *Registry) Observe() iter.Seq[model.Observation] {
	return func(yield func(model.Observation) bool) {
		for _, id := range r.order {
			d := r.byID[id]
			avg, ok := d.Average()
			obs := model.Observation{ID: d.ID, Name: d.Name, Enabled: d.Enabled, Value: avg, HasValue: ok}
			if !yield(obs) {
				return
			}
		}
	}
}

var _ model.Feed = (*Registry)(nil)

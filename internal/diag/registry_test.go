package diag

import (
	"testing"

	"github.com/tinytelemetry/diagviz/internal/model"
)

func collect(r *Registry) []model.Observation {
	var out []model.Observation
	for o := range r.Observe() {
		out = append(out, o)
	}
	return out
}

func TestRegistry_ObserveReportsRunningAverage(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	id := model.NewSeriesID()
	r.Add(id, "load", 3)

	obs := collect(r)
	if len(obs) != 1 || obs[0].HasValue {
		t.Fatalf("before any measurement: %+v, want one observation without value", obs)
	}

	for _, v := range []float64{1, 2, 3, 10} {
		r.Record(id, v)
	}
	obs = collect(r)
	if !obs[0].HasValue || obs[0].Value != 5 {
		t.Fatalf("average = %v (has=%t), want 5 over the last 3", obs[0].Value, obs[0].HasValue)
	}
	if !obs[0].Enabled || obs[0].Name != "load" {
		t.Fatalf("observation = %+v", obs[0])
	}
}

func TestRegistry_OrderAndRemove(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	a, b, c := model.NewSeriesID(), model.NewSeriesID(), model.NewSeriesID()
	r.Add(a, "a", 0)
	r.Add(b, "b", 0)
	r.Add(c, "c", 0)
	if again := r.Add(b, "renamed", 0); again.Name != "b" {
		t.Fatalf("Add of an existing id replaced it: %q", again.Name)
	}

	if !r.Remove(b) || r.Remove(b) {
		t.Fatal("Remove should succeed once")
	}
	obs := collect(r)
	if len(obs) != 2 || obs[0].ID != a || obs[1].ID != c {
		t.Fatalf("observed %d diagnostics in wrong order", len(obs))
	}
}

func TestRegistry_DisabledDropsMeasurements(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	id := model.NewSeriesID()
	r.Add(id, "x", 0)
	r.Record(id, 4)

	enabled, ok := r.Toggle(id)
	if !ok || enabled {
		t.Fatalf("Toggle = %t,%t, want false,true", enabled, ok)
	}
	if r.Record(id, 100) {
		t.Fatal("Record on a disabled diagnostic succeeded")
	}
	obs := collect(r)
	if obs[0].Enabled || obs[0].Value != 4 {
		t.Fatalf("observation = %+v, want disabled with value 4", obs[0])
	}

	if !r.SetEnabled(id, true) {
		t.Fatal("SetEnabled failed")
	}
	if _, ok := r.Toggle(model.NewSeriesID()); ok {
		t.Fatal("Toggle of an unknown id succeeded")
	}
}

func TestRegistry_ObserveStopsEarly(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(model.NewSeriesID(), "a", 0)
	r.Add(model.NewSeriesID(), "b", 0)

	n := 0
	for range r.Observe() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("iterations = %d, want 1", n)
	}
}

func TestRegistry_EnableAll(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	a, b := model.NewSeriesID(), model.NewSeriesID()
	r.Add(a, "a", 0)
	r.Add(b, "b", 0)
	r.SetEnabled(a, false)

	if got := r.EnableAll(); got != 1 {
		t.Fatalf("EnableAll() = %d, want 1", got)
	}
	for o := range r.Observe() {
		if !o.Enabled {
			t.Fatalf("%s still disabled", o.Name)
		}
	}
}

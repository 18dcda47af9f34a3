package sampling

import (
	"cmp"
	"iter"
	"math"
	"slices"
	"time"

	"github.com/tinytelemetry/diagviz/internal/history"
	"github.com/tinytelemetry/diagviz/internal/model"
)

// SeriesState is the tracked state of one diagnostic.
type SeriesState struct {
	ID      model.SeriesID
	Name    string
	Format  Format
	History *history.Buffer
}

// SeriesView is a read-only snapshot of a SeriesState for rendering.
type SeriesView struct {
	ID      model.SeriesID
	Name    string
	Format  Format
	History []float64 // oldest first
}

// Store samples host diagnostics into bounded per-series histories.
// It is not safe for concurrent use; the host must serialise Tick and
// rendering.
type Store struct {
	timer    Timer
	filter   FilterPolicy
	rules    []Rule
	fallback Format
	series   map[model.SeriesID]*SeriesState
}

// New creates a Store that ingests once per interval.
func New(interval time.Duration, filter FilterPolicy, rules []Rule) *Store {
	return &Store{
		timer:    NewTimer(interval),
		filter:   filter.Clone(),
		rules:    slices.Clone(rules),
		fallback: DefaultFormat,
		series:   make(map[model.SeriesID]*SeriesState),
	}
}

// Tick advances the sampling timer and reconciles the tracked series with
// the observed set. Series that are disabled, filtered out or no longer
// observed are dropped on every call; samples are only ingested when the
// interval has elapsed.
func (s *Store) Tick(elapsed time.Duration, observed iter.Seq[model.Observation]) {
	ready := s.timer.Tick(elapsed)
	seen := make(map[model.SeriesID]struct{}, len(s.series))

	if observed != nil {
		for obs := range observed {
			if !obs.Enabled || !s.filter.ShouldInclude(obs.ID) {
				delete(s.series, obs.ID)
				continue
			}
			seen[obs.ID] = struct{}{}
			if !ready {
				continue
			}
			state := s.lookupOrCreate(obs)
			if obs.HasValue && !math.IsNaN(obs.Value) && !math.IsInf(obs.Value, 0) {
				state.History.Push(obs.Value)
			}
		}
	}

	for id := range s.series {
		if _, ok := seen[id]; !ok {
			delete(s.series, id)
		}
	}
}

func (s *Store) lookupOrCreate(obs model.Observation) *SeriesState {
	if state, ok := s.series[obs.ID]; ok {
		return state
	}
	state := &SeriesState{
		ID:      obs.ID,
		Name:    obs.Name,
		Format:  Resolve(s.rules, s.fallback, obs.ID, obs.Name),
		History: history.New(),
	}
	s.series[obs.ID] = state
	return state
}

// Series yields a snapshot of every tracked series ordered by name, then ID.
func (s *Store) Series() iter.Seq[SeriesView] {
	views := s.Snapshot()
	return func(yield func(SeriesView) bool) {
		for _, v := range views {
			if !yield(v) {
				return
			}
		}
	}
}

// Snapshot returns the tracked series ordered by name, then ID.
func (s *Store) Snapshot() []SeriesView {
	views := make([]SeriesView, 0, len(s.series))
	for _, state := range s.series {
		views = append(views, SeriesView{
			ID:      state.ID,
			Name:    state.Name,
			Format:  state.Format,
			History: state.History.Values(),
		})
	}
	slices.SortFunc(views, func(a, b SeriesView) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return views
}

// Lookup returns the tracked state for id.
func (s *Store) Lookup(id model.SeriesID) (*SeriesState, bool) {
	state, ok := s.series[id]
	return state, ok
}

// Len returns the number of tracked series.
func (s *Store) Len() int { return len(s.series) }

// Interval returns the sampling interval.
func (s *Store) Interval() time.Duration { return s.timer.Interval() }

// Filter returns a copy of the active filter policy.
func (s *Store) Filter() FilterPolicy { return s.filter.Clone() }

// Include switches to (or extends) an include-only policy.
func (s *Store) Include(id model.SeriesID) { s.filter.Include(id) }

// Exclude switches to (or extends) an exclude-only policy.
func (s *Store) Exclude(id model.SeriesID) { s.filter.Exclude(id) }

package sampling

import "github.com/tinytelemetry/diagviz/internal/model"

// FilterKind selects how a FilterPolicy treats its ID set.
type FilterKind int

const (
	AcceptAll FilterKind = iota
	IncludeOnly
	ExcludeOnly
)

func (k FilterKind) String() string {
	switch k {
	case IncludeOnly:
		return "include"
	case ExcludeOnly:
		return "exclude"
	default:
		return "all"
	}
}

// FilterPolicy decides which series are tracked. Exactly one kind is active;
// switching kinds replaces the set instead of merging it.
type FilterPolicy struct {
	kind FilterKind
	ids  map[model.SeriesID]struct{}
}

// AcceptAllFilter tracks every series.
func AcceptAllFilter() FilterPolicy { return FilterPolicy{} }

// IncludeFilter tracks only the given series.
func IncludeFilter(ids ...model.SeriesID) FilterPolicy {
	f := FilterPolicy{kind: IncludeOnly, ids: make(map[model.SeriesID]struct{}, len(ids))}
	for _, id := range ids {
		f.ids[id] = struct{}{}
	}
	return f
}

// ExcludeFilter tracks every series except the given ones.
func ExcludeFilter(ids ...model.SeriesID) FilterPolicy {
	f := FilterPolicy{kind: ExcludeOnly, ids: make(map[model.SeriesID]struct{}, len(ids))}
	for _, id := range ids {
		f.ids[id] = struct{}{}
	}
	return f
}

// Kind returns the active policy kind.
func (f *FilterPolicy) Kind() FilterKind { return f.kind }

// Len returns the size of the active ID set.
func (f *FilterPolicy) Len() int { return len(f.ids) }

// ShouldInclude reports whether id passes the policy.
func (f *FilterPolicy) ShouldInclude(id model.SeriesID) bool {
	_, listed := f.ids[id]
	switch f.kind {
	case IncludeOnly:
		return listed
	case ExcludeOnly:
		return !listed
	default:
		return true
	}
}

// Include adds id to an include policy, replacing any other kind.
func (f *FilterPolicy) Include(id model.SeriesID) {
	f.add(IncludeOnly, id)
}

// Exclude adds id to an exclude policy, replacing any other kind.
func (f *FilterPolicy) Exclude(id model.SeriesID) {
	f.add(ExcludeOnly, id)
}

func (f *FilterPolicy) add(kind FilterKind, id model.SeriesID) {
	if f.kind != kind || f.ids == nil {
		f.kind = kind
		f.ids = make(map[model.SeriesID]struct{})
	}
	f.ids[id] = struct{}{}
}

// Clone returns an independent copy.
func (f FilterPolicy) Clone() FilterPolicy {
	out := FilterPolicy{kind: f.kind}
	if f.ids != nil {
		out.ids = make(map[model.SeriesID]struct{}, len(f.ids))
		for id := range f.ids {
			out.ids[id] = struct{}{}
		}
	}
	return out
}

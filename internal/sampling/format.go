package sampling

import (
	"path"
	"strconv"

	"github.com/tinytelemetry/diagviz/internal/model"
)

// Format renders a sample as fixed-point text. The zero Format prints the
// value with no decimals.
type Format struct {
	Decimals int     // digits after the decimal point
	Scale    float64 // multiplier applied before formatting; 0 means 1
	Unit     string  // appended verbatim, e.g. " ms"
}

// DefaultFormat is used when no rule matches a series.
var DefaultFormat = Format{}

// Apply formats v.
func (f Format) Apply(v float64) string {
	scale := f.Scale
	if scale == 0 {
		scale = 1
	}
	return strconv.FormatFloat(v*scale, 'f', max(f.Decimals, 0), 64) + f.Unit
}

// Matcher selects series by ID or by name glob. It matches when any entry
// matches.
type Matcher struct {
	IDs   []model.SeriesID
	Names []string // path.Match patterns
}

// Match reports whether the series matches.
func (m Matcher) Match(id model.SeriesID, name string) bool {
	for _, want := range m.IDs {
		if want == id {
			return true
		}
	}
	for _, pattern := range m.Names {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Rule pairs a matcher with the format used for matching series.
type Rule struct {
	Match  Matcher
	Format Format
}

// DefaultRules renders frame time, reported in seconds, as milliseconds.
func DefaultRules() []Rule {
	return []Rule{
		{
			Match:  Matcher{IDs: []model.SeriesID{model.FrameTime}},
			Format: Format{Decimals: 1, Scale: 1000, Unit: " ms"},
		},
	}
}

// Resolve returns the format of the first matching rule in declaration
// order, or fallback.
func Resolve(rules []Rule, fallback Format, id model.SeriesID, name string) Format {
	for _, r := range rules {
		if r.Match.Match(id, name) {
			return r.Format
		}
	}
	return fallback
}

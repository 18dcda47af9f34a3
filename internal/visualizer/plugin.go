// Package visualizer wires the sampling store and the chart renderer into
// the single context object a host drives every frame.
package visualizer

import (
	"slices"
	"time"

	"github.com/tinytelemetry/diagviz/internal/chart"
	"github.com/tinytelemetry/diagviz/internal/model"
	"github.com/tinytelemetry/diagviz/internal/sampling"
)

// Plugin configures a Visualizer. Settings are fixed once Build is called.
type Plugin struct {
	interval time.Duration
	filter   sampling.FilterPolicy
	rules    []sampling.Rule
	style    chart.Style
	closed   bool
}

// NewPlugin returns the defaults: 20ms sampling, every series accepted,
// frame time shown in milliseconds, white 200x100 charts.
func NewPlugin() *Plugin {
	return &Plugin{
		interval: model.DefaultInterval,
		filter:   sampling.AcceptAllFilter(),
		style:    chart.DefaultStyle(),
	}
}

// Interval sets how often a sample is taken.
func (p *Plugin) Interval(d time.Duration) *Plugin {
	p.interval = d
	return p
}

// Include tracks id, switching to an include-only filter if needed.
func (p *Plugin) Include(id model.SeriesID) *Plugin {
	p.filter.Include(id)
	return p
}

// Exclude hides id, switching to an exclude-only filter if needed.
func (p *Plugin) Exclude(id model.SeriesID) *Plugin {
	p.filter.Exclude(id)
	return p
}

// Filter replaces the filter policy.
func (p *Plugin) Filter(f sampling.FilterPolicy) *Plugin {
	p.filter = f.Clone()
	return p
}

// Format adds a formatter rule. Added rules are tried in order, before the
// built-in frame time rule.
func (p *Plugin) Format(rule sampling.Rule) *Plugin {
	p.rules = append(p.rules, rule)
	return p
}

// Style sets the chart style.
func (p *Plugin) Style(s chart.Style) *Plugin {
	p.style = s
	return p
}

// StartClosed builds the visualizer with its window closed.
func (p *Plugin) StartClosed() *Plugin {
	p.closed = true
	return p
}

// Build creates the Visualizer.
func (p *Plugin) Build() *Visualizer {
	rules := append(slices.Clone(p.rules), sampling.DefaultRules()...)
	return &Visualizer{
		store: sampling.New(p.interval, p.filter, rules),
		style: p.style,
		open:  !p.closed,
	}
}

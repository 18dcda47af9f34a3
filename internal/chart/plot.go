package chart

import (
	"github.com/tinytelemetry/diagviz/internal/model"
	"github.com/tinytelemetry/diagviz/internal/sampling"
)

// sectionAllowance is the vertical room a section header takes on top of
// the chart box when sizing the window.
const sectionAllowance = 24

// Stats summarises a history for labelling.
type Stats struct {
	Last, Min, Max float64
}

// ComputeStats returns last/min/max. values must not be empty.
func ComputeStats(values []float64) Stats {
	st := Stats{Last: values[len(values)-1], Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		st.Min = min(st.Min, v)
		st.Max = max(st.Max, v)
	}
	return st
}

// Bounds returns the value range mapped onto the box height.
func Bounds(st Stats, baseline Baseline) (lo, hi float64) {
	if baseline == BaselineZero {
		return min(0, st.Min), max(0, st.Max)
	}
	return st.Min, st.Max
}

// PlotPoints maps values into box. Index i maps from [0, len] onto the box
// width and values map from [lo, hi] onto the box height, growing upward
// from the bottom-left corner. A flat range puts every point on the bottom
// edge.
func PlotPoints(values []float64, box Rect, lo, hi float64) []Vec2 {
	n := float64(len(values))
	points := make([]Vec2, len(values))
	for i, v := range values {
		x := Remap(float64(i), 0, n, 0, box.Width())
		y := 0.0
		if hi > lo {
			y = Remap(v, lo, hi, 0, box.Height())
		}
		points[i] = Vec2{box.Min.X + x, box.Max.Y - y}
	}
	return points
}

// PlotSeries draws one series: the plot box, the line, the latest value to
// the right of the box and the max/min labels in its left corners. An
// empty history draws nothing.
func PlotSeries(ui UI, style Style, s sampling.SeriesView) {
	values := s.History
	if len(values) == 0 {
		return
	}

	st := ComputeStats(values)
	spacing := ui.Spacing()

	lastText := s.Format.Apply(st.Last)
	lastSize := ui.MeasureText(lastText)
	outer := ui.Allocate(Vec2{style.Width + lastSize.X + spacing, style.Height})
	box := RectFromMinSize(outer.Min, Vec2{style.Width, style.Height})

	textPos := box.RightCenter().Add(Vec2{spacing / 2, -lastSize.Y / 2})
	ui.Text(textPos, lastText, style.TextColor, outer)

	ui.Rect(box, style.RectangleStroke)

	lo, hi := Bounds(st, style.Baseline)
	ui.Polyline(PlotPoints(values, box, lo, hi), style.LineStroke)

	maxText := "max: " + s.Format.Apply(st.Max)
	maxSize := ui.MeasureText(maxText)
	ui.Text(box.LeftTop().Add(Vec2{spacing, maxSize.Y / 2}), maxText, style.TextColor, box)

	minText := "min: " + s.Format.Apply(st.Min)
	minSize := ui.MeasureText(minText)
	ui.Text(box.LeftBottom().Add(Vec2{spacing, -minSize.Y * 1.5}), minText, style.TextColor, box)
}

// SeriesHeight is the window height allowance for one series.
func SeriesHeight(style Style) float64 {
	return style.Height + sectionAllowance
}

// RenderWindow draws the Diagnostics window with one default-open section
// per series. The default height grows with the number of series.
func RenderWindow(host Host, open *bool, style Style, series []sampling.SeriesView) {
	height := float64(len(series)) * SeriesHeight(style)
	host.Window(model.WindowTitle, open, height, func(ui UI) {
		for _, s := range series {
			ui.Section(SectionOptions{
				ID:          s.ID.String(),
				Title:       s.Name,
				DefaultOpen: true,
				Preview:     s.History,
			}, func(ui UI) {
				PlotSeries(ui, style, s)
			})
		}
	})
}

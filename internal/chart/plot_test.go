package chart

import (
	"math"
	"slices"
	"testing"

	"github.com/tinytelemetry/diagviz/internal/model"
	"github.com/tinytelemetry/diagviz/internal/sampling"
)

func view(name string, format sampling.Format, values ...float64) sampling.SeriesView {
	return sampling.SeriesView{ID: model.NewSeriesID(), Name: name, Format: format, History: values}
}

func TestPlotSeries_EmptyHistoryDrawsNothing(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	PlotSeries(rec, DefaultStyle(), view("fps", sampling.DefaultFormat))

	if len(rec.Primitives) != 0 {
		t.Fatalf("recorded %d primitives for empty history, want 0", len(rec.Primitives))
	}
}

func TestPlotSeries_SingleValue(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	PlotSeries(rec, DefaultStyle(), view("fps", sampling.DefaultFormat, 42))

	if got := rec.Count(KindRect, ""); got != 1 {
		t.Fatalf("rects = %d, want 1", got)
	}
	if got := rec.Count(KindPolyline, ""); got != 1 {
		t.Fatalf("polylines = %d, want 1", got)
	}

	var line Primitive
	for _, p := range rec.Primitives {
		if p.Kind == KindPolyline {
			line = p
		}
	}
	if len(line.Points) != 1 {
		t.Fatalf("polyline points = %d, want 1", len(line.Points))
	}
	pt := line.Points[0]
	if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
		t.Fatalf("degenerate point = %+v", pt)
	}
	if pt.Y != 100 {
		t.Fatalf("flat series point y = %v, want box bottom 100", pt.Y)
	}

	want := []string{"42", "max: 42", "min: 42"}
	if got := rec.Texts(""); !slices.Equal(got, want) {
		t.Fatalf("labels = %q, want %q", got, want)
	}
}

func TestPlotSeries_LabelsUseFormatter(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	ms := sampling.Format{Decimals: 1, Scale: 1000, Unit: " ms"}
	PlotSeries(rec, DefaultStyle(), view("frame_time", ms, 0.020, 0.0167, 0.033))

	want := []string{"33.0 ms", "max: 33.0 ms", "min: 16.7 ms"}
	if got := rec.Texts(""); !slices.Equal(got, want) {
		t.Fatalf("labels = %q, want %q", got, want)
	}
}

func TestPlotSeries_GeometryMinStretched(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	style := DefaultStyle()
	PlotSeries(rec, style, view("v", sampling.DefaultFormat, 10, 20, 30, 40))

	var box Rect
	var points []Vec2
	for _, p := range rec.Primitives {
		switch p.Kind {
		case KindRect:
			box = p.Rect
		case KindPolyline:
			points = p.Points
		}
	}
	if box.Width() != style.Width || box.Height() != style.Height {
		t.Fatalf("box = %vx%v, want %vx%v", box.Width(), box.Height(), style.Width, style.Height)
	}
	wantX := []float64{0, 50, 100, 150}
	for i, p := range points {
		if p.X-box.Min.X != wantX[i] {
			t.Fatalf("point %d x = %v, want %v", i, p.X-box.Min.X, wantX[i])
		}
	}
	if points[0].Y != box.Max.Y {
		t.Fatalf("min point y = %v, want bottom %v", points[0].Y, box.Max.Y)
	}
	if points[3].Y != box.Min.Y {
		t.Fatalf("max point y = %v, want top %v", points[3].Y, box.Min.Y)
	}
}

func TestPlotSeries_ZeroBaseline(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	style := DefaultStyle()
	style.Baseline = BaselineZero
	PlotSeries(rec, style, view("v", sampling.DefaultFormat, 50, 100))

	for _, p := range rec.Primitives {
		if p.Kind != KindPolyline {
			continue
		}
		// 50 of [0, 100] sits halfway up the 100px box.
		if got := style.Height - p.Points[0].Y; got != 50 {
			t.Fatalf("y of 50 = %v px above bottom, want 50", got)
		}
	}
}

func TestPlotSeries_TextLayout(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	PlotSeries(rec, DefaultStyle(), view("v", sampling.DefaultFormat, 1, 2))

	texts := make([]Primitive, 0, 3)
	for _, p := range rec.Primitives {
		if p.Kind == KindText {
			texts = append(texts, p)
		}
	}
	last, maxLabel, minLabel := texts[0], texts[1], texts[2]

	if last.Pos.X != 200+rec.Gap/2 {
		t.Fatalf("last value x = %v, want right of the box", last.Pos.X)
	}
	if last.Pos.Y != 50-rec.LineHeight/2 {
		t.Fatalf("last value y = %v, want vertically centred", last.Pos.Y)
	}
	if maxLabel.Pos.Y >= minLabel.Pos.Y {
		t.Fatalf("max label y %v not above min label y %v", maxLabel.Pos.Y, minLabel.Pos.Y)
	}
	if maxLabel.Rect.Width() != 200 || minLabel.Rect.Height() != 100 {
		t.Fatalf("corner labels not clipped to the box: %+v", maxLabel.Rect)
	}
}

func TestComputeStatsAndBounds(t *testing.T) {
	t.Parallel()

	st := ComputeStats([]float64{3, -2, 7, 5})
	if st != (Stats{Last: 5, Min: -2, Max: 7}) {
		t.Fatalf("ComputeStats = %+v", st)
	}
	if lo, hi := Bounds(st, BaselineMin); lo != -2 || hi != 7 {
		t.Fatalf("Bounds(min) = %v,%v, want -2,7", lo, hi)
	}
	if lo, hi := Bounds(Stats{Min: 3, Max: 9}, BaselineZero); lo != 0 || hi != 9 {
		t.Fatalf("Bounds(zero) = %v,%v, want 0,9", lo, hi)
	}
	if lo, hi := Bounds(Stats{Min: -9, Max: -3}, BaselineZero); lo != -9 || hi != 0 {
		t.Fatalf("Bounds(zero, negative) = %v,%v, want -9,0", lo, hi)
	}
}

func TestPlotPoints_FlatSeriesOnBaseline(t *testing.T) {
	t.Parallel()

	box := RectFromMinSize(Vec2{10, 10}, Vec2{200, 100})
	for _, p := range PlotPoints([]float64{5, 5, 5}, box, 5, 5) {
		if p.Y != box.Max.Y {
			t.Fatalf("flat point y = %v, want %v", p.Y, box.Max.Y)
		}
	}
}

func TestRenderWindow_SectionsAndHeight(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	style := DefaultStyle()
	a := view("a", sampling.DefaultFormat, 1, 2)
	b := view("b", sampling.DefaultFormat)
	open := true

	RenderWindow(rec, &open, style, []sampling.SeriesView{a, b})

	if len(rec.Windows) != 1 || rec.Windows[0].Title != "Diagnostics" {
		t.Fatalf("windows = %+v, want one Diagnostics window", rec.Windows)
	}
	if got, want := rec.Windows[0].DefaultHeight, 2*SeriesHeight(style); got != want {
		t.Fatalf("default height = %v, want %v", got, want)
	}
	if len(rec.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(rec.Sections))
	}
	if got := rec.Count(KindRect, b.ID.String()); got != 0 {
		t.Fatalf("empty series drew %d rects, want 0", got)
	}
	if got := rec.Count(KindRect, a.ID.String()); got != 1 {
		t.Fatalf("series a drew %d rects, want 1", got)
	}
}

func TestRenderWindow_ClosedDoesNoWork(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	open := false
	RenderWindow(rec, &open, DefaultStyle(), []sampling.SeriesView{view("a", sampling.DefaultFormat, 1)})

	if len(rec.Sections) != 0 || len(rec.Primitives) != 0 {
		t.Fatalf("closed window rendered %d sections, %d primitives", len(rec.Sections), len(rec.Primitives))
	}
}

func TestRenderWindow_CollapsedSectionSkipsBody(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	a := view("a", sampling.DefaultFormat, 1)
	rec.SetCollapsed(a.ID.String(), true)
	RenderWindow(rec, nil, DefaultStyle(), []sampling.SeriesView{a})

	if len(rec.Sections) != 1 || len(rec.Primitives) != 0 {
		t.Fatalf("collapsed section: sections=%d primitives=%d, want 1/0", len(rec.Sections), len(rec.Primitives))
	}
}

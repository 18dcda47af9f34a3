package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/diagviz/internal/diag"
	"github.com/tinytelemetry/diagviz/internal/model"
	"github.com/tinytelemetry/diagviz/internal/visualizer"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestPage(t *testing.T) (*DiagnosticsPage, *diag.Registry, *visualizer.Visualizer) {
	t.Helper()

	registry := diag.NewRegistry()
	frames := diag.RegisterFrameTime(registry)
	vis := visualizer.NewPlugin().Interval(0).Build()
	p := NewDiagnosticsPage(vis, registry, frames, nil, PageOptions{FrameInterval: 16 * time.Millisecond})
	p.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return p, registry, vis
}

func TestDiagnosticsPage_StepPopulatesSections(t *testing.T) {
	t.Parallel()

	p, _, vis := newTestPage(t)
	p.Step(16 * time.Millisecond)

	if got := len(vis.Series()); got != 3 {
		t.Fatalf("series = %d, want 3", got)
	}
	ids := p.Layout().Sections()
	if len(ids) != 3 {
		t.Fatalf("sections = %d, want 3", len(ids))
	}
	if got := p.Layout().Focused(); got != ids[0] {
		t.Fatalf("focus = %q, want first section %q", got, ids[0])
	}
}

func TestDiagnosticsPage_FrameMsgUsesFrameIntervalFirst(t *testing.T) {
	t.Parallel()

	registry := diag.NewRegistry()
	frames := diag.RegisterFrameTime(registry)
	vis := visualizer.NewPlugin().Interval(0).Build()
	p := NewDiagnosticsPage(vis, registry, frames, nil, PageOptions{FrameInterval: 20 * time.Millisecond})

	now := time.Now()
	if cmd, _ := p.Update(FrameMsg(now)); cmd == nil {
		t.Fatal("frame should schedule the next tick")
	}
	if got := frames.Frames(); got != 1 {
		t.Fatalf("frames = %d, want 1", got)
	}
	ft, ok := vis.Store().Lookup(model.FrameTime)
	if !ok {
		t.Fatal("frame_time series missing")
	}
	if got, ok := ft.History.Last(); !ok || got != 0.02 {
		t.Fatalf("first frame time = %v, want 0.02", got)
	}

	p.Update(FrameMsg(now.Add(10 * time.Millisecond)))
	if got, ok := ft.History.Last(); !ok || got < 0.0149 || got > 0.0151 {
		t.Fatalf("second frame average = %v, want about 0.015", got)
	}
}

func TestDiagnosticsPage_FocusMovesAndClamps(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestPage(t)
	p.Step(16 * time.Millisecond)
	ids := p.Layout().Sections()

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	p.Update(down)
	if got := p.Layout().Focused(); got != ids[1] {
		t.Fatalf("focus = %q, want %q", got, ids[1])
	}
	p.Update(down)
	p.Update(down)
	if got := p.Layout().Focused(); got != ids[2] {
		t.Fatalf("focus = %q, want last section", got)
	}
	p.Update(up)
	p.Update(up)
	p.Update(up)
	if got := p.Layout().Focused(); got != ids[0] {
		t.Fatalf("focus = %q, want first section", got)
	}
}

func TestDiagnosticsPage_ToggleSection(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestPage(t)
	p.Step(16 * time.Millisecond)
	focused := p.Layout().Focused()

	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !p.Layout().Collapsed(focused) {
		t.Fatal("enter should collapse the focused section")
	}
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Layout().Collapsed(focused) {
		t.Fatal("enter should expand the focused section again")
	}
}

func TestDiagnosticsPage_DisableSeriesEvictsIt(t *testing.T) {
	t.Parallel()

	p, registry, vis := newTestPage(t)
	p.Step(16 * time.Millisecond)
	focused := p.Layout().Focused()

	p.Update(runeKey("x"))
	p.Step(16 * time.Millisecond)

	if got := len(vis.Series()); got != 2 {
		t.Fatalf("series = %d, want 2 after disabling one", got)
	}
	for _, id := range p.Layout().Sections() {
		if id == focused {
			t.Fatalf("disabled series %q still drawn", id)
		}
	}

	p.Update(runeKey("r"))
	p.Step(16 * time.Millisecond)
	if got := len(vis.Series()); got != 3 {
		t.Fatalf("series = %d, want 3 after re-enabling", got)
	}
	if registry.Len() != 3 {
		t.Fatalf("registry = %d, want 3", registry.Len())
	}
}

func TestDiagnosticsPage_ToggleWindow(t *testing.T) {
	t.Parallel()

	p, _, vis := newTestPage(t)
	p.Step(16 * time.Millisecond)

	p.Update(runeKey("d"))
	if vis.IsOpen() {
		t.Fatal("d should close the window")
	}
	if got := p.View(120, 60); !strings.Contains(got, "window closed") {
		t.Fatalf("view = %q, want closed hint", got)
	}

	p.Update(runeKey("d"))
	if !vis.IsOpen() {
		t.Fatal("d should reopen the window")
	}
	if got := p.View(120, 60); !strings.Contains(got, model.WindowTitle) {
		t.Fatalf("view missing window title:\n%s", got)
	}
}

func TestDiagnosticsPage_RuntimeMsg(t *testing.T) {
	t.Parallel()

	registry := diag.NewRegistry()
	diag.RegisterRuntime(registry)
	vis := visualizer.NewPlugin().Interval(0).Build()
	p := NewDiagnosticsPage(vis, registry, nil, nil, PageOptions{})

	p.Update(RuntimeMsg{Goroutines: 7, HeapAllocMiB: 2, GCCycles: 3})
	p.Step(16 * time.Millisecond)

	s, ok := vis.Store().Lookup(model.Goroutines)
	if !ok {
		t.Fatal("goroutines series missing")
	}
	if got, ok := s.History.Last(); !ok || got != 7 {
		t.Fatalf("goroutines = %v, want 7", got)
	}
}

func TestDiagnosticsPage_QuitKey(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestPage(t)
	cmd, _ := p.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestDiagnosticsPage_ViewBeforeSize(t *testing.T) {
	t.Parallel()

	registry := diag.NewRegistry()
	vis := visualizer.NewPlugin().Build()
	p := NewDiagnosticsPage(vis, registry, nil, nil, PageOptions{})
	if got := p.View(0, 0); got != "Initializing..." {
		t.Fatalf("view = %q, want Initializing...", got)
	}
}

func TestDiagnosticsPage_WaitingWithoutSeries(t *testing.T) {
	t.Parallel()

	registry := diag.NewRegistry()
	vis := visualizer.NewPlugin().Build()
	p := NewDiagnosticsPage(vis, registry, nil, nil, PageOptions{})
	p.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if got := p.View(80, 24); !strings.Contains(got, "Waiting for diagnostics") {
		t.Fatalf("view = %q, want waiting hint", got)
	}
}

func TestApp_RoutesToDiagnosticsPage(t *testing.T) {
	t.Parallel()

	registry := diag.NewRegistry()
	vis := visualizer.NewPlugin().Build()
	app := NewApp(NewDiagnosticsPage(vis, registry, nil, nil, PageOptions{}))

	if got := app.ActivePage(); got != DiagnosticsPageID {
		t.Fatalf("active page = %q, want %q", got, DiagnosticsPageID)
	}
	app.Update(runeKey("d"))
	if vis.IsOpen() {
		t.Fatal("key was not routed to the page")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should return tea.Quit")
	}
}

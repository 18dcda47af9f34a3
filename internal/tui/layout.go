package tui

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/diagviz/internal/chart"
)

const previewWidth = 20

// sectionLine records where a section header landed in the last frame.
type sectionLine struct {
	ID    string
	Title string
	Line  int
}

// Layout is the terminal chart.Host. It lays sections out top to bottom
// as rows of text and remembers which sections the user collapsed.
type Layout struct {
	cellW, cellH float64

	collapsed map[string]bool
	focusID   string

	// Last frame.
	title         string
	open          bool
	defaultHeight float64
	sections      []sectionLine
	lines         []string
}

// NewLayout creates a Layout mapping cellW x cellH pixels onto one cell.
func NewLayout(cellW, cellH float64) *Layout {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Layout{
		cellW:     cellW,
		cellH:     cellH,
		collapsed: make(map[string]bool),
	}
}

// Window implements chart.Host.
func (l *Layout) Window(title string, open *bool, defaultHeight float64, body func(chart.UI)) {
	l.title = title
	l.open = open == nil || *open
	l.defaultHeight = defaultHeight
	l.sections = l.sections[:0]
	l.lines = l.lines[:0]
	if !l.open {
		return
	}

	ui := &layoutUI{layout: l}
	body(ui)
	ui.flush()
	l.forgetUnseen()
}

// forgetUnseen drops collapse state of sections the last open frame did
// not draw.
func (l *Layout) forgetUnseen() {
	seen := make(map[string]struct{}, len(l.sections))
	for _, s := range l.sections {
		seen[s.ID] = struct{}{}
	}
	for id := range l.collapsed {
		if _, ok := seen[id]; !ok {
			delete(l.collapsed, id)
		}
	}
}

// Open reports whether the last frame drew an open window.
func (l *Layout) Open() bool { return l.open }

// Title returns the last window title.
func (l *Layout) Title() string { return l.title }

// Rows is the window's preferred height in rows.
func (l *Layout) Rows() int {
	rows := int(l.defaultHeight / l.cellH)
	return max(rows, 1)
}

// Lines returns the rows drawn by the last frame.
func (l *Layout) Lines() []string { return l.lines }

// Content joins the last frame's rows.
func (l *Layout) Content() string { return strings.Join(l.lines, "\n") }

// Sections lists the section IDs of the last frame in order.
func (l *Layout) Sections() []string {
	ids := make([]string, len(l.sections))
	for i, s := range l.sections {
		ids[i] = s.ID
	}
	return ids
}

// HeaderLine returns the row of a section header in the last frame.
func (l *Layout) HeaderLine(id string) (int, bool) {
	for _, s := range l.sections {
		if s.ID == id {
			return s.Line, true
		}
	}
	return 0, false
}

// Focus highlights the header of the section with the given ID.
func (l *Layout) Focus(id string) { l.focusID = id }

// Focused returns the highlighted section ID.
func (l *Layout) Focused() string { return l.focusID }

// Collapsed reports whether the section is collapsed. Unknown sections
// report false.
func (l *Layout) Collapsed(id string) bool { return l.collapsed[id] }

// SetCollapsed forces a section state.
func (l *Layout) SetCollapsed(id string, collapsed bool) { l.collapsed[id] = collapsed }

// ToggleSection flips a section and returns whether it is now collapsed.
func (l *Layout) ToggleSection(id string) bool {
	l.collapsed[id] = !l.collapsed[id]
	return l.collapsed[id]
}

// layoutUI is the chart.UI handed to a window body for one frame.
type layoutUI struct {
	layout  *Layout
	surface *cellSurface
}

func (u *layoutUI) flush() {
	if u.surface == nil {
		return
	}
	u.layout.lines = append(u.layout.lines, strings.Split(strings.TrimSuffix(u.surface.View(), "\n"), "\n")...)
	u.surface = nil
}

func (u *layoutUI) Spacing() float64 { return u.layout.cellW }

// Allocate starts a fresh canvas below everything drawn so far. The
// returned rect is local to that canvas.
func (u *layoutUI) Allocate(size chart.Vec2) chart.Rect {
	u.flush()
	u.surface = newCellSurface(size, u.layout.cellW, u.layout.cellH)
	return chart.RectFromMinSize(chart.Vec2{}, size)
}

func (u *layoutUI) Section(opts chart.SectionOptions, body func(chart.UI)) {
	u.flush()
	l := u.layout

	collapsed, seen := l.collapsed[opts.ID]
	if !seen {
		collapsed = !opts.DefaultOpen
		l.collapsed[opts.ID] = collapsed
	}

	l.sections = append(l.sections, sectionLine{ID: opts.ID, Title: opts.Title, Line: len(l.lines)})
	l.lines = append(l.lines, u.header(opts, collapsed))

	if collapsed {
		return
	}
	body(u)
	u.flush()
}

func (u *layoutUI) header(opts chart.SectionOptions, collapsed bool) string {
	arrow := "▾ "
	if collapsed {
		arrow = "▸ "
	}
	style := sectionStyle
	if opts.ID == u.layout.focusID {
		style = focusedSectionStyle
	}
	h := style.Render(arrow + opts.Title)
	if collapsed && len(opts.Preview) > 0 {
		h += "  " + previewStyle.Render(renderPreview(opts.Preview))
	}
	return h
}

// renderPreview draws the most recent values as a one-row sparkline.
func renderPreview(values []float64) string {
	if len(values) > previewWidth {
		values = values[len(values)-previewWidth:]
	}
	sl := sparkline.New(previewWidth, 1)
	sl.PushAll(values)
	sl.Draw()
	return sl.View()
}

func (u *layoutUI) MeasureText(text string) chart.Vec2 {
	return chart.Vec2{X: float64(lipgloss.Width(text)) * u.layout.cellW, Y: u.layout.cellH}
}

func (u *layoutUI) Text(pos chart.Vec2, text string, color chart.Color, clip chart.Rect) {
	if u.surface != nil {
		u.surface.Text(pos, text, color, clip)
	}
}

func (u *layoutUI) Rect(r chart.Rect, stroke chart.Stroke) {
	if u.surface != nil {
		u.surface.Rect(r, stroke)
	}
}

func (u *layoutUI) Polyline(points []chart.Vec2, stroke chart.Stroke) {
	if u.surface != nil {
		u.surface.Polyline(points, stroke)
	}
}

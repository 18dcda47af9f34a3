package chart

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PrimitiveKind tags a recorded draw call.
type PrimitiveKind int

const (
	KindText PrimitiveKind = iota
	KindRect
	KindPolyline
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindPolyline:
		return "polyline"
	default:
		return "text"
	}
}

// Primitive is one recorded draw call.
type Primitive struct {
	Kind    PrimitiveKind
	Section string // ID of the enclosing section
	Rect    Rect   // rect bounds, or the clip of a text
	Points  []Vec2
	Pos     Vec2
	Text    string
	Color   Color
	Stroke  Stroke
}

// WindowRecord is one recorded Window call.
type WindowRecord struct {
	Title         string
	Open          bool
	DefaultHeight float64
}

// Recorder is a headless Host and UI that records draw calls. Text is
// measured with a fixed glyph size and allocations stack vertically.
type Recorder struct {
	GlyphWidth float64
	LineHeight float64
	Gap        float64

	Windows    []WindowRecord
	Sections   []string
	Primitives []Primitive

	collapsed map[string]bool
	cursorY   float64
	section   string
}

// NewRecorder returns a Recorder with a 7x14 glyph and 8px spacing.
func NewRecorder() *Recorder {
	return &Recorder{GlyphWidth: 7, LineHeight: 14, Gap: 8, collapsed: make(map[string]bool)}
}

// SetCollapsed forces a section open or closed regardless of its default.
func (r *Recorder) SetCollapsed(id string, collapsed bool) {
	if r.collapsed == nil {
		r.collapsed = make(map[string]bool)
	}
	r.collapsed[id] = collapsed
}

// Reset drops everything recorded so far but keeps collapse state.
func (r *Recorder) Reset() {
	r.Windows = nil
	r.Sections = nil
	r.Primitives = nil
	r.cursorY = 0
	r.section = ""
}

func (r *Recorder) Window(title string, open *bool, defaultHeight float64, body func(UI)) {
	isOpen := open == nil || *open
	r.Windows = append(r.Windows, WindowRecord{Title: title, Open: isOpen, DefaultHeight: defaultHeight})
	if !isOpen {
		return
	}
	body(r)
}

func (r *Recorder) Section(opts SectionOptions, body func(UI)) {
	r.Sections = append(r.Sections, opts.ID)
	r.cursorY += r.LineHeight + r.Gap
	collapsed, ok := r.collapsed[opts.ID]
	if !ok {
		collapsed = !opts.DefaultOpen
	}
	if collapsed {
		return
	}
	prev := r.section
	r.section = opts.ID
	body(r)
	r.section = prev
}

func (r *Recorder) Spacing() float64 { return r.Gap }

func (r *Recorder) Allocate(size Vec2) Rect {
	rect := RectFromMinSize(Vec2{0, r.cursorY}, size)
	r.cursorY += size.Y + r.Gap
	return rect
}

func (r *Recorder) MeasureText(text string) Vec2 {
	return Vec2{float64(utf8.RuneCountInString(text)) * r.GlyphWidth, r.LineHeight}
}

func (r *Recorder) Text(pos Vec2, text string, color Color, clip Rect) {
	r.Primitives = append(r.Primitives, Primitive{Kind: KindText, Section: r.section, Pos: pos, Text: text, Color: color, Rect: clip})
}

func (r *Recorder) Rect(rect Rect, stroke Stroke) {
	r.Primitives = append(r.Primitives, Primitive{Kind: KindRect, Section: r.section, Rect: rect, Stroke: stroke})
}

func (r *Recorder) Polyline(points []Vec2, stroke Stroke) {
	pts := append([]Vec2(nil), points...)
	r.Primitives = append(r.Primitives, Primitive{Kind: KindPolyline, Section: r.section, Points: pts, Stroke: stroke})
}

// Count returns how many primitives of kind were recorded in section; an
// empty section counts all.
func (r *Recorder) Count(kind PrimitiveKind, section string) int {
	n := 0
	for _, p := range r.Primitives {
		if p.Kind == kind && (section == "" || p.Section == section) {
			n++
		}
	}
	return n
}

// Texts returns the recorded text of section in draw order.
func (r *Recorder) Texts(section string) []string {
	var out []string
	for _, p := range r.Primitives {
		if p.Kind == KindText && (section == "" || p.Section == section) {
			out = append(out, p.Text)
		}
	}
	return out
}

// Dump writes one line per recorded call.
func (r *Recorder) Dump(w io.Writer) error {
	var b strings.Builder
	for _, win := range r.Windows {
		fmt.Fprintf(&b, "window %q open=%t height=%.0f\n", win.Title, win.Open, win.DefaultHeight)
	}
	for _, p := range r.Primitives {
		switch p.Kind {
		case KindText:
			fmt.Fprintf(&b, "%s text (%.1f,%.1f) %q\n", p.Section, p.Pos.X, p.Pos.Y, p.Text)
		case KindRect:
			fmt.Fprintf(&b, "%s rect (%.1f,%.1f)-(%.1f,%.1f)\n", p.Section, p.Rect.Min.X, p.Rect.Min.Y, p.Rect.Max.X, p.Rect.Max.Y)
		case KindPolyline:
			fmt.Fprintf(&b, "%s polyline %d points\n", p.Section, len(p.Points))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

package chart

// Surface is an immediate-mode drawing context in pixel coordinates.
type Surface interface {
	MeasureText(text string) Vec2
	// Text draws text with its top-left corner at pos, clipped to clip.
	Text(pos Vec2, text string, color Color, clip Rect)
	// Rect strokes an unfilled rectangle.
	Rect(r Rect, stroke Stroke)
	Polyline(points []Vec2, stroke Stroke)
}

// SectionOptions describes a collapsible section.
type SectionOptions struct {
	ID          string // collapse state key
	Title       string
	DefaultOpen bool
	Preview     []float64 // optional summary shown while collapsed
}

// UI is a Surface inside a layout.
type UI interface {
	Surface
	// Spacing is the horizontal gap between items.
	Spacing() float64
	// Allocate reserves size in the layout and returns where to draw.
	Allocate(size Vec2) Rect
	// Section runs body only while the section is expanded.
	Section(opts SectionOptions, body func(UI))
}

// Host lays out top-level windows.
type Host interface {
	// Window runs body inside a scrollable titled window. When open is
	// false the host skips body entirely.
	Window(title string, open *bool, defaultHeight float64, body func(UI))
}

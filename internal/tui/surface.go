package tui

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/diagviz/internal/chart"
)

// cellSurface draws chart primitives onto a terminal canvas. Pixel
// coordinates are mapped to cells by the cell size.
type cellSurface struct {
	canvas       canvas.Model
	cols, rows   int
	cellW, cellH float64
	// border marks cells stroked by Rect; polylines leave them alone.
	border []bool
	// inner is the cell area inside the last Rect; polylines are clamped
	// into it.
	inner    [4]int // x0, y0, x1, y1
	hasInner bool
}

func newCellSurface(size chart.Vec2, cellW, cellH float64) *cellSurface {
	cols := int(math.Ceil(size.X/cellW)) + 1
	rows := int(math.Ceil(size.Y/cellH)) + 1
	s := &cellSurface{canvas: canvas.New(cols, rows), cols: cols, rows: rows, cellW: cellW, cellH: cellH, border: make([]bool, cols*rows)}
	blank := canvas.NewCellWithStyle(' ', lipgloss.NewStyle())
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.canvas.SetCell(canvas.Point{X: x, Y: y}, blank)
		}
	}
	return s
}

func (s *cellSurface) set(x, y int, r rune, style lipgloss.Style) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.canvas.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle(r, style))
}

func (s *cellSurface) setBorder(x, y int, r rune, style lipgloss.Style) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.border[y*s.cols+x] = true
	s.set(x, y, r, style)
}

func (s *cellSurface) setLine(x, y int, r rune, style lipgloss.Style) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows || s.border[y*s.cols+x] {
		return
	}
	s.set(x, y, r, style)
}

func colorStyle(c chart.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

func (s *cellSurface) MeasureText(text string) chart.Vec2 {
	return chart.Vec2{X: float64(lipgloss.Width(text)) * s.cellW, Y: s.cellH}
}

// Text places the first glyph in the first cell at or right of pos.X, on
// the row holding the glyph's vertical centre. Cells whose centre falls
// outside clip are skipped.
func (s *cellSurface) Text(pos chart.Vec2, text string, color chart.Color, clip chart.Rect) {
	if !color.Visible() {
		return
	}
	style := colorStyle(color)
	col := int(math.Ceil(pos.X / s.cellW))
	row := int(math.Floor((pos.Y + s.cellH/2) / s.cellH))
	for _, r := range text {
		center := chart.Vec2{X: (float64(col) + 0.5) * s.cellW, Y: (float64(row) + 0.5) * s.cellH}
		if clip.Contains(center) {
			s.set(col, row, r, style)
		}
		col++
	}
}

func (s *cellSurface) Rect(r chart.Rect, stroke chart.Stroke) {
	if !stroke.Visible() {
		return
	}
	style := colorStyle(stroke.Color)
	x0 := int(math.Floor(r.Min.X / s.cellW))
	x1 := int(math.Ceil(r.Max.X / s.cellW))
	y0 := int(math.Floor(r.Min.Y / s.cellH))
	y1 := int(math.Ceil(r.Max.Y / s.cellH))
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		s.setBorder(x, y0, '─', style)
		s.setBorder(x, y1, '─', style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.setBorder(x0, y, '│', style)
		s.setBorder(x1, y, '│', style)
	}
	s.setBorder(x0, y0, '┌', style)
	s.setBorder(x1, y0, '┐', style)
	s.setBorder(x0, y1, '└', style)
	s.setBorder(x1, y1, '┘', style)
	if x1-x0 >= 2 && y1-y0 >= 2 {
		s.inner = [4]int{x0 + 1, y0 + 1, x1 - 1, y1 - 1}
		s.hasInner = true
	}
}

func (s *cellSurface) cell(p chart.Vec2) (int, int) {
	x, y := int(math.Round(p.X/s.cellW)), int(math.Round(p.Y/s.cellH))
	if s.hasInner {
		x = min(max(x, s.inner[0]), s.inner[2])
		y = min(max(y, s.inner[1]), s.inner[3])
	}
	return x, y
}

// Polyline joins consecutive points with Bresenham segments.
func (s *cellSurface) Polyline(points []chart.Vec2, stroke chart.Stroke) {
	if !stroke.Visible() || len(points) == 0 {
		return
	}
	style := colorStyle(stroke.Color)
	if len(points) == 1 {
		x, y := s.cell(points[0])
		s.setLine(x, y, '•', style)
		return
	}
	for i := 1; i < len(points); i++ {
		x0, y0 := s.cell(points[i-1])
		x1, y1 := s.cell(points[i])
		s.segment(x0, y0, x1, y1, style)
	}
}

func (s *cellSurface) segment(x0, y0, x1, y1 int, style lipgloss.Style) {
	r := segmentRune(x1-x0, y1-y0)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy
	for {
		s.setLine(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

// segmentRune picks a line glyph for a step of (dx, dy) cells; y grows
// downward.
func segmentRune(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '•'
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s *cellSurface) View() string { return s.canvas.View() }

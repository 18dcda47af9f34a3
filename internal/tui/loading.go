package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderWaitingPlaceholder fills an empty window while no series has been
// sampled yet. The frame is picked from now so it animates on re-render.
func renderWaitingPlaceholder(width, height int, now time.Time) string {
	frame := spinnerFrames[now.UnixMilli()/120%int64(len(spinnerFrames))]
	text := helpStyle.Render(frame + " Waiting for diagnostics...")
	return lipgloss.Place(max(width, 1), max(height, 1), lipgloss.Center, lipgloss.Center, text)
}

package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorNavy  = lipgloss.Color("#1B2B4B")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorGray  = lipgloss.Color("244")
	ColorBlue  = lipgloss.Color("39")
	ColorGreen = lipgloss.Color("#49E209")
)

var (
	windowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBlue)

	windowTitleStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	focusedSectionStyle = lipgloss.NewStyle().
				Foreground(ColorWhite).
				Background(ColorNavy).
				Bold(true)

	previewStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)
)

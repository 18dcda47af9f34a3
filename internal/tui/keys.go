package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the diagnostics page key bindings with built-in help text.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	ToggleWindow  key.Binding
	Up            key.Binding
	Down          key.Binding
	ToggleSection key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Home          key.Binding

	ToggleSeries key.Binding
	EnableAll    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),

		ToggleWindow: key.NewBinding(
			key.WithKeys("d", "f12"),
			key.WithHelp("d", "show/hide window"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev series"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next series"),
		),
		ToggleSection: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand/collapse"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "pagedown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "go to top"),
		),

		ToggleSeries: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "disable series"),
		),
		EnableAll: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-enable all"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleWindow, k.ToggleSection, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleWindow, k.ToggleSection, k.Up, k.Down},
		{k.PageUp, k.PageDown, k.Home},
		{k.ToggleSeries, k.EnableAll, k.Help, k.Quit},
	}
}

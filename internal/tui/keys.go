package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap binds keys to the on-screen controls.
type keyMap struct {
	StartStop key.Binding
	LapReset  key.Binding
	Theme     key.Binding
	Up        key.Binding
	Down      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		StartStop: key.NewBinding(
			key.WithKeys(" ", "space", "s"),
			key.WithHelp("space", "start/stop"),
		),
		LapReset: key.NewBinding(
			key.WithKeys("l", "enter"),
			key.WithHelp("l", "lap/reset"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "newer laps"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "older laps"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.LapReset, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.LapReset},
		{k.Up, k.Down},
		{k.Theme, k.Help, k.Quit},
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.mounted {
			return m, nil
		}
		m.syncLaps()
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if group := m.buttonGroup(); msg.Width < group.MinWidth() {
			m.log.Warn("terminal too narrow for controls, clicks disabled")
		}
		m.syncLaps()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.StartStop):
		m.press(targetRight)
	case key.Matches(msg, m.keys.LapReset):
		m.press(targetLeft)
	case key.Matches(msg, m.keys.Theme):
		m.press(targetTheme)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Up):
		m.laps.LineUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.laps.LineDown(1)
		return m, nil
	default:
		return m, nil
	}

	m.syncLaps()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.laps.LineUp(1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.laps.LineDown(1)
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	if m.press(m.render().hitTest(msg.X, msg.Y)) {
		m.syncLaps()
	}
	return m, nil
}

// press activates a control the same way a click on it would.
func (m *Model) press(t target) bool {
	switch t {
	case targetLeft:
		return m.LeftButton().Press()
	case targetRight:
		return m.RightButton().Press()
	case targetTheme:
		m.ToggleTheme()
		return true
	default:
		return false
	}
}

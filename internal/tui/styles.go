package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stopwatch/internal/components"
)

func timeStyle(theme components.Theme) lipgloss.Style {
	return theme.Text().Bold(true)
}

func lapRowStyle(theme components.Theme, width int) lipgloss.Style {
	return theme.Text().
		Width(width).
		PaddingLeft(lapMargin).
		PaddingRight(lapMargin)
}

func helpStyles(theme components.Theme) help.Styles {
	key := theme.Text().Bold(true)
	desc := theme.MutedText()
	sep := theme.MutedText().Faint(true)
	return help.Styles{
		Ellipsis:       sep,
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: sep,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  sep,
	}
}

func (m Model) helpHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stopwatch/internal/components"
	"github.com/alexisbeaulieu97/stopwatch/internal/stopwatch"
)

const (
	headerHeight        = 1
	displayHeight       = 5
	displayBlockHeight  = displayHeight + 1
	controlsHeight      = 5
	controlsBlockHeight = controlsHeight + 1
	glyphMargin         = 2
	lapMargin           = 4
)

// target is an interactive region of the screen.
type target int

const (
	targetNone target = iota
	targetTheme
	targetLeft
	targetRight
)

type region struct {
	target target
	x0, x1 int
	y0, y1 int
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// frame is one rendered screen plus the clickable regions inside it.
type frame struct {
	view    string
	regions []region
}

func (f frame) hitTest(x, y int) target {
	for _, r := range f.regions {
		if r.contains(x, y) {
			return r.target
		}
	}
	return targetNone
}

// View renders the current state of the model.
func (m Model) View() string {
	return m.render().view
}

func (m Model) render() frame {
	theme := components.ThemeFor(m.mode)
	w := m.width
	var regions []region

	header, glyph := renderHeader(theme, w)
	regions = append(regions, region{target: targetTheme, x0: glyph.Start, x1: glyph.End, y0: 0, y1: headerHeight})

	display := theme.Divider().Width(w).Render(
		lipgloss.Place(w, displayHeight, lipgloss.Center, lipgloss.Center,
			timeStyle(theme).Render(stopwatch.FormatTime(m.sw.CurrentTime())),
			lipgloss.WithWhitespaceBackground(theme.Palette.Surface.Base),
		),
	)

	group := m.buttonGroup()
	buttons, spans := group.View(theme)
	bw, bh := lipgloss.Width(buttons), lipgloss.Height(buttons)
	left := (w - bw) / 2
	if left < 0 {
		left = 0
	}
	top := (controlsHeight - bh) / 2
	controls := theme.Divider().Width(w).Render(
		theme.Text().
			Width(w).
			Height(controlsHeight).
			PaddingLeft(left).
			PaddingTop(top).
			Render(buttons),
	)

	controlsY := headerHeight + displayBlockHeight + top
	targets := []target{targetLeft, targetRight}
	for i, span := range spans {
		regions = append(regions, region{
			target: targets[i],
			x0:     left + span.Start,
			x1:     left + span.End,
			y0:     controlsY,
			y1:     controlsY + bh,
		})
	}

	h := m.help
	h.Styles = helpStyles(theme)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		display,
		controls,
		m.laps.View(),
		theme.MutedText().Width(w).Render(h.View(m.keys)),
	)

	return frame{
		view:    theme.Root().Width(w).Height(m.height).Render(body),
		regions: regions,
	}
}

// renderHeader places the theme glyph at the top right and reports its columns.
func renderHeader(theme components.Theme, width int) (string, components.Span) {
	gw := lipgloss.Width(theme.Glyph)
	start := width - glyphMargin - gw
	if start < 0 {
		start = 0
	}
	line := strings.Repeat(" ", start) + theme.Glyph + strings.Repeat(" ", glyphMargin)
	return theme.Text().Width(width).Render(line), components.Span{Start: start, End: start + gw}
}

// renderLapRows draws one "Lap N ... HH:MM:SS.mmm" line per lap, newest
// first. The first row is the lap in progress and is muted.
func renderLapRows(theme components.Theme, rows []stopwatch.LapRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	inner := width - 2*lapMargin
	if inner < 1 {
		inner = width
	}
	style := lapRowStyle(theme, width)

	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		label := row.Label()
		duration := stopwatch.FormatTime(row.Duration)
		gap := inner - lipgloss.Width(label) - lipgloss.Width(duration)
		if gap < 1 {
			gap = 1
		}
		rowStyle := style
		if i == 0 {
			rowStyle = style.Foreground(theme.Palette.Muted)
		}
		lines = append(lines, rowStyle.Render(label+strings.Repeat(" ", gap)+duration))
	}
	return strings.Join(lines, "\n")
}

func (m Model) buttonGroup() *components.ButtonGroup {
	return components.NewButtonGroup(m.LeftButton(), m.RightButton()).
		WithSpacing(buttonSpacing(m.width)).
		WithMaxWidth(m.width)
}

func buttonSpacing(width int) int {
	spacing := width / 4
	if spacing < 2 {
		return 2
	}
	return spacing
}

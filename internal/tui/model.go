package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/alexisbeaulieu97/stopwatch/internal/components"
	"github.com/alexisbeaulieu97/stopwatch/internal/logger"
	"github.com/alexisbeaulieu97/stopwatch/internal/stopwatch"
)

// refreshRate is how often, per second, the display re-derives the current time.
const refreshRate = 30

const refreshInterval = time.Second / refreshRate

const (
	defaultWidth  = 60
	defaultHeight = 24
)

// tickMsg is a redraw tick. It never changes stopwatch state.
type tickMsg time.Time

// Options configures a new Model.
type Options struct {
	Clock  clockwork.Clock
	Theme  components.ThemeMode
	Logger *logger.Logger
}

// Model is the Bubbletea model for the stopwatch display.
type Model struct {
	sw     *stopwatch.Stopwatch
	log    *logger.Logger
	mode   components.ThemeMode
	keys   keyMap
	help   help.Model
	laps   viewport.Model
	width  int
	height int

	// mounted is cleared on quit so the refresh loop stops rescheduling.
	mounted bool
}

// NewModel constructs a mounted stopwatch display.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var sw *stopwatch.Stopwatch
	swOpts := []stopwatch.Option{
		stopwatch.WithNotify(func(e stopwatch.Event) {
			fields := map[string]any{
				"kind":       string(e.Kind),
				"elapsed_ms": e.Elapsed.Milliseconds(),
				"laps":       e.Laps,
			}
			if e.Kind == stopwatch.EventLap {
				if done := stopwatch.CompletedLaps(sw.Boundaries(), e.Elapsed); len(done) > 0 {
					fields["lap_ms"] = done[0].Duration.Milliseconds()
				}
			}
			log.Event("stopwatch event", fields)
		}),
	}
	if opts.Clock != nil {
		swOpts = append(swOpts, stopwatch.WithClock(opts.Clock))
	}

	sw = stopwatch.New(swOpts...)
	m := Model{
		sw:      sw,
		log:     log,
		mode:    opts.Theme,
		keys:    defaultKeyMap(),
		help:    help.New(),
		laps:    viewport.New(defaultWidth, 1),
		width:   defaultWidth,
		height:  defaultHeight,
		mounted: true,
	}
	m.resize()
	m.syncLaps()
	return m
}

// Init starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("stopwatch"), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Stopwatch exposes the underlying timing state.
func (m Model) Stopwatch() *stopwatch.Stopwatch {
	return m.sw
}

// Theme returns the active theme mode.
func (m Model) Theme() components.ThemeMode {
	return m.mode
}

// Mounted reports whether the refresh loop is still live.
func (m Model) Mounted() bool {
	return m.mounted
}

// ToggleTheme flips between light and dark.
func (m *Model) ToggleTheme() {
	m.mode = m.mode.Toggle()
	m.log.Event("theme toggled", map[string]any{"theme": m.mode.String()})
}

// LeftButton is Reset when the stopwatch is stopped with time on it,
// otherwise Lap, enabled only while running.
func (m Model) LeftButton() components.Button {
	sw := m.sw
	if sw.ShowReset() {
		return components.NewButton("Reset", components.ButtonGray, func() { sw.Reset() })
	}
	variant := components.ButtonDisabled
	if sw.CanLap() {
		variant = components.ButtonGray
	}
	return components.NewButton("Lap", variant, func() { sw.Lap() })
}

// RightButton is Stop while running and Start otherwise.
func (m Model) RightButton() components.Button {
	sw := m.sw
	if sw.Running() {
		return components.NewButton("Stop", components.ButtonRed, func() { sw.Stop() })
	}
	return components.NewButton("Start", components.ButtonGreen, func() { sw.Start() })
}

func (m *Model) unmount() {
	if !m.mounted {
		return
	}
	m.mounted = false
	m.log.Info("display unmounted")
}

// resize fits the lap list into whatever height the fixed regions leave.
func (m *Model) resize() {
	m.help.Width = m.width
	m.laps.Width = m.width

	used := headerHeight + displayBlockHeight + controlsBlockHeight + m.helpHeight()
	height := m.height - used
	if height < 1 {
		height = 1
	}
	m.laps.Height = height
}

func (m *Model) syncLaps() {
	m.laps.SetContent(renderLapRows(components.ThemeFor(m.mode), m.sw.Laps(), m.width))
}

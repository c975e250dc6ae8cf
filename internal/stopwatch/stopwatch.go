package stopwatch

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// EventKind identifies which operation produced an Event.
type EventKind string

const (
	EventStart EventKind = "start"
	EventStop  EventKind = "stop"
	EventLap   EventKind = "lap"
	EventReset EventKind = "reset"
)

// Event is delivered to the notify callback after a mutation has been applied.
type Event struct {
	Kind    EventKind
	At      time.Time
	Elapsed time.Duration
	Laps    int
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock overrides the wall clock used for all time readings.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Stopwatch) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithNotify registers a callback invoked after every applied mutation.
func WithNotify(fn func(Event)) Option {
	return func(s *Stopwatch) {
		s.notify = fn
	}
}

// Stopwatch tracks accumulated running time and lap boundaries.
// It is not safe for concurrent use; callers drive it from a single UI loop.
type Stopwatch struct {
	clock  clockwork.Clock
	notify func(Event)

	running   bool
	startedAt time.Time
	elapsed   time.Duration
	laps      []time.Duration
}

// New creates a stopped stopwatch at zero.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a running segment. The first start of a session seeds the lap
// sequence with a zero boundary. Returns false if already running.
func (s *Stopwatch) Start() bool {
	if s.running {
		return false
	}
	s.running = true
	s.startedAt = s.clock.Now()
	if len(s.laps) == 0 {
		s.laps = append(s.laps, 0)
	}
	s.emit(EventStart)
	return true
}

// Stop folds the running segment into the accumulated time.
// Returns false if the stopwatch was not running.
func (s *Stopwatch) Stop() bool {
	if !s.running {
		return false
	}
	s.elapsed += s.segment()
	s.running = false
	s.emit(EventStop)
	return true
}

// Lap records the current time as a lap boundary. Only applies while running.
func (s *Stopwatch) Lap() bool {
	if !s.running {
		return false
	}
	s.laps = append(s.laps, s.CurrentTime())
	s.emit(EventLap)
	return true
}

// Reset clears accumulated time and laps. Only applies when CanReset holds.
func (s *Stopwatch) Reset() bool {
	if !s.CanReset() {
		return false
	}
	s.running = false
	s.elapsed = 0
	s.laps = nil
	s.emit(EventReset)
	return true
}

// CurrentTime is the accumulated time plus the live segment, if running.
func (s *Stopwatch) CurrentTime() time.Duration {
	if !s.running {
		return s.elapsed
	}
	return s.elapsed + s.segment()
}

// Running reports whether a segment is in progress.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Boundaries returns a copy of the recorded lap boundaries.
func (s *Stopwatch) Boundaries() []time.Duration {
	out := make([]time.Duration, len(s.laps))
	copy(out, s.laps)
	return out
}

// Laps derives the lap rows shown to the user, newest first.
func (s *Stopwatch) Laps() []LapRow {
	return LapRows(s.laps, s.CurrentTime())
}

// ShowReset reports whether the left control should offer Reset instead of Lap.
func (s *Stopwatch) ShowReset() bool {
	return s.CurrentTime() != 0 && !s.running
}

// CanLap reports whether Lap would apply.
func (s *Stopwatch) CanLap() bool {
	return s.running
}

// CanReset reports whether Reset would apply.
func (s *Stopwatch) CanReset() bool {
	return s.ShowReset()
}

// segment is the live running time, clamped at zero if the clock steps back.
func (s *Stopwatch) segment() time.Duration {
	d := s.clock.Now().Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

func (s *Stopwatch) emit(kind EventKind) {
	if s.notify == nil {
		return
	}
	s.notify(Event{
		Kind:    kind,
		At:      s.clock.Now(),
		Elapsed: s.CurrentTime(),
		Laps:    len(s.laps),
	})
}

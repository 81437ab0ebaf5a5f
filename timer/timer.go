// Package timer measures how long operations take.
package timer

import (
	"errors"
	"time"
)

var (
	// ErrTimerRunning is returned when starting a timer that is already running.
	ErrTimerRunning = errors.New("timer: already running")
	// ErrTimerStopped is returned when stopping a timer that is not running.
	ErrTimerStopped = errors.New("timer: not running")
)

// Clock is the time source handed to code that measures durations.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// Timer accumulates elapsed time over one or more Start/Stop spans.
// The zero value uses SystemClock.
type Timer struct {
	clock   Clock
	started time.Time
	running bool
	total   time.Duration
}

// New returns a stopped timer reading clock. A nil clock means SystemClock.
func New(clock Clock) *Timer {
	return &Timer{clock: clock}
}

func (t *Timer) clockOrDefault() Clock {
	if t.clock == nil {
		return SystemClock{}
	}

	return t.clock
}

// Start begins a span.
func (t *Timer) Start() error {
	if t.running {
		return ErrTimerRunning
	}

	t.started = t.clockOrDefault().Now()
	t.running = true

	return nil
}

// Stop ends the current span and returns its length.
func (t *Timer) Stop() (time.Duration, error) {
	if !t.running {
		return 0, ErrTimerStopped
	}

	span := t.clockOrDefault().Since(t.started)
	t.total += span
	t.running = false

	return span, nil
}

// Running reports whether a span is open.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed is the total of all finished spans plus the open one, if any.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.total + t.clockOrDefault().Since(t.started)
	}

	return t.total
}

// Reset stops the timer and clears the accumulated total.
func (t *Timer) Reset() {
	t.running = false
	t.total = 0
}

// Measure runs fn once and returns how long it took.
func Measure(clock Clock, fn func()) time.Duration {
	if clock == nil {
		clock = SystemClock{}
	}

	start := clock.Now()
	fn()

	return clock.Since(start)
}

// Package timing provides the clock and tracked-timer abstractions used by
// the display surface and the control panel. All delayed work goes through a
// TimerSet so a cancellation pass can clear every pending callback atomically
// before a new animation sequence starts.
package timing

import "time"

// Clock abstracts time for deterministic tests
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable pending callback
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from firing.
	Stop() bool
}

// realClock delegates to the time package
type realClock struct{}

// NewClock returns the wall clock
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

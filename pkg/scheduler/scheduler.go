// Package scheduler provides cancellable one-shot timers for the UI event loop.
//
// Components schedule short-lived delay timers (keyboard-press visual
// feedback, tooltip show/hide delays) through the package-level scheduler.
// The default implementation uses the runtime timer system; hosts that
// require callbacks on their UI thread install a dispatching scheduler at
// startup, and tests install a fake scheduler to control time
// deterministically.
package scheduler

import "time"

// Cancel stops a scheduled callback. Calling it after the callback has
// fired, or calling it more than once, is a safe no-op.
type Cancel func()

// Scheduler schedules one-shot callbacks.
type Scheduler interface {
	// After runs fn once after the given delay, unless cancelled first.
	After(d time.Duration, fn func()) Cancel
}

// Clock provides the current time. Tests can inject a fake clock via
// SetClock to control time-dependent behavior deterministically.
type Clock interface {
	Now() time.Time
}

// realScheduler uses runtime timers. Callbacks fire on a timer goroutine;
// hosts with a dedicated UI thread wrap this with their dispatch mechanism.
type realScheduler struct{}

func (realScheduler) After(d time.Duration, fn func()) Cancel {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var (
	current Scheduler = realScheduler{}
	clock   Clock     = realClock{}
)

// Set replaces the package scheduler. Returns the previous scheduler so
// callers can restore it during cleanup.
func Set(s Scheduler) Scheduler {
	prev := current
	current = s
	return prev
}

// SetClock replaces the package clock. Returns the previous clock so
// callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// After runs fn once after the given delay using the active scheduler.
func After(d time.Duration, fn func()) Cancel {
	return current.After(d, fn)
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

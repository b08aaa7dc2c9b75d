package headlesstest

import (
	"sort"
	"time"

	"github.com/go-drift/headless/pkg/scheduler"
)

// FakeScheduler is a deterministic scheduler and clock for tests. Time
// only moves when Advance is called; due timers fire synchronously in
// due order during the advance.
type FakeScheduler struct {
	now    time.Time
	timers []*fakeTimer
	nextID int
}

type fakeTimer struct {
	id        int
	due       time.Time
	fn        func()
	cancelled bool
}

// NewFakeScheduler returns a scheduler starting at the Unix epoch.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{now: time.Unix(0, 0)}
}

// Now returns the fake current time.
func (f *FakeScheduler) Now() time.Time {
	return f.now
}

// After schedules fn to fire once the clock advances past the delay.
func (f *FakeScheduler) After(d time.Duration, fn func()) scheduler.Cancel {
	timer := &fakeTimer{id: f.nextID, due: f.now.Add(d), fn: fn}
	f.nextID++
	f.timers = append(f.timers, timer)
	return func() { timer.cancelled = true }
}

// HasPending reports whether any timer is still scheduled.
func (f *FakeScheduler) HasPending() bool {
	for _, timer := range f.timers {
		if !timer.cancelled {
			return true
		}
	}
	return false
}

// Advance moves the clock forward, firing every timer that comes due in
// due order. Timers scheduled by fired callbacks run too if they fall
// within the window.
func (f *FakeScheduler) Advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		timer := f.nextDue(target)
		if timer == nil {
			break
		}
		f.now = timer.due
		timer.cancelled = true
		timer.fn()
	}
	f.now = target
	f.compact()
}

func (f *FakeScheduler) nextDue(limit time.Time) *fakeTimer {
	var next *fakeTimer
	for _, timer := range f.timers {
		if timer.cancelled || timer.due.After(limit) {
			continue
		}
		if next == nil || timer.due.Before(next.due) || (timer.due.Equal(next.due) && timer.id < next.id) {
			next = timer
		}
	}
	return next
}

func (f *FakeScheduler) compact() {
	live := f.timers[:0]
	for _, timer := range f.timers {
		if !timer.cancelled {
			live = append(live, timer)
		}
	}
	f.timers = live
	sort.SliceStable(f.timers, func(i, j int) bool {
		return f.timers[i].due.Before(f.timers[j].due)
	})
}

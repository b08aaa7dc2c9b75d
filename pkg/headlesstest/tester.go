// Package headlesstest provides isolated component testing without a
// host: a widget tester that mounts trees against a fake scheduler and a
// private focus manager, finders to locate elements, and helpers to
// inject keyboard and pointer input.
package headlesstest

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/scheduler"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester drives component trees in isolation. It installs a fake
// scheduler and clock plus a fresh focus manager for the test's
// duration, restoring the previous globals on cleanup.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	sched      *FakeScheduler
	manager    *focus.Manager

	prevSched   scheduler.Scheduler
	prevClock   scheduler.Clock
	prevManager *focus.Manager
}

// NewWidgetTester creates a tester with a fresh test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	sched := NewFakeScheduler()
	manager := focus.NewManager()
	t := &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		sched:      sched,
		manager:    manager,
	}
	t.prevSched = scheduler.Set(sched)
	t.prevClock = scheduler.SetClock(sched)
	t.prevManager = focus.SetManager(manager)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the global scheduler, clock,
// and focus manager. Must be called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	scheduler.Set(t.prevSched)
	scheduler.SetClock(t.prevClock)
	focus.SetManager(t.prevManager)
}

// Scheduler returns the fake scheduler for advancing time in tests.
func (t *WidgetTester) Scheduler() *FakeScheduler {
	return t.sched
}

// FocusManager returns the tester's private focus manager.
func (t *WidgetTester) FocusManager() *focus.Manager {
	return t.manager
}

// PumpWidget mounts a widget and flushes the first build. Pumping a
// widget of the same type updates the existing tree in place, so element
// state survives across pumps the way it does across host rebuilds; a
// different widget type replaces the tree.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		existing := t.root.Widget()
		if reflect.TypeOf(existing) == reflect.TypeOf(widget) &&
			reflect.DeepEqual(existing.Key(), widget.Key()) {
			t.root.Update(widget)
			t.root.RebuildIfNeeded()
			return t.Pump()
		}
		t.root.Unmount()
		t.root = nil
	}
	t.root = t.buildOwner.MountRoot(widget)
	return t.Pump()
}

// Pump flushes pending rebuilds.
func (t *WidgetTester) Pump() error {
	t.buildOwner.FlushBuild()
	return nil
}

// PumpAndSettle flushes rebuilds and advances the fake clock in 16ms
// frames until no builds or timers remain, or the timeout is reached.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.buildOwner.NeedsWork() && !t.sched.HasPending() {
			return nil
		}
		t.sched.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

// Advance moves the fake clock forward and flushes any rebuilds that
// timer callbacks scheduled.
func (t *WidgetTester) Advance(d time.Duration) {
	t.sched.Advance(d)
	t.buildOwner.FlushBuild()
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// SendKey routes one raw key event through the focus manager, then
// flushes rebuilds. Returns true if something consumed the event.
func (t *WidgetTester) SendKey(event keyboard.Event) bool {
	handled := t.manager.HandleKeyEvent(event)
	t.buildOwner.FlushBuild()
	return handled
}

// PressKey sends a down and up pair for the key with the given modifiers.
// Returns true if the press was consumed.
func (t *WidgetTester) PressKey(key keyboard.Key, modifiers keyboard.Modifier) bool {
	handled := t.SendKey(keyboard.Event{Key: key, Modifiers: modifiers, Phase: keyboard.PhaseDown})
	t.SendKey(keyboard.Event{Key: key, Modifiers: modifiers, Phase: keyboard.PhaseUp})
	return handled
}

// TypeRune sends a printable character press.
func (t *WidgetTester) TypeRune(r rune) bool {
	handled := t.SendKey(keyboard.Event{Key: keyboard.KeyRune, Rune: r, Phase: keyboard.PhaseDown})
	t.SendKey(keyboard.Event{Key: keyboard.KeyRune, Rune: r, Phase: keyboard.PhaseUp})
	return handled
}

// TypeText sends one press per rune of the text.
func (t *WidgetTester) TypeText(text string) {
	for _, r := range text {
		t.TypeRune(r)
	}
}

// pointerTarget locates the first pointer entry point at or below the
// finder's first match.
func (t *WidgetTester) pointerTarget(finder Finder) interaction.PointerTarget {
	start := t.Find(finder).First()
	var target interaction.PointerTarget
	walkTree(start, func(e core.Element) bool {
		if stateful, ok := e.(*core.StatefulElement); ok {
			if pt, ok := stateful.State().(interaction.PointerTarget); ok {
				target = pt
				return false
			}
		}
		return true
	})
	if target == nil {
		panic("no pointer target found: " + finder.Description())
	}
	return target
}

// Hover simulates the pointer entering the matched component's region.
func (t *WidgetTester) Hover(finder Finder) {
	t.pointerTarget(finder).HandlePointerEnter()
	t.buildOwner.FlushBuild()
}

// Unhover simulates the pointer leaving the matched component's region.
func (t *WidgetTester) Unhover(finder Finder) {
	t.pointerTarget(finder).HandlePointerExit()
	t.buildOwner.FlushBuild()
}

// PressPointer simulates a pointer press without release.
func (t *WidgetTester) PressPointer(finder Finder) {
	t.pointerTarget(finder).HandlePointerDown()
	t.buildOwner.FlushBuild()
}

// ReleasePointer simulates releasing a pressed pointer inside the region.
func (t *WidgetTester) ReleasePointer(finder Finder) {
	t.pointerTarget(finder).HandlePointerUp()
	t.buildOwner.FlushBuild()
}

// CancelPointer simulates the press being cancelled (pointer captured
// elsewhere or leaving the region).
func (t *WidgetTester) CancelPointer(finder Finder) {
	t.pointerTarget(finder).HandlePointerCancel()
	t.buildOwner.FlushBuild()
}

// Tap simulates a complete press and release on the matched component.
func (t *WidgetTester) Tap(finder Finder) {
	target := t.pointerTarget(finder)
	target.HandlePointerDown()
	target.HandlePointerUp()
	t.buildOwner.FlushBuild()
}

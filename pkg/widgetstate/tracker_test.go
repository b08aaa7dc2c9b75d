package widgetstate

import "testing"

func TestTrackerSettersAreIdempotent(t *testing.T) {
	tracker := NewTracker(NewController(Set{}))
	calls := 0
	onChanged := func(bool) { calls++ }

	tracker.UpdateHoverState(true, onChanged)
	tracker.UpdateHoverState(true, onChanged)
	if calls != 1 {
		t.Fatalf("expected 1 callback, got %d", calls)
	}
	if !tracker.States().Has(Hovered) {
		t.Fatalf("hovered not set")
	}

	tracker.UpdateHoverState(false, onChanged)
	tracker.UpdateHoverState(false, onChanged)
	if calls != 2 {
		t.Fatalf("expected 2 callbacks, got %d", calls)
	}
}

func TestTrackerCallbackReceivesNewValue(t *testing.T) {
	tracker := NewTracker(NewController(Set{}))
	var got []bool
	onChanged := func(v bool) { got = append(got, v) }

	tracker.UpdatePressState(true, onChanged)
	tracker.UpdatePressState(false, onChanged)
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Fatalf("callback values = %v", got)
	}
}

func TestTrackerNilCallback(t *testing.T) {
	tracker := NewTracker(NewController(Set{}))
	tracker.UpdateFocusState(true, nil)
	if !tracker.States().Has(Focused) {
		t.Fatalf("focused not set with nil callback")
	}
}

func TestDisableClearsTransientStatesSilently(t *testing.T) {
	controller := NewController(Set{})
	tracker := NewTracker(controller)

	hoverCalls, pressCalls, dragCalls := 0, 0, 0
	tracker.UpdateHoverState(true, func(bool) { hoverCalls++ })
	tracker.UpdatePressState(true, func(bool) { pressCalls++ })
	tracker.UpdateDragState(true, func(bool) { dragCalls++ })
	tracker.UpdateFocusState(true, nil)
	tracker.UpdateSelectState(true, nil)

	notifications := 0
	controller.AddListener(func() { notifications++ })

	tracker.UpdateDisabledState(true)

	states := tracker.States()
	if states.Has(Hovered) || states.Has(Pressed) || states.Has(Dragged) {
		t.Fatalf("transient states not cleared: %v", states)
	}
	if !states.Has(Disabled) {
		t.Fatalf("disabled not set: %v", states)
	}
	if !states.Has(Focused) || !states.Has(Selected) {
		t.Fatalf("focused/selected must survive disabling: %v", states)
	}
	if hoverCalls != 1 || pressCalls != 1 || dragCalls != 1 {
		t.Fatalf("transient clears fired typed callbacks: hover=%d press=%d drag=%d",
			hoverCalls, pressCalls, dragCalls)
	}
	if notifications != 1 {
		t.Fatalf("disabling must notify the controller exactly once, got %d", notifications)
	}
}

func TestSyncDisabled(t *testing.T) {
	tracker := NewTracker(NewController(Set{}))

	tracker.SyncDisabled(false)
	if !tracker.States().Has(Disabled) {
		t.Fatalf("SyncDisabled(false) did not set disabled")
	}

	tracker.SyncDisabled(true)
	if tracker.States().Has(Disabled) {
		t.Fatalf("SyncDisabled(true) did not clear disabled")
	}
}

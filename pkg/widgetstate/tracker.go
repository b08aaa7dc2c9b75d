package widgetstate

// Tracker maintains a component's state set on a [Controller] and fires
// typed callbacks only on real transitions. Component states embed one
// tracker and call the Update methods from their input plumbing.
//
// Setters are idempotent: updating a state to its current value neither
// notifies the controller nor invokes the callback.
type Tracker struct {
	controller *Controller
}

// NewTracker returns a tracker driving the given controller.
func NewTracker(controller *Controller) *Tracker {
	return &Tracker{controller: controller}
}

// Controller returns the underlying controller.
func (t *Tracker) Controller() *Controller {
	return t.controller
}

// States returns the current state set.
func (t *Tracker) States() Set {
	return t.controller.Value()
}

// update flips one state bit; returns true on a real transition.
func (t *Tracker) update(state State, value bool) bool {
	if t.controller.Value().Has(state) == value {
		return false
	}
	t.controller.Update(state, value)
	return true
}

// UpdateHoverState sets the hovered state. onChanged, if non-nil, runs
// only when the state actually flips.
func (t *Tracker) UpdateHoverState(hovered bool, onChanged func(bool)) {
	if t.update(Hovered, hovered) && onChanged != nil {
		onChanged(hovered)
	}
}

// UpdatePressState sets the pressed state.
func (t *Tracker) UpdatePressState(pressed bool, onChanged func(bool)) {
	if t.update(Pressed, pressed) && onChanged != nil {
		onChanged(pressed)
	}
}

// UpdateFocusState sets the focused state.
func (t *Tracker) UpdateFocusState(focused bool, onChanged func(bool)) {
	if t.update(Focused, focused) && onChanged != nil {
		onChanged(focused)
	}
}

// UpdateDragState sets the dragged state.
func (t *Tracker) UpdateDragState(dragged bool, onChanged func(bool)) {
	if t.update(Dragged, dragged) && onChanged != nil {
		onChanged(dragged)
	}
}

// UpdateSelectState sets the selected state.
func (t *Tracker) UpdateSelectState(selected bool, onChanged func(bool)) {
	if t.update(Selected, selected) && onChanged != nil {
		onChanged(selected)
	}
}

// UpdateErrorState sets the error state.
func (t *Tracker) UpdateErrorState(hasError bool, onChanged func(bool)) {
	if t.update(Error, hasError) && onChanged != nil {
		onChanged(hasError)
	}
}

// UpdateDisabledState sets the disabled state. Disabling also clears the
// hovered, pressed, and dragged states in the same controller update, and
// those transient clears never fire their typed callbacks: a component
// that stops accepting input just resets, it does not report phantom
// hover-exits or press-releases.
func (t *Tracker) UpdateDisabledState(disabled bool) {
	current := t.controller.Value()
	var next Set
	if disabled {
		next = current.With(Disabled).Without(Hovered).Without(Pressed).Without(Dragged)
	} else {
		next = current.Without(Disabled)
	}
	t.controller.Replace(next)
}

// SyncDisabled re-derives the disabled state from the enabled flag.
// Called whenever the owning widget's configuration changes.
func (t *Tracker) SyncDisabled(enabled bool) {
	t.UpdateDisabledState(!enabled)
}

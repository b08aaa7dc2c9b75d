// Package widgetstate models the interaction states a component can be
// in (hovered, pressed, focused, ...) as an immutable set, plus an
// observable controller and a tracking helper for component states.
package widgetstate

import "strings"

// State is one interaction state bit.
type State uint8

const (
	// Hovered means a pointer is over the component.
	Hovered State = 1 << iota
	// Pressed means a pointer or key is holding the component down.
	Pressed
	// Focused means the component holds keyboard focus.
	Focused
	// Dragged means an active drag originates from the component.
	Dragged
	// Selected means the component's value is on or chosen.
	Selected
	// Disabled means the component does not respond to input.
	Disabled
	// Error means the component's value failed validation.
	Error
)

func (s State) String() string {
	switch s {
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	case Focused:
		return "focused"
	case Dragged:
		return "dragged"
	case Selected:
		return "selected"
	case Disabled:
		return "disabled"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Set is an immutable combination of interaction states. The zero value
// is the empty set. Sets compare with ==.
type Set struct {
	bits State
}

// NewSet returns a set containing the given states.
func NewSet(states ...State) Set {
	var s Set
	for _, state := range states {
		s.bits |= state
	}
	return s
}

// Has reports whether the set contains the state.
func (s Set) Has(state State) bool {
	return s.bits&state != 0
}

// With returns a copy of the set with the state added.
func (s Set) With(state State) Set {
	return Set{bits: s.bits | state}
}

// Without returns a copy of the set with the state removed.
func (s Set) Without(state State) Set {
	return Set{bits: s.bits &^ state}
}

// IsEmpty reports whether the set contains no states.
func (s Set) IsEmpty() bool {
	return s.bits == 0
}

func (s Set) String() string {
	if s.bits == 0 {
		return "{}"
	}
	var parts []string
	for _, state := range []State{Hovered, Pressed, Focused, Dragged, Selected, Disabled, Error} {
		if s.Has(state) {
			parts = append(parts, state.String())
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

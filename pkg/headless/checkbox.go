package headless

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// CheckState is a checkbox value. The zero value is Unchecked.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	// Indeterminate is the mixed state of a tri-state checkbox, shown by
	// parent checkboxes whose children are partially checked.
	Indeterminate
)

func (c CheckState) String() string {
	switch c {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

// CheckStateOf converts a bool to the matching two-state value.
func CheckStateOf(checked bool) CheckState {
	if checked {
		return Checked
	}
	return Unchecked
}

// CheckboxSnapshot is the immutable state handed to a checkbox's Builder.
type CheckboxSnapshot struct {
	Value     CheckState
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// Checkbox is a headless check control.
//
// Space or Enter toggles it, as does a completed tap. A two-state
// checkbox alternates Unchecked and Checked; with TriState set the cycle
// is Unchecked, Checked, Indeterminate, back to Unchecked.
//
// Checkbox is controlled: it displays Value and reports the next state
// through OnChanged without mutating anything itself.
type Checkbox struct {
	core.StatefulBase

	// Value is the current check state.
	Value CheckState

	// OnChanged receives the next state on every toggle.
	OnChanged func(CheckState)

	// TriState enables the three-value cycle.
	TriState bool

	// Label is the accessible name.
	Label string

	Disabled  bool
	Autofocus bool
	FocusNode *focus.Node

	// Controller optionally supplies a caller-owned state controller.
	Controller *widgetstate.Controller

	Keymap *keyboard.Keymap

	OnHoverChange func(bool)
	OnPressChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot CheckboxSnapshot) core.Widget
}

func (c Checkbox) CreateState() core.State { return &checkboxState{} }

// nextState returns the value a toggle produces.
func (c Checkbox) nextState() CheckState {
	if c.TriState {
		switch c.Value {
		case Unchecked:
			return Checked
		case Checked:
			return Indeterminate
		default:
			return Unchecked
		}
	}
	if c.Value == Checked {
		return Unchecked
	}
	return Checked
}

type checkboxState struct {
	core.StateBase
}

func (s *checkboxState) widget() Checkbox {
	return s.Element().Widget().(Checkbox)
}

func (s *checkboxState) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnChanged != nil
}

func (s *checkboxState) toggle() bool {
	if !s.enabled() {
		return false
	}
	w := s.widget()
	w.OnChanged(w.nextState())
	return true
}

func (s *checkboxState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	enabled := s.enabled()
	flags := semantics.Flags(0).
		With(semantics.HasEnabledState).
		With(semantics.HasCheckedState).
		With(semantics.IsFocusable)
	if enabled {
		flags = flags.With(semantics.IsEnabled)
	}
	if states.Has(widgetstate.Focused) {
		flags = flags.With(semantics.IsFocused)
	}
	value := "Not checked"
	switch w.Value {
	case Checked:
		flags = flags.With(semantics.IsChecked)
		value = "Checked"
	case Indeterminate:
		flags = flags.With(semantics.IsCheckStateMixed)
		value = "Partially checked"
	}
	config := semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Value: value,
			Role:  semantics.RoleCheckbox,
			Flags: flags,
		},
	}
	if enabled {
		config.Properties.Hint = "Double tap to toggle"
		config.Actions.OnTap = func() { s.toggle() }
	}
	return config
}

func (s *checkboxState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		Disabled:   !s.enabled(),
		Autofocus:  w.Autofocus,
		FocusNode:  w.FocusNode,
		Controller: w.Controller,
		Family:     keyboard.FamilyCheckbox,
		Keymap:     w.Keymap,
		Actions: keyboard.ActionMap{
			keyboard.IntentToggle: s.toggle,
		},
		OnTap:         func() { s.toggle() },
		Cursor:        interaction.CursorClick,
		OnHoverChange: w.OnHoverChange,
		OnPressChange: w.OnPressChange,
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, CheckboxSnapshot{
				Value:     w.Value,
				States:    states,
				Semantics: s.semanticsFor(states),
			})
		},
	}
}

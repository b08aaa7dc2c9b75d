package headless

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// ToggleSnapshot is the immutable state handed to a toggle's Builder.
type ToggleSnapshot struct {
	Value     bool
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// Toggle is a headless on/off switch.
//
// It behaves like a two-state [Checkbox] but reports switch semantics,
// which screen readers announce as "on"/"off" rather than
// "checked"/"unchecked". The selected interaction state mirrors Value so
// builders can style the on position from the state set alone.
type Toggle struct {
	core.StatefulBase

	// Value indicates whether the switch is on.
	Value bool

	// OnChanged receives the flipped value on every toggle.
	OnChanged func(bool)

	// Label is the accessible name.
	Label string

	Disabled  bool
	Autofocus bool
	FocusNode *focus.Node
	Keymap    *keyboard.Keymap

	OnHoverChange func(bool)
	OnPressChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot ToggleSnapshot) core.Widget
}

func (t Toggle) CreateState() core.State { return &toggleState{} }

type toggleState struct {
	core.StateBase
	controller *widgetstate.Controller
}

func (s *toggleState) widget() Toggle {
	return s.Element().Widget().(Toggle)
}

func (s *toggleState) InitState() {
	w := s.widget()
	var initial widgetstate.Set
	if w.Value {
		initial = initial.With(widgetstate.Selected)
	}
	s.controller = widgetstate.NewController(initial)
	s.OnDispose(s.controller.Dispose)
}

func (s *toggleState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.controller.Update(widgetstate.Selected, s.widget().Value)
}

func (s *toggleState) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnChanged != nil
}

func (s *toggleState) toggle() bool {
	if !s.enabled() {
		return false
	}
	w := s.widget()
	w.OnChanged(!w.Value)
	return true
}

func (s *toggleState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	enabled := s.enabled()
	flags := semantics.Flags(0).
		With(semantics.HasEnabledState).
		With(semantics.HasToggledState).
		With(semantics.IsFocusable)
	if enabled {
		flags = flags.With(semantics.IsEnabled)
	}
	if w.Value {
		flags = flags.With(semantics.IsToggled)
	}
	if states.Has(widgetstate.Focused) {
		flags = flags.With(semantics.IsFocused)
	}
	value := "Off"
	if w.Value {
		value = "On"
	}
	config := semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Value: value,
			Role:  semantics.RoleSwitch,
			Flags: flags,
		},
	}
	if enabled {
		config.Properties.Hint = "Double tap to toggle"
		config.Actions.OnTap = func() { s.toggle() }
	}
	return config
}

func (s *toggleState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		Disabled:   !s.enabled(),
		Autofocus:  w.Autofocus,
		FocusNode:  w.FocusNode,
		Controller: s.controller,
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
			return w.Builder(ctx, ToggleSnapshot{
				Value:     w.Value,
				States:    states,
				Semantics: s.semanticsFor(states),
			})
		},
	}
}

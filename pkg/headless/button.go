package headless

import (
	"time"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/scheduler"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// keyboardPressFlash is how long a keyboard activation shows the pressed
// state before resetting.
const keyboardPressFlash = 150 * time.Millisecond

// ButtonSnapshot is the immutable state handed to a button's Builder.
type ButtonSnapshot struct {
	// States is the current interaction state set.
	States widgetstate.Set
	// Semantics describes the button to assistive technology.
	Semantics semantics.Configuration
}

// Button is a headless push button.
//
// Enter or Space activates it from the keyboard; a completed tap
// activates it from the pointer. Keyboard activation briefly shows the
// pressed state so visuals can flash feedback.
//
//	headless.Button{
//	    Label:     "Save",
//	    OnPressed: save,
//	    Builder:   buildButtonFace,
//	}
//
// A nil OnPressed disables the button just like Disabled.
type Button struct {
	core.StatefulBase

	// OnPressed is called once per activation.
	OnPressed func()

	// Label is the accessible name.
	Label string

	// Disabled disables interaction when true.
	Disabled bool

	// Autofocus requests focus when the button mounts.
	Autofocus bool

	// FocusNode optionally supplies a caller-owned focus node.
	FocusNode *focus.Node

	// Controller optionally supplies a caller-owned state controller.
	Controller *widgetstate.Controller

	// Keymap optionally overrides the default shortcut table.
	Keymap *keyboard.Keymap

	OnHoverChange func(bool)
	OnPressChange func(bool)
	OnFocusChange func(bool)

	// Builder renders the button from the current snapshot.
	Builder func(ctx core.BuildContext, snapshot ButtonSnapshot) core.Widget
}

func (b Button) CreateState() core.State { return &buttonState{} }

type buttonState struct {
	core.StateBase
	controller  *widgetstate.Controller
	cancelFlash scheduler.Cancel
}

func (s *buttonState) widget() Button {
	return s.Element().Widget().(Button)
}

func (s *buttonState) InitState() {
	w := s.widget()
	s.controller = w.Controller
	if s.controller == nil {
		s.controller = widgetstate.NewController(widgetstate.Set{})
		s.OnDispose(s.controller.Dispose)
	}
	s.OnDispose(func() {
		if s.cancelFlash != nil {
			s.cancelFlash()
		}
	})
}

func (s *buttonState) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnPressed != nil
}

// activate runs the action, then flashes the pressed state with a
// cancel-and-replace reset timer.
func (s *buttonState) activate() bool {
	if !s.enabled() {
		return false
	}
	s.widget().OnPressed()
	s.controller.Add(widgetstate.Pressed)
	if s.cancelFlash != nil {
		s.cancelFlash()
	}
	s.cancelFlash = scheduler.After(keyboardPressFlash, func() {
		if s.IsDisposed() {
			return
		}
		s.controller.Remove(widgetstate.Pressed)
	})
	return true
}

func (s *buttonState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	enabled := s.enabled()
	flags := semantics.Flags(0).With(semantics.HasEnabledState).With(semantics.IsFocusable)
	if enabled {
		flags = flags.With(semantics.IsEnabled)
	}
	if states.Has(widgetstate.Focused) {
		flags = flags.With(semantics.IsFocused)
	}
	config := semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Role:  semantics.RoleButton,
			Flags: flags,
		},
	}
	if enabled {
		config.Properties.Hint = "Double tap to activate"
		config.Actions.OnTap = w.OnPressed
	}
	return config
}

func (s *buttonState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		Disabled:   !s.enabled(),
		Autofocus:  w.Autofocus,
		FocusNode:  w.FocusNode,
		Controller: s.controller,
		Family:     keyboard.FamilyButton,
		Keymap:     w.Keymap,
		Actions: keyboard.ActionMap{
			keyboard.IntentActivate: s.activate,
		},
		OnTap: func() {
			if s.enabled() {
				s.widget().OnPressed()
			}
		},
		Cursor:        interaction.CursorClick,
		OnHoverChange: w.OnHoverChange,
		OnPressChange: w.OnPressChange,
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, ButtonSnapshot{
				States:    states,
				Semantics: s.semanticsFor(states),
			})
		},
	}
}

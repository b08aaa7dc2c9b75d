package headless

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// PopoverSnapshot is the immutable state handed to a popover's Builder.
type PopoverSnapshot struct {
	Open      bool
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// Popover is a headless non-modal floating surface attached to an
// anchor.
//
// A tap, Enter, or Space on the anchor toggles it; Escape closes it
// while open. Visibility can also be driven programmatically through the
// Show and Hide methods on the state, or through a caller-owned
// [OpenController].
type Popover struct {
	core.StatefulBase

	// Open optionally supplies a caller-owned open controller.
	Open *OpenController

	// OnOpenChange fires when the popover opens or closes.
	OnOpenChange func(bool)

	// Label is the anchor's accessible name.
	Label string

	Disabled  bool
	Autofocus bool
	FocusNode *focus.Node
	Keymap    *keyboard.Keymap

	OnHoverChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot PopoverSnapshot) core.Widget
}

func (p Popover) CreateState() core.State { return &PopoverState{} }

// PopoverState exposes Show and Hide for programmatic visibility.
type PopoverState struct {
	core.StateBase
	open openLifecycle
}

func (s *PopoverState) widget() Popover {
	return s.Element().Widget().(Popover)
}

func (s *PopoverState) InitState() {
	s.open.update(s.widget().Open, s.handleOpenChange)
	s.OnDispose(s.open.dispose)
}

func (s *PopoverState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.open.update(s.widget().Open, s.handleOpenChange)
	if s.widget().Disabled {
		s.open.controller().Close()
	}
}

func (s *PopoverState) handleOpenChange() {
	s.SetState(nil)
	if onOpen := s.widget().OnOpenChange; onOpen != nil {
		onOpen(s.isOpen())
	}
}

func (s *PopoverState) enabled() bool {
	return !s.widget().Disabled
}

func (s *PopoverState) isOpen() bool {
	return s.open.controller().IsOpen()
}

// Show opens the popover programmatically.
func (s *PopoverState) Show() {
	if s.enabled() {
		s.open.controller().Open()
	}
}

// Hide closes the popover programmatically.
func (s *PopoverState) Hide() {
	s.open.controller().Close()
}

func (s *PopoverState) toggle() bool {
	if !s.enabled() {
		return false
	}
	s.open.controller().Toggle()
	return true
}

func (s *PopoverState) dismiss() bool {
	if !s.isOpen() {
		return false
	}
	s.open.controller().Close()
	return true
}

func (s *PopoverState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	flags := semantics.Flags(0).
		With(semantics.HasEnabledState).
		With(semantics.HasExpandedState).
		With(semantics.IsFocusable)
	if s.enabled() {
		flags = flags.With(semantics.IsEnabled)
	}
	if s.isOpen() {
		flags = flags.With(semantics.IsExpanded)
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
	if s.enabled() {
		config.Actions.OnTap = func() { s.toggle() }
		if s.isOpen() {
			config.Actions.OnDismiss = func() { s.dismiss() }
		}
	}
	return config
}

func (s *PopoverState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	shortcuts := w.Keymap.ShortcutsFor(keyboard.FamilyButton)
	shortcuts = append(shortcuts, keyboard.Binding{
		Chord:  keyboard.Chord{Key: keyboard.KeyEscape},
		Intent: keyboard.IntentDismiss,
	})
	return interaction.Detector{
		Disabled:  !s.enabled(),
		Autofocus: w.Autofocus,
		FocusNode: w.FocusNode,
		Shortcuts: shortcuts,
		Actions: keyboard.ActionMap{
			keyboard.IntentActivate: s.toggle,
			keyboard.IntentDismiss:  s.dismiss,
		},
		OnTap:         func() { s.toggle() },
		Cursor:        interaction.CursorClick,
		OnHoverChange: w.OnHoverChange,
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, PopoverSnapshot{
				Open:      s.isOpen(),
				States:    states,
				Semantics: s.semanticsFor(states),
			})
		},
	}
}

package headless

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// DialogSnapshot is the immutable state handed to a dialog's Builder.
type DialogSnapshot struct {
	Open      bool
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// Dialog is a headless modal or non-modal dialog surface.
//
// Visibility is driven by an [OpenController]: supply one to open and
// close the dialog from outside, or call the controller returned by the
// owned lifecycle. Opening moves keyboard focus onto the dialog so
// Escape reaches it; closing releases the focus. Escape dismisses unless
// NonDismissible is set.
type Dialog struct {
	core.StatefulBase

	// Open optionally supplies a caller-owned open controller.
	Open *OpenController

	// OnOpenChange fires when the dialog opens or closes.
	OnOpenChange func(bool)

	// NonDismissible blocks Escape from closing the dialog.
	NonDismissible bool

	// Modal marks the dialog as blocking interaction behind it.
	Modal bool

	// Label is the accessible name.
	Label string

	FocusNode *focus.Node
	Keymap    *keyboard.Keymap

	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot DialogSnapshot) core.Widget
}

func (d Dialog) CreateState() core.State { return &dialogState{} }

type dialogState struct {
	core.StateBase
	open openLifecycle
	node *focus.Node
}

func (s *dialogState) widget() Dialog {
	return s.Element().Widget().(Dialog)
}

func (s *dialogState) InitState() {
	w := s.widget()
	s.node = w.FocusNode
	if s.node == nil {
		s.node = focus.NewNode()
		focus.GetManager().Register(s.node)
		s.OnDispose(s.node.Dispose)
	}
	s.open.update(w.Open, s.handleOpenChange)
	s.OnDispose(s.open.dispose)
	if s.isOpen() {
		s.node.RequestFocus()
	}
}

func (s *dialogState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.open.update(s.widget().Open, s.handleOpenChange)
}

func (s *dialogState) isOpen() bool {
	return s.open.controller().IsOpen()
}

func (s *dialogState) handleOpenChange() {
	open := s.isOpen()
	if open {
		// The node is held non-focusable while the dialog is closed, and
		// the rebuild that re-enables it runs after this notification.
		// Lift the gate now so the focus request is not dropped.
		s.node.CanRequestFocus = true
		s.node.Inert = false
		s.node.RequestFocus()
	} else {
		s.node.Unfocus()
	}
	s.SetState(nil)
	if onOpen := s.widget().OnOpenChange; onOpen != nil {
		onOpen(open)
	}
}

func (s *dialogState) dismiss() bool {
	w := s.widget()
	if !s.isOpen() || w.NonDismissible {
		return false
	}
	s.open.controller().Close()
	return true
}

func (s *dialogState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	flags := semantics.Flags(0)
	if w.Modal {
		flags = flags.With(semantics.IsModal)
	}
	if states.Has(widgetstate.Focused) {
		flags = flags.With(semantics.IsFocused)
	}
	config := semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Role:  semantics.RoleDialog,
			Flags: flags,
		},
	}
	if s.isOpen() && !w.NonDismissible {
		config.Actions.OnDismiss = func() { s.dismiss() }
	}
	return config
}

func (s *dialogState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		// A closed dialog takes no input and stays out of Tab order.
		Disabled:      !s.isOpen(),
		SkipTraversal: !s.isOpen(),
		FocusNode:     s.node,
		Family:        keyboard.FamilyDialog,
		Keymap:        w.Keymap,
		Actions: keyboard.ActionMap{
			keyboard.IntentDismiss: s.dismiss,
		},
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, DialogSnapshot{
				Open:      s.isOpen(),
				States:    states,
				Semantics: s.semanticsFor(states),
			})
		},
	}
}

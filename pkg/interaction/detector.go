package interaction

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// Cursor is the pointer shape hint a component requests while hovered.
type Cursor int

const (
	CursorBasic Cursor = iota
	CursorClick
	CursorText
	CursorForbidden
)

// PointerTarget is the entry point the host gesture layer calls on a
// detector when the pointer interacts with its region.
type PointerTarget interface {
	HandlePointerEnter()
	HandlePointerExit()
	HandlePointerDown()
	HandlePointerUp()
	HandlePointerCancel()
}

// Detector tracks interaction state for one component: hover, press,
// focus, and keyboard shortcuts. It owns the component's state controller
// and focus node unless the caller supplies external ones, and rebuilds
// its child through Builder whenever the state set changes.
//
// Disabling a detector clears its transient states silently, detaches its
// key handler entirely, and removes it from traditional focus traversal.
// Under directional navigation the node stays traversable so spatial
// navigation can still land on the component.
//
// Example:
//
//	interaction.Detector{
//	    Family:  keyboard.FamilyButton,
//	    Actions: keyboard.ActionMap{keyboard.IntentActivate: activate},
//	    OnTap:   activate0,
//	    Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
//	        return buildFace(states)
//	    },
//	}
type Detector struct {
	core.StatefulBase

	// Disabled stops all input handling. The zero value is enabled.
	Disabled bool

	// Autofocus requests focus once when the detector mounts.
	Autofocus bool

	// SkipTraversal removes the node from Tab traversal while keeping
	// programmatic focus available.
	SkipTraversal bool

	// FocusNode optionally supplies a caller-owned focus node. When nil
	// the detector creates and owns one internally.
	FocusNode *focus.Node

	// Controller optionally supplies a caller-owned state controller.
	Controller *widgetstate.Controller

	// Family selects the default shortcut table.
	Family keyboard.Family

	// Keymap optionally overrides the family's shortcut table.
	Keymap *keyboard.Keymap

	// Shortcuts, when non-nil, replaces the family table entirely.
	Shortcuts keyboard.ShortcutMap

	// Actions binds intents to handlers. Rebuilt by the owning component
	// on every build so closures capture current parameters.
	Actions keyboard.ActionMap

	// OnKeyEvent handles key events no shortcut consumed.
	OnKeyEvent func(keyboard.Event) focus.KeyEventResult

	// Typed transition callbacks, fired once per real state change.
	OnHoverChange func(bool)
	OnPressChange func(bool)
	OnFocusChange func(bool)

	// OnTap fires when a press completes inside the region.
	OnTap func()

	// Cursor is the hover cursor hint while enabled.
	Cursor Cursor

	// Builder produces the child from the current state set.
	Builder func(ctx core.BuildContext, states widgetstate.Set) core.Widget
}

func (d Detector) CreateState() core.State { return &DetectorState{} }

// DetectorState is the detector's mutable state. Exported so hosts and
// tests can reach the PointerTarget entry points through the element tree.
type DetectorState struct {
	core.StateBase

	tracker       *widgetstate.Tracker
	lifecycle     *FocusLifecycle
	owned         *widgetstate.Controller
	unsubscribe   func()
	pressedInside bool
}

var _ PointerTarget = (*DetectorState)(nil)
var _ FocusHandleProvider = (*DetectorState)(nil)

func (s *DetectorState) widget() Detector {
	return s.Element().Widget().(Detector)
}

func (s *DetectorState) InitState() {
	w := s.widget()

	s.adoptController(w.Controller)

	s.lifecycle = NewFocusLifecycle()
	s.lifecycle.SetOnFocusChange(s.handleFocusChange)
	s.lifecycle.Update(w.FocusNode)
	s.OnDispose(s.lifecycle.Dispose)

	s.configureNode(w)
	if w.Autofocus && !w.Disabled {
		s.lifecycle.Node().RequestFocus()
	}
}

func (s *DetectorState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(Detector)
	w := s.widget()

	if old.Controller != w.Controller {
		s.adoptController(w.Controller)
	}
	if old.FocusNode != w.FocusNode {
		s.lifecycle.Update(w.FocusNode)
	}
	s.tracker.SyncDisabled(!w.Disabled)
	s.configureNode(w)
}

// adoptController wires the tracker to the external controller, or to an
// internally owned one when the widget supplies none.
func (s *DetectorState) adoptController(external *widgetstate.Controller) {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}

	controller := external
	if controller == nil {
		if s.owned == nil {
			var initial widgetstate.Set
			if s.widget().Disabled {
				initial = initial.With(widgetstate.Disabled)
			}
			s.owned = widgetstate.NewController(initial)
			s.OnDispose(s.owned.Dispose)
		}
		controller = s.owned
	}

	s.tracker = widgetstate.NewTracker(controller)
	s.tracker.SyncDisabled(!s.widget().Disabled)
	s.unsubscribe = controller.AddListener(func() {
		s.SetState(nil)
	})
	s.OnDispose(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
			s.unsubscribe = nil
		}
	})
}

// configureNode pushes the widget's current policy onto the focus node.
// The key handler is detached entirely while disabled.
func (s *DetectorState) configureNode(w Detector) {
	node := s.lifecycle.Node()
	node.CanRequestFocus = !w.Disabled
	node.Inert = w.Disabled
	node.SkipTraversal = w.SkipTraversal
	if w.Disabled {
		node.OnKeyEvent = nil
		return
	}
	node.OnKeyEvent = s.handleKeyEvent
}

func (s *DetectorState) handleKeyEvent(event keyboard.Event) focus.KeyEventResult {
	w := s.widget()
	if w.Disabled {
		return focus.Ignored
	}
	if intent, ok := s.shortcuts(w).Match(event); ok {
		if w.Actions.Invoke(intent) {
			return focus.Handled
		}
	}
	if w.OnKeyEvent != nil {
		return w.OnKeyEvent(event)
	}
	return focus.Ignored
}

func (s *DetectorState) shortcuts(w Detector) keyboard.ShortcutMap {
	if w.Shortcuts != nil {
		return w.Shortcuts
	}
	return w.Keymap.ShortcutsFor(w.Family)
}

func (s *DetectorState) handleFocusChange(focused bool) {
	w := s.widget()
	s.tracker.UpdateFocusState(focused, w.OnFocusChange)
}

// FocusHandle returns the detector's effective focus node.
func (s *DetectorState) FocusHandle() *focus.Node {
	return s.lifecycle.Node()
}

// States returns the current interaction state set.
func (s *DetectorState) States() widgetstate.Set {
	return s.tracker.States()
}

// EffectiveCursor returns the cursor hint for the current state. The
// region keeps reporting a cursor while disabled so hosts can show a
// not-allowed shape.
func (s *DetectorState) EffectiveCursor() Cursor {
	if s.widget().Disabled {
		return CursorForbidden
	}
	return s.widget().Cursor
}

func (s *DetectorState) HandlePointerEnter() {
	w := s.widget()
	if w.Disabled {
		return
	}
	s.tracker.UpdateHoverState(true, w.OnHoverChange)
}

func (s *DetectorState) HandlePointerExit() {
	w := s.widget()
	if w.Disabled {
		return
	}
	s.tracker.UpdateHoverState(false, w.OnHoverChange)
}

func (s *DetectorState) HandlePointerDown() {
	w := s.widget()
	if w.Disabled {
		return
	}
	s.pressedInside = true
	s.tracker.UpdatePressState(true, w.OnPressChange)
	s.lifecycle.Node().RequestFocus()
}

func (s *DetectorState) HandlePointerUp() {
	w := s.widget()
	if w.Disabled {
		s.pressedInside = false
		return
	}
	completed := s.pressedInside
	s.pressedInside = false
	s.tracker.UpdatePressState(false, w.OnPressChange)
	if completed && w.OnTap != nil {
		w.OnTap()
	}
}

func (s *DetectorState) HandlePointerCancel() {
	w := s.widget()
	s.pressedInside = false
	if w.Disabled {
		return
	}
	s.tracker.UpdatePressState(false, w.OnPressChange)
}

func (s *DetectorState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	if w.Builder == nil {
		return nil
	}
	return w.Builder(ctx, s.tracker.States())
}

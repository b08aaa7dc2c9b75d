package headless

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/scheduler"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// MenuItem is one entry in a [Menu].
type MenuItem struct {
	Label    string
	Disabled bool
}

// MenuSnapshot is the immutable state handed to a menu's Builder.
type MenuSnapshot struct {
	Items []MenuItem
	Open  bool
	// Highlighted is the index of the highlighted item while open, or -1.
	Highlighted int
	States      widgetstate.Set
	Semantics   semantics.Configuration
}

// Menu is a headless action menu anchored to a trigger.
//
// Enter, Space, or a tap on the trigger opens it. While open, arrow keys
// move the highlight over enabled items, wrapping at the ends; Home/End
// jump; typing jumps to the next matching label; Enter activates the
// highlighted item, firing OnSelected with its index and closing; Escape
// closes without selecting.
type Menu struct {
	core.StatefulBase

	// Items are the menu entries in display order.
	Items []MenuItem

	// OnSelected receives the index of the activated item.
	OnSelected func(int)

	// Open optionally supplies a caller-owned open controller.
	Open *OpenController

	// OnOpenChange fires when the menu opens or closes.
	OnOpenChange func(bool)

	// Label is the trigger's accessible name.
	Label string

	Disabled  bool
	Autofocus bool
	FocusNode *focus.Node
	Keymap    *keyboard.Keymap

	OnHoverChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot MenuSnapshot) core.Widget
}

func (m Menu) CreateState() core.State { return &menuState{} }

type menuState struct {
	core.StateBase
	open        openLifecycle
	highlighted int
	typeAhead   keyboard.TypeAhead
}

func (s *menuState) widget() Menu {
	return s.Element().Widget().(Menu)
}

func (s *menuState) InitState() {
	s.highlighted = -1
	s.open.update(s.widget().Open, s.handleOpenChange)
	s.OnDispose(s.open.dispose)
}

func (s *menuState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.open.update(s.widget().Open, s.handleOpenChange)
	if s.widget().Disabled {
		s.open.controller().Close()
	}
}

func (s *menuState) handleOpenChange() {
	open := s.open.controller().IsOpen()
	if open {
		s.highlighted = s.wrapStep(-1, 1)
	} else {
		s.highlighted = -1
		s.typeAhead.Reset()
	}
	s.SetState(nil)
	if onOpen := s.widget().OnOpenChange; onOpen != nil {
		onOpen(open)
	}
}

func (s *menuState) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnSelected != nil
}

func (s *menuState) isOpen() bool {
	return s.open.controller().IsOpen()
}

// wrapStep returns the next enabled item index from the given one in the
// given direction, wrapping at the ends. Returns -1 when no item is
// enabled.
func (s *menuState) wrapStep(from, delta int) int {
	items := s.widget().Items
	n := len(items)
	if n == 0 {
		return -1
	}
	idx := from
	for i := 0; i < n; i++ {
		idx = ((idx+delta)%n + n) % n
		if !items[idx].Disabled {
			return idx
		}
	}
	return -1
}

func (s *menuState) highlightBy(delta int) bool {
	if !s.enabled() || !s.isOpen() {
		return false
	}
	next := s.wrapStep(s.highlighted, delta)
	if next >= 0 && next != s.highlighted {
		s.SetState(func() { s.highlighted = next })
	}
	return true
}

func (s *menuState) highlightEdge(last bool) bool {
	if !s.enabled() || !s.isOpen() {
		return false
	}
	var next int
	if last {
		next = s.wrapStep(len(s.widget().Items), -1)
	} else {
		next = s.wrapStep(-1, 1)
	}
	if next >= 0 && next != s.highlighted {
		s.SetState(func() { s.highlighted = next })
	}
	return true
}

// activate opens the menu, or fires the highlighted item when open.
func (s *menuState) activate() bool {
	if !s.enabled() {
		return false
	}
	if !s.isOpen() {
		s.open.controller().Open()
		return true
	}
	w := s.widget()
	index := s.highlighted
	s.open.controller().Close()
	if index >= 0 && index < len(w.Items) && !w.Items[index].Disabled {
		w.OnSelected(index)
	}
	return true
}

func (s *menuState) dismiss() bool {
	if !s.isOpen() {
		return false
	}
	s.open.controller().Close()
	return true
}

func (s *menuState) handleKey(event keyboard.Event) focus.KeyEventResult {
	if !s.isOpen() || !event.IsPress() || event.Key != keyboard.KeyRune || event.Modifiers != 0 {
		return focus.Ignored
	}
	s.typeAhead.Append(event.Rune, scheduler.Now())
	items := s.widget().Items
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	match := s.typeAhead.Match(labels, s.highlighted)
	if match >= 0 && !items[match].Disabled && match != s.highlighted {
		s.SetState(func() { s.highlighted = match })
	}
	return focus.Handled
}

func (s *menuState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	enabled := s.enabled()
	flags := semantics.Flags(0).
		With(semantics.HasEnabledState).
		With(semantics.HasExpandedState).
		With(semantics.IsFocusable)
	if enabled {
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
			Role:  semantics.RoleMenu,
			Flags: flags,
		},
	}
	if enabled {
		config.Actions.OnTap = func() { s.activate() }
		if s.isOpen() {
			config.Actions.OnDismiss = func() { s.dismiss() }
		}
	}
	return config
}

func (s *menuState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		Disabled:  !s.enabled(),
		Autofocus: w.Autofocus,
		FocusNode: w.FocusNode,
		Family:    keyboard.FamilySelect,
		Keymap:    w.Keymap,
		Actions: keyboard.ActionMap{
			keyboard.IntentActivate:       s.activate,
			keyboard.IntentDismiss:        s.dismiss,
			keyboard.IntentSelectNext:     func() bool { return s.highlightBy(1) },
			keyboard.IntentSelectPrevious: func() bool { return s.highlightBy(-1) },
			keyboard.IntentJumpFirst:      func() bool { return s.highlightEdge(false) },
			keyboard.IntentJumpLast:       func() bool { return s.highlightEdge(true) },
		},
		OnKeyEvent:    s.handleKey,
		OnTap:         func() { s.activate() },
		Cursor:        interaction.CursorClick,
		OnHoverChange: w.OnHoverChange,
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, MenuSnapshot{
				Items:       w.Items,
				Open:        s.isOpen(),
				Highlighted: s.highlighted,
				States:      states,
				Semantics:   s.semanticsFor(states),
			})
		},
	}
}

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

// defaultPageSize is how many options PageUp/PageDown skip.
const defaultPageSize = 5

// SelectOption is one choice in a [Select].
type SelectOption[T comparable] struct {
	Value    T
	Label    string
	Disabled bool
}

// SelectSnapshot is the immutable state handed to a select's Builder.
type SelectSnapshot[T comparable] struct {
	Value   T
	Options []SelectOption[T]
	Open    bool
	// Highlighted is the index of the highlighted option while open, or
	// -1 when none.
	Highlighted int
	States      widgetstate.Set
	Semantics   semantics.Configuration
}

// Select is a headless single-choice dropdown.
//
// While closed, arrow keys change the value directly and typing jumps to
// the option whose label matches the typed prefix. Enter or Space opens
// the option list; while open, arrows and Home/End move the highlight,
// Enter commits it, and Escape closes without selecting. OnChanged fires
// only when the committed value actually differs.
//
// Supply an [OpenController] to drive the list's visibility from
// outside; otherwise the select owns one internally.
type Select[T comparable] struct {
	core.StatefulBase

	// Options are the available choices in display order.
	Options []SelectOption[T]

	// Value is the currently selected value.
	Value T

	// OnChanged receives the newly selected value.
	OnChanged func(T)

	// Open optionally supplies a caller-owned open controller.
	Open *OpenController

	// OnOpenChange fires when the option list opens or closes.
	OnOpenChange func(bool)

	// PageSize is how many options PageUp/PageDown skip. Zero means 5.
	PageSize int

	// Label is the accessible name.
	Label string

	Disabled  bool
	Autofocus bool
	FocusNode *focus.Node
	Keymap    *keyboard.Keymap

	OnHoverChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot SelectSnapshot[T]) core.Widget
}

func (s Select[T]) CreateState() core.State { return &selectState[T]{} }

func (s Select[T]) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return defaultPageSize
}

type selectState[T comparable] struct {
	core.StateBase
	open        openLifecycle
	highlighted int
	typeAhead   keyboard.TypeAhead
}

func (s *selectState[T]) widget() Select[T] {
	return s.Element().Widget().(Select[T])
}

func (s *selectState[T]) InitState() {
	s.highlighted = -1
	s.open.update(s.widget().Open, s.handleOpenChange)
	s.OnDispose(s.open.dispose)
}

func (s *selectState[T]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.open.update(s.widget().Open, s.handleOpenChange)
	if s.widget().Disabled {
		s.open.controller().Close()
	}
}

func (s *selectState[T]) handleOpenChange() {
	open := s.open.controller().IsOpen()
	if open {
		s.highlighted = s.initialHighlight()
	} else {
		s.highlighted = -1
		s.typeAhead.Reset()
	}
	s.SetState(nil)
	if onOpen := s.widget().OnOpenChange; onOpen != nil {
		onOpen(open)
	}
}

func (s *selectState[T]) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnChanged != nil
}

func (s *selectState[T]) isOpen() bool {
	return s.open.controller().IsOpen()
}

func (s *selectState[T]) options() []SelectOption[T] {
	return s.widget().Options
}

// selectedIndex returns the index of the current value, or -1.
func (s *selectState[T]) selectedIndex() int {
	w := s.widget()
	for i, option := range w.Options {
		if option.Value == w.Value {
			return i
		}
	}
	return -1
}

func (s *selectState[T]) initialHighlight() int {
	if i := s.selectedIndex(); i >= 0 {
		return i
	}
	return s.nearestEnabled(0, 1)
}

// nearestEnabled walks from the index in the given direction and returns
// the first enabled option, or -1.
func (s *selectState[T]) nearestEnabled(from, delta int) int {
	options := s.options()
	for i := from; i >= 0 && i < len(options); i += delta {
		if !options[i].Disabled {
			return i
		}
	}
	return -1
}

// stepFrom moves count enabled options away from the index, clamping at
// the ends.
func (s *selectState[T]) stepFrom(from, delta, count int) int {
	current := from
	for n := 0; n < count; n++ {
		next := s.nearestEnabled(current+delta, delta)
		if next < 0 {
			break
		}
		current = next
	}
	return current
}

// commit reports the option at the index as the new value. Committing
// the current value or a disabled option reports nothing.
func (s *selectState[T]) commit(index int) {
	w := s.widget()
	if index < 0 || index >= len(w.Options) {
		return
	}
	option := w.Options[index]
	if option.Disabled {
		return
	}
	if option.Value != w.Value {
		w.OnChanged(option.Value)
	}
}

// moveBy handles an arrow or page intent: closed selects relatively,
// open moves the highlight.
func (s *selectState[T]) moveBy(delta, count int) bool {
	if !s.enabled() {
		return false
	}
	if s.isOpen() {
		from := s.highlighted
		if from < 0 {
			from = s.initialHighlight()
			if from < 0 {
				return true
			}
		}
		next := s.stepFrom(from, delta, count)
		if next != s.highlighted {
			s.SetState(func() { s.highlighted = next })
		}
		return true
	}
	from := s.selectedIndex()
	if from < 0 {
		if first := s.nearestEnabled(0, 1); first >= 0 {
			s.commit(first)
		}
		return true
	}
	s.commit(s.stepFrom(from, delta, count))
	return true
}

// jumpTo handles Home/End.
func (s *selectState[T]) jumpTo(end bool) bool {
	if !s.enabled() {
		return false
	}
	var target int
	if end {
		target = s.nearestEnabled(len(s.options())-1, -1)
	} else {
		target = s.nearestEnabled(0, 1)
	}
	if target < 0 {
		return true
	}
	if s.isOpen() {
		if target != s.highlighted {
			s.SetState(func() { s.highlighted = target })
		}
	} else {
		s.commit(target)
	}
	return true
}

// activate opens the list, or commits the highlight when already open.
func (s *selectState[T]) activate() bool {
	if !s.enabled() {
		return false
	}
	if !s.isOpen() {
		s.open.controller().Open()
		return true
	}
	s.commit(s.highlighted)
	s.open.controller().Close()
	return true
}

// dismiss closes the list without selecting.
func (s *selectState[T]) dismiss() bool {
	if !s.isOpen() {
		return false
	}
	s.open.controller().Close()
	return true
}

// handleTypeAhead jumps to the next option whose label starts with the
// characters typed in quick succession.
func (s *selectState[T]) handleTypeAhead(r rune) bool {
	if !s.enabled() {
		return false
	}
	s.typeAhead.Append(r, scheduler.Now())
	labels := make([]string, len(s.options()))
	for i, option := range s.options() {
		labels[i] = option.Label
	}
	from := s.selectedIndex()
	if s.isOpen() {
		from = s.highlighted
	}
	match := s.typeAhead.Match(labels, from)
	if match < 0 || s.options()[match].Disabled {
		return true
	}
	if s.isOpen() {
		if match != s.highlighted {
			s.SetState(func() { s.highlighted = match })
		}
	} else {
		s.commit(match)
	}
	return true
}

func (s *selectState[T]) handleKey(event keyboard.Event) focus.KeyEventResult {
	if event.IsPress() && event.Key == keyboard.KeyRune && event.Modifiers == 0 {
		if s.handleTypeAhead(event.Rune) {
			return focus.Handled
		}
	}
	return focus.Ignored
}

func (s *selectState[T]) semanticsFor(states widgetstate.Set) semantics.Configuration {
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
	value := ""
	if i := s.selectedIndex(); i >= 0 {
		value = w.Options[i].Label
	}
	config := semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Value: value,
			Role:  semantics.RoleComboBox,
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

func (s *selectState[T]) Build(ctx core.BuildContext) core.Widget {
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
			keyboard.IntentSelectNext:     func() bool { return s.moveBy(1, 1) },
			keyboard.IntentSelectPrevious: func() bool { return s.moveBy(-1, 1) },
			keyboard.IntentJumpFirst:      func() bool { return s.jumpTo(false) },
			keyboard.IntentJumpLast:       func() bool { return s.jumpTo(true) },
			keyboard.IntentPageDown:       func() bool { return s.moveBy(1, s.widget().pageSize()) },
			keyboard.IntentPageUp:         func() bool { return s.moveBy(-1, s.widget().pageSize()) },
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
			return w.Builder(ctx, SelectSnapshot[T]{
				Value:       w.Value,
				Options:     w.Options,
				Open:        s.isOpen(),
				Highlighted: s.highlighted,
				States:      states,
				Semantics:   s.semanticsFor(states),
			})
		},
	}
}

package headless

import (
	"reflect"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/errors"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// RadioGroup provides the shared selection for a set of [Radio] buttons.
// The group is controlled: it holds the selected value and receives the
// next one through OnChanged when a member is chosen.
//
//	headless.RadioGroup[string]{
//	    Value:     s.flavor,
//	    OnChanged: func(v string) { s.SetState(func() { s.flavor = v }) },
//	    Child:     buildFlavorRadios(),
//	}
//
// Arrow keys move the selection between enabled members in mount order
// without wrapping past the ends; Space selects the focused member.
type RadioGroup[T comparable] struct {
	core.StatefulBase

	// Value is the currently selected member value.
	Value T

	// OnChanged receives the newly selected value.
	OnChanged func(T)

	// Disabled disables every member of the group.
	Disabled bool

	// Child is the subtree containing the group's radios.
	Child core.Widget
}

func (g RadioGroup[T]) CreateState() core.State { return &radioGroupState[T]{} }

type radioGroupState[T comparable] struct {
	core.StateBase
	registry *radioRegistry[T]
}

func (s *radioGroupState[T]) InitState() {
	s.registry = &radioRegistry[T]{}
}

func (s *radioGroupState[T]) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(RadioGroup[T])
	return radioScope[T]{
		Value:     w.Value,
		OnChanged: w.OnChanged,
		Disabled:  w.Disabled,
		registry:  s.registry,
		Child:     w.Child,
	}
}

// radioScope carries the group configuration down to its members.
type radioScope[T comparable] struct {
	core.InheritedBase
	Value     T
	OnChanged func(T)
	Disabled  bool
	registry  *radioRegistry[T]
	Child     core.Widget
}

func (s radioScope[T]) ChildWidget() core.Widget { return s.Child }

func (s radioScope[T]) UpdateShouldNotify(old core.InheritedWidget) bool {
	prev := old.(radioScope[T])
	return prev.Value != s.Value || prev.Disabled != s.Disabled
}

func (s radioScope[T]) enabled() bool {
	return !s.Disabled && s.OnChanged != nil
}

// radioRegistry tracks the group's members in mount order for arrow
// traversal. It lives in the group state so it survives rebuilds.
type radioRegistry[T comparable] struct {
	members []*radioState[T]
}

func (r *radioRegistry[T]) add(member *radioState[T]) func() {
	r.members = append(r.members, member)
	return func() {
		for i, m := range r.members {
			if m == member {
				r.members = append(r.members[:i], r.members[i+1:]...)
				return
			}
		}
	}
}

// step returns the nearest selectable member in the given direction, or
// nil at the ends. No wrapping.
func (r *radioRegistry[T]) step(from *radioState[T], delta int) *radioState[T] {
	start := -1
	for i, m := range r.members {
		if m == from {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}
	for i := start + delta; i >= 0 && i < len(r.members); i += delta {
		if r.members[i].selectable() {
			return r.members[i]
		}
	}
	return nil
}

// RadioSnapshot is the immutable state handed to a radio's Builder.
type RadioSnapshot struct {
	Selected  bool
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// Radio is one member of a [RadioGroup]. It represents the value in its
// Value field; it is selected while the group's value equals it.
//
// A Radio must be built below a RadioGroup of the same type parameter;
// building one outside a group panics.
type Radio[T comparable] struct {
	core.StatefulBase

	// Value is the group value this member represents.
	Value T

	// Label is the accessible name.
	Label string

	// Disabled disables this member only. The group's Disabled flag
	// disables all members.
	Disabled bool

	Autofocus bool
	FocusNode *focus.Node
	Keymap    *keyboard.Keymap

	OnHoverChange func(bool)
	OnPressChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot RadioSnapshot) core.Widget
}

func (r Radio[T]) CreateState() core.State { return &radioState[T]{} }

type radioState[T comparable] struct {
	core.StateBase
	node       *focus.Node
	registry   *radioRegistry[T]
	scope      radioScope[T]
	registered bool
}

func (s *radioState[T]) widget() Radio[T] {
	return s.Element().Widget().(Radio[T])
}

func (s *radioState[T]) InitState() {
	w := s.widget()
	s.node = w.FocusNode
	if s.node == nil {
		s.node = focus.NewNode()
		focus.GetManager().Register(s.node)
		s.OnDispose(s.node.Dispose)
	}
}

func (s *radioState[T]) selectable() bool {
	return s.scope.enabled() && !s.widget().Disabled && !s.IsDisposed()
}

func (s *radioState[T]) enabled() bool {
	return s.selectable()
}

// selectSelf commits this member's value. Selecting the already selected
// member reports nothing.
func (s *radioState[T]) selectSelf() bool {
	if !s.enabled() {
		return false
	}
	w := s.widget()
	if s.scope.Value != w.Value {
		s.scope.OnChanged(w.Value)
	}
	return true
}

// selectBy moves the selection to the nearest selectable sibling and
// focuses it. At the ends the key is consumed but nothing moves.
func (s *radioState[T]) selectBy(delta int) bool {
	if !s.enabled() {
		return false
	}
	target := s.registry.step(s, delta)
	if target == nil {
		return true
	}
	s.scope.OnChanged(target.widget().Value)
	target.node.RequestFocus()
	return true
}

func (s *radioState[T]) semanticsFor(selected bool, states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	flags := semantics.Flags(0).
		With(semantics.HasEnabledState).
		With(semantics.HasCheckedState).
		With(semantics.IsInMutuallyExclusiveGroup).
		With(semantics.IsFocusable)
	if s.enabled() {
		flags = flags.With(semantics.IsEnabled)
	}
	if selected {
		flags = flags.With(semantics.IsChecked)
	}
	if states.Has(widgetstate.Focused) {
		flags = flags.With(semantics.IsFocused)
	}
	config := semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Role:  semantics.RoleRadio,
			Flags: flags,
		},
	}
	if s.enabled() {
		config.Actions.OnTap = func() { s.selectSelf() }
	}
	return config
}

func (s *radioState[T]) Build(ctx core.BuildContext) core.Widget {
	scope, ok := ctx.DependOnInherited(reflect.TypeOf(radioScope[T]{})).(radioScope[T])
	if !ok {
		panic(errors.Scopef("headless.Radio", "Radio built outside a RadioGroup"))
	}
	s.scope = scope
	if !s.registered {
		s.registry = scope.registry
		s.OnDispose(s.registry.add(s))
		s.registered = true
	}

	w := s.widget()
	selected := scope.Value == w.Value
	return interaction.Detector{
		Disabled:  !s.enabled(),
		Autofocus: w.Autofocus,
		FocusNode: s.node,
		Family:    keyboard.FamilyRadio,
		Keymap:    w.Keymap,
		Actions: keyboard.ActionMap{
			keyboard.IntentActivate:       s.selectSelf,
			keyboard.IntentSelectNext:     func() bool { return s.selectBy(1) },
			keyboard.IntentSelectPrevious: func() bool { return s.selectBy(-1) },
		},
		OnTap:         func() { s.selectSelf() },
		Cursor:        interaction.CursorClick,
		OnHoverChange: w.OnHoverChange,
		OnPressChange: w.OnPressChange,
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			if selected {
				states = states.With(widgetstate.Selected)
			}
			return w.Builder(ctx, RadioSnapshot{
				Selected:  selected,
				States:    states,
				Semantics: s.semanticsFor(selected, states),
			})
		},
	}
}

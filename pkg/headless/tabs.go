package headless

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// TabItem is one tab in a [Tabs] strip.
type TabItem struct {
	Label    string
	Disabled bool
}

// TabsSnapshot is the immutable state handed to a tab strip's Builder.
type TabsSnapshot struct {
	Items     []TabItem
	Selected  int
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// Tabs is a headless tab strip with a single selected tab.
//
// The strip holds one focus node; arrow keys move the selection over
// enabled tabs, wrapping at the ends, and Home/End jump to the first and
// last enabled tab by walking the item list directly. Selection follows
// the keyboard immediately, firing OnChanged with the new index.
type Tabs struct {
	core.StatefulBase

	// Items are the tabs in display order.
	Items []TabItem

	// Selected is the index of the selected tab.
	Selected int

	// OnChanged receives the newly selected index.
	OnChanged func(int)

	// Label is the strip's accessible name.
	Label string

	Disabled  bool
	Autofocus bool
	FocusNode *focus.Node
	Keymap    *keyboard.Keymap

	OnHoverChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot TabsSnapshot) core.Widget
}

func (t Tabs) CreateState() core.State { return &TabsState{} }

// TabsState exposes SelectTab for pointer and assistive-technology
// selection.
type TabsState struct {
	core.StateBase
}

func (s *TabsState) widget() Tabs {
	return s.Element().Widget().(Tabs)
}

func (s *TabsState) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnChanged != nil && len(w.Items) > 0
}

func (s *TabsState) commit(index int) {
	w := s.widget()
	if index >= 0 && index != w.Selected {
		w.OnChanged(index)
	}
}

// selectBy moves the selection to the next enabled tab in the given
// direction, wrapping at the ends. One full pass over the items bounds
// the walk.
func (s *TabsState) selectBy(delta int) bool {
	if !s.enabled() {
		return false
	}
	w := s.widget()
	n := len(w.Items)
	idx := w.Selected
	for i := 0; i < n; i++ {
		idx = ((idx+delta)%n + n) % n
		if !w.Items[idx].Disabled {
			s.commit(idx)
			return true
		}
	}
	return true
}

// selectEdge jumps to the first or last enabled tab by scanning the item
// list from the matching end.
func (s *TabsState) selectEdge(last bool) bool {
	if !s.enabled() {
		return false
	}
	w := s.widget()
	if last {
		for i := len(w.Items) - 1; i >= 0; i-- {
			if !w.Items[i].Disabled {
				s.commit(i)
				break
			}
		}
	} else {
		for i := 0; i < len(w.Items); i++ {
			if !w.Items[i].Disabled {
				s.commit(i)
				break
			}
		}
	}
	return true
}

func (s *TabsState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	enabled := s.enabled()
	flags := semantics.Flags(0).With(semantics.HasEnabledState).With(semantics.IsFocusable)
	if enabled {
		flags = flags.With(semantics.IsEnabled)
	}
	if states.Has(widgetstate.Focused) {
		flags = flags.With(semantics.IsFocused)
	}
	value := ""
	if w.Selected >= 0 && w.Selected < len(w.Items) {
		value = w.Items[w.Selected].Label
	}
	return semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Value: value,
			Role:  semantics.RoleTabList,
			Flags: flags,
		},
	}
}

func (s *TabsState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		Disabled:  !s.enabled(),
		Autofocus: w.Autofocus,
		FocusNode: w.FocusNode,
		Family:    keyboard.FamilyTabs,
		Keymap:    w.Keymap,
		Actions: keyboard.ActionMap{
			keyboard.IntentSelectNext:     func() bool { return s.selectBy(1) },
			keyboard.IntentSelectPrevious: func() bool { return s.selectBy(-1) },
			keyboard.IntentJumpFirst:      func() bool { return s.selectEdge(false) },
			keyboard.IntentJumpLast:       func() bool { return s.selectEdge(true) },
		},
		Cursor:        interaction.CursorClick,
		OnHoverChange: w.OnHoverChange,
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, TabsSnapshot{
				Items:     w.Items,
				Selected:  w.Selected,
				States:    states,
				Semantics: s.semanticsFor(states),
			})
		},
	}
}

// SelectTab reports a tab chosen by pointer or assistive technology,
// routing it through the same path as keyboard selection.
func (s *TabsState) SelectTab(index int) {
	if !s.enabled() {
		return
	}
	w := s.widget()
	if index < 0 || index >= len(w.Items) || w.Items[index].Disabled {
		return
	}
	s.commit(index)
}

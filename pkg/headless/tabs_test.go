package headless_test

import (
	"fmt"
	"testing"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/headless"
	"github.com/go-drift/headless/pkg/headlesstest"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
)

type tabStrip struct {
	tester   *headlesstest.WidgetTester
	selected int
	changes  int
	widget   headless.Tabs
}

func newTabStrip(t *testing.T, items []headless.TabItem, selected int) *tabStrip {
	s := &tabStrip{
		tester:   headlesstest.NewWidgetTesterWithT(t),
		selected: selected,
		widget:   headless.Tabs{Items: items},
	}
	s.pump()
	return s
}

func (s *tabStrip) pump() {
	w := s.widget
	w.Selected = s.selected
	w.Autofocus = true
	w.OnChanged = func(index int) {
		s.selected = index
		s.changes++
		s.pump()
	}
	s.tester.PumpWidget(w)
}

func namedTabs(n int) []headless.TabItem {
	items := make([]headless.TabItem, n)
	for i := range items {
		items[i] = headless.TabItem{Label: fmt.Sprintf("Tab %d", i+1)}
	}
	return items
}

func TestTabsArrowSelection(t *testing.T) {
	s := newTabStrip(t, namedTabs(3), 0)

	s.tester.PressKey(keyboard.KeyArrowRight, 0)
	if s.selected != 1 {
		t.Fatalf("ArrowRight selected %d, want 1", s.selected)
	}
	s.tester.PressKey(keyboard.KeyArrowLeft, 0)
	if s.selected != 0 {
		t.Fatalf("ArrowLeft selected %d, want 0", s.selected)
	}
}

func TestTabsArrowWraps(t *testing.T) {
	s := newTabStrip(t, namedTabs(3), 0)

	s.tester.PressKey(keyboard.KeyArrowLeft, 0)
	if s.selected != 2 {
		t.Fatalf("wrap backward selected %d, want 2", s.selected)
	}
	s.tester.PressKey(keyboard.KeyArrowRight, 0)
	if s.selected != 0 {
		t.Fatalf("wrap forward selected %d, want 0", s.selected)
	}
}

func TestTabsSkipDisabled(t *testing.T) {
	items := namedTabs(4)
	items[1].Disabled = true
	items[3].Disabled = true
	s := newTabStrip(t, items, 0)

	s.tester.PressKey(keyboard.KeyArrowRight, 0)
	if s.selected != 2 {
		t.Fatalf("selected %d, want 2 (skipping disabled)", s.selected)
	}
	// 3 is disabled, so forward wraps over it to 0.
	s.tester.PressKey(keyboard.KeyArrowRight, 0)
	if s.selected != 0 {
		t.Fatalf("selected %d, want wrap to 0", s.selected)
	}
}

func TestTabsHomeEnd(t *testing.T) {
	for _, n := range []int{1, 10, 100} {
		s := newTabStrip(t, namedTabs(n), n/2)

		s.tester.PressKey(keyboard.KeyHome, 0)
		if s.selected != 0 {
			t.Fatalf("n=%d: Home selected %d", n, s.selected)
		}
		s.tester.PressKey(keyboard.KeyEnd, 0)
		if s.selected != n-1 {
			t.Fatalf("n=%d: End selected %d", n, s.selected)
		}
		s.tester.Cleanup()
	}
}

func TestTabsEndSkipsTrailingDisabled(t *testing.T) {
	items := namedTabs(5)
	items[4].Disabled = true
	s := newTabStrip(t, items, 0)

	s.tester.PressKey(keyboard.KeyEnd, 0)
	if s.selected != 3 {
		t.Fatalf("End selected %d, want 3", s.selected)
	}
}

func TestTabsSelectTab(t *testing.T) {
	items := namedTabs(3)
	items[1].Disabled = true
	s := newTabStrip(t, items, 0)

	state := headlesstest.StateOf[*headless.TabsState](s.tester.Find(headlesstest.ByType[headless.Tabs]()))
	state.SelectTab(2)
	if s.selected != 2 {
		t.Fatalf("SelectTab selected %d, want 2", s.selected)
	}
	state.SelectTab(1)
	if s.selected != 2 {
		t.Fatalf("SelectTab moved to a disabled tab")
	}
	state.SelectTab(2)
	if s.changes != 1 {
		t.Fatalf("reselecting the current tab reported a change")
	}
}

func TestTabsSingleTabKeysAreConsumedQuietly(t *testing.T) {
	s := newTabStrip(t, namedTabs(1), 0)

	if !s.tester.PressKey(keyboard.KeyArrowRight, 0) {
		t.Fatalf("arrow on single tab not consumed")
	}
	if s.changes != 0 {
		t.Fatalf("single tab reported %d changes", s.changes)
	}
}

func TestTabsSemantics(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	var snapshot headless.TabsSnapshot
	tester.PumpWidget(headless.Tabs{
		Items:     namedTabs(3),
		Selected:  1,
		Label:     "Settings sections",
		OnChanged: func(int) {},
		Builder: func(ctx core.BuildContext, s headless.TabsSnapshot) core.Widget {
			snapshot = s
			return nil
		},
	})

	if snapshot.Semantics.Properties.Role != semantics.RoleTabList {
		t.Fatalf("role = %v", snapshot.Semantics.Properties.Role)
	}
	if snapshot.Semantics.Properties.Value != "Tab 2" {
		t.Fatalf("value = %q", snapshot.Semantics.Properties.Value)
	}
}

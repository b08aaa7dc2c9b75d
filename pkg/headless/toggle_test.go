package headless_test

import (
	"testing"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/headless"
	"github.com/go-drift/headless/pkg/headlesstest"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

func toggleFinder() headlesstest.Finder {
	return headlesstest.ByType[headless.Toggle]()
}

func TestToggleFlipsValue(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	value := false
	pump := func() {
		tester.PumpWidget(headless.Toggle{
			Value:     value,
			Autofocus: true,
			OnChanged: func(next bool) { value = next },
		})
	}

	pump()
	tester.Tap(toggleFinder())
	if !value {
		t.Fatalf("tap did not turn the switch on")
	}

	pump()
	tester.PressKey(keyboard.KeySpace, 0)
	if value {
		t.Fatalf("Space did not turn the switch off")
	}
}

func TestToggleReportsExactlyOncePerActivation(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	calls := 0
	tester.PumpWidget(headless.Toggle{
		Autofocus: true,
		OnChanged: func(bool) { calls++ },
	})

	tester.Tap(toggleFinder())
	if calls != 1 {
		t.Fatalf("tap reported %d times", calls)
	}
	tester.PressKey(keyboard.KeySpace, 0)
	if calls != 2 {
		t.Fatalf("Space reported %d times total, want 2", calls)
	}
}

func TestToggleSelectedStateMirrorsValue(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	var snapshots []headless.ToggleSnapshot
	pump := func(value bool) {
		tester.PumpWidget(headless.Toggle{
			Value:     value,
			OnChanged: func(bool) {},
			Builder: func(ctx core.BuildContext, snapshot headless.ToggleSnapshot) core.Widget {
				snapshots = append(snapshots, snapshot)
				return nil
			},
		})
	}

	pump(true)
	last := snapshots[len(snapshots)-1]
	if !last.States.Has(widgetstate.Selected) {
		t.Fatalf("on switch missing selected state: %v", last.States)
	}

	pump(false)
	last = snapshots[len(snapshots)-1]
	if last.States.Has(widgetstate.Selected) {
		t.Fatalf("off switch kept selected state: %v", last.States)
	}
}

func TestToggleSemantics(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	var config semantics.Configuration
	tester.PumpWidget(headless.Toggle{
		Value:     true,
		Label:     "Wi-Fi",
		OnChanged: func(bool) {},
		Builder: func(ctx core.BuildContext, snapshot headless.ToggleSnapshot) core.Widget {
			config = snapshot.Semantics
			return nil
		},
	})

	if config.Properties.Role != semantics.RoleSwitch {
		t.Fatalf("role = %v", config.Properties.Role)
	}
	if !config.Properties.Flags.Has(semantics.HasToggledState) || !config.Properties.Flags.Has(semantics.IsToggled) {
		t.Fatalf("flags = %v", config.Properties.Flags)
	}
	if config.Properties.Value != "On" {
		t.Fatalf("value = %q", config.Properties.Value)
	}
}

func TestToggleDisabled(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	calls := 0
	tester.PumpWidget(headless.Toggle{
		Disabled:  true,
		OnChanged: func(bool) { calls++ },
	})

	tester.Tap(toggleFinder())
	if calls != 0 {
		t.Fatalf("disabled switch reported %d changes", calls)
	}
}

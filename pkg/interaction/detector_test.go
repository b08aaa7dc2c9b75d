package interaction_test

import (
	"testing"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/headlesstest"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/widgetstate"
)

func detectorFinder() headlesstest.Finder {
	return headlesstest.ByType[interaction.Detector]()
}

func detectorState(t *testing.T, tester *headlesstest.WidgetTester) *interaction.DetectorState {
	t.Helper()
	return headlesstest.StateOf[*interaction.DetectorState](tester.Find(detectorFinder()))
}

func nilBuilder(ctx core.BuildContext, states widgetstate.Set) core.Widget {
	return nil
}

func TestDetectorHoverAndPress(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	var hovers, presses []bool
	tester.PumpWidget(interaction.Detector{
		OnHoverChange: func(v bool) { hovers = append(hovers, v) },
		OnPressChange: func(v bool) { presses = append(presses, v) },
		Builder:       nilBuilder,
	})

	tester.Hover(detectorFinder())
	state := detectorState(t, tester)
	if !state.States().Has(widgetstate.Hovered) {
		t.Fatalf("hover did not set the hovered state")
	}

	tester.PressPointer(detectorFinder())
	if !state.States().Has(widgetstate.Pressed) {
		t.Fatalf("pointer down did not set the pressed state")
	}

	tester.ReleasePointer(detectorFinder())
	tester.Unhover(detectorFinder())
	if state.States().Has(widgetstate.Pressed) || state.States().Has(widgetstate.Hovered) {
		t.Fatalf("states not cleared: %v", state.States())
	}

	if len(hovers) != 2 || hovers[0] != true || hovers[1] != false {
		t.Fatalf("hover callbacks = %v", hovers)
	}
	if len(presses) != 2 || presses[0] != true || presses[1] != false {
		t.Fatalf("press callbacks = %v", presses)
	}
}

func TestDetectorTapFiresOnCompletedPress(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	taps := 0
	tester.PumpWidget(interaction.Detector{
		OnTap:   func() { taps++ },
		Builder: nilBuilder,
	})

	tester.Tap(detectorFinder())
	if taps != 1 {
		t.Fatalf("tap fired %d times, want 1", taps)
	}

	// A cancelled press does not tap.
	tester.PressPointer(detectorFinder())
	tester.CancelPointer(detectorFinder())
	tester.ReleasePointer(detectorFinder())
	if taps != 1 {
		t.Fatalf("cancelled press fired a tap")
	}
}

func TestDetectorPointerDownFocuses(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)
	tester.PumpWidget(interaction.Detector{Builder: nilBuilder})

	tester.PressPointer(detectorFinder())
	state := detectorState(t, tester)
	if !state.FocusHandle().HasFocus() {
		t.Fatalf("pointer down did not focus the detector")
	}
	if !state.States().Has(widgetstate.Focused) {
		t.Fatalf("focused state not tracked: %v", state.States())
	}
}

func TestDetectorDisabledIgnoresPointer(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	taps, hovers := 0, 0
	tester.PumpWidget(interaction.Detector{
		Disabled:      true,
		OnTap:         func() { taps++ },
		OnHoverChange: func(bool) { hovers++ },
		Builder:       nilBuilder,
	})

	tester.Hover(detectorFinder())
	tester.Tap(detectorFinder())

	state := detectorState(t, tester)
	if !state.States().Has(widgetstate.Disabled) {
		t.Fatalf("disabled state not set")
	}
	if state.States().Has(widgetstate.Hovered) || state.States().Has(widgetstate.Pressed) {
		t.Fatalf("disabled detector tracked pointer states: %v", state.States())
	}
	if taps != 0 || hovers != 0 {
		t.Fatalf("disabled detector fired callbacks: taps=%d hovers=%d", taps, hovers)
	}
}

func TestDetectorDisablingClearsTransientStatesSilently(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	hovers, presses := 0, 0
	build := func(disabled bool) interaction.Detector {
		return interaction.Detector{
			Disabled:      disabled,
			OnHoverChange: func(bool) { hovers++ },
			OnPressChange: func(bool) { presses++ },
			Builder:       nilBuilder,
		}
	}

	tester.PumpWidget(build(false))
	tester.Hover(detectorFinder())
	tester.PressPointer(detectorFinder())
	hovers, presses = 0, 0

	tester.PumpWidget(build(true))
	state := detectorState(t, tester)
	if state.States().Has(widgetstate.Hovered) || state.States().Has(widgetstate.Pressed) {
		t.Fatalf("disabling did not clear transient states: %v", state.States())
	}
	if hovers != 0 || presses != 0 {
		t.Fatalf("clearing on disable fired callbacks: hovers=%d presses=%d", hovers, presses)
	}
}

func TestDetectorShortcutDispatch(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	activations := 0
	tester.PumpWidget(interaction.Detector{
		Family: keyboard.FamilyButton,
		Actions: keyboard.ActionMap{
			keyboard.IntentActivate: func() bool { activations++; return true },
		},
		Builder: nilBuilder,
	})

	detectorState(t, tester).FocusHandle().RequestFocus()
	if !tester.PressKey(keyboard.KeyEnter, 0) {
		t.Fatalf("Enter not consumed")
	}
	if activations != 1 {
		t.Fatalf("activation fired %d times", activations)
	}

	// Unbound chords fall through.
	if tester.PressKey(keyboard.KeyArrowUp, 0) {
		t.Fatalf("unbound chord reported handled")
	}
}

func TestDetectorDisabledDetachesKeyHandler(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	activations := 0
	tester.PumpWidget(interaction.Detector{
		Disabled: true,
		Family:   keyboard.FamilyButton,
		Actions: keyboard.ActionMap{
			keyboard.IntentActivate: func() bool { activations++; return true },
		},
		Builder: nilBuilder,
	})

	node := detectorState(t, tester).FocusHandle()
	if node.OnKeyEvent != nil {
		t.Fatalf("disabled detector left its key handler attached")
	}
	if node.CanRequestFocus {
		t.Fatalf("disabled detector can still request focus")
	}
	if !node.Inert {
		t.Fatalf("disabled detector's node not marked inert")
	}
}

func TestDetectorExternalController(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	controller := widgetstate.NewController(widgetstate.Set{})
	defer controller.Dispose()
	tester.PumpWidget(interaction.Detector{
		Controller: controller,
		Builder:    nilBuilder,
	})

	tester.Hover(detectorFinder())
	if !controller.Value().Has(widgetstate.Hovered) {
		t.Fatalf("external controller did not observe the hover")
	}
}

func TestDetectorFallbackKeyHandler(t *testing.T) {
	tester := headlesstest.NewWidgetTesterWithT(t)

	var runes []rune
	tester.PumpWidget(interaction.Detector{
		Family: keyboard.FamilyButton,
		OnKeyEvent: func(event keyboard.Event) focus.KeyEventResult {
			if event.IsPress() && event.Key == keyboard.KeyRune {
				runes = append(runes, event.Rune)
				return focus.Handled
			}
			return focus.Ignored
		},
		Builder: nilBuilder,
	})

	detectorState(t, tester).FocusHandle().RequestFocus()
	tester.TypeRune('x')
	if len(runes) != 1 || runes[0] != 'x' {
		t.Fatalf("fallback handler runes = %q", string(runes))
	}
}

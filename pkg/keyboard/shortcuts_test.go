package keyboard

import "testing"

func TestChordExactModifierMatch(t *testing.T) {
	chord := Chord{Key: KeyArrowUp}

	plain := Event{Key: KeyArrowUp, Phase: PhaseDown}
	if !chord.Matches(plain) {
		t.Fatalf("plain ArrowUp did not match")
	}

	shifted := Event{Key: KeyArrowUp, Modifiers: ModShift, Phase: PhaseDown}
	if chord.Matches(shifted) {
		t.Fatalf("Shift+ArrowUp matched the unmodified chord")
	}

	shiftChord := Chord{Key: KeyArrowUp, Modifiers: ModShift}
	if !shiftChord.Matches(shifted) {
		t.Fatalf("Shift+ArrowUp did not match its chord")
	}
	if shiftChord.Matches(plain) {
		t.Fatalf("plain ArrowUp matched the shifted chord")
	}
}

func TestChordPhases(t *testing.T) {
	chord := Chord{Key: KeyEnter}
	if chord.Matches(Event{Key: KeyEnter, Phase: PhaseUp}) {
		t.Fatalf("key release matched a chord")
	}
	if !chord.Matches(Event{Key: KeyEnter, Phase: PhaseRepeat}) {
		t.Fatalf("auto-repeat did not match")
	}
}

func TestShortcutMapFirstBindingWins(t *testing.T) {
	m := ShortcutMap{
		{Chord{Key: KeySpace}, IntentActivate},
		{Chord{Key: KeySpace}, IntentToggle},
	}
	intent, ok := m.Match(Event{Key: KeySpace, Phase: PhaseDown})
	if !ok || intent != IntentActivate {
		t.Fatalf("Match = %v, %v; want IntentActivate", intent, ok)
	}
}

func TestShortcutMapNoMatch(t *testing.T) {
	m := DefaultShortcuts(FamilyButton)
	intent, ok := m.Match(Event{Key: KeyArrowUp, Phase: PhaseDown})
	if ok || intent != IntentNone {
		t.Fatalf("unexpected match: %v, %v", intent, ok)
	}
}

func TestDefaultShortcutsPerFamily(t *testing.T) {
	cases := []struct {
		family Family
		event  Event
		intent Intent
	}{
		{FamilyButton, Event{Key: KeyEnter, Phase: PhaseDown}, IntentActivate},
		{FamilyButton, Event{Key: KeySpace, Phase: PhaseDown}, IntentActivate},
		{FamilyCheckbox, Event{Key: KeySpace, Phase: PhaseDown}, IntentToggle},
		{FamilyRadio, Event{Key: KeyArrowDown, Phase: PhaseDown}, IntentSelectNext},
		{FamilyRadio, Event{Key: KeyArrowUp, Phase: PhaseDown}, IntentSelectPrevious},
		{FamilySlider, Event{Key: KeyArrowUp, Phase: PhaseDown}, IntentStepUp},
		{FamilySlider, Event{Key: KeyArrowUp, Modifiers: ModShift, Phase: PhaseDown}, IntentStepUpLarge},
		{FamilySlider, Event{Key: KeyHome, Phase: PhaseDown}, IntentStepToMin},
		{FamilySlider, Event{Key: KeyEnd, Phase: PhaseDown}, IntentStepToMax},
		{FamilySelect, Event{Key: KeyEscape, Phase: PhaseDown}, IntentDismiss},
		{FamilySelect, Event{Key: KeyPageDown, Phase: PhaseDown}, IntentPageDown},
		{FamilyTabs, Event{Key: KeyHome, Phase: PhaseDown}, IntentJumpFirst},
		{FamilyTabs, Event{Key: KeyEnd, Phase: PhaseDown}, IntentJumpLast},
		{FamilyDialog, Event{Key: KeyEscape, Phase: PhaseDown}, IntentDismiss},
	}
	for _, tc := range cases {
		intent, ok := DefaultShortcuts(tc.family).Match(tc.event)
		if !ok || intent != tc.intent {
			t.Errorf("%v %v: got %v, %v; want %v", tc.family, tc.event.Key, intent, ok, tc.intent)
		}
	}
}

func TestDefaultShortcutsReturnsCopy(t *testing.T) {
	table := DefaultShortcuts(FamilyButton)
	table[0].Intent = IntentDismiss
	fresh := DefaultShortcuts(FamilyButton)
	if fresh[0].Intent == IntentDismiss {
		t.Fatalf("mutating the returned table changed the defaults")
	}
}

func TestActionMapInvoke(t *testing.T) {
	fired := 0
	m := ActionMap{
		IntentActivate: func() bool { fired++; return true },
		IntentToggle:   func() bool { return false },
	}
	if !m.Invoke(IntentActivate) {
		t.Fatalf("bound handler not invoked")
	}
	if fired != 1 {
		t.Fatalf("handler fired %d times", fired)
	}
	if m.Invoke(IntentToggle) {
		t.Fatalf("handler returning false reported consumed")
	}
	if m.Invoke(IntentDismiss) {
		t.Fatalf("unbound intent reported consumed")
	}
}

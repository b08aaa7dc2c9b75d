package keyboard

import "testing"

func TestParseChord(t *testing.T) {
	chord, err := ParseChord("shift+arrowup")
	if err != nil {
		t.Fatalf("ParseChord: %v", err)
	}
	if chord.Key != KeyArrowUp || chord.Modifiers != ModShift {
		t.Fatalf("chord = %+v", chord)
	}

	chord, err = ParseChord("ctrl+alt+delete")
	if err != nil {
		t.Fatalf("ParseChord: %v", err)
	}
	if chord.Key != KeyDelete || chord.Modifiers != ModControl|ModAlt {
		t.Fatalf("chord = %+v", chord)
	}

	if _, err := ParseChord("superkey"); err == nil {
		t.Fatalf("unknown key accepted")
	}
	if _, err := ParseChord("hyper+enter"); err == nil {
		t.Fatalf("unknown modifier accepted")
	}
}

func TestLoadKeymapOverridesFamily(t *testing.T) {
	doc := []byte(`
slider:
  step-up: [arrowup]
  step-to-max: [shift+end]
`)
	km, err := LoadKeymap(doc)
	if err != nil {
		t.Fatalf("LoadKeymap: %v", err)
	}

	table := km.ShortcutsFor(FamilySlider)
	intent, ok := table.Match(Event{Key: KeyArrowUp, Phase: PhaseDown})
	if !ok || intent != IntentStepUp {
		t.Fatalf("override arrowup: got %v, %v", intent, ok)
	}

	// The override replaces the family table; unlisted default chords
	// are gone.
	if _, ok := table.Match(Event{Key: KeyHome, Phase: PhaseDown}); ok {
		t.Fatalf("overridden family kept a default chord")
	}

	intent, ok = table.Match(Event{Key: KeyEnd, Modifiers: ModShift, Phase: PhaseDown})
	if !ok || intent != IntentStepToMax {
		t.Fatalf("shift+end: got %v, %v", intent, ok)
	}
}

func TestKeymapFallsBackToDefaults(t *testing.T) {
	km, err := LoadKeymap([]byte(`dialog: {dismiss: [escape]}`))
	if err != nil {
		t.Fatalf("LoadKeymap: %v", err)
	}
	intent, ok := km.ShortcutsFor(FamilyButton).Match(Event{Key: KeyEnter, Phase: PhaseDown})
	if !ok || intent != IntentActivate {
		t.Fatalf("unoverridden family lost its defaults: %v, %v", intent, ok)
	}
}

func TestNilKeymapUsesDefaults(t *testing.T) {
	var km *Keymap
	intent, ok := km.ShortcutsFor(FamilyCheckbox).Match(Event{Key: KeySpace, Phase: PhaseDown})
	if !ok || intent != IntentToggle {
		t.Fatalf("nil keymap: got %v, %v", intent, ok)
	}
}

func TestLoadKeymapRejectsUnknownNames(t *testing.T) {
	if _, err := LoadKeymap([]byte(`carousel: {activate: [enter]}`)); err == nil {
		t.Fatalf("unknown family accepted")
	}
	if _, err := LoadKeymap([]byte(`button: {launch: [enter]}`)); err == nil {
		t.Fatalf("unknown intent accepted")
	}
	if _, err := LoadKeymap([]byte("button: [broken")); err == nil {
		t.Fatalf("malformed YAML accepted")
	}
}

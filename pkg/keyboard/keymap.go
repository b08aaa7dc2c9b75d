package keyboard

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keymap holds per-family shortcut overrides loaded from configuration.
// Families without an override fall back to the built-in defaults, so a
// keymap document only needs to list the chords it changes.
//
// Document format (YAML):
//
//	slider:
//	  step-up: [arrowup, arrowright]
//	  step-up-large: [shift+arrowup]
//	select:
//	  dismiss: [escape]
//
// Top-level keys are family names, nested keys are intent names, and
// values are lists of chord strings ("shift+arrowup", "enter").
type Keymap struct {
	overrides map[Family]ShortcutMap
}

// LoadKeymap parses a YAML keymap document.
func LoadKeymap(data []byte) (*Keymap, error) {
	var doc map[string]map[string][]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("keyboard: parse keymap: %w", err)
	}

	km := &Keymap{overrides: make(map[Family]ShortcutMap)}
	for familyName, intents := range doc {
		family, ok := familyNames[familyName]
		if !ok {
			return nil, fmt.Errorf("keyboard: unknown component family %q", familyName)
		}
		var table ShortcutMap
		for intentName, chords := range intents {
			intent, ok := intentNames[intentName]
			if !ok {
				return nil, fmt.Errorf("keyboard: unknown intent %q for family %q", intentName, familyName)
			}
			for _, spec := range chords {
				chord, err := ParseChord(spec)
				if err != nil {
					return nil, err
				}
				table = append(table, Binding{Chord: chord, Intent: intent})
			}
		}
		km.overrides[family] = table
	}
	return km, nil
}

// ShortcutsFor returns the effective chord table for the family: the
// override when present, otherwise the built-in defaults.
func (k *Keymap) ShortcutsFor(family Family) ShortcutMap {
	if k != nil {
		if table, ok := k.overrides[family]; ok {
			out := make(ShortcutMap, len(table))
			copy(out, table)
			return out
		}
	}
	return DefaultShortcuts(family)
}

// keyNames maps chord string components to keys.
var keyNames = map[string]Key{
	"enter":      KeyEnter,
	"space":      KeySpace,
	"escape":     KeyEscape,
	"tab":        KeyTab,
	"backspace":  KeyBackspace,
	"delete":     KeyDelete,
	"arrowup":    KeyArrowUp,
	"arrowdown":  KeyArrowDown,
	"arrowleft":  KeyArrowLeft,
	"arrowright": KeyArrowRight,
	"home":       KeyHome,
	"end":        KeyEnd,
	"pageup":     KeyPageUp,
	"pagedown":   KeyPageDown,
}

// ParseChord parses a chord string such as "enter" or "shift+arrowup".
// Modifier names are shift, ctrl, alt, and meta; the final component must
// be a key name.
func ParseChord(spec string) (Chord, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	chord := Chord{}
	for i, part := range parts {
		if i == len(parts)-1 {
			key, ok := keyNames[part]
			if !ok {
				return Chord{}, fmt.Errorf("keyboard: unknown key %q in chord %q", part, spec)
			}
			chord.Key = key
			continue
		}
		switch part {
		case "shift":
			chord.Modifiers |= ModShift
		case "ctrl", "control":
			chord.Modifiers |= ModControl
		case "alt":
			chord.Modifiers |= ModAlt
		case "meta", "cmd":
			chord.Modifiers |= ModMeta
		default:
			return Chord{}, fmt.Errorf("keyboard: unknown modifier %q in chord %q", part, spec)
		}
	}
	return chord, nil
}

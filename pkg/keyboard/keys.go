// Package keyboard maps raw key events to semantic component operations.
//
// The package decouples physical input from behavior in three layers:
//
//   - [Event] describes one raw key press, release, or repeat.
//   - [Chord] matches a key plus an exact modifier combination, and a
//     [ShortcutMap] resolves a matching chord to an [Intent].
//   - [ActionMap] binds intents to handler closures capturing the owning
//     component's current parameters (bounds, step size, direction).
//
// Shortcut tables are per component family and process-wide; action maps
// are per instance and rebuilt whenever the instance's parameters change,
// so handlers never act on stale bounds.
package keyboard

// Key identifies a logical key on the keyboard.
type Key int

const (
	// KeyNone matches no key.
	KeyNone Key = iota
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// KeyRune indicates a printable character event; the character is in
	// [Event.Rune].
	KeyRune
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyArrowUp:
		return "arrowup"
	case KeyArrowDown:
		return "arrowdown"
	case KeyArrowLeft:
		return "arrowleft"
	case KeyArrowRight:
		return "arrowright"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyRune:
		return "rune"
	default:
		return "none"
	}
}

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Phase describes the kind of key event.
type Phase int

const (
	// PhaseDown is the initial press of a key.
	PhaseDown Phase = iota
	// PhaseRepeat is an auto-repeat of a held key.
	PhaseRepeat
	// PhaseUp is the release of a key.
	PhaseUp
)

// Event is one raw keyboard event delivered by the host.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
	Phase     Phase
}

// IsPress reports whether the event is a press or auto-repeat, the phases
// on which shortcuts activate.
func (e Event) IsPress() bool {
	return e.Phase == PhaseDown || e.Phase == PhaseRepeat
}

package keyboard

// Chord matches one key pressed with an exact modifier combination.
type Chord struct {
	Key       Key
	Modifiers Modifier
}

// Matches reports whether the event presses this chord. Modifiers must
// match exactly so Shift+ArrowUp does not also trigger the ArrowUp chord.
func (c Chord) Matches(event Event) bool {
	return event.IsPress() && event.Key == c.Key && event.Modifiers == c.Modifiers
}

// Binding associates a chord with the intent it triggers.
type Binding struct {
	Chord  Chord
	Intent Intent
}

// ShortcutMap is an ordered list of chord bindings. Earlier bindings win
// when chords overlap.
type ShortcutMap []Binding

// Match resolves an event to an intent. Returns IntentNone and false when
// no binding matches.
func (m ShortcutMap) Match(event Event) (Intent, bool) {
	for _, binding := range m {
		if binding.Chord.Matches(event) {
			return binding.Intent, true
		}
	}
	return IntentNone, false
}

// ActionMap binds intents to handlers for one component instance.
// Handlers return true when they consumed the intent; returning false
// lets the event continue to ancestors.
//
// Action maps are rebuilt on every build pass so handler closures always
// capture the instance's current parameters. They must not be cached
// across builds.
type ActionMap map[Intent]func() bool

// Invoke runs the handler bound to the intent, if any.
func (m ActionMap) Invoke(intent Intent) bool {
	if handler, ok := m[intent]; ok && handler != nil {
		return handler()
	}
	return false
}

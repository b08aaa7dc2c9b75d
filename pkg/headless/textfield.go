package headless

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// TextFieldSnapshot is the immutable state handed to a text field's
// Builder.
type TextFieldSnapshot struct {
	Value string
	// Caret is the cursor position in runes, 0..len(runes).
	Caret     int
	Obscured  bool
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// TextField is a headless single-line text input.
//
// Typing inserts at the caret; Backspace and Delete remove around it;
// the arrow keys and Home/End move it. The field is controlled: every
// edit reports the resulting string through OnChanged while the caret
// position lives in the field's own state and is clamped to the value
// in effect, including when the host declines an edit or shrinks the
// value underneath it.
//
// Obscured fields (passwords) never forward their literal content to
// assistive technology; the semantic value stays empty and the obscured
// flag is set instead.
type TextField struct {
	core.StatefulBase

	// Value is the current text.
	Value string

	// OnChanged receives the edited text.
	OnChanged func(string)

	// OnSubmitted fires when Enter is pressed.
	OnSubmitted func(string)

	// Obscured hides the content (password entry).
	Obscured bool

	// MaxLength caps the text length in runes. Zero means unlimited.
	MaxLength int

	// Label is the accessible name.
	Label string

	Disabled  bool
	Autofocus bool
	FocusNode *focus.Node

	OnHoverChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot TextFieldSnapshot) core.Widget
}

func (t TextField) CreateState() core.State { return &textFieldState{} }

type textFieldState struct {
	core.StateBase
	caret int
}

func (s *textFieldState) widget() TextField {
	return s.Element().Widget().(TextField)
}

func (s *textFieldState) InitState() {
	s.caret = len([]rune(s.widget().Value))
}

func (s *textFieldState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if n := len([]rune(s.widget().Value)); s.caret > n {
		s.caret = n
	}
}

func (s *textFieldState) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnChanged != nil
}

func (s *textFieldState) setCaret(caret int) {
	runes := []rune(s.widget().Value)
	if caret < 0 {
		caret = 0
	}
	if caret > len(runes) {
		caret = len(runes)
	}
	if caret != s.caret {
		s.SetState(func() { s.caret = caret })
	}
}

// caretIn clamps the stored caret to the given text. The host may
// decline a reported edit and keep the old value, leaving the stored
// caret past the end.
func (s *textFieldState) caretIn(runes []rune) int {
	if s.caret > len(runes) {
		return len(runes)
	}
	if s.caret < 0 {
		return 0
	}
	return s.caret
}

func (s *textFieldState) insert(r rune) {
	w := s.widget()
	runes := []rune(w.Value)
	if w.MaxLength > 0 && len(runes) >= w.MaxLength {
		return
	}
	caret := s.caretIn(runes)
	next := make([]rune, 0, len(runes)+1)
	next = append(next, runes[:caret]...)
	next = append(next, r)
	next = append(next, runes[caret:]...)
	s.caret = caret + 1
	w.OnChanged(string(next))
}

func (s *textFieldState) deleteBackward() {
	w := s.widget()
	runes := []rune(w.Value)
	caret := s.caretIn(runes)
	if caret == 0 {
		return
	}
	next := append(append([]rune{}, runes[:caret-1]...), runes[caret:]...)
	s.caret = caret - 1
	w.OnChanged(string(next))
}

func (s *textFieldState) deleteForward() {
	w := s.widget()
	runes := []rune(w.Value)
	caret := s.caretIn(runes)
	if caret >= len(runes) {
		return
	}
	next := append(append([]rune{}, runes[:caret]...), runes[caret+1:]...)
	w.OnChanged(string(next))
}

func (s *textFieldState) handleKey(event keyboard.Event) focus.KeyEventResult {
	if !event.IsPress() || !s.enabled() {
		return focus.Ignored
	}
	w := s.widget()
	switch event.Key {
	case keyboard.KeyRune:
		if event.Modifiers&(keyboard.ModControl|keyboard.ModAlt|keyboard.ModMeta) != 0 {
			return focus.Ignored
		}
		s.insert(event.Rune)
	case keyboard.KeySpace:
		s.insert(' ')
	case keyboard.KeyBackspace:
		s.deleteBackward()
	case keyboard.KeyDelete:
		s.deleteForward()
	case keyboard.KeyArrowLeft:
		s.setCaret(s.caret - 1)
	case keyboard.KeyArrowRight:
		s.setCaret(s.caret + 1)
	case keyboard.KeyHome:
		s.setCaret(0)
	case keyboard.KeyEnd:
		s.setCaret(len([]rune(w.Value)))
	case keyboard.KeyEnter:
		if w.OnSubmitted != nil {
			w.OnSubmitted(w.Value)
		}
	default:
		return focus.Ignored
	}
	return focus.Handled
}

func (s *textFieldState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	flags := semantics.Flags(0).With(semantics.HasEnabledState).With(semantics.IsFocusable)
	if s.enabled() {
		flags = flags.With(semantics.IsEnabled)
	}
	if states.Has(widgetstate.Focused) {
		flags = flags.With(semantics.IsFocused)
	}
	value := w.Value
	if w.Obscured {
		flags = flags.With(semantics.IsObscured)
		value = ""
	}
	return semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Value: value,
			Role:  semantics.RoleTextField,
			Flags: flags,
		},
	}
}

func (s *textFieldState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		Disabled:  !s.enabled(),
		Autofocus: w.Autofocus,
		FocusNode: w.FocusNode,
		// Text editing consumes keys directly; no chord table applies.
		Shortcuts:     keyboard.ShortcutMap{},
		OnKeyEvent:    s.handleKey,
		Cursor:        interaction.CursorText,
		OnHoverChange: w.OnHoverChange,
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, TextFieldSnapshot{
				Value:     w.Value,
				Caret:     s.caretIn([]rune(w.Value)),
				Obscured:  w.Obscured,
				States:    states,
				Semantics: s.semanticsFor(states),
			})
		},
	}
}

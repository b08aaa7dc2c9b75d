package headless

import (
	"math"
	"strconv"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/errors"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

// SliderSnapshot is the immutable state handed to a slider's Builder.
type SliderSnapshot struct {
	Value float64
	Min   float64
	Max   float64
	// Fraction is the value's position along the track in [0, 1].
	Fraction  float64
	Dragging  bool
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// Slider is a headless adjustable value in a [Min, Max] range.
//
// Arrow keys step the value, Shift+arrows take the large step, and
// Home/End jump to the ends. The host's gesture layer drives dragging by
// projecting the pointer onto the track and calling HandleDragStart,
// HandleDragUpdate, and HandleDragEnd on the slider state with the
// resulting track fraction.
//
// Values are always normalized before they are reported: NaN becomes
// Min, out-of-range values clamp, and with Divisions set the value snaps
// to the nearest division. Min must be strictly less than Max; anything
// else panics at first build.
type Slider struct {
	core.StatefulBase

	// Value is the current value.
	Value float64

	// Min and Max bound the value. Min must be less than Max.
	Min float64
	Max float64

	// Divisions, when positive, restricts the value to that many discrete
	// intervals. Zero means continuous.
	Divisions int

	// Step is the small keyboard step. Zero derives it from Divisions, or
	// one hundredth of the range for continuous sliders.
	Step float64

	// OnChanged receives every normalized value change.
	OnChanged func(float64)

	// OnChangeStart fires when a drag begins, with the value at that point.
	OnChangeStart func(float64)

	// OnChangeEnd fires when a drag completes, with the final value.
	OnChangeEnd func(float64)

	// RTL flips the horizontal arrow keys and the drag axis for
	// right-to-left layouts.
	RTL bool

	// Label is the accessible name.
	Label string

	Disabled  bool
	Autofocus bool
	FocusNode *focus.Node
	Keymap    *keyboard.Keymap

	OnHoverChange func(bool)
	OnFocusChange func(bool)

	Builder func(ctx core.BuildContext, snapshot SliderSnapshot) core.Widget
}

func (s Slider) CreateState() core.State { return &SliderState{} }

func (s Slider) validate() {
	if s.Min >= s.Max {
		panic(errors.Configf("headless.Slider", "Min (%v) must be less than Max (%v)", s.Min, s.Max))
	}
	if s.Divisions < 0 {
		panic(errors.Configf("headless.Slider", "Divisions must not be negative, got %d", s.Divisions))
	}
}

// normalize clamps and snaps a candidate value into the slider's domain.
func (s Slider) normalize(value float64) float64 {
	if math.IsNaN(value) {
		return s.Min
	}
	if value < s.Min {
		value = s.Min
	}
	if value > s.Max {
		value = s.Max
	}
	if s.Divisions > 0 {
		d := float64(s.Divisions)
		value = s.Min + math.Round((value-s.Min)/(s.Max-s.Min)*d)/d*(s.Max-s.Min)
	}
	return value
}

// fraction returns the value's position along the track in [0, 1]. The
// value is normalized first so a NaN or out-of-range host value never
// reaches the snapshot or the accessibility percentage.
func (s Slider) fraction(value float64) float64 {
	value = s.normalize(value)
	if s.Max == s.Min {
		return 0
	}
	return (value - s.Min) / (s.Max - s.Min)
}

func (s Slider) step() float64 {
	if s.Step > 0 {
		return s.Step
	}
	if s.Divisions > 0 {
		return (s.Max - s.Min) / float64(s.Divisions)
	}
	return (s.Max - s.Min) / 100
}

func (s Slider) largeStep() float64 {
	return s.step() * 10
}

// SliderState exposes the drag entry points the host's gesture layer
// calls with projected track fractions.
type SliderState struct {
	core.StateBase
	controller *widgetstate.Controller

	dragging   bool
	pending    float64
	pendingSet bool
}

func (s *SliderState) widget() Slider {
	return s.Element().Widget().(Slider)
}

func (s *SliderState) InitState() {
	s.widget().validate()
	s.controller = widgetstate.NewController(widgetstate.Set{})
	s.OnDispose(s.controller.Dispose)
}

func (s *SliderState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.widget()
	w.validate()
	if s.dragging && (w.Disabled || w.OnChanged == nil) {
		s.abandonDrag()
	}
}

// abandonDrag ends a drag cut short by disabling. The transient states
// clear silently through the detector's disabled sync; the last pending
// value is still reported, once, so the owner does not lose the edit.
func (s *SliderState) abandonDrag() {
	s.dragging = false
	if s.pendingSet {
		s.pendingSet = false
		if end := s.widget().OnChangeEnd; end != nil {
			end(s.pending)
		}
	}
}

func (s *SliderState) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnChanged != nil
}

// stepBy applies a keyboard step. The handler reads the widget at call
// time so bounds and step size are never stale.
func (s *SliderState) stepBy(delta float64) bool {
	if !s.enabled() {
		return false
	}
	w := s.widget()
	next := w.normalize(w.Value + delta)
	if next != w.Value {
		w.OnChanged(next)
	}
	return true
}

func (s *SliderState) jumpTo(value float64) bool {
	if !s.enabled() {
		return false
	}
	w := s.widget()
	next := w.normalize(value)
	if next != w.Value {
		w.OnChanged(next)
	}
	return true
}

// valueAt converts a track fraction to a value, honoring RTL direction.
func (s *SliderState) valueAt(fraction float64) float64 {
	w := s.widget()
	if w.RTL {
		fraction = 1 - fraction
	}
	return w.normalize(w.Min + fraction*(w.Max-w.Min))
}

// HandleDragStart begins a drag at the given track fraction.
func (s *SliderState) HandleDragStart(fraction float64) {
	if !s.enabled() || s.dragging {
		return
	}
	w := s.widget()
	s.dragging = true
	s.controller.Replace(s.controller.Value().With(widgetstate.Dragged).With(widgetstate.Pressed))
	if w.OnChangeStart != nil {
		w.OnChangeStart(w.Value)
	}
	s.HandleDragUpdate(fraction)
}

// HandleDragUpdate moves the drag to the given track fraction, reporting
// the normalized value when it differs from the last one reported.
func (s *SliderState) HandleDragUpdate(fraction float64) {
	if !s.dragging {
		return
	}
	w := s.widget()
	next := s.valueAt(fraction)
	if s.pendingSet && next == s.pending {
		return
	}
	if !s.pendingSet && next == w.Value {
		return
	}
	s.pending = next
	s.pendingSet = true
	w.OnChanged(next)
}

// HandleDragEnd completes the drag.
func (s *SliderState) HandleDragEnd() {
	if !s.dragging {
		return
	}
	w := s.widget()
	s.dragging = false
	s.controller.Replace(s.controller.Value().Without(widgetstate.Dragged).Without(widgetstate.Pressed))
	final := w.Value
	if s.pendingSet {
		final = s.pending
		s.pendingSet = false
	}
	if w.OnChangeEnd != nil {
		w.OnChangeEnd(final)
	}
}

// shortcuts returns the slider chord table, with the horizontal arrows
// mirrored under RTL so ArrowRight always moves toward the track's end.
func (s *SliderState) shortcuts(w Slider) keyboard.ShortcutMap {
	table := w.Keymap.ShortcutsFor(keyboard.FamilySlider)
	if !w.RTL {
		return table
	}
	for i, binding := range table {
		if binding.Chord.Key != keyboard.KeyArrowLeft && binding.Chord.Key != keyboard.KeyArrowRight {
			continue
		}
		switch binding.Intent {
		case keyboard.IntentStepUp:
			table[i].Intent = keyboard.IntentStepDown
		case keyboard.IntentStepDown:
			table[i].Intent = keyboard.IntentStepUp
		case keyboard.IntentStepUpLarge:
			table[i].Intent = keyboard.IntentStepDownLarge
		case keyboard.IntentStepDownLarge:
			table[i].Intent = keyboard.IntentStepUpLarge
		}
	}
	return table
}

func (s *SliderState) semanticsFor(states widgetstate.Set) semantics.Configuration {
	w := s.widget()
	enabled := s.enabled()
	flags := semantics.Flags(0).With(semantics.HasEnabledState).With(semantics.IsFocusable)
	if enabled {
		flags = flags.With(semantics.IsEnabled)
	}
	if states.Has(widgetstate.Focused) {
		flags = flags.With(semantics.IsFocused)
	}
	percent := int(math.Round(w.fraction(w.Value) * 100))
	config := semantics.Configuration{
		Properties: semantics.Properties{
			Label: w.Label,
			Value: strconv.Itoa(percent) + "%",
			Role:  semantics.RoleSlider,
			Flags: flags,
		},
	}
	if enabled {
		config.Actions.OnIncrease = func() { s.stepBy(w.step()) }
		config.Actions.OnDecrease = func() { s.stepBy(-w.step()) }
	}
	return config
}

func (s *SliderState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		Disabled:   !s.enabled(),
		Autofocus:  w.Autofocus,
		FocusNode:  w.FocusNode,
		Controller: s.controller,
		Family:     keyboard.FamilySlider,
		Shortcuts:  s.shortcuts(w),
		Actions: keyboard.ActionMap{
			keyboard.IntentStepUp:        func() bool { return s.stepBy(s.widget().step()) },
			keyboard.IntentStepDown:      func() bool { return s.stepBy(-s.widget().step()) },
			keyboard.IntentStepUpLarge:   func() bool { return s.stepBy(s.widget().largeStep()) },
			keyboard.IntentStepDownLarge: func() bool { return s.stepBy(-s.widget().largeStep()) },
			keyboard.IntentStepToMin:     func() bool { return s.jumpTo(s.widget().Min) },
			keyboard.IntentStepToMax:     func() bool { return s.jumpTo(s.widget().Max) },
		},
		Cursor:        interaction.CursorClick,
		OnHoverChange: w.OnHoverChange,
		OnFocusChange: w.OnFocusChange,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, SliderSnapshot{
				Value:     w.Value,
				Min:       w.Min,
				Max:       w.Max,
				Fraction:  w.fraction(w.Value),
				Dragging:  states.Has(widgetstate.Dragged),
				States:    states,
				Semantics: s.semanticsFor(states),
			})
		},
	}
}

package headless

import (
	"time"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/interaction"
	"github.com/go-drift/headless/pkg/keyboard"
	"github.com/go-drift/headless/pkg/scheduler"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widgetstate"
)

const (
	defaultTooltipShowDelay = 500 * time.Millisecond
	defaultTooltipHideDelay = 100 * time.Millisecond
)

// TooltipSnapshot is the immutable state handed to a tooltip's Builder.
type TooltipSnapshot struct {
	Visible   bool
	States    widgetstate.Set
	Semantics semantics.Configuration
}

// Tooltip is a headless hover label for its anchor region.
//
// Hovering the anchor shows the tooltip after ShowDelay; leaving hides
// it after HideDelay. An opposite event cancels the pending timer, so a
// quick pass over the anchor shows nothing. Focusing the anchor shows
// the tooltip immediately for keyboard users.
type Tooltip struct {
	core.StatefulBase

	// Message is the tooltip text, also used as the semantic label.
	Message string

	// ShowDelay is the hover time before the tooltip appears.
	// Zero means 500ms.
	ShowDelay time.Duration

	// HideDelay is the linger time after the pointer leaves.
	// Zero means 100ms.
	HideDelay time.Duration

	// OnVisibleChange fires when the tooltip appears or disappears.
	OnVisibleChange func(bool)

	Disabled bool

	Builder func(ctx core.BuildContext, snapshot TooltipSnapshot) core.Widget
}

func (t Tooltip) CreateState() core.State { return &tooltipState{} }

func (t Tooltip) showDelay() time.Duration {
	if t.ShowDelay > 0 {
		return t.ShowDelay
	}
	return defaultTooltipShowDelay
}

func (t Tooltip) hideDelay() time.Duration {
	if t.HideDelay > 0 {
		return t.HideDelay
	}
	return defaultTooltipHideDelay
}

type tooltipState struct {
	core.StateBase
	visible     bool
	cancelTimer scheduler.Cancel
}

func (s *tooltipState) widget() Tooltip {
	return s.Element().Widget().(Tooltip)
}

func (s *tooltipState) InitState() {
	s.OnDispose(func() {
		if s.cancelTimer != nil {
			s.cancelTimer()
		}
	})
}

func (s *tooltipState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if s.widget().Disabled {
		s.cancelPending()
		s.setVisible(false)
	}
}

func (s *tooltipState) cancelPending() {
	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}
}

func (s *tooltipState) setVisible(visible bool) {
	if s.visible == visible {
		return
	}
	s.SetState(func() { s.visible = visible })
	if onVisible := s.widget().OnVisibleChange; onVisible != nil {
		onVisible(visible)
	}
}

// scheduleVisible replaces any pending timer with one that applies the
// visibility after the delay, skipping states disposed in the meantime.
func (s *tooltipState) scheduleVisible(visible bool, delay time.Duration) {
	s.cancelPending()
	s.cancelTimer = scheduler.After(delay, func() {
		if s.IsDisposed() {
			return
		}
		s.cancelTimer = nil
		s.setVisible(visible)
	})
}

func (s *tooltipState) handleHover(hovered bool) {
	w := s.widget()
	if hovered {
		if s.visible {
			s.cancelPending()
			return
		}
		s.scheduleVisible(true, w.showDelay())
	} else {
		if !s.visible {
			s.cancelPending()
			return
		}
		s.scheduleVisible(false, w.hideDelay())
	}
}

func (s *tooltipState) handleFocus(focused bool) {
	s.cancelPending()
	s.setVisible(focused)
}

func (s *tooltipState) semanticsFor() semantics.Configuration {
	return semantics.Configuration{
		Properties: semantics.Properties{
			Label: s.widget().Message,
			Role:  semantics.RoleTooltip,
		},
	}
}

func (s *tooltipState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return interaction.Detector{
		Disabled:      w.Disabled,
		SkipTraversal: true,
		Shortcuts:     keyboard.ShortcutMap{},
		OnHoverChange: s.handleHover,
		OnFocusChange: s.handleFocus,
		Builder: func(ctx core.BuildContext, states widgetstate.Set) core.Widget {
			if w.Builder == nil {
				return nil
			}
			return w.Builder(ctx, TooltipSnapshot{
				Visible:   s.visible,
				States:    states,
				Semantics: s.semanticsFor(),
			})
		},
	}
}

package headless

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/semantics"
)

// AccordionSection is one collapsible section of an [Accordion].
type AccordionSection struct {
	// ID identifies the section in the expanded set.
	ID       string
	Label    string
	Disabled bool
}

// AccordionSnapshot is the immutable state handed to an accordion's
// Builder.
type AccordionSnapshot struct {
	Sections []AccordionSection

	// Expanded holds the IDs of the expanded sections.
	Expanded []string

	// Toggle requests expanding or collapsing the section with the given
	// ID, honoring the accordion's min/max constraints.
	Toggle func(id string)

	// CanToggle reports whether Toggle would change anything for the
	// section, letting builders render headers as disabled when a
	// constraint pins them.
	CanToggle func(id string) bool
}

// IsExpanded reports whether the section with the given ID is expanded.
func (s AccordionSnapshot) IsExpanded(id string) bool {
	for _, expanded := range s.Expanded {
		if expanded == id {
			return true
		}
	}
	return false
}

// Accordion is a headless set of collapsible sections.
//
// The accordion is controlled: Expanded lists the currently open section
// IDs and OnChanged receives the next list whenever a header toggle is
// accepted. MinExpanded and MaxExpanded constrain the set: a collapse
// that would drop below the minimum or an expand that would exceed the
// maximum is refused silently.
//
// Section headers are ordinary [Button] widgets composed by the caller's
// Builder, wired to the snapshot's Toggle callback, so each header gets
// full button keyboard and focus behavior for free.
type Accordion struct {
	core.StatefulBase

	// Sections are the collapsible sections in display order.
	Sections []AccordionSection

	// Expanded holds the IDs of the expanded sections.
	Expanded []string

	// OnChanged receives the next expanded set after an accepted toggle.
	OnChanged func([]string)

	// MinExpanded is the fewest sections that must stay expanded.
	MinExpanded int

	// MaxExpanded caps how many sections may be expanded at once.
	// Zero means no cap.
	MaxExpanded int

	Disabled bool

	Builder func(ctx core.BuildContext, snapshot AccordionSnapshot) core.Widget
}

func (a Accordion) CreateState() core.State { return &AccordionState{} }

// AccordionState exposes SectionSemantics for hosts wiring headers to
// assistive technology.
type AccordionState struct {
	core.StateBase
}

func (s *AccordionState) widget() Accordion {
	return s.Element().Widget().(Accordion)
}

func (s *AccordionState) enabled() bool {
	w := s.widget()
	return !w.Disabled && w.OnChanged != nil
}

func (s *AccordionState) section(id string) *AccordionSection {
	w := s.widget()
	for i := range w.Sections {
		if w.Sections[i].ID == id {
			return &w.Sections[i]
		}
	}
	return nil
}

func (s *AccordionState) isExpanded(id string) bool {
	for _, expanded := range s.widget().Expanded {
		if expanded == id {
			return true
		}
	}
	return false
}

// canToggle applies the min/max constraints to a prospective toggle.
func (s *AccordionState) canToggle(id string) bool {
	if !s.enabled() {
		return false
	}
	w := s.widget()
	section := s.section(id)
	if section == nil || section.Disabled {
		return false
	}
	if s.isExpanded(id) {
		return len(w.Expanded)-1 >= w.MinExpanded
	}
	return w.MaxExpanded == 0 || len(w.Expanded)+1 <= w.MaxExpanded
}

// toggle reports the next expanded set through OnChanged. Refused
// toggles report nothing.
func (s *AccordionState) toggle(id string) {
	if !s.canToggle(id) {
		return
	}
	w := s.widget()
	var next []string
	if s.isExpanded(id) {
		next = make([]string, 0, len(w.Expanded)-1)
		for _, expanded := range w.Expanded {
			if expanded != id {
				next = append(next, expanded)
			}
		}
	} else {
		next = make([]string, 0, len(w.Expanded)+1)
		next = append(next, w.Expanded...)
		next = append(next, id)
	}
	w.OnChanged(next)
}

// SectionSemantics describes one section header to assistive technology.
func (s *AccordionState) SectionSemantics(id string) semantics.Configuration {
	section := s.section(id)
	if section == nil {
		return semantics.Configuration{}
	}
	flags := semantics.Flags(0).
		With(semantics.HasEnabledState).
		With(semantics.HasExpandedState)
	if s.enabled() && !section.Disabled {
		flags = flags.With(semantics.IsEnabled)
	}
	if s.isExpanded(id) {
		flags = flags.With(semantics.IsExpanded)
	}
	config := semantics.Configuration{
		Properties: semantics.Properties{
			Label: section.Label,
			Role:  semantics.RoleButton,
			Flags: flags,
		},
	}
	if s.canToggle(id) {
		config.Actions.OnTap = func() { s.toggle(id) }
	}
	return config
}

func (s *AccordionState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	if w.Builder == nil {
		return nil
	}
	return w.Builder(ctx, AccordionSnapshot{
		Sections:  w.Sections,
		Expanded:  w.Expanded,
		Toggle:    s.toggle,
		CanToggle: s.canToggle,
	})
}

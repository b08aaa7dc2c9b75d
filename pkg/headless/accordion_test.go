package headless_test

import (
	"reflect"
	"testing"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/headless"
	"github.com/go-drift/headless/pkg/headlesstest"
	"github.com/go-drift/headless/pkg/semantics"
)

type faqAccordion struct {
	tester   *headlesstest.WidgetTester
	expanded []string
	changes  int
	snapshot headless.AccordionSnapshot
	widget   headless.Accordion
}

func newFAQAccordion(t *testing.T, widget headless.Accordion) *faqAccordion {
	a := &faqAccordion{
		tester:   headlesstest.NewWidgetTesterWithT(t),
		expanded: widget.Expanded,
		widget:   widget,
	}
	a.pump()
	return a
}

func (a *faqAccordion) pump() {
	w := a.widget
	w.Sections = []headless.AccordionSection{
		{ID: "shipping", Label: "Shipping"},
		{ID: "returns", Label: "Returns"},
		{ID: "billing", Label: "Billing", Disabled: true},
	}
	w.Expanded = a.expanded
	w.OnChanged = func(next []string) {
		a.expanded = next
		a.changes++
		a.pump()
	}
	w.Builder = func(ctx core.BuildContext, snapshot headless.AccordionSnapshot) core.Widget {
		a.snapshot = snapshot
		return nil
	}
	a.tester.PumpWidget(w)
}

func TestAccordionToggleExpandsAndCollapses(t *testing.T) {
	a := newFAQAccordion(t, headless.Accordion{})

	a.snapshot.Toggle("shipping")
	if !reflect.DeepEqual(a.expanded, []string{"shipping"}) {
		t.Fatalf("expanded = %v", a.expanded)
	}
	a.snapshot.Toggle("returns")
	if !reflect.DeepEqual(a.expanded, []string{"shipping", "returns"}) {
		t.Fatalf("expanded = %v", a.expanded)
	}
	a.snapshot.Toggle("shipping")
	if !reflect.DeepEqual(a.expanded, []string{"returns"}) {
		t.Fatalf("expanded = %v", a.expanded)
	}
}

func TestAccordionMinExpanded(t *testing.T) {
	a := newFAQAccordion(t, headless.Accordion{
		Expanded:    []string{"shipping"},
		MinExpanded: 1,
	})

	if a.snapshot.CanToggle("shipping") {
		t.Fatalf("collapse below the minimum reported possible")
	}
	a.snapshot.Toggle("shipping")
	if a.changes != 0 {
		t.Fatalf("constrained collapse reported a change")
	}

	// Expanding another section frees the first.
	a.snapshot.Toggle("returns")
	if !a.snapshot.CanToggle("shipping") {
		t.Fatalf("collapse still blocked with two sections open")
	}
}

func TestAccordionMaxExpanded(t *testing.T) {
	a := newFAQAccordion(t, headless.Accordion{
		Expanded:    []string{"shipping"},
		MaxExpanded: 1,
	})

	if a.snapshot.CanToggle("returns") {
		t.Fatalf("expand past the maximum reported possible")
	}
	a.snapshot.Toggle("returns")
	if a.changes != 0 {
		t.Fatalf("constrained expand reported a change")
	}

	a.snapshot.Toggle("shipping")
	if !a.snapshot.CanToggle("returns") {
		t.Fatalf("expand still blocked after collapsing")
	}
}

func TestAccordionDisabledSection(t *testing.T) {
	a := newFAQAccordion(t, headless.Accordion{})

	if a.snapshot.CanToggle("billing") {
		t.Fatalf("disabled section reported togglable")
	}
	a.snapshot.Toggle("billing")
	if a.changes != 0 {
		t.Fatalf("disabled section toggled")
	}
	if a.snapshot.CanToggle("missing") {
		t.Fatalf("unknown section reported togglable")
	}
}

func TestAccordionSnapshotIsExpanded(t *testing.T) {
	a := newFAQAccordion(t, headless.Accordion{Expanded: []string{"returns"}})

	if a.snapshot.IsExpanded("shipping") || !a.snapshot.IsExpanded("returns") {
		t.Fatalf("IsExpanded: shipping=%v returns=%v",
			a.snapshot.IsExpanded("shipping"), a.snapshot.IsExpanded("returns"))
	}
}

func TestAccordionSectionSemantics(t *testing.T) {
	a := newFAQAccordion(t, headless.Accordion{Expanded: []string{"shipping"}})

	state := headlesstest.StateOf[*headless.AccordionState](
		a.tester.Find(headlesstest.ByType[headless.Accordion]()))

	config := state.SectionSemantics("shipping")
	if config.Properties.Role != semantics.RoleButton {
		t.Fatalf("role = %v", config.Properties.Role)
	}
	if !config.Properties.Flags.Has(semantics.IsExpanded) {
		t.Fatalf("expanded section missing expanded flag")
	}
	if config.Actions.OnTap == nil {
		t.Fatalf("togglable header missing tap action")
	}

	config = state.SectionSemantics("billing")
	if config.Properties.Flags.Has(semantics.IsEnabled) {
		t.Fatalf("disabled section reported enabled")
	}
	if config.Actions.OnTap != nil {
		t.Fatalf("disabled header exposed a tap action")
	}
}

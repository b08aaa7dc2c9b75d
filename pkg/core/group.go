package core

// MultiChildWidget is implemented by widgets that host an ordered list of
// children.
type MultiChildWidget interface {
	Widget
	ChildrenWidgets() []Widget
}

// Group hosts an ordered list of children without adding behavior of its
// own. Use it to place sibling components under one parent, such as the
// members of a selection group:
//
//	core.GroupOf(
//	    headless.Radio[string]{Value: "small", Label: "Small"},
//	    headless.Radio[string]{Value: "large", Label: "Large"},
//	)
type Group struct {
	Children []Widget
}

// GroupOf creates a Group with the given children.
func GroupOf(children ...Widget) Group {
	return Group{Children: children}
}

func (g Group) CreateElement() Element { return NewMultiChildElement() }

func (g Group) Key() any { return nil }

func (g Group) ChildrenWidgets() []Widget { return g.Children }

// MultiChildElement hosts a MultiChildWidget. Children are reconciled by
// index: a child whose widget type and key match is updated in place,
// anything else is replaced.
type MultiChildElement struct {
	elementBase
	children []Element
}

// NewMultiChildElement creates a MultiChildElement. The widget and build
// owner are set later by the framework during inflation.
func NewMultiChildElement() *MultiChildElement {
	return &MultiChildElement{}
}

func (e *MultiChildElement) Mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *MultiChildElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *MultiChildElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
}

func (e *MultiChildElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widgets := e.widget.(MultiChildWidget).ChildrenWidgets()

	next := make([]Element, 0, len(widgets))
	for i, w := range widgets {
		var existing Element
		if i < len(e.children) {
			existing = e.children[i]
		}
		if child := updateChild(existing, w, e, e.buildOwner); child != nil {
			next = append(next, child)
		}
	}
	for i := len(widgets); i < len(e.children); i++ {
		e.children[i].Unmount()
	}
	e.children = next
}

func (e *MultiChildElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

package core

import "reflect"

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement instantiates the element that manages this widget's
	// position in the tree. The framework sets the widget and build owner
	// on the element during inflation.
	CreateElement() Element

	// Key identifies the widget for reconciliation. Widgets of the same
	// type with equal keys update in place; others are remounted.
	Key() any
}

// StatelessWidget builds a subtree purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates mutable State that persists across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// InheritedWidget propagates data down the tree and notifies dependents
// when it changes.
type InheritedWidget interface {
	Widget

	// ChildWidget returns the subtree below this widget.
	ChildWidget() Widget

	// UpdateShouldNotify reports whether dependents must be notified
	// after the widget was replaced by a new configuration.
	UpdateShouldNotify(old InheritedWidget) bool
}

// State holds mutable data for a StatefulWidget and builds its subtree.
type State interface {
	// InitState is called exactly once, after the state is attached to
	// its element and before the first build.
	InitState()

	// Build returns the subtree for the current state.
	Build(ctx BuildContext) Widget

	// DidUpdateWidget is called when the element's widget configuration
	// changed. The state can compare against oldWidget and resynchronize.
	DidUpdateWidget(oldWidget StatefulWidget)

	// DidChangeDependencies is called when an inherited dependency changed.
	DidChangeDependencies()

	// Dispose releases resources. Called exactly once at unmount.
	Dispose()
}

// BuildContext gives build methods access to the element tree location.
type BuildContext interface {
	// Widget returns the widget currently hosted at this location.
	Widget() Widget

	// FindAncestor walks up the tree and returns the first element
	// matching the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element

	// DependOnInherited registers a dependency on the nearest inherited
	// widget of the given type and returns it, or nil if absent.
	DependOnInherited(inheritedType reflect.Type) any
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	BuildContext

	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	MarkNeedsBuild()
	Depth() int
}

// Listenable is implemented by objects that notify subscribers on change.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(listener func()) func()
}

// Disposable is implemented by controllers that hold releasable resources.
type Disposable interface {
	Dispose()
}

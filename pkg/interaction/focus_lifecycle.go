// Package interaction wires input plumbing into components: focus node
// ownership, pointer hover and press handling, and keyboard shortcut
// dispatch. Component shells compose the [Detector] widget rather than
// talking to the focus manager directly.
package interaction

import (
	"github.com/go-drift/headless/pkg/focus"
)

// FocusLifecycle manages a component's focus node across its lifetime.
// The component may supply an external node (which the caller owns and
// disposes) or let the lifecycle lazily create an internal one (which it
// owns and disposes itself). Swapping between the two preserves focus:
// if the outgoing node held primary focus the incoming one receives it
// synchronously, without firing a blur/focus pair on the listener.
type FocusLifecycle struct {
	onFocusChange func(bool)

	internal    *focus.Node
	external    *focus.Node
	attached    *focus.Node
	unsubscribe func()
}

// NewFocusLifecycle returns an empty lifecycle. No node exists until the
// first Node or Update call.
func NewFocusLifecycle() *FocusLifecycle {
	return &FocusLifecycle{}
}

// SetOnFocusChange sets the callback invoked when the managed node gains
// or loses focus. Takes effect for subsequent focus transitions.
func (l *FocusLifecycle) SetOnFocusChange(onFocusChange func(bool)) {
	l.onFocusChange = onFocusChange
}

// Node returns the effective focus node, creating and registering an
// internal one on first access when no external node is set.
func (l *FocusLifecycle) Node() *focus.Node {
	if l.external != nil {
		return l.external
	}
	if l.internal == nil {
		l.internal = focus.NewNode()
		focus.GetManager().Register(l.internal)
	}
	l.ensureAttached(l.internal)
	return l.internal
}

// Update switches to the given external node, or back to an internal one
// when external is nil. Calling it with the current node is a no-op apart
// from ensuring the listener is attached.
func (l *FocusLifecycle) Update(external *focus.Node) {
	old := l.attached
	if old == nil {
		if l.external != nil {
			old = l.external
		} else {
			old = l.internal
		}
	}

	l.external = external
	next := l.Node()
	if next == old {
		l.ensureAttached(next)
		return
	}

	hadFocus := old != nil && old.HasFocus()
	l.detach()
	focus.GetManager().Register(next)
	if hadFocus {
		// Move focus before re-attaching so the swap is invisible to
		// the focus-change listener.
		next.RequestFocus()
	}
	l.ensureAttached(next)

	if external != nil && l.internal != nil {
		l.internal.Dispose()
		l.internal = nil
	}
}

// Dispose detaches the listener and disposes the internal node if one
// exists. External nodes are left untouched. Safe to call repeatedly.
func (l *FocusLifecycle) Dispose() {
	l.detach()
	if l.internal != nil {
		l.internal.Dispose()
		l.internal = nil
	}
	l.external = nil
	l.onFocusChange = nil
}

func (l *FocusLifecycle) ensureAttached(node *focus.Node) {
	if l.attached == node {
		return
	}
	l.detach()
	l.attached = node
	l.unsubscribe = node.AddListener(func(focused bool) {
		if l.onFocusChange != nil {
			l.onFocusChange(focused)
		}
	})
}

func (l *FocusLifecycle) detach() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
	l.attached = nil
}

// Package headless provides behavior-complete, render-free UI components.
//
// Each component implements interaction state tracking, focus handling,
// keyboard shortcuts, and accessibility semantics, then delegates all
// visuals to a caller-supplied Builder. The builder receives an immutable
// snapshot of the component's current state and returns whatever widget
// tree should represent it:
//
//	headless.Button{
//	    Label:     "Save",
//	    OnPressed: save,
//	    Builder: func(ctx core.BuildContext, snap headless.ButtonSnapshot) core.Widget {
//	        return renderButton(snap.States)
//	    },
//	}
//
// Components are controlled: they display the value their configuration
// carries and report edits through typed callbacks, firing each callback
// exactly once per logical change. The owner updates its state in
// response and rebuilds with the new value.
//
// All components follow the same conventions: the zero value of Disabled
// is enabled, a nil primary callback also disables the component, and
// optional controllers (focus nodes, state controllers, open controllers)
// are caller-owned when supplied and component-owned otherwise.
package headless

package interaction

import "github.com/go-drift/headless/pkg/focus"

// FocusHandleProvider is implemented by component states that expose
// their effective focus node, letting embedders request focus or inspect
// focus state programmatically.
type FocusHandleProvider interface {
	FocusHandle() *focus.Node
}

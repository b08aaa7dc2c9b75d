// Package focus tracks which component receives keyboard input.
//
// A [Node] represents one focusable location in the widget tree. Nodes
// register with the [Manager], which keeps at most one primary focus,
// routes key events to it, and implements Tab-order traversal.
//
// Components usually do not construct nodes directly; the interaction
// layer attaches a node per focusable component and keeps it registered
// for the component's lifetime.
package focus

import (
	"github.com/go-drift/headless/pkg/keyboard"
)

// KeyEventResult reports whether a node consumed a key event.
type KeyEventResult int

const (
	// Ignored lets the event continue to the manager's fallback handling.
	Ignored KeyEventResult = iota
	// Handled stops further processing of the event.
	Handled
)

// TraversalDirection is the direction of a focus traversal request.
type TraversalDirection int

const (
	TraverseNext TraversalDirection = iota
	TraversePrevious
	TraverseFirst
	TraverseLast
)

// NavigationMode selects how disabled components participate in traversal.
type NavigationMode int

const (
	// ModeTraditional skips non-focusable nodes entirely (desktop style).
	ModeTraditional NavigationMode = iota
	// ModeDirectional lets inert nodes receive focus so directional
	// navigation (TV remotes, game pads) can still land on them and read
	// their state.
	ModeDirectional
)

// Node is one focusable location. Zero value is usable; register it with
// a manager via [Manager.Register] before requesting focus.
type Node struct {
	// CanRequestFocus gates whether the node may become primary focus.
	// Defaults to true via NewNode.
	CanRequestFocus bool

	// SkipTraversal excludes the node from Tab traversal while still
	// allowing programmatic focus.
	SkipTraversal bool

	// Inert marks the node as belonging to a disabled component. Inert
	// nodes never activate, but under ModeDirectional they remain
	// traversable.
	Inert bool

	// DebugLabel names the node in diagnostics.
	DebugLabel string

	// OnKeyEvent receives key events while the node holds primary focus.
	OnKeyEvent func(keyboard.Event) KeyEventResult

	manager      *Manager
	hasFocus     bool
	disposed     bool
	listeners    map[int]func(bool)
	nextListener int
}

// NewNode returns a node that can request focus.
func NewNode() *Node {
	return &Node{CanRequestFocus: true}
}

// HasFocus reports whether this node is the primary focus.
func (n *Node) HasFocus() bool {
	return n.hasFocus
}

// AddListener subscribes to focus changes. The callback receives the new
// focus state. Returns an unsubscribe function.
func (n *Node) AddListener(listener func(bool)) func() {
	if n.listeners == nil {
		n.listeners = make(map[int]func(bool))
	}
	id := n.nextListener
	n.nextListener++
	n.listeners[id] = listener
	return func() {
		delete(n.listeners, id)
	}
}

// RequestFocus makes this node the primary focus. No-op when the node is
// not registered, cannot request focus, or is already focused.
func (n *Node) RequestFocus() {
	if n.manager == nil || n.disposed || !n.CanRequestFocus {
		return
	}
	n.manager.setPrimaryFocus(n)
}

// Unfocus gives up primary focus if this node holds it.
func (n *Node) Unfocus() {
	if n.manager != nil && n.manager.primary == n {
		n.manager.setPrimaryFocus(nil)
	}
}

// Dispose unregisters the node and drops its listeners. Safe to call more
// than once. A focused node loses focus first so listeners observe the
// blur before teardown.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.Unfocus()
	if n.manager != nil {
		n.manager.unregister(n)
	}
	n.disposed = true
	n.listeners = nil
	n.OnKeyEvent = nil
}

func (n *Node) setFocus(value bool) {
	if n.hasFocus == value {
		return
	}
	n.hasFocus = value
	for _, listener := range n.listeners {
		listener(value)
	}
}

// Manager owns the focus state for one component tree.
type Manager struct {
	// Mode selects the traversal policy for inert nodes.
	Mode NavigationMode

	nodes   []*Node
	primary *Node
}

// NewManager returns an empty manager in traditional navigation mode.
func NewManager() *Manager {
	return &Manager{}
}

var defaultManager = NewManager()

// GetManager returns the process-wide manager.
func GetManager() *Manager {
	return defaultManager
}

// SetManager swaps the process-wide manager and returns the previous one
// so tests can restore it.
func SetManager(m *Manager) *Manager {
	prev := defaultManager
	defaultManager = m
	return prev
}

// Register adds the node in traversal order. Registering an already
// registered node is a no-op.
func (m *Manager) Register(node *Node) {
	if node == nil || node.manager == m {
		return
	}
	if node.manager != nil {
		node.manager.unregister(node)
	}
	node.manager = m
	node.disposed = false
	m.nodes = append(m.nodes, node)
}

func (m *Manager) unregister(node *Node) {
	for i, n := range m.nodes {
		if n == node {
			m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
			break
		}
	}
	node.manager = nil
}

// PrimaryFocus returns the node currently holding focus, or nil.
func (m *Manager) PrimaryFocus() *Node {
	return m.primary
}

func (m *Manager) setPrimaryFocus(node *Node) {
	if m.primary == node {
		return
	}
	old := m.primary
	m.primary = node
	if old != nil {
		old.setFocus(false)
	}
	if node != nil {
		node.setFocus(true)
	}
}

// traversable reports whether the node participates in Tab traversal
// under the manager's navigation mode.
func (m *Manager) traversable(node *Node) bool {
	if node.SkipTraversal || node.disposed {
		return false
	}
	if node.CanRequestFocus {
		return true
	}
	// Nodes of disabled components stay reachable under directional
	// navigation so remote-style input can land on them.
	return node.Inert && m.Mode == ModeDirectional
}

// MoveFocus moves the primary focus in the given direction over the
// traversable nodes in registration order, wrapping at the ends. Returns
// false when no node is traversable.
func (m *Manager) MoveFocus(direction TraversalDirection) bool {
	candidates := make([]*Node, 0, len(m.nodes))
	current := -1
	for _, node := range m.nodes {
		if !m.traversable(node) {
			continue
		}
		if node == m.primary {
			current = len(candidates)
		}
		candidates = append(candidates, node)
	}
	if len(candidates) == 0 {
		return false
	}

	var target *Node
	switch direction {
	case TraverseFirst:
		target = candidates[0]
	case TraverseLast:
		target = candidates[len(candidates)-1]
	case TraversePrevious:
		target = candidates[wrapIndex(current-1, len(candidates))]
	default:
		target = candidates[wrapIndex(current+1, len(candidates))]
	}
	m.setPrimaryFocus(target)
	return true
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// HandleKeyEvent routes the event to the focused node, falling back to
// Tab traversal when the node ignores it. Returns true when something
// consumed the event.
func (m *Manager) HandleKeyEvent(event keyboard.Event) bool {
	if m.primary != nil && m.primary.OnKeyEvent != nil {
		if m.primary.OnKeyEvent(event) == Handled {
			return true
		}
	}
	if event.IsPress() && event.Key == keyboard.KeyTab {
		if event.Modifiers == keyboard.ModShift {
			return m.MoveFocus(TraversePrevious)
		}
		if event.Modifiers == 0 {
			return m.MoveFocus(TraverseNext)
		}
	}
	return false
}

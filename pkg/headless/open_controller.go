package headless

// OpenController is an observable open/closed flag shared by the
// disclosure components (Dialog, Popover, Select, Menu). Callers can
// hold one to drive visibility programmatically; components create and
// own one internally when none is supplied.
type OpenController struct {
	open         bool
	listeners    map[int]func()
	nextListener int
	disposed     bool
}

// NewOpenController returns a controller in the given initial state.
func NewOpenController(open bool) *OpenController {
	return &OpenController{open: open}
}

// IsOpen reports the current state.
func (c *OpenController) IsOpen() bool {
	return c.open
}

// Open opens the surface. Notifies once if it was closed.
func (c *OpenController) Open() {
	c.SetOpen(true)
}

// Close closes the surface. Notifies once if it was open.
func (c *OpenController) Close() {
	c.SetOpen(false)
}

// Toggle flips the state.
func (c *OpenController) Toggle() {
	c.SetOpen(!c.open)
}

// SetOpen sets the state, notifying listeners only on a real change.
func (c *OpenController) SetOpen(open bool) {
	if c.disposed || c.open == open {
		return
	}
	c.open = open
	for _, listener := range c.listeners {
		listener()
	}
}

// AddListener subscribes to state changes and returns an unsubscribe
// function.
func (c *OpenController) AddListener(listener func()) func() {
	if c.disposed {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

// Dispose drops all listeners. Further writes are ignored.
func (c *OpenController) Dispose() {
	c.disposed = true
	c.listeners = nil
}

// openLifecycle resolves the owned-or-external controller pattern for
// disclosure components. The external controller is never disposed here;
// the owned one is created lazily and disposed with the component.
type openLifecycle struct {
	owned       *OpenController
	external    *OpenController
	unsubscribe func()
	onChange    func()
}

func (l *openLifecycle) controller() *OpenController {
	if l.external != nil {
		return l.external
	}
	if l.owned == nil {
		l.owned = NewOpenController(false)
	}
	return l.owned
}

// update switches to the given external controller (nil selects the
// owned one) and keeps the change subscription attached to whichever
// controller is current.
func (l *openLifecycle) update(external *OpenController, onChange func()) {
	l.onChange = onChange
	if l.unsubscribe != nil && l.external == external {
		return
	}
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
	l.external = external
	l.unsubscribe = l.controller().AddListener(func() {
		if l.onChange != nil {
			l.onChange()
		}
	})
}

func (l *openLifecycle) dispose() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
	if l.owned != nil {
		l.owned.Dispose()
		l.owned = nil
	}
	l.external = nil
	l.onChange = nil
}

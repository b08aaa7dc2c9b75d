package widgetstate

// Controller is an observable cell holding a [Set]. Listeners fire
// exactly once per logical change; writing the current value is silent.
//
// Components own one controller per instance, created at mount and
// disposed at unmount.
type Controller struct {
	value        Set
	listeners    map[int]func()
	nextListener int
	disposed     bool
}

// NewController returns a controller holding the given initial states.
func NewController(initial Set) *Controller {
	return &Controller{value: initial}
}

// Value returns the current state set.
func (c *Controller) Value() Set {
	return c.value
}

// AddListener subscribes to value changes and returns an unsubscribe
// function.
func (c *Controller) AddListener(listener func()) func() {
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

// Add inserts the state into the set, notifying if it was absent.
func (c *Controller) Add(state State) {
	c.Replace(c.value.With(state))
}

// Remove deletes the state from the set, notifying if it was present.
func (c *Controller) Remove(state State) {
	c.Replace(c.value.Without(state))
}

// Update adds or removes the state according to present.
func (c *Controller) Update(state State, present bool) {
	if present {
		c.Add(state)
	} else {
		c.Remove(state)
	}
}

// Replace swaps the whole set in one step, notifying once if anything
// changed.
func (c *Controller) Replace(value Set) {
	if c.disposed || c.value == value {
		return
	}
	c.value = value
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose drops all listeners. Further writes are ignored.
func (c *Controller) Dispose() {
	c.disposed = true
	c.listeners = nil
}

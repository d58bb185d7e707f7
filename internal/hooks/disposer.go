package hooks

// Disposer records subscriptions so they can be released together.
// Every On made through a Disposer is paired with the matching Off.
type Disposer struct {
	offs []func()
}

// On subscribes fn on r and records the matching Off.
func (d *Disposer) On(r *Registry, name string, fn Handler) ListenerID {
	id := r.On(name, fn)
	d.Add(func() { r.Off(name, id) })
	return id
}

// Add records an arbitrary teardown step.
func (d *Disposer) Add(off func()) {
	d.offs = append(d.offs, off)
}

// Len returns the number of pending teardown steps.
func (d *Disposer) Len() int {
	return len(d.offs)
}

// Dispose runs every recorded teardown step, newest first, and forgets them.
func (d *Disposer) Dispose() {
	for i := len(d.offs) - 1; i >= 0; i-- {
		d.offs[i]()
	}
	d.offs = nil
}

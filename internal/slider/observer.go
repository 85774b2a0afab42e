package slider

type observers struct {
	subs []observer
	next int
}

type observer struct {
	id int
	fn func(Presentation)
}

func (o *observers) add(fn func(Presentation)) func() {
	o.next++
	id := o.next
	o.subs = append(o.subs, observer{id: id, fn: fn})
	return func() { o.remove(id) }
}

func (o *observers) remove(id int) {
	for i, s := range o.subs {
		if s.id == id {
			o.subs = append(o.subs[:i], o.subs[i+1:]...)
			return
		}
	}
}

func (o *observers) clear() { o.subs = nil }

// Subscribe registers a read-only consumer of the derived state. It is
// called after every state change; the returned func unregisters it.
func (c *Controller) Subscribe(fn func(Presentation)) func() {
	if fn == nil {
		return func() {}
	}
	return c.observers.add(fn)
}

func (c *Controller) broadcast() {
	if len(c.observers.subs) == 0 {
		return
	}
	p := c.Presentation()
	subs := append([]observer(nil), c.observers.subs...)
	for _, s := range subs {
		s.fn(p)
	}
}

package slider

// Slot holds a resource that becomes available at some point (a mounted
// track, a rendered handle) and fans it out to every party that needs it.
// Subscribers get the value on Attach and ok=false on Detach.
type Slot[T any] struct {
	v    T
	ok   bool
	subs []slotSub[T]
	next int
}

type slotSub[T any] struct {
	id int
	fn func(T, bool)
}

// Attach stores v and notifies subscribers.
func (s *Slot[T]) Attach(v T) {
	s.v, s.ok = v, true
	s.notify()
}

// Detach clears the slot. Subscribers are only told when something was
// attached.
func (s *Slot[T]) Detach() {
	if !s.ok {
		return
	}
	var zero T
	s.v, s.ok = zero, false
	s.notify()
}

// Get returns the current value and whether one is attached.
func (s *Slot[T]) Get() (T, bool) { return s.v, s.ok }

// Subscribe registers fn. If a value is already attached fn sees it at once.
// The returned func removes the subscription.
func (s *Slot[T]) Subscribe(fn func(T, bool)) func() {
	if fn == nil {
		return func() {}
	}
	s.next++
	id := s.next
	s.subs = append(s.subs, slotSub[T]{id: id, fn: fn})
	if s.ok {
		fn(s.v, true)
	}
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Slot[T]) notify() {
	subs := append([]slotSub[T](nil), s.subs...)
	for _, sub := range subs {
		sub.fn(s.v, s.ok)
	}
}

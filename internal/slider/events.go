package slider

// Cancelable is implemented by events whose default handling can be stopped
// by an earlier handler in a chain.
type Cancelable interface {
	PreventDefault()
	DefaultPrevented() bool
}

// PointerID identifies a pointer for capture. Zero means "no id".
type PointerID int

// PointerEvent is a pointer down, move or up in track coordinates.
type PointerEvent struct {
	ID       PointerID
	Position Point

	prevented bool
}

func (e *PointerEvent) PreventDefault() { e.prevented = true }
func (e *PointerEvent) DefaultPrevented() bool { return e.prevented }

// KeyEvent carries a key name such as KeyArrowUp. A recognized key is
// consumed by KeyDown, which marks it prevented.
type KeyEvent struct {
	Key Key

	prevented bool
}

func (e *KeyEvent) PreventDefault() { e.prevented = true }
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// FocusEvent is delivered for focus and blur.
type FocusEvent struct {
	prevented bool
}

func (e *FocusEvent) PreventDefault() { e.prevented = true }
func (e *FocusEvent) DefaultPrevented() bool { return e.prevented }

// WrapEvent chains an external handler in front of an internal one. Both
// run unless theirs calls PreventDefault. Either may be nil.
func WrapEvent[E Cancelable](theirs, ours func(E)) func(E) {
	return func(e E) {
		if theirs != nil {
			theirs(e)
		}
		if ours != nil && !e.DefaultPrevented() {
			ours(e)
		}
	}
}

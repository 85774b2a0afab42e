package slider

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// TrackElement is the rendered track. Bounds is read on every pointer event
// because layout can change between events; ok=false means not measured.
type TrackElement interface {
	Bounds() (Rect, bool)
}

// HandleElement is the rendered handle.
type HandleElement interface {
	Size() Size
	Focus()
}

// PointerCapturer routes subsequent pointer events to the slider until the
// pointer is released.
type PointerCapturer interface {
	CapturePointer(id PointerID)
	ReleasePointer(id PointerID)
}

// MoveSource is a global pointer-move feed. The controller subscribes on
// pointer down and unsubscribes when the drag ends.
type MoveSource interface {
	SubscribeMove(fn func(*PointerEvent)) (unsubscribe func())
}

// ChangeContext accompanies every change notification.
type ChangeContext struct {
	Min            float64
	Max            float64
	HandlePosition string
}

// Options configures a Controller. Zero values pick the documented defaults.
type Options struct {
	Min float64
	Max float64
	// Step quantizes committed values; 0 means 1.
	Step float64
	// KeyStep is the arrow-key increment; 0 falls back to Step when Step
	// was given, else to (Max-Min)/100.
	KeyStep float64

	// Value makes the controller controlled. It is never written to.
	Value *float64
	// DefaultValue seeds an uncontrolled controller. Zero means unset, so
	// the value starts at Min; a domain such as -20..20 cannot default to
	// 0 this way and should pass Value or call ProposeValue instead.
	DefaultValue float64

	Orientation     Orientation
	HandleAlignment HandleAlignment
	Disabled        bool

	ID         string
	Name       string
	Label      string
	LabelledBy string

	// ValueText formats the accessible description; AriaValueText is a
	// static fallback.
	ValueText     func(float64) string
	AriaValueText string

	OnChange     func(float64, ChangeContext)
	OnDiagnostic func(error)

	OnPointerDown func(*PointerEvent)
	OnPointerMove func(*PointerEvent)
	OnPointerUp   func(*PointerEvent)
	OnKeyDown     func(*KeyEvent)
	OnFocus       func(*FocusEvent)
	OnBlur        func(*FocusEvent)

	Capture PointerCapturer
	Moves   MoveSource
	Logger  Logger
}

// Controller is the slider state machine. It is not safe for concurrent use;
// drive it from the UI goroutine.
type Controller struct {
	opts    Options
	id      string
	logger  Logger
	domain  Domain
	keyStep float64
	mode    Mode

	value       float64
	interaction Interaction
	focused     bool
	disabled    bool
	handleSize  Size

	track  Slot[TrackElement]
	handle Slot[HandleElement]

	capturedID PointerID
	unsubMove  func()

	observers observers

	pointerDown func(*PointerEvent)
	pointerMove func(*PointerEvent)
	pointerUp   func(*PointerEvent)
	keyDown     func(*KeyEvent)
	focus       func(*FocusEvent)
	blur        func(*FocusEvent)
}

var idSeq atomic.Int64

func makeID(prefix string, n int64) string {
	return prefix + ":" + strconv.FormatInt(n, 10)
}

// New validates the domain, fixes the lifecycle mode and returns a ready
// controller.
func New(opts Options) (*Controller, error) {
	if opts.Min == 0 && opts.Max == 0 {
		opts.Max = 100
	}
	for _, v := range []float64{opts.Min, opts.Max, opts.Step, opts.KeyStep} {
		if isBad(v) {
			return nil, fmt.Errorf("%w: non-finite bound", ErrInvalidDomain)
		}
	}
	if opts.Min > opts.Max {
		return nil, fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidDomain, opts.Min, opts.Max)
	}
	if opts.Step < 0 || opts.KeyStep < 0 {
		return nil, fmt.Errorf("%w: negative step", ErrInvalidDomain)
	}

	d := Domain{Min: opts.Min, Max: opts.Max, Step: opts.Step}
	if d.Step == 0 {
		d.Step = 1
	}
	keyStep := opts.KeyStep
	if keyStep == 0 {
		keyStep = opts.Step
	}
	if keyStep == 0 {
		keyStep = d.Span() / 100
	}

	c := &Controller{
		opts:     opts,
		id:       opts.ID,
		logger:   opts.Logger,
		domain:   d,
		keyStep:  keyStep,
		disabled: opts.Disabled,
	}
	if c.id == "" {
		c.id = makeID("slider", idSeq.Add(1))
	}
	if c.logger == nil {
		c.logger = stdLogger{}
	}

	switch {
	case opts.Value != nil:
		c.mode = Controlled
		c.value = Clamp(*opts.Value, d.Min, d.Max)
	case opts.DefaultValue != 0:
		c.value = Clamp(opts.DefaultValue, d.Min, d.Max)
	default:
		c.value = d.Min
	}

	c.pointerDown = WrapEvent(opts.OnPointerDown, c.handlePointerDown)
	c.pointerMove = WrapEvent(opts.OnPointerMove, c.handlePointerMove)
	c.pointerUp = WrapEvent(opts.OnPointerUp, c.handlePointerUp)
	c.keyDown = WrapEvent(opts.OnKeyDown, c.handleKeyDown)
	c.focus = WrapEvent(opts.OnFocus, func(*FocusEvent) { c.SetFocus(true) })
	c.blur = WrapEvent(opts.OnBlur, func(*FocusEvent) { c.SetFocus(false) })
	return c, nil
}

func (c *Controller) ID() string { return c.id }
func (c *Controller) Value() float64 { return c.value }
func (c *Controller) Domain() Domain { return c.domain }
func (c *Controller) KeyStep() float64 { return c.keyStep }
func (c *Controller) Mode() Mode { return c.mode }
func (c *Controller) Orientation() Orientation { return c.opts.Orientation }
func (c *Controller) Alignment() HandleAlignment { return c.opts.HandleAlignment }
func (c *Controller) Interaction() Interaction { return c.interaction }
func (c *Controller) Focused() bool { return c.focused }
func (c *Controller) Dragging() bool { return c.interaction != Idle }
func (c *Controller) Disabled() bool { return c.disabled }
func (c *Controller) HandleSize() Size { return c.handleSize }
func (c *Controller) Track() *Slot[TrackElement] { return &c.track }
func (c *Controller) Handle() *Slot[HandleElement] { return &c.handle }
func (c *Controller) Name() string { return c.opts.Name }

// ProposeValue is the single mutation entry point. It normalizes v and, when
// the result differs from the current value, commits it (uncontrolled only)
// and notifies. It reports whether a notification went out.
func (c *Controller) ProposeValue(v float64) bool {
	if isBad(v) {
		return false
	}
	return c.propose(c.domain.Normalize(v), false)
}

func (c *Controller) propose(v float64, force bool) bool {
	if !force && v == c.value {
		return false
	}
	if c.mode == Uncontrolled {
		c.value = v
	}
	if c.opts.OnChange != nil {
		c.opts.OnChange(v, ChangeContext{
			Min:            c.domain.Min,
			Max:            c.domain.Max,
			HandlePosition: c.offsetFor(v).Expr(),
		})
	}
	c.broadcast()
	return true
}

// SetValue feeds an externally owned value into a controlled controller. The
// owner's value is only clamped, never re-stepped. On an uncontrolled
// controller it is a usage warning and is ignored.
func (c *Controller) SetValue(v float64) error {
	if c.mode == Uncontrolled {
		return c.warn(ErrUncontrolledToControlled)
	}
	if isBad(v) {
		return nil
	}
	nv := Clamp(v, c.domain.Min, c.domain.Max)
	if nv == c.value {
		return nil
	}
	c.value = nv
	c.broadcast()
	return nil
}

// ClearValue signals that the external owner no longer supplies a value.
// A controlled controller reports a usage warning and keeps its last value.
func (c *Controller) ClearValue() error {
	if c.mode == Controlled {
		return c.warn(ErrControlledToUncontrolled)
	}
	return nil
}

func (c *Controller) warn(kind error) error {
	err := &UsageError{Kind: kind, Message: modeSwitchAdvice}
	c.logger.Printf("slider %s: warning: %v", c.id, err)
	if c.opts.OnDiagnostic != nil {
		c.opts.OnDiagnostic(err)
	}
	return err
}

// PointerDown starts a drag at the event position.
func (c *Controller) PointerDown(ev *PointerEvent) { c.pointerDown(ev) }

// PointerMove updates the value while a drag is active.
func (c *Controller) PointerMove(ev *PointerEvent) { c.pointerMove(ev) }

// PointerUp ends the drag. The value is left as is.
func (c *Controller) PointerUp(ev *PointerEvent) { c.pointerUp(ev) }

// KeyDown applies keyboard navigation.
func (c *Controller) KeyDown(ev *KeyEvent) { c.keyDown(ev) }

// Focus and Blur are the handle's focus handlers.
func (c *Controller) Focus(ev *FocusEvent) { c.focus(ev) }
func (c *Controller) Blur(ev *FocusEvent) { c.blur(ev) }

func (c *Controller) handlePointerDown(ev *PointerEvent) {
	ev.PreventDefault()
	if c.disabled {
		c.tracef("pointer down ignored: disabled")
		if c.interaction != Idle {
			c.endDrag(c.capturedID)
		}
		return
	}
	trackEl, ok := c.track.Get()
	if !ok {
		c.tracef("pointer down ignored: no track")
		return
	}
	handleEl, ok := c.handle.Get()
	if !ok {
		c.tracef("pointer down ignored: no handle")
		return
	}

	c.interaction = PointerDown
	if c.opts.Capture != nil && ev.ID != 0 {
		c.opts.Capture.CapturePointer(ev.ID)
		c.capturedID = ev.ID
	}
	if c.opts.Moves != nil && c.unsubMove == nil {
		c.unsubMove = c.opts.Moves.SubscribeMove(c.PointerMove)
	}

	// A press always re-evaluates, even onto the current value, so the
	// owner hears about it and the handle regains focus.
	if v, ok := c.resolve(trackEl, ev.Position); ok {
		c.propose(v, true)
	}
	handleEl.Focus()
	// OnFocus runs only when the host reports the focus change through
	// Focus. Hosts with no real focus still see the handle as focused.
	c.focused = true
	c.broadcast()
}

func (c *Controller) handlePointerMove(ev *PointerEvent) {
	if c.interaction == Idle || c.disabled {
		return
	}
	c.interaction = Dragging
	trackEl, ok := c.track.Get()
	if !ok {
		c.tracef("pointer move ignored: no track")
		return
	}
	if v, ok := c.resolve(trackEl, ev.Position); ok && v != c.value {
		c.propose(v, false)
	}
}

func (c *Controller) handlePointerUp(ev *PointerEvent) {
	id := ev.ID
	if id == 0 {
		id = c.capturedID
	}
	c.endDrag(id)
}

// LoseCapture ends a drag when the host revokes pointer capture.
func (c *Controller) LoseCapture() {
	c.endDrag(c.capturedID)
}

func (c *Controller) endDrag(id PointerID) {
	if c.opts.Capture != nil && id != 0 {
		c.opts.Capture.ReleasePointer(id)
	}
	c.capturedID = 0
	if c.unsubMove != nil {
		c.unsubMove()
		c.unsubMove = nil
	}
	if c.interaction != Idle {
		c.interaction = Idle
		c.broadcast()
	}
}

func (c *Controller) resolve(el TrackElement, p Point) (float64, bool) {
	r, ok := el.Bounds()
	v, ok := ResolvePointer(p, r, ok, c.opts.Orientation, c.domain)
	if !ok {
		c.tracef("track not ready, keeping %v", c.value)
	}
	return v, ok
}

func (c *Controller) handleKeyDown(ev *KeyEvent) {
	target, ok := keyTarget(ev.Key, c.value, c.keyStep, c.domain)
	if !ok {
		return
	}
	ev.PreventDefault()
	c.ProposeValue(target)
}

// SetFocus records focus on the handle.
func (c *Controller) SetFocus(focused bool) {
	if c.focused == focused {
		return
	}
	c.focused = focused
	c.broadcast()
}

// SetDisabled toggles pointer handling. Disabling cancels a drag.
func (c *Controller) SetDisabled(disabled bool) {
	if c.disabled == disabled {
		return
	}
	c.disabled = disabled
	if disabled && c.interaction != Idle {
		c.endDrag(c.capturedID)
	}
	c.broadcast()
}

// Measure re-reads the handle size. Renderers call it after each layout
// pass. It reports whether the size changed.
func (c *Controller) Measure() bool {
	h, ok := c.handle.Get()
	if !ok {
		return false
	}
	sz := h.Size()
	if sz == c.handleSize || math.IsNaN(sz.Width) || math.IsNaN(sz.Height) {
		return false
	}
	c.handleSize = sz
	c.broadcast()
	return true
}

// Close drops any open move subscription and all observers.
func (c *Controller) Close() {
	if c.unsubMove != nil {
		c.unsubMove()
		c.unsubMove = nil
	}
	c.interaction = Idle
	c.observers.clear()
}

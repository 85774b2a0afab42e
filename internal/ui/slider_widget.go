package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/slider"
)

const (
	trackThickness = float32(4)
	primaryPointer = slider.PointerID(1)
)

// Slider renders a slider.Controller with a thin track, a filled highlight
// and a small round handle. It works in both orientations.
//
// The controller is only touched from the window's event goroutine. The
// renderer runs on the draw thread and reads the last broadcast snapshot.
type Slider struct {
	widget.BaseWidget

	ctrl    *slider.Controller
	unsub   func()
	pressed bool

	mu    sync.Mutex
	shown slider.Presentation
}

var (
	_ fyne.Draggable    = (*Slider)(nil)
	_ fyne.Focusable    = (*Slider)(nil)
	_ fyne.Tappable     = (*Slider)(nil)
	_ fyne.Scrollable   = (*Slider)(nil)
	_ desktop.Mouseable = (*Slider)(nil)
)

// NewSlider builds the controller from opts and mounts this widget as its
// track and handle.
func NewSlider(opts slider.Options) (*Slider, error) {
	ctrl, err := slider.New(opts)
	if err != nil {
		return nil, err
	}
	s := &Slider{ctrl: ctrl}
	s.ExtendBaseWidget(s)
	ctrl.Track().Attach(sliderTrack{s})
	ctrl.Handle().Attach(sliderHandle{s})
	ctrl.Measure()
	s.shown = ctrl.Presentation()
	s.unsub = ctrl.Subscribe(func(p slider.Presentation) {
		s.mu.Lock()
		s.shown = p
		s.mu.Unlock()
		s.Refresh()
	})
	return s, nil
}

// Controller exposes the engine for callers that need its read accessors.
func (s *Slider) Controller() *slider.Controller { return s.ctrl }

// Value is the current slider value.
func (s *Slider) Value() float64 { return s.ctrl.Value() }

// SetValue feeds an externally owned value (controlled sliders only).
func (s *Slider) SetValue(v float64) error { return s.ctrl.SetValue(v) }

// Enable, Disable and Disabled make the widget fyne.Disableable; a disabled
// slider is skipped by focus traversal and ignores the pointer.
func (s *Slider) Enable()        { s.ctrl.SetDisabled(false) }
func (s *Slider) Disable()       { s.ctrl.SetDisabled(true) }
func (s *Slider) Disabled() bool { return s.ctrl.Disabled() }

// Destroy releases the controller subscription.
func (s *Slider) Destroy() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
	s.ctrl.Track().Detach()
	s.ctrl.Handle().Detach()
	s.ctrl.Close()
}

func (s *Slider) presentation() slider.Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

func (s *Slider) CreateRenderer() fyne.WidgetRenderer {
	r := &sliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb}
	return r
}

// MinSize keeps a comfortable touch target along the cross axis.
func (s *Slider) MinSize() fyne.Size {
	if s.ctrl.Orientation() == slider.Vertical {
		w := theme.IconInlineSize()
		if w < 20 {
			w = 20
		}
		return fyne.NewSize(w, 180)
	}
	return fyne.NewSize(100, theme.IconInlineSize())
}

func pointerEvent(pos fyne.Position) *slider.PointerEvent {
	return &slider.PointerEvent{
		ID:       primaryPointer,
		Position: slider.Point{X: float64(pos.X), Y: float64(pos.Y)},
	}
}

// MouseDown starts a drag on the primary button.
func (s *Slider) MouseDown(ev *desktop.MouseEvent) {
	if ev == nil || ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.pressed = true
	s.ctrl.PointerDown(pointerEvent(ev.Position))
}

// MouseUp ends the drag.
func (s *Slider) MouseUp(ev *desktop.MouseEvent) {
	if ev == nil {
		return
	}
	s.ctrl.PointerUp(pointerEvent(ev.Position))
	// fyne only follows up with Tapped when the release lands on us.
	sz := s.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 || ev.Position.X > sz.Width || ev.Position.Y > sz.Height {
		s.pressed = false
	}
}

// Dragged moves the value with the pointer.
func (s *Slider) Dragged(ev *fyne.DragEvent) {
	if ev == nil {
		return
	}
	s.ctrl.PointerMove(pointerEvent(ev.Position))
}

// DragEnd is fyne's capture release. No Tapped follows a drag.
func (s *Slider) DragEnd() {
	s.pressed = false
	s.ctrl.LoseCapture()
}

// Tapped covers drivers without mouse events (touch). On desktop the press
// was already handled by MouseDown.
func (s *Slider) Tapped(ev *fyne.PointEvent) {
	if s.pressed {
		s.pressed = false
		return
	}
	if ev == nil {
		return
	}
	s.ctrl.PointerDown(pointerEvent(ev.Position))
	s.ctrl.PointerUp(pointerEvent(ev.Position))
}

// Scrolled nudges the value by one key step per wheel notch. The desktop
// driver delivers scrolling outside the event queue, so it is requeued.
func (s *Slider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil {
		return
	}
	var k slider.Key
	switch {
	case ev.Scrolled.DY > 0:
		k = slider.KeyArrowUp
	case ev.Scrolled.DY < 0:
		k = slider.KeyArrowDown
	default:
		return
	}
	CallOnMain(windowFor(s), func() {
		if !s.ctrl.Disabled() {
			s.ctrl.KeyDown(&slider.KeyEvent{Key: k})
		}
	})
}

func (s *Slider) FocusGained() { s.ctrl.Focus(&slider.FocusEvent{}) }
func (s *Slider) FocusLost()   { s.ctrl.Blur(&slider.FocusEvent{}) }
func (s *Slider) TypedRune(rune) {}

// TypedKey maps fyne key names onto slider navigation keys.
func (s *Slider) TypedKey(ev *fyne.KeyEvent) {
	if ev == nil {
		return
	}
	if k, ok := sliderKey(ev.Name); ok {
		s.ctrl.KeyDown(&slider.KeyEvent{Key: k})
	}
}

func sliderKey(name fyne.KeyName) (slider.Key, bool) {
	switch name {
	case fyne.KeyLeft:
		return slider.KeyArrowLeft, true
	case fyne.KeyRight:
		return slider.KeyArrowRight, true
	case fyne.KeyUp:
		return slider.KeyArrowUp, true
	case fyne.KeyDown:
		return slider.KeyArrowDown, true
	case fyne.KeyPageUp:
		return slider.KeyPageUp, true
	case fyne.KeyPageDown:
		return slider.KeyPageDown, true
	case fyne.KeyHome:
		return slider.KeyHome, true
	case fyne.KeyEnd:
		return slider.KeyEnd, true
	}
	return "", false
}

// sliderTrack reports the widget's own bounds; pointer events arrive in the
// same widget-local coordinates.
type sliderTrack struct{ s *Slider }

func (t sliderTrack) Bounds() (slider.Rect, bool) {
	sz := t.s.Size()
	if sz.Width <= 0 || sz.Height <= 0 {
		return slider.Rect{}, false
	}
	return slider.Rect{
		Left:   0,
		Width:  float64(sz.Width),
		Bottom: float64(sz.Height),
		Height: float64(sz.Height),
	}, true
}

type sliderHandle struct{ s *Slider }

func (h sliderHandle) Size() slider.Size {
	d := float64(handleDiameter())
	return slider.Size{Width: d, Height: d}
}

// windowFor finds the window whose canvas shows obj, or nil.
func windowFor(obj fyne.CanvasObject) fyne.Window {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return nil
	}
	c := app.Driver().CanvasForObject(obj)
	if c == nil {
		return nil
	}
	for _, w := range app.Driver().AllWindows() {
		if w.Canvas() == c {
			return w
		}
	}
	return nil
}

func (h sliderHandle) Focus() {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return
	}
	if c := app.Driver().CanvasForObject(h.s); c != nil {
		c.Focus(h.s)
	}
}

// handleDiameter is half the inline icon size, the same small thumb used
// elsewhere in the app.
func handleDiameter() float32 { return theme.IconInlineSize() / 2 }

type sliderRenderer struct {
	s     *Slider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	objs  []fyne.CanvasObject
}

func (r *sliderRenderer) Layout(sz fyne.Size) {
	if r.s.presentation().Handle.Size != float64(handleDiameter()) {
		// a theme or scale change resized the handle
		CallOnMain(windowFor(r.s), func() { r.s.ctrl.Measure() })
	}
	p := r.s.presentation()
	d := handleDiameter()

	if p.Orientation == slider.Vertical {
		x := (sz.Width - trackThickness) / 2
		r.track.Move(fyne.NewPos(x, 0))
		r.track.Resize(fyne.NewSize(trackThickness, sz.Height))

		fillH := float32(p.Highlight.Size(float64(sz.Height)))
		r.fill.Move(fyne.NewPos(x, sz.Height-fillH))
		r.fill.Resize(fyne.NewSize(trackThickness, fillH))

		off := float32(p.Handle.Resolve(float64(sz.Height)))
		r.thumb.Resize(fyne.NewSize(d, d))
		r.thumb.Move(fyne.NewPos(sz.Width/2-d/2, sz.Height-off-d))
		return
	}

	y := (sz.Height - trackThickness) / 2
	r.track.Move(fyne.NewPos(0, y))
	r.track.Resize(fyne.NewSize(sz.Width, trackThickness))

	fillW := float32(p.Highlight.Size(float64(sz.Width)))
	r.fill.Move(fyne.NewPos(0, y))
	r.fill.Resize(fyne.NewSize(fillW, trackThickness))

	off := float32(p.Handle.Resolve(float64(sz.Width)))
	r.thumb.Resize(fyne.NewSize(d, d))
	r.thumb.Move(fyne.NewPos(off, sz.Height/2-d/2))
}

func (r *sliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *sliderRenderer) Refresh() {
	p := r.s.presentation()
	var stroke color.Color = color.Transparent
	fill, thumb := theme.PrimaryColor(), theme.ForegroundColor()
	if p.Disabled {
		fill, thumb = theme.DisabledColor(), theme.DisabledColor()
	}
	if p.Focused && !p.Disabled {
		stroke = theme.FocusColor()
	}
	r.track.FillColor = theme.ShadowColor()
	r.fill.FillColor = fill
	r.thumb.FillColor = thumb
	r.thumb.StrokeColor = stroke
	r.thumb.StrokeWidth = 2

	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *sliderRenderer) Destroy() {}

func (r *sliderRenderer) Objects() []fyne.CanvasObject { return r.objs }

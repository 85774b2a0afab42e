package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/slider"
)

// ValueCaption keeps a label in sync with a slider's value text. Updates
// go through a string binding so they are safe from any goroutine.
type ValueCaption struct {
	lbl  *widget.Label
	bind binding.String

	mu       sync.Mutex
	unsub    func()
	lastText string
	onText   func(string)
}

// NewValueCaption binds lbl to the slider and shows its current value text.
func NewValueCaption(lbl *widget.Label, s *Slider) *ValueCaption {
	b := binding.NewString()
	lbl.Bind(b)
	lbl.Truncation = fyne.TextTruncateEllipsis
	vc := &ValueCaption{lbl: lbl, bind: b}
	vc.set(s.Controller().Presentation().ValueText)
	vc.unsub = s.Controller().Subscribe(func(p slider.Presentation) { vc.set(p.ValueText) })
	return vc
}

// OnText registers an extra sink for every text change, e.g. a rotated
// caption.
func (vc *ValueCaption) OnText(fn func(string)) {
	vc.mu.Lock()
	vc.onText = fn
	text := vc.lastText
	vc.mu.Unlock()
	if fn != nil {
		fn(text)
	}
}

// Text is the text currently shown.
func (vc *ValueCaption) Text() string {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.lastText
}

func (vc *ValueCaption) set(text string) {
	vc.mu.Lock()
	if text == vc.lastText {
		vc.mu.Unlock()
		return
	}
	vc.lastText = text
	fn := vc.onText
	vc.mu.Unlock()

	_ = vc.bind.Set(text)
	if fn != nil {
		fn(text)
	}
}

// Close stops following the slider.
func (vc *ValueCaption) Close() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	if vc.unsub != nil {
		vc.unsub()
		vc.unsub = nil
	}
}

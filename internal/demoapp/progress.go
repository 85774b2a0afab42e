package demoapp

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/config"
	"github.com/edward-ap/minislider/internal/media"
	"github.com/edward-ap/minislider/internal/slider"
	ui "github.com/edward-ap/minislider/internal/ui"
)

// progressBar owns a controlled slider whose value is the playback position
// in seconds. The player is the source of truth: positions flow in through
// update, user moves flow out as seeks.
type progressBar struct {
	tr    Transport
	prefs config.SliderPrefs
	onErr func(error)

	box     *fyne.Container
	time    *widget.Label
	s       *ui.Slider
	caption *ui.ValueCaption
	length  time.Duration
	feed    *positionFeed
}

func newProgressBar(tr Transport, prefs config.SliderPrefs, showText bool, onErr func(error), post func(func())) *progressBar {
	pb := &progressBar{
		tr:    tr,
		prefs: prefs,
		onErr: onErr,
		box:   container.NewStack(),
		time:  widget.NewLabel(""),
	}
	pb.feed = &positionFeed{post: post, apply: pb.update}
	if !showText {
		pb.time.Hide()
	}
	pb.rebuild(0)
	return pb
}

// rebuild remounts the slider for a new media length. The domain is fixed
// per controller, so a length change means a fresh one.
func (pb *progressBar) rebuild(length time.Duration) {
	if pb.caption != nil {
		pb.caption.Close()
	}
	if pb.s != nil {
		pb.s.Destroy()
	}
	pb.length = length

	total := length.Seconds()
	hi := total
	if hi <= 0 {
		hi = 1
	}
	zero := 0.0
	opts := slider.Options{
		Max:      hi,
		Value:    &zero,
		Disabled: length <= 0,
		Label:    "Playback position",
		Name:     "position",
		ValueText: func(v float64) string {
			return formatClock(v) + " / " + formatClock(total)
		},
		OnChange: pb.seek,
	}
	if err := pb.prefs.Apply(&opts); err != nil {
		pb.onErr(err)
	}
	s, err := ui.NewSlider(opts)
	if err != nil {
		pb.onErr(err)
		return
	}
	pb.s = s
	pb.caption = ui.NewValueCaption(pb.time, s)
	pb.box.Objects = []fyne.CanvasObject{s}
	pb.box.Refresh()
}

// seek echoes the accepted value back into the slider and asks the player
// to move there.
func (pb *progressBar) seek(v float64, _ slider.ChangeContext) {
	if pb.s != nil {
		_ = pb.s.SetValue(v)
	}
	if err := pb.tr.Seek(time.Duration(v * float64(time.Second))); err != nil {
		pb.onErr(err)
	}
}

// update feeds a position sample. It must run on the UI goroutine.
func (pb *progressBar) update(pos media.Position) {
	if pos.Length != pb.length {
		pb.rebuild(pos.Length)
	}
	if pb.s == nil || pb.s.Controller().Dragging() {
		return
	}
	_ = pb.s.SetValue(pos.Time.Seconds())
}

// nudge moves the position as if the slider had the key.
func (pb *progressBar) nudge(k slider.Key) {
	if pb.s != nil && !pb.s.Disabled() {
		pb.s.Controller().KeyDown(&slider.KeyEvent{Key: k})
	}
}

func (pb *progressBar) close() {
	if pb.caption != nil {
		pb.caption.Close()
	}
	if pb.s != nil {
		pb.s.Destroy()
	}
}

// positionFeed carries samples from the transport's goroutine to the UI.
// Only the newest sample is kept, and at most one hand-over is queued, so
// a slow UI skips stale positions instead of replaying them.
type positionFeed struct {
	post  func(func())
	apply func(media.Position)

	mu      sync.Mutex
	latest  media.Position
	pending bool
}

// push may be called from any goroutine.
func (f *positionFeed) push(pos media.Position) {
	f.mu.Lock()
	f.latest = pos
	queued := f.pending
	f.pending = true
	f.mu.Unlock()
	if !queued {
		f.post(f.deliver)
	}
}

func (f *positionFeed) deliver() {
	f.mu.Lock()
	pos := f.latest
	f.pending = false
	f.mu.Unlock()
	f.apply(pos)
}

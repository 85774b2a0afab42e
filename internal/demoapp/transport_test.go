package demoapp

import (
	"context"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/equalizer"
	"github.com/edward-ap/minislider/internal/media"
)

// fakeTransport records what the window asks of the player.
type fakeTransport struct {
	mu      sync.Mutex
	seeks   []time.Duration
	volumes []int
	curves  []equalizer.Preset
	eqErr   error
	onSeek  func(time.Duration)
	onPos   func(media.Position)
	playing bool
}

func (f *fakeTransport) Init(int) error                     { return nil }
func (f *fakeTransport) Load(context.Context, string) error { return nil }
func (f *fakeTransport) Play() error                        { f.playing = true; return nil }
func (f *fakeTransport) TogglePause() error                 { f.playing = !f.playing; return nil }
func (f *fakeTransport) IsPlaying() bool                    { return f.playing }
func (f *fakeTransport) Release()                           {}

func (f *fakeTransport) Seek(d time.Duration) error {
	f.mu.Lock()
	f.seeks = append(f.seeks, d)
	f.mu.Unlock()
	if f.onSeek != nil {
		f.onSeek(d)
	}
	return nil
}

func (f *fakeTransport) SetVolume(v int) error {
	f.volumes = append(f.volumes, v)
	return nil
}

func (f *fakeTransport) SetEqualizer(p equalizer.Preset) error {
	if f.eqErr != nil {
		return f.eqErr
	}
	f.curves = append(f.curves, p)
	return nil
}

func (f *fakeTransport) SetOnPosition(fn func(media.Position)) { f.onPos = fn }

var _ Transport = (*fakeTransport)(nil)

// openHost gives the test driver a canvas for handles that take focus.
func openHost(t *testing.T) {
	t.Helper()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)
}

func inline(f func()) { f() }

// Package demoapp wires the slider widgets, the player, and configuration
// into the MiniSlider desktop window: a controlled playback-position slider
// fed by libVLC, an uncontrolled vertical volume slider and a bank of
// controlled equalizer sliders.
package demoapp

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/config"
	"github.com/edward-ap/minislider/internal/slider"
	ui "github.com/edward-ap/minislider/internal/ui"
)

const loadTimeout = 10 * time.Second

// App owns the fyne window, the player and the sliders. Every field is
// owned by the window's event goroutine; other goroutines hand work over
// through post.
type App struct {
	fa     fyne.App
	w      fyne.Window
	player Transport
	config *config.Config
	post   func(func())

	source   *widget.Entry
	playBtn  *widget.Button
	status   *widget.Label
	progress *progressBar
	volume   *volumeColumn
	eq       *eqPanel
	eqBtn    *widget.Button

	ready  bool
	loaded string
}

// NewApp loads the config, creates the fyne app around tr and starts the
// transport in the background.
func NewApp(tr Transport) *App {
	cfg, err := config.Load()
	if err != nil {
		log.Println("config load error:", err)
		cfg = &config.Config{
			WindowW:       config.DefaultWidth,
			WindowH:       config.DefaultHeight,
			Progress:      config.SliderPrefs{Step: config.DefaultProgressStep, KeyStep: config.DefaultProgressKeyStep},
			Volume:        config.SliderPrefs{Step: config.DefaultVolumeStep},
			HandleScale:   config.DefaultHandleScale,
			ShowValueText: true,
			EQPreset:      config.DefaultEQPreset,
		}
	}
	fa := app.NewWithID(config.AppID)
	fa.Settings().SetTheme(theme.DarkTheme())

	a, err := newApp(fa, cfg, tr)
	if err != nil {
		log.Fatalf("demo window: %v", err)
	}
	go a.startTransport(a.volume.value())
	return a
}

// startTransport runs off the UI. Everything it learns goes back through
// post.
func (a *App) startTransport(volume int) {
	if err := a.player.Init(volume); err != nil {
		a.post(func() {
			dialog.ShowError(fmt.Errorf("cannot initialize VLC: %w\n\nInstall VLC or place libvlc and its plugins folder next to the executable.", err), a.w)
			a.setStatus("VLC init failed")
		})
		return
	}
	a.player.SetOnPosition(a.progress.feed.push)
	a.post(a.transportReady)
}

func (a *App) transportReady() {
	a.ready = true
	a.eq.activate()
	a.setStatus("Ready")
}

// newApp builds the window around an already created fyne app and
// transport.
func newApp(fa fyne.App, cfg *config.Config, tr Transport) (*App, error) {
	ui.UseHandleScale(cfg.HandleScale)

	w := fa.NewWindow("MiniSlider")
	w.SetMaster()
	w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	a := &App{fa: fa, w: w, player: tr, config: cfg}
	a.post = func(f func()) { ui.CallOnMain(w, f) }
	a.status = widget.NewLabel("Initializing VLC…")
	a.progress = newProgressBar(tr, cfg.Progress, cfg.ShowValueText, a.showError, a.post)
	vol, err := newVolumeColumn(tr, cfg.Volume, a.showError)
	if err != nil {
		return nil, err
	}
	a.volume = vol
	eq, err := newEQPanel(tr, cfg.EQPreset, a.showError)
	if err != nil {
		return nil, err
	}
	a.eq = eq
	a.eqBtn = widget.NewButton("EQ", a.toggleEQ)

	a.source = widget.NewEntry()
	a.source.SetPlaceHolder("Media file or URL")
	a.source.SetText(cfg.MediaURL)
	a.source.OnSubmitted = func(string) { a.togglePlay() }
	a.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), a.togglePlay)

	top := container.NewBorder(nil, nil, nil, container.NewHBox(a.playBtn, a.eqBtn), a.source)
	center := container.NewVBox(a.progress.box, a.progress.time, a.status)
	w.SetContent(container.NewBorder(top, a.eq.obj, nil, a.volume.obj, container.NewPadded(center)))
	a.showEQ(cfg.ShowEQ)

	w.Canvas().SetOnTypedKey(a.handleShortcutKey)
	w.SetCloseIntercept(a.close)
	return a, nil
}

// Run shows the window and enters the fyne event loop.
func (a *App) Run() {
	a.w.ShowAndRun()
}

// handleShortcutKey serves keys typed while no slider has focus.
func (a *App) handleShortcutKey(ke *fyne.KeyEvent) {
	if ke == nil {
		return
	}
	switch ke.Name {
	case fyne.KeySpace:
		a.togglePlay()
	case fyne.KeyLeft:
		a.progress.nudge(slider.KeyArrowLeft)
	case fyne.KeyRight:
		a.progress.nudge(slider.KeyArrowRight)
	case fyne.KeyUp, fyne.KeyPlus:
		a.volume.nudge(slider.KeyArrowUp)
	case fyne.KeyDown, fyne.KeyMinus:
		a.volume.nudge(slider.KeyArrowDown)
	}
}

// togglePlay loads the entered source when it changed, otherwise flips
// between play and pause.
func (a *App) togglePlay() {
	if !a.ready {
		a.setStatus("VLC is not ready yet")
		return
	}
	src := strings.TrimSpace(a.source.Text)
	if src == "" {
		dialog.ShowInformation("Media", "Enter a media file path or URL first.", a.w)
		return
	}
	if src != a.loaded {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		if err := a.player.Load(ctx, src); err != nil {
			a.showError(err)
			a.setStatus("Failed to load")
			return
		}
		a.loaded = src
		a.config.MediaURL = src
		a.progress.rebuild(0)
		if err := a.player.Play(); err != nil {
			a.showError(err)
			a.setStatus("Failed to play")
			return
		}
	} else if err := a.player.TogglePause(); err != nil {
		a.showError(err)
		return
	}
	if a.player.IsPlaying() {
		a.playBtn.SetIcon(theme.MediaPauseIcon())
		a.setStatus("Playing")
	} else {
		a.playBtn.SetIcon(theme.MediaPlayIcon())
		a.setStatus("Paused")
	}
}

func (a *App) toggleEQ() { a.showEQ(!a.eq.obj.Visible()) }

func (a *App) showEQ(on bool) {
	if on {
		a.eq.obj.Show()
		a.eqBtn.Importance = widget.HighImportance
	} else {
		a.eq.obj.Hide()
		a.eqBtn.Importance = widget.MediumImportance
	}
	a.eqBtn.Refresh()
	a.config.ShowEQ = on
}

func (a *App) setStatus(text string) { a.status.SetText(text) }

func (a *App) showError(err error) {
	if err == nil {
		return
	}
	log.Println("demo:", err)
	dialog.ShowError(err, a.w)
}

// close saves the window size and releases the player.
func (a *App) close() {
	sz := a.w.Canvas().Size()
	a.config.WindowW = int(sz.Width)
	a.config.WindowH = int(sz.Height)
	a.config.EQPreset = a.eq.bank.Name()
	if err := a.config.Save(); err != nil {
		log.Println("config save error:", err)
	}
	a.progress.close()
	a.volume.close()
	a.eq.close()
	a.player.Release()
	a.w.Close()
	a.fa.Quit()
}

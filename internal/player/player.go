// Package player wraps libVLC playback for the slider demo: load a file or
// URL, play and pause, report the playback position and seek.
package player

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	vlc "github.com/adrg/libvlc-go/v3"

	"github.com/edward-ap/minislider/internal/equalizer"
	"github.com/edward-ap/minislider/internal/media"
)

// pollInterval is how often the position is sampled while playing.
const pollInterval = 250 * time.Millisecond

// Player is a thread-safe wrapper around libVLC that serializes every call
// and publishes position samples from a background poller.
type Player struct {
	p      *vlc.Player
	media  *vlc.Media
	eq     *vlc.Equalizer
	volume int

	source    string
	isPlaying bool

	onPosition func(media.Position)

	// single lock guarding all C/libVLC invocations
	vlcMu sync.Mutex

	pollCancel context.CancelFunc
	pollWG     sync.WaitGroup

	// internal lock for Player fields (not for libVLC)
	mu sync.Mutex
}

type stdLogger struct{}

func (stdLogger) Printf(format string, args ...any) {
	log.Printf(format, args...)
}

var logger = stdLogger{}

// NewPlayer constructs a Player but does not initialize libVLC. Call Init
// before attempting playback.
func NewPlayer() *Player {
	return &Player{volume: 70}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Init configures libVLC and applies the initial volume.
func (pl *Player) Init(volume int) error {
	if exe, err := os.Executable(); err == nil {
		plugins := filepath.Join(filepath.Dir(exe), "plugins")
		if st, err := os.Stat(plugins); err == nil && st.IsDir() {
			_ = os.Setenv("VLC_PLUGIN_PATH", plugins)
		}
	}

	args := []string{"--no-video", "--no-color", "--file-caching=300"}
	if isTraceLoggingEnabled() {
		args = append(args, "--verbose=2", "--file-logging", "--log-verbose=2", "--logfile=vlc.log")
	}
	pl.vlcMu.Lock()
	err := vlc.Init(args...)
	pl.vlcMu.Unlock()
	if err != nil {
		return fmt.Errorf("libvlc init failed: %w", err)
	}
	if isTraceLoggingEnabled() {
		logger.Printf("player: libvlc %s", vlc.Version().String())
	}

	pl.vlcMu.Lock()
	player, err := vlc.NewPlayer()
	if err != nil {
		vlc.Release()
		pl.vlcMu.Unlock()
		return fmt.Errorf("new vlc player failed: %w", err)
	}
	pl.p = player
	pl.volume = clamp(volume, 0, 100)
	_ = pl.p.SetVolume(pl.volume)
	pl.vlcMu.Unlock()
	return nil
}

// Release stops the poller and frees VLC resources.
func (pl *Player) Release() {
	pl.stopPoll()

	pl.vlcMu.Lock()
	if pl.p != nil {
		_ = pl.p.Stop()
		pl.p.Release()
		pl.p = nil
	}
	if pl.eq != nil {
		_ = pl.eq.Release()
		pl.eq = nil
	}
	if pl.media != nil {
		pl.media.Release()
		pl.media = nil
	}
	vlc.Release()
	pl.vlcMu.Unlock()

	pl.mu.Lock()
	pl.isPlaying = false
	pl.mu.Unlock()
}

// SetOnPosition registers the callback that receives position samples. It
// runs on the poller goroutine.
func (pl *Player) SetOnPosition(fn func(media.Position)) {
	pl.mu.Lock()
	pl.onPosition = fn
	pl.mu.Unlock()
}

// IsPlaying reports whether playback is running.
func (pl *Player) IsPlaying() bool {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.isPlaying
}

// isLocalPath reports whether src names a file rather than a URL.
func isLocalPath(src string) bool {
	if strings.Contains(src, "://") {
		return false
	}
	_, err := os.Stat(src)
	return err == nil
}

// Load prepares media from a local path or URL without starting playback.
func (pl *Player) Load(ctx context.Context, src string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pl.stopPoll()

	src = strings.TrimSpace(src)
	if src == "" {
		return fmt.Errorf("no media source")
	}

	pl.vlcMu.Lock()
	defer pl.vlcMu.Unlock()
	if pl.p == nil {
		return fmt.Errorf("vlc player not initialized")
	}
	if pl.media != nil {
		pl.media.Release()
		pl.media = nil
	}

	var (
		m   *vlc.Media
		err error
	)
	if isLocalPath(src) {
		m, err = vlc.NewMediaFromPath(src)
	} else {
		m, err = vlc.NewMediaFromURL(src)
	}
	if err != nil {
		return fmt.Errorf("new media failed: %w", err)
	}
	if err := pl.p.SetMedia(m); err != nil {
		m.Release()
		return fmt.Errorf("set media failed: %w", err)
	}
	pl.media = m

	pl.mu.Lock()
	pl.source = src
	pl.isPlaying = false
	pl.mu.Unlock()
	return nil
}

// Play starts or resumes playback and the position poller.
func (pl *Player) Play() error {
	pl.vlcMu.Lock()
	if pl.p == nil {
		pl.vlcMu.Unlock()
		return fmt.Errorf("vlc player not initialized")
	}
	err := pl.p.Play()
	pl.vlcMu.Unlock()
	if err != nil {
		return fmt.Errorf("play failed: %w", err)
	}
	pl.mu.Lock()
	pl.isPlaying = true
	pl.mu.Unlock()
	pl.startPoll()
	return nil
}

// Pause halts playback, keeping the position.
func (pl *Player) Pause() error {
	pl.stopPoll()
	pl.vlcMu.Lock()
	var err error
	if pl.p != nil {
		err = pl.p.SetPause(true)
	}
	pl.vlcMu.Unlock()
	if err != nil {
		return fmt.Errorf("pause failed: %w", err)
	}
	pl.mu.Lock()
	pl.isPlaying = false
	pl.mu.Unlock()
	pl.emit()
	return nil
}

// TogglePause switches between Play and Pause.
func (pl *Player) TogglePause() error {
	if pl.IsPlaying() {
		return pl.Pause()
	}
	return pl.Play()
}

// Position samples the current playback position.
func (pl *Player) Position() (media.Position, error) {
	pl.vlcMu.Lock()
	defer pl.vlcMu.Unlock()
	if pl.p == nil {
		return media.Position{}, fmt.Errorf("vlc player not initialized")
	}
	length, err := pl.p.MediaLength()
	if err != nil {
		return media.Position{}, fmt.Errorf("media length: %w", err)
	}
	t, err := pl.p.MediaTime()
	if err != nil {
		return media.Position{}, fmt.Errorf("media time: %w", err)
	}
	return media.Position{
		Time:   time.Duration(t) * time.Millisecond,
		Length: time.Duration(length) * time.Millisecond,
	}, nil
}

// Seek jumps to d from the start of the media.
func (pl *Player) Seek(d time.Duration) error {
	if d < 0 {
		d = 0
	}
	pl.vlcMu.Lock()
	var err error
	if pl.p == nil {
		err = fmt.Errorf("vlc player not initialized")
	} else {
		err = pl.p.SetMediaTime(int(d / time.Millisecond))
	}
	pl.vlcMu.Unlock()
	if err != nil {
		return fmt.Errorf("seek failed: %w", err)
	}
	if isTraceLoggingEnabled() {
		logger.Printf("player: seek %v", d)
	}
	pl.emit()
	return nil
}

// SetVolume clamps and applies an absolute volume level (0-100).
func (pl *Player) SetVolume(v int) error {
	v = clamp(v, 0, 100)
	pl.vlcMu.Lock()
	var err error
	if pl.p != nil {
		err = pl.p.SetVolume(v)
	}
	pl.vlcMu.Unlock()

	pl.mu.Lock()
	pl.volume = v
	pl.mu.Unlock()
	return err
}

// SetEqualizer applies a gain curve. The previous libVLC equalizer is
// released once the new one is attached.
func (pl *Player) SetEqualizer(p equalizer.Preset) error {
	pl.vlcMu.Lock()
	defer pl.vlcMu.Unlock()
	if pl.p == nil {
		return fmt.Errorf("vlc player not initialized")
	}
	eq, err := vlc.NewEqualizer()
	if err != nil {
		return fmt.Errorf("new equalizer failed: %w", err)
	}
	_ = eq.SetPreampValue(p.Preamp)
	for i, g := range p.Gains {
		_ = eq.SetAmpValueAtIndex(g, uint(i))
	}
	if err := pl.p.SetEqualizer(eq); err != nil {
		_ = eq.Release()
		return fmt.Errorf("set equalizer failed: %w", err)
	}
	if pl.eq != nil {
		_ = pl.eq.Release()
	}
	pl.eq = eq
	return nil
}

// Volume returns the last volume applied.
func (pl *Player) Volume() int {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.volume
}

func (pl *Player) emit() {
	pl.mu.Lock()
	cb := pl.onPosition
	pl.mu.Unlock()
	if cb == nil {
		return
	}
	pos, err := pl.Position()
	if err != nil {
		if isTraceLoggingEnabled() {
			logger.Printf("player: %v", err)
		}
		return
	}
	cb(pos)
}

func (pl *Player) startPoll() {
	pl.stopPoll()
	ctx, cancel := context.WithCancel(context.Background())
	pl.mu.Lock()
	pl.pollCancel = cancel
	pl.mu.Unlock()
	pl.pollWG.Add(1)

	go func() {
		defer pl.pollWG.Done()
		t := time.NewTicker(pollInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				pl.emit()
			}
		}
	}()
}

func (pl *Player) stopPoll() {
	pl.mu.Lock()
	cancel := pl.pollCancel
	pl.pollCancel = nil
	pl.mu.Unlock()
	if cancel != nil {
		cancel()
		pl.pollWG.Wait()
	}
}

package demoapp

import (
	"context"
	"time"

	"github.com/edward-ap/minislider/internal/equalizer"
	"github.com/edward-ap/minislider/internal/media"
)

// Transport is the playback surface the window drives. *player.Player
// implements it; cmd/slidedemo asserts that.
type Transport interface {
	Init(volume int) error
	Load(ctx context.Context, src string) error
	Play() error
	TogglePause() error
	IsPlaying() bool
	Seek(d time.Duration) error
	SetVolume(v int) error
	SetEqualizer(p equalizer.Preset) error
	// SetOnPosition registers a callback that is invoked from the
	// transport's own goroutine.
	SetOnPosition(fn func(media.Position))
	Release()
}

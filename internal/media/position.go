// Package media holds the playback types shared by the libVLC player and
// the windows that display it, so the window code builds without cgo.
package media

import "time"

// Position is a playback position sample. Length is zero for live streams.
type Position struct {
	Time   time.Duration
	Length time.Duration
}

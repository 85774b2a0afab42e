// Package ui holds the fyne widgets that mount slider controllers: the
// slider itself, its value caption and a rotated caption for vertical
// sliders.
package ui

import "fyne.io/fyne/v2"

// eventQueuer is satisfied by the desktop driver's windows: every pointer,
// key and focus callback for a window's widgets runs on the goroutine that
// drains this queue.
type eventQueuer interface {
	QueueEvent(func())
}

// CallOnMain runs f on w's event goroutine, after any input already queued,
// so f never overlaps a widget callback of that window. Windows without an
// event queue (the test driver delivers events synchronously) run f inline.
func CallOnMain(w fyne.Window, f func()) {
	if f == nil {
		return
	}
	if q, ok := w.(eventQueuer); ok {
		q.QueueEvent(f)
		return
	}
	f()
}

// currentScale returns the current UI scale, defaulting to 1 when unavailable.
func currentScale() float64 {
	app := fyne.CurrentApp()
	if app == nil || app.Settings() == nil {
		return 1
	}
	if sc := app.Settings().Scale(); sc > 0 {
		return float64(sc)
	}
	return 1
}

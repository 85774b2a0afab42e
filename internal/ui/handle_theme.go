package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// handleTheme scales the inline icon size, which the slider uses for its
// handle diameter.
type handleTheme struct {
	fyne.Theme
	scale float32
}

func (t handleTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameInlineIcon {
		return t.Theme.Size(n) * t.scale
	}
	return t.Theme.Size(n)
}

// UseHandleScale wraps the app theme so slider handles are drawn at scale
// times their default size. Non-positive scales leave the theme alone.
func UseHandleScale(scale float32) {
	app := fyne.CurrentApp()
	if app == nil || scale <= 0 || scale == 1 {
		return
	}
	base := app.Settings().Theme()
	if ht, ok := base.(handleTheme); ok {
		base = ht.Theme
	}
	app.Settings().SetTheme(handleTheme{Theme: base, scale: scale})
}

package demoapp

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/config"
	"github.com/edward-ap/minislider/internal/slider"
	ui "github.com/edward-ap/minislider/internal/ui"
)

// volumeColumn is an uncontrolled vertical slider; the slider keeps its own
// value and the player just follows it.
type volumeColumn struct {
	s       *ui.Slider
	caption *ui.ValueCaption
	rotated *ui.RotatedCaption
	label   *widget.Label
	obj     fyne.CanvasObject
}

func newVolumeColumn(tr Transport, prefs config.SliderPrefs, onErr func(error)) (*volumeColumn, error) {
	opts := slider.Options{
		Max:          100,
		DefaultValue: config.DefaultVolume,
		Orientation:  slider.Vertical,
		Label:        "Volume",
		Name:         "volume",
		ValueText:    func(v float64) string { return fmt.Sprintf("Vol %d", int(math.Round(v))) },
		OnChange: func(v float64, _ slider.ChangeContext) {
			if err := tr.SetVolume(int(math.Round(v))); err != nil {
				onErr(err)
			}
		},
	}
	if err := prefs.Apply(&opts); err != nil {
		return nil, err
	}
	s, err := ui.NewSlider(opts)
	if err != nil {
		return nil, err
	}
	vc := &volumeColumn{
		s:       s,
		rotated: ui.NewRotatedCaption(""),
		label:   widget.NewLabel(""),
	}
	vc.rotated.SetTargetSize(18, 64)
	vc.label.Hide()
	vc.caption = ui.NewValueCaption(vc.label, s)
	vc.caption.OnText(vc.rotated.SetText)
	vc.obj = container.NewBorder(vc.rotated.CanvasObject(), vc.label, nil, nil, container.NewCenter(s))
	return vc, nil
}

// value is the slider's own value, for applying to the player on init.
func (vc *volumeColumn) value() int { return int(math.Round(vc.s.Value())) }

func (vc *volumeColumn) nudge(k slider.Key) {
	vc.s.Controller().KeyDown(&slider.KeyEvent{Key: k})
}

func (vc *volumeColumn) close() {
	vc.caption.Close()
	vc.s.Destroy()
}

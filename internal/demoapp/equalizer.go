package demoapp

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/equalizer"
	"github.com/edward-ap/minislider/internal/slider"
	ui "github.com/edward-ap/minislider/internal/ui"
)

// eqPanel is a bank of controlled vertical sliders over an equalizer.Bank:
// slot 0 is the preamp, the rest are bands. Choosing a preset rewrites
// every slider from the bank. Until the transport is up (activate) edits
// only change the bank.
type eqPanel struct {
	tr     Transport
	bank   *equalizer.Bank
	onErr  func(error)
	preset *widget.Select

	sliders []*ui.Slider
	obj     fyne.CanvasObject
	silent  bool
	live    bool
}

func gainText(v float64) string { return fmt.Sprintf("%+.1f dB", v) }

func newEQPanel(tr Transport, initial string, onErr func(error)) (*eqPanel, error) {
	p := &eqPanel{tr: tr, bank: equalizer.NewBank(len(equalizer.BandsHz)), onErr: onErr}
	if pr, ok := equalizer.FindPreset(initial); ok {
		p.bank.Apply(pr)
	}

	cols := make([]fyne.CanvasObject, 0, p.bank.Len())
	for i := 0; i < p.bank.Len(); i++ {
		s, err := p.newBandSlider(i)
		if err != nil {
			return nil, err
		}
		p.sliders = append(p.sliders, s)
		label := "Pre"
		if i > 0 {
			label = equalizer.BandLabel(equalizer.BandsHz[i-1])
		}
		cols = append(cols, container.NewBorder(nil, widget.NewLabel(label), nil, nil, container.NewCenter(s)))
	}

	names := append(equalizer.PresetNames(), equalizer.ManualName)
	p.preset = widget.NewSelect(names, p.selectPreset)
	p.silent = true
	p.preset.SetSelected(p.bank.Name())
	p.silent = false

	p.obj = container.NewBorder(p.preset, nil, nil, nil, container.NewGridWithColumns(len(cols), cols...))
	return p, nil
}

func (p *eqPanel) newBandSlider(i int) (*ui.Slider, error) {
	v := p.bank.Value(i)
	name := "preamp"
	if i > 0 {
		name = fmt.Sprintf("band%d", i-1)
	}
	return ui.NewSlider(slider.Options{
		Min:         -equalizer.RangeDB,
		Max:         equalizer.RangeDB,
		Step:        equalizer.StepDB,
		KeyStep:     1,
		Value:       &v,
		Orientation: slider.Vertical,
		Name:        name,
		ValueText:   gainText,
		OnChange: func(nv float64, _ slider.ChangeContext) {
			p.edit(i, nv)
		},
	})
}

// edit is the owner's answer to a slider proposal: store it, echo it and
// push the curve to the player.
func (p *eqPanel) edit(i int, v float64) {
	if !p.bank.Set(i, v) {
		return
	}
	_ = p.sliders[i].SetValue(v)
	p.silent = true
	p.preset.SetSelected(p.bank.Name())
	p.silent = false
	p.push()
}

func (p *eqPanel) selectPreset(name string) {
	if p.silent {
		return
	}
	pr, ok := equalizer.FindPreset(name)
	if !ok {
		return
	}
	p.bank.Apply(pr)
	for i, s := range p.sliders {
		_ = s.SetValue(p.bank.Value(i))
	}
	p.push()
}

// activate starts forwarding the curve and applies the current one.
func (p *eqPanel) activate() {
	p.live = true
	p.push()
}

func (p *eqPanel) push() {
	if !p.live {
		return
	}
	if err := p.tr.SetEqualizer(p.bank.Preset()); err != nil {
		p.onErr(err)
	}
}

func (p *eqPanel) close() {
	for _, s := range p.sliders {
		s.Destroy()
	}
}

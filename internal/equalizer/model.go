// Package equalizer holds the gain model behind the demo's bank of vertical
// EQ sliders: slot 0 is the preamp, slots 1+ are bands from low to high
// frequency.
package equalizer

import (
	"fmt"
	"strings"
)

const (
	// RangeDB bounds every slider symmetrically around 0 dB.
	RangeDB = 20
	// StepDB is the committed gain resolution.
	StepDB = 0.1
	// ManualName labels values that no longer match a preset.
	ManualName = "Manual"
)

// BandsHz are libVLC's ten band centers.
var BandsHz = []float64{60, 170, 310, 600, 1000, 3000, 6000, 12000, 14000, 16000}

// Preset is a named gain curve.
type Preset struct {
	Name   string
	Preamp float64
	Gains  []float64
}

var defaultPresets = []Preset{
	{Name: "Flat", Preamp: 0, Gains: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	{Name: "Bass Boost", Preamp: 2, Gains: []float64{5, 4, 3, 2, 1, 0, -1, -2, -3, -4}},
	{Name: "Treble Boost", Preamp: 1, Gains: []float64{-4, -3, -2, -1, 0, 1, 2, 3, 4, 5}},
	{Name: "Vocal Boost", Preamp: 0, Gains: []float64{-2, -1, 1, 3, 4, 3, 1, -1, -2, -3}},
}

// DefaultPresets returns a deep copy of the bundled presets.
func DefaultPresets() []Preset {
	out := make([]Preset, len(defaultPresets))
	for i, p := range defaultPresets {
		out[i] = p.clone()
	}
	return out
}

// PresetNames lists the bundled preset names in display order.
func PresetNames() []string {
	names := make([]string, len(defaultPresets))
	for i, p := range defaultPresets {
		names[i] = p.Name
	}
	return names
}

// FindPreset performs a case-insensitive lookup across the bundled presets.
func FindPreset(name string) (Preset, bool) {
	for _, p := range defaultPresets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p.clone(), true
		}
	}
	return Preset{}, false
}

func (p Preset) clone() Preset {
	c := Preset{Name: p.Name, Preamp: p.Preamp, Gains: make([]float64, len(p.Gains))}
	copy(c.Gains, p.Gains)
	return c
}

// Bank owns the slider values. Sliders over it are controlled: they propose
// through Set and display Value.
type Bank struct {
	values []float64
	name   string
}

// NewBank starts a flat bank with the given number of bands.
func NewBank(bands int) *Bank {
	return &Bank{values: make([]float64, bands+1), name: "Flat"}
}

// Len is the number of slots, preamp included.
func (b *Bank) Len() int { return len(b.values) }

// Value returns slot i.
func (b *Bank) Value(i int) float64 {
	if i < 0 || i >= len(b.values) {
		return 0
	}
	return b.values[i]
}

// Name is the active preset, or ManualName after a manual edit.
func (b *Bank) Name() string { return b.name }

// Set stores a manual edit to slot i. It reports whether anything changed.
func (b *Bank) Set(i int, v float64) bool {
	if i < 0 || i >= len(b.values) || b.values[i] == v {
		return false
	}
	b.values[i] = v
	b.name = ManualName
	return true
}

// Apply loads a preset into the bank. Missing gains read as 0 dB.
func (b *Bank) Apply(p Preset) {
	b.values[0] = p.Preamp
	for i := 1; i < len(b.values); i++ {
		b.values[i] = 0
		if i-1 < len(p.Gains) {
			b.values[i] = p.Gains[i-1]
		}
	}
	b.name = p.Name
}

// Preset snapshots the bank as a preset.
func (b *Bank) Preset() Preset {
	p := Preset{Name: b.name, Preamp: b.values[0], Gains: make([]float64, len(b.values)-1)}
	copy(p.Gains, b.values[1:])
	return p
}

// BandLabel renders a band center as a short axis label (60, 1k, 12k).
func BandLabel(hz float64) string {
	if hz >= 1000 {
		k := hz / 1000
		if k == float64(int(k)) {
			return fmt.Sprintf("%dk", int(k))
		}
		return fmt.Sprintf("%.1fk", k)
	}
	return fmt.Sprintf("%d", int(hz))
}

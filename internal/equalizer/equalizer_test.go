package equalizer

import "testing"

func TestDefaultPresetsCount(t *testing.T) {
	presets := DefaultPresets()
	const expected = 4
	if len(presets) != expected {
		t.Fatalf("expected %d presets, got %d", expected, len(presets))
	}
	for i, p := range presets {
		if p.Name == "" {
			t.Fatalf("preset %d has empty name", i)
		}
		if len(p.Gains) != len(BandsHz) {
			t.Fatalf("preset %s expected %d gains, got %d", p.Name, len(BandsHz), len(p.Gains))
		}
		for _, g := range append([]float64{p.Preamp}, p.Gains...) {
			if g < -RangeDB || g > RangeDB {
				t.Fatalf("preset %s has gain %v outside the slider domain", p.Name, g)
			}
		}
	}
}

func TestDefaultPresetsAreCopies(t *testing.T) {
	DefaultPresets()[1].Gains[0] = 99
	p, _ := FindPreset("Bass Boost")
	if p.Gains[0] == 99 {
		t.Fatal("mutating a returned preset leaked into the defaults")
	}
}

func TestFindPreset(t *testing.T) {
	p, ok := FindPreset(" bass boost ")
	if !ok {
		t.Fatalf("expected to find Bass Boost preset")
	}
	if p.Preamp == 0 || p.Gains[0] == 0 {
		t.Fatalf("expected non-zero values for Bass Boost preset")
	}
	if _, ok := FindPreset("non-existent"); ok {
		t.Fatalf("unexpected preset found")
	}
}

func TestBankApplyAndSnapshot(t *testing.T) {
	b := NewBank(3)
	b.Apply(Preset{Name: "Test", Preamp: 3.5, Gains: []float64{1, 2}})
	want := []float64{3.5, 1, 2, 0}
	for i, w := range want {
		if got := b.Value(i); got != w {
			t.Fatalf("slot %d: want %v, got %v", i, w, got)
		}
	}
	if b.Name() != "Test" {
		t.Fatalf("name = %q", b.Name())
	}

	p := b.Preset()
	if p.Preamp != 3.5 || len(p.Gains) != 3 || p.Gains[2] != 0 {
		t.Fatalf("unexpected snapshot %+v", p)
	}
}

func TestBankSetMarksManual(t *testing.T) {
	b := NewBank(2)
	if b.Set(1, 0) {
		t.Fatal("setting the same value should report no change")
	}
	if b.Name() != "Flat" {
		t.Fatalf("name changed without an edit: %q", b.Name())
	}
	if !b.Set(2, -1.5) {
		t.Fatal("expected change")
	}
	if b.Name() != ManualName || b.Value(2) != -1.5 {
		t.Fatalf("got name %q value %v", b.Name(), b.Value(2))
	}
	if b.Set(5, 1) || b.Value(5) != 0 {
		t.Fatal("out-of-range slot must be ignored")
	}
}

func TestBandLabel(t *testing.T) {
	tests := []struct {
		hz   float64
		want string
	}{
		{60, "60"},
		{600, "600"},
		{1000, "1k"},
		{14000, "14k"},
		{2500, "2.5k"},
	}
	for _, tt := range tests {
		if got := BandLabel(tt.hz); got != tt.want {
			t.Fatalf("BandLabel(%v): want %q, got %q", tt.hz, tt.want, got)
		}
	}
}

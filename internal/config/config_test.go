package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/edward-ap/minislider/internal/slider"
)

func TestLoadDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	restore := overrideConfigEnv(tempDir)
	defer restore()

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	_ = os.Remove(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.MediaURL != "" {
		t.Errorf("MediaURL = %q, want empty", cfg.MediaURL)
	}
	if cfg.WindowW != DefaultWidth {
		t.Errorf("WindowW = %d, want %d", cfg.WindowW, DefaultWidth)
	}
	if cfg.WindowH != DefaultHeight {
		t.Errorf("WindowH = %d, want %d", cfg.WindowH, DefaultHeight)
	}
	if cfg.Progress.Step != DefaultProgressStep || cfg.Progress.KeyStep != DefaultProgressKeyStep {
		t.Errorf("Progress = %+v", cfg.Progress)
	}
	if cfg.Volume.Step != DefaultVolumeStep || cfg.Volume.KeyStep != 0 {
		t.Errorf("Volume = %+v", cfg.Volume)
	}
	if cfg.HandleScale != DefaultHandleScale {
		t.Errorf("HandleScale = %v, want %v", cfg.HandleScale, DefaultHandleScale)
	}
	if !cfg.ShowValueText {
		t.Error("ShowValueText should default to true")
	}
	if cfg.EQPreset != DefaultEQPreset || cfg.ShowEQ {
		t.Errorf("EQ prefs = %q/%v", cfg.EQPreset, cfg.ShowEQ)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, got error: %v", path, err)
	}
}

func TestLoadNormalizesStoredValues(t *testing.T) {
	tempDir := t.TempDir()
	restore := overrideConfigEnv(tempDir)
	defer restore()

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	raw := `{"mediaUrl":"  /tmp/a.mp3 ","windowW":100,"windowH":50,
		"progress":{"step":-1,"alignment":"sideways"},
		"volume":{"step":2,"keyStep":-3,"alignment":"contain"},
		"handleScale":9,"eqPreset":"  "}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	tests := []struct {
		name      string
		got, want any
	}{
		{"media url trimmed", cfg.MediaURL, "/tmp/a.mp3"},
		{"window width floor", cfg.WindowW, MinWindowWidth},
		{"window height floor", cfg.WindowH, MinWindowHeight},
		{"bad progress step", cfg.Progress.Step, float64(DefaultProgressStep)},
		{"bad alignment dropped", cfg.Progress.Alignment, ""},
		{"volume step kept", cfg.Volume.Step, 2.0},
		{"negative key step", cfg.Volume.KeyStep, 0.0},
		{"volume alignment kept", cfg.Volume.Alignment, "contain"},
		{"handle scale capped", cfg.HandleScale, float32(MaxHandleScale)},
		{"blank eq preset", cfg.EQPreset, DefaultEQPreset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("want %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	tempDir := t.TempDir()
	restore := overrideConfigEnv(tempDir)
	defer restore()

	path, _ := ConfigPath()
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSliderPrefsApply(t *testing.T) {
	var opts slider.Options
	p := SliderPrefs{Step: 0.5, KeyStep: 2, Alignment: "contain"}
	if err := p.Apply(&opts); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if opts.Step != 0.5 || opts.KeyStep != 2 || opts.HandleAlignment != slider.AlignContain {
		t.Fatalf("unexpected options %+v", opts)
	}
	if err := (SliderPrefs{Alignment: "left"}).Apply(&opts); err == nil {
		t.Fatal("expected error for unknown alignment")
	}
}

func overrideConfigEnv(tempDir string) func() {
	originals := map[string]string{
		"APPDATA":         os.Getenv("APPDATA"),
		"LOCALAPPDATA":    os.Getenv("LOCALAPPDATA"),
		"USERPROFILE":     os.Getenv("USERPROFILE"),
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"HOME":            os.Getenv("HOME"),
	}

	if runtime.GOOS == "windows" {
		os.Setenv("APPDATA", tempDir)
		os.Setenv("LOCALAPPDATA", tempDir)
		os.Setenv("USERPROFILE", tempDir)
	} else {
		xdg := filepath.Join(tempDir, "xdg")
		_ = os.MkdirAll(xdg, 0o755)
		os.Setenv("XDG_CONFIG_HOME", xdg)
		os.Setenv("HOME", tempDir)
	}

	return func() {
		for k, v := range originals {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}
}

// Package config defines the MiniSlider demo preferences and helpers for
// loading or saving them to disk. Slider values themselves are never stored.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edward-ap/minislider/internal/slider"
)

const (
	// AppID is the stable application identifier used by the GUI framework.
	AppID = "minislider"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "MiniSlider"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	DefaultWidth  = 640
	DefaultHeight = 240
	// MinWindowWidth leaves room for the progress track next to the volume column.
	MinWindowWidth = 420
	// MinWindowHeight keeps the vertical volume slider usable.
	MinWindowHeight = 200

	// DefaultVolume is the uncontrolled volume slider's starting value.
	DefaultVolume = 70
	// DefaultProgressStep is one second on the progress slider.
	DefaultProgressStep = 1
	// DefaultProgressKeyStep moves five seconds per arrow press.
	DefaultProgressKeyStep = 5
	DefaultVolumeStep      = 1
	DefaultHandleScale     = 1
	MaxHandleScale         = 3
	// DefaultEQPreset names the equalizer preset applied on first start.
	DefaultEQPreset = "Flat"
)

// SliderPrefs tunes one slider in the demo.
type SliderPrefs struct {
	Step      float64 `json:"step"`
	KeyStep   float64 `json:"keyStep,omitempty"`
	Alignment string  `json:"alignment,omitempty"`
}

// Config aggregates every user-facing preference persisted between sessions.
type Config struct {
	MediaURL      string      `json:"mediaUrl"`
	WindowW       int         `json:"windowW"`
	WindowH       int         `json:"windowH"`
	Progress      SliderPrefs `json:"progress"`
	Volume        SliderPrefs `json:"volume"`
	HandleScale   float32     `json:"handleScale"`
	ShowValueText bool        `json:"showValueText"`
	EQPreset      string      `json:"eqPreset"`
	ShowEQ        bool        `json:"showEq"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from disk. A missing file yields (and tries to
// write) the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := newDefaultConfig()
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

func newDefaultConfig() *Config {
	cfg := &Config{ShowValueText: true}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes values after a load so the UI always
// receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	c.MediaURL = strings.TrimSpace(c.MediaURL)
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH == 0 {
		c.WindowH = DefaultHeight
	}
	if c.WindowH < MinWindowHeight {
		c.WindowH = MinWindowHeight
	}
	c.Progress.normalize(DefaultProgressStep, DefaultProgressKeyStep)
	c.Volume.normalize(DefaultVolumeStep, 0)
	if c.HandleScale <= 0 {
		c.HandleScale = DefaultHandleScale
	}
	if c.HandleScale > MaxHandleScale {
		c.HandleScale = MaxHandleScale
	}
	c.EQPreset = strings.TrimSpace(c.EQPreset)
	if c.EQPreset == "" {
		c.EQPreset = DefaultEQPreset
	}
}

func (p *SliderPrefs) normalize(step, keyStep float64) {
	if p.Step <= 0 {
		p.Step = step
	}
	if p.KeyStep < 0 {
		p.KeyStep = 0
	}
	if p.KeyStep == 0 {
		p.KeyStep = keyStep
	}
	if _, err := slider.ParseHandleAlignment(p.Alignment); err != nil {
		p.Alignment = ""
	}
}

// Apply copies the preferences onto slider options.
func (p SliderPrefs) Apply(opts *slider.Options) error {
	a, err := slider.ParseHandleAlignment(p.Alignment)
	if err != nil {
		return err
	}
	opts.Step = p.Step
	opts.KeyStep = p.KeyStep
	opts.HandleAlignment = a
	return nil
}

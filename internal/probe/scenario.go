// Package probe replays scripted input against a slider controller with no
// rendering attached. Scenarios are YAML files; each step is one input
// event or one expectation.
package probe

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edward-ap/minislider/internal/slider"
)

// ErrBadScenario is returned for scenario files that parse but make no
// sense.
var ErrBadScenario = errors.New("invalid scenario")

// Scenario is one scripted session.
type Scenario struct {
	Name   string     `yaml:"name"`
	Slider SliderSpec `yaml:"slider"`
	Track  RectSpec   `yaml:"track"`
	Handle SizeSpec   `yaml:"handle"`
	Steps  []Step     `yaml:"steps"`
}

// SliderSpec mirrors slider.Options. A set Value makes the slider
// controlled; Echo then feeds every change back as the owner would.
type SliderSpec struct {
	Min          float64  `yaml:"min"`
	Max          float64  `yaml:"max"`
	Step         float64  `yaml:"step"`
	KeyStep      float64  `yaml:"key_step"`
	Orientation  string   `yaml:"orientation"`
	Alignment    string   `yaml:"alignment"`
	Value        *float64 `yaml:"value"`
	DefaultValue float64  `yaml:"default_value"`
	Echo         bool     `yaml:"echo"`
	Disabled     bool     `yaml:"disabled"`
	Name         string   `yaml:"name"`
}

type RectSpec struct {
	Left   float64 `yaml:"left"`
	Width  float64 `yaml:"width"`
	Bottom float64 `yaml:"bottom"`
	Height float64 `yaml:"height"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Step holds exactly one action.
type Step struct {
	PointerDown *PointSpec `yaml:"pointer_down"`
	PointerMove *PointSpec `yaml:"pointer_move"`
	PointerUp   *PointSpec `yaml:"pointer_up"`
	Key         string     `yaml:"key"`
	Focus       *bool      `yaml:"focus"`
	SetValue    *float64   `yaml:"set_value"`
	Disable     *bool      `yaml:"disable"`
	Measure     *SizeSpec  `yaml:"measure"`
	Track       *RectSpec  `yaml:"track"`
	Unmount     bool       `yaml:"unmount"`
	Expect      *Expect    `yaml:"expect"`
}

// Expect checks controller state after the preceding steps. Unset fields
// are not checked.
type Expect struct {
	Value          *float64 `yaml:"value"`
	Dragging       *bool    `yaml:"dragging"`
	Focused        *bool    `yaml:"focused"`
	HandlePosition string   `yaml:"handle_position"`
	ValueText      string   `yaml:"value_text"`
	Changes        *int     `yaml:"changes"`
}

func (s Step) kind() string {
	var kinds []string
	if s.PointerDown != nil {
		kinds = append(kinds, "pointer_down")
	}
	if s.PointerMove != nil {
		kinds = append(kinds, "pointer_move")
	}
	if s.PointerUp != nil {
		kinds = append(kinds, "pointer_up")
	}
	if s.Key != "" {
		kinds = append(kinds, "key")
	}
	if s.Focus != nil {
		kinds = append(kinds, "focus")
	}
	if s.SetValue != nil {
		kinds = append(kinds, "set_value")
	}
	if s.Disable != nil {
		kinds = append(kinds, "disable")
	}
	if s.Measure != nil {
		kinds = append(kinds, "measure")
	}
	if s.Track != nil {
		kinds = append(kinds, "track")
	}
	if s.Unmount {
		kinds = append(kinds, "unmount")
	}
	if s.Expect != nil {
		kinds = append(kinds, "expect")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario parse error: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario read error: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func (sc *Scenario) validate() error {
	if _, err := slider.ParseOrientation(sc.Slider.Orientation); err != nil {
		return fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	if _, err := slider.ParseHandleAlignment(sc.Slider.Alignment); err != nil {
		return fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	for i, st := range sc.Steps {
		if st.kind() == "" {
			return fmt.Errorf("%w: step %d must hold exactly one action", ErrBadScenario, i+1)
		}
	}
	return nil
}

// Options converts the slider section to controller options.
func (s SliderSpec) Options() (slider.Options, error) {
	o, err := slider.ParseOrientation(s.Orientation)
	if err != nil {
		return slider.Options{}, err
	}
	a, err := slider.ParseHandleAlignment(s.Alignment)
	if err != nil {
		return slider.Options{}, err
	}
	opts := slider.Options{
		Min:             s.Min,
		Max:             s.Max,
		Step:            s.Step,
		KeyStep:         s.KeyStep,
		Orientation:     o,
		HandleAlignment: a,
		DefaultValue:    s.DefaultValue,
		Disabled:        s.Disabled,
		Name:            s.Name,
	}
	if s.Value != nil {
		v := *s.Value
		opts.Value = &v
	}
	return opts, nil
}

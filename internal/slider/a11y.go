package slider

// Accessibility is the attribute set a renderer exposes on the handle.
type Accessibility struct {
	Role        string
	ValueNow    float64
	ValueMin    float64
	ValueMax    float64
	ValueText   string
	Orientation Orientation
	Disabled    bool
	Label       string
	LabelledBy  string
	// Focusable is false while disabled; the handle must not take a
	// focusable role then.
	Focusable bool
}

// Accessibility describes the handle for assistive technology.
func (c *Controller) Accessibility() Accessibility {
	return Accessibility{
		Role:        "slider",
		ValueNow:    c.value,
		ValueMin:    c.domain.Min,
		ValueMax:    c.domain.Max,
		ValueText:   c.valueText(c.value),
		Orientation: c.opts.Orientation,
		Disabled:    c.disabled,
		Label:       c.opts.Label,
		LabelledBy:  c.opts.LabelledBy,
		Focusable:   !c.disabled,
	}
}

// Component names used in state attributes.
const (
	ComponentSlider         = "slider"
	ComponentTrack          = "slider-track"
	ComponentTrackHighlight = "slider-track-highlight"
	ComponentHandle         = "slider-handle"
	ComponentMarker         = "slider-marker"
)

const attrPrefix = "data-minislider-"

// DataAttributes returns the state attributes for one of the slider's
// components, for renderers that style by attribute.
func (c *Controller) DataAttributes(component string, highlight bool) map[string]string {
	base := attrPrefix + component
	attrs := map[string]string{
		base:                  "",
		base + "-orientation": c.opts.Orientation.String(),
	}
	if c.disabled {
		attrs[base+"-disabled"] = ""
	}
	if highlight {
		attrs[base+"-highlight"] = c.opts.Orientation.String()
	}
	return attrs
}

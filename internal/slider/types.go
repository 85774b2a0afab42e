package slider

import "fmt"

// Orientation selects the pointer axis and the anchor edge of the track.
type Orientation int

const (
	// Horizontal anchors values at the left edge; X grows the value.
	Horizontal Orientation = iota
	// Vertical anchors values at the bottom edge; moving up grows the value.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts "horizontal" or "vertical" (empty means horizontal).
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}

// HandleAlignment controls how the handle sits over the value mark. It never
// affects the value itself.
type HandleAlignment int

const (
	// AlignCenter centers the handle on the value mark.
	AlignCenter HandleAlignment = iota
	// AlignContain keeps the handle inside the track at both extremes.
	AlignContain
)

func (a HandleAlignment) String() string {
	if a == AlignContain {
		return "contain"
	}
	return "center"
}

// ParseHandleAlignment accepts "center" or "contain" (empty means center).
func ParseHandleAlignment(s string) (HandleAlignment, error) {
	switch s {
	case "", "center":
		return AlignCenter, nil
	case "contain":
		return AlignContain, nil
	}
	return AlignCenter, fmt.Errorf("unknown handle alignment %q", s)
}

// Mode records who owns the value. It is decided once by New.
type Mode int

const (
	// Uncontrolled controllers own and mutate their value.
	Uncontrolled Mode = iota
	// Controlled controllers only propose values; the caller feeds them back.
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Interaction is the pointer side of the state machine.
type Interaction int

const (
	Idle Interaction = iota
	PointerDown
	Dragging
)

func (i Interaction) String() string {
	switch i {
	case PointerDown:
		return "pointer-down"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// Domain bounds and quantizes the value.
type Domain struct {
	Min  float64
	Max  float64
	Step float64
}

// Span is Max-Min.
func (d Domain) Span() float64 { return d.Max - d.Min }

// Degenerate reports a zero-width domain.
func (d Domain) Degenerate() bool { return d.Max == d.Min }

// Normalize clamps v, snaps it to Step counted from Min and clamps again.
// The bounds themselves are always returned exactly.
func (d Domain) Normalize(v float64) float64 {
	if v >= d.Max {
		return d.Max
	}
	if v <= d.Min {
		return d.Min
	}
	return Clamp(Snap(v, d.Min, d.Step), d.Min, d.Max)
}

// Rect is the track's bounding box in the same coordinate space as pointer
// events. Bottom is Top+Height.
type Rect struct {
	Left   float64
	Width  float64
	Bottom float64
	Height float64
}

// Point is a pointer coordinate.
type Point struct {
	X float64
	Y float64
}

// Size is a rendered element size.
type Size struct {
	Width  float64
	Height float64
}

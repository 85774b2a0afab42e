package slider

import (
	"fmt"
	"math"
	"strconv"
)

// Edge names the side of the track a value is measured from.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeBottom Edge = "bottom"
)

func edgeFor(o Orientation) Edge {
	if o == Vertical {
		return EdgeBottom
	}
	return EdgeLeft
}

// Offset is the handle position along the track.
type Offset struct {
	Percent   float64
	Size      float64
	Alignment HandleAlignment
}

// Expr renders the offset as a CSS calc expression.
func (o Offset) Expr() string {
	if o.Alignment == AlignContain {
		return fmt.Sprintf("calc(%s%% - %spx * %s)", num(o.Percent), num(o.Size), num(o.Percent*0.01))
	}
	return fmt.Sprintf("calc(%s%% - %spx / 2)", num(o.Percent), num(o.Size))
}

// Resolve returns the handle's offset in pixels from the anchor edge of a
// track of the given length.
func (o Offset) Resolve(trackLength float64) float64 {
	base := trackLength * o.Percent / 100
	if o.Alignment == AlignContain {
		return base - o.Size*o.Percent/100
	}
	return base - o.Size/2
}

// Highlight is the filled part of the track: it starts at Edge and covers
// Extent percent along the track and Cross percent across it.
type Highlight struct {
	Edge   Edge
	Extent float64
	Cross  float64
}

// Size returns the filled length in pixels for a track of the given length.
func (h Highlight) Size(trackLength float64) float64 {
	return trackLength * h.Extent / 100
}

// Presentation is the state a renderer draws. It is derived on demand and
// never stored.
type Presentation struct {
	Value       float64
	Min         float64
	Max         float64
	Percent     float64
	Orientation Orientation
	Handle      Offset
	Highlight   Highlight
	ValueText   string
	Focused     bool
	Dragging    bool
	Disabled    bool
}

// Derive computes presentation state from its inputs alone.
func Derive(value float64, d Domain, o Orientation, a HandleAlignment, handleSize float64, valueText string) Presentation {
	pct := safePercent(ValueToPercent(value, d.Min, d.Max))
	return Presentation{
		Value:       value,
		Min:         d.Min,
		Max:         d.Max,
		Percent:     pct,
		Orientation: o,
		Handle:      Offset{Percent: pct, Size: handleSize, Alignment: a},
		Highlight:   Highlight{Edge: edgeFor(o), Extent: pct, Cross: 100},
		ValueText:   valueText,
	}
}

// Presentation derives the controller's current presentation state.
func (c *Controller) Presentation() Presentation {
	p := Derive(c.value, c.domain, c.opts.Orientation, c.opts.HandleAlignment, c.handleExtent(), c.valueText(c.value))
	p.Focused = c.focused
	p.Dragging = c.interaction != Idle
	p.Disabled = c.disabled
	return p
}

func (c *Controller) handleExtent() float64 {
	if c.opts.Orientation == Vertical {
		return c.handleSize.Height
	}
	return c.handleSize.Width
}

func (c *Controller) offsetFor(v float64) Offset {
	pct := safePercent(ValueToPercent(v, c.domain.Min, c.domain.Max))
	return Offset{Percent: pct, Size: c.handleExtent(), Alignment: c.opts.HandleAlignment}
}

func (c *Controller) valueText(v float64) string {
	switch {
	case c.opts.ValueText != nil:
		return c.opts.ValueText(v)
	case c.opts.AriaValueText != "":
		return c.opts.AriaValueText
	}
	return num(v)
}

// safePercent keeps non-finite results of a zero-width domain away from
// renderers.
func safePercent(p float64) float64 {
	switch {
	case math.IsNaN(p), math.IsInf(p, -1):
		return 0
	case math.IsInf(p, 1):
		return 100
	}
	return Clamp(p, 0, 100)
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

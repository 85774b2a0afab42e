package slider

// MarkerState positions a tick mark at a fixed value on the track.
type MarkerState struct {
	Value     float64
	Percent   float64
	Edge      Edge
	Highlight bool
}

// Marker places a marker for value. It is highlighted once the current
// value reaches it. ok is false outside the domain or for a zero-width one.
func (c *Controller) Marker(value float64) (MarkerState, bool) {
	d := c.domain
	if d.Degenerate() || isBad(value) || value < d.Min || value > d.Max {
		return MarkerState{}, false
	}
	return MarkerState{
		Value:     value,
		Percent:   ValueToPercent(value, d.Min, d.Max),
		Edge:      edgeFor(c.opts.Orientation),
		Highlight: c.value >= value,
	}, true
}

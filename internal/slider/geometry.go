package slider

// PointerPercent is the pointer's position along the track's active axis on
// the 0..100 scale, unclamped. Vertical tracks grow from the bottom. It
// returns false when the track has no usable length on that axis.
func PointerPercent(p Point, track Rect, o Orientation) (float64, bool) {
	var diff, length float64
	if o == Vertical {
		diff, length = track.Bottom-p.Y, track.Height
	} else {
		diff, length = p.X-track.Left, track.Width
	}
	if length <= 0 || isBad(length) {
		return 0, false
	}
	return diff / length * 100, true
}

// ResolvePointer turns a pointer coordinate into a stepped, clamped value.
// It returns false when the track is not measured yet (missing, zero length
// on the active axis) or the domain has no width; callers keep the previous
// value in that case.
func ResolvePointer(p Point, track Rect, ok bool, o Orientation, d Domain) (float64, bool) {
	if !ok || d.Degenerate() {
		return 0, false
	}
	pct, ok := PointerPercent(p, track, o)
	if !ok {
		return 0, false
	}
	v := PercentToValue(pct, d.Min, d.Max)
	if isBad(v) {
		return 0, false
	}
	return d.Normalize(v), true
}

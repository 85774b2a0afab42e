package slider

// Key names understood by KeyDown.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyPageUp     Key = "PageUp"
	KeyPageDown   Key = "PageDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
)

// keyTarget computes the value a key asks for. Home and End are exact; delta
// keys are snapped to keyStep from min and clamped. ok is false for keys
// the slider does not handle.
func keyTarget(k Key, current, keyStep float64, d Domain) (float64, bool) {
	var v float64
	tenSteps := d.Span() / 10
	switch k {
	case KeyArrowLeft, KeyArrowDown:
		v = current - keyStep
	case KeyArrowRight, KeyArrowUp:
		v = current + keyStep
	case KeyPageDown:
		v = current - tenSteps
	case KeyPageUp:
		v = current + tenSteps
	case KeyHome:
		return d.Min, true
	case KeyEnd:
		return d.Max, true
	default:
		return 0, false
	}
	return Clamp(Snap(v, d.Min, keyStep), d.Min, d.Max), true
}

package slider

import (
	"math"
	"strconv"
	"strings"
)

// ValueToPercent maps value onto the 0..100 scale of [min, max]. A zero-width
// domain yields NaN or ±Inf; callers that render must guard.
func ValueToPercent(value, min, max float64) float64 {
	return (value - min) * 100 / (max - min)
}

// PercentToValue is the inverse of ValueToPercent; percent is on the 0..100
// scale.
func PercentToValue(percent, min, max float64) float64 {
	return (max-min)*percent/100 + min
}

// StepPrecision counts the decimal places of step's shortest decimal form.
func StepPrecision(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// MakeValuePrecise rounds value to the decimal precision implied by step, so
// that a step of 0.1 never produces 1.2000000000000002.
func MakeValuePrecise(value, step float64) float64 {
	return toFixed(value, StepPrecision(step))
}

// RoundValueToStep rounds value to the nearest multiple of step (ties toward
// +Inf) and re-quantizes it to step's precision.
func RoundValueToStep(value, step float64) float64 {
	if step <= 0 || isBad(step) {
		return value
	}
	return MakeValuePrecise(math.Floor(value/step+0.5)*step, step)
}

// Snap rounds value to a multiple of step counted from origin.
func Snap(value, origin, step float64) float64 {
	if step <= 0 || isBad(step) {
		return value
	}
	prec := StepPrecision(step)
	if p := StepPrecision(origin); p > prec {
		prec = p
	}
	return toFixed(origin+RoundValueToStep(value-origin, step), prec)
}

// Clamp constrains value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

func toFixed(value float64, prec int) float64 {
	if isBad(value) {
		return value
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', prec, 64), 64)
	if err != nil {
		return value
	}
	return v
}

func isBad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

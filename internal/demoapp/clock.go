package demoapp

import (
	"fmt"
	"math"
)

// formatClock renders whole seconds as m:ss, or h:mm:ss past an hour.
func formatClock(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	s := int(math.Floor(seconds))
	h, m := s/3600, (s/60)%60
	s %= 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

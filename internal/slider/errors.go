package slider

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDomain is returned by New for an unusable min/max/step.
	ErrInvalidDomain = errors.New("invalid slider domain")
	// ErrUncontrolledToControlled reports an external value fed to a
	// controller that owns its own value.
	ErrUncontrolledToControlled = errors.New("slider is changing from uncontrolled to controlled")
	// ErrControlledToUncontrolled reports an external owner dropping its
	// value after construction.
	ErrControlledToUncontrolled = errors.New("slider is changing from controlled to uncontrolled")
)

// UsageError is a non-fatal diagnostic. The controller keeps running under
// its original mode after reporting one.
type UsageError struct {
	Kind    error
	Message string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *UsageError) Is(target error) bool { return target == e.Kind }

func (e *UsageError) Unwrap() error { return e.Kind }

const modeSwitchAdvice = "a slider should not switch between controlled and uncontrolled; decide on one for the lifetime of the controller"

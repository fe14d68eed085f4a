package engine

import (
	"errors"
	"fmt"
)

// ErrNoQuestions is returned by Start when the engine was built from an
// empty question list. Callers surface this as "no usable questions",
// not as a crash.
var ErrNoQuestions = errors.New("no questions to start a session with")

// InvalidTransitionError reports an operation called in a phase or
// sub-mode that does not permit it. These indicate caller bugs, so the
// engine fails fast instead of guessing.
type InvalidTransitionError struct {
	// Op is the operation that was attempted.
	Op string

	// Phase is the engine phase at the time of the call.
	Phase Phase

	// Reason explains which contract was violated.
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s in phase %s: %s", e.Op, e.Phase, e.Reason)
}

func invalidTransition(op string, phase Phase, reason string) error {
	return &InvalidTransitionError{Op: op, Phase: phase, Reason: reason}
}

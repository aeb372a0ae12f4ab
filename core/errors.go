package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// GateError reports an invariant violation inside the Network. Every
// condition the engine can detect is a programmer error rather than a
// runtime condition, so GateError is raised via panic rather than returned.
type GateError struct {
	// Op identifies the Network method that detected the violation,
	// e.g. "Network.AddLink".
	Op string

	// Index is the offending gate index, or -1 if the error is not about
	// a specific gate.
	Index int

	Message string
}

func (e *GateError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("gatesym: %s: gate %d: %s", e.Op, e.Index, e.Message)
	}
	return fmt.Sprintf("gatesym: %s: %s", e.Op, e.Message)
}

// newGateError builds a GateError wrapped with errors.WithStack so a panic
// carries a stack trace back to the offending call site.
func newGateError(op string, index int, message string) error {
	return errors.WithStack(&GateError{Op: op, Index: index, Message: message})
}

// fail panics with a GateError not tied to a specific gate index.
func fail(op, message string) {
	panic(newGateError(op, -1, message))
}

// failf panics with a GateError tied to gate index.
func failf(op string, index int, format string, args ...interface{}) {
	panic(newGateError(op, index, fmt.Sprintf(format, args...)))
}

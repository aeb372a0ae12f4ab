package expr

import (
	"fmt"

	"github.com/pkg/errors"
)

// SyntaxError reports a lexical or parse failure in an expression string,
// the expr-package counterpart to core.GateError: returned, not panicked,
// since a malformed expression is an ordinary user-input condition rather
// than a programmer error in the circuit being built.
type SyntaxError struct {
	Op       string
	Position int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: %s: position %d: %s", e.Op, e.Position, e.Message)
}

func newSyntaxError(op string, position int, message string) error {
	return errors.WithStack(&SyntaxError{Op: op, Position: position, Message: message})
}

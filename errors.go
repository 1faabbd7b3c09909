package geom

import (
	"errors"
	"fmt"
)

// ErrTooSmallInput is returned by operations that need a direction vector
// when their input is shorter than the length tolerance.
var ErrTooSmallInput = errors.New("geom: input too short for this operation")

// TooSmallError reports which operation rejected which lines.
// It unwraps to ErrTooSmallInput.
type TooSmallError struct {
	Op    string
	Lines []Line
}

func (e *TooSmallError) Error() string {
	if len(e.Lines) == 0 {
		return fmt.Sprintf("geom: %s: input too short for this operation", e.Op)
	}
	return fmt.Sprintf("geom: %s: input too short for this operation: %v", e.Op, e.Lines)
}

func (e *TooSmallError) Unwrap() error {
	return ErrTooSmallInput
}

func newTooSmallError(op string, lines ...Line) error {
	debugRejected("geom: rejected short input", op, "lines", len(lines))
	return &TooSmallError{Op: op, Lines: lines}
}

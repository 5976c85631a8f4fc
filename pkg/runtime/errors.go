package runtime

import "fmt"

// RuntimeError is raised while evaluating a statement. Line is the 0-based
// source line of the token that triggered it.
type RuntimeError struct {
	Message string
	Line    uint64
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s [line: %d]", e.Message, e.Line)
}

// NewRuntimeError builds a RuntimeError at line.
func NewRuntimeError(line uint64, format string, args ...any) *RuntimeError {
	if len(args) == 0 {
		return &RuntimeError{Message: format, Line: line}
	}
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}

package parser

import (
	"fmt"

	"github.com/snewcomer/tree-walk-1/pkg/token"
)

// ErrorKind classifies parse errors.
type ErrorKind int

const (
	// UnexpectedToken covers a mismatched terminal: a missing ';', ')' or
	// '}', a missing identifier or a missing expression.
	UnexpectedToken ErrorKind = iota
	// InvalidAssignmentTarget is raised at the '=' whose left side is not a
	// bare variable.
	InvalidAssignmentTarget
	// UnexpectedEnd means the token stream ran out mid-production.
	UnexpectedEnd
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case InvalidAssignmentTarget:
		return "InvalidAssignmentTarget"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	default:
		return "ParseError"
	}
}

// ParseError describes why a statement could not be parsed.
type ParseError struct {
	Kind    ErrorKind
	Token   token.Token
	Message string
	Line    uint64
}

func (e *ParseError) Error() string {
	if e.Kind == UnexpectedEnd {
		return fmt.Sprintf("[line %d] at end %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] at '%s' %s", e.Line, e.Token, e.Message)
}

func newTokenError(kind ErrorKind, tok token.Token, message string) *ParseError {
	return &ParseError{Kind: kind, Token: tok, Message: message, Line: tok.Line}
}

package scanner

import "fmt"

// ErrorKind classifies scan errors.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	UnterminatedString
)

// ScanError reports a character the scanner could not turn into a token.
// Scanning continues after it.
type ScanError struct {
	Kind ErrorKind
	Char rune
	Line uint64
}

func (e *ScanError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("Unexpected character %c on line %d", e.Char, e.Line)
	case UnterminatedString:
		return fmt.Sprintf("Unterminated string on line %d", e.Line)
	default:
		return fmt.Sprintf("scan error on line %d", e.Line)
	}
}

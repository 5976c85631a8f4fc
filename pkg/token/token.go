package token

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the lexeme category of a token.
type Kind int

const (
	// Single-character tokens.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	Eof
)

var kindNames = [...]string{
	LeftParen:    "LEFT_PAREN",
	RightParen:   "RIGHT_PAREN",
	LeftBrace:    "LEFT_BRACE",
	RightBrace:   "RIGHT_BRACE",
	Comma:        "COMMA",
	Dot:          "DOT",
	Minus:        "MINUS",
	Plus:         "PLUS",
	Semicolon:    "SEMICOLON",
	Slash:        "SLASH",
	Star:         "STAR",
	Bang:         "BANG",
	BangEqual:    "BANG_EQUAL",
	Equal:        "EQUAL",
	EqualEqual:   "EQUAL_EQUAL",
	Greater:      "GREATER",
	GreaterEqual: "GREATER_EQUAL",
	Less:         "LESS",
	LessEqual:    "LESS_EQUAL",
	Identifier:   "IDENTIFIER",
	String:       "STRING",
	Number:       "NUMBER",
	And:          "AND",
	Class:        "CLASS",
	Else:         "ELSE",
	False:        "FALSE",
	Fun:          "FUN",
	For:          "FOR",
	If:           "IF",
	Nil:          "NIL",
	Or:           "OR",
	Print:        "PRINT",
	Return:       "RETURN",
	Super:        "SUPER",
	This:         "THIS",
	True:         "TRUE",
	Var:          "VAR",
	While:        "WHILE",
	Eof:          "EOF",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var fixedText = map[Kind]string{
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	Fun:          "fun",
	For:          "for",
	If:           "if",
	Nil:          "nil",
	Or:           "or",
	Print:        "print",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	Var:          "var",
	While:        "while",
	Eof:          "<EOF>",
}

var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupKeyword reports the keyword kind for text, if it is reserved.
func LookupKeyword(text string) (Kind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}

// Token is an immutable lexeme with the 0-based source line it was read on.
// Text holds the identifier name or string content; Number holds the value of
// a number literal.
type Token struct {
	Kind   Kind
	Text   string
	Number float64
	Line   uint64
}

// New builds a token that carries no payload.
func New(kind Kind, line uint64) Token {
	return Token{Kind: kind, Line: line}
}

// NewIdentifier builds an identifier token.
func NewIdentifier(name string, line uint64) Token {
	return Token{Kind: Identifier, Text: name, Line: line}
}

// NewString builds a string literal token holding the unquoted content.
func NewString(content string, line uint64) Token {
	return Token{Kind: String, Text: content, Line: line}
}

// NewNumber builds a number literal token.
func NewNumber(value float64, line uint64) Token {
	return Token{Kind: Number, Number: value, Line: line}
}

// Name returns the identifier carried by the token. It panics for any other
// kind: building a variable from a non-identifier is a programming error.
func (t Token) Name() string {
	if t.Kind != Identifier {
		panic(fmt.Sprintf("token: %s token used as an identifier", t.Kind))
	}
	return t.Text
}

// String renders the token the way it appears in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case Identifier:
		return t.Text
	case String:
		return `"` + t.Text + `"`
	case Number:
		return FormatNumber(t.Number)
	}
	if text, ok := fixedText[t.Kind]; ok {
		return text
	}
	return t.Kind.String()
}

// FormatNumber renders a float the way values are displayed: integral values
// without a fraction, everything else in shortest round-trip form.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

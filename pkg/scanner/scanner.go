package scanner

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/snewcomer/tree-walk-1/pkg/token"
)

// Scanner turns a character stream into tokens on demand.
type Scanner struct {
	src  *runeSource
	line uint64
	done bool
}

// New creates a scanner reading from r.
func New(r io.RuneReader) *Scanner {
	return &Scanner{src: newRuneSource(r)}
}

// NewString creates a scanner over source text.
func NewString(source string) *Scanner {
	return New(strings.NewReader(source))
}

// Next returns the next token. A *ScanError does not end the stream; keep
// calling Next. Once the Eof token has been returned, Next returns io.EOF.
func (s *Scanner) Next() (token.Token, error) {
	if s.done {
		return token.Token{}, io.EOF
	}
	for {
		c, ok := s.src.next()
		if !ok {
			if err := s.src.takeErr(); err != nil {
				return token.Token{}, fmt.Errorf("scanner: read source: %w", err)
			}
			s.done = true
			return s.emit(token.Eof), nil
		}
		switch c {
		case ' ', '\t', '\r':
			continue
		case '\n':
			s.line++
			continue
		case '(':
			return s.emit(token.LeftParen), nil
		case ')':
			return s.emit(token.RightParen), nil
		case '{':
			return s.emit(token.LeftBrace), nil
		case '}':
			return s.emit(token.RightBrace), nil
		case ',':
			return s.emit(token.Comma), nil
		case '.':
			return s.emit(token.Dot), nil
		case '-':
			return s.emit(token.Minus), nil
		case '+':
			return s.emit(token.Plus), nil
		case ';':
			return s.emit(token.Semicolon), nil
		case '*':
			return s.emit(token.Star), nil
		case '!':
			return s.emit(s.either('=', token.BangEqual, token.Bang)), nil
		case '=':
			return s.emit(s.either('=', token.EqualEqual, token.Equal)), nil
		case '<':
			return s.emit(s.either('=', token.LessEqual, token.Less)), nil
		case '>':
			return s.emit(s.either('=', token.GreaterEqual, token.Greater)), nil
		case '/':
			if s.match('/') {
				s.skipComment()
				continue
			}
			return s.emit(token.Slash), nil
		case '"':
			return s.scanString()
		}
		switch {
		case isDigit(c):
			return s.scanNumber(c), nil
		case isAlpha(c):
			return s.scanIdentifier(c), nil
		}
		return token.Token{}, &ScanError{Kind: UnexpectedCharacter, Char: c, Line: s.line}
	}
}

func (s *Scanner) emit(kind token.Kind) token.Token {
	return token.New(kind, s.line)
}

func (s *Scanner) match(expected rune) bool {
	if c, ok := s.src.peek(); ok && c == expected {
		s.src.next()
		return true
	}
	return false
}

func (s *Scanner) either(expected rune, matched, otherwise token.Kind) token.Kind {
	if s.match(expected) {
		return matched
	}
	return otherwise
}

// skipComment consumes up to, but not including, the next newline.
func (s *Scanner) skipComment() {
	for {
		c, ok := s.src.peek()
		if !ok || c == '\n' {
			return
		}
		s.src.next()
	}
}

func (s *Scanner) scanString() (token.Token, error) {
	var sb strings.Builder
	for {
		c, ok := s.src.next()
		if !ok {
			return token.Token{}, &ScanError{Kind: UnterminatedString, Line: s.line}
		}
		if c == '"' {
			return token.NewString(sb.String(), s.line), nil
		}
		if c == '\n' {
			s.line++
		}
		sb.WriteRune(c)
	}
}

func (s *Scanner) scanNumber(first rune) token.Token {
	var sb strings.Builder
	sb.WriteRune(first)
	s.collect(&sb, isDigit)
	if c, ok := s.src.peek(); ok && c == '.' {
		if next, ok := s.src.peekNext(); ok && isDigit(next) {
			s.src.next()
			sb.WriteRune('.')
			s.collect(&sb, isDigit)
		}
	}
	// The text is digits with an optional fraction, so it always parses;
	// overly long literals saturate to +Inf.
	value, _ := strconv.ParseFloat(sb.String(), 64)
	return token.NewNumber(value, s.line)
}

func (s *Scanner) scanIdentifier(first rune) token.Token {
	var sb strings.Builder
	sb.WriteRune(first)
	s.collect(&sb, isAlphaNumeric)
	text := sb.String()
	if kind, ok := token.LookupKeyword(text); ok {
		return s.emit(kind)
	}
	return token.NewIdentifier(text, s.line)
}

func (s *Scanner) collect(sb *strings.Builder, pred func(rune) bool) {
	for {
		c, ok := s.src.peek()
		if !ok || !pred(c) {
			return
		}
		s.src.next()
		sb.WriteRune(c)
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}

// Tokenize scans source to completion. The returned tokens always end with
// Eof; scan errors are joined in source order.
func Tokenize(source string) ([]token.Token, error) {
	s := NewString(source)
	var (
		tokens []token.Token
		errs   []error
	)
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, errors.Join(errs...)
}

package parser

import (
	"errors"
	"io"

	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/token"
)

// maxDepth bounds nesting of blocks, branches, groupings and unary chains.
const maxDepth = 1000

// Parser is a recursive-descent parser over a scanned token slice. Each call
// to Next yields one declaration.
type Parser struct {
	tokens  []token.Token
	current int
	depth   int
}

// New creates a parser over tokens, which should end with an Eof token.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Next parses the next declaration. It returns io.EOF once the Eof token is
// reached. After a *ParseError the parser skips to the next statement
// boundary, so callers may keep pulling.
func (p *Parser) Next() (ast.Statement, error) {
	if p.atEnd() {
		return nil, io.EOF
	}
	p.depth = 0
	stmt, err := p.declaration()
	if err != nil {
		p.synchronize()
		return nil, err
	}
	return stmt, nil
}

// ParseAll parses every declaration, stopping at the first error.
func ParseAll(tokens []token.Token) ([]ast.Statement, error) {
	p := New(tokens)
	var stmts []ast.Statement
	for {
		stmt, err := p.Next()
		if errors.Is(err, io.EOF) {
			return stmts, nil
		}
		if err != nil {
			return stmts, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) atEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Kind == token.Eof
}

// peek returns the current token; ok is false when the slice is exhausted.
func (p *Parser) peek() (token.Token, bool) {
	if p.current >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.current], true
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.current]
	if tok.Kind != token.Eof {
		p.current++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of kind or reports message at the current token.
func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	tok, ok := p.peek()
	if !ok {
		return token.Token{}, p.unexpectedEnd()
	}
	if tok.Kind != kind {
		return token.Token{}, newTokenError(UnexpectedToken, tok, message)
	}
	return p.advance(), nil
}

func (p *Parser) unexpectedEnd() *ParseError {
	var line uint64
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return &ParseError{Kind: UnexpectedEnd, Message: "Unexpected end of input.", Line: line}
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		tok, ok := p.peek()
		if !ok {
			return p.unexpectedEnd()
		}
		return newTokenError(UnexpectedToken, tok, "Too much nesting.")
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// synchronize discards tokens until a likely statement boundary, so a driver
// that keeps calling Next after a *ParseError resumes at the next statement.
// ParseAll never relies on it since it stops at the first error.
func (p *Parser) synchronize() {
	if p.atEnd() {
		return
	}
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.tokens[p.current].Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

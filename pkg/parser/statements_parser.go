package parser

import (
	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/token"
)

func (p *Parser) declaration() (ast.Statement, error) {
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Statement, error) {
	name, err := p.consume(token.Identifier, "Expected variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after variable declaration."); err != nil {
		return nil, err
	}
	return ast.NewVarStatement(name, initializer), nil
}

func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return p.block()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (ast.Statement, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after value."); err != nil {
		return nil, err
	}
	return ast.NewPrintStatement(value), nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after expression."); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

func (p *Parser) block() (ast.Statement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var stmts []ast.Statement
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RightBrace, "Expected '}' after block."); err != nil {
		return nil, err
	}
	return ast.NewBlockStatement(stmts), nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	condition, err := p.parenthesizedCondition("Expected '(' after 'if'.", "Expected ')' after if condition.")
	if err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(condition, thenBranch, elseBranch), nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	condition, err := p.parenthesizedCondition("Expected '(' after 'while'.", "Expected ')' after condition.")
	if err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(condition, body), nil
}

func (p *Parser) parenthesizedCondition(openMessage, closeMessage string) (ast.Expression, error) {
	if _, err := p.consume(token.LeftParen, openMessage); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, closeMessage); err != nil {
		return nil, err
	}
	return condition, nil
}

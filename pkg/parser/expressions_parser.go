package parser

import (
	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/runtime"
	"github.com/snewcomer/tree-walk-1/pkg/token"
)

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.check(token.Equal) {
		return expr, nil
	}
	equals := p.advance()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if variable, ok := expr.(*ast.Variable); ok {
		return ast.NewAssign(variable.Name, value), nil
	}
	return nil, newTokenError(InvalidAssignmentTarget, equals, "Invalid assignment target.")
}

func (p *Parser) or() (ast.Expression, error) {
	return p.logical(p.and, token.Or)
}

func (p *Parser) and() (ast.Expression, error) {
	return p.logical(p.equality, token.And)
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.binary(p.unary, token.Slash, token.Star)
}

// binary folds a left-associative chain of operands joined by operators. Each
// fold deepens the tree by one level and counts against maxDepth.
func (p *Parser) binary(operand func() (ast.Expression, error), operators ...token.Kind) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	folds := 0
	defer func() { p.depth -= folds }()
	for p.match(operators...) {
		op := p.previous()
		folds++
		if err := p.enter(); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) logical(operand func() (ast.Expression, error), operator token.Kind) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	folds := 0
	defer func() { p.depth -= folds }()
	for p.match(operator) {
		op := p.previous()
		folds++
		if err := p.enter(); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if !p.match(token.Bang, token.Minus) {
		return p.primary()
	}
	op := p.previous()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(op, operand), nil
}

func (p *Parser) primary() (ast.Expression, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.unexpectedEnd()
	}
	switch tok.Kind {
	case token.False:
		p.advance()
		return ast.NewLiteral(runtime.BoolValue{Val: false}, tok.Line), nil
	case token.True:
		p.advance()
		return ast.NewLiteral(runtime.BoolValue{Val: true}, tok.Line), nil
	case token.Nil:
		p.advance()
		return ast.NewLiteral(runtime.Nil, tok.Line), nil
	case token.Number:
		p.advance()
		return ast.NewLiteral(runtime.NumberValue{Val: tok.Number}, tok.Line), nil
	case token.String:
		p.advance()
		return ast.NewLiteral(runtime.StringValue{Val: tok.Text}, tok.Line), nil
	case token.Identifier:
		p.advance()
		return ast.NewVariable(tok), nil
	case token.LeftParen:
		p.advance()
		return p.grouping()
	}
	return nil, newTokenError(UnexpectedToken, tok, "Expected expression.")
}

func (p *Parser) grouping() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	inner, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expected ')' after expression."); err != nil {
		return nil, err
	}
	return ast.NewGrouping(inner), nil
}

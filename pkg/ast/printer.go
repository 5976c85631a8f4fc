package ast

import (
	"strings"

	"github.com/snewcomer/tree-walk-1/pkg/runtime"
)

// Printer renders nodes in a parenthesized prefix form, e.g.
// "(* (- 123) (group 45.67))". String literals are shown quoted.
type Printer struct{}

// Print renders a statement.
func Print(stmt Statement) string {
	return AcceptStatement[string](stmt, Printer{})
}

// PrintExpression renders an expression.
func PrintExpression(expr Expression) string {
	return AcceptExpression[string](expr, Printer{})
}

func (p Printer) parenthesize(name string, parts ...string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, part := range parts {
		sb.WriteByte(' ')
		sb.WriteString(part)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (p Printer) expr(e Expression) string {
	return AcceptExpression[string](e, p)
}

func (p Printer) VisitLiteral(n *Literal) string {
	if s, ok := n.Value.(runtime.StringValue); ok {
		return `"` + s.Val + `"`
	}
	if n.Value == nil {
		return runtime.Nil.String()
	}
	return n.Value.String()
}

func (p Printer) VisitGrouping(n *Grouping) string {
	return p.parenthesize("group", p.expr(n.Inner))
}

func (p Printer) VisitUnary(n *Unary) string {
	return p.parenthesize(n.Operator.String(), p.expr(n.Operand))
}

func (p Printer) VisitBinary(n *Binary) string {
	return p.parenthesize(n.Operator.String(), p.expr(n.Left), p.expr(n.Right))
}

func (p Printer) VisitLogical(n *Logical) string {
	return p.parenthesize(n.Operator.String(), p.expr(n.Left), p.expr(n.Right))
}

func (p Printer) VisitVariable(n *Variable) string {
	return n.Name.Name()
}

func (p Printer) VisitAssign(n *Assign) string {
	return p.parenthesize("=", n.Name.Name(), p.expr(n.Value))
}

func (p Printer) VisitExpressionStatement(n *ExpressionStatement) string {
	return p.parenthesize(";", p.expr(n.Expression))
}

func (p Printer) VisitPrintStatement(n *PrintStatement) string {
	return p.parenthesize("print", p.expr(n.Expression))
}

func (p Printer) VisitVarStatement(n *VarStatement) string {
	if n.Initializer == nil {
		return p.parenthesize("var", n.Name.Name())
	}
	return p.parenthesize("var", n.Name.Name(), "=", p.expr(n.Initializer))
}

func (p Printer) VisitBlockStatement(n *BlockStatement) string {
	parts := make([]string, len(n.Statements))
	for i, stmt := range n.Statements {
		parts[i] = AcceptStatement[string](stmt, p)
	}
	return p.parenthesize("block", parts...)
}

func (p Printer) VisitIfStatement(n *IfStatement) string {
	parts := []string{p.expr(n.Condition), AcceptStatement[string](n.Then, p)}
	if n.Else != nil {
		parts = append(parts, AcceptStatement[string](n.Else, p))
	}
	return p.parenthesize("if", parts...)
}

func (p Printer) VisitWhileStatement(n *WhileStatement) string {
	return p.parenthesize("while", p.expr(n.Condition), AcceptStatement[string](n.Body, p))
}

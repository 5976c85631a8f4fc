package ast

import "fmt"

// ExpressionVisitor is one traversal over expression nodes.
type ExpressionVisitor[R any] interface {
	VisitLiteral(*Literal) R
	VisitGrouping(*Grouping) R
	VisitUnary(*Unary) R
	VisitBinary(*Binary) R
	VisitLogical(*Logical) R
	VisitVariable(*Variable) R
	VisitAssign(*Assign) R
}

// StatementVisitor is one traversal over statement nodes.
type StatementVisitor[R any] interface {
	VisitExpressionStatement(*ExpressionStatement) R
	VisitPrintStatement(*PrintStatement) R
	VisitVarStatement(*VarStatement) R
	VisitBlockStatement(*BlockStatement) R
	VisitIfStatement(*IfStatement) R
	VisitWhileStatement(*WhileStatement) R
}

// AcceptExpression calls the one visitor method matching expr.
func AcceptExpression[R any](expr Expression, v ExpressionVisitor[R]) R {
	switch n := expr.(type) {
	case *Literal:
		return v.VisitLiteral(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Logical:
		return v.VisitLogical(n)
	case *Variable:
		return v.VisitVariable(n)
	case *Assign:
		return v.VisitAssign(n)
	default:
		panic(fmt.Sprintf("ast: unsupported expression %T", expr))
	}
}

// AcceptStatement calls the one visitor method matching stmt.
func AcceptStatement[R any](stmt Statement, v StatementVisitor[R]) R {
	switch n := stmt.(type) {
	case *ExpressionStatement:
		return v.VisitExpressionStatement(n)
	case *PrintStatement:
		return v.VisitPrintStatement(n)
	case *VarStatement:
		return v.VisitVarStatement(n)
	case *BlockStatement:
		return v.VisitBlockStatement(n)
	case *IfStatement:
		return v.VisitIfStatement(n)
	case *WhileStatement:
		return v.VisitWhileStatement(n)
	default:
		panic(fmt.Sprintf("ast: unsupported statement %T", stmt))
	}
}

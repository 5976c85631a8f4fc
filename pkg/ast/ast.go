package ast

import (
	"fmt"

	"github.com/snewcomer/tree-walk-1/pkg/runtime"
	"github.com/snewcomer/tree-walk-1/pkg/token"
)

type NodeType string

const (
	NodeLiteral             NodeType = "Literal"
	NodeGrouping            NodeType = "Grouping"
	NodeUnary               NodeType = "Unary"
	NodeBinary              NodeType = "Binary"
	NodeLogical             NodeType = "Logical"
	NodeVariable            NodeType = "Variable"
	NodeAssign              NodeType = "Assign"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodePrintStatement      NodeType = "PrintStatement"
	NodeVarStatement        NodeType = "VarStatement"
	NodeBlockStatement      NodeType = "BlockStatement"
	NodeIfStatement         NodeType = "IfStatement"
	NodeWhileStatement      NodeType = "WhileStatement"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

// Expression nodes report the source line of the token that anchors them.
type Expression interface {
	Node
	Line() uint64
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Expressions

type Literal struct {
	nodeImpl
	expressionMarker

	Value  runtime.Value
	LineNo uint64
}

func NewLiteral(value runtime.Value, line uint64) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Value: value, LineNo: line}
}

func (l *Literal) Line() uint64 { return l.LineNo }

type Grouping struct {
	nodeImpl
	expressionMarker

	Inner Expression
}

func NewGrouping(inner Expression) *Grouping {
	return &Grouping{nodeImpl: newNodeImpl(NodeGrouping), Inner: inner}
}

func (g *Grouping) Line() uint64 { return g.Inner.Line() }

type Unary struct {
	nodeImpl
	expressionMarker

	Operator token.Token
	Operand  Expression
}

func NewUnary(op token.Token, operand Expression) *Unary {
	return &Unary{nodeImpl: newNodeImpl(NodeUnary), Operator: op, Operand: operand}
}

func (u *Unary) Line() uint64 { return u.Operator.Line }

type Binary struct {
	nodeImpl
	expressionMarker

	Left     Expression
	Operator token.Token
	Right    Expression
}

func NewBinary(left Expression, op token.Token, right Expression) *Binary {
	return &Binary{nodeImpl: newNodeImpl(NodeBinary), Left: left, Operator: op, Right: right}
}

func (b *Binary) Line() uint64 { return b.Operator.Line }

// Logical is a short-circuiting "and" or "or".
type Logical struct {
	nodeImpl
	expressionMarker

	Left     Expression
	Operator token.Token
	Right    Expression
}

func NewLogical(left Expression, op token.Token, right Expression) *Logical {
	return &Logical{nodeImpl: newNodeImpl(NodeLogical), Left: left, Operator: op, Right: right}
}

func (l *Logical) Line() uint64 { return l.Operator.Line }

type Variable struct {
	nodeImpl
	expressionMarker

	Name token.Token
}

// NewVariable panics when name is not an identifier token.
func NewVariable(name token.Token) *Variable {
	if name.Kind != token.Identifier {
		panic(fmt.Sprintf("ast: variable built from %s token", name.Kind))
	}
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}

func (v *Variable) Line() uint64 { return v.Name.Line }

type Assign struct {
	nodeImpl
	expressionMarker

	Name  token.Token
	Value Expression
}

func NewAssign(name token.Token, value Expression) *Assign {
	return &Assign{nodeImpl: newNodeImpl(NodeAssign), Name: name, Value: value}
}

func (a *Assign) Line() uint64 { return a.Name.Line }

// Statements

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Expression Expression
}

func NewPrintStatement(expr Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Expression: expr}
}

// VarStatement declares Name; Initializer is nil when omitted.
type VarStatement struct {
	nodeImpl
	statementMarker

	Name        token.Token
	Initializer Expression
}

func NewVarStatement(name token.Token, initializer Expression) *VarStatement {
	return &VarStatement{nodeImpl: newNodeImpl(NodeVarStatement), Name: name, Initializer: initializer}
}

type BlockStatement struct {
	nodeImpl
	statementMarker

	Statements []Statement
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

// IfStatement has a nil Else when there is no else branch.
type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression
	Then      Statement
	Else      Statement
}

func NewIfStatement(condition Expression, then Statement, elseBranch Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: elseBranch}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition Expression
	Body      Statement
}

func NewWhileStatement(condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

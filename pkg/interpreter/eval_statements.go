package interpreter

import (
	"fmt"

	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		if _, err := i.evaluateExpression(n.Expression, env); err != nil {
			return nil, err
		}
		return runtime.Nil, nil
	case *ast.PrintStatement:
		return i.evaluatePrintStatement(n, env)
	case *ast.VarStatement:
		return i.evaluateVarStatement(n, env)
	case *ast.BlockStatement:
		return i.evaluateBlock(n, env)
	case *ast.IfStatement:
		return i.evaluateIfStatement(n, env)
	case *ast.WhileStatement:
		return i.evaluateWhileStatement(n, env)
	default:
		return nil, fmt.Errorf("unsupported statement type: %T", node)
	}
}

func (i *Interpreter) evaluatePrintStatement(stmt *ast.PrintStatement, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(stmt.Expression, env)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(i.out, val.String()); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return runtime.Nil, nil
}

func (i *Interpreter) evaluateVarStatement(stmt *ast.VarStatement, env *runtime.Environment) (runtime.Value, error) {
	value := runtime.Nil
	if stmt.Initializer != nil {
		val, err := i.evaluateExpression(stmt.Initializer, env)
		if err != nil {
			return nil, err
		}
		value = val
	}
	env.Define(stmt.Name.Name(), value)
	return runtime.Nil, nil
}

// evaluateBlock runs statements in a child frame. The frame is dropped when
// the block returns, including on error.
func (i *Interpreter) evaluateBlock(block *ast.BlockStatement, env *runtime.Environment) (runtime.Value, error) {
	scope := env.Extend()
	for _, stmt := range block.Statements {
		if _, err := i.evaluateStatement(stmt, scope); err != nil {
			return nil, err
		}
	}
	return runtime.Nil, nil
}

func (i *Interpreter) evaluateIfStatement(stmt *ast.IfStatement, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return nil, err
	}
	if runtime.IsTruthy(cond) {
		return i.evaluateStatement(stmt.Then, env)
	}
	if stmt.Else != nil {
		return i.evaluateStatement(stmt.Else, env)
	}
	return runtime.Nil, nil
}

func (i *Interpreter) evaluateWhileStatement(loop *ast.WhileStatement, env *runtime.Environment) (runtime.Value, error) {
	for {
		cond, err := i.evaluateExpression(loop.Condition, env)
		if err != nil {
			return nil, err
		}
		if !runtime.IsTruthy(cond) {
			return runtime.Nil, nil
		}
		if _, err := i.evaluateStatement(loop.Body, env); err != nil {
			return nil, err
		}
	}
}

package interpreter

import (
	"errors"
	"fmt"

	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/runtime"
	"github.com/snewcomer/tree-walk-1/pkg/token"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		if n.Value == nil {
			return runtime.Nil, nil
		}
		return n.Value, nil
	case *ast.Grouping:
		return i.evaluateExpression(n.Inner, env)
	case *ast.Unary:
		return i.evaluateUnary(n, env)
	case *ast.Binary:
		return i.evaluateBinary(n, env)
	case *ast.Logical:
		return i.evaluateLogical(n, env)
	case *ast.Variable:
		val, err := env.Get(n.Name.Name())
		if err != nil {
			return nil, lift(n.Name, err)
		}
		return val, nil
	case *ast.Assign:
		return i.evaluateAssign(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %T", node)
	}
}

func (i *Interpreter) evaluateUnary(expr *ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Kind {
	case token.Minus:
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, runtime.NewRuntimeError(expr.Operator.Line, "Operand must be a number.")
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case token.Bang:
		return runtime.BoolValue{Val: !runtime.IsTruthy(operand)}, nil
	default:
		return nil, runtime.NewRuntimeError(expr.Operator.Line, "Invalid unary operator.")
	}
}

func (i *Interpreter) evaluateBinary(expr *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOperator(expr.Operator, left, right)
}

func (i *Interpreter) evaluateLogical(expr *ast.Logical, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Kind {
	case token.Or:
		if runtime.IsTruthy(left) {
			return left, nil
		}
	case token.And:
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	default:
		return nil, runtime.NewRuntimeError(expr.Operator.Line, "Invalid logical operator.")
	}
	return i.evaluateExpression(expr.Right, env)
}

func (i *Interpreter) evaluateAssign(expr *ast.Assign, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(expr.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(expr.Name.Name(), val); err != nil {
		return nil, lift(expr.Name, err)
	}
	return val, nil
}

// lift attaches the token's line to an environment failure.
func lift(tok token.Token, err error) error {
	var undefined runtime.UndefinedVariableError
	if errors.As(err, &undefined) {
		return runtime.NewRuntimeError(tok.Line, undefined.Error())
	}
	return err
}

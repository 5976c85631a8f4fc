package interpreter

import (
	"github.com/snewcomer/tree-walk-1/pkg/runtime"
	"github.com/snewcomer/tree-walk-1/pkg/token"
)

func applyBinaryOperator(op token.Token, left, right runtime.Value) (runtime.Value, error) {
	switch op.Kind {
	case token.Plus:
		switch l := left.(type) {
		case runtime.NumberValue:
			if r, ok := right.(runtime.NumberValue); ok {
				return runtime.NumberValue{Val: l.Val + r.Val}, nil
			}
		case runtime.StringValue:
			if r, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: l.Val + r.Val}, nil
			}
		}
		return nil, runtime.NewRuntimeError(op.Line, "Operands must be two numbers or two strings.")
	case token.Minus, token.Slash, token.Star:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		switch op.Kind {
		case token.Minus:
			return runtime.NumberValue{Val: l - r}, nil
		case token.Slash:
			return runtime.NumberValue{Val: l / r}, nil
		default:
			return runtime.NumberValue{Val: l * r}, nil
		}
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		l, r, err := numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: comparisonOp(op.Kind, l, r)}, nil
	case token.EqualEqual:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case token.BangEqual:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	default:
		return nil, runtime.NewRuntimeError(op.Line, "Invalid binary operator.")
	}
}

func numberOperands(op token.Token, left, right runtime.Value) (float64, float64, error) {
	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return 0, 0, runtime.NewRuntimeError(op.Line, "Operand must be a number.")
	}
	return l.Val, r.Val, nil
}

func comparisonOp(kind token.Kind, l, r float64) bool {
	switch kind {
	case token.Greater:
		return l > r
	case token.GreaterEqual:
		return l >= r
	case token.Less:
		return l < r
	default:
		return l <= r
	}
}

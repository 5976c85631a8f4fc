package runtime

import "github.com/snewcomer/tree-walk-1/pkg/token"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is implemented by every runtime value.
type Value interface {
	Kind() Kind
	String() string
}

type NilValue struct{}

func (NilValue) Kind() Kind     { return KindNil }
func (NilValue) String() string { return "nil" }

type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBool }

func (v BoolValue) String() string {
	if v.Val {
		return "true"
	}
	return "false"
}

type NumberValue struct {
	Val float64
}

func (NumberValue) Kind() Kind       { return KindNumber }
func (v NumberValue) String() string { return token.FormatNumber(v.Val) }

// StringValue displays verbatim, without quotes.
type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind       { return KindString }
func (v StringValue) String() string { return v.Val }

// Nil is the shared nil value.
var Nil Value = NilValue{}

// IsTruthy reports whether v counts as true in a condition. Only nil and
// false are falsy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case NilValue:
		return false
	case BoolValue:
		return val.Val
	default:
		return true
	}
}

// Equal compares two values structurally. Values of different kinds are never
// equal; nil equals nil.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case NilValue:
		return true
	case BoolValue:
		return av.Val == b.(BoolValue).Val
	case NumberValue:
		return av.Val == b.(NumberValue).Val
	case StringValue:
		return av.Val == b.(StringValue).Val
	}
	return false
}

package runtime

import "testing"

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		value Value
		want  bool
	}{
		{Nil, false},
		{BoolValue{Val: false}, false},
		{BoolValue{Val: true}, true},
		{NumberValue{Val: 0}, true},
		{StringValue{Val: ""}, true},
	}
	for _, tc := range cases {
		if got := IsTruthy(tc.value); got != tc.want {
			t.Fatalf("IsTruthy(%#v): expected %v, got %v", tc.value, tc.want, got)
		}
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{Nil, NilValue{}, true},
		{NumberValue{Val: 1}, NumberValue{Val: 1}, true},
		{NumberValue{Val: 1}, StringValue{Val: "1"}, false},
		{StringValue{Val: "a"}, StringValue{Val: "a"}, true},
		{BoolValue{Val: false}, Nil, false},
		{BoolValue{Val: true}, BoolValue{Val: true}, true},
	}
	for _, tc := range cases {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Fatalf("Equal(%#v, %#v): expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestDisplayForms(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{Nil, "nil"},
		{BoolValue{Val: true}, "true"},
		{NumberValue{Val: -5}, "-5"},
		{NumberValue{Val: 2.5}, "2.5"},
		{StringValue{Val: "foo"}, "foo"},
	}
	for _, tc := range cases {
		if got := tc.value.String(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestRuntimeErrorFormat(t *testing.T) {
	err := NewRuntimeError(3, "Operand must be a number.")
	if got := err.Error(); got != "Operand must be a number. [line: 3]" {
		t.Fatalf("unexpected message %q", got)
	}
}

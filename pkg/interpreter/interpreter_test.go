package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/parser"
	"github.com/snewcomer/tree-walk-1/pkg/runtime"
	"github.com/snewcomer/tree-walk-1/pkg/token"
)

func newTestInterpreter() (*Interpreter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(WithOutput(&out)), &out
}

func mustRun(t *testing.T, interp *Interpreter, source string) {
	t.Helper()
	if err := interp.Run(source); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func runtimeError(t *testing.T, err error) *runtime.RuntimeError {
	t.Helper()
	var rtErr *runtime.RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected *runtime.RuntimeError, got %T: %v", err, err)
	}
	return rtErr
}

func TestRunPrograms(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"arithmetic", "print -1 * (2 + 3);", "-5\n"},
		{"string variable prints unquoted", `var a = "foo"; print a;`, "foo\n"},
		{"concatenation", `print "foo" + "bar";`, "foobar\n"},
		{"fractions", "print 10 / 4;", "2.5\n"},
		{"division by zero", "print 1 / 0; print -1 / 0;", "inf\n-inf\n"},
		{"block output", "{ var a = 4; print a; }", "4\n"},
		{"outer assignment from block", "var a = 1; { a = 2; } print a;", "2\n"},
		{"shadowing", "var a = 1; { var a = 2; print a; } print a;", "2\n1\n"},
		{"and yields operand", "var a = true and 5; print a;", "5\n"},
		{"or yields operand", "var b = false or 7; print b;", "7\n"},
		{"and short-circuits", "var c = false and 99; print c;", "false\n"},
		{"or keeps truthy left", `print "x" or 1;`, "x\n"},
		{"nil or", "print nil or nil;", "nil\n"},
		{"while loop", "var i = 0; while (i < 3) { i = i + 1; } print i;", "3\n"},
		{"if else", `if (1 > 2) print "no"; else print "yes";`, "yes\n"},
		{"if without else", `if (nil) print "no"; print "done";`, "done\n"},
		{"zero is truthy", `if (0) print "truthy";`, "truthy\n"},
		{"comparisons", "print 1 <= 1; print 2 >= 3; print 1 < 2; print 2 > 1;", "true\nfalse\ntrue\ntrue\n"},
		{"equality", `print 1 == 1; print "a" == "a"; print nil == nil; print 1 == "1"; print nil != false;`, "true\ntrue\ntrue\nfalse\ntrue\n"},
		{"negation", "print !nil; print !0; print !!true;", "true\nfalse\ntrue\n"},
		{"chained assignment", "var a; var b; a = b = 3; print a; print b;", "3\n3\n"},
		{"uninitialized var", "var x; print x;", "nil\n"},
		{"comment", "print 1; // print 2;\nprint 3;", "1\n3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			interp, out := newTestInterpreter()
			mustRun(t, interp, tc.source)
			if got := out.String(); got != tc.want {
				t.Fatalf("expected output %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	cases := []struct {
		source  string
		message string
		line    uint64
	}{
		{`print -"x";`, "Operand must be a number.", 0},
		{"\n\nprint 1 - nil;", "Operand must be a number.", 2},
		{`print 1 * "2";`, "Operand must be a number.", 0},
		{`print "a" < "b";`, "Operand must be a number.", 0},
		{`print 1 + "a";`, "Operands must be two numbers or two strings.", 0},
		{"print missing;", "Undefined variable 'missing'.", 0},
		{"\nmissing = 1;", "Undefined variable 'missing'.", 1},
	}
	for _, tc := range cases {
		interp, _ := newTestInterpreter()
		rtErr := runtimeError(t, interp.Run(tc.source))
		if rtErr.Message != tc.message || rtErr.Line != tc.line {
			t.Fatalf("%q: expected %q on line %d, got %v", tc.source, tc.message, tc.line, rtErr)
		}
	}
}

func TestRuntimeErrorRendering(t *testing.T) {
	interp, _ := newTestInterpreter()
	err := interp.Run(`print -"x";`)
	if got := err.Error(); got != "Operand must be a number. [line: 0]" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestBlockScopeDoesNotLeak(t *testing.T) {
	interp, out := newTestInterpreter()
	mustRun(t, interp, "{ var a = 4; print a; }")
	if interp.GlobalEnvironment().Has("a") {
		t.Fatalf("block variable leaked into the global frame")
	}
	rtErr := runtimeError(t, interp.Run("print a;"))
	if rtErr.Message != "Undefined variable 'a'." {
		t.Fatalf("unexpected error %v", rtErr)
	}
	if out.String() != "4\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestBlockFramePoppedOnError(t *testing.T) {
	interp, out := newTestInterpreter()
	err := interp.Run(`var a = 1; { var inner = 2; a = 5; print inner; print -"x"; }`)
	runtimeError(t, err)
	if interp.GlobalEnvironment().Has("inner") {
		t.Fatalf("block frame survived a runtime error")
	}
	mustRun(t, interp, "print a;")
	if out.String() != "2\n5\n" {
		t.Fatalf("expected side effects to persist, got %q", out.String())
	}
}

func TestShortCircuitSkipsRightOperand(t *testing.T) {
	interp, out := newTestInterpreter()
	mustRun(t, interp, `
var touched = false;
var a = false and (touched = true);
var b = true or (touched = true);
print touched;
print a;
print b;
`)
	if out.String() != "false\nfalse\ntrue\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	mustRun(t, interp, "var c = true and (touched = 1); print touched; print c;")
	if !strings.HasSuffix(out.String(), "1\n1\n") {
		t.Fatalf("expected right operand to run, got %q", out.String())
	}
}

func TestStatePersistsAcrossRuns(t *testing.T) {
	interp, out := newTestInterpreter()
	mustRun(t, interp, "var greeting = \"hi\";")
	mustRun(t, interp, "print greeting;")
	if err := interp.Run("print nope;"); err == nil {
		t.Fatalf("expected an error")
	}
	mustRun(t, interp, "greeting = greeting + \"!\"; print greeting;")
	if out.String() != "hi\nhi!\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if interp.Running() {
		t.Fatalf("expected interpreter to be ready between runs")
	}
}

func TestRunStopsBeforeExecutingOnParseError(t *testing.T) {
	interp, out := newTestInterpreter()
	err := interp.Run("print 1; (1 + 2")
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected nothing to execute, got %q", out.String())
	}
	if err := interp.Run("print @;"); err == nil || !strings.Contains(err.Error(), "Unexpected character @ on line 0") {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestExecuteReturnsNil(t *testing.T) {
	interp, _ := newTestInterpreter()
	stmt := ast.NewPrintStatement(ast.NewLiteral(runtime.NumberValue{Val: 1}, 0))
	val, err := interp.Execute(stmt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.Kind() != runtime.KindNil {
		t.Fatalf("expected nil result, got %v", val)
	}
}

func TestEvaluateAssignReturnsValue(t *testing.T) {
	interp, _ := newTestInterpreter()
	interp.GlobalEnvironment().Define("a", runtime.Nil)
	val, err := interp.Evaluate(ast.NewAssign(token.NewIdentifier("a", 0), ast.NewLiteral(runtime.StringValue{Val: "v"}, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !runtime.Equal(val, runtime.StringValue{Val: "v"}) {
		t.Fatalf("expected assigned value, got %v", val)
	}
}

func TestInvalidOperators(t *testing.T) {
	interp, _ := newTestInterpreter()
	one := ast.NewLiteral(runtime.NumberValue{Val: 1}, 0)

	_, err := interp.Evaluate(ast.NewUnary(token.New(token.Plus, 3), one))
	if rtErr := runtimeError(t, err); rtErr.Message != "Invalid unary operator." || rtErr.Line != 3 {
		t.Fatalf("unexpected error %v", rtErr)
	}
	_, err = interp.Evaluate(ast.NewBinary(one, token.New(token.Comma, 4), one))
	if rtErr := runtimeError(t, err); rtErr.Message != "Invalid binary operator." || rtErr.Line != 4 {
		t.Fatalf("unexpected error %v", rtErr)
	}
}

func TestBusyInterpreterRejectsWork(t *testing.T) {
	interp, out := newTestInterpreter()
	interp.running.Set()

	if err := interp.Run("print 1;"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy from Run, got %v", err)
	}
	stmt := ast.NewPrintStatement(ast.NewLiteral(runtime.NumberValue{Val: 1}, 0))
	if _, err := interp.Execute(stmt); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy from Execute, got %v", err)
	}
	if _, err := interp.Evaluate(ast.NewLiteral(runtime.Nil, 0)); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy from Evaluate, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected nothing to execute, got %q", out.String())
	}

	interp.running.UnSet()
	mustRun(t, interp, "print 1;")
	if out.String() != "1\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunRejectsRunawayOperatorChain(t *testing.T) {
	interp, out := newTestInterpreter()
	err := interp.Run("print 1" + strings.Repeat(" + 1", 100000) + ";")
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) || parseErr.Message != "Too much nesting." {
		t.Fatalf("expected nesting error, got %v", err)
	}
	mustRun(t, interp, "print 1"+strings.Repeat(" + 1", 900)+";")
	if out.String() != "901\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

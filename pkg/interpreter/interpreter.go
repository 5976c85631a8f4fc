package interpreter

import (
	"errors"
	"io"
	"os"

	"github.com/tevino/abool/v2"

	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/parser"
	"github.com/snewcomer/tree-walk-1/pkg/runtime"
	"github.com/snewcomer/tree-walk-1/pkg/scanner"
)

// ErrBusy is returned when a statement is submitted while another one is
// still executing.
var ErrBusy = errors.New("interpreter: already running")

// Interpreter evaluates statements against a persistent global environment.
type Interpreter struct {
	global  *runtime.Environment
	out     io.Writer
	running *abool.AtomicBool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets the sink that print statements write to.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.out = w
	}
}

// New returns an interpreter with an empty global environment.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global:  runtime.NewEnvironment(nil),
		out:     os.Stdout,
		running: abool.NewBool(false),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// GlobalEnvironment exposes the root frame.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Running reports whether a statement is currently executing.
func (i *Interpreter) Running() bool {
	return i.running.IsSet()
}

// Execute runs one statement at global scope. A runtime error leaves the
// interpreter ready for the next statement; side effects already performed
// are kept.
func (i *Interpreter) Execute(stmt ast.Statement) (runtime.Value, error) {
	if !i.running.SetToIf(false, true) {
		return nil, ErrBusy
	}
	defer i.running.UnSet()
	return i.evaluateStatement(stmt, i.global)
}

// ExecuteAll runs statements in order, stopping at the first error.
func (i *Interpreter) ExecuteAll(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if _, err := i.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate computes a single expression at global scope.
func (i *Interpreter) Evaluate(expr ast.Expression) (runtime.Value, error) {
	if !i.running.SetToIf(false, true) {
		return nil, ErrBusy
	}
	defer i.running.UnSet()
	return i.evaluateExpression(expr, i.global)
}

// Run scans, parses and executes source. Nothing executes unless the whole
// source scans and parses cleanly.
func (i *Interpreter) Run(source string) error {
	if i.Running() {
		return ErrBusy
	}
	tokens, err := scanner.Tokenize(source)
	if err != nil {
		return err
	}
	stmts, err := parser.ParseAll(tokens)
	if err != nil {
		return err
	}
	return i.ExecuteAll(stmts)
}

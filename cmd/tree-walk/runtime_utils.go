package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/driver"
	"github.com/snewcomer/tree-walk-1/pkg/scanner"
)

// console writes prompts and diagnostics, colorized when enabled.
type console struct {
	stdout io.Writer
	stderr io.Writer
	errors *color.Color
	prompt *color.Color
}

func newConsole(mode driver.ColorMode, noColor bool) *console {
	c := &console{
		stdout: os.Stdout,
		stderr: os.Stderr,
		errors: color.New(color.FgRed),
		prompt: color.New(color.FgBlue, color.Bold),
	}
	switch {
	case noColor || mode == driver.ColorNever:
		c.errors.DisableColor()
		c.prompt.DisableColor()
	case mode == driver.ColorAlways:
		c.errors.EnableColor()
		c.prompt.EnableColor()
	}
	return c
}

func (c *console) reportError(err error) {
	c.errors.Fprintln(c.stderr, err.Error())
}

func (c *console) warn(format string, args ...any) {
	c.errors.Fprintf(c.stderr, "warning: "+format+"\n", args...)
}

func (c *console) showPrompt(text string) {
	c.prompt.Fprint(c.stdout, text)
}

// evaluate runs source through the session, printing tokens and the syntax
// tree first when requested.
func evaluate(session *driver.Session, ui *console, opts *options, source string) error {
	if opts.dumpTokens {
		if err := dumpTokens(ui.stdout, source); err != nil {
			return err
		}
	}
	if opts.dumpAST {
		stmts, err := session.Parse(source)
		if err != nil {
			return err
		}
		for _, stmt := range stmts {
			fmt.Fprintln(ui.stdout, ast.Print(stmt))
		}
	}
	return session.Run(source)
}

func dumpTokens(w io.Writer, source string) error {
	s := scanner.NewString(source)
	var errs []error
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "%d %s %s\n", tok.Line, tok.Kind, tok)
	}
	return errors.Join(errs...)
}

// dumpGlobals prints the global frame as name = value lines.
func dumpGlobals(w io.Writer, session *driver.Session) {
	for _, binding := range session.Interpreter().GlobalEnvironment().Bindings() {
		fmt.Fprintf(w, "%s = %s\n", binding.Name, binding.Value)
	}
}

// openConfiguredHistory opens the history store named in cfg. The exit code
// is meaningful only when the returned history is nil.
func openConfiguredHistory(cfg *driver.Config, ui *console) (*driver.History, int) {
	if cfg.History.Path == "" {
		ui.reportError(errors.New("history: no history.path configured"))
		return nil, exitConfig
	}
	history, err := driver.OpenHistory(cfg.History.Path)
	if err != nil {
		ui.reportError(err)
		return nil, exitSoftware
	}
	return history, exitOK
}

func showHistory(cfg *driver.Config, ui *console) int {
	history, code := openConfiguredHistory(cfg, ui)
	if history == nil {
		return code
	}
	defer history.Close()
	lines, err := history.Recent(cfg.History.Limit)
	if err != nil {
		ui.reportError(err)
		return exitSoftware
	}
	for _, line := range lines {
		fmt.Fprintln(ui.stdout, line)
	}
	return exitOK
}

func clearHistory(cfg *driver.Config, ui *console) int {
	history, code := openConfiguredHistory(cfg, ui)
	if history == nil {
		return code
	}
	defer history.Close()
	if err := history.Clear(); err != nil {
		ui.reportError(err)
		return exitSoftware
	}
	return exitOK
}

package main

import (
	"fmt"
	"os"

	"github.com/snewcomer/tree-walk-1/pkg/driver"
	"github.com/snewcomer/tree-walk-1/pkg/interpreter"
)

const programName = "tree-walk"

// Exit codes follow sysexits.h.
const (
	exitOK       = 0
	exitUsage    = 64
	exitSoftware = 70
	exitConfig   = 78
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Stderr)
		return exitUsage
	}
	if opts.help {
		printUsage(os.Stdout)
		return exitOK
	}

	cfg, err := driver.ResolveConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return exitConfig
	}
	ui := newConsole(cfg.Color, opts.noColor)

	switch {
	case opts.showHistory:
		return showHistory(cfg, ui)
	case opts.clearHistory:
		return clearHistory(cfg, ui)
	}

	session := driver.NewSession(interpreter.New(interpreter.WithOutput(os.Stdout)), cfg.CacheSize)
	switch {
	case opts.hasSource:
		if len(opts.positional) > 0 {
			printUsage(os.Stdout)
			return exitUsage
		}
		return runSource(session, ui, opts, opts.source)
	case len(opts.positional) == 0:
		return runRepl(session, cfg, ui, opts)
	case len(opts.positional) == 1:
		return runFile(session, ui, opts, opts.positional[0])
	default:
		printUsage(os.Stdout)
		return exitUsage
	}
}

func runFile(session *driver.Session, ui *console, opts *options, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		ui.reportError(fmt.Errorf("read %s: %w", path, err))
		return exitSoftware
	}
	return runSource(session, ui, opts, string(data))
}

func runSource(session *driver.Session, ui *console, opts *options, source string) int {
	if err := evaluate(session, ui, opts, source); err != nil {
		ui.reportError(err)
		return exitSoftware
	}
	if opts.dumpGlobals {
		dumpGlobals(ui.stdout, session)
	}
	return exitOK
}

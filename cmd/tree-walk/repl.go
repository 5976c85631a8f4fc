package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/snewcomer/tree-walk-1/pkg/driver"
)

// runRepl reads one line at a time until end of input. Errors are reported
// and the session keeps its state for the next line.
func runRepl(session *driver.Session, cfg *driver.Config, ui *console, opts *options) int {
	history := openReplHistory(cfg, ui)
	if history != nil {
		defer history.Close()
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		ui.showPrompt(cfg.Prompt)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			ui.reportError(err)
			return exitSoftware
		}
		if line == "" {
			return exitOK
		}
		if history != nil && strings.TrimSpace(line) != "" {
			if herr := history.Append(strings.TrimRight(line, "\r\n")); herr != nil {
				ui.warn("%v", herr)
			}
		}
		if evalErr := evaluate(session, ui, opts, line); evalErr != nil {
			ui.reportError(evalErr)
		}
		if err != nil {
			return exitOK
		}
	}
}

func openReplHistory(cfg *driver.Config, ui *console) *driver.History {
	if !cfg.History.Enabled {
		return nil
	}
	history, err := driver.OpenHistory(cfg.History.Path)
	if err != nil {
		ui.warn("%v", err)
		return nil
	}
	return history
}

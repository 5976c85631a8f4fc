package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options] [script]\n", programName)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "With no script, starts an interactive prompt.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -c file    read settings from file instead of tree-walk.yml")
	fmt.Fprintln(w, "  -e source  run source instead of a script")
	fmt.Fprintln(w, "  -t         print tokens before running")
	fmt.Fprintln(w, "  -a         print the syntax tree before running")
	fmt.Fprintln(w, "  -n         disable colored output")
	fmt.Fprintln(w, "  -g         print global variables after running")
	fmt.Fprintln(w, "  -H         print recent prompt history and exit")
	fmt.Fprintln(w, "  -C         clear prompt history and exit")
	fmt.Fprintln(w, "  -h         show this help")
}

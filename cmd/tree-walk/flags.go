package main

import (
	"fmt"

	"git.sr.ht/~sircmpwn/getopt"
)

type options struct {
	configPath   string
	source       string
	hasSource    bool
	dumpTokens   bool
	dumpAST      bool
	noColor      bool
	showHistory  bool
	clearHistory bool
	dumpGlobals  bool
	help         bool
	positional   []string
}

func parseOptions(args []string) (*options, error) {
	argv := append([]string{programName}, args...)
	opts, optind, err := getopt.Getopts(argv, "c:e:tangHCh")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", programName, err)
	}
	parsed := &options{positional: argv[optind:]}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			parsed.configPath = opt.Value
		case 'e':
			parsed.source = opt.Value
			parsed.hasSource = true
		case 't':
			parsed.dumpTokens = true
		case 'a':
			parsed.dumpAST = true
		case 'n':
			parsed.noColor = true
		case 'g':
			parsed.dumpGlobals = true
		case 'H':
			parsed.showHistory = true
		case 'C':
			parsed.clearHistory = true
		case 'h':
			parsed.help = true
		}
	}
	return parsed, nil
}

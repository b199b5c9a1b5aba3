package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/numpyless/grading-harness/scoring"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	verbose  bool
	sections bool
	noColor  bool
	jsonFile string
	filters  scoring.RegexFilters
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.BoolVar(&c.verbose, "verbose", false, "itemize every test in the report")
	fs.BoolVar(&c.sections, "sections", false, "also print the by-section summary")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored status output")
	fs.StringVar(&c.jsonFile, "json", "", "also write a JSON report to this file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

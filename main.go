package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/numpyless/grading-harness/gradetests"
	"github.com/numpyless/grading-harness/scoring"

	"github.com/fatih/color"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	if params.noColor {
		color.NoColor = true
	}

	fmt.Println()
	for _, line := range scoring.DescribeFilters(params.filters) {
		fmt.Println(line)
	}

	fmt.Println("Running grading suite")

	sys := scoring.NewSystem(&consoleProgressLogger{})
	ok := gradetests.RunSuite(sys, params.filters.AsFilter)

	printLines(sys.RenderFull(params.verbose))
	if params.sections {
		printLines(sys.RenderBySection())
	}

	if params.jsonFile != "" {
		if err := writeJSONReport(sys, params.jsonFile); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write JSON report: %s\n", err)
			os.Exit(1)
		}
	}

	if !ok {
		printRerunHint(sys)
		os.Exit(1)
	}
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}

// printRerunHint suggests a command line that re-runs only the groups that
// are not yet fully passing.
func printRerunHint(sys *scoring.System) {
	var b commandBuilder
	b.add(os.Args[0])
	for _, g := range sys.Groups() {
		stats := g.Statistics()
		if stats.Passed < stats.TotalTests {
			b.add("-run", "^"+regexp.QuoteMeta(g.Name())+"/")
		}
	}
	fmt.Println()
	fmt.Println("To re-run only the groups that are not fully passing:")
	fmt.Printf("  %s\n", b)
}

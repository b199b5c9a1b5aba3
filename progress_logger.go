package main

import (
	"fmt"

	"github.com/fatih/color"
)

// consoleProgressLogger prints the one-line ✓/✗ status for each test as it is
// registered, colored when the terminal supports it.
type consoleProgressLogger struct{}

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	todoColor = color.New(color.FgYellow)
)

func (c *consoleProgressLogger) TestPassed(name string) {
	fmt.Printf("%s %s: PASSED\n", passColor.Sprint("✓"), name)
}

func (c *consoleProgressLogger) TestNotImplemented(name string) {
	fmt.Printf("%s %s: NOT IMPLEMENTED\n", todoColor.Sprint("✗"), name)
}

func (c *consoleProgressLogger) TestFailed(name string, message string) {
	fmt.Printf("%s %s: FAILED - %s\n", failColor.Sprint("✗"), name, message)
}

func (c *consoleProgressLogger) TestErrored(name string, failureKind string, message string) {
	fmt.Printf("%s %s: ERROR - %s: %s\n", failColor.Sprint("✗"), name, failureKind, message)
}

package scoring

import (
	"fmt"
	"strings"
)

const ruleWidth = 70

// Group is a named bucket of tests sharing one weight budget. The budget is
// split equally across every test ever registered into the group, whether it
// passed or not; only passed tests contribute to the earned score.
type Group struct {
	name            string
	maxWeight       float64
	passed          []testEntry
	failed          []testEntry
	notImplemented  []testEntry
	registeredCount int
	logger          ProgressLogger
}

type testEntry struct {
	name    string
	weight  float64
	message string
}

// GroupStats is a read-only snapshot of a Group's results.
type GroupStats struct {
	Name           string
	Earned         float64
	MaxWeight      float64
	TotalTests     int
	Passed         int
	Failed         int
	NotImplemented int
	Percentage     float64
}

// NewGroup creates an empty group worth maxWeight points in total. A negative
// maxWeight is rejected.
func NewGroup(name string, maxWeight float64) (*Group, error) {
	if maxWeight < 0 {
		return nil, fmt.Errorf("group %q: negative max weight %v", name, maxWeight)
	}
	return &Group{name: name, maxWeight: maxWeight, logger: nullProgressLogger{}}, nil
}

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// Register runs the test body now and records its outcome. The entry's weight
// is recorded as zero; weights only become meaningful after Recalculate.
// Registering the same name twice adds a second entry. The return value is
// true only if the test passed.
func (g *Group) Register(testName string, test TestFunc) bool {
	g.registeredCount++
	outcome := runTest(test)
	switch outcome.Kind {
	case OutcomePassed:
		g.passed = append(g.passed, testEntry{name: testName})
		g.logger.TestPassed(testName)
		return true
	case OutcomeNotImplemented:
		g.notImplemented = append(g.notImplemented, testEntry{name: testName})
		g.logger.TestNotImplemented(testName)
		return false
	case OutcomeExpectationFailed:
		g.failed = append(g.failed, testEntry{name: testName, message: outcome.Message})
		g.logger.TestFailed(testName, outcome.Message)
		return false
	default:
		message := fmt.Sprintf("%s: %s", outcome.FailureKind, outcome.Message)
		g.failed = append(g.failed, testEntry{name: testName, message: message})
		g.logger.TestErrored(testName, outcome.FailureKind, outcome.Message)
		return false
	}
}

// Recalculate sets every entry's weight to maxWeight/registeredCount. It is
// idempotent, and a no-op on a group with no registrations.
func (g *Group) Recalculate() {
	if g.registeredCount == 0 {
		return
	}
	perTest := g.maxWeight / float64(g.registeredCount)
	for _, entries := range [][]testEntry{g.passed, g.failed, g.notImplemented} {
		for i := range entries {
			entries[i].weight = perTest
		}
	}
}

// Score returns the earned score and the group's maximum. Earned sums the
// weights of passed entries only, so it is stale until Recalculate has run.
func (g *Group) Score() (earned, max float64) {
	for _, e := range g.passed {
		earned += e.weight
	}
	return earned, g.maxWeight
}

// Statistics returns a snapshot of the group's current results.
func (g *Group) Statistics() GroupStats {
	earned, _ := g.Score()
	total := len(g.passed) + len(g.failed) + len(g.notImplemented)
	percentage := 0.0
	if g.maxWeight > 0 {
		percentage = earned / g.maxWeight * 100
	}
	return GroupStats{
		Name:           g.name,
		Earned:         earned,
		MaxWeight:      g.maxWeight,
		TotalTests:     total,
		Passed:         len(g.passed),
		Failed:         len(g.failed),
		NotImplemented: len(g.notImplemented),
		Percentage:     percentage,
	}
}

// Render recalculates weights and formats the group's report block. When
// verbose is true every entry is itemized, failed entries with their message.
func (g *Group) Render(verbose bool) []string {
	g.Recalculate()
	stats := g.Statistics()

	lines := []string{
		"",
		strings.Repeat("─", ruleWidth),
		"📦 " + g.name,
		strings.Repeat("─", ruleWidth),
		fmt.Sprintf("Score: %.2f%% / %.2f%%", stats.Earned, stats.MaxWeight),
		fmt.Sprintf("Tests: %d/%d passed (%.1f%%)", stats.Passed, stats.TotalTests, stats.Percentage),
	}

	if !verbose {
		return lines
	}

	if len(g.passed) > 0 {
		lines = append(lines, "", fmt.Sprintf("  ✓ Passed (%d):", len(g.passed)))
		for _, e := range g.passed {
			lines = append(lines, fmt.Sprintf("    • %s: +%.3f%%", e.name, e.weight))
		}
	}
	if len(g.failed) > 0 {
		lines = append(lines, "", fmt.Sprintf("  ✗ Failed (%d):", len(g.failed)))
		for _, e := range g.failed {
			line := fmt.Sprintf("    • %s: 0/%.3f%%", e.name, e.weight)
			if e.message != "" {
				line += " (" + e.message + ")"
			}
			lines = append(lines, line)
		}
	}
	if len(g.notImplemented) > 0 {
		lines = append(lines, "", fmt.Sprintf("  ⚠ Not Implemented (%d):", len(g.notImplemented)))
		for _, e := range g.notImplemented {
			lines = append(lines, fmt.Sprintf("    • %s: 0/%.3f%%", e.name, e.weight))
		}
	}
	return lines
}

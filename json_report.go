package main

import (
	"os"

	"github.com/numpyless/grading-harness/scoring"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// writeJSONReport writes the machine-readable version of the score report.
// The console report remains the source of truth for formatting; this exists
// for scripts that post-process grades.
func writeJSONReport(sys *scoring.System, path string) error {
	groups := ldvalue.ArrayBuild()
	for _, g := range sys.Groups() {
		g.Recalculate()
		stats := g.Statistics()
		groups.Add(ldvalue.ObjectBuild().
			Set("name", ldvalue.String(stats.Name)).
			Set("earned", ldvalue.Float64(stats.Earned)).
			Set("maxWeight", ldvalue.Float64(stats.MaxWeight)).
			Set("totalTests", ldvalue.Int(stats.TotalTests)).
			Set("passed", ldvalue.Int(stats.Passed)).
			Set("failed", ldvalue.Int(stats.Failed)).
			Set("notImplemented", ldvalue.Int(stats.NotImplemented)).
			Set("percentage", ldvalue.Float64(stats.Percentage)).
			Build())
	}

	earned, max := sys.TotalScore()
	report := ldvalue.ObjectBuild().
		Set("earned", ldvalue.Float64(earned)).
		Set("maxWeight", ldvalue.Float64(max)).
		Set("groups", groups.Build()).
		Build()

	return os.WriteFile(path, []byte(report.JSONString()+"\n"), 0600)
}

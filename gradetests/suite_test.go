package gradetests

import (
	"strings"
	"testing"

	"github.com/numpyless/grading-harness/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuiteAgainstUnimplementedStubs(t *testing.T) {
	sys := scoring.NewSystem(nil)
	ok := RunSuite(sys, nil)
	assert.False(t, ok)

	groups := sys.Groups()
	require.Len(t, groups, 6)

	for _, g := range groups {
		stats := g.Statistics()
		assert.Equal(t, 0, stats.Passed, "group %s", stats.Name)
		assert.Equal(t, 0, stats.Failed, "group %s", stats.Name)
		assert.Equal(t, stats.TotalTests, stats.NotImplemented, "group %s", stats.Name)
		assert.Greater(t, stats.TotalTests, 0, "group %s", stats.Name)
	}

	for _, g := range groups {
		g.Recalculate()
	}
	earned, max := sys.TotalScore()
	assert.Equal(t, 0.0, earned)
	assert.InDelta(t, 12.0, max, 1e-9)
}

func TestSuiteSpansBothSections(t *testing.T) {
	sys := scoring.NewSystem(nil)
	RunSuite(sys, nil)

	var partOne, partTwo int
	for _, g := range sys.Groups() {
		if strings.HasPrefix(g.Name(), scoring.SectionTwoPrefix) {
			partTwo++
		} else {
			partOne++
		}
	}
	assert.Equal(t, 5, partOne)
	assert.Equal(t, 1, partTwo)
}

func TestSuiteFilterSkipsRegistration(t *testing.T) {
	sys := scoring.NewSystem(nil)
	RunSuite(sys, func(name string) bool {
		return strings.HasPrefix(name, "Part 1: Array Creation/")
	})

	for _, g := range sys.Groups() {
		stats := g.Statistics()
		if g.Name() == "Part 1: Array Creation" {
			assert.Greater(t, stats.TotalTests, 0)
		} else {
			assert.Equal(t, 0, stats.TotalTests, "group %s", stats.Name)
		}
	}
}

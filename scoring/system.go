package scoring

import (
	"fmt"
	"strings"
)

// SectionTwoPrefix is the literal group-name prefix that assigns a group to
// the second report section. The match is exact and case-sensitive; any group
// whose name does not start with it belongs to the first section.
const SectionTwoPrefix = "Part 2"

const (
	sectionOneTitle = "PART 1: NumpyLess Implementation"
	sectionTwoTitle = "PART 2: Benchmarking and Analysis"
)

// System is the top-level container of scoring groups. Groups are kept in
// insertion order and deduplicated by name.
type System struct {
	groups []*Group
	byName map[string]*Group
	logger ProgressLogger
}

// NewSystem creates an empty scoring system. Registration status lines are
// sent to logger; pass nil to discard them.
func NewSystem(logger ProgressLogger) *System {
	if logger == nil {
		logger = nullProgressLogger{}
	}
	return &System{byName: make(map[string]*Group), logger: logger}
}

// CreateOrGetGroup returns the existing group of that name, or creates and
// registers a new one. On a hit the maxWeight argument is ignored, so setup
// scripts can call this idempotently without reconfiguring anything.
func (s *System) CreateOrGetGroup(name string, maxWeight float64) (*Group, error) {
	if g, ok := s.byName[name]; ok {
		return g, nil
	}
	g, err := NewGroup(name, maxWeight)
	if err != nil {
		return nil, err
	}
	g.logger = s.logger
	s.groups = append(s.groups, g)
	s.byName[name] = g
	return g, nil
}

// Clear removes every group. Previously returned groups stay valid but are no
// longer reachable from the system.
func (s *System) Clear() {
	s.groups = nil
	s.byName = make(map[string]*Group)
}

// Groups returns the groups in insertion order.
func (s *System) Groups() []*Group {
	return append([]*Group(nil), s.groups...)
}

// TotalScore sums every group's earned score and maximum. It does not
// recalculate; callers needing fresh totals should render first or
// recalculate each group themselves.
func (s *System) TotalScore() (earned, max float64) {
	for _, g := range s.groups {
		e, m := g.Score()
		earned += e
		max += m
	}
	return earned, max
}

// RenderFull formats the complete report: every group's block in insertion
// order, the grand total, and a completion percentage with a progress message
// when there is anything to score.
func (s *System) RenderFull(verbose bool) []string {
	lines := []string{
		"",
		strings.Repeat("=", ruleWidth),
		"📊 COMPLETE SCORE SUMMARY",
		strings.Repeat("=", ruleWidth),
	}

	for _, g := range s.groups {
		lines = append(lines, g.Render(verbose)...)
	}

	earned, max := s.TotalScore()
	lines = append(lines,
		"",
		strings.Repeat("=", ruleWidth),
		fmt.Sprintf("🎓 FINAL SCORE: %.2f%% / %.2f%%", earned, max),
	)
	if max > 0 {
		percentage := earned / max * 100
		lines = append(lines,
			fmt.Sprintf("📈 Overall Completion: %.1f%%", percentage),
			progressMessage(percentage),
		)
	}
	return append(lines, strings.Repeat("=", ruleWidth))
}

func progressMessage(percentage float64) string {
	switch {
	case percentage == 100:
		return "🌟 PERFECT! Every function implemented correctly."
	case percentage >= 90:
		return "🎉 EXCELLENT! Almost perfect."
	case percentage >= 75:
		return "👏 VERY GOOD! Nice work."
	case percentage >= 50:
		return "👍 Good progress. Keep going."
	default:
		return "💪 Keep working. You can do it!"
	}
}

// RenderBySection formats the compact report partitioned by the group-name
// section convention, then the grand total.
func (s *System) RenderBySection() []string {
	lines := []string{
		"",
		strings.Repeat("=", ruleWidth),
		"📊 SUMMARY BY SECTION",
		strings.Repeat("=", ruleWidth),
	}

	for _, g := range s.groups {
		g.Recalculate()
	}

	var sectionOne, sectionTwo []*Group
	for _, g := range s.groups {
		if strings.HasPrefix(g.name, SectionTwoPrefix) {
			sectionTwo = append(sectionTwo, g)
		} else {
			sectionOne = append(sectionOne, g)
		}
	}

	lines = append(lines, renderSection(sectionOneTitle, sectionOne)...)
	lines = append(lines, renderSection(sectionTwoTitle, sectionTwo)...)

	earned, max := s.TotalScore()
	percentage := 0.0
	if max > 0 {
		percentage = earned / max * 100
	}
	return append(lines,
		"",
		strings.Repeat("─", ruleWidth),
		fmt.Sprintf("🎓 TOTAL SCORE: %.2f%% / %.2f%% (%.1f%%)", earned, max, percentage),
		strings.Repeat("=", ruleWidth),
	)
}

func renderSection(title string, groups []*Group) []string {
	if len(groups) == 0 {
		return nil
	}

	var earned, max float64
	var passed, total int
	for _, g := range groups {
		e, m := g.Score()
		earned += e
		max += m
		stats := g.Statistics()
		passed += stats.Passed
		total += stats.TotalTests
	}
	percentage := 0.0
	if max > 0 {
		percentage = earned / max * 100
	}

	glyph := "❌"
	switch {
	case percentage == 100:
		glyph = "✅"
	case percentage >= 50:
		glyph = "🔄"
	}

	lines := []string{
		"",
		fmt.Sprintf("%s %s", glyph, title),
		fmt.Sprintf("   Score: %.2f%% / %.2f%%", earned, max),
		fmt.Sprintf("   Tests: %d/%d (%.1f%%)", passed, total, percentage),
	}
	for _, g := range groups {
		stats := g.Statistics()
		lines = append(lines, fmt.Sprintf("      • %s: %.2f%% / %.2f%%", g.name, stats.Earned, stats.MaxWeight))
	}
	return lines
}

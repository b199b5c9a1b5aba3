package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to register a specific test
// or not, keyed on its "group name/test name" string.
type Filter func(name string) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(name string) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// DescribeFilters returns the lines explaining which tests will be excluded
// from registration, or nothing when no filters are set. Excluded tests carry
// no weight, so filtered runs rescale each group's budget over what remains.
func DescribeFilters(filters RegexFilters) []string {
	if !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() {
		return nil
	}
	lines := []string{"Some tests will not be registered, based on the filter criteria for this run:"}
	if filters.MustMatch.IsDefined() {
		lines = append(lines, fmt.Sprintf("  skip any not matching %s", filters.MustMatch))
	}
	if filters.MustNotMatch.IsDefined() {
		lines = append(lines, fmt.Sprintf("  skip any matching %s", filters.MustNotMatch))
	}
	return append(lines, "")
}

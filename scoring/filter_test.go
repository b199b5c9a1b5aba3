package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFiltersSelectByName(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^Part 1"))
	require.NoError(t, filters.MustNotMatch.Set("determinant"))

	assert.True(t, filters.AsFilter("Part 1: Vectors/dot"))
	assert.False(t, filters.AsFilter("Part 2: Benchmarks/dot"))
	assert.False(t, filters.AsFilter("Part 1: Determinant/determinant of identity"))
}

func TestRegexFilterRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	require.Error(t, list.Set("("))
	assert.False(t, list.IsDefined())
}

func TestEmptyFiltersMatchEverything(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter("anything at all"))
	assert.Nil(t, DescribeFilters(filters))
}

func TestDescribeFiltersListsCriteria(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^Part 1"))

	lines := DescribeFilters(filters)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines, `  skip any not matching "^Part 1"`)
}

package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planningGrid() Grid {
	return Grid{
		{"", "", "", "1", "2"},
		{"", "", "", "", ""},
		{"Development", "Apollo", "alice", "8", "6"},
		{"", "", "bob", "0", "4"},
		{"", "Hermes", "carol", "x", "2"},
		{"Operations", "Support", "?tbd", "5", "5"},
		{"", "", "alice", "4", "4"},
		{"", "", "dave", "2", ""},
	}
}

func TestBuildOverview(t *testing.T) {
	overview := Overview{
		WeekRow:       0,
		TypeColumn:    0,
		ProjectColumn: 1,
		PersonColumn:  2,
	}

	grid, skipped, err := overview.Build(planningGrid(), 3)
	require.NoError(t, err)

	expected := Grid{
		{"", "Development", "Operations", "Total"},
		{"", "Apollo", "Support", ""},
		{"alice", "8", "4", "12"},
		{"dave", "", "2", "2"},
	}

	assert.Equal(t, expected, grid)

	// carol's hours value is not a whole number
	require.Len(t, skipped, 1)
	assert.Equal(t, 4, skipped[0].Row)
	assert.Equal(t, "Hermes", skipped[0].Project)
	assert.Equal(t, "x", skipped[0].Hours)
}

func TestBuildOverviewForwardFillsProjects(t *testing.T) {
	grid := Grid{
		{"", "", "", "7"},
		{"", "", "", ""},
		{"Development", "Apollo", "alice", "8"},
		{"", "", "bob", "16"},
	}

	overview := Overview{WeekRow: 0, ProjectColumn: 1, PersonColumn: 2}

	result, skipped, err := overview.Build(grid, 3)
	require.NoError(t, err)
	require.Empty(t, skipped)

	expected := Grid{
		{"", "Development", "Total"},
		{"", "Apollo", ""},
		{"alice", "8", "8"},
		{"bob", "16", "16"},
	}

	assert.Equal(t, expected, result)
}

func TestBuildOverviewSecondWeekColumn(t *testing.T) {
	overview := Overview{
		WeekRow:       0,
		TypeColumn:    0,
		ProjectColumn: 1,
		PersonColumn:  2,
	}

	grid, _, err := overview.Build(planningGrid(), 4)
	require.NoError(t, err)

	expected := Grid{
		{"", "Development", "Development", "Operations", "Total"},
		{"", "Apollo", "Hermes", "Support", ""},
		{"alice", "6", "", "4", "10"},
		{"bob", "4", "", "", "4"},
		{"carol", "", "2", "", "2"},
	}

	assert.Equal(t, expected, grid)
}

func TestBuildOverviewWithoutSeparatorRowFails(t *testing.T) {
	grid := Grid{
		{"", "", "", "1"},
		{"Development", "Apollo", "alice", "8"},
	}

	overview := Overview{WeekRow: 0, ProjectColumn: 1, PersonColumn: 2}

	_, _, err := overview.Build(grid, 3)
	require.Error(t, err)

	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

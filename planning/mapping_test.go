package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperReplacesBlankCells(t *testing.T) {
	mapper, err := NewMapper([]Rule{
		{When: `cell == ""`, Value: `"-"`},
	})
	require.NoError(t, err)

	grid := Grid{
		{"8", ""},
		{"", "4"},
	}

	mapped, err := mapper.Apply(grid)
	require.NoError(t, err)

	assert.Equal(t, Grid{{"8", "-"}, {"-", "4"}}, mapped)
	assert.Equal(t, Grid{{"8", ""}, {"", "4"}}, grid, "input grid must not be modified")
}

func TestMapperFirstMatchWins(t *testing.T) {
	mapper, err := NewMapper([]Rule{
		{When: `row == 0`, Value: `cell + "!"`},
		{When: `cell == "x"`, Value: `"y"`},
	})
	require.NoError(t, err)

	mapped, err := mapper.Apply(Grid{
		{"x", "a"},
		{"x", "a"},
	})
	require.NoError(t, err)

	assert.Equal(t, Grid{{"x!", "a!"}, {"y", "a"}}, mapped)
}

func TestMapperWithoutRulesPassesThrough(t *testing.T) {
	mapper, err := NewMapper(nil)
	require.NoError(t, err)

	grid := Grid{{"a", ""}}

	mapped, err := mapper.Apply(grid)
	require.NoError(t, err)

	assert.Equal(t, grid, mapped)
}

func TestMapperRejectsInvalidRule(t *testing.T) {
	_, err := NewMapper([]Rule{
		{When: `cell ==`, Value: `"-"`},
	})
	require.Error(t, err)

	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromValues(t *testing.T) {
	values := [][]any{
		{"alice", 8, ""},
		{"bob", nil},
	}

	expected := Grid{
		{"alice", "8", ""},
		{"bob", ""},
	}

	assert.Equal(t, expected, FromValues(values))
}

func TestValuesRoundTrip(t *testing.T) {
	grid := Grid{
		{"a", "b"},
		{"c"},
	}

	assert.Equal(t, grid, FromValues(grid.Values()))
}

func TestColumnsReturnsWidestRow(t *testing.T) {
	grid := Grid{
		{"a"},
		{"a", "b", "c"},
		{"a", "b"},
	}

	assert.Equal(t, 3, grid.Columns())
	assert.Equal(t, 3, grid.Rows())
}

func TestCellOutsideGridIsBlank(t *testing.T) {
	grid := Grid{
		{"a", "b"},
		{"c"},
	}

	assert.Equal(t, "b", grid.Cell(0, 1))
	assert.Equal(t, "", grid.Cell(1, 1))
	assert.Equal(t, "", grid.Cell(7, 0))
	assert.Equal(t, "", grid.Cell(-1, 0))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Grid{}.IsEmpty())
	assert.True(t, Grid{{"", "  "}, {}}.IsEmpty())
	assert.False(t, Grid{{"", "x"}}.IsEmpty())
}

func TestBlockPadsShortRows(t *testing.T) {
	grid := Grid{
		{"a", "b", "c", "d"},
		{"e", "f"},
		{"g", "h", "i"},
	}

	expected := Grid{
		{"c", "d"},
		{"", ""},
		{"i", ""},
	}

	assert.Equal(t, expected, grid.Block(2, 2))
}

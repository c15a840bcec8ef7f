package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestWeekOffset(t *testing.T) {
	tests := []struct {
		name   string
		today  string
		anchor string
		offset int
	}{
		{"anchor date", "2024-01-01", "2024-01-01", 0},
		{"same week", "2024-01-07", "2024-01-01", 0},
		{"two weeks after", "2024-01-15", "2024-01-01", 2},
		{"day before", "2023-12-31", "2024-01-01", -1},
		{"week before", "2023-12-25", "2024-01-01", -1},
		{"two weeks before", "2023-12-18", "2024-01-01", -2},
		{"mid week", "2024-03-20", "2024-01-01", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.offset, WeekOffset(date(tt.today), date(tt.anchor)))
		})
	}
}

func TestSelectAnchorMode(t *testing.T) {
	grid := Grid{
		{"type", "project", "person", "w1", "w2", "w3", "w4"},
	}

	selector := Selector{
		Mode:   ModeAnchor,
		Anchor: date("2024-01-01"),
		Stride: 1,
		Weeks:  4,
		Lead:   3,
	}

	block, err := selector.Select(date("2024-01-15"), grid)
	require.NoError(t, err)

	assert.Equal(t, 2, block.Offset)
	assert.Equal(t, 5, block.Start)
	assert.Equal(t, 1, block.Width)
	assert.Equal(t, 3, block.Week)
}

func TestSelectAnchorModeWithStride(t *testing.T) {
	grid := Grid{
		make([]string, 12),
	}

	selector := Selector{
		Mode:   ModeAnchor,
		Anchor: date("2024-01-01"),
		Stride: 3,
		Weeks:  3,
		Lead:   2,
	}

	block, err := selector.Select(date("2024-01-08"), grid)
	require.NoError(t, err)

	assert.Equal(t, 1, block.Offset)
	assert.Equal(t, 5, block.Start)
	assert.Equal(t, 3, block.Width)
}

func TestSelectBeforeAnchorFails(t *testing.T) {
	selector := Selector{
		Mode:   ModeAnchor,
		Anchor: date("2024-01-01"),
		Stride: 1,
		Weeks:  52,
	}

	_, err := selector.Select(date("2023-12-25"), Grid{make([]string, 60)})
	require.Error(t, err)

	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

func TestSelectAfterPlanningWindowFails(t *testing.T) {
	selector := Selector{
		Mode:   ModeAnchor,
		Anchor: date("2024-01-01"),
		Stride: 1,
		Weeks:  2,
	}

	_, err := selector.Select(date("2024-01-15"), Grid{make([]string, 60)})
	require.Error(t, err)

	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

func TestSelectBeyondSheetFails(t *testing.T) {
	selector := Selector{
		Mode:   ModeAnchor,
		Anchor: date("2024-01-01"),
		Stride: 1,
		Weeks:  52,
		Lead:   3,
	}

	_, err := selector.Select(date("2024-06-01"), Grid{make([]string, 5)})
	require.Error(t, err)

	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

func TestSelectLookupMode(t *testing.T) {
	grid := Grid{
		{"", "", "", "", "", ""},
		{"", "", "", "1", "2", "3"},
	}

	selector := Selector{
		Mode:      ModeLookup,
		Stride:    1,
		Lead:      3,
		LookupRow: 1,
	}

	// 2024-01-15 falls in ISO week 3
	block, err := selector.Select(date("2024-01-15"), grid)
	require.NoError(t, err)

	assert.Equal(t, 5, block.Start)
	assert.Equal(t, 3, block.Week)
	assert.Equal(t, 2, block.Offset)
}

func TestSelectLookupModeWeekNotFound(t *testing.T) {
	grid := Grid{
		{"", "", "", "1", "2", "3"},
	}

	selector := Selector{
		Mode:      ModeLookup,
		Stride:    1,
		LookupRow: 0,
	}

	_, err := selector.Select(date("2024-06-01"), grid)
	require.Error(t, err)

	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

func TestSelectInvalidMode(t *testing.T) {
	selector := Selector{Mode: "quarterly"}

	_, err := selector.Select(date("2024-01-15"), Grid{})
	require.Error(t, err)

	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

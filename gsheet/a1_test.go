package gsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnName(t *testing.T) {
	tests := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}

	for index, expected := range tests {
		assert.Equal(t, expected, ColumnName(index))
	}
}

func TestColumnIndex(t *testing.T) {
	tests := map[string]int{
		"A":   0,
		"b":   1,
		"Z":   25,
		"AA":  26,
		"ZZ":  701,
		"AAA": 702,
	}

	for name, expected := range tests {
		index, err := ColumnIndex(name)
		require.NoError(t, err)
		assert.Equal(t, expected, index)
	}
}

func TestColumnIndexInvalid(t *testing.T) {
	for _, name := range []string{"", "A1", "Ω"} {
		if _, err := ColumnIndex(name); err == nil {
			t.Errorf("expected error for column name %q", name)
		}
	}
}

func TestParseCell(t *testing.T) {
	row, col, err := ParseCell("B3")
	require.NoError(t, err)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	row, col, err = ParseCell(" aa10 ")
	require.NoError(t, err)
	assert.Equal(t, 9, row)
	assert.Equal(t, 26, col)
}

func TestParseCellInvalid(t *testing.T) {
	for _, cell := range []string{"", "B", "3", "B0", "3B"} {
		if _, _, err := ParseCell(cell); err == nil {
			t.Errorf("expected error for cell reference %q", cell)
		}
	}
}

func TestRange(t *testing.T) {
	assert.Equal(t, "'Week 3'!A1:C4", Range("Week 3", 0, 0, 4, 3))
	assert.Equal(t, "'Log'!B2:B2", Range("Log", 1, 1, 1, 1))
}

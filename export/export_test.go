package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/planningtools/planning-sheets/planning"
)

var grid = planning.Grid{
	{"", "Development", "Total"},
	{"", "Apollo", ""},
	{"alice", "8", "8"},
}

func TestToTSV(t *testing.T) {
	var b bytes.Buffer

	require.NoError(t, ToTSV(&b, grid))

	expected := "\tDevelopment\tTotal\n" +
		"\tApollo\t\n" +
		"alice\t8\t8\n"

	assert.Equal(t, expected, b.String())
}

func TestToXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planning.xlsx")

	require.NoError(t, ToXLSX(path, "Week 3", grid))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, []string{"Week 3"}, f.GetSheetList())

	for _, check := range []struct {
		cell  string
		value string
	}{
		{"B1", "Development"},
		{"C1", "Total"},
		{"B2", "Apollo"},
		{"A3", "alice"},
		{"B3", "8"},
	} {
		v, err := f.GetCellValue("Week 3", check.cell)
		require.NoError(t, err)
		assert.Equal(t, check.value, v, check.cell)
	}
}

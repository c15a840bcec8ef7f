package planning

import (
	"fmt"
	"strings"
)

// Grid is a rectangular region of spreadsheet cell values, row major. Rows may
// be ragged as returned by the Sheets API - accessors pad with blank cells.
type Grid [][]string

// FromValues converts a Sheets API values payload to a Grid, rendering every
// cell as a string.
func FromValues(values [][]any) Grid {
	grid := make(Grid, len(values))

	for i, row := range values {
		grid[i] = make([]string, len(row))
		for j, v := range row {
			if v != nil {
				grid[i][j] = fmt.Sprintf("%v", v)
			}
		}
	}

	return grid
}

// Values converts the grid back to the payload shape expected by the Sheets
// API.
func (g Grid) Values() [][]any {
	values := make([][]any, len(g))

	for i, row := range g {
		values[i] = make([]any, len(row))
		for j, v := range row {
			values[i][j] = v
		}
	}

	return values
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Columns returns the width of the widest row.
func (g Grid) Columns() int {
	columns := 0
	for _, row := range g {
		if len(row) > columns {
			columns = len(row)
		}
	}

	return columns
}

// Cell returns the value at (row, col), or a blank string if the coordinates
// fall outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}

	if col < 0 || col >= len(g[row]) {
		return ""
	}

	return g[row][col]
}

// IsEmpty returns true if the grid has no rows or every cell is blank.
func (g Grid) IsEmpty() bool {
	for _, row := range g {
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				return false
			}
		}
	}

	return true
}

// Block returns the sub-grid comprising 'width' columns starting at column
// 'start', for all rows. Short rows are padded with blank cells so that the
// returned grid is rectangular.
func (g Grid) Block(start, width int) Grid {
	block := make(Grid, len(g))

	for i := range g {
		row := make([]string, width)
		for j := 0; j < width; j++ {
			row[j] = g.Cell(i, start+j)
		}

		block[i] = row
	}

	return block
}

// rowIsEmpty returns true if every cell in row 'row' is blank.
func (g Grid) rowIsEmpty(row int) bool {
	if row < 0 || row >= len(g) {
		return true
	}

	for _, v := range g[row] {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

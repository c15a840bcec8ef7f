package gsheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var cellExpr = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// ColumnName converts a zero based column index to its spreadsheet letter
// name, e.g. 0 -> 'A', 26 -> 'AA'.
func ColumnName(index int) string {
	name := ""

	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}

	return name
}

// ColumnIndex converts a spreadsheet column letter name to its zero based
// index, e.g. 'A' -> 0, 'AA' -> 26.
func ColumnIndex(name string) (int, error) {
	index := 0

	for _, c := range strings.ToUpper(name) {
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("invalid column name '%s'", name)
		}

		index = index*26 + int(c-'A') + 1
	}

	if index == 0 {
		return 0, fmt.Errorf("invalid column name '%s'", name)
	}

	return index - 1, nil
}

// ParseCell parses an A1 cell reference, e.g. 'B3', to zero based (row, col)
// coordinates.
func ParseCell(cell string) (int, int, error) {
	match := cellExpr.FindStringSubmatch(strings.TrimSpace(cell))
	if match == nil {
		return 0, 0, fmt.Errorf("invalid cell reference '%s' - expected something like 'A1'", cell)
	}

	col, err := ColumnIndex(match[1])
	if err != nil {
		return 0, 0, err
	}

	row, err := strconv.Atoi(match[2])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid cell reference '%s' - expected something like 'A1'", cell)
	}

	return row - 1, col, nil
}

// Range formats a rectangular region as an A1 range, from the zero based top
// left (row, col) coordinates and the region shape.
func Range(sheet string, row, col, rows, columns int) string {
	topleft := fmt.Sprintf("%s%d", ColumnName(col), row+1)
	bottomright := fmt.Sprintf("%s%d", ColumnName(col+columns-1), row+rows)

	return fmt.Sprintf("'%s'!%s:%s", sheet, topleft, bottomright)
}

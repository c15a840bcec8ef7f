package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/planningtools/planning-sheets/planning"
)

// ToXLSX writes the grid to a worksheet in a new Excel workbook at 'path'.
func ToXLSX(path, sheet string, grid planning.Grid) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}

	f.SetActiveSheet(index)

	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	for i, row := range grid {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}

		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error writing workbook (%v)", err)
	}

	return nil
}

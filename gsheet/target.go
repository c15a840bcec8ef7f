package gsheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/planningtools/planning-sheets/planning"
)

// Target writes the generated week planning to a worksheet in the target
// spreadsheet. The worksheet name may contain a '{week}' placeholder which is
// replaced with the ISO week number of the run.
type Target struct {
	SpreadsheetID string
	Sheet         string
	Cell          string // top left anchor of the write, e.g. 'A1'
	Recreate      bool   // delete and re-add the worksheet on every run
	Format        bool   // apply the overview formatting after writing
	DryRun        bool

	client *Client
}

// Target returns a writer for the configured target worksheet.
func (c *Client) Target(spreadsheetID, sheet, cell string) *Target {
	return &Target{
		SpreadsheetID: spreadsheetID,
		Sheet:         sheet,
		Cell:          cell,
		client:        c,
	}
}

// Write replaces the target range with the grid. The write replaces the full
// range in a single update - a rejected update leaves the worksheet in its
// prior state.
func (t *Target) Write(ctx context.Context, week int, grid planning.Grid) error {
	title := strings.ReplaceAll(t.Sheet, "{week}", strconv.Itoa(week))

	row, col, err := ParseCell(t.Cell)
	if err != nil {
		return planning.Configurationf("invalid target cell (%v)", err)
	}

	area := Range(title, row, col, grid.Rows(), grid.Columns())

	if t.DryRun {
		t.client.log.Info().Str("range", area).Int("rows", grid.Rows()).Int("columns", grid.Columns()).Msg("dry run - skipping write")
		return nil
	}

	spreadsheet, err := t.client.getSpreadsheet(ctx, t.SpreadsheetID)
	if err != nil {
		return &planning.TargetWriteError{Spreadsheet: t.SpreadsheetID, Range: area, Err: err}
	}

	sheetID, err := t.prepare(ctx, spreadsheet, title, grid)
	if err != nil {
		return err
	}

	rq := sheets.ValueRange{
		Range:  area,
		Values: grid.Values(),
	}

	if _, err := t.client.sheets.Spreadsheets.Values.Update(t.SpreadsheetID, area, &rq).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return &planning.TargetWriteError{Spreadsheet: t.SpreadsheetID, Range: area, Err: err}
	}

	t.client.log.Info().Str("range", area).Int("rows", grid.Rows()).Int("columns", grid.Columns()).Msg("updated target worksheet")

	if t.Format {
		if err := t.client.formatOverview(ctx, t.SpreadsheetID, sheetID, grid); err != nil {
			return &planning.TargetWriteError{Spreadsheet: t.SpreadsheetID, Range: area, Err: fmt.Errorf("error formatting worksheet (%v)", err)}
		}
	}

	return nil
}

// prepare creates the target worksheet if it does not exist, or deletes and
// re-adds it when Recreate is set. Otherwise any values from a previous run
// are cleared so that the update is a full replacement.
func (t *Target) prepare(ctx context.Context, spreadsheet *sheets.Spreadsheet, title string, grid planning.Grid) (int64, error) {
	sheet, exists := getSheet(spreadsheet, title)

	if exists && !t.Recreate {
		if err := t.clear(ctx, sheet, title); err != nil {
			return 0, err
		}

		return sheet.Properties.SheetId, nil
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{}

	if exists {
		t.client.log.Info().Str("worksheet", title).Msg("worksheet already exists - replacing")

		rq.Requests = append(rq.Requests, &sheets.Request{
			DeleteSheet: &sheets.DeleteSheetRequest{
				SheetId: sheet.Properties.SheetId,
			},
		})
	}

	rows := int64(grid.Rows())
	columns := int64(grid.Columns())
	if rows < 100 {
		rows = 100
	}
	if columns < 26 {
		columns = 26
	}

	rq.Requests = append(rq.Requests, &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: title,
				Index: 0,
				GridProperties: &sheets.GridProperties{
					RowCount:    rows,
					ColumnCount: columns,
				},
			},
		},
	})

	response, err := t.client.sheets.Spreadsheets.BatchUpdate(t.SpreadsheetID, &rq).Context(ctx).Do()
	if err != nil {
		return 0, &planning.TargetWriteError{
			Spreadsheet: t.SpreadsheetID,
			Range:       title,
			Err:         fmt.Errorf("unable to create worksheet (%v)", err),
		}
	}

	for _, reply := range response.Replies {
		if reply.AddSheet != nil {
			return reply.AddSheet.Properties.SheetId, nil
		}
	}

	return 0, &planning.TargetWriteError{
		Spreadsheet: t.SpreadsheetID,
		Range:       title,
		Err:         fmt.Errorf("no worksheet in create response"),
	}
}

// clear removes the values from a previous run, from the anchor cell to the
// bottom right of the worksheet.
func (t *Target) clear(ctx context.Context, sheet *sheets.Sheet, title string) error {
	rows := sheet.Properties.GridProperties.RowCount
	columns := sheet.Properties.GridProperties.ColumnCount

	row, col, err := ParseCell(t.Cell)
	if err != nil {
		return planning.Configurationf("invalid target cell (%v)", err)
	}

	area := Range(title, row, col, int(rows)-row, int(columns)-col)

	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{area},
	}

	if _, err := t.client.sheets.Spreadsheets.Values.BatchClear(t.SpreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return &planning.TargetWriteError{
			Spreadsheet: t.SpreadsheetID,
			Range:       area,
			Err:         fmt.Errorf("unable to clear previous values (%v)", err),
		}
	}

	return nil
}

package gsheet

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/planningtools/planning-sheets/planning"
)

// RunLog appends a summary row for each completed run to a log worksheet and
// prunes entries older than the retention period.
type RunLog struct {
	SpreadsheetID string
	Range         string // e.g. 'Log!A1:E'
	Retention     int    // days

	client *Client
}

// Entry is a single run log record.
type Entry struct {
	Timestamp time.Time
	RunID     string
	Week      int
	Rows      int
	Columns   int
}

// RunLog returns a run log bound to the given worksheet range.
func (c *Client) RunLog(spreadsheetID, area string, retention int) *RunLog {
	return &RunLog{
		SpreadsheetID: spreadsheetID,
		Range:         area,
		Retention:     retention,
		client:        c,
	}
}

// Append writes the run summary to the log worksheet.
func (l *RunLog) Append(ctx context.Context, entry Entry) error {
	rows := sheets.ValueRange{
		Values: [][]any{
			{
				entry.Timestamp.Format("2006-01-02 15:04:05"),
				entry.RunID,
				entry.Week,
				entry.Rows,
				entry.Columns,
			},
		},
	}

	if _, err := l.client.sheets.Spreadsheets.Values.Append(l.SpreadsheetID, l.Range, &rows).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return &planning.TargetWriteError{
			Spreadsheet: l.SpreadsheetID,
			Range:       l.Range,
			Err:         fmt.Errorf("error writing run log to worksheet (%v)", err),
		}
	}

	return nil
}

// Prune deletes log records older than the retention period.
func (l *RunLog) Prune(ctx context.Context) error {
	if l.Retention <= 0 {
		return nil
	}

	title, offset, err := parseLogRange(l.Range)
	if err != nil {
		return planning.Configurationf("%v", err)
	}

	spreadsheet, err := l.client.getSpreadsheet(ctx, l.SpreadsheetID)
	if err != nil {
		return &planning.TargetWriteError{Spreadsheet: l.SpreadsheetID, Range: l.Range, Err: err}
	}

	sheet, ok := getSheet(spreadsheet, title)
	if !ok {
		return &planning.TargetWriteError{
			Spreadsheet: l.SpreadsheetID,
			Range:       l.Range,
			Err:         fmt.Errorf("no worksheet '%s'", title),
		}
	}

	response, err := l.client.sheets.Spreadsheets.Values.Get(l.SpreadsheetID, l.Range).Context(ctx).Do()
	if err != nil {
		return &planning.TargetWriteError{
			Spreadsheet: l.SpreadsheetID,
			Range:       l.Range,
			Err:         fmt.Errorf("unable to retrieve data from log worksheet (%v)", err),
		}
	}

	cutoff := time.Now().AddDate(0, 0, -l.Retention).Truncate(24 * time.Hour)
	stale := []int{}

	for row, record := range response.Values {
		if len(record) == 0 {
			continue
		}

		if v, ok := record[0].(string); ok {
			if timestamp, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local); err == nil && timestamp.Before(cutoff) {
				stale = append(stale, row)
			}
		}
	}

	if len(stale) == 0 {
		return nil
	}

	sort.Ints(stale)

	rq := sheets.BatchUpdateSpreadsheetRequest{}
	deleted := 0

	// ... row indices in the response are relative to the start of the log
	// range, not the worksheet
	for _, r := range consecutive(stale) {
		rq.Requests = append(rq.Requests, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheet.Properties.SheetId,
					Dimension:  "ROWS",
					StartIndex: int64(offset + r.start - deleted),
					EndIndex:   int64(offset + r.end - deleted + 1),
				},
			},
		})

		deleted += r.end - r.start + 1
	}

	if _, err := l.client.sheets.Spreadsheets.BatchUpdate(l.SpreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return &planning.TargetWriteError{
			Spreadsheet: l.SpreadsheetID,
			Range:       l.Range,
			Err:         fmt.Errorf("unable to prune run log (%v)", err),
		}
	}

	l.client.log.Info().Int("records", deleted).Str("cutoff", cutoff.Format("2006-01-02")).Msg("pruned run log")

	return nil
}

var logRangeExpr = regexp.MustCompile(`^'?([^'!]+)'?!([A-Za-z]+)([0-9]*)(?::.*)?$`)

// parseLogRange extracts the worksheet title and the zero based start row from
// a log range, e.g. 'Log!A2:E' -> ('Log', 1). A range without a row number
// starts at the top of the worksheet.
func parseLogRange(area string) (string, int, error) {
	match := logRangeExpr.FindStringSubmatch(area)
	if match == nil {
		return "", 0, fmt.Errorf("invalid log range '%s' - expected something like 'Log!A1:E'", area)
	}

	row := 0
	if match[3] != "" {
		n, err := strconv.Atoi(match[3])
		if err != nil || n < 1 {
			return "", 0, fmt.Errorf("invalid log range '%s' - expected something like 'Log!A1:E'", area)
		}

		row = n - 1
	}

	return match[1], row, nil
}

// consecutive groups a sorted list of row indices into runs of adjacent rows.
func consecutive(rows []int) []span {
	if len(rows) == 0 {
		return nil
	}

	spans := []span{{start: rows[0], end: rows[0]}}
	for _, row := range rows[1:] {
		if row == spans[len(spans)-1].end+1 {
			spans[len(spans)-1].end = row
		} else {
			spans = append(spans, span{start: row, end: row})
		}
	}

	return spans
}

package gsheet

import (
	"context"
	"fmt"

	"github.com/planningtools/planning-sheets/planning"
)

// Source reads the configured source range from a spreadsheet.
type Source struct {
	SpreadsheetID string
	Sheet         string
	Range         string

	client *Client
}

// Source returns a reader for the configured source range.
func (c *Client) Source(spreadsheetID, sheet, area string) *Source {
	return &Source{
		SpreadsheetID: spreadsheetID,
		Sheet:         sheet,
		Range:         area,
		client:        c,
	}
}

// Read fetches the source range as a grid of cell values.
func (s *Source) Read(ctx context.Context) (planning.Grid, error) {
	area := fmt.Sprintf("'%s'!%s", s.Sheet, s.Range)

	response, err := s.client.sheets.Spreadsheets.Values.Get(s.SpreadsheetID, area).Context(ctx).Do()
	if err != nil {
		return nil, &planning.SourceUnavailableError{
			Spreadsheet: s.SpreadsheetID,
			Range:       area,
			Err:         err,
		}
	}

	s.client.log.Info().Str("range", area).Int("rows", len(response.Values)).Msg("retrieved source data")

	return planning.FromValues(response.Values), nil
}

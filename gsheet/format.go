package gsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/planningtools/planning-sheets/planning"
)

// Background colours for the merged project type header cells, applied in
// rotation.
var palette = []*sheets.Color{
	rgb(224, 187, 228),
	rgb(149, 125, 173),
	rgb(210, 145, 188),
	rgb(254, 200, 216),
	rgb(255, 223, 211),
	rgb(193, 231, 227),
	rgb(249, 240, 194),
	rgb(177, 212, 236),
	rgb(143, 193, 169),
}

// gradientMax is the colour of the top end of the hours gradient.
var gradientMax = rgb(102, 205, 170)

func rgb(r, g, b int) *sheets.Color {
	return &sheets.Color{
		Red:   float64(r) / 256,
		Green: float64(g) / 256,
		Blue:  float64(b) / 256,
	}
}

type span struct {
	start int // first column, inclusive
	end   int // last column, inclusive
}

// headerSpans returns the column spans of consecutive identical project types
// in the first header row. The scan stops at the 'Total' column.
func headerSpans(header []string) []span {
	spans := []span{}
	previous := ""

	for col := 1; col < len(header); col++ {
		kind := header[col]
		if kind == "Total" {
			break
		}

		if kind != previous || len(spans) == 0 {
			spans = append(spans, span{start: col, end: col})
		} else {
			spans[len(spans)-1].end = col
		}

		previous = kind
	}

	return spans
}

// formatOverview applies the week overview formatting to the worksheet: merged
// and coloured project type headers, bold/centred header rows, a bold person
// column, frozen headers, wrapped project titles and a colour gradient over
// the hours region.
func (c *Client) formatOverview(ctx context.Context, spreadsheetID string, sheetID int64, grid planning.Grid) error {
	if grid.Rows() < 2 {
		return fmt.Errorf("overview grid is missing the header rows")
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{}

	// ... merge and colour consecutive project type header cells
	for i, s := range headerSpans(grid[0]) {
		region := &sheets.GridRange{
			SheetId:          sheetID,
			StartRowIndex:    0,
			EndRowIndex:      1,
			StartColumnIndex: int64(s.start),
			EndColumnIndex:   int64(s.end + 1),
		}

		rq.Requests = append(rq.Requests,
			&sheets.Request{
				MergeCells: &sheets.MergeCellsRequest{
					Range:     region,
					MergeType: "MERGE_ALL",
				},
			},
			&sheets.Request{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: region,
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							BackgroundColor: palette[i%len(palette)],
						},
					},
					Fields: "userEnteredFormat.backgroundColor",
				},
			})
	}

	// ... bold and centre the two header rows
	rq.Requests = append(rq.Requests, &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:       sheetID,
				StartRowIndex: 0,
				EndRowIndex:   2,
			},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					HorizontalAlignment: "CENTER",
					TextFormat:          &sheets.TextFormat{Bold: true},
				},
			},
			Fields: "userEnteredFormat(horizontalAlignment,textFormat.bold)",
		},
	})

	// ... bold the person column
	rq.Requests = append(rq.Requests, &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:          sheetID,
				StartColumnIndex: 0,
				EndColumnIndex:   1,
			},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					TextFormat: &sheets.TextFormat{Bold: true},
				},
			},
			Fields: "userEnteredFormat.textFormat.bold",
		},
	})

	// ... wrap the project title row
	rq.Requests = append(rq.Requests, &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:       sheetID,
				StartRowIndex: 1,
				EndRowIndex:   2,
			},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					WrapStrategy: "WRAP",
				},
			},
			Fields: "userEnteredFormat.wrapStrategy",
		},
	})

	// ... freeze the header rows and the person column
	rq.Requests = append(rq.Requests, &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: sheetID,
				GridProperties: &sheets.GridProperties{
					FrozenRowCount:    2,
					FrozenColumnCount: 1,
				},
			},
			Fields: "gridProperties(frozenRowCount,frozenColumnCount)",
		},
	})

	// ... gradient over the hours region
	rq.Requests = append(rq.Requests, &sheets.Request{
		AddConditionalFormatRule: &sheets.AddConditionalFormatRuleRequest{
			Index: 0,
			Rule: &sheets.ConditionalFormatRule{
				Ranges: []*sheets.GridRange{
					{
						SheetId:          sheetID,
						StartRowIndex:    2,
						StartColumnIndex: 1,
					},
				},
				GradientRule: &sheets.GradientRule{
					Minpoint: &sheets.InterpolationPoint{
						Color: &sheets.Color{Red: 1, Green: 1, Blue: 1},
						Type:  "NUMBER",
						Value: "-7",
					},
					Maxpoint: &sheets.InterpolationPoint{
						Color: gradientMax,
						Type:  "NUMBER",
						Value: "40",
					},
				},
			},
		},
	})

	if _, err := c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	c.log.Info().Int64("sheet", sheetID).Msg("applied formatting to worksheet")

	return nil
}

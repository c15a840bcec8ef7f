package gsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets and Drive services used by the application.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
	log    zerolog.Logger
}

// NewClient authenticates against the Google APIs with the supplied credential
// and token files and returns a client handle. The Drive service is only
// initialised when the Drive scope is requested (revision tracking).
func NewClient(ctx context.Context, credentials, tokens string, log zerolog.Logger, scopes ...string) (*Client, error) {
	httpClient, err := authorize(ctx, credentials, tokens, scopes...)
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	client := Client{
		sheets: service,
		log:    log,
	}

	for _, scope := range scopes {
		if scope == ScopeDriveMetadata {
			gdrive, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
			if err != nil {
				return nil, fmt.Errorf("unable to create new Drive client (%v)", err)
			}

			client.drive = gdrive
		}
	}

	return &client, nil
}

// getSpreadsheet fetches the spreadsheet metadata (worksheets, grid
// properties).
func (c *Client) getSpreadsheet(ctx context.Context, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := c.sheets.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

// getSheet finds the worksheet with the given title, ignoring case and
// whitespace.
func getSheet(spreadsheet *sheets.Spreadsheet, title string) (*sheets.Sheet, bool) {
	for _, sheet := range spreadsheet.Sheets {
		if strings.EqualFold(strings.TrimSpace(sheet.Properties.Title), strings.TrimSpace(title)) {
			return sheet, true
		}
	}

	return nil, false
}

// Package gsheets wraps the spreadsheet remote store: a raw range client and
// the table-shaped operations built on top of it.
package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Tab is one named sheet within the spreadsheet, with its internal id.
type Tab struct {
	Title   string
	SheetID int64
}

// Client talks to one spreadsheet through the Sheets API. It implements
// RangeStore and TabAdmin.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// GetRange reads a bounded range and returns its cells as strings. Absent
// cells inside populated rows come back empty, not as errors.
func (c *Client) GetRange(ctx context.Context, rng string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow appends row past the last populated row of the table anchored at
// rng.
func (c *Client) AppendRow(ctx context.Context, rng string, row []string) error {
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{toInterfaceRow(row)},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return err
}

// UpdateRange overwrites the region anchored at rng with rows.
func (c *Client) UpdateRange(ctx context.Context, rng string, rows [][]string) error {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, toInterfaceRow(row))
	}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	return err
}

// ClearRange blanks every cell in rng.
func (c *Client) ClearRange(ctx context.Context, rng string) error {
	_, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// AddTab creates a new named sheet. The API rejects duplicate titles; that
// failure is returned as-is.
func (c *Client) AddTab(ctx context.Context, title string) error {
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}).Context(ctx).Do()
	return err
}

// DeleteTab removes the sheet with the given internal id.
func (c *Client) DeleteTab(ctx context.Context, sheetID int64) error {
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteSheet: &sheets.DeleteSheetRequest{SheetId: sheetID},
		}},
	}).Context(ctx).Do()
	return err
}

// ListTabs returns the title and internal id of every sheet in the document.
func (c *Client) ListTabs(ctx context.Context) ([]Tab, error) {
	doc, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	tabs := make([]Tab, 0, len(doc.Sheets))
	for _, s := range doc.Sheets {
		if s.Properties == nil {
			continue
		}
		tabs = append(tabs, Tab{Title: s.Properties.Title, SheetID: s.Properties.SheetId})
	}
	return tabs, nil
}

func toInterfaceRow(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, cell := range row {
		out[i] = cell
	}
	return out
}

package sheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the spreadsheet values API for one spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, spreadsheetID, credentialsJSON string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// TransportError is any failure during a store read or write. Fatal for
// the run; the checkpoint is not advanced past it.
type TransportError struct {
	Op    string
	Range string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("store %s %s failed: %v", e.Op, e.Range, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RangeWrite is one A1 range with its replacement values.
type RangeWrite struct {
	Range  string
	Values [][]string
}

// ReadColumn returns the first column of the range, row by row. Blank
// trailing cells are omitted by the API.
func (c *Client) ReadColumn(ctx context.Context, rng string) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		MajorDimension("COLUMNS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, &TransportError{Op: "read", Range: rng, Err: err}
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	col := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		col = append(col, fmt.Sprintf("%v", cell))
	}
	return col, nil
}

// ReadRange returns the cell values of a range, row-major.
func (c *Client) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &TransportError{Op: "read", Range: rng, Err: err}
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprintf("%v", cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// UpdateRange writes one range with literal (RAW) interpretation.
func (c *Client) UpdateRange(ctx context.Context, rng string, values [][]string) error {
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, &sheets.ValueRange{
		Values: toInterfaceRows(values),
	}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return &TransportError{Op: "update", Range: rng, Err: err}
	}
	return nil
}

// BatchUpdate submits all range writes as one request with user-entered
// interpretation. A transport failure here can leave some ranges
// applied and others not; the run treats that as fatal.
func (c *Client) BatchUpdate(ctx context.Context, writes []RangeWrite) error {
	data := make([]*sheets.ValueRange, 0, len(writes))
	for _, w := range writes {
		data = append(data, &sheets.ValueRange{
			Range:  w.Range,
			Values: toInterfaceRows(w.Values),
		})
	}
	_, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}).
		Context(ctx).
		Do()
	if err != nil {
		return &TransportError{Op: "batch update", Range: fmt.Sprintf("%d ranges", len(writes)), Err: err}
	}
	return nil
}

func toInterfaceRows(values [][]string) [][]any {
	rows := make([][]any, len(values))
	for i, row := range values {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		rows[i] = cells
	}
	return rows
}

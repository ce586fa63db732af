package gsheets

import (
	"context"
	"fmt"
	"strings"

	"school_admin_backend/apperr"
)

// RangeStore is the raw capability set the spreadsheet remote offers. Client
// implements it; tests substitute an in-memory fake.
type RangeStore interface {
	GetRange(ctx context.Context, rng string) ([][]string, error)
	AppendRow(ctx context.Context, rng string, row []string) error
	UpdateRange(ctx context.Context, rng string, rows [][]string) error
	ClearRange(ctx context.Context, rng string) error
}

// TableData is a tab read as a table: row 0 split off as headers, every data
// row padded to header width.
type TableData struct {
	Headers []string
	Rows    [][]string
}

// Adapter exposes table-shaped operations over named tabs. The remote store
// has no row-level patch primitive, so updates are read-modify-write: callers
// read the full region, mutate one row, and write the full region back.
type Adapter struct {
	store RangeStore
}

func NewAdapter(store RangeStore) *Adapter {
	return &Adapter{store: store}
}

// readSpan bounds every tab read; date columns grow to the right well within
// it.
const readSpan = "A1:ZZ"

// ReadRows reads the whole populated region of tab. An empty tab yields empty
// headers and no rows.
func (a *Adapter) ReadRows(ctx context.Context, tab string) (TableData, error) {
	rows, err := a.store.GetRange(ctx, fmt.Sprintf("%s!%s", tab, readSpan))
	if err != nil {
		return TableData{}, apperr.Remote(fmt.Sprintf("read %s", tab), err)
	}
	if len(rows) == 0 {
		return TableData{}, nil
	}
	data := TableData{Headers: rows[0]}
	for _, row := range rows[1:] {
		padded := make([]string, len(data.Headers))
		copy(padded, row)
		data.Rows = append(data.Rows, padded)
	}
	return data, nil
}

// AppendRow appends row past the last populated row of tab. The adapter does
// not check key uniqueness; callers enforce it where required.
func (a *Adapter) AppendRow(ctx context.Context, tab string, row []string) error {
	if err := a.store.AppendRow(ctx, fmt.Sprintf("%s!A1", tab), row); err != nil {
		return apperr.Remote(fmt.Sprintf("append to %s", tab), err)
	}
	return nil
}

// ReplaceRange overwrites the full data region of tab, headers included.
func (a *Adapter) ReplaceRange(ctx context.Context, tab string, data TableData) error {
	region := make([][]string, 0, len(data.Rows)+1)
	region = append(region, data.Headers)
	region = append(region, data.Rows...)
	if err := a.store.UpdateRange(ctx, fmt.Sprintf("%s!A1", tab), region); err != nil {
		return apperr.Remote(fmt.Sprintf("replace %s", tab), err)
	}
	return nil
}

// ClearTab blanks the whole populated region of tab.
func (a *Adapter) ClearTab(ctx context.Context, tab string) error {
	if err := a.store.ClearRange(ctx, fmt.Sprintf("%s!%s", tab, readSpan)); err != nil {
		return apperr.Remote(fmt.Sprintf("clear %s", tab), err)
	}
	return nil
}

// FindRowByKey scans rows for the first one whose keyCol cell equals key
// after trimming surrounding whitespace on both sides of the comparison.
func FindRowByKey(rows [][]string, keyCol int, key string) (int, error) {
	want := strings.TrimSpace(key)
	for i, row := range rows {
		if keyCol < len(row) && strings.TrimSpace(row[keyCol]) == want {
			return i, nil
		}
	}
	return 0, apperr.NotFound("no row with key %q", key)
}

// Package gsheets persists a rowio.Table in a Google Sheets tab, for
// operators who keep the ledgers in a shared spreadsheet instead of local
// files. Authentication uses a Service Account, same variables as any other
// Google-backed deployment.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/juanchocce/proyecto-restaurante/internal/rowio"
)

type Table struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheet         string
}

var _ rowio.Table = (*Table)(nil)

// New returns a table bound to one tab of the given spreadsheet.
func New(svc *gsheet.Service, spreadsheetID, sheet string) *Table {
	return &Table{svc: svc, spreadsheetID: spreadsheetID, sheet: sheet}
}

// NewService creates a Sheets service from Service Account credentials.
// Uses GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewService(ctx context.Context) (*gsheet.Service, error) {
	saJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	saFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if saJSON == "" && saFile == "" {
		saFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case saJSON != "":
		credentialsJSON = []byte(saJSON)
	case saFile != "":
		b, err := os.ReadFile(saFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = b
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

func (t *Table) ReadAll(ctx context.Context) ([][]string, error) {
	rng := fmt.Sprintf("%s!A:Z", t.sheet)
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = toStrings(row)
	}
	return rows, nil
}

func (t *Table) WriteAll(ctx context.Context, rows [][]string) error {
	rng := fmt.Sprintf("%s!A:Z", t.sheet)
	if _, err := t.svc.Spreadsheets.Values.Clear(t.spreadsheetID, rng, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", rng, err)
	}
	values := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	vr := &gsheet.ValueRange{Values: values}
	_, err := t.svc.Spreadsheets.Values.Update(t.spreadsheetID, fmt.Sprintf("%s!A1", t.sheet), vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", t.sheet, err)
	}
	return nil
}

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		if s, ok := v.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Package excel persists a rowio.Table as an .xlsx workbook on disk, the
// format the historical ledgers were kept in. Every WriteAll rebuilds the
// workbook from scratch and saves it wholesale.
package excel

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

type Table struct {
	path  string
	sheet string
}

// New returns a table stored at path with the given sheet title.
func New(path, sheet string) *Table {
	return &Table{path: path, sheet: sheet}
}

// ReadAll loads the first sheet of the workbook as a cell matrix. A missing
// file is not an error: the ledger simply starts empty.
func (t *Table) ReadAll(_ context.Context) ([][]string, error) {
	if _, err := os.Stat(t.path); os.IsNotExist(err) {
		return nil, nil
	}
	f, err := excelize.OpenFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", t.path, err)
	}
	defer f.Close()

	// Historical files may carry a different sheet title; read whatever the
	// first sheet is rather than failing on the name.
	name := f.GetSheetName(0)
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	return rows, nil
}

// WriteAll replaces the workbook with a single sheet holding rows. The write
// fails if the file is exclusively locked by another program (a spreadsheet
// application holding it open); the caller decides what to do about that.
func (t *Table) WriteAll(_ context.Context, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), t.sheet); err != nil {
		return fmt.Errorf("name sheet %s: %w", t.sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(t.sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(t.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", t.path, err)
	}
	return nil
}

package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
	"github.com/juanchocce/proyecto-restaurante/internal/rowio"
)

// Codec maps one record kind onto a fixed column schema. Defaults carries
// one cell per column; rows from older, narrower schema versions are padded
// with those cells before decoding, so the migration rules are data rather
// than parsing logic.
type Codec[R Record] struct {
	Header   []string
	Defaults []string
	Decode   func(row []string) (R, error)
	Encode   func(r R) []string
}

// TableBackend adapts any rowio.Table (xlsx file, Google Sheets tab,
// in-memory matrix) into a record-level Backend using a Codec.
type TableBackend[R Record] struct {
	table rowio.Table
	codec Codec[R]
}

func NewTableBackend[R Record](table rowio.Table, codec Codec[R]) *TableBackend[R] {
	return &TableBackend[R]{table: table, codec: codec}
}

// Load reads every data row, skipping the header. Rows without a primary
// identifier are ignored silently; rows that fail to decode are reported as
// RowIssues and dropped without aborting the load.
func (b *TableBackend[R]) Load(ctx context.Context) ([]R, []RowIssue, error) {
	rows, err := b.table.ReadAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", core.ErrPersistence, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var (
		records []R
		issues  []RowIssue
	)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		padded := padRow(row, b.codec.Defaults)
		r, err := b.codec.Decode(padded)
		if err != nil {
			issues = append(issues, RowIssue{Row: rowNum, Err: err})
			continue
		}
		records = append(records, r)
	}
	return records, issues, nil
}

// Save serializes the full record set: header row first, then one row per
// record in the order given.
func (b *TableBackend[R]) Save(ctx context.Context, records []R) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, append([]string(nil), b.codec.Header...))
	for _, r := range records {
		rows = append(rows, b.codec.Encode(r))
	}
	if err := b.table.WriteAll(ctx, rows); err != nil {
		return fmt.Errorf("%w: %v", core.ErrPersistence, err)
	}
	return nil
}

func padRow(row, defaults []string) []string {
	out := append([]string(nil), row...)
	for len(out) < len(defaults) {
		out = append(out, defaults[len(out)])
	}
	return out
}

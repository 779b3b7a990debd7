// Package ledger implements the two record collections of the business (the
// orders sold and the expenses purchased): monotonic id assignment, newest-
// first ordering, and a synchronous whole-snapshot rewrite through an
// injected persistence backend on every mutation.
package ledger

import (
	"context"
	"fmt"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
)

// Record is the shape both ledgers share.
type Record interface {
	RecordID() int64
	RecordTime() core.Timestamp
}

// RowIssue describes one historical row discarded during a tolerant load.
// The load itself never fails because of a bad row; callers get the full
// list of discards for diagnostics.
type RowIssue struct {
	Row int // 1-based row number in the source document
	Err error
}

func (i RowIssue) String() string {
	return fmt.Sprintf("row %d: %v", i.Row, i.Err)
}

// Backend is the persistence strategy a Store writes through. Save always
// receives the complete record set; partial writes do not exist in this
// model.
type Backend[R Record] interface {
	Load(ctx context.Context) ([]R, []RowIssue, error)
	Save(ctx context.Context, records []R) error
}

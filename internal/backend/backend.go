// Package backend selects and wires the persistence strategy for both
// ledgers from configuration: xlsx workbooks (the default), an embedded
// sqlite database, a shared Google Sheets document, or plain memory.
package backend

import "context"

// Type identifies a persistence backend.
type Type string

const (
	ExcelBackend  Type = "excel"
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
	MemoryBackend Type = "memory"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case ExcelBackend, SQLiteBackend, SheetsBackend, MemoryBackend:
		return true
	}
	return false
}

// Config holds what each backend kind needs to come up.
type Config struct {
	Type Type

	// excel
	OrdersFile   string
	ExpensesFile string

	// sqlite
	SQLiteDBPath string

	// sheets
	GoogleSpreadsheetID string
	OrdersSheetName     string
	ExpensesSheetName   string
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Factory creates ledger backends from a Config.
type Factory interface {
	Create(ctx context.Context, config Config) (*Result, error)
}

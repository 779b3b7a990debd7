package backend

import (
	"context"
	"fmt"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
	"github.com/juanchocce/proyecto-restaurante/internal/ledger"
	applog "github.com/juanchocce/proyecto-restaurante/internal/log"
	"github.com/juanchocce/proyecto-restaurante/internal/rowio/excel"
	"github.com/juanchocce/proyecto-restaurante/internal/rowio/gsheets"
	"github.com/juanchocce/proyecto-restaurante/internal/rowio/memory"
	"github.com/juanchocce/proyecto-restaurante/internal/storage"
)

// Sheet titles written into xlsx workbooks; historical files used the same
// names.
const (
	ordersSheetTitle   = "Historial Pedidos"
	expensesSheetTitle = "Historial Gastos"
)

// Result carries the pair of ledger backends plus an optional cleanup.
type Result struct {
	Orders   ledger.Backend[core.Order]
	Expenses ledger.Backend[core.Expense]
	Cleanup  CleanupFunc
}

type DefaultFactory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) *DefaultFactory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &DefaultFactory{logger: logger.WithComponent(applog.ComponentStorage)}
}

func (f *DefaultFactory) Create(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case ExcelBackend:
		return f.createExcel(config)
	case SQLiteBackend:
		return f.createSQLite(config)
	case SheetsBackend:
		return f.createSheets(ctx, config)
	default:
		return f.createMemory(config)
	}
}

func (f *DefaultFactory) createExcel(config Config) (*Result, error) {
	f.logger.Info("initialized excel backend",
		"orders_file", config.OrdersFile, "expenses_file", config.ExpensesFile)
	return &Result{
		Orders:   ledger.NewTableBackend(excel.New(config.OrdersFile, ordersSheetTitle), ledger.OrderCodec()),
		Expenses: ledger.NewTableBackend(excel.New(config.ExpensesFile, expensesSheetTitle), ledger.ExpenseCodec()),
	}, nil
}

func (f *DefaultFactory) createSQLite(config Config) (*Result, error) {
	db, err := storage.Open(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite backend: %w", err)
	}
	f.logger.Info("initialized sqlite backend", "db_path", config.SQLiteDBPath)
	return &Result{
		Orders:   db.Orders(),
		Expenses: db.Expenses(),
		Cleanup:  db.Close,
	}, nil
}

func (f *DefaultFactory) createSheets(ctx context.Context, config Config) (*Result, error) {
	svc, err := gsheets.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize sheets backend: %w", err)
	}
	f.logger.Info("initialized google sheets backend",
		"spreadsheet_id", config.GoogleSpreadsheetID)
	return &Result{
		Orders: ledger.NewTableBackend(
			gsheets.New(svc, config.GoogleSpreadsheetID, config.OrdersSheetName), ledger.OrderCodec()),
		Expenses: ledger.NewTableBackend(
			gsheets.New(svc, config.GoogleSpreadsheetID, config.ExpensesSheetName), ledger.ExpenseCodec()),
	}, nil
}

func (f *DefaultFactory) createMemory(_ Config) (*Result, error) {
	f.logger.Info("initialized memory backend")
	return &Result{
		Orders:   ledger.NewTableBackend(memory.New(), ledger.OrderCodec()),
		Expenses: ledger.NewTableBackend(memory.New(), ledger.ExpenseCodec()),
	}, nil
}

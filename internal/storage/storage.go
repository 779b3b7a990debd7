// Package storage is the sqlite persistence backend for the ledgers, for
// deployments that prefer an embedded database over spreadsheet files. It
// keeps the same whole-snapshot rewrite contract as the file backends: Save
// replaces the complete table inside one transaction.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
	"github.com/juanchocce/proyecto-restaurante/internal/ledger"

	_ "modernc.org/sqlite"
)

type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath and runs pending
// migrations.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Orders returns the orders ledger backend.
func (d *DB) Orders() ledger.Backend[core.Order] {
	return &orderBackend{db: d.db}
}

// Expenses returns the expenses ledger backend.
func (d *DB) Expenses() ledger.Backend[core.Expense] {
	return &expenseBackend{db: d.db}
}

type orderBackend struct {
	db *sql.DB
}

func (b *orderBackend) Load(ctx context.Context) ([]core.Order, []ledger.RowIssue, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, ts, client, dish, quantity, unit_price, subtotal,
		       payment_method, delivered, paid
		FROM orders`)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: query orders: %v", core.ErrPersistence, err)
	}
	defer rows.Close()

	var out []core.Order
	for rows.Next() {
		var o core.Order
		var ts string
		if err := rows.Scan(&o.ID, &ts, &o.Client, &o.Dish, &o.Quantity,
			&o.UnitPrice, &o.Subtotal, &o.PaymentMethod, &o.Delivered, &o.Paid); err != nil {
			return nil, nil, fmt.Errorf("%w: scan order: %v", core.ErrPersistence, err)
		}
		o.Timestamp = core.Timestamp(ts)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: read orders: %v", core.ErrPersistence, err)
	}
	return out, nil, nil
}

func (b *orderBackend) Save(ctx context.Context, records []core.Order) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", core.ErrPersistence, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders`); err != nil {
		return fmt.Errorf("%w: clear orders: %v", core.ErrPersistence, err)
	}
	for _, o := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (id, ts, client, dish, quantity, unit_price,
			                    subtotal, payment_method, delivered, paid)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			o.ID, string(o.Timestamp), o.Client, o.Dish, o.Quantity,
			o.UnitPrice, o.Subtotal, string(o.PaymentMethod), o.Delivered, o.Paid)
		if err != nil {
			return fmt.Errorf("%w: insert order %d: %v", core.ErrPersistence, o.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit orders: %v", core.ErrPersistence, err)
	}
	return nil
}

type expenseBackend struct {
	db *sql.DB
}

func (b *expenseBackend) Load(ctx context.Context) ([]core.Expense, []ledger.RowIssue, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, ts, item, quantity, unit_price, total FROM expenses`)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: query expenses: %v", core.ErrPersistence, err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var e core.Expense
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Item, &e.Quantity, &e.UnitPrice, &e.Total); err != nil {
			return nil, nil, fmt.Errorf("%w: scan expense: %v", core.ErrPersistence, err)
		}
		e.Timestamp = core.Timestamp(ts)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: read expenses: %v", core.ErrPersistence, err)
	}
	return out, nil, nil
}

func (b *expenseBackend) Save(ctx context.Context, records []core.Expense) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", core.ErrPersistence, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("%w: clear expenses: %v", core.ErrPersistence, err)
	}
	for _, e := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO expenses (id, ts, item, quantity, unit_price, total)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, string(e.Timestamp), e.Item, e.Quantity, e.UnitPrice, e.Total)
		if err != nil {
			return fmt.Errorf("%w: insert expense %d: %v", core.ErrPersistence, e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit expenses: %v", core.ErrPersistence, err)
	}
	return nil
}

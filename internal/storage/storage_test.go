package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "comandas.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOrdersSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := openTestDB(t).Orders()

	orders := []core.Order{
		{ID: 2, Timestamp: "2024-03-10 18:30:00", Client: "Luis", Dish: "Trio Marino",
			Quantity: 1, UnitPrice: 20, Subtotal: 20, PaymentMethod: core.Yape, Delivered: true},
		{ID: 1, Timestamp: "2024-03-09 12:00:00", Client: "Ana", Dish: "Ceviche",
			Quantity: 2, UnitPrice: 12.5, Subtotal: 25, PaymentMethod: core.Cash, Paid: true},
	}
	if err := backend.Save(ctx, orders); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, issues, err := backend.Load(ctx)
	if err != nil || len(issues) != 0 {
		t.Fatalf("load: %v, issues %v", err, issues)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d orders, want 2", len(loaded))
	}
	byID := map[int64]core.Order{}
	for _, o := range loaded {
		byID[o.ID] = o
	}
	for _, want := range orders {
		if byID[want.ID] != want {
			t.Fatalf("order %d: got %+v, want %+v", want.ID, byID[want.ID], want)
		}
	}
}

func TestSaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	backend := openTestDB(t).Expenses()

	first := []core.Expense{
		{ID: 1, Timestamp: "2024-03-09 08:00:00", Item: "Pescado", Quantity: 2.5, UnitPrice: 18, Total: 45},
		{ID: 2, Timestamp: "2024-03-09 08:30:00", Item: "Limon", Quantity: 4, UnitPrice: 4.5, Total: 18},
	}
	if err := backend.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A second save with one record must fully replace the previous set.
	second := first[:1]
	if err := backend.Save(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, _, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != first[0] {
		t.Fatalf("loaded = %+v, want only first record", loaded)
	}
}

func TestEmptyDatabaseLoads(t *testing.T) {
	db := openTestDB(t)
	orders, issues, err := db.Orders().Load(context.Background())
	if err != nil || len(orders) != 0 || len(issues) != 0 {
		t.Fatalf("empty load = %v, %v, %v", orders, issues, err)
	}
}

package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/juanchocce/proyecto-restaurante/internal/catalog"
	"github.com/juanchocce/proyecto-restaurante/internal/core"
	"github.com/juanchocce/proyecto-restaurante/internal/rowio/memory"
)

func testMenu(t *testing.T) *catalog.Store {
	t.Helper()
	menu := catalog.New(filepath.Join(t.TempDir(), "menu.json"), []catalog.Entry{
		{Name: "Ceviche", Price: 12},
		{Name: "Trio Marino", Price: 20},
	}, nil)
	if err := menu.Load(context.Background()); err != nil {
		t.Fatalf("load menu: %v", err)
	}
	return menu
}

func testOrders(t *testing.T, table *memory.Table) *Orders {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, 3, 10, 14, 22, 5, 0, time.UTC) }
	o := NewOrders(NewTableBackend[core.Order](table, OrderCodec()), testMenu(t), nil, clock)
	if err := o.Load(context.Background()); err != nil {
		t.Fatalf("load orders: %v", err)
	}
	return o
}

func TestNextIDMonotonic(t *testing.T) {
	ctx := context.Background()
	o := testOrders(t, memory.New())

	if got := o.NextID(); got != 1 {
		t.Fatalf("empty ledger NextID = %d, want 1", got)
	}

	first, err := o.Add(ctx, "Ana", "Ceviche", 1, core.Cash)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := o.Add(ctx, "Luis", "Trio Marino", 2, core.Yape)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", first.ID, second.ID)
	}

	// Deleting a low id must not free it for reuse while a higher one exists.
	if err := o.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third, err := o.Add(ctx, "Rosa", "Ceviche", 1, core.Plin)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if third.ID != 3 {
		t.Fatalf("id after delete = %d, want 3", third.ID)
	}
}

func TestAddComputesSubtotalFromCatalog(t *testing.T) {
	ctx := context.Background()
	o := testOrders(t, memory.New())

	ord, err := o.Add(ctx, "Ana", "Trio Marino", 3, core.Cash)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if ord.UnitPrice != 20 || ord.Subtotal != 60 {
		t.Fatalf("price/subtotal = %v/%v, want 20/60", ord.UnitPrice, ord.Subtotal)
	}
	if ord.Timestamp != "2024-03-10 14:22:05" {
		t.Fatalf("timestamp = %q", ord.Timestamp)
	}
}

func TestAddRejectsUnknownDish(t *testing.T) {
	o := testOrders(t, memory.New())
	_, err := o.Add(context.Background(), "Ana", "Lomo Saltado", 1, core.Cash)
	if !errors.Is(err, core.ErrCatalogMiss) {
		t.Fatalf("err = %v, want ErrCatalogMiss", err)
	}
	if len(o.Records()) != 0 {
		t.Fatalf("no record should be created on catalog miss")
	}
}

func TestAddRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	table := memory.New()
	o := testOrders(t, table)

	if _, err := o.Add(ctx, "Ana", "Ceviche", 1, core.Cash); err != nil {
		t.Fatalf("add: %v", err)
	}

	table.WriteErr = errors.New("file locked by another program")
	_, err := o.Add(ctx, "Luis", "Ceviche", 1, core.Cash)
	if !errors.Is(err, core.ErrPersistence) {
		t.Fatalf("err = %v, want ErrPersistence", err)
	}
	if got := len(o.Records()); got != 1 {
		t.Fatalf("records after failed add = %d, want 1 (rolled back)", got)
	}
	if got := o.NextID(); got != 2 {
		t.Fatalf("NextID after rollback = %d, want 2", got)
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	o := testOrders(t, memory.New())
	if err := o.Delete(context.Background(), 99); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestToggleFlags(t *testing.T) {
	ctx := context.Background()
	o := testOrders(t, memory.New())
	ord, err := o.Add(ctx, "Ana", "Ceviche", 1, core.Cash)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	upd, ok, err := o.Toggle(ctx, ord.ID, FlagDelivered)
	if err != nil || !ok || !upd.Delivered || upd.Paid {
		t.Fatalf("toggle delivered = %+v, %v, %v", upd, ok, err)
	}
	upd, ok, err = o.Toggle(ctx, ord.ID, FlagDelivered)
	if err != nil || !ok || upd.Delivered {
		t.Fatalf("second toggle should flip back: %+v, %v, %v", upd, ok, err)
	}

	if _, ok, err := o.Toggle(ctx, 99, FlagPaid); err != nil || ok {
		t.Fatalf("toggle absent id = %v, %v; want false, nil", ok, err)
	}
	if _, _, err := o.Toggle(ctx, ord.ID, "cooked"); err == nil {
		t.Fatalf("unknown flag should error")
	}
}

func TestUpdateDatePreservesClock(t *testing.T) {
	ctx := context.Background()
	o := testOrders(t, memory.New())
	ord, err := o.Add(ctx, "Ana", "Ceviche", 1, core.Cash)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	upd, ok, err := o.UpdateDate(ctx, ord.ID, "2024-03-15")
	if err != nil || !ok {
		t.Fatalf("update date: %v, %v", ok, err)
	}
	if upd.Timestamp != "2024-03-15 14:22:05" {
		t.Fatalf("timestamp = %q, want 2024-03-15 14:22:05", upd.Timestamp)
	}

	if _, _, err := o.UpdateDate(ctx, ord.ID, "15/03/2024"); err == nil {
		t.Fatalf("malformed date should error")
	}
}

func TestRecordsSortedNewestFirst(t *testing.T) {
	ctx := context.Background()
	table := memory.New()
	table.Seed([][]string{
		OrderCodec().Header,
		{"1", "2024-03-09 10:00:00", "Ana", "Ceviche", "1", "12", "12", "Efectivo", "No", "No"},
		{"2", "2024-03-11 09:00:00", "Luis", "Ceviche", "1", "12", "12", "Yape", "No", "No"},
		{"3", "2024-03-10 20:00:00", "Rosa", "Ceviche", "1", "12", "12", "Plin", "No", "No"},
	})
	o := testOrders(t, table)

	recs := o.Records()
	want := []int64{2, 3, 1}
	for i, id := range want {
		if recs[i].ID != id {
			t.Fatalf("order at %d = id %d, want %d", i, recs[i].ID, id)
		}
	}

	// Moving the oldest record to the newest date must re-sort.
	if _, _, err := o.UpdateDate(ctx, 1, "2024-03-12"); err != nil {
		t.Fatalf("update date: %v", err)
	}
	if recs := o.Records(); recs[0].ID != 1 {
		t.Fatalf("after date edit first record id = %d, want 1", recs[0].ID)
	}
}

func TestExpensesFractionalQuantity(t *testing.T) {
	ctx := context.Background()
	costs := catalog.New(filepath.Join(t.TempDir(), "costs.json"), []catalog.Entry{
		{Name: "Pescado", Price: 18},
	}, nil)
	if err := costs.Load(ctx); err != nil {
		t.Fatalf("load costs: %v", err)
	}
	clock := func() time.Time { return time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC) }
	e := NewExpenses(NewTableBackend[core.Expense](memory.New(), ExpenseCodec()), costs, nil, clock)
	if err := e.Load(ctx); err != nil {
		t.Fatalf("load expenses: %v", err)
	}

	exp, err := e.Add(ctx, "Pescado", 2.5)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if exp.Total != 45 {
		t.Fatalf("total = %v, want 45", exp.Total)
	}

	if _, err := e.Add(ctx, "Pescado", 0); !errors.Is(err, core.ErrInvalidQuantity) {
		t.Fatalf("zero quantity err = %v", err)
	}
	if _, err := e.Add(ctx, "Caviar", 1); !errors.Is(err, core.ErrCatalogMiss) {
		t.Fatalf("unknown item err = %v", err)
	}
}

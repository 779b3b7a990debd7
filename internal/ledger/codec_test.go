package ledger

import (
	"context"
	"testing"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
	"github.com/juanchocce/proyecto-restaurante/internal/rowio/memory"
)

func TestLoadPadsLegacyRows(t *testing.T) {
	table := memory.New()
	// 8-column schema from before the payment/status columns existed.
	table.Seed([][]string{
		{"ID", "Fecha", "Cliente", "Plato", "Cant.", "Precio Unit.", "Total", "Método Pago"},
		{"1", "2024-03-09 12:00:00", "Ana", "Ceviche", "2", "12", "24"},
	})
	backend := NewTableBackend[core.Order](table, OrderCodec())

	records, issues, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("issues = %v, want none", issues)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	got := records[0]
	if got.PaymentMethod != core.Cash || got.Delivered || got.Paid {
		t.Fatalf("legacy defaults not applied: %+v", got)
	}
}

func TestLoadSkipsCorruptRowOnly(t *testing.T) {
	table := memory.New()
	table.Seed([][]string{
		OrderCodec().Header,
		{"1", "2024-03-09 12:00:00", "Ana", "Ceviche", "2", "12", "24", "Efectivo", "No", "No"},
		{"2", "2024-03-09 13:00:00", "Luis", "Ceviche", "dos", "12", "", "Yape", "No", "No"},
		{"3", "2024-03-09 14:00:00", "Rosa", "Trio Marino", "1", "20", "20", "Plin", "Si", "Si"},
	})
	backend := NewTableBackend[core.Order](table, OrderCodec())

	records, issues, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (corrupt row dropped)", len(records))
	}
	if len(issues) != 1 || issues[0].Row != 3 {
		t.Fatalf("issues = %v, want one at row 3", issues)
	}
}

func TestLoadSkipsRowsWithoutID(t *testing.T) {
	table := memory.New()
	table.Seed([][]string{
		OrderCodec().Header,
		{"", "2024-03-09 12:00:00", "Ana", "Ceviche", "2", "12"},
		{},
		{"7", "2024-03-09 12:30:00", "Luis", "Ceviche", "1", "12", "12", "Efectivo", "No", "No"},
	})
	backend := NewTableBackend[core.Order](table, OrderCodec())

	records, issues, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("id-less rows are skipped silently, got issues %v", issues)
	}
	if len(records) != 1 || records[0].ID != 7 {
		t.Fatalf("records = %+v, want only id 7", records)
	}
}

func TestSubtotalTrustedWhenPresent(t *testing.T) {
	table := memory.New()
	// Stored subtotal 30 deliberately disagrees with 2*12; manual edits to
	// historical rows are kept as-is.
	table.Seed([][]string{
		OrderCodec().Header,
		{"1", "2024-03-09 12:00:00", "Ana", "Ceviche", "2", "12", "30", "Efectivo", "No", "No"},
		{"2", "2024-03-09 13:00:00", "Luis", "Ceviche", "2", "12", "", "Yape", "No", "No"},
	})
	backend := NewTableBackend[core.Order](table, OrderCodec())

	records, _, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if records[0].Subtotal != 30 {
		t.Fatalf("stored subtotal = %v, want 30 (trusted)", records[0].Subtotal)
	}
	if records[1].Subtotal != 24 {
		t.Fatalf("recomputed subtotal = %v, want 24", records[1].Subtotal)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	table := memory.New()
	backend := NewTableBackend[core.Order](table, OrderCodec())

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
	if len(loaded) != len(orders) {
		t.Fatalf("loaded %d records, want %d", len(loaded), len(orders))
	}
	for i := range orders {
		if loaded[i] != orders[i] {
			t.Fatalf("record %d: got %+v, want %+v", i, loaded[i], orders[i])
		}
	}
}

func TestExpenseCodecRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := NewTableBackend[core.Expense](memory.New(), ExpenseCodec())

	expenses := []core.Expense{
		{ID: 1, Timestamp: "2024-03-09 08:15:00", Item: "Pescado", Quantity: 2.5, UnitPrice: 18, Total: 45},
	}
	if err := backend.Save(ctx, expenses); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, _, err := backend.Load(ctx)
	if err != nil || len(loaded) != 1 || loaded[0] != expenses[0] {
		t.Fatalf("round trip: %+v, %v", loaded, err)
	}
}

package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
)

const (
	yes = "Si"
	no  = "No"
)

// OrderCodec describes the 10-column orders sheet. Older files carried only
// the first 8 columns; the defaults backfill payment method and both status
// flags when a row is short.
func OrderCodec() Codec[core.Order] {
	return Codec[core.Order]{
		Header: []string{
			"ID", "Fecha", "Cliente", "Plato", "Cant.",
			"Precio Unit.", "Total", "Método Pago", "Entregado", "Pagado",
		},
		Defaults: []string{
			"", "", "", "", "",
			"", "", string(core.Cash), no, no,
		},
		Decode: decodeOrder,
		Encode: encodeOrder,
	}
}

// ExpenseCodec describes the 6-column expenses sheet.
func ExpenseCodec() Codec[core.Expense] {
	return Codec[core.Expense]{
		Header:   []string{"ID", "Fecha", "Insumo", "Cant.", "Precio Unit.", "Total"},
		Defaults: []string{"", "", "", "", "", ""},
		Decode:   decodeExpense,
		Encode:   encodeExpense,
	}
}

func decodeOrder(row []string) (core.Order, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	if err != nil {
		return core.Order{}, fmt.Errorf("parse id %q: %w", row[0], err)
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(row[4]), 10, 64)
	if err != nil {
		return core.Order{}, fmt.Errorf("parse quantity %q: %w", row[4], err)
	}
	price, err := parseCell(row[5])
	if err != nil {
		return core.Order{}, fmt.Errorf("parse unit price %q: %w", row[5], err)
	}

	// A present subtotal is trusted as-is: historical rows are sometimes
	// corrected by hand in the spreadsheet. Only an absent cell is
	// recomputed.
	subtotal := float64(qty) * price
	if strings.TrimSpace(row[6]) != "" {
		subtotal, err = parseCell(row[6])
		if err != nil {
			return core.Order{}, fmt.Errorf("parse subtotal %q: %w", row[6], err)
		}
	}

	method := core.PaymentMethod(strings.TrimSpace(row[7]))
	if method == "" {
		method = core.Cash
	}

	return core.Order{
		ID:            id,
		Timestamp:     core.Timestamp(strings.TrimSpace(row[1])),
		Client:        row[2],
		Dish:          row[3],
		Quantity:      qty,
		UnitPrice:     price,
		Subtotal:      subtotal,
		PaymentMethod: method,
		Delivered:     strings.TrimSpace(row[8]) == yes,
		Paid:          strings.TrimSpace(row[9]) == yes,
	}, nil
}

func encodeOrder(o core.Order) []string {
	return []string{
		strconv.FormatInt(o.ID, 10),
		string(o.Timestamp),
		o.Client,
		o.Dish,
		strconv.FormatInt(o.Quantity, 10),
		formatCell(o.UnitPrice),
		formatCell(o.Subtotal),
		string(o.PaymentMethod),
		boolCell(o.Delivered),
		boolCell(o.Paid),
	}
}

func decodeExpense(row []string) (core.Expense, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse id %q: %w", row[0], err)
	}
	qty, err := parseCell(row[3])
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse quantity %q: %w", row[3], err)
	}
	price, err := parseCell(row[4])
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse unit price %q: %w", row[4], err)
	}
	total := qty * price
	if strings.TrimSpace(row[5]) != "" {
		total, err = parseCell(row[5])
		if err != nil {
			return core.Expense{}, fmt.Errorf("parse total %q: %w", row[5], err)
		}
	}

	return core.Expense{
		ID:        id,
		Timestamp: core.Timestamp(strings.TrimSpace(row[1])),
		Item:      row[2],
		Quantity:  qty,
		UnitPrice: price,
		Total:     total,
	}, nil
}

func encodeExpense(e core.Expense) []string {
	return []string{
		strconv.FormatInt(e.ID, 10),
		string(e.Timestamp),
		e.Item,
		formatCell(e.Quantity),
		formatCell(e.UnitPrice),
		formatCell(e.Total),
	}
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// formatCell keeps full precision in the stored cell; two-decimal rounding
// belongs to presentation only.
func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func boolCell(b bool) string {
	if b {
		return yes
	}
	return no
}

package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
	"github.com/juanchocce/proyecto-restaurante/internal/stats"
)

// WriteClosingReport renders the printable end-of-period document: the
// financial summary for the range followed by a dump of the in-range order
// and expense rows.
func WriteClosingReport(path string, c stats.CloseOut, orders []core.Order, expenses []core.Expense, r stats.Range) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, fmt.Sprintf("Pagina %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Cierre de Caja", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, rangeLabel(r), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(60, 8, "Ingresos:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "S/ "+core.FormatAmount(c.Income), "", 1, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Gastos:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "S/ "+core.FormatAmount(c.Expenses), "", 1, "L", false, 0, "")

	// Net line goes green or red; the flag flips at exactly 0.00.
	if c.Profitable() {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.CellFormat(60, 8, "Ganancia Neta:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "S/ "+core.FormatAmount(c.Net), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	writeOrderTable(pdf, orders)
	pdf.Ln(6)
	writeExpenseTable(pdf, expenses)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: write closing report %s: %v", core.ErrPersistence, path, err)
	}
	return nil
}

func rangeLabel(r stats.Range) string {
	switch {
	case r.Start == "" && r.End == "":
		return "Resumen del dia"
	case r.Start == r.End:
		return "Fecha: " + r.Start
	default:
		return fmt.Sprintf("Del %s al %s", r.Start, r.End)
	}
}

func writeOrderTable(pdf *gofpdf.Fpdf, orders []core.Order) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Pedidos (%d)", len(orders)), "", 1, "L", false, 0, "")

	widths := []float64{12, 38, 35, 45, 12, 24, 24}
	headers := []string{"ID", "Fecha", "Cliente", "Plato", "Cnt", "Total", "Pago"}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, o := range orders {
		cells := []string{
			fmt.Sprintf("%d", o.ID),
			string(o.Timestamp),
			o.Client,
			o.Dish,
			fmt.Sprintf("%d", o.Quantity),
			core.FormatAmount(o.Subtotal),
			string(o.PaymentMethod),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeExpenseTable(pdf *gofpdf.Fpdf, expenses []core.Expense) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Gastos (%d)", len(expenses)), "", 1, "L", false, 0, "")

	widths := []float64{12, 38, 60, 20, 30, 30}
	headers := []string{"ID", "Fecha", "Insumo", "Cant.", "P. Unit.", "Total"}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, e := range expenses {
		cells := []string{
			fmt.Sprintf("%d", e.ID),
			string(e.Timestamp),
			e.Item,
			fmt.Sprintf("%g", e.Quantity),
			core.FormatAmount(e.UnitPrice),
			core.FormatAmount(e.Total),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

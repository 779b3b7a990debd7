// Package report produces the human-facing artifacts: the per-date sales
// spreadsheet and the printable closing report. It only consumes snapshots
// and analytics output; it never touches the ledgers.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
)

// DailyRow is one calendar date of sales: how many orders and how much
// money.
type DailyRow struct {
	Date  string
	Count int
	Total float64
}

// DailySales groups the order snapshot by the date portion of the
// timestamp, one row per distinct date, newest date first.
func DailySales(orders []core.Order) []DailyRow {
	type agg struct {
		count int
		total float64
	}
	byDate := map[string]*agg{}
	for _, o := range orders {
		date := o.Timestamp.Date()
		a := byDate[date]
		if a == nil {
			a = &agg{}
			byDate[date] = a
		}
		a.count++
		a.total += o.Subtotal
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	rows := make([]DailyRow, len(dates))
	for i, d := range dates {
		rows[i] = DailyRow{Date: d, Count: byDate[d].count, Total: byDate[d].total}
	}
	return rows
}

// ExportDailySales writes the per-date sales summary as an xlsx workbook.
func ExportDailySales(ctx context.Context, path string, orders []core.Order) error {
	rows := [][]string{{"Fecha", "Nro Pedidos", "Venta Total (S/)"}}
	for _, r := range DailySales(orders) {
		rows = append(rows, []string{r.Date, fmt.Sprintf("%d", r.Count), core.FormatAmount(r.Total)})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Ventas Diarias"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save report %s: %v", core.ErrPersistence, path, err)
	}
	return nil
}

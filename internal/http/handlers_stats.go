package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
	"github.com/juanchocce/proyecto-restaurante/internal/report"
	"github.com/juanchocce/proyecto-restaurante/internal/stats"
)

type rankEntryView struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type datePointView struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type statsResponse struct {
	Count          int             `json:"count"`
	Total          float64         `json:"total"`
	Average        float64         `json:"average"`
	AvgUnitValue   float64         `json:"avg_unit_value"`
	TopDishes      []rankEntryView `json:"top_dishes"`
	BottomDishes   []rankEntryView `json:"bottom_dishes"`
	TopClients     []rankEntryView `json:"top_clients"`
	PaymentMethods map[string]int  `json:"payment_methods"`
	DailySeries    []datePointView `json:"daily_series"`
	HourHistogram  [24]int         `json:"hour_histogram"`
}

type financialsResponse struct {
	Count       int             `json:"count"`
	Total       float64         `json:"total"`
	DailySeries []datePointView `json:"daily_series"`
	Income      float64         `json:"income"`
	Net         float64         `json:"net"`
	Profitable  bool            `json:"profitable"`
}

type reportResponse struct {
	Path string `json:"path"`
}

func rankViews(entries []stats.RankEntry) []rankEntryView {
	out := make([]rankEntryView, len(entries))
	for i, e := range entries {
		out[i] = rankEntryView{Name: e.Name, Count: e.Count, Percent: core.Round2(e.Percent)}
	}
	return out
}

func seriesViews(points []stats.DatePoint) []datePointView {
	out := make([]datePointView, len(points))
	for i, p := range points {
		out[i] = datePointView{Date: p.Date, Total: core.Round2(p.Total)}
	}
	return out
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	rng, err := queryRange(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sum := stats.GetStats(s.orders.Records(), rng, s.clock())

	resp := statsResponse{
		Count:          sum.Count,
		Total:          core.Round2(sum.Total),
		Average:        core.Round2(sum.Average),
		AvgUnitValue:   core.Round2(sum.AvgUnitValue),
		TopDishes:      rankViews(sum.TopDishes),
		BottomDishes:   rankViews(sum.BottomDishes),
		TopClients:     rankViews(sum.TopClients),
		PaymentMethods: map[string]int{},
		DailySeries:    seriesViews(sum.DailySeries),
		HourHistogram:  sum.HourHistogram,
	}
	for m, n := range sum.PaymentMethods {
		resp.PaymentMethods[string(m)] = n
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleFinancials answers the expense-side totals together with the
// cross-ledger close-out over the same range.
func (s *Server) handleFinancials(w http.ResponseWriter, r *http.Request) {
	rng, err := queryRange(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	now := s.clock()
	fin := stats.GetFinancials(s.expenses.Records(), rng, now)
	sum := stats.GetStats(s.orders.Records(), rng, now)
	c := stats.NewCloseOut(sum, fin)

	writeJSON(w, http.StatusOK, financialsResponse{
		Count:       fin.Count,
		Total:       core.Round2(fin.Total),
		DailySeries: seriesViews(fin.DailySeries),
		Income:      core.Round2(c.Income),
		Net:         core.Round2(c.Net),
		Profitable:  c.Profitable(),
	})
}

func (s *Server) handleExportDailySales(w http.ResponseWriter, r *http.Request) {
	path := s.reportPath("ventas_diarias", "xlsx")
	if err := report.ExportDailySales(r.Context(), path, s.orders.Records()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reportResponse{Path: path})
}

func (s *Server) handleClosingReport(w http.ResponseWriter, r *http.Request) {
	rng, err := queryRange(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	now := s.clock()
	var orders []core.Order
	for _, o := range s.orders.Records() {
		if rng.In(o.Timestamp.Date(), now) {
			orders = append(orders, o)
		}
	}
	var expenses []core.Expense
	for _, e := range s.expenses.Records() {
		if rng.In(e.Timestamp.Date(), now) {
			expenses = append(expenses, e)
		}
	}
	c := stats.NewCloseOut(stats.GetStats(orders, rng, now), stats.GetFinancials(expenses, rng, now))

	path := s.reportPath("cierre_caja", "pdf")
	if err := report.WriteClosingReport(path, c, orders, expenses, rng); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reportResponse{Path: path})
}

func (s *Server) reportPath(prefix, ext string) string {
	_ = os.MkdirAll(s.reportsDir, 0o755)
	name := prefix + "_" + s.clock().Format("20060102_150405") + "." + ext
	return filepath.Join(s.reportsDir, name)
}

package http

import (
	"net/http"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
)

type expenseView struct {
	ID        int64   `json:"id"`
	Timestamp string  `json:"timestamp"`
	Item      string  `json:"item"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type createExpenseRequest struct {
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
}

func newExpenseView(e core.Expense) expenseView {
	return expenseView{
		ID:        e.ID,
		Timestamp: string(e.Timestamp),
		Item:      e.Item,
		Quantity:  e.Quantity,
		UnitPrice: core.Round2(e.UnitPrice),
		Total:     core.Round2(e.Total),
	}
}

func (s *Server) handleListExpenses(w http.ResponseWriter, _ *http.Request) {
	records := s.expenses.Records()
	out := make([]expenseView, len(records))
	for i, e := range records {
		out[i] = newExpenseView(e)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	e, err := s.expenses.Add(r.Context(), req.Item, req.Quantity)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newExpenseView(e))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.expenses.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExpenseDate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	var req updateDateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	e, found, err := s.expenses.UpdateDate(r.Context(), id, req.Date)
	if err != nil && !found {
		s.writeError(w, r, err)
		return
	}
	if !found {
		s.writeNotFound(w, "gasto", id)
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newExpenseView(e))
}

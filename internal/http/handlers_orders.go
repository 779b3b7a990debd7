package http

import (
	"net/http"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
)

// orderView is the wire shape of one order. Money fields are rounded here;
// the ledger keeps full precision.
type orderView struct {
	ID            int64   `json:"id"`
	Timestamp     string  `json:"timestamp"`
	Client        string  `json:"client"`
	Dish          string  `json:"dish"`
	Quantity      int64   `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Subtotal      float64 `json:"subtotal"`
	PaymentMethod string  `json:"payment_method"`
	Delivered     bool    `json:"delivered"`
	Paid          bool    `json:"paid"`
}

type createOrderRequest struct {
	Client        string `json:"client"`
	Dish          string `json:"dish"`
	Quantity      int64  `json:"quantity"`
	PaymentMethod string `json:"payment_method"`
}

type updateDateRequest struct {
	Date string `json:"date"`
}

func newOrderView(o core.Order) orderView {
	return orderView{
		ID:            o.ID,
		Timestamp:     string(o.Timestamp),
		Client:        o.Client,
		Dish:          o.Dish,
		Quantity:      o.Quantity,
		UnitPrice:     core.Round2(o.UnitPrice),
		Subtotal:      core.Round2(o.Subtotal),
		PaymentMethod: string(o.PaymentMethod),
		Delivered:     o.Delivered,
		Paid:          o.Paid,
	}
}

func (s *Server) handleListOrders(w http.ResponseWriter, _ *http.Request) {
	records := s.orders.Records()
	out := make([]orderView, len(records))
	for i, o := range records {
		out[i] = newOrderView(o)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	o, err := s.orders.Add(r.Context(), req.Client, req.Dish, req.Quantity, core.PaymentMethod(req.PaymentMethod))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newOrderView(o))
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.orders.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	o, found, err := s.orders.Toggle(r.Context(), id, r.PathValue("flag"))
	if err != nil && !found {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if !found {
		s.writeNotFound(w, "pedido", id)
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderView(o))
}

func (s *Server) handleOrderDate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	var req updateDateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	o, found, err := s.orders.UpdateDate(r.Context(), id, req.Date)
	if err != nil && !found {
		s.writeError(w, r, err)
		return
	}
	if !found {
		s.writeNotFound(w, "pedido", id)
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderView(o))
}

package http

import (
	"net/http"

	"github.com/juanchocce/proyecto-restaurante/internal/catalog"
)

type catalogEntryView struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type upsertCatalogRequest struct {
	Price string `json:"price"`
}

func catalogViews(items []catalog.Entry) []catalogEntryView {
	out := make([]catalogEntryView, len(items))
	for i, it := range items {
		out[i] = catalogEntryView{Name: it.Name, Price: it.Price}
	}
	return out
}

func (s *Server) handleListMenu(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalogViews(s.menu.Items()))
}

func (s *Server) handleUpsertMenu(w http.ResponseWriter, r *http.Request) {
	s.upsertCatalog(w, r, s.menu)
}

func (s *Server) handleRemoveMenu(w http.ResponseWriter, r *http.Request) {
	s.removeCatalog(w, r, s.menu)
}

func (s *Server) handleListCosts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalogViews(s.costs.Items()))
}

func (s *Server) handleUpsertCost(w http.ResponseWriter, r *http.Request) {
	s.upsertCatalog(w, r, s.costs)
}

func (s *Server) handleRemoveCost(w http.ResponseWriter, r *http.Request) {
	s.removeCatalog(w, r, s.costs)
}

func (s *Server) upsertCatalog(w http.ResponseWriter, r *http.Request, store *catalog.Store) {
	name := r.PathValue("name")
	var req upsertCatalogRequest
	if !decodeBody(w, r, &req) {
		return
	}
	price, err := store.Upsert(r.Context(), name, req.Price)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, catalogEntryView{Name: name, Price: price})
}

func (s *Server) removeCatalog(w http.ResponseWriter, r *http.Request, store *catalog.Store) {
	if err := store.Remove(r.Context(), r.PathValue("name")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

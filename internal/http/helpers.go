package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
	applog "github.com/juanchocce/proyecto-restaurante/internal/log"
	"github.com/juanchocce/proyecto-restaurante/internal/stats"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP status codes: validation and
// catalog misses are the client's fault, persistence failures are ours.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidPrice),
		errors.Is(err, core.ErrInvalidQuantity),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrCatalogMiss):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrPersistence):
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "url", r.URL.Path, applog.FieldError, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeNotFound(w http.ResponseWriter, what string, id int64) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error: what + " " + strconv.FormatInt(id, 10) + " no encontrado",
	})
}

// pathID parses the {id} segment. The boolean return is false after an
// error response has already been written.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id: " + r.PathValue("id")})
		return 0, false
	}
	return id, true
}

// queryRange reads the optional desde/hasta date filter. Empty on both
// sides means "today" downstream.
func queryRange(r *http.Request) (stats.Range, error) {
	q := r.URL.Query()
	rng := stats.Range{Start: q.Get("desde"), End: q.Get("hasta")}
	if rng.Start != "" {
		if err := core.ValidateDate(rng.Start); err != nil {
			return stats.Range{}, err
		}
	}
	if rng.End != "" {
		if err := core.ValidateDate(rng.End); err != nil {
			return stats.Range{}, err
		}
	}
	return rng, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

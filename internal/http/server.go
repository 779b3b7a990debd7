// Package http exposes the ledgers, catalogs and analytics as a JSON API.
// Handlers hold no state of their own; every read recomputes from the
// in-memory ledger snapshot, so a response is never stale.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/juanchocce/proyecto-restaurante/internal/catalog"
	"github.com/juanchocce/proyecto-restaurante/internal/ledger"
	applog "github.com/juanchocce/proyecto-restaurante/internal/log"
)

type Server struct {
	http.Server
	orders   *ledger.Orders
	expenses *ledger.Expenses
	menu     *catalog.Store
	costs    *catalog.Store

	reportsDir string
	clock      func() time.Time
	logger     *applog.Logger

	shutdownOnce sync.Once
}

// NewServer configures routes and returns a ready-to-run server. clock may
// be nil outside tests.
func NewServer(addr string, orders *ledger.Orders, expenses *ledger.Expenses, menu, costs *catalog.Store, reportsDir string, logger *applog.Logger, clock func() time.Time) *Server {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	if clock == nil {
		clock = time.Now
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		orders:     orders,
		expenses:   expenses,
		menu:       menu,
		costs:      costs,
		reportsDir: reportsDir,
		clock:      clock,
		logger:     logger.WithComponent(applog.ComponentHTTP),
	}

	mux.HandleFunc("GET /healthz", handleHealth)

	mux.HandleFunc("GET /api/menu", s.withLogging(s.handleListMenu))
	mux.HandleFunc("PUT /api/menu/{name}", s.withLogging(s.handleUpsertMenu))
	mux.HandleFunc("DELETE /api/menu/{name}", s.withLogging(s.handleRemoveMenu))

	mux.HandleFunc("GET /api/insumos", s.withLogging(s.handleListCosts))
	mux.HandleFunc("PUT /api/insumos/{name}", s.withLogging(s.handleUpsertCost))
	mux.HandleFunc("DELETE /api/insumos/{name}", s.withLogging(s.handleRemoveCost))

	mux.HandleFunc("GET /api/pedidos", s.withLogging(s.handleListOrders))
	mux.HandleFunc("POST /api/pedidos", s.withLogging(s.handleCreateOrder))
	mux.HandleFunc("DELETE /api/pedidos/{id}", s.withLogging(s.handleDeleteOrder))
	mux.HandleFunc("POST /api/pedidos/{id}/toggle/{flag}", s.withLogging(s.handleToggleOrder))
	mux.HandleFunc("PUT /api/pedidos/{id}/fecha", s.withLogging(s.handleOrderDate))

	mux.HandleFunc("GET /api/gastos", s.withLogging(s.handleListExpenses))
	mux.HandleFunc("POST /api/gastos", s.withLogging(s.handleCreateExpense))
	mux.HandleFunc("DELETE /api/gastos/{id}", s.withLogging(s.handleDeleteExpense))
	mux.HandleFunc("PUT /api/gastos/{id}/fecha", s.withLogging(s.handleExpenseDate))

	mux.HandleFunc("GET /api/stats", s.withLogging(s.handleStats))
	mux.HandleFunc("GET /api/finanzas", s.withLogging(s.handleFinancials))
	mux.HandleFunc("POST /api/reportes/ventas", s.withLogging(s.handleExportDailySales))
	mux.HandleFunc("POST /api/reportes/cierre", s.withLogging(s.handleClosingReport))

	return s
}

func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		err = s.Server.Shutdown(ctx)
	})
	return err
}

// withLogging logs every request with its final status and duration.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(rw, r)
		s.logger.InfoContext(r.Context(), "request completed",
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.status,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

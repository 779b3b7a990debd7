package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/juanchocce/proyecto-restaurante/internal/backend"
	"github.com/juanchocce/proyecto-restaurante/internal/catalog"
	"github.com/juanchocce/proyecto-restaurante/internal/config"
	apphttp "github.com/juanchocce/proyecto-restaurante/internal/http"
	"github.com/juanchocce/proyecto-restaurante/internal/ledger"
	applog "github.com/juanchocce/proyecto-restaurante/internal/log"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("fatal error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger *applog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := backend.NewFactory(logger)
	backends, err := factory.Create(ctx, backend.Config{
		Type:                backend.Type(cfg.DataBackend),
		OrdersFile:          cfg.OrdersFile,
		ExpensesFile:        cfg.ExpensesFile,
		SQLiteDBPath:        cfg.SQLiteDBPath,
		GoogleSpreadsheetID: cfg.GoogleSpreadsheetID,
		OrdersSheetName:     cfg.OrdersSheetName,
		ExpensesSheetName:   cfg.ExpensesSheetName,
	})
	if err != nil {
		return err
	}
	if backends.Cleanup != nil {
		defer func() {
			if err := backends.Cleanup(); err != nil {
				logger.Error("backend cleanup failed", applog.FieldError, err)
			}
		}()
	}

	menu := catalog.New(cfg.MenuFile, catalog.DefaultMenu(), logger)
	costs := catalog.New(cfg.CostsFile, catalog.DefaultCostItems(), logger)
	// A corrupt catalog document degrades to an empty catalog instead of
	// refusing to start.
	if err := menu.Load(ctx); err != nil {
		logger.Warn("menu catalog unreadable, starting empty", applog.FieldError, err)
	}
	if err := costs.Load(ctx); err != nil {
		logger.Warn("cost catalog unreadable, starting empty", applog.FieldError, err)
	}

	orders := ledger.NewOrders(backends.Orders, menu, logger, nil)
	expenses := ledger.NewExpenses(backends.Expenses, costs, logger, nil)
	if err := orders.Load(ctx); err != nil {
		return err
	}
	if err := expenses.Load(ctx); err != nil {
		return err
	}

	srv := apphttp.NewServer(":"+cfg.Port, orders, expenses, menu, costs, cfg.ReportsDir, logger, nil)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "port", cfg.Port, applog.FieldBackend, cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
